package scanner

type Pos struct {
	Line int
	Col  int
}

// A Scanner reads an in-memory input one byte at a time, keeping track of
// the line and column of the current position.  It can record the bytes
// read between StartToken() and EndToken().
type Scanner struct {
	input []byte

	// Current position in input
	// 0 <= currentIndex <= len(input)
	currentIndex int

	// Records lineno and colno of current position (from when the scanning
	// started)
	currentPos, prevPos Pos

	// Position in input of the currently recorded token.
	// -1 means not recording a token
	tokenStartIndex int

	// Tracks how many EOFs have been read.  This is required to make
	// Back() work after an EOF has been read.
	eofCount int
}

func NewScanner(input []byte) *Scanner {
	return &Scanner{
		input:           input,
		tokenStartIndex: -1,
		prevPos:         Pos{Line: -1},
	}
}

// Read returns the next byte and advances the position, or EOF if there
// is no more input.
func (s *Scanner) Read() byte {
	if s.currentIndex >= len(s.input) {
		s.eofCount++
		return EOF
	}
	b := s.input[s.currentIndex]
	s.prevPos = s.currentPos
	switch {
	case b == '\n':
		s.currentPos.Line++
		s.currentPos.Col = 0
	case b&0xC0 != 0x80:
		// Continuation bytes of a utf8-encoded codepoint do not move the column
		s.currentPos.Col++
	}
	s.currentIndex++
	return b
}

// Peek returns the next byte without advancing the position.
func (s *Scanner) Peek() byte {
	if s.currentIndex >= len(s.input) {
		return EOF
	}
	return s.input[s.currentIndex]
}

// Back undoes the last Read().  It can only be called once in a row.
func (s *Scanner) Back() {
	if s.eofCount > 0 {
		s.eofCount--
		return
	}
	if s.currentIndex <= 0 || s.currentIndex <= s.tokenStartIndex {
		panic("cannot go back from start")
	}
	if s.prevPos.Line < 0 {
		panic("cannot go back twice")
	}
	s.currentIndex--
	s.currentPos = s.prevPos
	s.prevPos.Line = -1
}

func (s *Scanner) StartToken() Pos {
	if s.tokenStartIndex >= 0 {
		panic("already in record mode")
	}
	s.tokenStartIndex = s.currentIndex
	return s.currentPos
}

// EndToken returns the bytes read since the last call to StartToken().  The
// returned slice shares memory with the input and must not be modified.
func (s *Scanner) EndToken() []byte {
	if s.tokenStartIndex < 0 {
		panic("not in record mode")
	}
	tokBytes := s.input[s.tokenStartIndex:s.currentIndex:s.currentIndex]
	s.tokenStartIndex = -1
	return tokBytes
}

func (s *Scanner) CurrentPos() Pos {
	return s.currentPos
}

// SkipSpaceAndPeek skips JSON whitespace and returns the next byte without
// consuming it.
func (s *Scanner) SkipSpaceAndPeek() byte {
	for i, b := range s.input[s.currentIndex:] {
		switch {
		case b == '\n':
			s.currentPos.Line++
			s.currentPos.Col = 0
		case b == ' ' || b == '\t' || b == '\r':
			s.currentPos.Col++
		default:
			s.currentIndex += i
			return b
		}
	}
	s.currentIndex = len(s.input)
	return EOF
}

// 0xFF is a byte that should not appear in a UTF-8 encoded stream of bytes.
const EOF byte = 0xFF

// AtEOF reports whether the last Read() went past the end of the input, so
// that EOF can be told apart from a 0xFF byte in invalid UTF-8 input.
func (s *Scanner) AtEOF() bool {
	return s.eofCount > 0
}

// Remaining returns the number of bytes left to read.
func (s *Scanner) Remaining() int {
	return len(s.input) - s.currentIndex
}
