package json

import (
	"fmt"

	"github.com/arnodel/jsonfilter/internal/scanner"
	"github.com/arnodel/jsonfilter/value"
)

// MaxDepth is the maximum nesting of arrays and objects accepted by the
// decoder.
const MaxDepth = 10000

// A Decoder reads JSON input and builds the values it contains.
type Decoder struct {
	scanr *scanner.Scanner
	depth int
}

// NewDecoder sets up a new Decoder instance to read from the given input.
func NewDecoder(in []byte) *Decoder {
	return &Decoder{scanr: scanner.NewScanner(in)}
}

// Decode parses input as exactly one JSON value, optionally surrounded by
// white space.  Anything else after the value is an error.
func Decode(input []byte) (value.Value, error) {
	d := NewDecoder(input)
	v, err := d.ParseValue()
	if err != nil {
		return nil, err
	}
	d.scanr.SkipSpaceAndPeek()
	if d.scanr.Remaining() > 0 {
		return nil, UnexpectedByte(d.scanr, "unexpected data after value")
	}
	return v, nil
}

// ParseValue reads a single JSON value.  It can return a non-nil error if
// the input is invalid JSON.
func (d *Decoder) ParseValue() (value.Value, error) {
	b := d.scanr.SkipSpaceAndPeek()
	switch b {
	case '"':
		return scalarOrError(ParseString(d.scanr))
	case '[':
		return d.parseArray()
	case '{':
		return d.parseObject()
	case 't':
		return literal(d.scanr, trueBytes, value.TrueScalar)
	case 'f':
		return literal(d.scanr, falseBytes, value.FalseScalar)
	case 'n':
		return literal(d.scanr, nullBytes, value.NullScalar)
	default:
		if b == '-' || scanner.IsDigit(b) {
			return scalarOrError(ParseNumber(d.scanr))
		}
		return nil, UnexpectedByte(d.scanr, "unexpected")
	}
}

func (d *Decoder) enter() error {
	d.depth++
	if d.depth > MaxDepth {
		pos := d.scanr.CurrentPos()
		return fmt.Errorf("syntax error at L%d,C%d: exceeded max depth of %d", pos.Line+1, pos.Col+1, MaxDepth)
	}
	return nil
}

func (d *Decoder) parseArray() (value.Value, error) {
	if err := ExpectByte(d.scanr, '['); err != nil {
		return nil, err
	}
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()
	arr := value.NewArray()
	if d.scanr.SkipSpaceAndPeek() == ']' {
		d.scanr.Read()
		return arr, nil
	}
	for {
		item, err := d.ParseValue()
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, item)
		switch d.scanr.SkipSpaceAndPeek() {
		case ']':
			d.scanr.Read()
			return arr, nil
		case ',':
			d.scanr.Read()
		default:
			return nil, UnexpectedByte(d.scanr, "expected ']' or ',', got")
		}
	}
}

func (d *Decoder) parseObject() (value.Value, error) {
	if err := ExpectByte(d.scanr, '{'); err != nil {
		return nil, err
	}
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()
	obj := value.NewObject()
	if d.scanr.SkipSpaceAndPeek() == '}' {
		d.scanr.Read()
		return obj, nil
	}
	for {
		key, err := ParseString(d.scanr)
		if err != nil {
			return nil, err
		}
		key.TypeAndFlags |= value.KeyMask
		if d.scanr.SkipSpaceAndPeek() != ':' {
			return nil, UnexpectedByte(d.scanr, "expected ':', got")
		}
		d.scanr.Read()
		val, err := d.ParseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
		switch d.scanr.SkipSpaceAndPeek() {
		case '}':
			d.scanr.Read()
			return obj, nil
		case ',':
			d.scanr.Read()
			d.scanr.SkipSpaceAndPeek()
		default:
			return nil, UnexpectedByte(d.scanr, "expected '}' or ',', got")
		}
	}
}

func ExpectByte(scanr *scanner.Scanner, xb byte) error {
	b := scanr.Read()
	if b != xb {
		scanr.Back()
		return UnexpectedByte(scanr, "expected %q, got", xb)
	}
	return nil
}

// UnexpectedByte consumes the next byte and returns a syntax error
// describing it, located at the current position.
func UnexpectedByte(scanr *scanner.Scanner, expected string, args ...interface{}) error {
	pos := scanr.CurrentPos()
	b := scanr.Read()
	if b == scanner.EOF && scanr.AtEOF() {
		return fmt.Errorf("syntax error at L%d,C%d: %s: <EOF>", pos.Line+1, pos.Col+1, fmt.Sprintf(expected, args...))
	}
	return fmt.Errorf("syntax error at L%d,C%d: %s: %q", pos.Line+1, pos.Col+1, fmt.Sprintf(expected, args...), b)
}

// ParseString parses a JSON string from the scanner.  The literal bytes,
// quotes and escapes included, become the scalar's Bytes.
func ParseString(scanr *scanner.Scanner) (*value.Scalar, error) {
	if scanr.Peek() != '"' {
		return nil, UnexpectedByte(scanr, "expected '\"', got")
	}
	scanr.StartToken()
	scanr.Read()
	isUnescaped := true
	for {
		b := scanr.Read()
		switch {
		case b == '\\':
			isUnescaped = false
			x := scanr.Read()
			switch x {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				continue
			case 'u':
				for i := 0; i < 4; i++ {
					if h := scanr.Read(); !scanner.IsHexDigit(h) {
						scanr.Back()
						return nil, UnexpectedByte(scanr, "expected hex digit, got")
					}
				}
			default:
				scanr.Back()
				return nil, UnexpectedByte(scanr, "invalid escape character")
			}
		case b == '"':
			scalar := value.NewScalar(value.String, scanr.EndToken())
			if isUnescaped {
				scalar.TypeAndFlags |= value.UnescapedMask
			}
			return scalar, nil
		case b == scanner.EOF && scanr.AtEOF():
			scanr.Back()
			return nil, UnexpectedByte(scanr, "unterminated string")
		case scanner.IsCtrl(b):
			scanr.Back()
			return nil, UnexpectedByte(scanr, "invalid control character in string")
		}
	}
}

// ParseNumber parses a JSON number from the scanner.
func ParseNumber(scanr *scanner.Scanner) (*value.Scalar, error) {
	scanr.StartToken()
	var n int
	b := scanr.Read()

	// Sign part
	if b == '-' {
		b = scanr.Read()
	}

	// Integer part
	switch {
	case b == '0':
		b = scanr.Read()
	case b >= '1' && b <= '9':
		b, _ = ReadDigits(scanr)
	default:
		scanr.Back()
		return nil, UnexpectedByte(scanr, "expected digit, got")
	}

	// Fraction part
	if b == '.' {
		b, n = ReadDigits(scanr)
		if n == 0 {
			scanr.Back()
			return nil, UnexpectedByte(scanr, "expected digit, got")
		}
	}

	// Exponent part
	if b == 'e' || b == 'E' {
		if s := scanr.Peek(); s == '-' || s == '+' {
			scanr.Read()
		}
		_, n = ReadDigits(scanr)
		if n == 0 {
			scanr.Back()
			return nil, UnexpectedByte(scanr, "expected digit, got")
		}
	}
	scanr.Back()
	return value.NewScalar(value.Number, scanr.EndToken()), nil
}

// ReadDigits reads decimal digits and returns the first byte which is not a
// digit, as well as the number of digits read.
func ReadDigits(scanr *scanner.Scanner) (byte, int) {
	var n int
	for {
		b := scanr.Read()
		if !scanner.IsDigit(b) {
			return b, n
		}
		n++
	}
}

func scalarOrError(s *value.Scalar, err error) (value.Value, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func literal(scanr *scanner.Scanner, expected []byte, scalar *value.Scalar) (value.Value, error) {
	for _, xb := range expected {
		if err := ExpectByte(scanr, xb); err != nil {
			return nil, err
		}
	}
	return scalar, nil
}

var (
	trueBytes  = []byte("true")
	falseBytes = []byte("false")
	nullBytes  = []byte("null")
)
