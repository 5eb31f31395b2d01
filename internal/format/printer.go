package format

import (
	"bytes"
	"fmt"
	"io"
)

// A Printer lays out structured output over several indented lines.
//
// Indent and Dedent change the indentation level and start a new line, NewLine
// starts a new line at the current level and PrintBytes writes at the current
// position.
//
// None of the methods return an error.  An implementation that fails to write
// panics with a *PrinterError, which the caller turns back into an error with
//
//	func encode(p Printer) (err error) {
//	    defer CatchPrinterError(&err)
//	    ...
//	}
type Printer interface {
	Indent()
	Dedent()
	NewLine()
	PrintBytes([]byte)
}

// CatchPrinterError recovers from a *PrinterError panic and stores it in err.
// Other panics are propagated.
func CatchPrinterError(err *error) {
	if r := recover(); r != nil {
		perr, ok := r.(*PrinterError)
		if !ok {
			panic(r)
		}
		*err = perr
	}
}

// A PrinterError wraps the error returned by the underlying writer.
type PrinterError struct {
	Err error
}

func (e *PrinterError) Error() string {
	return fmt.Sprintf("printer error: %s", e.Err)
}

func (e *PrinterError) Unwrap() error {
	return e.Err
}

// IndentPrinter writes to an io.Writer, indenting each line with IndentSize
// spaces per level.  With IndentSize 0 lines are not indented.
type IndentPrinter struct {
	io.Writer
	IndentSize int

	// "\n" followed by the indentation of the current level
	lineStart []byte
}

var _ Printer = &IndentPrinter{}

// NewLine ends the current line and indents the next one.
func (p *IndentPrinter) NewLine() {
	if p.lineStart == nil {
		p.lineStart = newLineBytes
	}
	p.PrintBytes(p.lineStart)
}

// Indent increases the indentation level and starts a new line.
func (p *IndentPrinter) Indent() {
	if p.lineStart == nil {
		p.lineStart = newLineBytes
	}
	p.lineStart = append(p.lineStart[:len(p.lineStart):len(p.lineStart)], bytes.Repeat(spaceBytes, p.IndentSize)...)
	p.NewLine()
}

// Dedent decreases the indentation level and starts a new line.
func (p *IndentPrinter) Dedent() {
	if n := len(p.lineStart) - p.IndentSize; n >= len(newLineBytes) {
		p.lineStart = p.lineStart[:n]
	}
	p.NewLine()
}

// PrintBytes writes b as it is.
func (p *IndentPrinter) PrintBytes(b []byte) {
	if _, err := p.Write(b); err != nil {
		panic(&PrinterError{Err: err})
	}
}

var (
	newLineBytes = []byte{'\n'}
	spaceBytes   = []byte{' '}
)
