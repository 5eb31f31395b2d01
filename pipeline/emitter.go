package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arnodel/jsonfilter/encoding/json"
	"github.com/arnodel/jsonfilter/internal/format"
	"github.com/arnodel/jsonfilter/value"
)

// IndentSize is the number of spaces per indentation level in the output.
const IndentSize = 2

// Serialize formats the records as a JSON array with IndentSize spaces of
// indentation.  Numbers, strings and key order are normalized with
// value.Canonical.  The colorizer may be nil.
func Serialize(records []value.Value, colorizer *format.Colorizer) ([]byte, error) {
	var buf bytes.Buffer
	encoder := &json.Encoder{
		Printer:   &format.IndentPrinter{Writer: &buf, IndentSize: IndentSize},
		Colorizer: colorizer,
	}
	if err := encoder.Encode(value.Canonical(value.NewArray(records...))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// An Emitter writes the final records to a file and/or the console.
type Emitter struct {
	// OutputPath is the file to write to, if not empty
	OutputPath string

	// Display enables writing to Stdout
	Display bool
	Stdout  io.Writer

	// Colorizer is only used for Stdout
	Colorizer *format.Colorizer
}

// Emit serializes the records and writes them to the requested targets, the
// file first.  If no target is requested nothing is written.  The file
// contents has no trailing new line; the console output has one.
func (e *Emitter) Emit(records []value.Value) error {
	out, err := Serialize(records, nil)
	if err != nil {
		return err
	}

	if e.OutputPath == "" && !e.Display {
		return nil
	}

	if e.OutputPath != "" {
		if err := writeFile(e.OutputPath, out); err != nil {
			return newError(OutputWriteError, "emit", err)
		}
	}

	if e.Display {
		if e.Colorizer != nil {
			out, err = Serialize(records, e.Colorizer)
			if err != nil {
				return err
			}
		}
		line := make([]byte, 0, len(out)+1)
		line = append(append(line, out...), '\n')
		if _, err := e.Stdout.Write(line); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
	}
	return nil
}

func writeFile(path string, data []byte) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return os.WriteFile(absPath, data, 0o644)
}
