package pipeline

import (
	"fmt"
	"strings"

	"github.com/arnodel/jsonfilter/encoding/json"
	"github.com/arnodel/jsonfilter/value"
)

// Format is the layout of the records in the input.
type Format string

const (
	// FormatArray is a single JSON array whose items are the records
	FormatArray Format = "array"

	// FormatNDJSON is one JSON value per line
	FormatNDJSON Format = "ndjson"
)

// DetectFormat returns FormatArray if text starts with '[' once surrounding
// white space is ignored, and FormatNDJSON otherwise.
func DetectFormat(text string) Format {
	if strings.HasPrefix(value.TrimSpace(text), "[") {
		return FormatArray
	}
	return FormatNDJSON
}

// ParseRecords decodes the records contained in text, in input order.
//
// In the NDJSON format, lines are separated by "\n" or "\r\n", each line is
// trimmed and blank lines are skipped.  Any invalid JSON gives a ParseError
// and no records.
func ParseRecords(text string) ([]value.Value, error) {
	trimmed := value.TrimSpace(text)
	if DetectFormat(trimmed) == FormatArray {
		return parseArray(trimmed)
	}
	return parseLines(text)
}

func parseArray(text string) ([]value.Value, error) {
	v, err := json.Decode([]byte(text))
	if err != nil {
		return nil, newError(ParseError, "parse", err)
	}
	// text starts with '[' so it can only decode to an array
	return v.(*value.Array).Items, nil
}

func parseLines(text string) ([]value.Value, error) {
	var records []value.Value
	for i, line := range strings.Split(text, "\n") {
		line = value.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := json.Decode([]byte(line))
		if err != nil {
			return nil, newError(ParseError, "parse", fmt.Errorf("line %d: %w", i+1, err))
		}
		records = append(records, v)
	}
	return records, nil
}
