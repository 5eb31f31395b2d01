// Package jsonfilter filters collections of JSON records.
//
// The package is organized into several sub-packages:
//
// - value: in-memory JSON values, nested field lookup and number coercion
// - encoding/json: JSON decoder and indenting encoder
// - transform: record transformers (threshold filter, field removal)
// - pipeline: load, parse, transform and emit the records of a file
//
// These are combined in a single pipeline:
//
//	load file -> parse records -> filter -> drop field -> encode JSON
//
// The input is either a JSON array, whose items are the records, or newline
// delimited JSON with one record per line.  Records are decoded in full
// before any output is produced.  The output follows JSON.stringify: numbers
// and strings are reformatted and integer keys come first in objects.
//
// The CLI utility is in the directory cmd/jf. You can install it with:
//
//	go install github.com/arnodel/jsonfilter/cmd/jf
package jsonfilter
