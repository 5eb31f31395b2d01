// Package transform contains the transformations applied to a sequence of
// records between parsing and output.
package transform

import "github.com/arnodel/jsonfilter/value"

// A RecordTransformer turns a sequence of records into a new sequence.  It
// must not modify the slice or the records it is given; records which are
// changed are replaced with new values.
type RecordTransformer interface {
	TransformRecords(records []value.Value) []value.Value
}

// Chain applies transformers one after the other, each one to the output of
// the previous one.
type Chain []RecordTransformer

var _ RecordTransformer = Chain{}

// TransformRecords implements the Chain transform.
func (c Chain) TransformRecords(records []value.Value) []value.Value {
	for _, t := range c {
		records = t.TransformRecords(records)
	}
	return records
}
