package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/arnodel/jsonfilter/value"
)

// ErrNotANumber is returned when a threshold cannot be parsed as a number.
var ErrNotANumber = errors.New("not a number")

// ThresholdFilter keeps only the records where the value found at Key (see
// value.Lookup) is not null and converts to a number strictly greater than
// Threshold.  Records where Key cannot be found are dropped.
//
// E.g. with Key="petal.length" and Threshold=1
//
//	{"petal": {"length": 2}}     -> kept
//	{"petal": {"length": "1.5"}} -> kept
//	{"petal": {"length": 1}}     -> dropped
//	{"petal": null}              -> dropped
type ThresholdFilter struct {
	Key       string
	Threshold float64
}

var _ RecordTransformer = &ThresholdFilter{}

// NewThresholdFilter parses rawThreshold with the same rules as
// value.ParseNumber.  It fails with ErrNotANumber if rawThreshold is not
// numeric.
func NewThresholdFilter(key string, rawThreshold string) (*ThresholdFilter, error) {
	threshold := value.ParseNumber(rawThreshold)
	if math.IsNaN(threshold) {
		return nil, fmt.Errorf("%w: %q", ErrNotANumber, rawThreshold)
	}
	return &ThresholdFilter{Key: key, Threshold: threshold}, nil
}

// TransformRecords implements the ThresholdFilter transform.
func (f *ThresholdFilter) TransformRecords(records []value.Value) []value.Value {
	kept := make([]value.Value, 0, len(records))
	for _, record := range records {
		if f.Keep(record) {
			kept = append(kept, record)
		}
	}
	return kept
}

// Keep reports whether the filter retains the record.
func (f *ThresholdFilter) Keep(record value.Value) bool {
	v, ok := value.Lookup(record, f.Key)
	if !ok {
		return false
	}
	if s, isScalar := v.(*value.Scalar); isScalar && s.IsNull() {
		return false
	}
	// Comparisons with NaN are always false
	return value.ToNumber(v) > f.Threshold
}

// DropField removes the field called Name from every object record which has
// it.  Such records are replaced with a copy; other records are passed on
// unchanged.
//
// E.g. with Name="variety"
//
//	{"a": 1, "variety": "Setosa"} -> {"a": 1}
//	{"a": 1}                      -> {"a": 1}
//	[1, 2]                        -> [1, 2]
type DropField struct {
	Name string
}

var _ RecordTransformer = DropField{}

// TransformRecords implements the DropField transform.
func (f DropField) TransformRecords(records []value.Value) []value.Value {
	out := make([]value.Value, len(records))
	for i, record := range records {
		if obj, ok := record.(*value.Object); ok {
			out[i] = obj.Without(f.Name)
		} else {
			out[i] = record
		}
	}
	return out
}
