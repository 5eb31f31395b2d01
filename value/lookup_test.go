package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	nested := object("petal", object("length", NumberScalar(1.4)))
	literal := object("petal.length", NumberScalar(7), "petal", object("length", NumberScalar(1)))

	tests := []struct {
		name   string
		record Value
		want   string
		found  bool
	}{
		{name: "nested path", record: nested, want: "1.4", found: true},
		{name: "literal key takes precedence", record: literal, want: "7", found: true},
		{name: "missing top level", record: object("sepal", NullScalar)},
		{name: "missing leaf", record: object("petal", object("width", NumberScalar(1)))},
		{name: "null intermediate", record: object("petal", NullScalar)},
		{name: "scalar intermediate", record: object("petal", StringScalar("abc"))},
		{name: "array intermediate", record: object("petal", NewArray(NumberScalar(1)))},
		{name: "null leaf", record: object("petal", object("length", NullScalar)), want: "null", found: true},
		{name: "scalar record", record: NumberScalar(3)},
		{name: "array record", record: NewArray(nested)},
		{name: "null record", record: NullScalar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Lookup(tt.record, "petal.length")
			require.Equal(t, tt.found, ok)
			if !tt.found {
				assert.Nil(t, v)
				return
			}
			assert.Equal(t, tt.want, v.(*Scalar).String())
		})
	}
}

func TestLookupSingleSegment(t *testing.T) {
	v, ok := Lookup(object("variety", StringScalar("Setosa")), "variety")
	require.True(t, ok)
	assert.Equal(t, "Setosa", v.(*Scalar).ToString())
}

func TestLookupReturnsContainers(t *testing.T) {
	inner := object("length", NumberScalar(2))
	v, ok := Lookup(object("petal", inner), "petal")
	require.True(t, ok)
	assert.Same(t, inner, v)
}
