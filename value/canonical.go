package value

import (
	"cmp"
	"math"
	"slices"
	"strconv"
)

// Canonical returns a copy of v in the form JSON.stringify would output it.
//
//   - numbers are reformatted (1E2 -> 100, 2.0 -> 2, 1e400 -> null)
//   - strings are re-quoted with the minimum of escapes ("\u00e9" -> "é")
//   - object keys which are array indices ("0", "17") come first in
//     increasing order, other keys keep their order
//
// v itself is not modified.
func Canonical(v Value) Value {
	switch x := v.(type) {
	case *Scalar:
		return canonicalScalar(x)
	case *Array:
		items := make([]Value, len(x.Items))
		for i, item := range x.Items {
			items[i] = Canonical(item)
		}
		return &Array{Items: items}
	case *Object:
		return canonicalObject(x)
	default:
		return v
	}
}

func canonicalScalar(s *Scalar) *Scalar {
	switch s.Type() {
	case Number:
		// Out of range literals parse as ±Inf or 0 with an error
		x, _ := strconv.ParseFloat(string(s.Bytes), 64)
		return NumberScalar(x)
	case String:
		if s.IsUnescaped() {
			return s
		}
		c := StringScalar(s.ToString())
		c.TypeAndFlags |= s.TypeAndFlags & KeyMask
		return c
	default:
		return s
	}
}

func canonicalObject(obj *Object) *Object {
	type entry struct {
		field   Field
		index   uint64
		isIndex bool
	}
	entries := make([]entry, len(obj.Fields))
	for i, f := range obj.Fields {
		index, isIndex := arrayIndex(f.Key.ToString())
		entries[i] = entry{
			field:   Field{Key: canonicalScalar(f.Key), Value: Canonical(f.Value)},
			index:   index,
			isIndex: isIndex,
		}
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		switch {
		case a.isIndex && b.isIndex:
			return cmp.Compare(a.index, b.index)
		case a.isIndex:
			return -1
		case b.isIndex:
			return 1
		default:
			return 0
		}
	})
	fields := make([]Field, len(entries))
	for i, e := range entries {
		fields[i] = e.field
	}
	return &Object{Fields: fields}
}

// arrayIndex reports whether key is the canonical decimal form of an integer
// between 0 and 2^32-2, and returns that integer.
func arrayIndex(key string) (uint64, bool) {
	if key == "" || len(key) > 10 || (key[0] == '0' && len(key) > 1) {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(key, 10, 64)
	if err != nil || n >= math.MaxUint32 {
		return 0, false
	}
	return n, true
}
