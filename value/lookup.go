package value

import "strings"

// Lookup finds the value designated by key in v.
//
// If v is an object with its own field named exactly key, that field's value
// is returned.  Otherwise key is split on '.' and each segment is looked up
// in turn, descending through nested objects.  The walk stops as soon as a
// segment is missing or the current value is not an object (JSON null
// included), in which case ok is false.
//
// A null found at the end of the path is returned with ok set to true.
func Lookup(v Value, key string) (found Value, ok bool) {
	obj, isObj := v.(*Object)
	if !isObj {
		return nil, false
	}
	if found, ok = obj.Get(key); ok {
		return found, true
	}
	found = v
	for _, part := range strings.Split(key, ".") {
		obj, isObj = found.(*Object)
		if !isObj {
			return nil, false
		}
		if found, ok = obj.Get(part); !ok {
			return nil, false
		}
	}
	return found, true
}
