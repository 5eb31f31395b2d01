// Package value holds decoded JSON values in memory.
//
// A Value is one of
//
//	*Scalar  null, boolean, number or string
//	*Array   an ordered list of values
//	*Object  an ordered list of key/value fields
//
// Values are treated as immutable once built: operations which change a
// value, such as Object.Without, return a new value sharing the unchanged
// parts with the original.
package value

// Value is implemented by *Scalar, *Array and *Object only.
type Value interface {
	isValue()
}

// Array is a JSON array.
type Array struct {
	Items []Value
}

var _ Value = &Array{}

func NewArray(items ...Value) *Array {
	return &Array{Items: items}
}

func (a *Array) isValue() {}

func (a *Array) Len() int {
	return len(a.Items)
}

// Field is a key/value pair in an Object.
type Field struct {
	Key   *Scalar
	Value Value
}

// Object is a JSON object.  Fields are kept in the order they were added.
type Object struct {
	Fields []Field
}

var _ Value = &Object{}

func NewObject() *Object {
	return &Object{}
}

func (o *Object) isValue() {}

func (o *Object) Len() int {
	return len(o.Fields)
}

func (o *Object) index(key string) int {
	for i, f := range o.Fields {
		if f.Key.EqualsString(key) {
			return i
		}
	}
	return -1
}

// Get returns the value for the key and whether the object has that key.
func (o *Object) Get(key string) (Value, bool) {
	if i := o.index(key); i >= 0 {
		return o.Fields[i].Value, true
	}
	return nil, false
}

// Set adds a field to the object while it is being built.  If the key is
// already present, its value is replaced but the field keeps its position.
func (o *Object) Set(key *Scalar, value Value) {
	if i := o.index(key.ToString()); i >= 0 {
		o.Fields[i].Value = value
		return
	}
	o.Fields = append(o.Fields, Field{Key: key, Value: value})
}

// Without returns a copy of the object lacking the field with the given key.
// If there is no such field, the object itself is returned.
func (o *Object) Without(key string) *Object {
	i := o.index(key)
	if i < 0 {
		return o
	}
	fields := make([]Field, 0, len(o.Fields)-1)
	fields = append(fields, o.Fields[:i]...)
	fields = append(fields, o.Fields[i+1:]...)
	return &Object{Fields: fields}
}
