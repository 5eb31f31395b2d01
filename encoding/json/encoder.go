package json

import (
	"fmt"

	"github.com/arnodel/jsonfilter/internal/format"
	"github.com/arnodel/jsonfilter/value"
)

// An Encoder outputs JSON values using the given Printer instance for
// formatting.  Scalars are output with the literal representation they were
// decoded from.  The Colorizer is optional.
type Encoder struct {
	format.Printer
	*format.Colorizer
}

// Encode outputs a single JSON value.  An error is returned if the Printer
// could not perform some writing operation.
func (e *Encoder) Encode(v value.Value) (err error) {
	defer format.CatchPrinterError(&err)
	e.writeValue(v)
	return nil
}

func (e *Encoder) writeValue(v value.Value) {
	switch x := v.(type) {
	case *value.Scalar:
		e.Colorizer.PrintScalar(e.Printer, x)
	case *value.Object:
		e.writeObject(x)
	case *value.Array:
		e.writeArray(x)
	default:
		panic(fmt.Sprintf("invalid value: %#v", v))
	}
}

func (e *Encoder) writeObject(obj *value.Object) {
	e.PrintBytes(openObjectBytes)
	for i, field := range obj.Fields {
		if i > 0 {
			e.PrintBytes(itemSeparatorBytes)
			e.NewLine()
		} else {
			e.Indent()
		}
		e.Colorizer.PrintScalar(e.Printer, field.Key)
		e.PrintBytes(keyValueSeparatorBytes)
		e.writeValue(field.Value)
	}
	if len(obj.Fields) > 0 {
		e.Dedent()
	}
	e.PrintBytes(closeObjectBytes)
}

func (e *Encoder) writeArray(arr *value.Array) {
	e.PrintBytes(openArrayBytes)
	for i, item := range arr.Items {
		if i > 0 {
			e.PrintBytes(itemSeparatorBytes)
			e.NewLine()
		} else {
			e.Indent()
		}
		e.writeValue(item)
	}
	if len(arr.Items) > 0 {
		e.Dedent()
	}
	e.PrintBytes(closeArrayBytes)
}

var (
	openObjectBytes        = []byte("{")
	closeObjectBytes       = []byte("}")
	openArrayBytes         = []byte("[")
	closeArrayBytes        = []byte("]")
	itemSeparatorBytes     = []byte(",")
	keyValueSeparatorBytes = []byte(": ")
)
