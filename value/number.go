package value

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// ParseNumber converts a string to a number the way JavaScript's Number()
// does.  Surrounding white space is ignored, the empty string is 0, integers
// may use the 0x, 0o or 0b prefixes and "Infinity" is accepted with an
// optional sign.  Anything else that is not a decimal literal gives NaN.
func ParseNumber(s string) float64 {
	s = TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseInteger(s[2:], 16)
		case 'o', 'O':
			return parseInteger(s[2:], 8)
		case 'b', 'B':
			return parseInteger(s[2:], 2)
		}
	}
	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	// Out of range literals still come back as ±Inf or 0, like in JavaScript.
	x, _ := strconv.ParseFloat(s, 64)
	return x
}

func parseInteger(digits string, base int) float64 {
	var x float64
	for _, c := range digits {
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'z':
			d = int(c-'a') + 10
		case c >= 'A' && c <= 'Z':
			d = int(c-'A') + 10
		default:
			return math.NaN()
		}
		if d >= base {
			return math.NaN()
		}
		x = x*float64(base) + float64(d)
	}
	return x
}

// ToNumber coerces a JSON value to a number following JavaScript's rules:
// null is 0, booleans are 0 or 1, strings go through ParseNumber, an array
// is converted via its string form (so only empty or single item arrays can
// be numbers) and objects are NaN.
func ToNumber(v Value) float64 {
	switch x := v.(type) {
	case *Scalar:
		switch x.Type() {
		case Null:
			return 0
		case Boolean:
			if x.Bytes[0] == 't' {
				return 1
			}
			return 0
		case Number:
			n, _ := strconv.ParseFloat(string(x.Bytes), 64)
			return n
		default:
			return ParseNumber(x.ToString())
		}
	case *Array:
		switch len(x.Items) {
		case 0:
			return 0
		case 1:
			return arrayItemToNumber(x.Items[0])
		}
	}
	return math.NaN()
}

// arrayItemToNumber is ToNumber applied to the string form of a single item
// array.
func arrayItemToNumber(item Value) float64 {
	if s, ok := item.(*Scalar); ok && s.Type() == Boolean {
		// "true" and "false" are not numbers
		return math.NaN()
	}
	return ToNumber(item)
}

// TrimSpace removes leading and trailing white space, including the
// byte order mark, as JavaScript's String.prototype.trim does.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return r == '\uFEFF' || unicode.IsSpace(r)
}
