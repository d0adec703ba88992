package lang

import (
	"math"
	"strconv"
)

// ObjectKind identifies the value held by an [Object].
type ObjectKind int

const (
	ObjectNil ObjectKind = iota
	ObjectInt
	ObjectFloat
	ObjectBool
	ObjectString
)

// String returns a string representation of the object kind.
func (k ObjectKind) String() string {
	switch k {
	case ObjectNil:
		return "nil"
	case ObjectInt:
		return "int"
	case ObjectFloat:
		return "float"
	case ObjectBool:
		return "bool"
	case ObjectString:
		return "string"
	default:
		return "unknown"
	}
}

// Object is a fully evaluated value ready for display.
// The zero Object is nil.
type Object struct {
	Kind  ObjectKind
	Int   int64
	Float float64
	Bool  bool
	Str   string
}

// IntObject returns an integer object.
func IntObject(v int64) Object { return Object{Kind: ObjectInt, Int: v} }

// FloatObject returns a float object.
func FloatObject(v float64) Object { return Object{Kind: ObjectFloat, Float: v} }

// BoolObject returns a boolean object.
func BoolObject(v bool) Object { return Object{Kind: ObjectBool, Bool: v} }

// StringObject returns a string object.
func StringObject(v string) Object { return Object{Kind: ObjectString, Str: v} }

// IsNil reports whether o is the nil object.
func (o Object) IsNil() bool { return o.Kind == ObjectNil }

// String formats o for display: nil, a decimal integer, a float with six
// fractional digits (inf and nan for non-finite values), True or False, or
// the raw string.
func (o Object) String() string {
	switch o.Kind {
	case ObjectInt:
		return strconv.FormatInt(o.Int, 10)
	case ObjectFloat:
		return formatFloat(o.Float)
	case ObjectBool:
		if o.Bool {
			return "True"
		}

		return "False"
	case ObjectString:
		return o.Str
	default:
		return "nil"
	}
}

func formatFloat(f float64) string {
	sign := ""
	if math.Signbit(f) {
		sign = "-"
	}

	switch {
	case math.IsNaN(f):
		return sign + "nan"
	case math.IsInf(f, 0):
		return sign + "inf"
	}

	return strconv.FormatFloat(f, 'f', 6, 64)
}

// Value returns the Go value held by o, or nil for the nil object.
func (o Object) Value() any {
	switch o.Kind {
	case ObjectInt:
		return o.Int
	case ObjectFloat:
		return o.Float
	case ObjectBool:
		return o.Bool
	case ObjectString:
		return o.Str
	default:
		return nil
	}
}

// ToMap returns o as a map suitable for JSON or YAML encoding.
func (o Object) ToMap() map[string]any {
	return map[string]any{
		"kind":  o.Kind.String(),
		"value": o.Value(),
	}
}
