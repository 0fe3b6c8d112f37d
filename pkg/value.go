package lox

import (
	"math"
	"strconv"
)

// Value is a runtime datum. The set of implementations is closed: Nil, Bool,
// Number, String and the Callable variants declared in this package.
type Value interface {
	String() string
	value()
}

type (
	NilValue struct{}
	Bool     bool
	Number   float64
	String   string
)

var Nil = NilValue{}

var (
	_ Value = Nil
	_ Value = Bool(false)
	_ Value = Number(0)
	_ Value = String("")
	_ Value = (*Function)(nil)
	_ Value = (*Native)(nil)
)

func (NilValue) value() {}
func (Bool) value()     {}
func (Number) value()   {}
func (String) value()   {}

func (NilValue) String() string {
	return "nil"
}

func (b Bool) String() string {
	if b {
		return "true"
	}

	return "false"
}

// String prints n like %g with six significant digits, so 1/3 is 0.333333
// and 1e8 is 1e+08.
func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	return strconv.FormatFloat(f, 'g', 6, 64)
}

func (s String) String() string {
	return string(s)
}

// IsTruthy reports whether v counts as true in a condition. Only nil and false
// are falsy.
func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case nil, NilValue:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// Equal compares two values. Values of different variants are never equal and
// callables compare by identity; Equal never fails.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil, NilValue:
		switch b.(type) {
		case nil, NilValue:
			return true
		}
		return false
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Callable:
		b, ok := b.(Callable)
		return ok && a == b
	}

	return false
}

// TypeName is the user-facing name of v's variant.
func TypeName(v Value) string {
	switch v.(type) {
	case nil, NilValue:
		return "nil"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Callable:
		return "function"
	}

	return "unknown"
}
