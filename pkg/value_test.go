package lox

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		value  Value
		expect bool
	}{
		{Nil, false},
		{nil, false},
		{Bool(false), false},
		{Bool(true), true},
		{Number(0), true},
		{Number(-1), true},
		{String(""), true},
		{String("false"), true},
		{builtinClock(), true},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, IsTruthy(c.value), "%#v", c.value)
	}
}

func TestEqual(t *testing.T) {
	clock := builtinClock()

	cases := []struct {
		a, b   Value
		expect bool
	}{
		{Nil, Nil, true},
		{Nil, Bool(false), false},
		{Bool(true), Bool(true), true},
		{Bool(true), Bool(false), false},
		{Number(1), Number(1), true},
		{Number(1), String("1"), false},
		{String("a"), String("a"), true},
		{String("a"), String("b"), false},
		{Number(0), Bool(false), false},
		{clock, clock, true},
		{clock, builtinClock(), false},
		{Number(math.NaN()), Number(math.NaN()), false},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, Equal(c.a, c.b), "%v == %v", c.a, c.b)
		assert.Equal(t, c.expect, Equal(c.b, c.a), "%v == %v", c.b, c.a)
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		value  Value
		expect string
	}{
		{Nil, "nil"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(7), "7"},
		{Number(-0.5), "-0.5"},
		{Number(2.5), "2.5"},
		{Number(0.1 + 0.2), "0.3"},
		{Number(1.0 / 3), "0.333333"},
		{Number(123456), "123456"},
		{Number(1234567), "1.23457e+06"},
		{Number(1e8), "1e+08"},
		{Number(0.0001), "0.0001"},
		{Number(0.00001), "1e-05"},
		{Number(math.Copysign(0, -1)), "-0"},
		{Number(math.Inf(1)), "inf"},
		{Number(math.Inf(-1)), "-inf"},
		{Number(math.NaN()), "nan"},
		{String("text"), "text"},
		{builtinClock(), "<native fn>"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, c.value.String())
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "nil", TypeName(Nil))
	assert.Equal(t, "boolean", TypeName(Bool(true)))
	assert.Equal(t, "number", TypeName(Number(1)))
	assert.Equal(t, "string", TypeName(String("")))
	assert.Equal(t, "function", TypeName(builtinClock()))
}
