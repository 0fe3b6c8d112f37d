package lox

import (
	"fmt"
	"sort"
	"time"
)

type nativeDefinition = func() *Native

var builtins = map[string]nativeDefinition{
	"clock": builtinClock,
}

// DefaultNatives lists the natives a session registers unless told otherwise.
var DefaultNatives = []string{"clock"}

// BuiltinNames returns the names of every native that can be registered.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func defineBuiltins(env *Environment, names []string) error {
	for _, name := range names {
		definition, ok := builtins[name]
		if !ok {
			return fmt.Errorf("unknown native function %q", name)
		}

		defineBuiltinFunc(env, name, definition)
	}

	return nil
}

func defineBuiltinFunc(env *Environment, name string, definition nativeDefinition) {
	f := definition()
	f.Name = name
	env.Define(name, f)
}

// builtinClock returns milliseconds since the Unix epoch.
func builtinClock() *Native {
	return &Native{
		N: 0,
		Fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return Number(float64(time.Now().UnixMilli())), nil
		},
	}
}
