package lox

// Environment is one lexical scope. Scopes only point outward, so a closure
// holding an Environment keeps its whole enclosing chain alive and nothing
// else.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

func NewGlobalEnvironment() *Environment {
	return NewEnvironment(nil)
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
	}
}

func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

// Define binds name in this scope, replacing any earlier binding of the same
// name here.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

func (e *Environment) Get(name Token) (Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if value, ok := env.values[name.Lexeme]; ok {
			return value, nil
		}
	}

	return nil, undefinedVariable(name)
}

// Assign updates the nearest scope that binds name. It never creates a
// binding.
func (e *Environment) Assign(name Token, value Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}

	return undefinedVariable(name)
}

func undefinedVariable(name Token) *RuntimeError {
	return runtimeErrorf(name, ErrUndefinedVariable, "Undefined variable '%s'.", name.Lexeme)
}
