package lox

// Callable is a value that can be invoked with a parenthesised argument list.
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

// Function is a user-declared function together with the scope it was
// declared in.
type Function struct {
	Declaration *FunctionStmt
	Closure     *Environment
}

func NewFunction(decl *FunctionStmt, closure *Environment) *Function {
	return &Function{
		Declaration: decl,
		Closure:     closure,
	}
}

func (*Function) value() {}

func (f *Function) String() string {
	return "<fn " + f.Declaration.Name.Lexeme + ">"
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Call runs the body in a fresh scope chained to the closure. A body that
// finishes without a return statement yields nil.
func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	if err := checkArity(f, args); err != nil {
		return nil, err
	}

	env := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	result, err := in.executeBlock(f.Declaration.Body, env)
	if err != nil {
		return nil, err
	}

	if result.returned {
		return result.value, nil
	}

	return Nil, nil
}

type NativeFunc = func(in *Interpreter, args []Value) (Value, error)

// Native is a function implemented in Go.
type Native struct {
	Name string
	N    int
	Fn   NativeFunc
}

func (*Native) value() {}

func (n *Native) String() string {
	return "<native fn>"
}

func (n *Native) Arity() int {
	return n.N
}

func (n *Native) Call(in *Interpreter, args []Value) (Value, error) {
	if err := checkArity(n, args); err != nil {
		return nil, err
	}

	return n.Fn(in, args)
}
