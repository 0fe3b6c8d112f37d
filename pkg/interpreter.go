package lox

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// MaxCallDepth bounds nested calls so runaway recursion surfaces as a runtime
// error instead of exhausting the Go stack.
const MaxCallDepth = 4096

// ErrStackOverflow is wrapped by the runtime error raised past MaxCallDepth.
var ErrStackOverflow = errors.New("stack overflow")

// completion is the outcome of executing a statement. A return statement
// sets returned, which unwinds every enclosing statement up to the call.
type completion struct {
	returned bool
	value    Value
}

// Interpreter walks statements against a current scope. The global scope
// persists across calls to Interpret.
type Interpreter struct {
	globals *Environment
	env     *Environment
	depth   int

	out    io.Writer
	logger *slog.Logger
}

type Option func(*Interpreter)

// WithOutput sets where print statements write. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.out = w
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

func NewInterpreter(opts ...Option) *Interpreter {
	globals := NewGlobalEnvironment()

	in := &Interpreter{
		globals: globals,
		env:     globals,
		out:     os.Stdout,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

func (in *Interpreter) Globals() *Environment {
	return in.globals
}

// DefineNatives registers the named built-in functions as globals.
func (in *Interpreter) DefineNatives(names []string) error {
	if err := defineBuiltins(in.globals, names); err != nil {
		return err
	}

	in.logger.Debug("natives defined", "names", names)
	return nil
}

// Interpret executes stmts in order. The first runtime error stops execution
// and is returned; side effects of earlier statements remain.
func (in *Interpreter) Interpret(stmts []Stmt) error {
	for _, stmt := range stmts {
		result, err := in.execute(stmt)
		if err != nil {
			in.logger.Debug("runtime error", "error", err)
			return err
		}

		if result.returned {
			return nil
		}
	}

	return nil
}

func (in *Interpreter) execute(stmt Stmt) (completion, error) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return completion{}, err
	case *PrintStmt:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return completion{}, err
		}

		fmt.Fprintln(in.out, value.String())
		return completion{}, nil
	case *VarStmt:
		var value Value = Nil
		if s.Initializer != nil {
			var err error
			if value, err = in.evaluate(s.Initializer); err != nil {
				return completion{}, err
			}
		}

		in.env.Define(s.Name.Lexeme, value)
		return completion{}, nil
	case *BlockStmt:
		return in.executeBlock(s.Statements, NewEnvironment(in.env))
	case *IfStmt:
		condition, err := in.evaluate(s.Condition)
		if err != nil {
			return completion{}, err
		}

		if IsTruthy(condition) {
			return in.execute(s.Then)
		}

		if s.Else != nil {
			return in.execute(s.Else)
		}

		return completion{}, nil
	case *WhileStmt:
		for {
			condition, err := in.evaluate(s.Condition)
			if err != nil {
				return completion{}, err
			}

			if !IsTruthy(condition) {
				return completion{}, nil
			}

			result, err := in.execute(s.Body)
			if err != nil || result.returned {
				return result, err
			}
		}
	case *FunctionStmt:
		in.env.Define(s.Name.Lexeme, NewFunction(s, in.env))
		return completion{}, nil
	case *ReturnStmt:
		var value Value = Nil
		if s.Value != nil {
			var err error
			if value, err = in.evaluate(s.Value); err != nil {
				return completion{}, err
			}
		}

		return completion{returned: true, value: value}, nil
	}

	return completion{}, fmt.Errorf("unknown statement %T", stmt)
}

// executeBlock runs stmts with env as the current scope. The previous scope
// is restored on every exit path.
func (in *Interpreter) executeBlock(stmts []Stmt, env *Environment) (completion, error) {
	previous := in.env
	in.env = env
	defer func() {
		in.env = previous
	}()

	for _, stmt := range stmts {
		result, err := in.execute(stmt)
		if err != nil || result.returned {
			return result, err
		}
	}

	return completion{}, nil
}

func (in *Interpreter) evaluate(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		if e.Value == nil {
			return Nil, nil
		}

		return e.Value, nil
	case *GroupingExpr:
		return in.evaluate(e.Expression)
	case *UnaryExpr:
		return in.unary(e)
	case *BinaryExpr:
		return in.binary(e)
	case *LogicalExpr:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}

		if e.Operator.Typ == TokenOr {
			if IsTruthy(left) {
				return left, nil
			}
		} else if !IsTruthy(left) {
			return left, nil
		}

		return in.evaluate(e.Right)
	case *VariableExpr:
		return in.env.Get(e.Name)
	case *AssignExpr:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}

		if err := in.env.Assign(e.Name, value); err != nil {
			return nil, err
		}

		return value, nil
	case *CallExpr:
		return in.call(e)
	}

	return nil, fmt.Errorf("unknown expression %T", expr)
}

func (in *Interpreter) unary(e *UnaryExpr) (Value, error) {
	operand, err := in.evaluate(e.Operand)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Typ {
	case TokenBang:
		return Bool(!IsTruthy(operand)), nil
	case TokenMinus:
		n, ok := operand.(Number)
		if !ok {
			return nil, runtimeErrorf(e.Operator, ErrTypeMismatch, "Operand must be a number.")
		}

		return -n, nil
	}

	return nil, runtimeErrorf(e.Operator, ErrTypeMismatch, "Unknown unary operator '%s'.", e.Operator.Lexeme)
}

func (in *Interpreter) binary(e *BinaryExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Typ {
	case TokenEqualEqual:
		return Bool(Equal(left, right)), nil
	case TokenBangEqual:
		return Bool(!Equal(left, right)), nil
	}

	if TypeName(left) != TypeName(right) {
		return nil, runtimeErrorf(e.Operator, ErrTypeMismatch, "Operand type mismatch.")
	}

	if e.Operator.Typ == TokenPlus {
		switch l := left.(type) {
		case Number:
			return l + right.(Number), nil
		case String:
			return l + right.(String), nil
		}

		return nil, runtimeErrorf(e.Operator, ErrTypeMismatch, "Operands must be both numbers or both strings.")
	}

	l, lok := left.(Number)
	r, rok := right.(Number)
	if !lok || !rok {
		return nil, runtimeErrorf(e.Operator, ErrTypeMismatch, "Operands must be numbers.")
	}

	switch e.Operator.Typ {
	case TokenMinus:
		return l - r, nil
	case TokenStar:
		return l * r, nil
	case TokenSlash:
		return l / r, nil
	case TokenGreater:
		return Bool(l > r), nil
	case TokenGreaterEqual:
		return Bool(l >= r), nil
	case TokenLess:
		return Bool(l < r), nil
	case TokenLessEqual:
		return Bool(l <= r), nil
	}

	return nil, runtimeErrorf(e.Operator, ErrTypeMismatch, "Unknown binary operator '%s'.", e.Operator.Lexeme)
}

func (in *Interpreter) call(e *CallExpr) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Args))
	for _, arg := range e.Args {
		value, err := in.evaluate(arg)
		if err != nil {
			return nil, err
		}

		args = append(args, value)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren, ErrNotCallable, "Can only call functions and classes.")
	}

	if len(args) != fn.Arity() {
		return nil, runtimeErrorf(e.Paren, ErrArity, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}

	if in.depth >= MaxCallDepth {
		return nil, runtimeErrorf(e.Paren, ErrStackOverflow, "Stack overflow.")
	}

	in.depth++
	defer func() {
		in.depth--
	}()

	value, err := fn.Call(in, args)
	if err != nil {
		var rtErr *RuntimeError
		if errors.As(err, &rtErr) {
			return nil, err
		}

		// Errors from natives get the call site attached
		return nil, &RuntimeError{Token: e.Paren, Kind: err, Message: err.Error()}
	}

	return value, nil
}
