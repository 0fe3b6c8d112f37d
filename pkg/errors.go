package lox

import (
	"errors"
	"fmt"
)

// Runtime error kinds. A *RuntimeError wraps exactly one of these, so callers
// can test with errors.Is.
var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrNotCallable       = errors.New("not callable")
	ErrArity             = errors.New("arity mismatch")
)

// RuntimeError aborts the statement sequence being executed. Token locates the
// failure in the source.
type RuntimeError struct {
	Token   Token
	Kind    error
	Message string
}

func runtimeErrorf(tok Token, kind error, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{
		Token:   tok,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s [line %d]", e.Message, e.Token.Line)
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}

// SyntaxError is a parse failure at a token. The parser reports it and then
// resynchronizes, so it never escapes Parse.
type SyntaxError struct {
	Token   Token
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, e.Where(), e.Message)
}

// Where describes the error location the way diagnostics print it.
func (e *SyntaxError) Where() string {
	if e.Token.Typ == TokenEOF {
		return " at end"
	}

	return " at '" + e.Token.Lexeme + "'"
}

// checkArity is the argument count guard every Callable runs first.
func checkArity(c Callable, args []Value) error {
	if len(args) != c.Arity() {
		return fmt.Errorf("%w: Expected %d arguments but got %d.", ErrArity, c.Arity(), len(args))
	}

	return nil
}
