package lox

import (
	"strconv"
	"strings"
)

// Sprint renders statements in parenthesised prefix form, one per line, e.g.
// "(print (+ 1 (* 2 3)))". It is meant for debugging the parser.
func Sprint(stmts []Stmt) string {
	var str strings.Builder
	for _, stmt := range stmts {
		writeStmt(&str, stmt)
		str.WriteByte('\n')
	}

	return str.String()
}

// SprintExpr renders a single expression.
func SprintExpr(expr Expr) string {
	var str strings.Builder
	writeExpr(&str, expr)

	return str.String()
}

func writeStmt(str *strings.Builder, stmt Stmt) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		parenthesize(str, ";", s.Expression)
	case *PrintStmt:
		parenthesize(str, "print", s.Expression)
	case *VarStmt:
		if s.Initializer == nil {
			str.WriteString("(var " + s.Name.Lexeme + ")")
			return
		}

		parenthesize(str, "var "+s.Name.Lexeme, s.Initializer)
	case *BlockStmt:
		str.WriteString("(block")
		for _, inner := range s.Statements {
			str.WriteByte(' ')
			writeStmt(str, inner)
		}
		str.WriteByte(')')
	case *IfStmt:
		str.WriteString("(if ")
		writeExpr(str, s.Condition)
		str.WriteByte(' ')
		writeStmt(str, s.Then)
		if s.Else != nil {
			str.WriteByte(' ')
			writeStmt(str, s.Else)
		}
		str.WriteByte(')')
	case *WhileStmt:
		str.WriteString("(while ")
		writeExpr(str, s.Condition)
		str.WriteByte(' ')
		writeStmt(str, s.Body)
		str.WriteByte(')')
	case *FunctionStmt:
		str.WriteString("(fun " + s.Name.Lexeme + " (")
		for i, param := range s.Params {
			if i > 0 {
				str.WriteByte(' ')
			}
			str.WriteString(param.Lexeme)
		}
		str.WriteByte(')')
		for _, inner := range s.Body {
			str.WriteByte(' ')
			writeStmt(str, inner)
		}
		str.WriteByte(')')
	case *ReturnStmt:
		if s.Value == nil {
			str.WriteString("(return)")
			return
		}

		parenthesize(str, "return", s.Value)
	}
}

func writeExpr(str *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *LiteralExpr:
		if s, ok := e.Value.(String); ok {
			str.WriteString(strconv.Quote(string(s)))
			return
		}

		if e.Value == nil {
			str.WriteString("nil")
			return
		}

		str.WriteString(e.Value.String())
	case *GroupingExpr:
		parenthesize(str, "group", e.Expression)
	case *UnaryExpr:
		parenthesize(str, e.Operator.Lexeme, e.Operand)
	case *BinaryExpr:
		parenthesize(str, e.Operator.Lexeme, e.Left, e.Right)
	case *LogicalExpr:
		parenthesize(str, e.Operator.Lexeme, e.Left, e.Right)
	case *VariableExpr:
		str.WriteString(e.Name.Lexeme)
	case *AssignExpr:
		parenthesize(str, "= "+e.Name.Lexeme, e.Value)
	case *CallExpr:
		str.WriteString("(call ")
		writeExpr(str, e.Callee)
		for _, arg := range e.Args {
			str.WriteByte(' ')
			writeExpr(str, arg)
		}
		str.WriteByte(')')
	}
}

func parenthesize(str *strings.Builder, name string, exprs ...Expr) {
	str.WriteString("(" + name)
	for _, expr := range exprs {
		str.WriteByte(' ')
		writeExpr(str, expr)
	}
	str.WriteByte(')')
}
