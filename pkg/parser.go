package lox

import (
	"errors"
)

// maxArgs caps argument and parameter lists.
const maxArgs = 255

// Parser builds statements from a token slice by recursive descent. A syntax
// error inside a declaration is reported, the parser skips to the next
// statement boundary and carries on, so one run surfaces every malformed
// statement.
type Parser struct {
	tokens   []Token
	current  int
	reporter Reporter

	// Depth of enclosing function bodies, for rejecting top-level returns
	funcDepth int
}

func NewParser(tokens []Token, reporter Reporter) *Parser {
	return &Parser{
		tokens:   tokens,
		reporter: reporter,
	}
}

// Parse is a shorthand for NewParser(tokens, reporter).Run().
func Parse(tokens []Token, reporter Reporter) []Stmt {
	return NewParser(tokens, reporter).Run()
}

// Run parses declarations until EOF. Statements that failed to parse are
// left out of the result.
func (p *Parser) Run() []Stmt {
	var stmts []Stmt
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	return stmts
}

func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		// Token streams without a trailing EOF are treated as if they had one
		line := 1
		if len(p.tokens) > 0 {
			line = p.tokens[len(p.tokens)-1].Line
		}

		return Token{Typ: TokenEOF, Line: line}
	}

	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Typ == TokenEOF
}

func (p *Parser) next() Token {
	if !p.atEnd() {
		p.current++
	}

	return p.previous()
}

func (p *Parser) check(typ TokenType) bool {
	return p.peek().Typ == typ
}

func (p *Parser) match(types ...TokenType) bool {
	for _, typ := range types {
		if p.check(typ) {
			p.next()
			return true
		}
	}

	return false
}

func (p *Parser) consume(typ TokenType, message string) (Token, error) {
	if p.check(typ) {
		return p.next(), nil
	}

	return Token{}, p.errorf(p.peek(), message)
}

func (p *Parser) errorf(tok Token, message string) error {
	return &SyntaxError{Token: tok, Message: message}
}

func (p *Parser) report(err error) {
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) || p.reporter == nil {
		return
	}

	p.reporter.Report(syntaxErr.Token.Line, syntaxErr.Where(), syntaxErr.Message)
}

// synchronize discards tokens until the start of the next statement.
func (p *Parser) synchronize() {
	p.next()

	for !p.atEnd() {
		if p.previous().Typ == TokenSemicolon {
			return
		}

		switch p.peek().Typ {
		case TokenClass, TokenFun, TokenVar, TokenFor, TokenIf, TokenWhile, TokenPrint, TokenReturn:
			return
		}

		p.next()
	}
}

func (p *Parser) declaration() Stmt {
	var (
		stmt Stmt
		err  error
	)

	switch {
	case p.match(TokenFun):
		stmt, err = p.funcDecl()
	case p.match(TokenVar):
		stmt, err = p.varDecl()
	default:
		stmt, err = p.statement()
	}

	if err != nil {
		p.report(err)
		p.synchronize()

		return nil
	}

	return stmt
}

func (p *Parser) funcDecl() (Stmt, error) {
	name, err := p.consume(TokenIdentifier, "Expect function name.")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenLeftParen, "Expect '(' after function name."); err != nil {
		return nil, err
	}

	var params []Token
	if !p.check(TokenRightParen) {
		for {
			if len(params) >= maxArgs {
				p.report(p.errorf(p.peek(), "Can't have more than 255 parameters."))
			}

			param, err := p.consume(TokenIdentifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)

			if !p.match(TokenComma) {
				break
			}
		}
	}

	if _, err := p.consume(TokenRightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenLeftBrace, "Expect '{' before function body."); err != nil {
		return nil, err
	}

	p.funcDepth++
	defer func() { p.funcDepth-- }()

	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}

	return &FunctionStmt{
		Name:   name,
		Params: params,
		Body:   body,
	}, nil
}

func (p *Parser) varDecl() (Stmt, error) {
	name, err := p.consume(TokenIdentifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(TokenEqual) {
		if initializer, err = p.expr(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}

	return &VarStmt{
		Name:        name,
		Initializer: initializer,
	}, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(TokenPrint):
		return p.printStmt()
	case p.match(TokenIf):
		return p.ifStmt()
	case p.match(TokenWhile):
		return p.whileStmt()
	case p.match(TokenFor):
		return p.forStmt()
	case p.match(TokenReturn):
		return p.returnStmt()
	case p.match(TokenLeftBrace):
		stmts, err := p.blockStmt()
		if err != nil {
			return nil, err
		}

		return &BlockStmt{Statements: stmts}, nil
	default:
		return p.exprStmt()
	}
}

func (p *Parser) printStmt() (Stmt, error) {
	value, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}

	return &PrintStmt{Expression: value}, nil
}

func (p *Parser) exprStmt() (Stmt, error) {
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}

	return &ExpressionStmt{Expression: expr}, nil
}

func (p *Parser) ifStmt() (Stmt, error) {
	if _, err := p.consume(TokenLeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}

	condition, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenRightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var otherwise Stmt
	if p.match(TokenElse) {
		if otherwise, err = p.statement(); err != nil {
			return nil, err
		}
	}

	return &IfStmt{
		Condition: condition,
		Then:      then,
		Else:      otherwise,
	}, nil
}

func (p *Parser) whileStmt() (Stmt, error) {
	if _, err := p.consume(TokenLeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}

	condition, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenRightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &WhileStmt{
		Condition: condition,
		Body:      body,
	}, nil
}

// forStmt desugars "for (init; cond; incr) body" into
// { init; while (cond) { body; incr; } }.
func (p *Parser) forStmt() (Stmt, error) {
	if _, err := p.consume(TokenLeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var (
		initializer Stmt
		err         error
	)

	switch {
	case p.match(TokenSemicolon):
	case p.match(TokenVar):
		initializer, err = p.varDecl()
	default:
		initializer, err = p.exprStmt()
	}
	if err != nil {
		return nil, err
	}

	var condition Expr
	if !p.check(TokenSemicolon) {
		if condition, err = p.expr(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(TokenRightParen) {
		if increment, err = p.expr(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenRightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}

	if condition == nil {
		condition = &LiteralExpr{Value: Bool(true)}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}

	return body, nil
}

func (p *Parser) returnStmt() (Stmt, error) {
	keyword := p.previous()
	if p.funcDepth == 0 {
		p.report(p.errorf(keyword, "Can't return from top-level code."))
	}

	var (
		value Expr
		err   error
	)
	if !p.check(TokenSemicolon) {
		if value, err = p.expr(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after return value."); err != nil {
		return nil, err
	}

	return &ReturnStmt{
		Keyword: keyword,
		Value:   value,
	}, nil
}

// blockStmt parses declarations up to the closing brace. The opening brace
// has already been consumed.
func (p *Parser) blockStmt() ([]Stmt, error) {
	var stmts []Stmt
	for !p.check(TokenRightBrace) && !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if _, err := p.consume(TokenRightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}

	return stmts, nil
}

func (p *Parser) expr() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(TokenEqual) {
		equals := p.previous()

		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if v, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{
				Name:  v.Name,
				Value: value,
			}, nil
		}

		// Reported, but the statement still parses
		p.report(p.errorf(equals, "Invalid assignment target."))
	}

	return expr, nil
}

func (p *Parser) or() (Expr, error) {
	return p.logical(p.and, TokenOr)
}

func (p *Parser) and() (Expr, error) {
	return p.logical(p.equality, TokenAnd)
}

func (p *Parser) logical(operand func() (Expr, error), op TokenType) (Expr, error) {
	lhs, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(op) {
		operator := p.previous()

		rhs, err := operand()
		if err != nil {
			return nil, err
		}

		lhs = &LogicalExpr{
			Left:     lhs,
			Operator: operator,
			Right:    rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) equality() (Expr, error) {
	return p.binary(p.comparison, TokenBangEqual, TokenEqualEqual)
}

func (p *Parser) comparison() (Expr, error) {
	return p.binary(p.term, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual)
}

func (p *Parser) term() (Expr, error) {
	return p.binary(p.factor, TokenMinus, TokenPlus)
}

func (p *Parser) factor() (Expr, error) {
	return p.binary(p.unary, TokenSlash, TokenStar)
}

// binary parses a left-associative chain such as 1 - 2 + 3, folding each
// operator into the left operand.
func (p *Parser) binary(operand func() (Expr, error), ops ...TokenType) (Expr, error) {
	lhs, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		operator := p.previous()

		rhs, err := operand()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Left:     lhs,
			Operator: operator,
			Right:    rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(TokenBang, TokenMinus) {
		operator := p.previous()

		operand, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{
			Operator: operator,
			Operand:  operand,
		}, nil
	}

	return p.call()
}

func (p *Parser) call() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for p.match(TokenLeftParen) {
		if expr, err = p.finishCall(expr); err != nil {
			return nil, err
		}
	}

	return expr, nil
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	var args []Expr
	if !p.check(TokenRightParen) {
		for {
			if len(args) >= maxArgs {
				p.report(p.errorf(p.peek(), "Can't have more than 255 arguments."))
			}

			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if !p.match(TokenComma) {
				break
			}
		}
	}

	paren, err := p.consume(TokenRightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}

	return &CallExpr{
		Callee: callee,
		Paren:  paren,
		Args:   args,
	}, nil
}

func (p *Parser) primary() (Expr, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenFalse:
		p.next()
		return &LiteralExpr{Value: Bool(false)}, nil
	case TokenTrue:
		p.next()
		return &LiteralExpr{Value: Bool(true)}, nil
	case TokenNil:
		p.next()
		return &LiteralExpr{Value: Nil}, nil
	case TokenNumber, TokenString:
		p.next()
		return &LiteralExpr{Value: tok.Literal}, nil
	case TokenIdentifier:
		p.next()
		return &VariableExpr{Name: tok}, nil
	case TokenLeftParen:
		return p.parenthesisedExpression()
	default:
		return nil, p.errorf(tok, "Expect expression.")
	}
}

func (p *Parser) parenthesisedExpression() (Expr, error) {
	p.next() // Opening parenthesis

	expr, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenRightParen, "Expect ')' after expression."); err != nil {
		return nil, err
	}

	return &GroupingExpr{Expression: expr}, nil
}
