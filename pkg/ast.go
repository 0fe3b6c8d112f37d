package lox

// Expr is an expression node. The implementations below are the complete set;
// consumers switch over them exhaustively.
type Expr interface {
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	stmtNode()
}

type LiteralExpr struct {
	Value Value
}

type GroupingExpr struct {
	Expression Expr
}

type UnaryExpr struct {
	Operator Token
	Operand  Expr
}

type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// LogicalExpr is a short-circuiting "and" / "or".
type LogicalExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

type VariableExpr struct {
	Name Token
}

type AssignExpr struct {
	Name  Token
	Value Expr
}

type CallExpr struct {
	Callee Expr
	Paren  Token // Closing paren, used to locate runtime errors
	Args   []Expr
}

func (*LiteralExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}

type ExpressionStmt struct {
	Expression Expr
}

type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a variable. Initializer is nil when omitted.
type VarStmt struct {
	Name        Token
	Initializer Expr
}

type BlockStmt struct {
	Statements []Stmt
}

// IfStmt has a nil Else when there is no else branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

type FunctionStmt struct {
	Name   Token
	Params []Token
	Body   []Stmt
}

// ReturnStmt has a nil Value for a bare "return;".
type ReturnStmt struct {
	Keyword Token
	Value   Expr
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
