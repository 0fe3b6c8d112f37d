package lox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.treelox.dev/internal/test"
)

func parseSource(t *testing.T, source string) ([]Stmt, *Diagnostics) {
	t.Helper()

	diags := &Diagnostics{}
	stmts := Parse(Scan(source, diags), diags)

	return stmts, diags
}

func TestParser(t *testing.T) {
	cases := []struct {
		data   []Token
		fail   bool
		expect []Stmt
	}{
		{
			[]Token{
				{TokenFun, "fun", nil, 1},
				{TokenIdentifier, "main", nil, 1},
				{TokenLeftParen, "(", nil, 1},
				{TokenRightParen, ")", nil, 1},
				{TokenLeftBrace, "{", nil, 1},
				{TokenRightBrace, "}", nil, 1},
				{TokenEOF, "", nil, 1},
			},
			false,
			[]Stmt{
				&FunctionStmt{
					Name: Token{TokenIdentifier, "main", nil, 1},
					Body: nil,
				},
			},
		},
		{
			[]Token{
				{TokenEOF, "", nil, 1},
			},
			false,
			nil,
		},
		{
			[]Token{
				{TokenVar, "var", nil, 1},
				{TokenIdentifier, "únicódeShouldBeVàlid", nil, 1},
				{TokenEqual, "=", nil, 1},
				{TokenNumber, "1", Number(1), 1},
				{TokenSemicolon, ";", nil, 1},
				{TokenEOF, "", nil, 1},
			},
			false,
			[]Stmt{
				&VarStmt{
					Name:        Token{TokenIdentifier, "únicódeShouldBeVàlid", nil, 1},
					Initializer: &LiteralExpr{Value: Number(1)},
				},
			},
		},
		{
			[]Token{
				{TokenFun, "fun", nil, 1},
				{TokenLeftBrace, "{", nil, 1},
				{TokenRightBrace, "}", nil, 1},
				{TokenEOF, "", nil, 1},
			},
			true,
			nil,
		},
		{
			// No trailing EOF token
			[]Token{
				{TokenPrint, "print", nil, 1},
				{TokenString, "\"string\"", String("string"), 1},
				{TokenSemicolon, ";", nil, 1},
			},
			false,
			[]Stmt{
				&PrintStmt{Expression: &LiteralExpr{Value: String("string")}},
			},
		},
		{
			[]Token{
				{TokenVar, "var", nil, 1},
				{TokenIdentifier, "x", nil, 1},
				{TokenSemicolon, ";", nil, 1},
				{TokenEOF, "", nil, 1},
			},
			false,
			[]Stmt{
				&VarStmt{Name: Token{TokenIdentifier, "x", nil, 1}},
			},
		},
	}

	for _, c := range cases {
		diags := &Diagnostics{}
		got := NewParser(c.data, diags).Run()

		if c.fail {
			assert.NotEmpty(t, diags.Static)
		} else {
			assert.Empty(t, diags.Static)
		}

		assert.Equal(t, c.expect, got)
	}
}

func TestParserPrecedence(t *testing.T) {
	cases := []struct {
		source string
		expect string
	}{
		{"1 + 2 * 3;", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3;", "(* (group (+ 1 2)) 3)"},
		{"1 - 2 - 3;", "(- (- 1 2) 3)"},
		{"8 / 4 / 2;", "(/ (/ 8 4) 2)"},
		{"-(-5);", "(- (group (- 5)))"},
		{"!!true;", "(! (! true))"},
		{"1 < 2 == 3 >= 4;", "(== (< 1 2) (>= 3 4))"},
		{"a or b and c;", "(or a (and b c))"},
		{"a = b = 3;", "(= a (= b 3))"},
		{"f(1)(2, \"x\");", "(call (call f 1) 2 \"x\")"},
		{"-f();", "(- (call f))"},
		{"a == nil != false;", "(!= (== a nil) false)"},
	}

	for _, c := range cases {
		stmts, diags := parseSource(t, c.source)

		require.Empty(t, diags.Static, c.source)
		require.Len(t, stmts, 1, c.source)

		expr := stmts[0].(*ExpressionStmt).Expression
		assert.Equal(t, c.expect, SprintExpr(expr), c.source)
	}
}

func TestParserStatements(t *testing.T) {
	cases := []struct {
		source string
		expect string
	}{
		{"print 1;", "(print 1)"},
		{"var a;", "(var a)"},
		{"var a = \"s\";", "(var a \"s\")"},
		{"{ var a = 1; print a; }", "(block (var a 1) (print a))"},
		{"if (a) print 1;", "(if a (print 1))"},
		{"if (a) print 1; else print 2;", "(if a (print 1) (print 2))"},
		{"if (a) if (b) print 1; else print 2;", "(if a (if b (print 1) (print 2)))"},
		{"while (a) a = a - 1;", "(while a (; (= a (- a 1))))"},
		{"fun add(a, b) { return a + b; }", "(fun add (a b) (return (+ a b)))"},
		{"fun noop() { return; }", "(fun noop () (return))"},
	}

	for _, c := range cases {
		stmts, diags := parseSource(t, c.source)

		require.Empty(t, diags.Static, c.source)
		assert.Equal(t, c.expect+"\n", Sprint(stmts), c.source)
	}
}

func TestParserForDesugaring(t *testing.T) {
	cases := []struct {
		source string
		expect string
	}{
		{
			"for (var i = 0; i < 3; i = i + 1) print i;",
			"(block (var i 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))",
		},
		{
			"for (;;) print 1;",
			"(while true (print 1))",
		},
		{
			"for (i = 0; i < 1;) print i;",
			"(block (; (= i 0)) (while (< i 1) (print i)))",
		},
	}

	for _, c := range cases {
		stmts, diags := parseSource(t, c.source)

		require.Empty(t, diags.Static, c.source)
		assert.Equal(t, c.expect+"\n", Sprint(stmts), c.source)
	}
}

func TestParserErrors(t *testing.T) {
	cases := []struct {
		source string
		expect []Diagnostic
		stmts  int
	}{
		{
			"print 1",
			[]Diagnostic{{1, " at end", "Expect ';' after value."}},
			0,
		},
		{
			"var = 1;",
			[]Diagnostic{{1, " at '='", "Expect variable name."}},
			0,
		},
		{
			"(1 + 2;",
			[]Diagnostic{{1, " at ';'", "Expect ')' after expression."}},
			0,
		},
		{
			"1 + 2 = 3;",
			[]Diagnostic{{1, " at '='", "Invalid assignment target."}},
			1,
		},
		{
			"return 1;",
			[]Diagnostic{{1, " at 'return'", "Can't return from top-level code."}},
			1,
		},
		{
			"{ print 1;",
			[]Diagnostic{{1, " at end", "Expect '}' after block."}},
			0,
		},
		{
			"fun f(a b) {}",
			[]Diagnostic{{1, " at 'b'", "Expect ')' after parameters."}},
			0,
		},
		{
			"f(1;",
			[]Diagnostic{{1, " at ';'", "Expect ')' after arguments."}},
			0,
		},
		{
			"if 1) print 1;",
			[]Diagnostic{{1, " at '1'", "Expect '(' after 'if'."}},
			1, // Recovery resumes at "print 1;"
		},
	}

	for _, c := range cases {
		stmts, diags := parseSource(t, c.source)

		assert.Equal(t, c.expect, diags.Static, c.source)
		assert.Len(t, stmts, c.stmts, c.source)
	}
}

func TestParserRecoversPerStatement(t *testing.T) {
	source := `
var a = ;
print a;
var = 2;
print "ok";
`
	stmts, diags := parseSource(t, source)

	assert.Equal(t, []Diagnostic{
		{2, " at ';'", "Expect expression."},
		{4, " at '='", "Expect variable name."},
	}, diags.Static)
	assert.Equal(t, "(print a)\n(print \"ok\")\n", Sprint(stmts))
}

func TestParserRecoversInsideBlocks(t *testing.T) {
	stmts, diags := parseSource(t, "fun f() { print ; print 1; }\nprint 2;")

	assert.Equal(t, []Diagnostic{{1, " at ';'", "Expect expression."}}, diags.Static)
	assert.Equal(t, "(fun f () (print 1))\n(print 2)\n", Sprint(stmts))
}

func TestParserArgumentLimit(t *testing.T) {
	args := make([]string, 256)
	for i := range args {
		args[i] = "1"
	}

	stmts, diags := parseSource(t, "f("+strings.Join(args, ", ")+");")

	assert.Equal(t, []Diagnostic{{1, " at '1'", "Can't have more than 255 arguments."}}, diags.Static)
	require.Len(t, stmts, 1)
	call := stmts[0].(*ExpressionStmt).Expression.(*CallExpr)
	assert.Len(t, call.Args, 256)

	params := make([]string, 256)
	for i := range params {
		params[i] = "p" + strings.Repeat("x", i)
	}

	_, diags = parseSource(t, "fun f("+strings.Join(params, ", ")+") {}")
	require.Len(t, diags.Static, 1)
	assert.Equal(t, "Can't have more than 255 parameters.", diags.Static[0].Message)
}

func TestParserIdempotent(t *testing.T) {
	source := test.GetRandomStatements(50)

	first, diags := parseSource(t, source)
	require.Empty(t, diags.Static)

	second, diags := parseSource(t, source)
	require.Empty(t, diags.Static)

	assert.Equal(t, first, second)
}

var benchStmts []Stmt

func benchmarkParser(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		toks := Scan(test.GetRandomStatements(size), nil)
		b.StartTimer()

		benchStmts = Parse(toks, nil)
	}
}

func BenchmarkParser100(b *testing.B) {
	benchmarkParser(100, b)
}

func BenchmarkParser10000(b *testing.B) {
	benchmarkParser(10000, b)
}
