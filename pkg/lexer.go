package lox

import (
	"strconv"
	"unicode"
)

type TokenType uint8
type stateFunc func(l *Lexer) stateFunc

const EOF rune = 0

//go:generate stringer -type=TokenType -trimprefix=Token
const (
	TokenEOF TokenType = iota

	TokenLeftParen
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	TokenIdentifier
	TokenString
	TokenNumber

	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFor
	TokenFun
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile
)

var keywordTable = map[string]TokenType{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"for":    TokenFor,
	"fun":    TokenFun,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}

var operatorTable = map[string]TokenType{
	"(":  TokenLeftParen,
	")":  TokenRightParen,
	"{":  TokenLeftBrace,
	"}":  TokenRightBrace,
	",":  TokenComma,
	".":  TokenDot,
	"-":  TokenMinus,
	"+":  TokenPlus,
	";":  TokenSemicolon,
	"/":  TokenSlash,
	"*":  TokenStar,
	"!":  TokenBang,
	"!=": TokenBangEqual,
	"=":  TokenEqual,
	"==": TokenEqualEqual,
	">":  TokenGreater,
	">=": TokenGreaterEqual,
	"<":  TokenLess,
	"<=": TokenLessEqual,
}

// Token is a single lexeme produced by the Lexer. Literal is set for
// strings and numbers only.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal Value
	Line    int
}

func (t Token) String() string {
	return t.Typ.String() + " " + t.Lexeme
}

// Lexer turns source text into tokens. Errors are handed to the reporter and
// scanning continues, so a single pass surfaces every lexical error.
type Lexer struct {
	source   []rune
	reporter Reporter

	start   int
	current int
	line    int

	tokens []Token
}

func NewLexer(source string, reporter Reporter) *Lexer {
	return &Lexer{
		source:   []rune(source),
		reporter: reporter,
		line:     1,
	}
}

// Scan is a shorthand for NewLexer(source, reporter).Run().
func Scan(source string, reporter Reporter) []Token {
	return NewLexer(source, reporter).Run()
}

// Run scans the whole source. The result always ends with a TokenEOF.
func (l *Lexer) Run() []Token {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	return l.tokens
}

func defaultState(l *Lexer) stateFunc {
	for {
		l.start = l.current

		switch r := l.peek(); {
		case r == EOF && l.atEnd():
			l.tokens = append(l.tokens, Token{Typ: TokenEOF, Line: l.line})
			return nil
		case r == '\n':
			l.line++
			l.next()
		case r == ' ' || r == '\r' || r == '\t':
			l.next()
		case isDigit(r):
			return numberState
		case r == '"':
			return stringState
		case isAlpha(r):
			return identifierState
		default:
			return operatorState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	for isDigit(l.peek()) {
		l.next()
	}

	// A dot only belongs to the number when a digit follows it
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.next()

		for isDigit(l.peek()) {
			l.next()
		}
	}

	// Out of range literals saturate to ±Inf, which ParseFloat reports as an error
	n, _ := strconv.ParseFloat(l.lexeme(), 64)

	return l.emmitLiteral(TokenNumber, Number(n))
}

func stringState(l *Lexer) stateFunc {
	l.next() // Skip the leading double-quote

	for r := l.peek(); r != '"'; r = l.peek() {
		if l.atEnd() {
			return l.errorf("Unterminated string.")
		}

		if r == '\n' {
			l.line++
		}

		l.next()
	}

	l.next() // Closing quote

	text := string(l.source[l.start+1 : l.current-1])
	return l.emmitLiteral(TokenString, String(text))
}

func identifierState(l *Lexer) stateFunc {
	for r := l.peek(); isAlpha(r) || isDigit(r); r = l.peek() {
		l.next()
	}

	if t, ok := keywordTable[l.lexeme()]; ok {
		return l.emmit(t)
	}

	return l.emmit(TokenIdentifier)
}

func operatorState(l *Lexer) stateFunc {
	r := l.next()

	// Some operators can be two runes
	if r == '/' && l.peek() == '/' {
		return lineCommentState
	}

	if _, ok := operatorTable[string(r)+string(l.peek())]; ok {
		l.next()
	}

	if tok, ok := operatorTable[l.lexeme()]; ok {
		return l.emmit(tok)
	}

	return l.errorf("Unexpected character.")
}

func lineCommentState(l *Lexer) stateFunc {
	for r := l.peek(); r != '\n' && !l.atEnd(); r = l.peek() {
		l.next()
	}

	return defaultState
}

func (l *Lexer) errorf(message string) stateFunc {
	if l.reporter != nil {
		l.reporter.Report(l.line, "", message)
	}

	return defaultState
}

func (l *Lexer) emmit(t TokenType) stateFunc {
	return l.emmitLiteral(t, nil)
}

func (l *Lexer) emmitLiteral(t TokenType, literal Value) stateFunc {
	l.tokens = append(l.tokens, Token{
		Typ:     t,
		Lexeme:  l.lexeme(),
		Literal: literal,
		Line:    l.line,
	})

	return defaultState
}

func (l *Lexer) lexeme() string {
	return string(l.source[l.start:l.current])
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return EOF
	}

	return l.source[l.current]
}

func (l *Lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return EOF
	}

	return l.source[l.current+1]
}

func (l *Lexer) next() rune {
	if l.atEnd() {
		return EOF
	}

	r := l.source[l.current]
	l.current++

	return r
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlpha(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
