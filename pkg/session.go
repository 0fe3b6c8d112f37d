package lox

import (
	"errors"
	"io"
	"log/slog"
	"os"
)

// Result is the outcome of Session.Run.
type Result int

const (
	ResultOK Result = iota
	ResultStaticError
	ResultRuntimeError
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultStaticError:
		return "static error"
	case ResultRuntimeError:
		return "runtime error"
	}

	return "unknown"
}

// Session runs source text against one persistent global scope and tracks
// whether anything went wrong. A REPL keeps one Session for its lifetime and
// calls ResetErrors between lines; a file run uses a fresh one.
type Session struct {
	reporter    Reporter
	interpreter *Interpreter
	logger      *slog.Logger

	HadError        bool
	HadRuntimeError bool

	staticErrors int
}

type SessionConfig struct {
	Output   io.Writer // Defaults to stdout
	Reporter Reporter  // Defaults to a ConsoleReporter on stderr
	Logger   *slog.Logger
	Natives  []string // Defaults to DefaultNatives
}

func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	if cfg.Reporter == nil {
		cfg.Reporter = NewConsoleReporter(os.Stderr)
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	if cfg.Natives == nil {
		cfg.Natives = DefaultNatives
	}

	s := &Session{
		logger: cfg.Logger,
	}
	s.reporter = &flaggingReporter{session: s, next: cfg.Reporter}
	s.interpreter = NewInterpreter(WithOutput(cfg.Output), WithLogger(cfg.Logger))

	if err := s.interpreter.DefineNatives(cfg.Natives); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Session) Interpreter() *Interpreter {
	return s.interpreter
}

// Run scans, parses and executes source. Nothing executes when scanning or
// parsing reported an error.
func (s *Session) Run(source string) Result {
	stmts, ok := s.Compile(source)
	if !ok {
		return ResultStaticError
	}

	err := s.interpreter.Interpret(stmts)
	if err == nil {
		return ResultOK
	}

	var rtErr *RuntimeError
	if !errors.As(err, &rtErr) {
		rtErr = &RuntimeError{Kind: err, Message: err.Error()}
	}
	s.reporter.ReportRuntime(rtErr)

	return ResultRuntimeError
}

// Compile scans and parses source. ok is false when any diagnostic was
// reported.
func (s *Session) Compile(source string) (stmts []Stmt, ok bool) {
	before := s.staticErrors

	tokens := Scan(source, s.reporter)
	s.logger.Debug("scanned", "tokens", len(tokens))

	stmts = Parse(tokens, s.reporter)
	s.logger.Debug("parsed", "statements", len(stmts))

	if n := s.staticErrors - before; n > 0 {
		s.logger.Debug("static errors reported", "count", n)
		return nil, false
	}

	return stmts, true
}

func (s *Session) ResetErrors() {
	s.HadError = false
	s.HadRuntimeError = false
}

// flaggingReporter records on the session that a diagnostic was seen before
// forwarding it.
type flaggingReporter struct {
	session *Session
	next    Reporter
}

func (r *flaggingReporter) Report(line int, where, message string) {
	r.session.HadError = true
	r.session.staticErrors++
	r.next.Report(line, where, message)
}

func (r *flaggingReporter) ReportRuntime(err *RuntimeError) {
	r.session.HadRuntimeError = true
	r.next.ReportRuntime(err)
}

// Incomplete reports whether source only fails to parse because it ends too
// early, such as an unclosed block. A REPL uses it to keep reading lines.
func Incomplete(source string) bool {
	diags := &Diagnostics{}
	Parse(Scan(source, diags), diags)

	if len(diags.Static) == 0 {
		return false
	}

	for _, d := range diags.Static {
		if d.Where != " at end" && d.Message != "Unterminated string." {
			return false
		}
	}

	return true
}
