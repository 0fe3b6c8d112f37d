package lox

import (
	"fmt"
	"io"
)

// Reporter receives diagnostics from the lexer, the parser and the session.
type Reporter interface {
	Report(line int, where, message string)
	ReportRuntime(err *RuntimeError)
}

// ConsoleReporter writes diagnostics in the classic "[line N] Error: msg" form.
type ConsoleReporter struct {
	Writer io.Writer
}

func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{Writer: w}
}

func (r *ConsoleReporter) Report(line int, where, message string) {
	fmt.Fprintf(r.Writer, "[line %d] Error%s: %s\n", line, where, message)
}

func (r *ConsoleReporter) ReportRuntime(err *RuntimeError) {
	fmt.Fprintf(r.Writer, "%s\n[line %d]\n", err.Message, err.Token.Line)
}

type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Diagnostics collects everything reported to it.
type Diagnostics struct {
	Static  []Diagnostic
	Runtime []*RuntimeError
}

func (d *Diagnostics) Report(line int, where, message string) {
	d.Static = append(d.Static, Diagnostic{line, where, message})
}

func (d *Diagnostics) ReportRuntime(err *RuntimeError) {
	d.Runtime = append(d.Runtime, err)
}

func (d *Diagnostics) Reset() {
	d.Static = nil
	d.Runtime = nil
}
