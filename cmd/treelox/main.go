package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"go.treelox.dev/internal/config"
	"go.treelox.dev/internal/logs"
	lox "go.treelox.dev/pkg"
)

// Exit codes follow sysexits.h
const (
	exitOK      = 0
	exitUsage   = 64
	exitData    = 65
	exitRuntime = 70
	exitIO      = 74
	exitConfig  = 78
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("treelox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: treelox [flags] [script]")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "CUE configuration file")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	printAST := fs.Bool("print-ast", false, "print the syntax tree instead of running")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	paths, err := config.Discover(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	cfg, err := config.Load(paths...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := logs.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger, closeLog, err := logs.New(logs.Options{
		Writer:  stderr,
		Level:   level,
		LogFile: cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIO
	}
	defer closeLog()

	session, err := lox.NewSession(lox.SessionConfig{
		Output:   stdout,
		Reporter: lox.NewConsoleReporter(stderr),
		Logger:   logger,
		Natives:  cfg.Natives,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	if fs.NArg() == 1 {
		return runFile(session, fs.Arg(0), *printAST, stdout, stderr)
	}

	return runPrompt(session, cfg, *printAST, stdout)
}

func runFile(session *lox.Session, path string, printAST bool, stdout, stderr io.Writer) int {
	if !printAST {
		result, err := session.RunFile(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitIO
		}

		return exitCode(result)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIO
	}

	stmts, ok := session.Compile(string(source))
	if !ok {
		return exitData
	}

	fmt.Fprint(stdout, lox.Sprint(stmts))
	return exitOK
}

func exitCode(result lox.Result) int {
	switch result {
	case lox.ResultStaticError:
		return exitData
	case lox.ResultRuntimeError:
		return exitRuntime
	}

	return exitOK
}

func runPrompt(session *lox.Session, cfg config.Config, printAST bool, stdout io.Writer) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}

		defer func() {
			if f, err := os.Create(cfg.History); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	r := &repl{
		session:  session,
		out:      stdout,
		printAST: printAST,
		history:  ln.AppendHistory,
	}

	return r.loop(ln, cfg.Prompt, cfg.Continuation)
}

// prompter reads one line of input. *liner.State implements it.
type prompter interface {
	Prompt(prompt string) (string, error)
}

type repl struct {
	session  *lox.Session
	out      io.Writer
	printAST bool
	history  func(entry string)
}

func (r *repl) loop(p prompter, prompt, cont string) int {
	for {
		source, ok := readSource(p, prompt, cont)
		if !ok {
			fmt.Fprintln(r.out)
			return exitOK
		}

		if r.handle(source) {
			return exitOK
		}
	}
}

// handle evaluates one entry and reports whether the REPL should exit. Error
// flags are cleared afterwards so one bad entry does not taint the next.
func (r *repl) handle(source string) (quit bool) {
	trimmed := strings.TrimSpace(source)
	switch {
	case trimmed == "":
		return false
	case strings.HasPrefix(trimmed, ":"):
		return r.command(trimmed)
	}

	if r.history != nil {
		r.history(strings.ReplaceAll(source, "\n", " "))
	}

	if r.printAST {
		if stmts, ok := r.session.Compile(source); ok {
			fmt.Fprint(r.out, lox.Sprint(stmts))
		}
	} else {
		r.session.Run(source)
	}

	r.session.ResetErrors()
	return false
}

func (r *repl) command(cmd string) (quit bool) {
	switch cmd {
	case ":quit":
		return true
	}

	fmt.Fprintln(r.out, "unknown command. Type :quit to exit.")
	return false
}

// readSource prompts until the accumulated lines no longer end too early.
// ok is false once the input is exhausted.
func readSource(p prompter, prompt, cont string) (source string, ok bool) {
	var b strings.Builder

	for {
		current := prompt
		if b.Len() > 0 {
			current = cont
		}

		line, err := p.Prompt(current)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			// Run what was typed before Ctrl-D so its errors are still reported
			return b.String(), b.Len() > 0
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if src := b.String(); !lox.Incomplete(src) {
			return src, true
		}
	}
}
