package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	// Writer receives human readable records. Nil disables terminal output.
	Writer io.Writer
	Level  slog.Level

	// LogFile, when set, receives every record as JSON regardless of Level.
	LogFile string
}

// New builds a logger fanning out to a text handler on Options.Writer and a
// JSON handler on Options.LogFile. The returned close func releases the log
// file and is never nil.
func New(opts Options) (*slog.Logger, func() error, error) {
	level := new(slog.LevelVar)
	level.Set(opts.Level)

	var handlers []slog.Handler
	closeFn := func() error { return nil }

	if opts.Writer != nil {
		handlers = append(handlers, slog.NewTextHandler(
			opts.Writer,
			&slog.HandlerOptions{
				Level: level,
			},
		))
	}

	if opts.LogFile != "" {
		file, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}

		handlers = append(handlers, slog.NewJSONHandler(
			file,
			&slog.HandlerOptions{
				Level: slog.LevelDebug,
			},
		))
		closeFn = file.Close
	}

	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler), closeFn, nil
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
