package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Schema constrains the keys a configuration file may set.
const Schema = `
prompt?:       string
continuation?: string
history?:      string
log_level?:    "debug" | "info" | "warn" | "error"
log_file?:     string
natives?:      [...string]
`

type Config struct {
	Prompt       string
	Continuation string
	History      string // Empty disables REPL history
	LogLevel     string
	LogFile      string
	Natives      []string
}

func Default() Config {
	cfg := Config{
		Prompt:       "> ",
		Continuation: "... ",
		LogLevel:     "warn",
		Natives:      []string{"clock"},
	}

	if home, err := os.UserHomeDir(); err == nil {
		cfg.History = filepath.Join(home, ".treelox_history")
	}

	return cfg
}

// Load overlays the files at paths onto Default. No paths means defaults.
func Load(paths ...string) (Config, error) {
	cfg := Default()
	if len(paths) == 0 {
		return cfg, nil
	}

	loader := NewLoader(paths, Schema)

	var err error
	if cfg.Prompt, err = First(loader, "prompt", cfg.Prompt); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if cfg.Continuation, err = First(loader, "continuation", cfg.Continuation); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if cfg.History, err = First(loader, "history", cfg.History); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if cfg.LogLevel, err = First(loader, "log_level", cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if cfg.LogFile, err = First(loader, "log_file", cfg.LogFile); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if cfg.Natives, err = First(loader, "natives", cfg.Natives); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Discover returns the configuration files to load. An explicit path always
// wins; otherwise the user config directory is checked for treelox/config.cue.
func Discover(explicit string) ([]string, error) {
	if explicit != "" {
		return []string{explicit}, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, nil
	}

	path := filepath.Join(dir, "treelox", "config.cue")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	return []string{path}, nil
}
