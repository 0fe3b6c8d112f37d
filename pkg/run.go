package lox

import (
	"fmt"
	"io"
	"os"
)

// RunFile executes the script at path in this session.
func (s *Session) RunFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return ResultOK, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	return s.RunReader(f)
}

func (s *Session) RunReader(reader io.Reader) (Result, error) {
	source, err := io.ReadAll(reader)
	if err != nil {
		return ResultOK, fmt.Errorf("read script: %w", err)
	}

	s.logger.Debug("running script", "bytes", len(source))
	return s.Run(string(source)), nil
}
