package runner

import (
	"errors"
	"fmt"
	"strings"
)

// ProcessError wraps a non-zero exit with the command that was run and the
// output it produced before exiting.
type ProcessError struct {
	Name     string   // executable
	Args     []string // arguments passed to the executable
	Stdout   string   // stdout captured before exit
	Stderr   string   // stderr captured before exit
	ExitCode int
	Err      error // underlying exec error
}

func (e *ProcessError) Error() string {
	s := strings.TrimSpace(e.Stderr)
	if s != "" {
		return fmt.Sprintf("%s exited with status %d: %s", e.Name, e.ExitCode, firstLine(s))
	}
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// AsProcessError reports whether err carries a *ProcessError and returns it.
func AsProcessError(err error) (*ProcessError, bool) {
	var pe *ProcessError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
