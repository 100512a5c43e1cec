// Package runner executes external analyzer and toolchain processes and
// captures their output streams and wall-clock duration.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// Output is what a finished process left behind.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner starts processes in a fixed working directory.
type Runner struct {
	Dir    string      // working directory, empty means the current one
	Logger *zap.Logger // debug trace of every command, nil means silent
}

// New creates a Runner for the given directory.
func New(dir string, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Dir: dir, Logger: logger}
}

// Run executes name with args and returns its output regardless of exit status.
// Only a failure to start the process (or to wait for it) is returned as an error.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (Output, error) {
	out, err := r.exec(ctx, name, args)
	var exitErr *exec.ExitError
	if err != nil && errors.As(err, &exitErr) {
		return out, nil
	}
	return out, err
}

// RunChecked executes name with args and treats a non-zero exit as an error.
// The returned *ProcessError still carries the partial stdout and stderr, and
// the Output value is populated in every case.
func (r *Runner) RunChecked(ctx context.Context, name string, args ...string) (Output, error) {
	out, err := r.exec(ctx, name, args)
	if err == nil {
		return out, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, &ProcessError{
			Name:     name,
			Args:     args,
			Stdout:   out.Stdout,
			Stderr:   out.Stderr,
			ExitCode: out.ExitCode,
			Err:      err,
		}
	}
	return out, err
}

// RunSilent executes a command, discarding output on success.
// On failure the error includes whatever the process printed.
func (r *Runner) RunSilent(ctx context.Context, name string, args ...string) error {
	_, err := r.RunChecked(ctx, name, args...)
	return err
}

func (r *Runner) exec(ctx context.Context, name string, args []string) (Output, error) {
	r.logger().Debug("exec", zap.String("name", name), zap.Strings("args", args), zap.String("dir", r.Dir))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = ctxErr
	}
	out := Output{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		out.ExitCode = cmd.ProcessState.ExitCode()
	}

	r.logger().Debug("exit",
		zap.String("name", name),
		zap.Int("code", out.ExitCode),
		zap.Duration("elapsed", out.Duration),
	)
	return out, err
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// IsInstalled returns true if the named binary is available on PATH.
func IsInstalled(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
