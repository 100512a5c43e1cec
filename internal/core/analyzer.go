package core

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/EmundoT/solbench/internal/runner"
	"github.com/EmundoT/solbench/internal/types"
)

// CommandRunner starts external processes
//
//go:generate mockgen -source=analyzer.go -destination=mock_analyzer_test.go -package=core
type CommandRunner interface {
	// Run ignores the exit status; only a start failure is an error.
	Run(ctx context.Context, name string, args ...string) (runner.Output, error)
	// RunChecked returns a *runner.ProcessError on non-zero exit.
	RunChecked(ctx context.Context, name string, args ...string) (runner.Output, error)
}

// Analyzer runs one external analysis tool against one target
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, target types.TargetFile) (types.AnalysisResult, error)
}

// NodeAnalyzer runs the Node-based analyzer: `node dist/index.js src=<path>`.
// Its exit status is never inspected; stdout is classified.
type NodeAnalyzer struct {
	runner     CommandRunner
	command    []string
	classifier *Classifier
}

// NewNodeAnalyzer creates a NodeAnalyzer. command is the executable followed
// by any fixed arguments; the target argument is appended per call.
func NewNodeAnalyzer(r CommandRunner, command []string, classifier *Classifier) *NodeAnalyzer {
	return &NodeAnalyzer{runner: r, command: command, classifier: classifier}
}

// Name implements Analyzer
func (a *NodeAnalyzer) Name() string {
	return "node"
}

// Args returns the argument list used for target, excluding the executable.
func (a *NodeAnalyzer) Args(target types.TargetFile) []string {
	args := make([]string, 0, len(a.command))
	args = append(args, a.command[1:]...)
	return append(args, NodeSourceArg+target.Path)
}

// Analyze implements Analyzer
func (a *NodeAnalyzer) Analyze(ctx context.Context, target types.TargetFile) (types.AnalysisResult, error) {
	out, err := a.runner.Run(ctx, a.command[0], a.Args(target)...)
	if err != nil {
		return types.AnalysisResult{Target: target}, wrapStartError(target, a.command[0], err)
	}

	return types.AnalysisResult{
		Target:         target,
		Stdout:         out.Stdout,
		Stderr:         out.Stderr,
		ExitCode:       out.ExitCode,
		Duration:       out.Duration,
		Classification: a.classifier.Classify(out.Stdout),
	}, nil
}

// wrapStartError marks a missing executable with ErrAnalyzerNotFound.
func wrapStartError(target types.TargetFile, name string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf(ErrAnalyzeFailedMsg, target.Path, fmt.Errorf("%w: %s", ErrAnalyzerNotFound, name))
	}
	return fmt.Errorf(ErrAnalyzeFailedMsg, target.Path, err)
}
