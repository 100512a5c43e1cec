package core

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/EmundoT/solbench/internal/runner"
	"github.com/EmundoT/solbench/internal/types"
)

// CompilerSelector installs and activates solc versions on the host.
// The selection is global to the host, not to this process.
//
//go:generate mockgen -source=slither.go -destination=mock_slither_test.go -package=core
type CompilerSelector interface {
	Install(ctx context.Context, version string) error
	Use(ctx context.Context, version string) error
}

// SolcSelect drives the solc-select CLI.
type SolcSelect struct {
	runner     CommandRunner
	executable string
}

// NewSolcSelect creates a SolcSelect using executable (usually "solc-select").
func NewSolcSelect(r CommandRunner, executable string) *SolcSelect {
	return &SolcSelect{runner: r, executable: executable}
}

// Install runs `solc-select install <version>`.
func (s *SolcSelect) Install(ctx context.Context, version string) error {
	if _, err := s.runner.RunChecked(ctx, s.executable, "install", version); err != nil {
		return fmt.Errorf(ErrInstallCompilerMsg, version, err)
	}
	return nil
}

// Use runs `solc-select use <version>`.
func (s *SolcSelect) Use(ctx context.Context, version string) error {
	if _, err := s.runner.RunChecked(ctx, s.executable, "use", version); err != nil {
		return fmt.Errorf(ErrUseCompilerMsg, version, err)
	}
	return nil
}

// SlitherAnalyzer runs slither twice per target: a plain pass whose output is
// discarded, then a `--print human-summary` pass whose exit status is checked.
// When stderr reports a compiler version mismatch it selects the declared
// version and repeats both passes once.
type SlitherAnalyzer struct {
	runner     CommandRunner
	selector   CompilerSelector
	classifier *Classifier
	command    string
	extraArgs  []string
	logger     *zap.Logger
}

// NewSlitherAnalyzer creates a SlitherAnalyzer.
func NewSlitherAnalyzer(r CommandRunner, selector CompilerSelector, classifier *Classifier, cfg types.SlitherConfig, logger *zap.Logger) *SlitherAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlitherAnalyzer{
		runner:     r,
		selector:   selector,
		classifier: classifier,
		command:    cfg.Command,
		extraArgs:  cfg.ExtraArgs,
		logger:     logger,
	}
}

// Name implements Analyzer
func (a *SlitherAnalyzer) Name() string {
	return "slither"
}

// Analyze implements Analyzer. A non-zero slither exit is not an error here:
// it is recorded on the result (Err) with the partial output preserved.
// Errors are returned only when slither cannot be started or the compiler
// selection fails.
func (a *SlitherAnalyzer) Analyze(ctx context.Context, target types.TargetFile) (types.AnalysisResult, error) {
	result, err := a.fire(ctx, target)
	if err != nil {
		return result, err
	}

	if !a.classifier.NeedsVersionRecovery(result.Stderr) {
		return result, nil
	}

	version, err := a.classifier.CompilerVersion(result.Stderr)
	if err != nil {
		a.logger.Warn("compiler mismatch without pragma", zap.String("file", target.Path))
		return result, nil
	}

	a.logger.Info("switching compiler", zap.String("file", target.Path), zap.String("version", version))
	if err := a.selector.Install(ctx, version); err != nil {
		return result, err
	}
	if err := a.selector.Use(ctx, version); err != nil {
		return result, err
	}

	retry, err := a.fire(ctx, target)
	if err != nil {
		return retry, err
	}
	retry.RecoveredVersion = version
	retry.Duration += result.Duration
	return retry, nil
}

// fire runs both slither passes once.
func (a *SlitherAnalyzer) fire(ctx context.Context, target types.TargetFile) (types.AnalysisResult, error) {
	result := types.AnalysisResult{Target: target}

	args := append(append([]string{}, a.extraArgs...), target.Path)
	first, err := a.runner.Run(ctx, a.command, args...)
	if err != nil {
		return result, wrapStartError(target, a.command, err)
	}

	out, err := a.runner.RunChecked(ctx, a.command, append(args, SlitherSummaryArgs...)...)
	if err != nil {
		pe, ok := runner.AsProcessError(err)
		if !ok {
			return result, wrapStartError(target, a.command, err)
		}
		result.Err = pe
	}

	result.Stdout = strings.TrimSpace(out.Stdout)
	result.Stderr = strings.TrimSpace(out.Stderr)
	result.ExitCode = out.ExitCode
	result.Duration = first.Duration + out.Duration
	result.Classification = a.classifier.Classify(result.Stdout)
	return result, nil
}
