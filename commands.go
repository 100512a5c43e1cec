package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EmundoT/solbench/internal/core"
	"github.com/EmundoT/solbench/internal/runner"
	"github.com/EmundoT/solbench/internal/tui"
	"github.com/EmundoT/solbench/internal/types"
)

// app carries what every command needs: parsed options, the operator
// callback, and the diagnostic logger.
type app struct {
	opts   cliOptions
	ui     core.UICallback
	logger *zap.Logger
}

// loadConfig reads the config file and applies command-line overrides.
func (a *app) loadConfig() (types.BenchConfig, *core.Classifier, error) {
	cfg, err := core.LoadConfig(a.opts.config)
	if err != nil {
		return types.BenchConfig{}, nil, err
	}
	if a.opts.root != "" {
		cfg.Root = a.opts.root
	}
	if a.opts.out != "" {
		cfg.ReportPath = a.opts.out
	}
	if a.opts.metricsTextfile != "" {
		cfg.MetricsTextfile = a.opts.metricsTextfile
	}

	if cfg.Patterns == nil {
		return cfg, core.DefaultClassifier(), nil
	}
	classifier, err := core.NewClassifier(core.PatternsFromConfig(cfg.Patterns))
	if err != nil {
		return types.BenchConfig{}, nil, fmt.Errorf("%w: %v", core.ErrConfigInvalid, err)
	}
	return cfg, classifier, nil
}

func (a *app) progress(label string) core.ProgressTracker {
	return tui.NewProgressTracker(label, a.ui.GetOutputMode())
}

// nodeAnalyzer builds the Node analyzer after checking its executable exists.
func (a *app) nodeAnalyzer(cfg types.BenchConfig, classifier *core.Classifier) (*core.NodeAnalyzer, error) {
	if !runner.IsInstalled(cfg.Node.Command[0]) {
		return nil, fmt.Errorf("%w: %s", core.ErrAnalyzerNotFound, cfg.Node.Command[0])
	}
	return core.NewNodeAnalyzer(runner.New("", a.logger), cfg.Node.Command, classifier), nil
}

func (a *app) initConfig() error {
	store := core.NewYAMLStoreAt[types.BenchConfig](a.opts.config, true)
	if store.Exists() {
		ok := a.ui.AskConfirmation("Overwrite "+store.Path()+"?",
			"The existing configuration will be replaced with defaults.")
		if !ok {
			a.ui.ShowWarning("Skipped", store.Path()+" was left unchanged.")
			return nil
		}
	}

	cfg := core.DefaultConfig()
	if a.opts.root != "" {
		cfg.Root = a.opts.root
	}
	if err := store.Save(cfg); err != nil {
		return err
	}
	a.ui.ShowSuccess("Wrote " + store.Path())
	return nil
}

func (a *app) metrics(ctx context.Context) error {
	cfg, classifier, err := a.loadConfig()
	if err != nil {
		return err
	}
	analyzer, err := a.nodeAnalyzer(cfg, classifier)
	if err != nil {
		return err
	}
	return a.runMetrics(ctx, cfg, analyzer, classifier)
}

// runMetrics performs one metrics pass and prints its summary.
func (a *app) runMetrics(ctx context.Context, cfg types.BenchConfig, analyzer core.Analyzer, classifier *core.Classifier) error {
	runID := uuid.NewString()
	a.logger.Debug("metrics run", zap.String("run_id", runID), zap.String("root", cfg.Root))

	opts := []core.Option{
		core.WithUI(a.ui),
		core.WithProgress(a.progress("Analyzing contracts")),
		core.WithLogger(a.logger),
	}
	var recorder *core.MetricsRecorder
	if cfg.MetricsTextfile != "" {
		recorder = core.NewMetricsRecorder(runID, analyzer.Name())
		opts = append(opts, core.WithRecorder(recorder))
	}

	agg, err := core.NewHarness(cfg, analyzer, classifier, opts...).RunMetrics(ctx)
	if err != nil {
		return err
	}
	summary, err := agg.Summarize()
	if errors.Is(err, core.ErrNoTargets) {
		return fmt.Errorf(core.ErrNoTargetsMsg, core.ErrNoTargets, cfg.Root)
	}
	if err != nil {
		return err
	}
	summary.RunID = runID

	if recorder != nil {
		if err := recorder.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return err
		}
	}

	switch a.ui.GetOutputMode() {
	case core.OutputJSON:
		return a.ui.FormatJSON(core.JSONOutput{
			Status: "success",
			Data:   map[string]interface{}{"summary": summary},
		})
	case core.OutputNormal:
		if tui.IsTerminal() {
			fmt.Println(tui.RenderSummary(summary))
			return nil
		}
	}
	return core.WriteSummary(os.Stdout, summary)
}

func (a *app) report(ctx context.Context) error {
	cfg, classifier, err := a.loadConfig()
	if err != nil {
		return err
	}
	analyzer, err := a.nodeAnalyzer(cfg, classifier)
	if err != nil {
		return err
	}

	w, err := core.CreateReportFile(cfg.ReportPath)
	if err != nil {
		return err
	}
	h := core.NewHarness(cfg, analyzer, classifier,
		core.WithUI(a.ui),
		core.WithProgress(a.progress("Writing report")),
		core.WithLogger(a.logger),
	)
	n, runErr := h.RunReport(ctx, w)
	if err := w.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	if a.ui.GetOutputMode() == core.OutputJSON {
		return a.ui.FormatJSON(core.JSONOutput{
			Status: "success",
			Data:   map[string]interface{}{"entries": n, "path": cfg.ReportPath},
		})
	}
	a.ui.ShowSuccess(fmt.Sprintf("Wrote %d entries to %s", n, cfg.ReportPath))
	return nil
}

func (a *app) label(ctx context.Context) error {
	if a.opts.flags.Mode == core.OutputQuiet && a.opts.answers == "" {
		return core.ErrQuietLabel
	}
	cfg, classifier, err := a.loadConfig()
	if err != nil {
		return err
	}
	if !runner.IsInstalled(cfg.Slither.Command) {
		return fmt.Errorf("%w: %s", core.ErrAnalyzerNotFound, cfg.Slither.Command)
	}

	labeler, err := tui.NewLabeler(a.opts.answers, a.ui.GetOutputMode())
	if err != nil {
		return err
	}

	run := runner.New("", a.logger)
	analyzer := core.NewSlitherAnalyzer(run, core.NewSolcSelect(run, cfg.Slither.SolcSelect), classifier, cfg.Slither, a.logger)

	// Labeling interleaves output and prompts, so no progress display.
	h := core.NewHarness(cfg, analyzer, classifier,
		core.WithUI(a.ui),
		core.WithLogger(a.logger),
	)
	m, err := h.RunLabel(ctx, labeler)
	if err != nil {
		return err
	}

	if al, ok := labeler.(*core.AnswersLabeler); ok && len(al.Missing()) > 0 {
		a.ui.ShowWarning("Unlabeled files",
			fmt.Sprintf("No recorded answer for %d file(s), counted as negatives:\n  %s",
				len(al.Missing()), strings.Join(al.Missing(), "\n  ")))
	}

	switch a.ui.GetOutputMode() {
	case core.OutputJSON:
		counts := m.Counts()
		counts.RunID = uuid.NewString()
		return a.ui.FormatJSON(core.JSONOutput{
			Status: "success",
			Data:   map[string]interface{}{"confusion": counts},
		})
	case core.OutputNormal:
		if tui.IsTerminal() {
			fmt.Println(tui.RenderConfusion(m))
			return nil
		}
	}
	return core.WriteConfusion(os.Stdout, m)
}

func (a *app) watch(ctx context.Context) error {
	cfg, classifier, err := a.loadConfig()
	if err != nil {
		return err
	}
	analyzer, err := a.nodeAnalyzer(cfg, classifier)
	if err != nil {
		return err
	}

	watcher, err := core.NewTargetWatcher(cfg.Root, cfg.Extension, core.DefaultWatchDebounce, a.ui, a.logger)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	run := func(ctx context.Context) error {
		return a.runMetrics(ctx, cfg, analyzer, classifier)
	}
	if err := run(ctx); err != nil && !errors.Is(err, core.ErrNoTargets) {
		a.ui.ShowError("Run Failed", err.Error())
	}

	a.ui.ShowSuccess(fmt.Sprintf("Watching %s for %s changes (Ctrl+C to stop)", cfg.Root, cfg.Extension))
	return watcher.Run(ctx, run)
}
