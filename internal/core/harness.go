package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/EmundoT/solbench/internal/types"
)

// Harness drives one analyzer over every target under the configured root.
// Targets are processed strictly one at a time in discovery order.
type Harness struct {
	cfg        types.BenchConfig
	analyzer   Analyzer
	classifier *Classifier
	ui         UICallback
	progress   ProgressTracker
	recorder   *MetricsRecorder
	logger     *zap.Logger
}

// Option configures a Harness
type Option func(*Harness)

// WithUI sets the operator callback (defaults to silent).
func WithUI(ui UICallback) Option {
	return func(h *Harness) { h.ui = ui }
}

// WithProgress sets the progress tracker (defaults to none).
func WithProgress(p ProgressTracker) Option {
	return func(h *Harness) { h.progress = p }
}

// WithRecorder records every result into Prometheus metrics.
func WithRecorder(r *MetricsRecorder) Option {
	return func(h *Harness) { h.recorder = r }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// NewHarness creates a Harness over cfg using analyzer for every target.
func NewHarness(cfg types.BenchConfig, analyzer Analyzer, classifier *Classifier, opts ...Option) *Harness {
	h := &Harness{
		cfg:        cfg,
		analyzer:   analyzer,
		classifier: classifier,
		ui:         &SilentUICallback{},
		progress:   noopProgress{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Targets lists the files the harness would analyze.
func (h *Harness) Targets() []types.TargetFile {
	return DiscoverTargets(h.cfg.Root, h.cfg.Extension)
}

// RunMetrics analyzes every target and returns the aggregate. The caller
// derives ratios with RunAggregate.Summarize.
func (h *Harness) RunMetrics(ctx context.Context) (*RunAggregate, error) {
	agg := &RunAggregate{}
	err := h.each(ctx, func(r types.AnalysisResult) error {
		agg.Add(r)
		if h.recorder != nil {
			h.recorder.Observe(r)
		}
		h.logger.Debug("classified",
			zap.String("file", r.Target.Path),
			zap.Stringer("outcome", r.Classification.Outcome()),
			zap.Int("detections", r.Classification.Detections),
		)
		return nil
	})
	return agg, err
}

// RunReport analyzes every target and writes one report entry per file.
// It returns the number of entries written. The writer is not closed.
func (h *Harness) RunReport(ctx context.Context, w *ReportWriter) (int, error) {
	err := h.each(ctx, func(r types.AnalysisResult) error {
		has := h.classifier.HasExpectedIssue(r.Target, r.Stdout)
		if err := w.WriteResult(r, has); err != nil {
			return fmt.Errorf("write report entry for %s: %w", r.Target.Name, err)
		}
		return nil
	})
	return w.Count(), err
}

// RunLabel analyzes every target, shows the result, and asks labeler for the
// ground truth. A file whose analysis or labeling fails ends the run and is
// not counted.
func (h *Harness) RunLabel(ctx context.Context, labeler Labeler) (ConfusionMatrix, error) {
	var m ConfusionMatrix
	err := h.each(ctx, func(r types.AnalysisResult) error {
		h.ui.ShowAnalysis(r)
		label, err := labeler.Label(ctx, r)
		if err != nil {
			return fmt.Errorf("label %s: %w", r.Target.Name, err)
		}
		m.Record(label)
		return nil
	})
	return m, err
}

// each runs the analyzer on every target in order and hands results to fn.
func (h *Harness) each(ctx context.Context, fn func(types.AnalysisResult) error) error {
	targets := h.Targets()
	h.logger.Debug("discovered targets",
		zap.String("root", h.cfg.Root),
		zap.String("analyzer", h.analyzer.Name()),
		zap.Int("count", len(targets)),
	)
	h.progress.SetTotal(len(targets))

	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			h.progress.Fail(err)
			return err
		}

		result, err := h.analyze(ctx, t)
		if err != nil {
			h.progress.Fail(err)
			return err
		}
		if err := fn(result); err != nil {
			h.progress.Fail(err)
			return err
		}
		h.progress.Increment(t.Name)
	}

	h.progress.Complete()
	return nil
}

// analyze applies the optional per-target timeout. A target that runs out
// of time is kept as an unclassified (failed) result rather than ending the run.
func (h *Harness) analyze(ctx context.Context, t types.TargetFile) (types.AnalysisResult, error) {
	timeout := time.Duration(h.cfg.AnalyzerTimeout)
	if timeout <= 0 {
		return h.analyzer.Analyze(ctx, t)
	}

	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := h.analyzer.Analyze(tctx, t)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		h.logger.Warn("analyzer timed out", zap.String("file", t.Path), zap.Duration("timeout", timeout))
		h.ui.ShowWarning("Timed out", fmt.Sprintf("%s exceeded %s", t.Name, timeout))
		return types.AnalysisResult{Target: t, Duration: timeout, Err: err}, nil
	}
	return result, err
}
