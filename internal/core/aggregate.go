package core

import (
	"fmt"
	"time"

	"github.com/EmundoT/solbench/internal/types"
)

// RunAggregate accumulates metrics-mode counters across one run.
// Failed is not stored; it is whatever Total leaves after NoIssue and Flagged.
type RunAggregate struct {
	Total      int
	NoIssue    int
	Flagged    int
	Detections int
	Durations  []time.Duration
}

// Add folds one analyzer result into the aggregate.
func (a *RunAggregate) Add(r types.AnalysisResult) {
	a.Total++
	a.Durations = append(a.Durations, r.Duration)
	if r.Classification.NoIssue {
		a.NoIssue++
	}
	if r.Classification.Flagged {
		a.Flagged++
		a.Detections += r.Classification.Detections
	}
}

// Failed returns Total - NoIssue - Flagged.
func (a *RunAggregate) Failed() int {
	return a.Total - a.NoIssue - a.Flagged
}

// Summarize computes the derived statistics. Ratios are raw fractions.
// An empty aggregate has no defined ratios and returns ErrNoTargets.
func (a *RunAggregate) Summarize() (types.Summary, error) {
	if a.Total == 0 || len(a.Durations) == 0 {
		return types.Summary{}, ErrNoTargets
	}

	total := float64(a.Total)
	minD, maxD, sum := a.Durations[0], a.Durations[0], time.Duration(0)
	for _, d := range a.Durations {
		sum += d
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}

	return types.Summary{
		Total:                 a.Total,
		Flagged:               a.Flagged,
		NoIssue:               a.NoIssue,
		Failed:                a.Failed(),
		Detections:            a.Detections,
		DetectionsPerContract: float64(a.Detections) / total,
		FailedRatio:           float64(a.Failed()) / total,
		MeanSeconds:           sum.Seconds() / float64(len(a.Durations)),
		MinSeconds:            minD.Seconds(),
		MaxSeconds:            maxD.Seconds(),
	}, nil
}

// String is a one-line debug rendering.
func (a *RunAggregate) String() string {
	return fmt.Sprintf("total=%d flagged=%d no_issue=%d failed=%d detections=%d",
		a.Total, a.Flagged, a.NoIssue, a.Failed(), a.Detections)
}

// ConfusionMatrix tallies operator labels.
type ConfusionMatrix struct {
	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int
}

// Record adds one labeled file.
func (m *ConfusionMatrix) Record(l types.Label) {
	switch {
	case l.HasIssue && l.Reported:
		m.TruePositives++
	case l.HasIssue && !l.Reported:
		m.FalseNegatives++
	case !l.HasIssue && l.Reported:
		m.FalsePositives++
	default:
		m.TrueNegatives++
	}
}

// Total returns the number of labeled files.
func (m *ConfusionMatrix) Total() int {
	return m.TruePositives + m.FalsePositives + m.TrueNegatives + m.FalseNegatives
}

// Counts returns the JSON shape of the matrix.
func (m *ConfusionMatrix) Counts() types.ConfusionCounts {
	return types.ConfusionCounts{
		TruePositives:  m.TruePositives,
		FalsePositives: m.FalsePositives,
		TrueNegatives:  m.TrueNegatives,
		FalseNegatives: m.FalseNegatives,
	}
}
