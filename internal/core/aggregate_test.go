package core

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/EmundoT/solbench/internal/types"
)

func result(output string, d time.Duration) types.AnalysisResult {
	return types.AnalysisResult{
		Stdout:         output,
		Duration:       d,
		Classification: DefaultClassifier().Classify(output),
	}
}

func TestRunAggregate_EndToEnd(t *testing.T) {
	var agg RunAggregate
	agg.Add(result("There are 2 issues found in a.sol", 1*time.Second))
	agg.Add(result("Issues not found in b.sol", 2*time.Second))
	agg.Add(result("There are 1 issues found in c.sol", 3*time.Second))

	got, err := agg.Summarize()
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	want := types.Summary{
		Total:                 3,
		Flagged:               2,
		NoIssue:               1,
		Failed:                0,
		Detections:            3,
		DetectionsPerContract: 1.0,
		FailedRatio:           0.0,
		MeanSeconds:           2.0,
		MinSeconds:            1.0,
		MaxSeconds:            3.0,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAggregate_FailedRatio(t *testing.T) {
	var agg RunAggregate
	agg.Add(result("crash", time.Second))
	agg.Add(result("crash again", time.Second))
	agg.Add(result("Issues not found in c.sol", time.Second))
	agg.Add(result("There are 5 issues found in d.sol", time.Second))

	s, err := agg.Summarize()
	if err != nil {
		t.Fatal(err)
	}
	if s.Failed != 2 || s.FailedRatio != 0.5 {
		t.Errorf("Failed = %d, FailedRatio = %v; want 2, 0.5", s.Failed, s.FailedRatio)
	}
	if s.DetectionsPerContract != 1.25 {
		t.Errorf("DetectionsPerContract = %v, want 1.25", s.DetectionsPerContract)
	}
}

func TestRunAggregate_Invariants(t *testing.T) {
	outputs := []string{
		"There are 2 issues found in a.sol",
		"Issues not found in b.sol",
		"garbage",
		"Issues not found in x.sol\nThere are 4 issues found in y.sol",
		"",
	}
	var agg RunAggregate
	for _, o := range outputs {
		agg.Add(result(o, time.Millisecond))
	}

	if agg.Total != len(outputs) {
		t.Errorf("Total = %d, want %d", agg.Total, len(outputs))
	}
	if len(agg.Durations) != agg.Total {
		t.Errorf("len(Durations) = %d, want %d", len(agg.Durations), agg.Total)
	}
	if agg.Failed() != agg.Total-agg.NoIssue-agg.Flagged {
		t.Errorf("Failed() = %d breaks Total - NoIssue - Flagged", agg.Failed())
	}
	if agg.Detections != 6 {
		t.Errorf("Detections = %d, want 6", agg.Detections)
	}
	if !strings.Contains(agg.String(), "total=5") {
		t.Errorf("String() = %q", agg.String())
	}
}

func TestRunAggregate_Empty(t *testing.T) {
	var agg RunAggregate
	if _, err := agg.Summarize(); !errors.Is(err, ErrNoTargets) {
		t.Fatalf("Expected ErrNoTargets, got %v", err)
	}
}

func TestConfusionMatrix_Record(t *testing.T) {
	var m ConfusionMatrix
	labels := []types.Label{
		{HasIssue: true, Reported: true},
		{HasIssue: true, Reported: true},
		{HasIssue: true, Reported: false},
		{HasIssue: false, Reported: true},
		{HasIssue: false, Reported: false},
	}
	for _, l := range labels {
		m.Record(l)
	}

	want := ConfusionMatrix{TruePositives: 2, FalseNegatives: 1, FalsePositives: 1, TrueNegatives: 1}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("ConfusionMatrix mismatch (-want +got):\n%s", diff)
	}
	if m.Total() != len(labels) {
		t.Errorf("Total() = %d, want %d", m.Total(), len(labels))
	}

	counts := m.Counts()
	if counts.TruePositives != 2 || counts.TrueNegatives != 1 || counts.FalsePositives != 1 || counts.FalseNegatives != 1 {
		t.Errorf("Counts() = %+v", counts)
	}
}
