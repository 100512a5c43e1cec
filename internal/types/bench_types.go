// Package types holds the data shared between the harness core, the terminal
// UI, and the CLI entry points.
package types

import "time"

// BenchConfig is the on-disk solbench.yml shape.
type BenchConfig struct {
	Root            string          `yaml:"root"`
	Extension       string          `yaml:"extension"`
	ReportPath      string          `yaml:"report_path"`
	MetricsTextfile string          `yaml:"metrics_textfile,omitempty"`
	AnalyzerTimeout Duration        `yaml:"analyzer_timeout,omitempty"` // zero means wait forever
	Node            NodeConfig      `yaml:"node"`
	Slither         SlitherConfig   `yaml:"slither"`
	Patterns        *PatternsConfig `yaml:"patterns,omitempty"`
}

// NodeConfig describes how to start the Node-based analyzer.
// The target is appended as a single "src=<path>" argument.
type NodeConfig struct {
	Command []string `yaml:"command"`
}

// SlitherConfig describes how to start slither and the compiler selector.
type SlitherConfig struct {
	Command    string   `yaml:"command"`
	ExtraArgs  []string `yaml:"extra_args,omitempty"`
	SolcSelect string   `yaml:"solc_select"`
}

// PatternsConfig overrides individual classification phrases. Empty fields
// keep the built-in phrase.
type PatternsConfig struct {
	NoIssue         string `yaml:"no_issue,omitempty"`
	Flagged         string `yaml:"flagged,omitempty"`
	IssueCount      string `yaml:"issue_count,omitempty"` // regexp with one integer capture group
	IssuePrefix     string `yaml:"issue_prefix,omitempty"`
	VersionMismatch string `yaml:"version_mismatch,omitempty"`
	PragmaMarker    string `yaml:"pragma_marker,omitempty"`
}

// Duration is a time.Duration that reads "90s" style strings from YAML.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// TargetFile is one contract source file found under the root.
type TargetFile struct {
	Path     string // path as discovered, rooted at the configured root
	Name     string // base filename
	Category string // first three characters of Name
	Index    int    // discovery order
}

// Outcome is the automatic classification of one analyzer run.
type Outcome int

// Outcome values. OutcomeFailed is never produced by the classifier directly;
// it is what remains when neither phrase matched.
const (
	OutcomeFailed Outcome = iota
	OutcomeNoIssue
	OutcomeFlagged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoIssue:
		return "no-issue"
	case OutcomeFlagged:
		return "flagged"
	default:
		return "failed"
	}
}

// Classification is what the classifier read out of analyzer text.
// NoIssue and Flagged are tested independently, so both may be set.
type Classification struct {
	NoIssue    bool
	Flagged    bool
	Detections int
}

// Outcome folds the two flags into a single outcome for display.
func (c Classification) Outcome() Outcome {
	switch {
	case c.Flagged:
		return OutcomeFlagged
	case c.NoIssue:
		return OutcomeNoIssue
	default:
		return OutcomeFailed
	}
}

// AnalysisResult is produced once per target.
type AnalysisResult struct {
	Target         TargetFile
	Stdout         string
	Stderr         string
	ExitCode       int
	Duration       time.Duration
	Classification Classification

	// Slither workflow only.
	RecoveredVersion string // compiler version installed by recovery, if any
	Err              error  // non-zero exit carried from the last invocation
}

// Label is the pair of operator answers for one file.
type Label struct {
	HasIssue bool `yaml:"has_issue" json:"has_issue"` // ground truth: the file has a known issue
	Reported bool `yaml:"reported" json:"reported"`   // the analyzer reported an issue
}

// LabelAnswers is the pre-recorded answers file, keyed by filename.
type LabelAnswers struct {
	Answers map[string]Label `yaml:"answers"`
}

// Summary is the derived statistics of a metrics run.
type Summary struct {
	RunID                 string  `json:"run_id"`
	Total                 int     `json:"total"`
	Flagged               int     `json:"flagged"`
	NoIssue               int     `json:"no_issue"`
	Failed                int     `json:"failed"`
	Detections            int     `json:"detections"`
	DetectionsPerContract float64 `json:"detections_per_contract"`
	FailedRatio           float64 `json:"failed_ratio"`
	MeanSeconds           float64 `json:"mean_seconds"`
	MinSeconds            float64 `json:"min_seconds"`
	MaxSeconds            float64 `json:"max_seconds"`
}

// ConfusionCounts is the JSON shape of a finished labeling run.
type ConfusionCounts struct {
	RunID          string `json:"run_id"`
	TruePositives  int    `json:"true_positives"`
	FalsePositives int    `json:"false_positives"`
	TrueNegatives  int    `json:"true_negatives"`
	FalseNegatives int    `json:"false_negatives"`
}
