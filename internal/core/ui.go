package core

import "github.com/EmundoT/solbench/internal/types"

// OutputMode controls how results are displayed
type OutputMode int

// OutputMode constants define available output formatting modes.
const (
	OutputNormal OutputMode = iota // styled text
	OutputQuiet                    // summary lines only
	OutputJSON                     // one JSON document on stdout
)

// NonInteractiveFlags groups the options that suppress prompts and styling
type NonInteractiveFlags struct {
	Yes  bool       // answer confirmations with yes
	Mode OutputMode // output formatting mode
}

// JSONOutput is the envelope every --json command prints
type JSONOutput struct {
	Status  string                 `json:"status"` // "success", "error", "warning"
	Message string                 `json:"message,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *JSONError             `json:"error,omitempty"`
}

// JSONError is the error half of JSONOutput
type JSONError struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// UICallback is how the harness talks to the operator
type UICallback interface {
	ShowError(title, message string)
	ShowSuccess(message string)
	ShowWarning(title, message string)
	AskConfirmation(title, message string) bool
	StyleTitle(title string) string

	// ShowAnalysis echoes one analyzer run before it is labeled.
	ShowAnalysis(result types.AnalysisResult)

	GetOutputMode() OutputMode
	FormatJSON(output JSONOutput) error
}

// ProgressTracker reports per-target progress of a run
type ProgressTracker interface {
	Increment(message string)
	SetTotal(total int)
	Complete()
	Fail(err error)
}

// SilentUICallback is a no-op implementation (for testing/CI)
type SilentUICallback struct{}

func (s *SilentUICallback) ShowError(title, message string)        {}
func (s *SilentUICallback) ShowSuccess(message string)             {}
func (s *SilentUICallback) ShowWarning(title, message string)      {}
func (s *SilentUICallback) AskConfirmation(title, msg string) bool { return false }
func (s *SilentUICallback) StyleTitle(title string) string         { return title }
func (s *SilentUICallback) ShowAnalysis(_ types.AnalysisResult)    {}
func (s *SilentUICallback) GetOutputMode() OutputMode              { return OutputNormal }
func (s *SilentUICallback) FormatJSON(output JSONOutput) error     { return nil }

// noopProgress is used when the caller passes no tracker
type noopProgress struct{}

func (noopProgress) Increment(string) {}
func (noopProgress) SetTotal(int)     {}
func (noopProgress) Complete()        {}
func (noopProgress) Fail(error)       {}
