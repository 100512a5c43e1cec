package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/EmundoT/solbench/internal/core"
	"github.com/EmundoT/solbench/internal/types"
)

// NonInteractiveTUICallback handles piped, quiet, and JSON output
type NonInteractiveTUICallback struct {
	flags core.NonInteractiveFlags
}

// NewNonInteractiveTUICallback creates a new non-interactive callback
func NewNonInteractiveTUICallback(flags core.NonInteractiveFlags) *NonInteractiveTUICallback {
	return &NonInteractiveTUICallback{flags: flags}
}

// ShowError displays an error message
func (n *NonInteractiveTUICallback) ShowError(title, message string) {
	if n.flags.Mode == core.OutputJSON {
		_ = n.FormatJSON(core.JSONOutput{
			Status: "error",
			Error: &core.JSONError{
				Title:   title,
				Message: message,
			},
		})
	} else if n.flags.Mode != core.OutputQuiet {
		fmt.Fprintf(os.Stderr, "Error: %s - %s\n", title, message)
	}
}

// ShowSuccess displays a success message
func (n *NonInteractiveTUICallback) ShowSuccess(message string) {
	if n.flags.Mode == core.OutputNormal {
		fmt.Println(message)
	}
}

// ShowWarning writes warnings to stderr so stdout stays parseable
func (n *NonInteractiveTUICallback) ShowWarning(title, message string) {
	if n.flags.Mode != core.OutputQuiet {
		fmt.Fprintf(os.Stderr, "Warning: %s - %s\n", title, message)
	}
}

// AskConfirmation handles confirmation prompts
func (n *NonInteractiveTUICallback) AskConfirmation(title, message string) bool {
	if n.flags.Yes {
		return true
	}
	// In non-interactive mode without --yes, fail for safety
	n.ShowError("Interactive Prompt Required",
		fmt.Sprintf("%s: %s\nUse --yes to auto-approve", title, message))
	return false
}

// StyleTitle returns the title unstyled
func (n *NonInteractiveTUICallback) StyleTitle(title string) string {
	return title
}

// ShowAnalysis prints the analyzer output so it can be labeled. JSON mode
// sends it to stderr; quiet mode prints nothing.
func (n *NonInteractiveTUICallback) ShowAnalysis(result types.AnalysisResult) {
	var w io.Writer
	switch n.flags.Mode {
	case core.OutputNormal:
		w = os.Stdout
	case core.OutputJSON:
		w = os.Stderr
	default:
		return
	}
	fmt.Fprintf(w, "Finished analysis of %q in %.4f secs\n", result.Target.Name, result.Duration.Seconds())
	fmt.Fprintln(w, result.Stdout, result.Stderr)
	fmt.Fprintln(w, result.Target.Name)
}

// GetOutputMode returns the current output mode
func (n *NonInteractiveTUICallback) GetOutputMode() core.OutputMode {
	return n.flags.Mode
}

// FormatJSON formats and outputs JSON to stdout
func (n *NonInteractiveTUICallback) FormatJSON(output core.JSONOutput) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
