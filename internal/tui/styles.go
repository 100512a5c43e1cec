package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/EmundoT/solbench/internal/core"
	"github.com/EmundoT/solbench/internal/types"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleCard    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("238"))
)

// PrintError displays an error message with styling to the terminal.
func PrintError(title, msg string) { fmt.Println(styleErr.Render("✖ " + title)); fmt.Println(msg) }

// PrintSuccess displays a success message with styling to the terminal.
func PrintSuccess(msg string) { fmt.Println(styleSuccess.Render("✔ " + msg)) }

// PrintInfo displays dimmed informational text.
func PrintInfo(msg string) { fmt.Println(styleDim.Render(msg)) }

// PrintWarning displays a warning message with styling to the terminal.
func PrintWarning(title, msg string) { fmt.Println(styleWarn.Render("! " + title)); fmt.Println(msg) }

// StyleTitle applies title styling to the given text string.
func StyleTitle(text string) string { return styleTitle.Render(text) }

// RenderSummary draws the metrics summary lines inside a card. The lines are
// exactly those core.WriteSummary prints.
func RenderSummary(s types.Summary) string {
	var b strings.Builder
	_ = core.WriteSummary(&b, s)
	return styleCard.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderConfusion draws the confusion-matrix counters inside a card.
func RenderConfusion(m core.ConfusionMatrix) string {
	var b strings.Builder
	_ = core.WriteConfusion(&b, m)
	return styleCard.Render(strings.TrimRight(b.String(), "\n"))
}

// PrintAnalysis echoes one slither run the way the labeling loop shows it:
// elapsed time, captured output and errors, then the filename.
func PrintAnalysis(w io.Writer, r types.AnalysisResult) {
	fmt.Fprintf(w, "Finished analysis of %q in %.4f secs\n", r.Target.Name, r.Duration.Seconds())
	if r.RecoveredVersion != "" {
		fmt.Fprintln(w, styleDim.Render("solc "+r.RecoveredVersion+" selected"))
	}
	fmt.Fprintln(w, r.Stdout, r.Stderr)
	fmt.Fprintln(w, styleTitle.Render(r.Target.Name))
}

// PrintHelp displays usage information for solbench commands.
func PrintHelp() {
	fmt.Println(styleTitle.Render("solbench"))
	fmt.Println("Benchmark smart-contract analyzers against a directory of contracts")
	fmt.Println("\nCommands:")
	fmt.Println("  metrics [options]   Run the Node analyzer on every contract and print statistics")
	fmt.Println("    --metrics-textfile <path>")
	fmt.Println("                      Also write Prometheus metrics for the run")
	fmt.Println("  report [options]    Run the Node analyzer and write every output to a report file")
	fmt.Println("    --out <path>      Report file (default: report.txt)")
	fmt.Println("  label [options]     Run slither on every contract and label the results")
	fmt.Println("    --answers <path>  Read labels from a YAML answers file instead of prompting")
	fmt.Println("  watch               Re-run metrics whenever contracts change")
	fmt.Println("  init                Write a default solbench.yml")
	fmt.Println("  completion <shell>  Generate shell completion script (bash/zsh/fish)")
	fmt.Println("\nCommon options:")
	fmt.Println("  --root <dir>        Directory to scan (default: ./database)")
	fmt.Println("  --config <path>     Configuration file (default: solbench.yml)")
	fmt.Println("  --json              Print results as JSON")
	fmt.Println("  --quiet, -q         Print results only")
	fmt.Println("  --yes, -y           Answer confirmations with yes")
	fmt.Println("  --verbose, -v       Log analyzer commands as they run")
	fmt.Println("\nExamples:")
	fmt.Println("  solbench metrics")
	fmt.Println("  solbench metrics --root ./contracts --json")
	fmt.Println("  solbench report --out findings.txt")
	fmt.Println("  solbench label --answers labels.yml")
	fmt.Println("  solbench completion bash > /etc/bash_completion.d/solbench")
}
