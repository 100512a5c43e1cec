package core

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/EmundoT/solbench/internal/types"
)

// WriteSummary prints the metrics-mode summary. The failure line prints the
// raw fraction followed by "%"; it is not scaled by 100.
func WriteSummary(w io.Writer, s types.Summary) error {
	lines := []string{
		fmt.Sprintf("Total smartcontracts analyzed: %d", s.Total),
		fmt.Sprintf("Flagged smartcontracts: %d", s.Flagged),
		fmt.Sprintf("Detections per contract: %s", FormatFloat(s.DetectionsPerContract)),
		fmt.Sprintf("Smartcontracts without vulnerabilities: %d", s.NoIssue),
		fmt.Sprintf("Failed analysis: %s %%", FormatFloat(s.FailedRatio)),
		fmt.Sprintf("Average execution time: %s seconds", FormatFloat(s.MeanSeconds)),
		fmt.Sprintf("Minimum execution time: %s seconds", FormatFloat(s.MinSeconds)),
		fmt.Sprintf("Maximum execution time: %s seconds", FormatFloat(s.MaxSeconds)),
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// WriteConfusion prints the four confusion-matrix counters.
func WriteConfusion(w io.Writer, m ConfusionMatrix) error {
	_, err := fmt.Fprintf(w, "False positives: %d\nTrue positives: %d\nFalse negatives: %d\nTrue negatives: %d\n",
		m.FalsePositives, m.TruePositives, m.FalseNegatives, m.TrueNegatives)
	return err
}

// FormatFloat renders v with the shortest round-tripping digits, always
// keeping a fractional part ("1.0", "0.0", "0.3333333333333333") and
// switching to exponent form outside [1e-4, 1e16).
func FormatFloat(v float64) string {
	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
