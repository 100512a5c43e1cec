package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/EmundoT/solbench/internal/types"
)

// Patterns is the set of literal phrases the harness looks for in analyzer
// text. Matching is plain substring search except IssueCount, which is a
// regexp whose first capture group is the issue count.
type Patterns struct {
	NoIssue         string
	Flagged         string
	IssueCount      string
	IssuePrefix     string
	VersionMismatch string
	PragmaMarker    string
}

// DefaultPatterns returns the phrases printed by the Node analyzer and solc.
func DefaultPatterns() Patterns {
	return Patterns{
		NoIssue:         PatternNoIssue,
		Flagged:         PatternFlagged,
		IssueCount:      PatternIssueCount,
		IssuePrefix:     PatternIssuePrefix,
		VersionMismatch: PatternVersionMismatch,
		PragmaMarker:    PatternPragmaMarker,
	}
}

// PatternsFromConfig overlays the non-empty fields of pc on DefaultPatterns.
func PatternsFromConfig(pc *types.PatternsConfig) Patterns {
	p := DefaultPatterns()
	if pc == nil {
		return p
	}
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&p.NoIssue, pc.NoIssue)
	override(&p.Flagged, pc.Flagged)
	override(&p.IssueCount, pc.IssueCount)
	override(&p.IssuePrefix, pc.IssuePrefix)
	override(&p.VersionMismatch, pc.VersionMismatch)
	override(&p.PragmaMarker, pc.PragmaMarker)
	return p
}

// Classifier turns raw analyzer text into outcomes. It is the only place the
// harness inspects analyzer output.
type Classifier struct {
	patterns   Patterns
	issueCount *regexp.Regexp
}

// NewClassifier compiles p. IssueCount must contain a capture group.
func NewClassifier(p Patterns) (*Classifier, error) {
	re, err := regexp.Compile(p.IssueCount)
	if err != nil {
		return nil, fmt.Errorf("issue_count pattern: %w", err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("issue_count pattern %q has no capture group", p.IssueCount)
	}
	return &Classifier{patterns: p, issueCount: re}, nil
}

// DefaultClassifier returns a Classifier over DefaultPatterns.
func DefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultPatterns())
	if err != nil {
		panic(err) // built-in pattern
	}
	return c
}

// Patterns returns the phrases in use.
func (c *Classifier) Patterns() Patterns {
	return c.patterns
}

// Classify reads the no-issue and flagged phrases out of output. The two
// checks are independent. Detections come from the first issue-count match
// only, and only when the flagged phrase is present.
func (c *Classifier) Classify(output string) types.Classification {
	var cl types.Classification
	if strings.Contains(output, c.patterns.NoIssue) {
		cl.NoIssue = true
	}
	if strings.Contains(output, c.patterns.Flagged) {
		cl.Flagged = true
		cl.Detections = c.Detections(output)
	}
	return cl
}

// Detections extracts N from the first "There are N issues found in" match.
// No match yields 0.
func (c *Classifier) Detections(output string) int {
	m := c.issueCount.FindStringSubmatch(output)
	if len(m) < 2 {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// HasExpectedIssue reports whether output names the issue code the target's
// filename says it should contain ("issue: SWC" + category).
func (c *Classifier) HasExpectedIssue(target types.TargetFile, output string) bool {
	return strings.Contains(output, c.patterns.IssuePrefix+target.Category)
}

// NeedsVersionRecovery reports whether stderr carries the compiler mismatch error.
func (c *Classifier) NeedsVersionRecovery(stderr string) bool {
	return strings.Contains(stderr, c.patterns.VersionMismatch)
}

// CompilerVersion extracts the declared version from compiler error text:
// the text between the pragma marker and the next ';', with anything up to
// and including a '^' dropped.
func (c *Classifier) CompilerVersion(stderr string) (string, error) {
	_, after, found := strings.Cut(stderr, c.patterns.PragmaMarker)
	if !found {
		return "", ErrNoVersionInError
	}
	version, _, _ := strings.Cut(after, ";")
	if i := strings.Index(version, "^"); i >= 0 {
		version = version[i+1:]
	}
	version = strings.TrimSpace(version)
	if version == "" {
		return "", ErrNoVersionInError
	}
	return version, nil
}
