package core

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/EmundoT/solbench/internal/types"
)

// Labeler supplies the ground-truth answers for one analyzed file.
//
//go:generate mockgen -source=labeler.go -destination=mock_labeler_test.go -package=core
type Labeler interface {
	Label(ctx context.Context, result types.AnalysisResult) (types.Label, error)
}

// LabelerFunc adapts a function to Labeler.
type LabelerFunc func(ctx context.Context, result types.AnalysisResult) (types.Label, error)

// Label implements Labeler
func (f LabelerFunc) Label(ctx context.Context, result types.AnalysisResult) (types.Label, error) {
	return f(ctx, result)
}

// ParseAnswer reports whether an operator answer means true. Only "yes" and
// "true", in any case, do; everything else is false.
func ParseAnswer(answer string) bool {
	a := strings.ToLower(strings.TrimRight(answer, "\r\n"))
	return a == "yes" || a == "true"
}

// PromptLabeler asks the two questions on a line-oriented stream.
type PromptLabeler struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptLabeler reads answers from in and writes prompts to out.
func NewPromptLabeler(in io.Reader, out io.Writer) *PromptLabeler {
	return &PromptLabeler{in: bufio.NewReader(in), out: out}
}

// Label implements Labeler
func (p *PromptLabeler) Label(_ context.Context, _ types.AnalysisResult) (types.Label, error) {
	hasIssue, err := p.ask(PromptHasIssue)
	if err != nil {
		return types.Label{}, err
	}
	reported, err := p.ask(PromptReported)
	if err != nil {
		return types.Label{}, err
	}
	return types.Label{HasIssue: hasIssue, Reported: reported}, nil
}

func (p *PromptLabeler) ask(prompt string) (bool, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, fmt.Errorf("read answer to %q: %w", prompt, err)
	}
	return ParseAnswer(line), nil
}

// AnswersLabeler replays a pre-recorded answers file. Files without an entry
// are labeled false/false, the same as an unrecognized typed answer.
type AnswersLabeler struct {
	answers map[string]types.Label
	missing []string
}

// NewAnswersLabeler creates a labeler over answers.
func NewAnswersLabeler(answers types.LabelAnswers) *AnswersLabeler {
	m := answers.Answers
	if m == nil {
		m = map[string]types.Label{}
	}
	return &AnswersLabeler{answers: m}
}

// LoadAnswersLabeler reads an answers file.
func LoadAnswersLabeler(path string) (*AnswersLabeler, error) {
	answers, err := NewYAMLStoreAt[types.LabelAnswers](path, false).Load()
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	return NewAnswersLabeler(answers), nil
}

// Label implements Labeler. Lookup tries the full path, then the filename.
func (a *AnswersLabeler) Label(_ context.Context, result types.AnalysisResult) (types.Label, error) {
	if l, ok := a.answers[result.Target.Path]; ok {
		return l, nil
	}
	if l, ok := a.answers[result.Target.Name]; ok {
		return l, nil
	}
	a.missing = append(a.missing, result.Target.Path)
	return types.Label{}, nil
}

// Missing lists the targets that had no recorded answer.
func (a *AnswersLabeler) Missing() []string {
	return a.missing
}
