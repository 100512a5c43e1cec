package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/EmundoT/solbench/internal/core"
	"github.com/EmundoT/solbench/internal/types"
)

// FormLabeler asks the two labeling questions with a huh form. Answers are
// free text and go through core.ParseAnswer, so only yes/true count.
type FormLabeler struct{}

// NewFormLabeler creates a FormLabeler.
func NewFormLabeler() *FormLabeler {
	return &FormLabeler{}
}

// Label implements core.Labeler
func (f *FormLabeler) Label(_ context.Context, result types.AnalysisResult) (types.Label, error) {
	var hasIssue, reported string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(core.PromptHasIssue).
			Description("Does "+result.Target.Name+" contain a known issue? (yes/no)").
			Value(&hasIssue),
		huh.NewInput().
			Title(core.PromptReported).
			Description("Did the analyzer report it? (yes/no)").
			Value(&reported),
	))
	if err := form.Run(); err != nil {
		return types.Label{}, err
	}
	return types.Label{
		HasIssue: core.ParseAnswer(hasIssue),
		Reported: core.ParseAnswer(reported),
	}, nil
}

// NewLabeler picks the answer source: a recorded answers file when given,
// a form on a terminal in normal mode, and plain line prompts on stdin
// otherwise. Outside normal mode the prompts go to stderr so stdout carries
// only results.
func NewLabeler(answersPath string, mode core.OutputMode) (core.Labeler, error) {
	if answersPath != "" {
		answers, err := core.LoadAnswersLabeler(answersPath)
		if err != nil {
			return nil, err
		}
		return answers, nil
	}
	if mode != core.OutputNormal {
		return core.NewPromptLabeler(os.Stdin, os.Stderr), nil
	}
	if IsTerminal() && isTerminalFd(os.Stdin.Fd()) {
		return NewFormLabeler(), nil
	}
	return core.NewPromptLabeler(os.Stdin, os.Stdout), nil
}
