package core

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/EmundoT/solbench/internal/runner"
	"github.com/EmundoT/solbench/internal/types"
)

const mismatchStderr = "Error: Source file requires different compiler version (current compiler is 0.4.24+commit.e67f0147.Linux.g++) - note that nightly builds are considered to be strictly less than the released version\n" +
	" --> database/107a.sol:1:1:\n  |\n1 | pragma solidity ^0.8.0;\n  | ^^^^^^^^^^^^^^^^^^^^^^^\n"

func newSlither(ctrl *gomock.Controller) (*SlitherAnalyzer, *MockCommandRunner, *MockCompilerSelector) {
	r := NewMockCommandRunner(ctrl)
	sel := NewMockCompilerSelector(ctrl)
	cfg := types.SlitherConfig{Command: "slither", SolcSelect: "solc-select"}
	return NewSlitherAnalyzer(r, sel, DefaultClassifier(), cfg, nil), r, sel
}

func processError(out runner.Output) error {
	return &runner.ProcessError{
		Name:     "slither",
		Stdout:   out.Stdout,
		Stderr:   out.Stderr,
		ExitCode: out.ExitCode,
		Err:      errors.New("exit status 1"),
	}
}

func TestSlitherAnalyzer_CleanRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, r, _ := newSlither(ctrl)
	target := NewTargetFile("database/107a.sol", 0)

	gomock.InOrder(
		r.EXPECT().Run(gomock.Any(), "slither", "database/107a.sol").
			Return(runner.Output{Duration: time.Second}, nil),
		r.EXPECT().RunChecked(gomock.Any(), "slither", "database/107a.sol", "--print", "human-summary").
			Return(runner.Output{Stdout: "  Compiled with solc\n  Number of optimization issues: 0\n", Duration: 2 * time.Second}, nil),
	)

	got, err := a.Analyze(context.Background(), target)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.Stdout != "Compiled with solc\n  Number of optimization issues: 0" {
		t.Errorf("Stdout not trimmed: %q", got.Stdout)
	}
	if got.Duration != 3*time.Second {
		t.Errorf("Duration = %v, want both passes", got.Duration)
	}
	if got.Err != nil || got.RecoveredVersion != "" {
		t.Errorf("Unexpected Err=%v RecoveredVersion=%q", got.Err, got.RecoveredVersion)
	}
}

func TestSlitherAnalyzer_NonZeroExitKeepsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, r, _ := newSlither(ctrl)

	out := runner.Output{Stdout: "partial summary\n", Stderr: "Traceback: boom\n", ExitCode: 1}
	r.EXPECT().Run(gomock.Any(), "slither", gomock.Any()).Return(runner.Output{}, nil)
	r.EXPECT().RunChecked(gomock.Any(), "slither", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(out, processError(out))

	got, err := a.Analyze(context.Background(), NewTargetFile("a.sol", 0))
	if err != nil {
		t.Fatalf("A non-zero exit must not be returned as an error: %v", err)
	}
	if got.Stdout != "partial summary" || got.Stderr != "Traceback: boom" {
		t.Errorf("Output = %q / %q", got.Stdout, got.Stderr)
	}
	if _, ok := runner.AsProcessError(got.Err); !ok {
		t.Errorf("Err = %v, want *runner.ProcessError", got.Err)
	}
	if got.ExitCode != 1 {
		t.Errorf("ExitCode = %d", got.ExitCode)
	}
}

func TestSlitherAnalyzer_RecoversCompilerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, r, sel := newSlither(ctrl)
	target := NewTargetFile("database/107a.sol", 0)

	mismatch := runner.Output{Stderr: mismatchStderr, ExitCode: 1, Duration: time.Second}
	fixed := runner.Output{Stdout: "Number of high issues: 1\n", Duration: 2 * time.Second}

	gomock.InOrder(
		r.EXPECT().Run(gomock.Any(), "slither", target.Path).Return(runner.Output{}, nil),
		r.EXPECT().RunChecked(gomock.Any(), "slither", target.Path, "--print", "human-summary").
			Return(mismatch, processError(mismatch)),
		sel.EXPECT().Install(gomock.Any(), "0.8.0").Return(nil),
		sel.EXPECT().Use(gomock.Any(), "0.8.0").Return(nil),
		r.EXPECT().Run(gomock.Any(), "slither", target.Path).Return(runner.Output{}, nil),
		r.EXPECT().RunChecked(gomock.Any(), "slither", target.Path, "--print", "human-summary").
			Return(fixed, nil),
	)

	got, err := a.Analyze(context.Background(), target)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.RecoveredVersion != "0.8.0" {
		t.Errorf("RecoveredVersion = %q, want 0.8.0", got.RecoveredVersion)
	}
	if got.Stdout != "Number of high issues: 1" {
		t.Errorf("Stdout = %q, want retry output", got.Stdout)
	}
	if got.Err != nil {
		t.Errorf("Err = %v, want nil after successful retry", got.Err)
	}
	if got.Duration != 3*time.Second {
		t.Errorf("Duration = %v, want both attempts", got.Duration)
	}
}

func TestSlitherAnalyzer_RetriesOnlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, r, sel := newSlither(ctrl)

	mismatch := runner.Output{Stderr: mismatchStderr, ExitCode: 1}
	r.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(runner.Output{}, nil).Times(2)
	r.EXPECT().RunChecked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(mismatch, processError(mismatch)).Times(2)
	sel.EXPECT().Install(gomock.Any(), "0.8.0").Return(nil).Times(1)
	sel.EXPECT().Use(gomock.Any(), "0.8.0").Return(nil).Times(1)

	got, err := a.Analyze(context.Background(), NewTargetFile("a.sol", 0))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.Err == nil {
		t.Error("Expected the second failure to be kept on the result")
	}
}

func TestSlitherAnalyzer_MismatchWithoutPragma(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, r, _ := newSlither(ctrl)

	out := runner.Output{Stderr: "Error: Source file requires different compiler version", ExitCode: 1}
	r.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(runner.Output{}, nil)
	r.EXPECT().RunChecked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(out, processError(out))

	got, err := a.Analyze(context.Background(), NewTargetFile("a.sol", 0))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.RecoveredVersion != "" {
		t.Errorf("RecoveredVersion = %q, want none", got.RecoveredVersion)
	}
}

func TestSlitherAnalyzer_InstallFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, r, sel := newSlither(ctrl)

	mismatch := runner.Output{Stderr: mismatchStderr, ExitCode: 1}
	r.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(runner.Output{}, nil)
	r.EXPECT().RunChecked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(mismatch, processError(mismatch))
	installErr := errors.New("no such version")
	sel.EXPECT().Install(gomock.Any(), "0.8.0").Return(installErr)

	_, err := a.Analyze(context.Background(), NewTargetFile("a.sol", 0))
	if !errors.Is(err, installErr) {
		t.Fatalf("Expected install error, got %v", err)
	}
}

func TestSlitherAnalyzer_ExtraArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewMockCommandRunner(ctrl)
	cfg := types.SlitherConfig{Command: "slither", ExtraArgs: []string{"--solc-remaps", "@oz=lib/oz"}}
	a := NewSlitherAnalyzer(r, nil, DefaultClassifier(), cfg, nil)

	r.EXPECT().Run(gomock.Any(), "slither", "--solc-remaps", "@oz=lib/oz", "a.sol").Return(runner.Output{}, nil)
	r.EXPECT().RunChecked(gomock.Any(), "slither", "--solc-remaps", "@oz=lib/oz", "a.sol", "--print", "human-summary").
		Return(runner.Output{}, nil)

	if _, err := a.Analyze(context.Background(), NewTargetFile("a.sol", 0)); err != nil {
		t.Fatal(err)
	}
}

func TestSlitherAnalyzer_NotInstalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, r, _ := newSlither(ctrl)

	r.EXPECT().Run(gomock.Any(), "slither", gomock.Any()).Return(runner.Output{}, exec.ErrNotFound)

	_, err := a.Analyze(context.Background(), NewTargetFile("a.sol", 0))
	if !errors.Is(err, ErrAnalyzerNotFound) {
		t.Fatalf("Expected ErrAnalyzerNotFound, got %v", err)
	}
}

func TestSolcSelect(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewMockCommandRunner(ctrl)
	s := NewSolcSelect(r, "solc-select")

	gomock.InOrder(
		r.EXPECT().RunChecked(gomock.Any(), "solc-select", "install", "0.7.6").Return(runner.Output{}, nil),
		r.EXPECT().RunChecked(gomock.Any(), "solc-select", "use", "0.7.6").
			Return(runner.Output{}, &runner.ProcessError{Name: "solc-select", Stderr: "not installed", ExitCode: 1}),
	)

	if err := s.Install(context.Background(), "0.7.6"); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	err := s.Use(context.Background(), "0.7.6")
	if err == nil {
		t.Fatal("Expected Use() error")
	}
	if _, ok := runner.AsProcessError(err); !ok {
		t.Errorf("Use() error should wrap the process error, got %v", err)
	}
}
