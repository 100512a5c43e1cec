package core

import "errors"

// Sentinel errors for common error conditions.
// These can be used with errors.Is() for error type checking.
var (
	// ErrNoTargets indicates the root held no contract files, so no ratio can be computed
	ErrNoTargets = errors.New("no contract files found")

	// ErrAnalyzerNotFound indicates the analyzer executable is not on PATH
	ErrAnalyzerNotFound = errors.New("analyzer executable not found")

	// ErrConfigInvalid indicates solbench.yml failed validation
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrQuietLabel indicates label prompts were requested with the analysis echo suppressed
	ErrQuietLabel = errors.New("--quiet hides the analyzer output needed to label; pass --answers")

	// ErrNoVersionInError indicates the compiler mismatch text carried no pragma
	ErrNoVersionInError = errors.New("no solidity pragma in compiler error")
)

// Error message templates for formatted errors.
// Use with fmt.Errorf() to create errors with context.
const (
	// ErrAnalyzeFailedMsg wraps a failure to run the analyzer on one file
	ErrAnalyzeFailedMsg = "analyze %s: %w"

	// ErrInstallCompilerMsg wraps a failed solc-select install
	ErrInstallCompilerMsg = "install solc %s: %w"

	// ErrUseCompilerMsg wraps a failed solc-select use
	ErrUseCompilerMsg = "select solc %s: %w"

	// ErrNoTargetsMsg names the root that yielded nothing
	ErrNoTargetsMsg = "%w under %s"
)
