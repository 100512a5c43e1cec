package core

// Defaults reproduce the fixed layout the harness was first written against:
// contracts under ./database, the Node analyzer built into dist/.
const (
	// DefaultRoot is the directory walked for contract sources
	DefaultRoot = "./database"
	// DefaultExtension selects contract source files
	DefaultExtension = ".sol"
	// DefaultReportPath is the report-mode output file
	DefaultReportPath = "report.txt"
	// ConfigFile is the optional configuration file read from the working directory
	ConfigFile = "solbench.yml"
	// CategoryLen is the length of the category code taken from a filename
	CategoryLen = 3
)

// Analyzer executables and arguments
const (
	// NodeExecutable runs the Node-based analyzer
	NodeExecutable = "node"
	// NodeEntryPoint is the analyzer script passed to node
	NodeEntryPoint = "dist/index.js"
	// NodeSourceArg prefixes the target path in the Node analyzer's argument
	NodeSourceArg = "src="
	// SlitherExecutable is the slither CLI
	SlitherExecutable = "slither"
	// SolcSelectExecutable installs and activates solc versions
	SolcSelectExecutable = "solc-select"
)

// SlitherSummaryArgs is appended on the second, captured slither pass.
var SlitherSummaryArgs = []string{"--print", "human-summary"}

// Report file layout
const (
	// ReportSeparator ends every entry in the report file
	ReportSeparator = "_____________________"
)

// Classification phrases printed by the Node analyzer and by slither/solc.
const (
	PatternNoIssue         = "Issues not found in"
	PatternFlagged         = "issues found in"
	PatternIssueCount      = `There are (\d+) issues found in`
	PatternIssuePrefix     = "issue: SWC"
	PatternVersionMismatch = "Error: Source file requires different compiler version"
	PatternPragmaMarker    = "pragma solidity "
)

// Operator prompts used while labeling
const (
	PromptHasIssue = "has error:"
	PromptReported = "error found:"
)
