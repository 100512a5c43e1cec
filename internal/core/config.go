package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/EmundoT/solbench/internal/types"
)

// DefaultConfig returns the configuration used when no solbench.yml exists.
func DefaultConfig() types.BenchConfig {
	return types.BenchConfig{
		Root:       DefaultRoot,
		Extension:  DefaultExtension,
		ReportPath: DefaultReportPath,
		Node: types.NodeConfig{
			Command: []string{NodeExecutable, NodeEntryPoint},
		},
		Slither: types.SlitherConfig{
			Command:    SlitherExecutable,
			SolcSelect: SolcSelectExecutable,
		},
	}
}

// LoadConfig reads path (missing is fine) and fills unset fields with defaults.
func LoadConfig(path string) (types.BenchConfig, error) {
	cfg, err := NewYAMLStoreAt[types.BenchConfig](path, true).Load()
	if err != nil {
		return types.BenchConfig{}, err
	}
	cfg = WithDefaults(cfg)
	if err := ValidateConfig(cfg); err != nil {
		return types.BenchConfig{}, err
	}
	return cfg, nil
}

// WithDefaults fills every empty field of cfg from DefaultConfig.
func WithDefaults(cfg types.BenchConfig) types.BenchConfig {
	def := DefaultConfig()
	if cfg.Root == "" {
		cfg.Root = def.Root
	}
	if cfg.Extension == "" {
		cfg.Extension = def.Extension
	}
	if cfg.ReportPath == "" {
		cfg.ReportPath = def.ReportPath
	}
	if len(cfg.Node.Command) == 0 {
		cfg.Node.Command = def.Node.Command
	}
	if cfg.Slither.Command == "" {
		cfg.Slither.Command = def.Slither.Command
	}
	if cfg.Slither.SolcSelect == "" {
		cfg.Slither.SolcSelect = def.Slither.SolcSelect
	}
	return cfg
}

// ValidateConfig rejects configurations the harness cannot run with.
func ValidateConfig(cfg types.BenchConfig) error {
	if !strings.HasPrefix(cfg.Extension, ".") {
		return fmt.Errorf("%w: extension %q must start with '.'", ErrConfigInvalid, cfg.Extension)
	}
	if strings.TrimSpace(cfg.Node.Command[0]) == "" {
		return fmt.Errorf("%w: node.command must name an executable", ErrConfigInvalid)
	}
	if time.Duration(cfg.AnalyzerTimeout) < 0 {
		return fmt.Errorf("%w: analyzer_timeout must not be negative", ErrConfigInvalid)
	}
	if cfg.Patterns != nil {
		if _, err := NewClassifier(PatternsFromConfig(cfg.Patterns)); err != nil {
			return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
		}
	}
	return nil
}
