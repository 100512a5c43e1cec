// Package main implements the solbench CLI for benchmarking smart-contract analyzers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/EmundoT/solbench/cmd"
	"github.com/EmundoT/solbench/internal/core"
	"github.com/EmundoT/solbench/internal/tui"
	"github.com/EmundoT/solbench/internal/version"
)

// cliOptions holds everything parsed from the command line after the command name.
type cliOptions struct {
	flags           core.NonInteractiveFlags
	verbose         bool
	root            string
	config          string
	out             string
	answers         string
	metricsTextfile string
	args            []string
}

// valueFlags take the following argument (or "=value") as their value.
var valueFlags = map[string]func(*cliOptions, string){
	"--root":             func(o *cliOptions, v string) { o.root = v },
	"--config":           func(o *cliOptions, v string) { o.config = v },
	"--out":              func(o *cliOptions, v string) { o.out = v },
	"--answers":          func(o *cliOptions, v string) { o.answers = v },
	"--metrics-textfile": func(o *cliOptions, v string) { o.metricsTextfile = v },
}

// parseFlags extracts common and value flags from args.
// Unknown arguments are kept in order in opts.args.
func parseFlags(args []string) (cliOptions, error) {
	opts := cliOptions{config: core.ConfigFile}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--yes", "-y":
			opts.flags.Yes = true
			continue
		case "--quiet", "-q":
			opts.flags.Mode = core.OutputQuiet
			continue
		case "--json":
			opts.flags.Mode = core.OutputJSON
			continue
		case "--verbose", "-v":
			opts.verbose = true
			continue
		}

		name, value, hasValue := strings.Cut(arg, "=")
		set, ok := valueFlags[name]
		if !ok {
			opts.args = append(opts.args, arg)
			continue
		}
		if !hasValue {
			if i+1 >= len(args) {
				return cliOptions{}, fmt.Errorf("%s requires a value", name)
			}
			i++
			value = args[i]
		}
		set(&opts, value)
	}

	return opts, nil
}

// newLogger builds the diagnostic logger. Only warnings show unless verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

// newCallback picks the styled or plain callback for flags.
func newCallback(flags core.NonInteractiveFlags) core.UICallback {
	if flags.Yes || flags.Mode != core.OutputNormal || !tui.IsTerminal() {
		return tui.NewNonInteractiveTUICallback(flags)
	}
	return tui.NewTUICallback()
}

func main() {
	if len(os.Args) < 2 {
		tui.PrintHelp()
		os.Exit(0)
	}

	command := os.Args[1]

	switch command {
	case "--help", "-h", "help":
		tui.PrintHelp()
		return
	case "--version":
		fmt.Println(version.String())
		return
	case "completion":
		if len(os.Args) < 3 {
			tui.PrintError("Usage", "solbench completion <shell>\nSupported shells: bash, zsh, fish")
			os.Exit(1)
		}
		script, err := cmd.Generate(os.Args[2])
		if err != nil {
			tui.PrintError("Invalid Shell", err.Error())
			os.Exit(1)
		}
		fmt.Println(script)
		return
	}

	opts, err := parseFlags(os.Args[2:])
	if err != nil {
		tui.PrintError("Usage", err.Error())
		os.Exit(1)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		tui.PrintError("Error", err.Error())
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	callback := newCallback(opts.flags)
	a := &app{opts: opts, ui: callback, logger: logger}

	switch command {
	case "init":
		err = a.initConfig()
	case "metrics":
		err = a.metrics(ctx)
	case "report":
		err = a.report(ctx)
	case "label":
		err = a.label(ctx)
	case "watch":
		err = a.watch(ctx)
	default:
		tui.PrintError("Unknown Command", fmt.Sprintf("'%s' is not a solbench command. Run 'solbench help'.", command))
		stop()
		os.Exit(1)
	}

	if err != nil {
		callback.ShowError(errorTitle(command), err.Error())
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}

func errorTitle(command string) string {
	switch command {
	case "init":
		return "Initialization Failed"
	case "label":
		return "Labeling Failed"
	case "watch":
		return "Watch Failed"
	default:
		return "Run Failed"
	}
}
