// Package cmd provides CLI utilities for solbench
package cmd

import (
	"fmt"
	"strings"
)

// Commands available in solbench
var commands = []string{
	"metrics",
	"report",
	"label",
	"watch",
	"init",
	"completion",
	"help",
}

// Shells lists the shells Generate supports.
var Shells = []string{"bash", "zsh", "fish"}

// options shared by every analyzing command
const commonOpts = "--root --config --json --quiet -q --yes -y --verbose -v"

// Generate returns the completion script for shell.
func Generate(shell string) (string, error) {
	switch shell {
	case "bash":
		return GenerateBashCompletion(), nil
	case "zsh":
		return GenerateZshCompletion(), nil
	case "fish":
		return GenerateFishCompletion(), nil
	default:
		return "", fmt.Errorf("'%s' is not supported. Use: %s", shell, strings.Join(Shells, ", "))
	}
}

// commandOptions returns the flags a command accepts beyond commonOpts.
func commandOptions(cmd string) []string {
	switch cmd {
	case "metrics", "watch":
		return []string{"--metrics-textfile"}
	case "report":
		return []string{"--out"}
	case "label":
		return []string{"--answers"}
	default:
		return nil
	}
}

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	return fmt.Sprintf(`# bash completion for solbench
_solbench_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%s" -- ${cur}) )
        return 0
    fi

    case "${prev}" in
        --root)
            COMPREPLY=( $(compgen -d -- ${cur}) )
            return 0
            ;;
        --config|--out|--answers|--metrics-textfile)
            COMPREPLY=( $(compgen -f -- ${cur}) )
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "%s" -- ${cur}) )
            return 0
            ;;
    esac

    case "${COMP_WORDS[1]}" in
        metrics|watch)
            opts="%s %s"
            ;;
        report)
            opts="%s %s"
            ;;
        label)
            opts="%s %s"
            ;;
        init)
            opts="--config --root --yes -y"
            ;;
        *)
            opts=""
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
}

complete -F _solbench_completions solbench
`, strings.Join(commands, " "), strings.Join(Shells, " "),
		commonOpts, strings.Join(commandOptions("metrics"), " "),
		commonOpts, strings.Join(commandOptions("report"), " "),
		commonOpts, strings.Join(commandOptions("label"), " "))
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	cmdList := make([]string, len(commands))
	for i, cmd := range commands {
		cmdList[i] = fmt.Sprintf("    '%s:%s'", cmd, getCommandDescription(cmd))
	}

	return fmt.Sprintf(`#compdef solbench

_solbench() {
    local -a commands common
    commands=(
%s
    )
    common=(
        '--root[Directory to scan]:directory:_files -/'
        '--config[Configuration file]:file:_files'
        '--json[JSON output]'
        '(-q --quiet)'{-q,--quiet}'[Results only]'
        '(-y --yes)'{-y,--yes}'[Answer confirmations with yes]'
        '(-v --verbose)'{-v,--verbose}'[Log analyzer commands]'
    )

    _arguments -C \
        '1: :->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                metrics|watch)
                    _arguments $common '--metrics-textfile[Write Prometheus metrics]:file:_files'
                    ;;
                report)
                    _arguments $common '--out[Report file]:file:_files'
                    ;;
                label)
                    _arguments $common '--answers[Recorded answers file]:file:_files'
                    ;;
                init)
                    _arguments $common
                    ;;
                completion)
                    _arguments '1:shell:(%s)'
                    ;;
            esac
            ;;
    esac
}

_solbench "$@"
`, strings.Join(cmdList, "\n"), strings.Join(Shells, " "))
}

// GenerateFishCompletion generates fish completion script
func GenerateFishCompletion() string {
	var completions []string

	for _, cmd := range commands {
		completions = append(completions, fmt.Sprintf("complete -c solbench -f -n '__fish_use_subcommand' -a '%s' -d '%s'", cmd, getCommandDescription(cmd)))
	}

	const analyzing = "metrics report label watch init"
	completions = append(completions, "# common flags")
	completions = append(completions, "complete -c solbench -n '__fish_seen_subcommand_from "+analyzing+"' -l root -d 'Directory to scan' -r -a '(__fish_complete_directories)'")
	completions = append(completions, "complete -c solbench -n '__fish_seen_subcommand_from "+analyzing+"' -l config -d 'Configuration file' -r")
	completions = append(completions, "complete -c solbench -n '__fish_seen_subcommand_from "+analyzing+"' -l json -d 'JSON output'")
	completions = append(completions, "complete -c solbench -n '__fish_seen_subcommand_from "+analyzing+"' -l quiet -s q -d 'Results only'")
	completions = append(completions, "complete -c solbench -n '__fish_seen_subcommand_from "+analyzing+"' -l yes -s y -d 'Answer confirmations with yes'")
	completions = append(completions, "complete -c solbench -n '__fish_seen_subcommand_from "+analyzing+"' -l verbose -s v -d 'Log analyzer commands'")

	completions = append(completions, "# command flags")
	completions = append(completions, "complete -c solbench -n '__fish_seen_subcommand_from metrics watch' -l metrics-textfile -d 'Write Prometheus metrics' -r")
	completions = append(completions, "complete -c solbench -n '__fish_seen_subcommand_from report' -l out -d 'Report file' -r")
	completions = append(completions, "complete -c solbench -n '__fish_seen_subcommand_from label' -l answers -d 'Recorded answers file' -r")

	completions = append(completions, "# completion command shells")
	completions = append(completions, "complete -c solbench -n '__fish_seen_subcommand_from completion' -f -a '"+strings.Join(Shells, " ")+"'")

	return strings.Join(completions, "\n")
}

// getCommandDescription returns a short description for a command
func getCommandDescription(cmd string) string {
	descriptions := map[string]string{
		"metrics":    "Run the Node analyzer and print statistics",
		"report":     "Write every analyzer output to a report file",
		"label":      "Run slither and label each result",
		"watch":      "Re-run metrics when contracts change",
		"init":       "Write a default solbench.yml",
		"completion": "Generate shell completion script",
		"help":       "Show help information",
	}

	if desc, ok := descriptions[cmd]; ok {
		return desc
	}
	return ""
}
