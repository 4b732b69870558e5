package cmd

import (
	"fmt"
	"io"
	"os"
)

type CompletionCmd struct {
	Shell string `arg:"" help:"Shell type: bash, zsh, or fish"`
}

func (c *CompletionCmd) Run() error {
	return c.write(os.Stdout)
}

// write prints the completion script for the selected shell to w
func (c *CompletionCmd) write(w io.Writer) error {
	var script string
	switch c.Shell {
	case "bash":
		script = bashCompletion
	case "zsh":
		script = zshCompletion
	case "fish":
		script = fishCompletion
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", c.Shell)
	}

	_, err := io.WriteString(w, script)
	return err
}

const bashCompletion = `# bash completion for mcnpgeom

_mcnpgeom_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main commands
    if [[ ${COMP_CWORD} -eq 1 ]]; then
        opts="inspect transform place version completion"
        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        return 0
    fi

    case ${COMP_WORDS[1]} in
        inspect)
            COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
            ;;
        place)
            case "${prev}" in
                -o|--output)
                    COMPREPLY=( $(compgen -f -- ${cur}) )
                    ;;
                *)
                    if [[ ${cur} == -* ]]; then
                        COMPREPLY=( $(compgen -W "-o --output --color -h --help" -- ${cur}) )
                    else
                        COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
                    fi
                    ;;
            esac
            ;;
        transform)
            COMPREPLY=( $(compgen -W "-c --card -d --degrees -h --help" -- ${cur}) )
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            ;;
    esac
    return 0
}

complete -F _mcnpgeom_completions mcnpgeom
`

const zshCompletion = `#compdef mcnpgeom

_mcnpgeom() {
    local -a commands
    commands=(
        'inspect:Inspect a geometry deck and show its lattices'
        'transform:Normalize a single transformation record'
        'place:Write node placements of a deck as YAML'
        'version:Show version information'
        'completion:Generate shell completion script'
    )

    _arguments -C \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                inspect)
                    _arguments '*:deck file:_files -g "*.{yaml,yml}"'
                    ;;
                place)
                    _arguments \
                        '(-o --output)'{-o,--output}'[Output file]:output file:_files' \
                        '--color[Syntax highlight the output]' \
                        '*:deck file:_files -g "*.{yaml,yml}"'
                    ;;
                transform)
                    _arguments \
                        '(-c --card)'{-c,--card}'[Full record]:record:' \
                        '(-d --degrees)'{-d,--degrees}'[Rotation entries are angles in degrees]'
                    ;;
                completion)
                    _values 'shell' bash zsh fish
                    ;;
            esac
            ;;
    esac
}

_mcnpgeom
`

const fishCompletion = `# fish completion for mcnpgeom

# Main commands
complete -c mcnpgeom -f -n "__fish_use_subcommand" -a "inspect" -d "Inspect a geometry deck and show its lattices"
complete -c mcnpgeom -f -n "__fish_use_subcommand" -a "transform" -d "Normalize a single transformation record"
complete -c mcnpgeom -f -n "__fish_use_subcommand" -a "place" -d "Write node placements of a deck as YAML"
complete -c mcnpgeom -f -n "__fish_use_subcommand" -a "version" -d "Show version information"
complete -c mcnpgeom -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"

# inspect and place take a deck
complete -c mcnpgeom -n "__fish_seen_subcommand_from inspect place" -a "(__fish_complete_suffix .yaml)" -d "Deck file"
complete -c mcnpgeom -f -n "__fish_seen_subcommand_from place" -s o -l output -d "Output file" -r
complete -c mcnpgeom -f -n "__fish_seen_subcommand_from place" -l color -d "Syntax highlight the output"

# transform command options
complete -c mcnpgeom -f -n "__fish_seen_subcommand_from transform" -s c -l card -d "Full record" -r
complete -c mcnpgeom -f -n "__fish_seen_subcommand_from transform" -s d -l degrees -d "Rotation entries are angles in degrees"

# completion command options
complete -c mcnpgeom -f -n "__fish_seen_subcommand_from completion" -a "bash zsh fish"
`

func (c *CompletionCmd) Help() string {
	return `
Generate shell completion scripts for mcnpgeom.

Examples:
  # Bash
  mcnpgeom completion bash > ~/.local/share/bash-completion/completions/mcnpgeom

  # Zsh
  mcnpgeom completion zsh > ~/.zsh/completion/_mcnpgeom

  # Fish
  mcnpgeom completion fish > ~/.config/fish/completions/mcnpgeom.fish
`
}
