// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/palindromes/internal/meta"
)

const bashCompletionScript = `# bash completion for palindromes
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_palindromes()
{
    local cur prev
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local common="--wordlist -w --output -o --color -c --no-color --cache --no-cache --cache-dir --compression"

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --wordlist|-w)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
        --cache-dir)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
    esac

    if [[ ${COMP_CWORD} -eq 1 && "$cur" != -* ]]; then
        COMPREPLY=( $(compgen -W "cache completion" -- "$cur") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
        cache)
            if [[ ${COMP_CWORD} -eq 2 && "$cur" != -* ]]; then
                COMPREPLY=( $(compgen -W "path info warm" -- "$cur") )
                return 0
            fi
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "$common --list -l --help --version" -- "$cur") )
    return 0
}

complete -F _palindromes palindromes
`

const zshCompletionScript = `#compdef palindromes

_palindromes() {
  local -a cmds
  cmds=(
    'cache:inspect or rebuild the word list cache'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-w --wordlist)'{-w,--wordlist}'[word list file]:file:_files'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-c --color --no-color)'{-c,--color}'[enable colored text]'
  '--no-color[disable colored text]'
  '(--cache --no-cache)--cache[use the word list cache]'
  '(--cache --no-cache)--no-cache[bypass the word list cache]'
  '--cache-dir[cache root directory]:dir:_directories'
  '--compression[zstd level 1-22]:level'
  )

  if (( CURRENT == 2 )) && [[ $words[2] != -* ]]; then
    _describe -t commands 'palindromes commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    cache)
      _arguments -C \
        $common \
        '1: :((path\:"print entry path" info\:"describe entry" warm\:"rebuild entry"))'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '(-l --list)'{-l,--list}'[list palindromes]'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _palindromes palindromes
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(w, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(w, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: palindromes completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "palindromes completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
