// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/palindromes/internal/wordlist"
)

// DefaultWordlist is the platform dictionary used when --wordlist is not
// given.
const DefaultWordlist = "/usr/share/dict/words"

// NewGlobalFlags returns the flags shared by every command. cfgSource is the
// config file path; values there are consulted after flags and env vars.
func NewGlobalFlags(cfgSource string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "wordlist",
			Aliases: []string{"w"},
			Usage:   "path to plaintext file with one word per line",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PALINDROMES_WORDLIST"),
				yaml.YAML("wordlist", altsrc.StringSourcer(cfgSource)),
			),
			Value: DefaultWordlist,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, NotEmptyValidator)
			},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PALINDROMES_OUTPUT"),
				yaml.YAML("output", altsrc.StringSourcer(cfgSource)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("color", altsrc.StringSourcer(cfgSource)),
			),
			Value: term.IsTerminal(int(os.Stdout.Fd())), //nolint:gosec
		},
		&cli.BoolWithInverseFlag{
			Name:  "cache",
			Usage: "read and write the on-disk word list cache",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PALINDROMES_CACHE"),
				yaml.YAML("cache.enabled", altsrc.StringSourcer(cfgSource)),
			),
			Value: true,
		},
		&cli.StringFlag{
			Name:  "cache-dir",
			Usage: "cache root directory. Overrides PALINDROMES_CACHE_DIR",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("cache.dir", altsrc.StringSourcer(cfgSource)),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.IntFlag{
			Name:  "compression",
			Usage: "zstd compression level for cache entries (1-22)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("cache.level", altsrc.StringSourcer(cfgSource)),
			),
			Value: wordlist.DefaultLevel,
			Validator: func(value int) error {
				return FlagValidators(value, CompressionValidator)
			},
		},
	}

	return
}
