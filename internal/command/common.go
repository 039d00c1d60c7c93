// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/staranto/palindromes/internal/cacheutil"
	"github.com/staranto/palindromes/internal/meta"
	"github.com/staranto/palindromes/internal/wordlist"
)

// GetMeta returns the meta.Meta stored in the command's Metadata, looking up
// through parent commands. If missing or of an unexpected type, it returns
// the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	for _, c := range cmd.Lineage() {
		if c.Metadata == nil {
			continue
		}
		if m, ok := c.Metadata["meta"].(meta.Meta); ok {
			return m
		}
	}
	return meta.Meta{}
}

// NewCache builds the word list cache from the cache related flags.
func NewCache(cmd *cli.Command) (*wordlist.Cache, error) {
	root, _ := cacheutil.Dir(cmd.String("cache-dir"))
	return wordlist.New(
		wordlist.WithRoot(root),
		wordlist.WithEnabled(cmd.Bool("cache")),
		wordlist.WithLevel(cmd.Int("compression")),
	)
}
