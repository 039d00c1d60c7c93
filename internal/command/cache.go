// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/palindromes/internal/meta"
	"github.com/staranto/palindromes/internal/output"
)

// cachePathAction prints where the cache entry for --wordlist lives.
func cachePathAction(ctx context.Context, cmd *cli.Command) error {
	c, err := NewCache(cmd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, c.EntryPath(cmd.String("wordlist")))
	return err
}

// cacheInfoAction describes the cache entry for --wordlist without modifying
// it.
func cacheInfoAction(ctx context.Context, cmd *cli.Command) error {
	c, err := NewCache(cmd)
	if err != nil {
		return err
	}
	info, err := c.Inspect(cmd.String("wordlist"))
	if err != nil {
		return err
	}
	return output.WriteEntryInfo(cmd.Root().Writer, info, cmd.String("output"), cmd.Bool("color"))
}

// cacheWarmAction recomputes the words for --wordlist and rewrites its cache
// entry. Unlike the report, a write failure here is the whole point of the
// command and is returned.
func cacheWarmAction(ctx context.Context, cmd *cli.Command) error {
	c, err := NewCache(cmd)
	if err != nil {
		return err
	}
	if !c.Enabled() {
		return fmt.Errorf("cache is disabled")
	}

	path := cmd.String("wordlist")
	res, err := c.Refresh(path)
	if err != nil {
		return err
	}
	if res.StoreErr != nil {
		return res.StoreErr
	}
	log.Infof("cached %d words from %s", len(res.Words), path)

	info, err := c.Inspect(path)
	if err != nil {
		return err
	}
	return output.WriteEntryInfo(cmd.Root().Writer, info, cmd.String("output"), cmd.Bool("color"))
}

// CacheCommandBuilder constructs the "cache" command and its subcommands.
func CacheCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "inspect or rebuild the word list cache",
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{
			{
				Name:   "path",
				Usage:  "print the cache entry path for the word list",
				Action: cachePathAction,
			},
			{
				Name:   "info",
				Usage:  "describe the cache entry for the word list",
				Action: cacheInfoAction,
			},
			{
				Name:   "warm",
				Usage:  "rebuild the cache entry for the word list",
				Action: cacheWarmAction,
			},
		},
	}
}
