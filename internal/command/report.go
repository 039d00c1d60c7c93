// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/palindromes/internal/output"
	"github.com/staranto/palindromes/internal/palindrome"
)

// ReportCommandAction loads the word list through the cache, counts its
// words and palindromes, and emits the report per the common flags.
func ReportCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	c, err := NewCache(cmd)
	if err != nil {
		return err
	}

	path := cmd.String("wordlist")
	res, err := c.Fetch(path)
	if err != nil {
		return err
	}
	log.WithField("reason", res.Reason.String()).Debugf("loaded %d words from %s", len(res.Words), path)

	found := palindrome.Find(res.Words)
	report := output.Report{
		Wordlist:        path,
		Words:           len(res.Words),
		PalindromeCount: len(found),
		Cached:          res.Hit(),
	}
	if cmd.Bool("list") {
		report.Palindromes = found
	}

	return output.Write(cmd.Root().Writer, report, cmd.String("output"), cmd.Bool("color"))
}
