// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// docgen turns docs/commands/<page>.md into
//   - docs/man/share/man1/<page>.1 (md2man over the whole page)
//   - docs/tldr/<page>.md (summary line plus the "Quick examples" block)
//
// A page name maps to a command line by replacing '-' with ' ', so
// palindromes-cache.md documents `palindromes cache`.

type paths struct {
	commands string
	man      string
	tldr     string
}

func main() {
	var (
		root          string
		onlyIfChanged bool
	)

	flag.StringVar(&root, "root", ".", "repo root")
	flag.BoolVar(&onlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	p := paths{
		commands: filepath.Join(root, "docs", "commands"),
		man:      filepath.Join(root, "docs", "man", "share", "man1"),
		tldr:     filepath.Join(root, "docs", "tldr"),
	}

	n, err := generate(p, onlyIfChanged)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("generated docs for %d pages\n", n)
}

func generate(p paths, onlyIfChanged bool) (int, error) {
	for _, dir := range []string{p.man, p.tldr} {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
			return 0, fmt.Errorf("creating output dir %s: %w", dir, err)
		}
	}

	entries, err := os.ReadDir(p.commands)
	if err != nil {
		return 0, fmt.Errorf("reading commands dir %s: %w", p.commands, err)
	}

	var n int
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		page := strings.TrimSuffix(e.Name(), ".md")

		raw, err := os.ReadFile(filepath.Join(p.commands, e.Name()))
		if err != nil {
			return n, fmt.Errorf("reading %s: %w", e.Name(), err)
		}

		manPath := filepath.Join(p.man, page+".1")
		if err := writeFileIfChanged(manPath, md2man.Render(raw), onlyIfChanged); err != nil {
			return n, fmt.Errorf("writing man page for %s: %w", page, err)
		}

		tldrPath := filepath.Join(p.tldr, page+".md")
		if err := writeFileIfChanged(tldrPath, []byte(tldrPage(page, string(raw))), onlyIfChanged); err != nil {
			return n, fmt.Errorf("writing tldr page for %s: %w", page, err)
		}
		n++
	}

	if n == 0 {
		return 0, fmt.Errorf("no command markdown found under %s", p.commands)
	}
	return n, nil
}

func writeFileIfChanged(path string, content []byte, onlyIfChanged bool) error {
	if onlyIfChanged {
		old, err := os.ReadFile(path)
		switch {
		case err == nil && bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(content)):
			return nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}
	return os.WriteFile(path, content, 0o644) //nolint:gosec,mnd
}

var (
	h1Re      = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	sectionRe = regexp.MustCompile(`(?mi)^#{1,6}\s*short description\s*$`)
	quickRe   = regexp.MustCompile("(?is)#{1,6}\\s*quick examples.*?```[a-z]*\\n(.*?)```")
)

type example struct {
	Desc string
	Cmd  string
}

// summary returns the first paragraph under a "Short description" heading,
// falling back to the H1 title.
func summary(md string) string {
	title := ""
	if m := h1Re.FindStringSubmatch(md); m != nil {
		title = strings.TrimSpace(m[1])
	}

	loc := sectionRe.FindStringIndex(md)
	if loc == nil {
		return title
	}

	var para []string
	for _, ln := range strings.Split(md[loc[1]:], "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(ln, "#") {
			break
		}
		para = append(para, ln)
	}
	if len(para) == 0 {
		return title
	}
	return strings.Join(para, " ")
}

// quickExamples pairs each "# description" comment in the Quick examples
// code block with the command line that follows it.
func quickExamples(md string) []example {
	m := quickRe.FindStringSubmatch(md)
	if m == nil {
		return nil
	}

	var (
		exs  []example
		desc string
	)
	for _, ln := range strings.Split(m[1], "\n") {
		ln = strings.TrimSpace(ln)
		switch {
		case ln == "":
		case strings.HasPrefix(ln, "#"):
			desc = strings.TrimSpace(strings.TrimLeft(ln, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, example{Desc: desc, Cmd: strings.Join(strings.Fields(ln), " ")})
			desc = ""
		}
	}
	return exs
}

func tldrPage(page, md string) string {
	cmdline := strings.ReplaceAll(page, "-", " ")

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cmdline)
	if s := summary(md); s != "" {
		fmt.Fprintf(&b, "> %s\n", s)
	}
	b.WriteString("> More information: https://github.com/staranto/palindromes.\n")

	exs := quickExamples(md)
	if len(exs) == 0 {
		exs = []example{{Desc: "Show help for the command", Cmd: cmdline + " --help"}}
	}
	for _, ex := range exs {
		fmt.Fprintf(&b, "\n- %s:\n\n`%s`\n", ex.Desc, ex.Cmd)
	}
	return b.String()
}
