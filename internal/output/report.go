// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v2"

	"github.com/staranto/palindromes/internal/cacheutil"
	"github.com/staranto/palindromes/internal/config"
)

// Formats lists the values accepted by --output.
var Formats = []string{"text", "json", "yaml"}

// Report is the result of scanning a word list for palindromes.
type Report struct {
	Wordlist        string   `json:"wordlist" yaml:"wordlist"`
	Words           int      `json:"words" yaml:"words"`
	PalindromeCount int      `json:"palindrome_count" yaml:"palindrome_count"`
	Palindromes     []string `json:"palindromes,omitempty" yaml:"palindromes,omitempty"`
	Cached          bool     `json:"cached" yaml:"cached"`
}

// Write renders r to w in the given format. Palindromes are only listed when
// r.Palindromes is populated.
func Write(w io.Writer, r Report, format string, color bool) error {
	switch format {
	case "json":
		return writeJSON(w, r)
	case "yaml":
		return writeYAML(w, r)
	case "text", "":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	rows := [][]string{
		{"Wordlist count", humanize.Comma(int64(r.Words))},
		{"Palindrome count", humanize.Comma(int64(r.PalindromeCount))},
	}
	fmt.Fprintln(w, keyValueTable(rows, color))

	if len(r.Palindromes) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Join(r.Palindromes, "\n"))
	}
	return nil
}

// WriteEntryInfo renders a cache entry description to w.
func WriteEntryInfo(w io.Writer, info cacheutil.EntryInfo, format string, color bool) error {
	switch format {
	case "json":
		return writeJSON(w, info)
	case "yaml":
		return writeYAML(w, info)
	case "text", "":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	rows := [][]string{
		{"Source", info.Source},
		{"Key", info.Key},
		{"Path", info.Path},
		{"Exists", fmt.Sprint(info.Exists)},
	}
	if info.Exists {
		words := "corrupt"
		if info.Words >= 0 {
			words = humanize.Comma(info.Words)
		}
		rows = append(rows,
			[]string{"Fresh", fmt.Sprint(info.Fresh)},
			[]string{"Size", humanize.Bytes(uint64(info.Size))}, //nolint:gosec
			[]string{"Modified", humanize.Time(info.Modified)},
			[]string{"Words", words},
		)
	}
	fmt.Fprintln(w, keyValueTable(rows, color))
	return nil
}

func keyValueTable(rows [][]string, color bool) *table.Table {
	var (
		keyStyle   = lipgloss.NewStyle().Align(lipgloss.Left)
		valueStyle = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	)

	if color {
		keyColor, valueColor := getColors("colors")
		keyStyle = keyStyle.Foreground(lipgloss.Color(keyColor))
		valueStyle = valueStyle.Foreground(lipgloss.Color(valueColor))
	}

	pad, _ := config.GetInt("padding", 2) //nolint:mnd

	return table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return valueStyle.PaddingLeft(pad)
		}).
		Rows(rows...)
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}
	_, err = w.Write(b)
	return err
}

func getColors(key string) (title string, value string) {
	title, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	value, _ = config.GetString(fmt.Sprintf("%s.value", key), "#00c8f0")
	return
}
