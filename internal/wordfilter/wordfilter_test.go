// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package wordfilter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccept(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		{name: "plain word", line: "noon", want: "noon", wantOK: true},
		{name: "mixed case", line: "Wow", want: "wow", wantOK: true},
		{name: "surrounding whitespace", line: "  banana\t", want: "banana", wantOK: true},
		{name: "carriage return", line: "level\r", want: "level", wantOK: true},
		{name: "single letter", line: "a", wantOK: false},
		{name: "empty", line: "", wantOK: false},
		{name: "whitespace only", line: "   ", wantOK: false},
		{name: "repeated letter", line: "xx", wantOK: false},
		{name: "long repeated letter", line: "xxxx", wantOK: false},
		{name: "repeated letter mixed case", line: "Aa", wantOK: false},
		{name: "trailing period", line: "level.", want: "level", wantOK: true},
		{name: "trailing punctuation run", line: "Hello!?!", want: "hello", wantOK: true},
		{name: "trailing digits", line: "abc123", want: "abc", wantOK: true},
		{name: "stripped prefix too short", line: "a.", wantOK: false},
		{name: "stripped prefix repeated", line: "aa.", wantOK: false},
		{name: "apostrophe then letters", line: "don't", wantOK: false},
		{name: "dangling apostrophe", line: "dons'", want: "dons", wantOK: true},
		{name: "leading punctuation", line: ".level", wantOK: false},
		{name: "inner space", line: "ice cream", wantOK: false},
		{name: "non ascii letter", line: "café", wantOK: false},
		{name: "digits only", line: "1234", wantOK: false},
		{name: "kelvin sign", line: "\u212Aayak", wantOK: false},
		{name: "kelvin sign with suffix", line: "\u212Aa.", wantOK: false},
		{name: "uppercase with suffix", line: "KAYAK!", want: "kayak", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Accept(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFilter_Scenario(t *testing.T) {
	lines := []string{"Wow", "noon", "a", "xx", "banana", "level"}
	assert.Equal(t, []string{"banana", "level", "noon", "wow"}, Filter(lines))
}

func TestFilter_CollapsesDuplicates(t *testing.T) {
	lines := []string{"Level", "level", "LEVEL.", " level "}
	assert.Equal(t, []string{"level"}, Filter(lines))
}

func TestFilter_Empty(t *testing.T) {
	assert.Empty(t, Filter(nil))
	assert.Empty(t, Filter([]string{"", "a", "zz"}))
}

func TestFilter_Properties(t *testing.T) {
	lines := []string{
		"A", "ab", "AB", "aaa", "Zz", "zZz.", "Hello", "hello,", "x1", "xy1",
		"Mississippi", "bb!", "q", "éé", "ok...", "OK", "  tab\t", "\r", "--",
	}

	words := Filter(lines)
	assert.NotEmpty(t, words)
	for _, w := range words {
		assert.Equal(t, strings.ToLower(w), w, "word %q should be lowercase", w)
		assert.GreaterOrEqual(t, len(w), MinLength, "word %q too short", w)
		assert.NotEqual(t, len(w), strings.Count(w, w[:1]), "word %q is a single repeated character", w)
	}
}

func TestFilter_Deterministic(t *testing.T) {
	lines := []string{"zebra", "apple", "mango", "apple."}
	assert.Equal(t, Filter(lines), Filter(lines))
	assert.Equal(t, []string{"apple", "mango", "zebra"}, Filter(lines))
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "unix", text: "a\nb\n", want: []string{"a", "b", ""}},
		{name: "windows", text: "a\r\nb", want: []string{"a", "b"}},
		{name: "classic mac", text: "a\rb\r", want: []string{"a", "b", ""}},
		{name: "mixed", text: "a\r\nb\rc\nd", want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}
