// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordfilter

import (
	"regexp"
	"sort"
	"strings"
)

// MinLength is the shortest word Accept will let through.
const MinLength = 2

var (
	lettersRe = regexp.MustCompile(`^[A-Za-z]+$`)

	// One or more letters followed by a run of non-letter runes. The suffix
	// is discarded and the prefix is judged on its own.
	suffixedRe = regexp.MustCompile(`^([A-Za-z]+)\P{L}+$`)

	lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Accept applies the acceptance predicate to a single raw line. It returns
// the normalized (trimmed, lowercased, suffix-stripped) word and whether the
// line qualifies.
//
// A line made only of letters that fails the length or repeated-character
// check is rejected outright. Suffix stripping only rescues lines that fail
// because of trailing non-letter content.
func Accept(line string) (string, bool) {
	// Match before lowercasing: some non-ASCII runes (U+212A KELVIN SIGN)
	// lowercase to ASCII letters.
	candidate := strings.TrimSpace(line)
	if candidate == "" {
		return "", false
	}

	if lettersRe.MatchString(candidate) {
		word := strings.ToLower(candidate)
		return word, plausible(word)
	}

	m := suffixedRe.FindStringSubmatch(candidate)
	if m == nil {
		return "", false
	}
	word := strings.ToLower(m[1])
	return word, plausible(word)
}

// Filter runs Accept over lines and returns the accepted words, unique and
// sorted.
func Filter(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if word, ok := Accept(line); ok {
			seen[word] = struct{}{}
		}
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// SplitLines breaks text into lines, honoring \r\n, \r and \n endings.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(lineBreaks.Replace(text), "\n")
}

// plausible reports whether an all-letter word passes the length and
// repeated-character checks.
func plausible(word string) bool {
	if len(word) < MinLength {
		return false
	}
	return strings.Count(word, word[:1]) != len(word)
}
