// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package palindrome picks palindromes out of a word set.
package palindrome

import "sort"

// IsPalindrome returns true if word is longer than one rune and reads the
// same forwards and backwards.
func IsPalindrome(word string) bool {
	r := []rune(word)
	if len(r) < 2 { //nolint:mnd
		return false
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		if r[i] != r[j] {
			return false
		}
	}
	return true
}

// Find returns the palindromes in words, unique and sorted.
func Find(words []string) []string {
	seen := map[string]struct{}{}
	found := []string{}
	for _, w := range words {
		if _, dup := seen[w]; dup || !IsPalindrome(w) {
			continue
		}
		seen[w] = struct{}{}
		found = append(found, w)
	}
	sort.Strings(found)
	return found
}
