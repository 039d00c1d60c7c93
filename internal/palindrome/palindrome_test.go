// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package palindrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"", false},
		{"a", false},
		{"aa", true},
		{"ab", false},
		{"wow", true},
		{"noon", true},
		{"level", true},
		{"banana", false},
		{"racecar", true},
		{"été", true},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPalindrome(tt.word))
		})
	}
}

func TestFind(t *testing.T) {
	words := []string{"wow", "noon", "banana", "level", "noon", "a"}
	assert.Equal(t, []string{"level", "noon", "wow"}, Find(words))
}

func TestFind_None(t *testing.T) {
	assert.Empty(t, Find([]string{"banana", "apple"}))
	assert.NotNil(t, Find(nil))
}
