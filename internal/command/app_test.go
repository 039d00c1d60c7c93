// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// setupApp writes a fixture word list, points the cache at a temp dir and
// keeps any real config file out of the way.
func setupApp(t *testing.T) (wordlist string) {
	t.Helper()

	t.Setenv("PALINDROMES_CFG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("PALINDROMES_CACHE_DIR", t.TempDir())
	for _, k := range []string{"PALINDROMES_CACHE", "PALINDROMES_OUTPUT", "PALINDROMES_WORDLIST"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	wordlist = filepath.Join(t.TempDir(), "words.txt")
	data := "Wow\nnoon\na\nxx\nbanana\nlevel\nracecar.\naa.\n"
	require.NoError(t, os.WriteFile(wordlist, []byte(data), 0o600))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(wordlist, past, past))
	return wordlist
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	ctx := context.Background()
	args = append([]string{"palindromes"}, args...)
	app, err := InitApp(ctx, args)
	require.NoError(t, err)

	var buf bytes.Buffer
	app.Writer = &buf
	err = app.Run(ctx, args)
	return buf.String(), err
}

func TestReport_JSON(t *testing.T) {
	wl := setupApp(t)

	out, err := runApp(t, "--wordlist", wl, "--output", "json", "--list")
	require.NoError(t, err)
	assert.EqualValues(t, 5, gjson.Get(out, "words").Int())
	assert.EqualValues(t, 4, gjson.Get(out, "palindrome_count").Int())
	var listed []string
	for _, p := range gjson.Get(out, "palindromes").Array() {
		listed = append(listed, p.String())
	}
	assert.Equal(t, []string{"level", "noon", "racecar", "wow"}, listed)
	assert.False(t, gjson.Get(out, "cached").Bool())

	out, err = runApp(t, "--wordlist", wl, "--output", "json")
	require.NoError(t, err)
	assert.True(t, gjson.Get(out, "cached").Bool(), "second run should be served from the cache")
	assert.False(t, gjson.Get(out, "palindromes").Exists())
}

func TestReport_NoCache(t *testing.T) {
	wl := setupApp(t)

	for i := 0; i < 2; i++ {
		out, err := runApp(t, "--wordlist", wl, "--output", "json", "--no-cache")
		require.NoError(t, err)
		assert.False(t, gjson.Get(out, "cached").Bool())
	}

	out, err := runApp(t, "--wordlist", wl, "cache", "info", "--output", "json")
	require.NoError(t, err)
	assert.False(t, gjson.Get(out, "exists").Bool())
}

func TestReport_Text(t *testing.T) {
	wl := setupApp(t)

	out, err := runApp(t, "--wordlist", wl, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Wordlist count")
	assert.Contains(t, out, "Palindrome count")
}

func TestReport_MissingWordlist(t *testing.T) {
	setupApp(t)

	_, err := runApp(t, "--wordlist", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestReport_BadOutput(t *testing.T) {
	wl := setupApp(t)

	_, err := runApp(t, "--wordlist", wl, "--output", "xml")
	assert.Error(t, err)
}

func TestCache_PathInfoWarm(t *testing.T) {
	wl := setupApp(t)
	cacheDir := os.Getenv("PALINDROMES_CACHE_DIR")

	out, err := runApp(t, "--wordlist", wl, "cache", "path")
	require.NoError(t, err)
	entry := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(cacheDir, "wordlist"), filepath.Dir(entry))

	out, err = runApp(t, "--wordlist", wl, "cache", "warm", "--output", "json")
	require.NoError(t, err)
	assert.True(t, gjson.Get(out, "exists").Bool())
	assert.True(t, gjson.Get(out, "fresh").Bool())
	assert.EqualValues(t, 5, gjson.Get(out, "words").Int())
	assert.Equal(t, entry, gjson.Get(out, "path").String())

	_, err = os.Stat(entry)
	assert.NoError(t, err)
}

func TestCache_WarmDisabled(t *testing.T) {
	wl := setupApp(t)

	_, err := runApp(t, "--wordlist", wl, "--no-cache", "cache", "warm")
	assert.Error(t, err)
}

func TestCompletion(t *testing.T) {
	setupApp(t)

	out, err := runApp(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -F _palindromes palindromes")

	out, err = runApp(t, "completion", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "#compdef palindromes")
}
