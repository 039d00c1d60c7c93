// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"

	"github.com/staranto/palindromes/internal/cacheutil"
	"github.com/staranto/palindromes/internal/wordfilter"
)

const (
	// Namespace is mixed into every cache key so unrelated users of a shared
	// cache directory cannot collide with word list entries.
	Namespace = "palindromes/wordlist/v1"

	subdir    = "wordlist"
	extension = ".json.zst"
)

// Cache memoizes wordfilter.Filter applied to a file, across process
// invocations.
type Cache struct {
	root    string
	enabled bool
	codec   codec
	logger  log.Interface

	readSource func(string) ([]byte, error)
}

// Result is what Fetch hands back. Reason tells how the words were obtained;
// StoreErr is set when the words were recomputed but could not be persisted.
type Result struct {
	Words    []string
	Reason   Reason
	Miss     error
	StoreErr error
}

// Hit reports whether the words came from the cache.
func (r Result) Hit() bool { return r.Reason == Hit }

// New builds a Cache. Without options it uses cacheutil.Dir for its root,
// honors PALINDROMES_CACHE and compresses at DefaultLevel.
func New(opts ...Option) (*Cache, error) {
	c := &Cache{
		enabled:    cacheutil.Enabled(),
		codec:      codec{level: DefaultLevel},
		logger:     log.Log,
		readSource: os.ReadFile,
	}
	for _, o := range opts {
		o.apply(c)
	}

	if c.codec.level < 1 || c.codec.level > 22 { //nolint:mnd
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevel, c.codec.level)
	}
	if c.root == "" {
		c.root, _ = cacheutil.Dir("")
	}
	return c, nil
}

// Root returns the cache root directory.
func (c *Cache) Root() string { return c.root }

// Enabled reports whether the on-disk cache is consulted and written.
func (c *Cache) Enabled() bool { return c.enabled }

// Key returns the cache key for a source path. Relative paths are made
// absolute first so the key does not depend on the working directory.
func (c *Cache) Key(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return cacheutil.EncodeKey(Namespace, path)
}

// EntryPath returns where the cache entry for a source path lives.
func (c *Cache) EntryPath(path string) string {
	return cacheutil.EntryPath(c.root, subdir, c.Key(path), extension)
}

// GetWords returns the filtered words of the file at path, from the cache
// when it is fresh and intact, recomputing and rewriting it otherwise.
func (c *Cache) GetWords(path string) ([]string, error) {
	r, err := c.Fetch(path)
	if err != nil {
		return nil, err
	}
	return r.Words, nil
}

// Fetch is GetWords that also reports how the words were obtained.
func (c *Cache) Fetch(path string) (Result, error) {
	src, err := c.statSource(path)
	if err != nil {
		return Result{}, err
	}

	entry := c.EntryPath(path)
	l := c.lookup(entry, src.ModTime())
	if l.Hit() {
		c.logger.Debugf("cache hit for %s (%s)", path, entry)
		return Result{Words: l.Words, Reason: Hit}, nil
	}

	c.logger.WithField("reason", l.Reason.String()).Debugf("cache miss for %s", path)
	return c.recompute(path, entry, l)
}

// Refresh recomputes the words for path and rewrites the cache entry
// regardless of its current state.
func (c *Cache) Refresh(path string) (Result, error) {
	if _, err := c.statSource(path); err != nil {
		return Result{}, err
	}
	return c.recompute(path, c.EntryPath(path), Lookup{Reason: MissForced})
}

func (c *Cache) recompute(path, entry string, l Lookup) (Result, error) {
	words, err := c.compute(path)
	if err != nil {
		return Result{}, err
	}

	r := Result{Words: words, Reason: l.Reason, Miss: l.Err}
	if !c.enabled {
		return r, nil
	}

	if err := c.store(entry, words); err != nil {
		r.StoreErr = err
		c.logger.WithError(err).Warnf("using uncached word list for %s", path)
	}
	return r, nil
}

// lookup tries the fast path. It never returns an error to the caller;
// every failure is folded into a miss reason.
func (c *Cache) lookup(entry string, sourceMod time.Time) Lookup {
	if !c.enabled {
		return Lookup{Reason: MissDisabled}
	}

	info, err := os.Stat(entry)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Lookup{Reason: MissAbsent, Err: err}
	case err != nil:
		return Lookup{Reason: MissUnreadable, Err: err}
	case !info.ModTime().After(sourceMod):
		return Lookup{Reason: MissStale, Err: ErrStale}
	}

	data, err := os.ReadFile(entry)
	if err != nil {
		return Lookup{Reason: MissUnreadable, Err: err}
	}

	words, err := c.codec.decode(data)
	if err != nil {
		return Lookup{Reason: MissCorrupt, Err: fmt.Errorf("%w: %v", ErrCorrupt, err)}
	}
	return Lookup{Reason: Hit, Words: words}
}

func (c *Cache) statSource(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &SourceReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &SourceReadError{Path: path, Err: errors.New("is a directory")}
	}
	return info, nil
}

func (c *Cache) compute(path string) ([]string, error) {
	data, err := c.readSource(path)
	if err != nil {
		return nil, &SourceReadError{Path: path, Err: err}
	}
	words := wordfilter.Filter(wordfilter.SplitLines(string(data)))
	c.logger.Debugf("filtered %s: %d words", path, len(words))
	return words, nil
}

func (c *Cache) store(entry string, words []string) error {
	data, err := c.codec.encode(words)
	if err != nil {
		return &CacheWriteError{Path: entry, Err: err}
	}
	if err := cacheutil.WriteAtomic(entry, data, 0o600); err != nil { //nolint:mnd
		return &CacheWriteError{Path: entry, Err: err}
	}
	return nil
}
