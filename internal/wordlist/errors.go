// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

import (
	"errors"
	"fmt"
)

var (
	// ErrStale means the cache entry is not newer than the source file.
	ErrStale = errors.New("cache entry is older than source")
	// ErrCorrupt means the cache entry could not be decompressed or decoded.
	ErrCorrupt = errors.New("cache entry is corrupt")
	// ErrInvalidLevel is returned by New for an out of range compression level.
	ErrInvalidLevel = errors.New("compression level must be between 1 and 22")
)

// SourceReadError reports that the word list itself could not be read. It is
// never recovered from.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("failed to read word list %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

// CacheWriteError reports that a freshly computed word set could not be
// persisted. The words are still handed to the caller.
type CacheWriteError struct {
	Path string
	Err  error
}

func (e *CacheWriteError) Error() string {
	return fmt.Sprintf("failed to write cache entry %s: %v", e.Path, e.Err)
}

func (e *CacheWriteError) Unwrap() error { return e.Err }
