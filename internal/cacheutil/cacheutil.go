// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/cespare/xxhash/v2"
)

// EntryInfo describes a cached artifact on disk.
// Key is the hashed identity; Source is the clear-text path it was derived
// from and is never part of the filename.
type EntryInfo struct {
	Source   string    `json:"source" yaml:"source"`
	Key      string    `json:"key" yaml:"key"`
	Path     string    `json:"path" yaml:"path"`
	Exists   bool      `json:"exists" yaml:"exists"`
	Fresh    bool      `json:"fresh" yaml:"fresh"`
	Size     int64     `json:"size" yaml:"size"`
	Modified time.Time `json:"modified" yaml:"modified"`
	Words    int64     `json:"words" yaml:"words"`
}

// Dir resolves the base cache directory.
// Precedence:
//  1. override, if non-empty
//  2. PALINDROMES_CACHE_DIR, if set and non-empty
//  3. os.UserCacheDir()/palindromes
//  4. os.TempDir()/palindromes
//
// The boolean reports which of the explicit sources (1 or 2) was used.
func Dir(override string) (string, bool) {
	if override != "" {
		return override, true
	}
	if c, ok := os.LookupEnv("PALINDROMES_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "palindromes"), false
	}
	return filepath.Join(os.TempDir(), "palindromes"), false
}

// Enabled returns true unless PALINDROMES_CACHE explicitly disables it
// ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("PALINDROMES_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// EncodeKey hashes namespace and clear with xxhash and returns the hex
// string. The NUL separator keeps ("ab", "c") and ("a", "bc") apart.
func EncodeKey(namespace, clear string) string {
	h := xxhash.New()
	_, _ = h.WriteString(namespace)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(clear)
	return hex.EncodeToString(h.Sum(nil))
}

// EntryPath returns where an entry with the given encoded key lives beneath
// root/subdir.
func EntryPath(root, subdir, encodedKey, ext string) string {
	return filepath.Join(root, subdir, encodedKey+ext)
}

// WriteAtomic stores data at path by writing a sibling temp file and renaming
// it into place, so a reader sees either the old file or the new one. Missing
// parent directories are created.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	tmpName := tmp.Name()

	// Only meaningful until the rename succeeds.
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			if rmErr := os.Remove(tmpName); rmErr != nil {
				log.WithError(rmErr).Warnf("failed to remove temp cache file %s", tmpName)
			}
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set cache file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp cache file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move cache file into place: %w", err)
	}

	log.Debugf("wrote cache file %s (%d bytes)", path, len(data))
	return nil
}
