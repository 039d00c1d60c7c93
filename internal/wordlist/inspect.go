// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tidwall/gjson"

	"github.com/staranto/palindromes/internal/cacheutil"
)

// Inspect reports on the cache entry for path without touching it. A missing
// entry is not an error; Exists is simply false. Words is -1 when the entry
// cannot be decoded.
func (c *Cache) Inspect(path string) (cacheutil.EntryInfo, error) {
	info := cacheutil.EntryInfo{
		Source: path,
		Key:    c.Key(path),
		Path:   c.EntryPath(path),
	}

	st, err := os.Stat(info.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("failed to stat cache entry: %w", err)
	}
	info.Exists = true
	info.Size = st.Size()
	info.Modified = st.ModTime()

	if src, err := os.Stat(path); err == nil {
		info.Fresh = st.ModTime().After(src.ModTime())
	}

	data, err := os.ReadFile(info.Path)
	if err != nil {
		return info, fmt.Errorf("failed to read cache entry: %w", err)
	}

	info.Words = -1
	raw, err := c.codec.decompress(data)
	if err != nil || !gjson.ValidBytes(raw) {
		info.Fresh = false
		return info, nil
	}
	arr := gjson.ParseBytes(raw)
	if !arr.IsArray() {
		info.Fresh = false
		return info, nil
	}
	info.Words = arr.Get("#").Int()
	return info, nil
}
