// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package wordlist loads a word list from disk, filters it and keeps the
// filtered result in a compressed on-disk cache that is invalidated when the
// source file changes.
//
// The cache is not safe for concurrent writers of the same source path.
// Entries are replaced with an atomic rename, so readers never observe a
// partial file, but the last writer wins.
package wordlist
