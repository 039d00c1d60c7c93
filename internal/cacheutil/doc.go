// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cacheutil resolves the on-disk cache location, derives cache keys
// and writes cache files atomically.
package cacheutil
