// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package wordfilter decides which raw word-list lines are usable words and
// normalizes the ones that are.
package wordfilter
