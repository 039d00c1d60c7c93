// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

// Reason says why a lookup did or did not produce words from the cache.
type Reason int

const (
	Hit Reason = iota
	MissDisabled
	MissAbsent
	MissStale
	MissCorrupt
	MissUnreadable
	MissForced
)

func (r Reason) String() string {
	switch r {
	case Hit:
		return "hit"
	case MissDisabled:
		return "disabled"
	case MissAbsent:
		return "absent"
	case MissStale:
		return "stale"
	case MissCorrupt:
		return "corrupt"
	case MissUnreadable:
		return "unreadable"
	case MissForced:
		return "forced"
	default:
		return "unknown"
	}
}

// Lookup is the outcome of consulting the cache: either a hit carrying the
// words, or a miss carrying the reason and, where there is one, the cause.
type Lookup struct {
	Words  []string
	Reason Reason
	Err    error
}

// Hit reports whether the lookup produced words.
func (l Lookup) Hit() bool { return l.Reason == Hit }
