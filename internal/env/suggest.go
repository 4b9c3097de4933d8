// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Suggest returns the known name most likely meant by a mistyped query.
// Matching tiers, in order: prefix match, substring match, minimum edit
// distance (accepted only when the distance is at most half the query
// length), and finally the first known name. The second result is false only
// when the registry is empty.
func (m *Manager) Suggest(name string) (string, bool) {
	names := m.Names()
	if len(names) == 0 {
		return "", false
	}

	for _, n := range names {
		if strings.HasPrefix(n, name) {
			return n, true
		}
	}

	for _, n := range names {
		if strings.Contains(n, name) {
			return n, true
		}
	}

	// Classic single-edit Levenshtein, no transposition.
	best := ""
	bestDist := -1
	for _, n := range names {
		d := levenshtein.Distance(name, n, nil)
		if bestDist == -1 || d < bestDist {
			best, bestDist = n, d
		}
	}
	if bestDist <= len(name)/2 {
		return best, true
	}

	return names[0], true
}
