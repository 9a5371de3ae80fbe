package pattern

import (
	"sort"
	"strings"
)

// Dedup removes structurally equivalent matches: those sharing the same
// pattern id and the same multiset of node identifiers across all roles.
// Among equivalents exactly one is kept (the first encountered); dedup is
// idempotent (spec §4.2 "Deduplication", §8.2).
func Dedup(matches []Match) []Match {
	seen := make(map[string]bool, len(matches))
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		key := dedupKey(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out
}

func dedupKey(m Match) string {
	var all []string
	for _, ids := range m.Roles {
		all = append(all, ids...)
	}
	sort.Strings(all)
	return m.PatternID + "|" + strings.Join(all, ",")
}
