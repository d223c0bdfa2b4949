package ids

import (
	"slices"
	"strings"
)

// NormalizeUniqueIDs lowercases IDs and drops empty values and duplicates,
// preserving first-seen order.
func NormalizeUniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(id)
		if _, dup := seen[id]; id == "" || dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// MatchPrefixNormalized finds the ID starting with prefix among normalized
// IDs. An exact match wins over longer IDs sharing the prefix.
func MatchPrefixNormalized(ids []string, prefix string) (match string, found bool, ambiguous bool) {
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return "", false, false
	}
	if slices.Contains(ids, prefix) {
		return prefix, true, false
	}
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if found {
			return "", true, true
		}
		match, found = id, true
	}
	return match, found, false
}

// UniquePrefixLengths returns the shortest unique prefix length for each ID,
// keyed by the lowercased ID.
func UniquePrefixLengths(ids []string) map[string]int {
	return UniquePrefixLengthsNormalized(NormalizeUniqueIDs(ids))
}

// UniquePrefixLengthsNormalized is UniquePrefixLengths for IDs that are
// already lowercased and deduplicated.
//
// After sorting, the longest prefix an ID shares with any other ID is the
// one it shares with a neighbour, so one more character makes it unique. An
// ID that is itself a prefix of another needs its full length.
func UniquePrefixLengthsNormalized(ids []string) map[string]int {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	lengths := make(map[string]int, len(sorted))
	for i, id := range sorted {
		shared := 0
		if i > 0 {
			shared = commonPrefixLen(id, sorted[i-1])
		}
		if i+1 < len(sorted) {
			shared = max(shared, commonPrefixLen(id, sorted[i+1]))
		}
		lengths[id] = min(shared+1, len(id))
	}
	return lengths
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
