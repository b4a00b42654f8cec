package utils

// Ordered string-set helpers. Job assignment lists and crew membership are
// stored as ordered id sets with no duplicates; every mutation goes through
// these instead of raw slice splicing so the no-duplicate invariant holds.

// ContainsString reports whether list contains s.
func ContainsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DedupStrings returns list with duplicates removed, first occurrence wins.
func DedupStrings(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// UnionStrings returns base plus the members of add that are not already
// present, preserving order. Calling it twice with the same arguments is a
// no-op the second time.
func UnionStrings(base, add []string) []string {
	out := make([]string, 0, len(base)+len(add))
	out = append(out, base...)
	for _, v := range add {
		if !ContainsString(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// DifferenceStrings returns the members of base not present in remove,
// preserving order.
func DifferenceStrings(base, remove []string) []string {
	out := make([]string, 0, len(base))
	for _, v := range base {
		if !ContainsString(remove, v) {
			out = append(out, v)
		}
	}
	return out
}

// IntersectStrings returns the members of a that are also in b, in a's order.
func IntersectStrings(a, b []string) []string {
	out := make([]string, 0, len(a))
	for _, v := range a {
		if ContainsString(b, v) {
			out = append(out, v)
		}
	}
	return out
}
