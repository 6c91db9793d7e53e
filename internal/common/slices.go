package common

import "sort"

// IsEmpty reports whether s has no elements.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of s, with ok false when s is empty.
func First[S ~[]E, E any](s S) (first E, ok bool) {
	if len(s) == 0 {
		return first, false
	}

	return s[0], true
}

// SortedKeys returns the keys of m in ascending order. Used wherever map
// iteration order would otherwise leak into generated output.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
