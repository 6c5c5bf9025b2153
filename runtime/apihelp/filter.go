package apihelp

import (
	"strings"
)

// Matches reports whether candidate contains term, ignoring case.
// An empty term is no filter at all and matches everything.
func Matches(candidate, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(candidate), strings.ToLower(term))
}

// filterBy keeps the items whose name matches term, preserving order
func filterBy[T any](items []T, term string, name func(T) string) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(name(item), term) {
			result = append(result, item)
		}
	}
	return result
}

// FilterNames keeps the names matching term, preserving order
func FilterNames(names []string, term string) []string {
	return filterBy(names, term, func(s string) string { return s })
}
