package ui

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

const (
	// DefaultMaxDistance is the default maximum edit distance to consider for fuzzy matching
	DefaultMaxDistance = 3
	// DefaultMaxSuggestions is the default maximum number of suggestions to return
	DefaultMaxSuggestions = 3
)

// FuzzyMatchOptions configures fuzzy matching behavior
type FuzzyMatchOptions struct {
	MaxDistance    int  // Maximum Levenshtein distance to consider (default: 3)
	MaxSuggestions int  // Maximum number of suggestions to return (default: 3)
	CaseSensitive  bool // Whether matching is case-sensitive (default: false)
}

type suggestion struct {
	value    string
	distance int
}

// FindSimilar finds candidates within a small edit distance of target,
// closest first
//
// Example:
//
//	candidates := []string{"Order", "User", "Account"}
//	suggestions := FindSimilar("Ordr", candidates, nil)
//	// Returns: ["Order"]
func FindSimilar(target string, candidates []string, opts *FuzzyMatchOptions) []string {
	o := FuzzyMatchOptions{}
	if opts != nil {
		o = *opts
	}
	if o.MaxDistance == 0 {
		o.MaxDistance = DefaultMaxDistance
	}
	if o.MaxSuggestions == 0 {
		o.MaxSuggestions = DefaultMaxSuggestions
	}

	var suggestions []suggestion
	for _, candidate := range candidates {
		a, b := target, candidate
		if !o.CaseSensitive {
			a, b = strings.ToLower(a), strings.ToLower(b)
		}

		dist := levenshtein.Distance(a, b, nil)
		if dist <= o.MaxDistance {
			suggestions = append(suggestions, suggestion{value: candidate, distance: dist})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].distance < suggestions[j].distance
	})

	result := make([]string, 0, o.MaxSuggestions)
	for i := 0; i < len(suggestions) && i < o.MaxSuggestions; i++ {
		result = append(result, suggestions[i].value)
	}
	return result
}
