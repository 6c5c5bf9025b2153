package strings

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts CamelCase to snake_case
// Handles acronyms properly (HTTPRequest -> http_request)
func ToSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			result.WriteRune(r)
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			switch {
			case prev == '_':
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				result.WriteRune('_')
			case i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				result.WriteRune('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

// MemberKey returns the lookup key for a member name so that the snake_case,
// camelCase and exported Go spellings of one name compare equal
// (full_name, fullName and FullName all map to "full_name").
func MemberKey(name string) string {
	return strings.ToLower(ToSnakeCase(strings.TrimSpace(name)))
}
