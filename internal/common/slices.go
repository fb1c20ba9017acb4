package common

import "strings"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// UniqueFold concatenates lists, dropping names equal under case folding to an
// earlier one. The first spelling wins.
func UniqueFold(lists ...[]string) []string {
	seen := make(map[string]bool)

	var out []string
	for _, list := range lists {
		for _, name := range list {
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}

			seen[key] = true
			out = append(out, name)
		}
	}

	return out
}
