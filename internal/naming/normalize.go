package naming

import "strings"

// Key returns the case-folded form under which property and method names are indexed.
func Key(name string) string {
	return strings.ToLower(name)
}

// Lax removes every underscore from name. Lax is idempotent, so a caller
// retrying a lookup only when Lax(name) != name retries at most once.
func Lax(name string) string {
	return strings.ReplaceAll(name, "_", "")
}
