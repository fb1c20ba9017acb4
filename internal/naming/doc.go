// Package naming holds the string rules behind property indexing: accessor
// prefix recognition, property-name derivation, the case-insensitive key form,
// the lax (underscore-free) fallback form, and Levenshtein-ranked suggestions.
package naming
