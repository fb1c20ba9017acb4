// Package diagnostic provides structured findings about property indices.
//
// Key capabilities:
//   - Ambiguous getter/setter reports listing every candidate
//   - Write-only property warnings
//   - Lookup misses with near-miss suggestions
//
// Findings are reports for humans; a lookup miss is never an error.
package diagnostic
