package common

import (
	"go/token"
	"path"
	"strings"
)

// PkgAlias returns the package name a package pattern most likely declares:
// the last path element, without a "/..." suffix or a ".vN" version suffix.
// Returns empty string when no identifier remains (e.g. "./...").
func PkgAlias(pattern string) string {
	pattern = strings.TrimSuffix(pattern, "/...")
	if pattern == "" {
		return ""
	}

	alias := path.Base(pattern)
	if i := strings.IndexByte(alias, '.'); i > 0 {
		alias = alias[:i]
	}

	alias = strings.ReplaceAll(alias, "-", "")
	if !token.IsIdentifier(alias) {
		return ""
	}

	return alias
}
