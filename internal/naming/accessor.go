package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Accessor name prefixes. Both the lower-case form and the exported Go form are recognized.
const (
	getPrefix = "get"
	isPrefix  = "is"
	setPrefix = "set"
)

// derivedProperties lists operation names that are getters despite lacking a prefix.
// Their property name is the operation name itself.
var derivedProperties = map[string]struct{}{
	"prefixedName": {},
	"PrefixedName": {},
}

// IsDerived reports whether name is a whitelisted getter without a prefix.
func IsDerived(name string) bool {
	_, ok := derivedProperties[name]
	return ok
}

// GetterProperty returns the property exposed by a nullary operation called name.
// ok is false when name is neither prefixed with get/is nor a derived property.
func GetterProperty(name string) (property string, ok bool) {
	if IsDerived(name) {
		return name, true
	}

	switch {
	case hasPrefix(name, getPrefix):
		return Decapitalize(name[len(getPrefix):]), true
	case hasPrefix(name, isPrefix):
		return Decapitalize(name[len(isPrefix):]), true
	default:
		return "", false
	}
}

// SetterProperty returns the property written by a unary operation called name.
// The remainder after the prefix is kept as is; keys are compared case-insensitively anyway.
func SetterProperty(name string) (property string, ok bool) {
	if !hasPrefix(name, setPrefix) {
		return "", false
	}

	return name[len(setPrefix):], true
}

// hasPrefix matches prefix exactly or with its first letter upper-cased.
func hasPrefix(name, prefix string) bool {
	if strings.HasPrefix(name, prefix) {
		return true
	}

	exported := strings.ToUpper(prefix[:1]) + prefix[1:]

	return strings.HasPrefix(name, exported)
}

// Decapitalize lower-cases the first rune of s.
func Decapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsLower(r) {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
