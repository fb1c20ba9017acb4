package diagnostic

import (
	"fmt"
	"strings"

	"propindex/internal/common"
	"propindex/internal/naming"
	"propindex/props"
)

// maxSuggestions bounds the near misses reported for one lookup.
const maxSuggestions = 3

// Inspect reports the findings on one index: properties with more than one
// getter or setter candidate, and properties that can be written but not read.
func Inspect(ix *props.Index) Diagnostics {
	var d Diagnostics

	typeName := ix.TypeName()
	readable := ix.Properties()

	for _, property := range readable {
		if getters := ix.Getters(property); common.IsMultiple(getters) {
			d.AddWarning(CodeAmbiguousGetter, ambiguity("getters", getters), typeName, property)
		}
	}

	for _, property := range ix.WritableProperties() {
		setters := ix.Setters(property)
		if common.IsMultiple(setters) {
			d.AddWarning(CodeAmbiguousSetter, ambiguity("setters", setters), typeName, property)
		}

		if common.IsEmpty(ix.Getters(property)) {
			d.AddWarning(CodeWriteOnly, "property has a setter but no getter", typeName, property)
		}
	}

	d.AddInfo(CodeSummary,
		fmt.Sprintf("%d readable, %d writable properties, %d methods",
			len(readable), len(ix.WritableProperties()), len(ix.MethodNames())),
		typeName, "")

	return d
}

// Miss describes a failed lookup of name among known names, with the closest
// known names as suggestions. kind is "getter", "setter" or "method".
func Miss(typeName, kind, name string, known []string) Diagnostic {
	return Diagnostic{
		Severity:    SeverityInfo,
		Code:        CodeNotFound,
		Message:     "no " + kind + " found",
		TypeName:    typeName,
		Property:    name,
		Suggestions: naming.Suggest(name, known, maxSuggestions),
	}
}

// ambiguity renders e.g. "2 setters: SetScale(float64), Setscale(*float64); first wins without a type".
func ambiguity(what string, ops []props.Operation) string {
	sigs := make([]string, 0, len(ops))
	for _, op := range ops {
		sigs = append(sigs, op.String())
	}

	return fmt.Sprintf("%d %s: %s; first wins without a type", len(ops), what, strings.Join(sigs, ", "))
}
