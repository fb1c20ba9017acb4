package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

// Severity orders diagnostics from informational to fatal.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)

// Diagnostic codes.
const (
	CodeAmbiguousGetter = "ambiguous-getter"
	CodeAmbiguousSetter = "ambiguous-setter"
	CodeWriteOnly       = "write-only"
	CodeSummary         = "summary"
	CodeNotFound        = "not-found"
	CodeLoad            = "load"
)

// Diagnostics collects findings about one or more types, grouped by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier of the finding kind, e.g. "write-only".
	Code    string
	Message string
	// TypeName is the qualified type the finding is about (if any).
	TypeName string
	// Property is the property or method name the finding is about (if any).
	Property string
	// Suggestions are near misses for a name that was not found.
	Suggestions []string
}

// Add files diag under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

func (d *Diagnostics) AddError(code, message, typeName, property string) {
	d.Add(Diagnostic{SeverityError, code, message, typeName, property, nil})
}

func (d *Diagnostics) AddWarning(code, message, typeName, property string) {
	d.Add(Diagnostic{SeverityWarning, code, message, typeName, property, nil})
}

func (d *Diagnostics) AddInfo(code, message, typeName, property string) {
	d.Add(Diagnostic{SeverityInfo, code, message, typeName, property, nil})
}

// HasErrors reports whether any error diagnostic was added.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends the diagnostics of other, keeping their order.
func (d *Diagnostics) Merge(other Diagnostics) {
	for _, diag := range other.All() {
		d.Add(diag)
	}
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	return d.AtLeast(SeverityInfo)
}

// AtLeast returns the diagnostics of severity floor or higher, most severe first.
func (d *Diagnostics) AtLeast(floor Severity) []Diagnostic {
	var out []Diagnostic

	out = append(out, d.Errors...)
	if floor <= SeverityWarning {
		out = append(out, d.Warnings...)
	}
	if floor <= SeverityInfo {
		out = append(out, d.Infos...)
	}

	return out
}

// Error joins all error diagnostics into one error, or returns nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, diag := range d.Errors {
		parts = append(parts, diag.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String renders "[Type] property: [code] message (did you mean a, b?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.TypeName != "" {
		fmt.Fprintf(&b, "[%s]", d.TypeName)
	}

	if d.Property != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Property)
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}
	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	return b.String()
}
