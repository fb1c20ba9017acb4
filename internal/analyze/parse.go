package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"slices"
	"strings"

	"propindex/props"
)

var (
	// ErrUnknownType is returned when a type expression names no loaded type.
	ErrUnknownType = errors.New("analyze: unknown type")
	// ErrEmptyTypeExpr is returned for an empty type expression.
	ErrEmptyTypeExpr = errors.New("analyze: empty type expression")
	// ErrAmbiguousType is returned when a package name refers to several
	// loaded packages that all declare the type.
	ErrAmbiguousType = errors.New("analyze: ambiguous type")
)

// Lookup finds a described type by "importpath.Name" or "pkgname.Name".
// An import path match wins over a package name match.
func (g *Graph) Lookup(qualified string) (*props.Descriptor, error) {
	pkgRef, name, ok := splitQualified(qualified)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not qualified", ErrUnknownType, qualified)
	}

	names := make(map[string]string, len(g.Packages))
	for path, info := range g.Packages {
		names[path] = info.Name
	}

	path, err := pickPackage(qualified, pkgRef, names, func(path string) bool {
		return g.Types[TypeID{PkgPath: path, Name: name}] != nil
	})
	if err != nil {
		return nil, err
	}

	return g.Types[TypeID{PkgPath: path, Name: name}], nil
}

// ParseType resolves a type expression against the loaded packages and their
// direct imports. Supported forms: predeclared names, "pkg.Name" (import path
// or package name), and any nesting of the "*" and "[]" prefixes.
func (g *Graph) ParseType(expr string) (props.Type, error) {
	t, err := g.parse(strings.TrimSpace(expr))
	if err != nil {
		return nil, err
	}

	return TypeOf(t), nil
}

func (g *Graph) parse(expr string) (types.Type, error) {
	switch {
	case expr == "":
		return nil, ErrEmptyTypeExpr
	case strings.HasPrefix(expr, "*"):
		elem, err := g.parse(expr[1:])
		if err != nil {
			return nil, err
		}
		return types.NewPointer(elem), nil
	case strings.HasPrefix(expr, "[]"):
		elem, err := g.parse(expr[2:])
		if err != nil {
			return nil, err
		}
		return types.NewSlice(elem), nil
	}

	if obj, ok := types.Universe.Lookup(expr).(*types.TypeName); ok {
		return obj.Type(), nil
	}

	pkgRef, name, ok := splitQualified(expr)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, expr)
	}

	names := make(map[string]string, len(g.scopes))
	for path, pkg := range g.scopes {
		names[path] = pkg.Name()
	}

	typeName := func(path string) *types.TypeName {
		obj, _ := g.scopes[path].Scope().Lookup(name).(*types.TypeName)
		return obj
	}

	path, err := pickPackage(expr, pkgRef, names, func(path string) bool {
		return typeName(path) != nil
	})
	if err != nil {
		return nil, err
	}

	return typeName(path).Type(), nil
}

// pickPackage returns the path of the package pkgRef refers to among names
// (import path to package name), considering only packages that declare the
// type. pkgRef is first tried as an import path, then as a package name,
// which must then be unique.
func pickPackage(qualified, pkgRef string, names map[string]string, declares func(path string) bool) (string, error) {
	if _, ok := names[pkgRef]; ok && declares(pkgRef) {
		return pkgRef, nil
	}

	var matches []string
	for path, name := range names {
		if name == pkgRef && declares(path) {
			matches = append(matches, path)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrUnknownType, qualified)
	case 1:
		return matches[0], nil
	default:
		slices.Sort(matches)
		return "", fmt.Errorf("%w: %s matches packages %s; use the import path",
			ErrAmbiguousType, qualified, strings.Join(matches, ", "))
	}
}

func splitQualified(s string) (pkgRef, name string, ok bool) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}

	return s[:i], s[i+1:], true
}
