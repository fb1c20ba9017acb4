package analyze

import (
	"go/types"

	"propindex/primitive"
	"propindex/props"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "propindex/examples/beans"
	Name    string // e.g., "Layer"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// GoType adapts a go/types.Type to props.Type.
type GoType struct {
	T types.Type
}

var _ props.Type = GoType{}

// TypeOf wraps t, returning nil for a nil t.
func TypeOf(t types.Type) props.Type {
	if t == nil {
		return nil
	}

	return GoType{T: t}
}

func (g GoType) String() string {
	return types.TypeString(g.T, nil)
}

// AssignableTo follows the Go assignability rules. Types from another load,
// or from another props.Type implementation, are never assignable.
func (g GoType) AssignableTo(u props.Type) bool {
	other, ok := u.(GoType)
	return ok && types.AssignableTo(g.T, other.T)
}

func (g GoType) Primitive() (primitive.KindEnum, bool) {
	return primitive.FromGoType(g.T)
}

// Graph holds the descriptors of all analyzed types.
type Graph struct {
	// Types maps TypeID to the descriptor of every exported, non-generic named type.
	Types map[TypeID]*props.Descriptor
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo

	// scopes holds every loaded package and its direct imports, for type parsing.
	scopes map[string]*types.Package
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Types:    make(map[TypeID]*props.Descriptor),
		Packages: make(map[string]*PackageInfo),
		scopes:   make(map[string]*types.Package),
	}
}

// Descriptor returns the descriptor for a given TypeID, or nil if not found.
func (g *Graph) Descriptor(id TypeID) *props.Descriptor {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Described types, in scope order
}
