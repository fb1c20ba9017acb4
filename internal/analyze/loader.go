package analyze

import (
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"propindex/props"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and describes their types.
type Analyzer struct {
	// Dir is the directory packages are resolved from; empty means the current directory.
	Dir   string
	graph *Graph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewGraph(),
	}
}

// LoadPackages loads the specified packages and describes their exported types.
// Patterns are standard Go package patterns (e.g., "./beans", "propindex/examples/beans").
func (a *Analyzer) LoadPackages(patterns ...string) (*Graph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current graph.
func (a *Analyzer) Graph() *Graph {
	return a.graph
}

// processPackage describes the exported named types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	a.graph.scopes[pkg.PkgPath] = pkg.Types
	for _, imp := range pkg.Types.Imports() {
		if _, ok := a.graph.scopes[imp.Path()]; !ok {
			a.graph.scopes[imp.Path()] = imp
		}
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}

		d, err := describe(pkg.PkgPath, named)
		if err != nil {
			return err
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		a.graph.Types[id] = d
		pkgInfo.Types = append(pkgInfo.Types, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// describe lists the exported methods of named. Concrete types are described
// through their pointer method set, matching props.DescriptorOf.
func describe(pkgPath string, named *types.Named) (*props.Descriptor, error) {
	var set *types.MethodSet
	if types.IsInterface(named) {
		set = types.NewMethodSet(named)
	} else {
		set = types.NewMethodSet(types.NewPointer(named))
	}

	var ops []props.Operation
	for i := range set.Len() {
		sel := set.At(i)

		fn, ok := sel.Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		sig, ok := sel.Type().(*types.Signature)
		if !ok {
			continue
		}

		params := make([]props.Type, 0, sig.Params().Len())
		for j := range sig.Params().Len() {
			params = append(params, TypeOf(sig.Params().At(j).Type()))
		}

		var result props.Type
		if sig.Results().Len() > 0 {
			result = TypeOf(sig.Results().At(0).Type())
		}

		ops = append(ops, props.Op(fn.Name(), result, params...))
	}

	d, err := props.NewDescriptor(pkgPath, named.Obj().Name(), ops...)
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s: %w", named, err)
	}

	return d, nil
}
