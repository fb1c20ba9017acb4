package gen

import (
	"fmt"
	"go/types"
	"reflect"

	"github.com/dave/jennifer/jen"

	"propindex/internal/analyze"
	"propindex/props"
)

// typeCode spells t as a Go type expression. Both the reflection and the
// go/types models are supported.
func (g *Generator) typeCode(t props.Type) (jen.Code, error) {
	switch tt := t.(type) {
	case analyze.GoType:
		return g.goTypeCode(tt.T)
	case interface{ Reflect() reflect.Type }:
		return g.reflectTypeCode(tt.Reflect())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, t)
	}
}

func (g *Generator) reflectTypeCode(t reflect.Type) (jen.Code, error) {
	if name := t.Name(); name != "" {
		switch {
		case t.PkgPath() == "":
			return jen.Id(name), nil
		case g.visible(t.PkgPath(), name):
			return jen.Qual(t.PkgPath(), name), nil
		default:
			return nil, fmt.Errorf("%w: %s is not visible", ErrUnsupportedType, t)
		}
	}

	switch t.Kind() {
	case reflect.Pointer:
		return g.wrapReflect(jen.Op("*"), t.Elem())
	case reflect.Slice:
		return g.wrapReflect(jen.Index(), t.Elem())
	case reflect.Array:
		return g.wrapReflect(jen.Index(jen.Lit(t.Len())), t.Elem())
	case reflect.Map:
		key, err := g.reflectTypeCode(t.Key())
		if err != nil {
			return nil, err
		}
		return g.wrapReflect(jen.Map(key), t.Elem())
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return jen.Interface(), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

func (g *Generator) wrapReflect(prefix *jen.Statement, elem reflect.Type) (jen.Code, error) {
	code, err := g.reflectTypeCode(elem)
	if err != nil {
		return nil, err
	}

	return prefix.Add(code), nil
}

func (g *Generator) goTypeCode(t types.Type) (jen.Code, error) {
	switch tt := t.(type) {
	case *types.Alias:
		return g.goTypeCode(types.Unalias(tt))
	case *types.Basic:
		if tt.Info()&types.IsUntyped != 0 || tt.Kind() == types.UnsafePointer {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, tt)
		}
		return jen.Id(tt.Name()), nil
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			return jen.Id(obj.Name()), nil
		}
		if tt.TypeArgs().Len() > 0 || !g.visible(obj.Pkg().Path(), obj.Name()) {
			return nil, fmt.Errorf("%w: %s is not visible", ErrUnsupportedType, tt)
		}
		return jen.Qual(obj.Pkg().Path(), obj.Name()), nil
	case *types.Pointer:
		return g.wrapGo(jen.Op("*"), tt.Elem())
	case *types.Slice:
		return g.wrapGo(jen.Index(), tt.Elem())
	case *types.Array:
		return g.wrapGo(jen.Index(jen.Lit(int(tt.Len()))), tt.Elem())
	case *types.Map:
		key, err := g.goTypeCode(tt.Key())
		if err != nil {
			return nil, err
		}
		return g.wrapGo(jen.Map(key), tt.Elem())
	case *types.Interface:
		if tt.Empty() {
			return jen.Interface(), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

func (g *Generator) wrapGo(prefix *jen.Statement, elem types.Type) (jen.Code, error) {
	code, err := g.goTypeCode(elem)
	if err != nil {
		return nil, err
	}

	return prefix.Add(code), nil
}
