package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"propindex/props"
)

const propsPkg = "propindex/props"

// ErrUnsupportedType is wrapped by errors about types that cannot be spelled in generated code.
var ErrUnsupportedType = errors.New("gen: unsupported type")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// PkgPath is the import path of the generated package. When set, types of
	// that package are referenced unqualified and may be unexported.
	PkgPath string
	// Filename is the name of the generated file.
	Filename string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName: "descriptors",
		Filename:    "descriptors_gen.go",
	}
}

// Generator generates descriptor registrations.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "descriptors_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Result is the output of one generation run.
type Result struct {
	File GeneratedFile
	// Skipped lists the operations left out, as "Type.Method: reason".
	Skipped []string
}

// Generate renders one file declaring a descriptor variable per descriptor,
// in the given order.
func (g *Generator) Generate(descs []*props.Descriptor) (*Result, error) {
	var f *jen.File
	if g.config.PkgPath != "" {
		f = jen.NewFilePathName(g.config.PkgPath, g.config.PackageName)
	} else {
		f = jen.NewFile(g.config.PackageName)
	}
	f.HeaderComment("Code generated by propindex. DO NOT EDIT.")

	res := &Result{}

	for _, d := range descs {
		name, ok := varName(d.Name)
		if !ok {
			res.Skipped = append(res.Skipped, fmt.Sprintf("%s: type name is not an identifier", d))
			continue
		}

		args := []jen.Code{jen.Lit(d.PkgPath), jen.Lit(d.Name)}
		for _, op := range d.Operations {
			code, err := g.operation(op)
			if err != nil {
				res.Skipped = append(res.Skipped, fmt.Sprintf("%s.%s: %v", d.Name, op.Name, err))
				continue
			}

			args = append(args, code)
		}

		f.Commentf("%s registers the operations of %s.", name, d)
		f.Var().Id(name).Op("=").Qual(propsPkg, "MustDescriptor").Custom(jen.Options{
			Open:      "(",
			Close:     ")",
			Separator: ",",
			Multi:     true,
		}, args...)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", g.config.Filename, err)
	}

	res.File = GeneratedFile{
		Filename: g.config.Filename,
		Content:  buf.Bytes(),
	}

	return res, nil
}

// operation renders props.Op(name, result, params...).
func (g *Generator) operation(op props.Operation) (jen.Code, error) {
	result := jen.Code(jen.Nil())
	if op.Result != nil {
		code, err := g.typeFor(op.Result)
		if err != nil {
			return nil, fmt.Errorf("result: %w", err)
		}
		result = code
	}

	args := []jen.Code{jen.Lit(op.Name), result}
	for i, p := range op.Params {
		code, err := g.typeFor(p)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		args = append(args, code)
	}

	return jen.Qual(propsPkg, "Op").Call(args...), nil
}

// typeFor renders props.TypeFor[T]().
func (g *Generator) typeFor(t props.Type) (jen.Code, error) {
	code, err := g.typeCode(t)
	if err != nil {
		return nil, err
	}

	return jen.Qual(propsPkg, "TypeFor").Types(code).Call(), nil
}

// varName returns the exported variable name for a type, e.g. "LayerDescriptor".
func varName(typeName string) (string, bool) {
	if !token.IsIdentifier(typeName) {
		return "", false
	}

	r, size := utf8.DecodeRuneInString(typeName)

	return string(unicode.ToUpper(r)) + typeName[size:] + "Descriptor", true
}

// visible reports whether a named type of pkgPath can be referenced from the generated package.
func (g *Generator) visible(pkgPath, name string) bool {
	if strings.ContainsRune(name, '[') {
		return false
	}

	return token.IsExported(name) || (pkgPath != "" && pkgPath == g.config.PkgPath)
}
