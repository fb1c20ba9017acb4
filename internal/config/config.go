package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"propindex/internal/common"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatText = "text"
)

// Binding kinds.
const (
	KindGetter = "getter"
	KindSetter = "setter"
	KindMethod = "method"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// File represents the root of a propindex configuration file.
type File struct {
	// Version of the configuration schema.
	Version string `yaml:"version,omitempty"`

	// Packages are Go package patterns to load (e.g., "./...", "example.org/beans").
	Packages []string `yaml:"packages"`

	// Types restricts indexing to these types ("pkg.Name"); empty means every type.
	Types []string `yaml:"types,omitempty"`

	// Output is the format of the index command: yaml or text.
	Output string `yaml:"output,omitempty"`

	// Gen configures descriptor code generation.
	Gen GenConfig `yaml:"gen,omitempty"`

	// Bindings are lookups the check command verifies.
	Bindings []Binding `yaml:"bindings,omitempty"`
}

// GenConfig configures the gen command.
type GenConfig struct {
	// Package is the name of the generated package.
	Package string `yaml:"package,omitempty"`
	// PkgPath is the import path of the generated package, if known.
	PkgPath string `yaml:"pkg_path,omitempty"`
	// Out is the output directory.
	Out string `yaml:"out,omitempty"`
	// Filename is the generated file name.
	Filename string `yaml:"filename,omitempty"`
}

// Binding is one accessor a consumer expects to resolve.
type Binding struct {
	Type     string `yaml:"type"`
	Kind     string `yaml:"kind,omitempty"`
	Property string `yaml:"property"`
	// Expect is an optional type expression, e.g. "*int32" or "beans.Resource".
	Expect string `yaml:"expect,omitempty"`
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File, applies defaults and validates it.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	f.ApplyDefaults()

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// ApplyDefaults fills in default values for optional fields.
func (f *File) ApplyDefaults() {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Output == "" {
		f.Output = FormatYAML
	}

	if f.Gen.Package == "" && len(f.Packages) > 0 {
		f.Gen.Package = common.PkgAlias(f.Packages[0])
	}

	if f.Gen.Out == "" {
		f.Gen.Out = "."
	}

	if f.Gen.Filename == "" {
		f.Gen.Filename = "descriptors_gen.go"
	}

	for i := range f.Bindings {
		if f.Bindings[i].Kind == "" {
			f.Bindings[i].Kind = KindGetter
		}
	}
}

// Validate checks enumerated fields and required binding fields.
func (f *File) Validate() error {
	switch f.Output {
	case FormatYAML, FormatText:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, f.Output)
	}

	for i, b := range f.Bindings {
		switch b.Kind {
		case KindGetter, KindSetter, KindMethod:
		default:
			return fmt.Errorf("%w: binding %d: unknown kind %q", ErrInvalidConfig, i, b.Kind)
		}

		if b.Type == "" || b.Property == "" {
			return fmt.Errorf("%w: binding %d: type and property are required", ErrInvalidConfig, i)
		}
	}

	return nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
