package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const layerType = "propindex/examples/beans.Layer"

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "propindex lookup")

	code, _, stderr = runCLI(t, "frobnicate")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)

	code, stdout, _ := runCLI(t, "help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "propindex index")
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"getter", []string{"-name", "NAME"}, "GetName() string"},
		{"lax getter", []string{"-name", "max_features"}, "GetMaxFeatures() *int32"},
		{"primitive expected", []string{"-name", "maxFeatures", "-expect", "int32"}, "GetMaxFeatures() *int32"},
		{"derived", []string{"-name", "prefixedName"}, "PrefixedName() string"},
		{"setter", []string{"-kind", "setter", "-name", "scale", "-expect", "*float64"}, "SetScale(float64)"},
		{"method", []string{"-kind", "method", "-name", "setscale"}, "SetScale(float64)"},
		{"qualified expected", []string{"-name", "resource", "-expect", "*beans.Resource"}, "GetResource() *propindex/examples/beans.Resource"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"lookup", "-type", layerType}, tt.args...)

			code, stdout, stderr := runCLI(t, args...)
			require.Equal(t, exitOK, code, stderr)
			assert.Contains(t, stdout, tt.want)
		})
	}
}

func TestLookup_Miss(t *testing.T) {
	code, stdout, _ := runCLI(t, "lookup", "-type", layerType, "-name", "workspac")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stdout, "[not-found] no getter found")
	assert.Contains(t, stdout, "did you mean workspace?")
}

func TestLookup_Dump(t *testing.T) {
	code, stdout, stderr := runCLI(t, "lookup", "-type", layerType, "-kind", "setter",
		"-name", "MaxFeatures", "-dump", "-v")

	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, `Method: (string) (len=14) "SetMaxFeatures"`)
	assert.Contains(t, stdout, `(string) (len=5) "int32"`)
	assert.Contains(t, stderr, "level=DEBUG msg=resolved")
}

func TestLookup_BadArgs(t *testing.T) {
	code, _, _ := runCLI(t, "lookup", "-name", "name")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "lookup", "-type", layerType, "-name", "name", "-kind", "field")
	assert.Equal(t, exitUsage, code)

	code, _, stderr := runCLI(t, "lookup", "-type", layerType, "-name", "name", "-expect", "beans.Nope")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unknown type")
}

func TestIndex_YAML(t *testing.T) {
	code, stdout, stderr := runCLI(t, "index", "-type", layerType, "-methods")
	require.Equal(t, exitOK, code, stderr)

	var reports []typeReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, layerType, r.Type)

	names := make([]string, 0, len(r.Properties))
	for _, p := range r.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t,
		[]string{"resource", "maxFeatures", "name", "scale", "workspace", "PrefixedName", "Password"},
		names)

	scale := r.Properties[3]
	assert.Equal(t, []string{"GetScale() *float64"}, scale.Getters)
	assert.Equal(t, []string{"SetScale(float64)", "Setscale(*float64)"}, scale.Setters)

	password := r.Properties[6]
	assert.Empty(t, password.Getters)
	assert.Equal(t, []string{"SetPassword(string)"}, password.Setters)

	assert.Contains(t, r.Methods, "PrefixedName")
}

func TestIndex_Text(t *testing.T) {
	code, stdout, stderr := runCLI(t, "index", "-format", "text", "-type", "propindex/examples/beans.Resource")
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "propindex/examples/beans.Resource\n")
	assert.Contains(t, stdout, "  enabled: get=[IsEnabled() bool] set=[SetEnabled(bool)]\n")
}

func TestIndex_AllTypes(t *testing.T) {
	code, stdout, stderr := runCLI(t, "index", "propindex/examples/beans")
	require.Equal(t, exitOK, code, stderr)

	var reports []typeReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &reports))

	types := make([]string, 0, len(reports))
	for _, r := range reports {
		types = append(types, r.Type)
	}
	assert.Equal(t, []string{
		"propindex/examples/beans.Bounds",
		"propindex/examples/beans.Catalog",
		"propindex/examples/beans.Layer",
		"propindex/examples/beans.Resource",
	}, types)
}

func TestIndex_NoPackages(t *testing.T) {
	code, _, stderr := runCLI(t, "index")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "no packages to load")
}

func TestCheck(t *testing.T) {
	code, stdout, stderr := runCLI(t, "check", "-type", layerType)
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "warning: ["+layerType+"] Scale: [ambiguous-setter] 2 setters")
	assert.Contains(t, stdout, "warning: ["+layerType+"] Password: [write-only]")
	assert.Contains(t, stdout, "info: ["+layerType+"]: [summary] ")

	code, stdout, _ = runCLI(t, "check", "-q", "-type", layerType)
	assert.Equal(t, exitOK, code)
	assert.NotContains(t, stdout, "info:")
}

func TestCheck_Bindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propindex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
packages: [propindex/examples/beans]
types: [beans.Resource]
bindings:
  - type: beans.Layer
    property: max_features
    expect: int32
  - type: beans.Layer
    kind: setter
    property: resource
    expect: "*beans.Resource"
  - type: beans.Layer
    property: pasword
`), 0o600))

	code, stdout, _ := runCLI(t, "check", "-config", path)

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stdout, "error: ["+layerType+"] pasword: [not-found] no getter found")
	assert.NotContains(t, stdout, "max_features")
}

func TestGen(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := runCLI(t, "gen", "-type", layerType, "-pkg", "beanprops", "-out", dir)
	require.Equal(t, exitOK, code, stderr)

	content, err := os.ReadFile(filepath.Join(dir, "descriptors_gen.go"))
	require.NoError(t, err)

	code2 := string(content)
	assert.Contains(t, code2, "package beanprops")
	assert.Contains(t, code2, "var LayerDescriptor = props.MustDescriptor(")
	assert.Contains(t, code2, `props.Op("Setscale", nil, props.TypeFor[*float64]()),`)
}

func TestGen_DryRun(t *testing.T) {
	code, stdout, stderr := runCLI(t, "gen", "-n", "-pkg", "beanprops", "-filename", "x_gen.go",
		"-type", "propindex/examples/beans.Resource")
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "var ResourceDescriptor = props.MustDescriptor(")
	assert.Contains(t, stdout, `props.Op("GetLastModified", props.TypeFor[time.Time]()),`)
	assert.Empty(t, stderr)
}

func TestGen_BadPackageName(t *testing.T) {
	code, _, stderr := runCLI(t, "gen", "-n", "-type", layerType, "-pkg", "not-an-ident")

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "not an identifier")
}

func TestPackagesOf(t *testing.T) {
	assert.Equal(t,
		[]string{"example.org/a", "example.org/b/c"},
		packagesOf([]string{"example.org/a.X", "beans.Layer", "example.org/b/c.Y", "example.org/a.Z"}))
}
