package props_test

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propindex/props"
)

func TestGetter_CaseInsensitive(t *testing.T) {
	ix, err := props.ForType[layer]()
	require.NoError(t, err)

	for _, property := range ix.Properties() {
		want, ok := ix.Getter(property, nil)
		require.True(t, ok, property)

		for _, variant := range []string{strings.ToUpper(property), strings.ToLower(property)} {
			got, ok := ix.Getter(variant, nil)
			require.True(t, ok, variant)
			assert.Equal(t, want.Name, got.Name, variant)
		}
	}
}

func TestSetter_CaseInsensitive(t *testing.T) {
	ix, err := props.ForType[layer]()
	require.NoError(t, err)

	for _, name := range []string{"maxfeatures", "MAXFEATURES", "MaxFeatures", "maxFeatures"} {
		op, ok := ix.Setter(name, nil)
		require.True(t, ok, name)
		assert.Equal(t, "SetMaxFeatures", op.Name)
	}
}

func TestResolve_PrimitiveWrapperEquivalence(t *testing.T) {
	d := props.MustDescriptor("", "Bean",
		props.Op("SetValue", nil, props.TypeFor[int32]()),
		props.Op("GetValue", props.TypeFor[int32]()),
		props.Op("SetRatio", nil, props.TypeFor[*float64]()),
		props.Op("GetRatio", props.TypeFor[*float64]()),
		props.Op("SetCount", nil, props.TypeFor[int]()),
	)
	ix := mustBuild(t, d)

	tests := []struct {
		name     string
		lookup   func(string, props.Type) (props.Operation, bool)
		property string
		expected props.Type
		want     string
	}{
		{"setter primitive from boxed", ix.Setter, "value", props.TypeFor[*int32](), "SetValue"},
		{"setter primitive from primitive", ix.Setter, "value", props.TypeFor[int32](), "SetValue"},
		{"setter boxed from primitive", ix.Setter, "ratio", props.TypeFor[float64](), "SetRatio"},
		{"getter primitive to boxed", ix.Getter, "value", props.TypeFor[*int32](), "GetValue"},
		{"getter boxed to primitive", ix.Getter, "ratio", props.TypeFor[float64](), "GetRatio"},
		{"other kind", ix.Setter, "value", props.TypeFor[*int64](), ""},
		{"int is not a primitive kind", ix.Setter, "count", props.TypeFor[*int](), ""},
		{"boxed to boxed other kind", ix.Getter, "ratio", props.TypeFor[*float32](), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := tt.lookup(tt.property, tt.expected)
			if tt.want == "" {
				assert.False(t, ok, op.String())
				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.want, op.Name)
		})
	}
}

func TestResolve_Assignability(t *testing.T) {
	d := props.MustDescriptor("", "Stream",
		props.Op("SetInput", nil, props.TypeFor[io.Reader]()),
		props.Op("SetBuffer", nil, props.TypeFor[*bytes.Buffer]()),
		props.Op("GetInput", props.TypeFor[*bytes.Buffer]()),
	)
	ix := mustBuild(t, d)

	// A *bytes.Buffer can be passed where an io.Reader is wanted.
	_, ok := ix.Setter("input", props.TypeFor[*bytes.Buffer]())
	assert.True(t, ok)

	// An io.Reader cannot be passed where a *bytes.Buffer is wanted.
	_, ok = ix.Setter("buffer", props.TypeFor[io.Reader]())
	assert.False(t, ok)

	// A getter returning *bytes.Buffer serves a caller expecting an io.Reader.
	_, ok = ix.Getter("input", props.TypeFor[io.Reader]())
	assert.True(t, ok)

	// But not one expecting an io.Closer.
	_, ok = ix.Getter("input", props.TypeFor[io.Closer]())
	assert.False(t, ok)
}

func TestResolve_VoidGetterNeverMatchesExpectedType(t *testing.T) {
	ix := mustBuild(t, props.MustDescriptor("", "Bean", props.Op("GetNothing", nil)))

	_, ok := ix.Getter("nothing", nil)
	assert.True(t, ok)

	_, ok = ix.Getter("nothing", props.TypeFor[any]())
	assert.False(t, ok)
}

func TestResolve_OverloadSelection(t *testing.T) {
	d := props.MustDescriptor("", "Bean",
		props.Op("SetValue", nil, props.TypeFor[int32]()),
		props.Op("SetValue", nil, props.TypeFor[string]()),
	)
	ix := mustBuild(t, d)

	op, ok := ix.Setter("value", props.TypeFor[string]())
	require.True(t, ok)
	assert.Equal(t, 1, op.Index)

	op, ok = ix.Setter("value", nil)
	require.True(t, ok)
	assert.Equal(t, 0, op.Index)

	op, ok = ix.Method("setvalue")
	require.True(t, ok)
	assert.Equal(t, 0, op.Index)

	_, ok = ix.Setter("value", props.TypeFor[[]byte]())
	assert.False(t, ok)
}

func TestResolve_LaxFallback(t *testing.T) {
	d := props.MustDescriptor("", "Bean",
		props.Op("getMyProp", props.TypeFor[string]()),
		props.Op("setMyProp", nil, props.TypeFor[string]()),
	)
	ix := mustBuild(t, d)

	want, ok := ix.Getter("myprop", nil)
	require.True(t, ok)

	for _, name := range []string{"my_prop", "MY_PROP", "_my__prop_"} {
		got, ok := ix.Getter(name, nil)
		require.True(t, ok, name)
		assert.Equal(t, want.Name, got.Name)

		got, ok = ix.Setter(name, props.TypeFor[string]())
		require.True(t, ok, name)
		assert.Equal(t, "setMyProp", got.Name)
	}

	// The lax retry also applies when candidates exist but none matches the type.
	d = props.MustDescriptor("", "Bean",
		props.Op("getA_b", props.TypeFor[string]()),
		props.Op("getAb", props.TypeFor[int64]()),
	)
	ix = mustBuild(t, d)

	op, ok := ix.Getter("a_b", props.TypeFor[int64]())
	require.True(t, ok)
	assert.Equal(t, "getAb", op.Name)

	// Methods are looked up exactly.
	_, ok = ix.Method("get_ab")
	assert.False(t, ok)
}

func TestResolve_Terminates(t *testing.T) {
	ix := mustBuild(t, props.MustDescriptor("", "Bean", props.Op("GetName", props.TypeFor[string]())))

	for _, name := range []string{"", "_", "____", "nope", "no_pe", strings.Repeat("_x", 1000)} {
		_, ok := ix.Getter(name, nil)
		assert.False(t, ok, name)
		_, ok = ix.Setter(name, props.TypeFor[string]())
		assert.False(t, ok, name)
	}
}

func TestResolve_DerivedProperty(t *testing.T) {
	ix, err := props.ForType[*layer]()
	require.NoError(t, err)

	op, ok := ix.Getter("prefixedname", props.TypeFor[string]())
	require.True(t, ok)
	assert.Equal(t, "PrefixedName", op.Name)

	out := op.Func.Call([]reflect.Value{reflect.ValueOf(&layer{name: "roads"})})
	assert.Equal(t, "topp:roads", out[0].String())
}
