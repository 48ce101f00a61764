package recipe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"autotools", "cmake", "python", "kernel-module", "systemd"}, Names())
}

func TestIsValidKind(t *testing.T) {
	tests := []struct {
		name string
		kind string
		want bool
	}{
		{"autotools is valid", "autotools", true},
		{"cmake is valid", "cmake", true},
		{"python is valid", "python", true},
		{"kernel-module is valid", "kernel-module", true},
		{"systemd is valid", "systemd", true},
		{"bogus is invalid", "bogus", false},
		{"empty is invalid", "", false},
		{"CMAKE case-sensitive", "CMAKE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidKind(tt.kind))
		})
	}
}

func TestGet_UnknownKind(t *testing.T) {
	_, err := Default().Get("bogus")
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrUnknownKind))

	var unknown *UnknownKindError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "bogus", unknown.Kind)
	assert.Equal(t, Names(), unknown.Valid)
	assert.Contains(t, err.Error(), `"bogus"`)
	assert.Contains(t, err.Error(), "kernel-module")
}

func TestGet_BuiltinTemplates(t *testing.T) {
	for _, kind := range Default().Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			tmpl, err := Default().Get(kind.String())
			require.NoError(t, err)
			assert.Equal(t, kind, tmpl.Kind())
			assert.NotEmpty(t, tmpl.Description())
		})
	}
}

func TestFilenameRule(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Autotools, "myapp_1.0.bb"},
		{CMake, "myapp_1.0.bb"},
		{Python, "python3-myapp_1.0.bb"},
		{KernelModule, "myapp_1.0.bb"},
		{Systemd, "myapp_1.0.bb"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tmpl, err := Default().Get(tt.kind.String())
			require.NoError(t, err)
			assert.Equal(t, tt.want, tmpl.Filename("myapp", "1.0"))
		})
	}
}

type stubTemplate struct {
	kind Kind
}

func (s stubTemplate) Kind() Kind { return s.kind }
func (s stubTemplate) Description() string { return "stub" }
func (s stubTemplate) Filename(n, v string) string { return n + "-" + v + ".stub" }
func (s stubTemplate) Render(d Data) (string, error) { return "stub " + d.Name + "\n", nil }

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(stubTemplate{kind: "b"}))
	require.NoError(t, r.Register(stubTemplate{kind: "a"}))

	assert.Equal(t, []Kind{"b", "a"}, r.Kinds())
	assert.Equal(t, []string{"b", "a"}, r.Names())
	assert.Len(t, r.List(), 2)

	err := r.Register(stubTemplate{kind: "a"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_KindsReturnsCopy(t *testing.T) {
	r, err := BuiltinRegistry()
	require.NoError(t, err)

	kinds := r.Kinds()
	kinds[0] = "mutated"

	assert.Equal(t, Autotools, r.Kinds()[0])
}
