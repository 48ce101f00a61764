package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".recipegen"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".recipegen", "config.yaml"), paths.ConfigFile)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"absolute untouched", "/etc/recipegen.yaml", "/etc/recipegen.yaml"},
		{"relative untouched", "recipes", "recipes"},
		{"tilde alone", "~", home},
		{"tilde path", "~/layers/meta-custom", filepath.Join(home, "layers", "meta-custom")},
		{"tilde user unsupported", "~bob/x", "~bob/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	exists, err := FileExists(file)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = FileExists(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = FileExists(dir)
	require.NoError(t, err)
	assert.False(t, exists, "directories are not config files")
}
