package envfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/NikitaCOEUR/envcomplete/internal/derrors"
	"github.com/NikitaCOEUR/envcomplete/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{".env", true},
		{".env.local", true},
		{".environment", true},
		{".env-backup", true},
		{".ENV", false},
		{"env", false},
		{"prod.env", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.name, DefaultPrefix))
		})
	}
}

func TestFilter(t *testing.T) {
	entries := []workspace.Entry{
		{Name: ".env.local"},
		{Name: "main.ts"},
		{Name: ".env-backup", IsDir: true},
		{Name: ".env"},
		{Name: "node_modules", IsDir: true},
	}

	t.Run("directories kept by default", func(t *testing.T) {
		assert.Equal(t, []string{".env.local", ".env-backup", ".env"}, Filter(entries, LocateOptions{}))
	})

	t.Run("skip directories", func(t *testing.T) {
		assert.Equal(t, []string{".env.local", ".env"}, Filter(entries, LocateOptions{SkipDirectories: true}))
	})

	t.Run("custom prefix", func(t *testing.T) {
		assert.Equal(t, []string{"main.ts"}, Filter(entries, LocateOptions{Prefix: "main"}))
	})

	t.Run("excluded names", func(t *testing.T) {
		opts := LocateOptions{Exclude: []string{".env.local"}}
		assert.Equal(t, []string{".env-backup", ".env"}, Filter(entries, opts))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Filter([]workspace.Entry{{Name: "README.md"}}, LocateOptions{}))
	})
}

func TestLocate(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{".env", ".env.local", "package.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("A=1\n"), 0644))
	}

	names, err := Locate(context.Background(), workspace.NewDir(tmpDir), LocateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{".env", ".env.local"}, names)
}

func TestLocate_NoWorkspace(t *testing.T) {
	_, err := Locate(context.Background(), workspace.NewDir(""), LocateOptions{})
	require.Error(t, err)
	assert.True(t, derrors.IsNoWorkspace(err))
}
