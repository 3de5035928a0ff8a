package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ".env", "PORT=3000\n")
	writeFile(t, tmpDir, ".env.production", "PORT=80\nDATABASE_URL=postgres://db\n")

	var out bytes.Buffer
	err := Show(context.Background(), CommonParams{Root: tmpDir, LogLevel: "error", Out: &out})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, ".env.production")
	assert.Contains(t, output, "PORT")
	assert.Contains(t, output, "DATABASE_URL")
	assert.Contains(t, output, "process.env.DATABASE_URL")
}

func TestShow_NoEnvFiles(t *testing.T) {
	var out bytes.Buffer
	err := Show(context.Background(), CommonParams{Root: t.TempDir(), LogLevel: "error", Out: &out})
	require.NoError(t, err)
	assert.NotEmpty(t, out.String())
}
