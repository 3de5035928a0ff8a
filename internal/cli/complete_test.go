package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NikitaCOEUR/envcomplete/internal/completion"
)

func TestComplete_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ".env", "PORT=3000\nHOST=localhost\n")
	writeFile(t, tmpDir, ".env.local", "PORT=4000\n")

	var out bytes.Buffer
	err := Complete(context.Background(), CompleteParams{
		CommonParams: CommonParams{Root: tmpDir, LogLevel: "error", Out: &out},
		Language:     "typescript",
	})
	require.NoError(t, err)

	var suggestions []completion.Suggestion
	require.NoError(t, json.Unmarshal(out.Bytes(), &suggestions))
	require.Len(t, suggestions, 2)

	assert.Equal(t, "PORT", suggestions[0].Label)
	assert.Equal(t, "process.env.PORT", suggestions[0].InsertText)
	assert.Equal(t, ".env: \n3000\n\n.env.local: \n4000\n", suggestions[0].Documentation)
	assert.Equal(t, "HOST", suggestions[1].Label)
}

func TestComplete_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ".env", "API_KEY=abc\n")

	var out bytes.Buffer
	err := Complete(context.Background(), CompleteParams{
		CommonParams: CommonParams{Root: tmpDir, LogLevel: "error", Out: &out},
		Format:       FormatYAML,
	})
	require.NoError(t, err)

	var suggestions []completion.Suggestion
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &suggestions))
	require.Len(t, suggestions, 1)
	assert.Equal(t, "API_KEY", suggestions[0].Label)
	assert.Equal(t, "process.env.API_KEY", suggestions[0].InsertText)
}

func TestComplete_Text(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ".env", "A=1\nB=2\n")

	var out bytes.Buffer
	err := Complete(context.Background(), CompleteParams{
		CommonParams: CommonParams{Root: tmpDir, LogLevel: "error", Out: &out},
		Format:       FormatText,
	})
	require.NoError(t, err)
	assert.Equal(t, "A\tprocess.env.A\nB\tprocess.env.B\n", out.String())
}

func TestComplete_UnsupportedLanguage(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ".env", "A=1\n")

	var out bytes.Buffer
	err := Complete(context.Background(), CompleteParams{
		CommonParams: CommonParams{Root: tmpDir, LogLevel: "error", Out: &out},
		Language:     "python",
		Format:       FormatText,
	})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestComplete_NoEnvFiles(t *testing.T) {
	var out bytes.Buffer
	err := Complete(context.Background(), CompleteParams{
		CommonParams: CommonParams{Root: t.TempDir(), LogLevel: "error", Out: &out},
	})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out.String())
}

func TestComplete_UnknownFormat(t *testing.T) {
	err := Complete(context.Background(), CompleteParams{
		CommonParams: CommonParams{Root: t.TempDir(), LogLevel: "error", Out: &bytes.Buffer{}},
		Format:       "xml",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
