package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaJSON(t *testing.T) {
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(GetSchemaJSON()), &schema))

	assert.Equal(t, "object", schema["type"])
	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"prefix", "insert_template", "languages", "syntax", "skip_directories", "detail"} {
		assert.Contains(t, props, key)
	}
}

func TestValidateWithSchema(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		valid   bool
		field   string
	}{
		{
			name:    "valid yaml",
			path:    "test.yml",
			content: "prefix: .env\nsyntax: dotenv\nlanguages: [typescript]\n",
			valid:   true,
		},
		{
			name:    "valid yaml extension",
			path:    "test.yaml",
			content: "skip_directories: true\n",
			valid:   true,
		},
		{
			name:    "empty yaml document",
			path:    "test.yml",
			content: "",
			valid:   true,
		},
		{
			name:    "valid json",
			path:    "test.json",
			content: `{"insert_template": "process.env.{{ .Key }}"}`,
			valid:   true,
		},
		{
			name:    "valid toml",
			path:    "test.toml",
			content: "syntax = \"plain\"\nlanguages = [\"go\"]\n",
			valid:   true,
		},
		{
			name:    "unknown syntax",
			path:    "test.yml",
			content: "syntax: ini\n",
			valid:   false,
			field:   "syntax",
		},
		{
			name:    "unknown key",
			path:    "test.yml",
			content: "aliases:\n  ll: ls -la\n",
			valid:   false,
			field:   "(root)",
		},
		{
			name:    "empty prefix",
			path:    "test.json",
			content: `{"prefix": ""}`,
			valid:   false,
			field:   "prefix",
		},
		{
			name:    "languages must be a list",
			path:    "test.yml",
			content: "languages: typescript\n",
			valid:   false,
			field:   "languages",
		},
		{
			name:    "invalid json syntax",
			path:    "test.json",
			content: `{invalid json`,
			valid:   false,
			field:   "syntax",
		},
		{
			name:    "invalid toml syntax",
			path:    "test.toml",
			content: "prefix = ",
			valid:   false,
			field:   "syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateWithSchema(tt.path, []byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid, "%+v", result.Errors)
			if tt.valid {
				assert.Empty(t, result.Errors)
				return
			}
			require.NotEmpty(t, result.Errors)
			assert.Equal(t, tt.field, result.Errors[0].Field)
		})
	}
}

func TestValidateWithSchema_UnsupportedFormat(t *testing.T) {
	_, err := ValidateWithSchema("test.ini", []byte("prefix=.env"))
	assert.Error(t, err)
}
