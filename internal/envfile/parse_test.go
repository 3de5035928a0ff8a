package envfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Entry
	}{
		{
			name: "simple pairs",
			text: "FOO=bar\nBAZ=qux\n",
			want: []Entry{
				{Key: "FOO", Value: "bar", HasValue: true},
				{Key: "BAZ", Value: "qux", HasValue: true},
			},
		},
		{
			name: "blank lines only",
			text: "\n\n\n",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "value keeps everything after first equals",
			text: "KEY=a=b",
			want: []Entry{{Key: "KEY", Value: "a=b", HasValue: true}},
		},
		{
			name: "empty value",
			text: "EMPTY=",
			want: []Entry{{Key: "EMPTY", Value: "", HasValue: true}},
		},
		{
			name: "line without equals",
			text: "NOEQUALS",
			want: []Entry{{Key: "NOEQUALS", Value: "", HasValue: false}},
		},
		{
			name: "crlf line endings",
			text: "A=1\r\nB=2\r\n",
			want: []Entry{
				{Key: "A", Value: "1", HasValue: true},
				{Key: "B", Value: "2", HasValue: true},
			},
		},
		{
			name: "whitespace is preserved",
			text: " KEY = value ",
			want: []Entry{{Key: " KEY ", Value: " value ", HasValue: true}},
		},
		{
			name: "comments are not special",
			text: "# comment",
			want: []Entry{{Key: "# comment", Value: "", HasValue: false}},
		},
		{
			name: "order preserved",
			text: "Z=1\nA=2\nM=3",
			want: []Entry{
				{Key: "Z", Value: "1", HasValue: true},
				{Key: "A", Value: "2", HasValue: true},
				{Key: "M", Value: "3", HasValue: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLines(tt.text))
		})
	}
}

func TestParseDotenv(t *testing.T) {
	text := `# database settings
export DB_HOST=localhost
DB_PASS="s3cr=t"
API_URL='https://example.com/?a=b'
`
	entries, err := ParseDotenv(text)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Key: "DB_HOST", Value: "localhost", HasValue: true},
		{Key: "DB_PASS", Value: "s3cr=t", HasValue: true},
		{Key: "API_URL", Value: "https://example.com/?a=b", HasValue: true},
	}, entries)
}

func TestParseDotenv_FileOrder(t *testing.T) {
	entries, err := ParseDotenv("ZETA=1\nALPHA=2\nMID=3\nALPHA=4\n")
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Key: "ZETA", Value: "1", HasValue: true},
		{Key: "ALPHA", Value: "4", HasValue: true},
		{Key: "MID", Value: "3", HasValue: true},
	}, entries)
}

func TestParseDotenv_ColonForm(t *testing.T) {
	entries, err := ParseDotenv("B=1\nA: 2\n")
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Key: "B", Value: "1", HasValue: true},
		{Key: "A", Value: "2", HasValue: true},
	}, entries)
}

func TestParseDotenv_BareLineFails(t *testing.T) {
	_, err := ParseDotenv("A=1\nLONELY\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dotenv syntax")
}

func TestParse_Dispatch(t *testing.T) {
	text := "# note\nA=1\n"

	plain, err := Parse(text, SyntaxPlain)
	require.NoError(t, err)
	assert.Len(t, plain, 2)

	dotenv, err := Parse(text, SyntaxDotenv)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Key: "A", Value: "1", HasValue: true}}, dotenv)

	fallback, err := Parse(text, Syntax("unknown"))
	require.NoError(t, err)
	assert.Equal(t, plain, fallback)
}

func TestValidSyntax(t *testing.T) {
	assert.True(t, ValidSyntax("plain"))
	assert.True(t, ValidSyntax("dotenv"))
	assert.False(t, ValidSyntax(""))
	assert.False(t, ValidSyntax("ini"))
}
