package envfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	text, err := Decode([]byte("FOO=bär\n"))
	require.NoError(t, err)
	assert.Equal(t, "FOO=bär\n", text)
}

func TestDecode_StripsBOM(t *testing.T) {
	text, err := Decode([]byte("\xef\xbb\xbfFOO=bar"))
	require.NoError(t, err)
	assert.Equal(t, "FOO=bar", text)
}

func TestDecode_InvalidUTF8(t *testing.T) {
	text, err := Decode([]byte("API_URL=http://x\nGREETING=caf\xe9\nPORT=3000\n"))
	require.NoError(t, err)
	assert.Equal(t, "API_URL=http://x\nGREETING=caf\uFFFD\nPORT=3000\n", text)

	entries := ParseLines(text)
	require.Len(t, entries, 3)
	assert.Equal(t, "caf\uFFFD", entries[1].Value)
}

func TestDecode_Empty(t *testing.T) {
	text, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, text)
}
