package envfile

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode turns raw file bytes into UTF-8 text. A leading byte order mark is
// dropped and ill-formed sequences become U+FFFD, so one stray Latin-1 byte
// does not cost the rest of the file.
func Decode(data []byte) (string, error) {
	decoder := unicode.UTF8BOM.NewDecoder()
	text, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
	if err != nil {
		return "", err
	}
	return string(text), nil
}
