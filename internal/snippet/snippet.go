// Package snippet renders the text inserted for a completion suggestion.
// Templates use text/template syntax with the sprig function library, so a
// configuration can target other ecosystems:
//
//	process.env.{{ .Key }}
//	os.Getenv("{{ .Key }}")
//	ENV[{{ .Key | quote }}]
package snippet

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Data is the value a template is executed against
type Data struct {
	Key string
}

// Template is a compiled insert template
type Template struct {
	tmpl *template.Template
}

// Compile parses source. Missing fields are errors at render time.
func Compile(source string) (*Template, error) {
	tmpl, err := template.New("insert").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(source)
	if err != nil {
		return nil, fmt.Errorf("invalid insert template %q: %w", source, err)
	}
	return &Template{tmpl: tmpl}, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(source string) *Template {
	t, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return t
}

// Render executes the template for key
func (t *Template) Render(key string) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, Data{Key: key}); err != nil {
		return "", fmt.Errorf("failed to render insert template for %q: %w", key, err)
	}
	return buf.String(), nil
}
