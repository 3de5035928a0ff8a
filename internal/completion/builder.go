package completion

import (
	"errors"
	"strings"

	"github.com/NikitaCOEUR/envcomplete/internal/config"
	"github.com/NikitaCOEUR/envcomplete/internal/snippet"
)

// ErrEmptyKey is returned when asked to build a suggestion without a label
var ErrEmptyKey = errors.New("cannot build a suggestion for an empty key")

// Builder converts aggregated variables into suggestions
type Builder struct {
	insert *snippet.Template
	detail string
}

// NewBuilder compiles insertTemplate once for all suggestions it builds
func NewBuilder(insertTemplate, detail string) (*Builder, error) {
	tmpl, err := snippet.Compile(insertTemplate)
	if err != nil {
		return nil, err
	}
	return &Builder{insert: tmpl, detail: detail}, nil
}

// DefaultBuilder returns a builder inserting process.env.<KEY>
func DefaultBuilder() *Builder {
	return &Builder{
		insert: snippet.MustCompile(config.DefaultInsertTemplate),
		detail: config.DefaultDetail,
	}
}

// Build returns the suggestion for key. The documentation lists every
// provenance string, newline separated, in the order given.
func (b *Builder) Build(key string, provenance []string) (Suggestion, error) {
	if key == "" {
		return Suggestion{}, ErrEmptyKey
	}

	insertText, err := b.insert.Render(key)
	if err != nil {
		return Suggestion{}, err
	}

	return Suggestion{
		Label:         key,
		InsertText:    insertText,
		Documentation: strings.Join(provenance, "\n"),
		Detail:        b.detail,
		Kind:          KindEnumMember,
	}, nil
}
