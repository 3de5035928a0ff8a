package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/NikitaCOEUR/envcomplete/internal/completion"
	"github.com/NikitaCOEUR/envcomplete/internal/trace"
)

// Output formats accepted by Complete
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	CommonParams
	Language  string
	Line      int
	Character int
	Format    string
}

// Complete runs a single completion request and prints the suggestions
func Complete(ctx context.Context, params CompleteParams) error {
	defer trace.Region(ctx, "cli.Complete")()

	comps, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}

	result := comps.engine.Complete(ctx, completion.Request{
		Language:  params.Language,
		Line:      params.Line,
		Character: params.Character,
	})

	return writeSuggestions(output(params.Out), params.Format, result.Suggestions)
}

func writeSuggestions(w io.Writer, format string, suggestions []completion.Suggestion) error {
	switch format {
	case "", FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestions)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(suggestions)
	case FormatText:
		for _, s := range suggestions {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", s.Label, s.InsertText); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected json, yaml or text)", format)
	}
}
