package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/envcomplete/internal/config"
)

// Schema displays or exports the JSON Schema for envcomplete configuration files
func Schema(outputPath string, w io.Writer) error {
	out := output(w)
	schemaJSON := config.GetSchemaJSON()

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(schemaJSON), 0644); err != nil {
			return fmt.Errorf("failed to write schema to %s: %w", outputPath, err)
		}
		fmt.Fprintf(out, "JSON Schema written to: %s\n", outputPath)
		return nil
	}

	fmt.Fprintln(out, schemaJSON)
	return nil
}
