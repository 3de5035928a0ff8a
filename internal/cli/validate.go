package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/envcomplete/internal/config"
)

// ValidateParams contains parameters for the Validate command
type ValidateParams struct {
	ConfigPath string // looked up in Root when empty
	Root       string
	Out        io.Writer
}

// Validate validates an envcomplete configuration file
func Validate(params ValidateParams) error {
	out := output(params.Out)
	configPath := params.ConfigPath

	if configPath == "" {
		root, err := resolveRoot(params.Root)
		if err != nil {
			return err
		}
		configPath = config.FindConfigFile(root)
		if configPath == "" {
			return fmt.Errorf("no config file found in %s", root)
		}
	}

	fmt.Fprintf(out, "Validating: %s\n\n", configPath)

	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// JSON Schema first, then the checks it cannot express
	result, err := config.ValidateWithSchema(configPath, content)
	if err != nil {
		return err
	}

	if result.Valid {
		customResult, err := config.Validate(configPath)
		if err != nil {
			return err
		}
		if !customResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, customResult.Errors...)
		}
	}

	if result.Valid {
		fmt.Fprintln(out, "✅ Configuration is valid!")
		return nil
	}

	fmt.Fprintln(out, "❌ Configuration has errors:")
	for i, validationErr := range result.Errors {
		fmt.Fprintf(out, "%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}

	fmt.Fprintf(out, "\nFound %d error(s)\n", len(result.Errors))

	return fmt.Errorf("validation failed")
}
