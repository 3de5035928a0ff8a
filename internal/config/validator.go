package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/NikitaCOEUR/envcomplete/internal/envfile"
	"github.com/NikitaCOEUR/envcomplete/internal/snippet"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) add(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Validate runs the checks the JSON Schema cannot express
func Validate(path string) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg, err := New().Load(path)
	if err != nil {
		result.add("syntax", fmt.Sprintf("Failed to parse config: %v", err))
		return result, nil
	}

	ValidateConfig(cfg, result)
	return result, nil
}

// ValidateConfig checks an already loaded configuration and records problems in result
func ValidateConfig(cfg *Config, result *ValidationResult) {
	if strings.ContainsAny(cfg.Prefix, `/\`) {
		result.add("prefix", fmt.Sprintf("Prefix %q must be a file name, not a path", cfg.Prefix))
	}

	if !envfile.ValidSyntax(cfg.Syntax) {
		result.add("syntax", fmt.Sprintf("Unknown syntax %q (expected plain or dotenv)", cfg.Syntax))
	}

	tmpl, err := snippet.Compile(cfg.InsertTemplate)
	if err != nil {
		result.add("insert_template", err.Error())
	} else if _, err := tmpl.Render("EXAMPLE_KEY"); err != nil {
		result.add("insert_template", err.Error())
	}

	for i, lang := range cfg.Languages {
		if strings.TrimSpace(lang) == "" {
			result.add(fmt.Sprintf("languages/%d", i), "Language id is empty")
		}
	}
}
