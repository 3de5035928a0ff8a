//go:build ignore

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// SchemaConfig mirrors config.Config with schema annotations
type SchemaConfig struct {
	Prefix          string   `json:"prefix,omitempty" jsonschema:"minLength=1,default=.env,description=File name prefix that marks an env file in the workspace root"`
	InsertTemplate  string   `json:"insert_template,omitempty" jsonschema:"minLength=1,description=Go text/template (with sprig functions) rendering the inserted text; .Key is the variable name"`
	Languages       []string `json:"languages,omitempty" jsonschema:"minItems=1,description=Editor language ids that trigger completion"`
	Syntax          string   `json:"syntax,omitempty" jsonschema:"enum=plain,enum=dotenv,default=plain,description=Line grammar: plain KEY=VALUE split or full dotenv syntax"`
	SkipDirectories bool     `json:"skip_directories,omitempty" jsonschema:"default=false,description=If true directories whose name matches the prefix are not treated as env files"`
	Detail          string   `json:"detail,omitempty" jsonschema:"default=env-type,description=Short detail text shown next to each suggestion"`
}

func main() {
	r := &jsonschema.Reflector{
		DoNotReference:             true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}

	schema := r.Reflect(&SchemaConfig{})

	// Use draft-07 for IDE compatibility
	schema.Version = "http://json-schema.org/draft-07/schema#"
	schema.ID = "https://raw.githubusercontent.com/NikitaCOEUR/envcomplete/main/schema/envcomplete.schema.json"
	schema.Title = "envcomplete Configuration"
	schema.Description = "Configuration file for envcomplete - environment variable completion from .env files"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling schema: %v\n", err)
		os.Exit(1)
	}

	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Schema generated: %s\n", outputPath)
}
