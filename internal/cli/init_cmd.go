package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/envcomplete/internal/config"
	"github.com/NikitaCOEUR/envcomplete/internal/derrors"
)

// SampleConfigName is the file written by Init
const SampleConfigName = ".envcomplete.yml"

const sampleConfig = `# envcomplete configuration file
# Every key is optional; the values below are the defaults.

# Files in the workspace root whose name starts with this prefix are scanned
# prefix: .env

# Text inserted on completion (Go text/template with sprig functions)
# insert_template: process.env.{{ .Key }}

# Language ids that trigger completion
# languages:
#   - typescript
#   - typescriptreact
#   - javascript
#   - javascriptreact

# Line syntax: plain (KEY=VALUE split on the first '=') or dotenv (quotes, comments, export).
# With dotenv, a line that is not an assignment (a bare KEY) makes the whole file skipped;
# plain keeps such lines as keys with an empty value.
# syntax: plain

# Skip directories whose name matches the prefix
# skip_directories: false

# Detail shown next to each suggestion
# detail: env-type
`

// Init creates a sample config file in the workspace root
func Init(root string, w io.Writer) error {
	root, err := resolveRoot(root)
	if err != nil {
		return err
	}

	if existing := config.FindConfigFile(root); existing != "" {
		return derrors.NewAlreadyExistsError(existing, fmt.Sprintf("config file already exists: %s", existing))
	}

	configPath := filepath.Join(root, SampleConfigName)
	if err := os.WriteFile(configPath, []byte(sampleConfig), 0644); err != nil {
		return derrors.NewConfigurationError(configPath, "failed to write config file", err)
	}

	fmt.Fprintf(output(w), "Created sample config: %s\n", configPath)
	return nil
}
