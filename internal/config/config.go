// Package config handles loading and parsing of envcomplete configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/NikitaCOEUR/envcomplete/internal/derrors"
	"github.com/NikitaCOEUR/envcomplete/internal/envfile"
)

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	".envcomplete.yml",
	".envcomplete.yaml",
	".envcomplete.toml",
	".envcomplete.json",
}

const (
	// DefaultInsertTemplate renders the Node.js access expression for a key
	DefaultInsertTemplate = "process.env.{{ .Key }}"
	// DefaultDetail is the short detail string shown next to each suggestion
	DefaultDetail = "env-type"
)

// DefaultLanguages are the editor language ids that trigger completion
var DefaultLanguages = []string{"typescript", "typescriptreact", "javascript", "javascriptreact"}

// Config represents an envcomplete configuration
type Config struct {
	Prefix          string   `koanf:"prefix"`
	InsertTemplate  string   `koanf:"insert_template"`
	Languages       []string `koanf:"languages"`
	Syntax          string   `koanf:"syntax"`
	SkipDirectories bool     `koanf:"skip_directories"`
	Detail          string   `koanf:"detail"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Prefix == "" {
		c.Prefix = envfile.DefaultPrefix
	}
	if c.InsertTemplate == "" {
		c.InsertTemplate = DefaultInsertTemplate
	}
	if len(c.Languages) == 0 {
		c.Languages = append([]string(nil), DefaultLanguages...)
	}
	if c.Syntax == "" {
		c.Syntax = string(envfile.SyntaxPlain)
	}
	if c.Detail == "" {
		c.Detail = DefaultDetail
	}
}

// LocateOptions returns the env file filter described by the configuration.
// envcomplete's own config files are never treated as env files, although
// ".envcomplete.*" matches the default ".env" prefix.
func (c *Config) LocateOptions() envfile.LocateOptions {
	return envfile.LocateOptions{
		Prefix:          c.Prefix,
		SkipDirectories: c.SkipDirectories,
		Exclude:         SupportedConfigNames,
	}
}

// SupportsLanguage reports whether completion should trigger for language.
// An empty language id always triggers.
func (c *Config) SupportsLanguage(language string) bool {
	if language == "" {
		return true
	}
	for _, l := range c.Languages {
		if strings.EqualFold(l, language) {
			return true
		}
	}
	return false
}

// Loader handles loading and parsing configuration files
type Loader struct{}

// New creates a new config loader
func New() *Loader {
	return &Loader{}
}

// FindConfigFile returns the first supported config file in dir, or ""
func FindConfigFile(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// Load reads and parses a configuration file, filling unset keys with defaults
func (l *Loader) Load(path string) (*Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to load config", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to read config", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to parse config", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// LoadDir loads the config file found in dir. Without one it returns
// Default() and an empty path.
func (l *Loader) LoadDir(dir string) (*Config, string, error) {
	path := FindConfigFile(dir)
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := l.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
