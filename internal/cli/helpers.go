// Package cli implements the envcomplete commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/envcomplete/internal/completion"
	"github.com/NikitaCOEUR/envcomplete/internal/config"
	"github.com/NikitaCOEUR/envcomplete/internal/logger"
	"github.com/NikitaCOEUR/envcomplete/internal/workspace"
)

// CommonParams are shared by every command that reads a workspace
type CommonParams struct {
	Root     string // workspace root; current directory when empty
	LogLevel string
	Out      io.Writer // stdout when nil
}

// components holds initialized envcomplete components
type components struct {
	root       string
	configPath string
	config     *config.Config
	engine     *completion.Engine
	log        *logger.Logger
}

// resolveRoot defaults the workspace root to the current directory
func resolveRoot(root string) (string, error) {
	if root != "" {
		return root, nil
	}
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return currentDir, nil
}

// initializeComponents loads the workspace config and builds the engine.
// A broken config file is logged and replaced by defaults so completion
// keeps working; `envcomplete validate` reports the details.
func initializeComponents(params CommonParams) (*components, error) {
	log := logger.New(params.LogLevel, os.Stderr)

	root, err := resolveRoot(params.Root)
	if err != nil {
		return nil, err
	}

	cfg, configPath, err := config.New().LoadDir(root)
	if err != nil {
		log.Warn().Str("path", configPath).Err(err).Msg("Ignoring invalid config, using defaults")
		cfg = config.Default()
	}

	engine, err := completion.NewEngine(workspace.NewDir(root), cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid insert template, using defaults")
		cfg = config.Default()
		engine, err = completion.NewEngine(workspace.NewDir(root), cfg, log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize completion engine: %w", err)
		}
	}

	log.Debug().
		Str("root", root).
		Str("config", configPath).
		Bool("defaults", configPath == "").
		Msg("Components initialized")

	return &components{
		root:       root,
		configPath: configPath,
		config:     cfg,
		engine:     engine,
		log:        log,
	}, nil
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
