// Package status collects and displays what envcomplete sees in a workspace.
package status

import (
	"context"
	"strings"

	"github.com/NikitaCOEUR/envcomplete/internal/completion"
	"github.com/NikitaCOEUR/envcomplete/internal/config"
	"github.com/NikitaCOEUR/envcomplete/pkg/version"
)

// Collect scans the workspace through engine and gathers display data
func Collect(ctx context.Context, engine *completion.Engine, root, configPath string, cfg *config.Config) (*Data, error) {
	data := &Data{
		Root:           root,
		Version:        version.Version,
		ConfigPath:     configPath,
		Prefix:         cfg.Prefix,
		Syntax:         cfg.Syntax,
		InsertTemplate: cfg.InsertTemplate,
		Languages:      cfg.Languages,
		Files:          make([]FileInfo, 0),
		Variables:      make([]VariableInfo, 0),
	}

	vars, result, err := engine.Collect(ctx)
	if err != nil {
		return nil, err
	}

	skipped := make(map[string]string, len(result.Skipped))
	for _, s := range result.Skipped {
		skipped[s.File] = s.Error
	}
	for _, name := range result.Files {
		errMsg, isSkipped := skipped[name]
		data.Files = append(data.Files, FileInfo{Name: name, Skipped: isSkipped, Error: errMsg})
	}

	for _, s := range engine.Suggestions(vars) {
		provenance, _ := vars.Get(s.Label)
		info := VariableInfo{Key: s.Label, InsertText: s.InsertText}
		for _, p := range provenance {
			info.Definitions = append(info.Definitions, compactProvenance(p))
		}
		data.Variables = append(data.Variables, info)
	}

	return data, nil
}

// compactProvenance turns "file: \nvalue\n" into "file: value"
func compactProvenance(p string) string {
	return strings.Replace(strings.TrimSuffix(p, "\n"), ": \n", ": ", 1)
}
