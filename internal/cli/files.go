package cli

import (
	"context"
	"fmt"

	"github.com/NikitaCOEUR/envcomplete/internal/envfile"
	"github.com/NikitaCOEUR/envcomplete/internal/workspace"
)

// Files prints the env files found in the workspace root, one per line
func Files(ctx context.Context, params CommonParams) error {
	comps, err := initializeComponents(params)
	if err != nil {
		return err
	}

	names, err := envfile.Locate(ctx, workspace.NewDir(comps.root), comps.config.LocateOptions())
	if err != nil {
		return fmt.Errorf("failed to locate env files: %w", err)
	}

	out := output(params.Out)
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
