package cli

import (
	"context"
	"fmt"

	"github.com/NikitaCOEUR/envcomplete/internal/status"
)

// Show displays the env files and variables envcomplete sees
func Show(ctx context.Context, params CommonParams) error {
	comps, err := initializeComponents(params)
	if err != nil {
		return err
	}

	data, err := status.Collect(ctx, comps.engine, comps.root, comps.configPath, comps.config)
	if err != nil {
		return fmt.Errorf("failed to collect status data: %w", err)
	}

	fmt.Fprintln(output(params.Out), status.Render(data))
	return nil
}
