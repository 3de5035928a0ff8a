package cli

import (
	"context"
	"io"
	"os"

	"github.com/NikitaCOEUR/envcomplete/internal/server"
)

// ServeParams contains parameters for the Serve command
type ServeParams struct {
	CommonParams
	In io.Reader // stdin when nil
}

// Serve answers JSON-lines completion requests until the input closes
func Serve(ctx context.Context, params ServeParams) error {
	comps, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}

	in := params.In
	if in == nil {
		in = os.Stdin
	}

	comps.log.Info().Str("root", comps.root).Msg("Serving completion requests")
	return server.New(comps.engine, comps.log).Serve(ctx, in, output(params.Out))
}
