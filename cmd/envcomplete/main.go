// Package main is the entry point for the envcomplete CLI application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	ecli "github.com/NikitaCOEUR/envcomplete/internal/cli"
	"github.com/NikitaCOEUR/envcomplete/internal/trace"
	"github.com/NikitaCOEUR/envcomplete/pkg/version"
)

func main() {
	stop := trace.Init()
	app := newApp(os.Stdin, os.Stdout)

	err := app.Run(context.Background(), os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(in io.Reader, out io.Writer) *cli.Command {
	common := func(cmd *cli.Command) ecli.CommonParams {
		return ecli.CommonParams{
			Root:     cmd.String("root"),
			LogLevel: cmd.String("log-level"),
			Out:      out,
		}
	}

	return &cli.Command{
		Name:                  "envcomplete",
		Usage:                 "Suggest environment variables from the .env files of a workspace",
		Version:               version.Version,
		EnableShellCompletion: true,
		Writer:                out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("ENVCOMPLETE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "root",
				Usage:   "Workspace root (defaults to the current directory)",
				Sources: cli.EnvVars("ENVCOMPLETE_ROOT"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "complete",
				Usage: "Print completion suggestions for one request",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "language",
						Aliases: []string{"l"},
						Usage:   "Language id of the document being edited",
					},
					&cli.IntFlag{
						Name:  "line",
						Usage: "Cursor line (accepted for protocol parity, unused)",
					},
					&cli.IntFlag{
						Name:  "character",
						Usage: "Cursor character (accepted for protocol parity, unused)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   ecli.FormatJSON,
						Usage:   "Output format: json, yaml or text",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return ecli.Complete(ctx, ecli.CompleteParams{
						CommonParams: common(cmd),
						Language:     cmd.String("language"),
						Line:         int(cmd.Int("line")),
						Character:    int(cmd.Int("character")),
						Format:       cmd.String("format"),
					})
				},
			},
			{
				Name:  "files",
				Usage: "List the env files found in the workspace root",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return ecli.Files(ctx, common(cmd))
				},
			},
			{
				Name:  "show",
				Usage: "Show env files, variables and where each value comes from",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return ecli.Show(ctx, common(cmd))
				},
			},
			{
				Name:  "serve",
				Usage: "Answer JSON-lines completion requests on stdin",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return ecli.Serve(ctx, ecli.ServeParams{
						CommonParams: common(cmd),
						In:           in,
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate an envcomplete configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := ""
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return ecli.Validate(ecli.ValidateParams{
						ConfigPath: configPath,
						Root:       cmd.String("root"),
						Out:        out,
					})
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for envcomplete configuration files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return ecli.Schema(outputPath, out)
				},
			},
			{
				Name:  "init",
				Usage: "Create a sample .envcomplete.yml in the workspace root",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return ecli.Init(cmd.String("root"), out)
				},
			},
		},
	}
}
