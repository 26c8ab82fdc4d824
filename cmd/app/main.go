// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/codeval/cmd/app/commands"
	eanUseCase "github.com/allisson/codeval/internal/ean/usecase"
	eicUseCase "github.com/allisson/codeval/internal/eic/usecase"
)

const version = "0.1.0"

func main() {
	cmd := &cli.Command{
		Name:    "codeval",
		Usage:   "EAN and EIC identifier validation and generation service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "validate-ean",
				Usage: "Validate an EAN code",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "code",
						Aliases:  []string{"c"},
						Required: true,
						Usage:    "EAN code to validate (display separators allowed)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunValidateEAN(
						ctx,
						eanUseCase.NewEANUseCase(),
						commands.DefaultIO(),
						cmd.String("code"),
						cmd.String("format"),
					)
				},
			},
			{
				Name:  "generate-ean",
				Usage: "Generate one or more EAN codes",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "base-code",
						Aliases: []string{"b"},
						Value:   "",
						Usage:   "Base code to compute the check digit for (omit for random)",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Value:   "EAN-13",
						Usage:   "EAN format: EAN-8, EAN-13, or EAN-14",
					},
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   1,
						Usage:   "Number of random codes to generate",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateEAN(
						ctx,
						eanUseCase.NewEANUseCase(),
						commands.DefaultIO(),
						cmd.String("base-code"),
						cmd.String("type"),
						cmd.Int("count"),
					)
				},
			},
			{
				Name:  "validate-eic",
				Usage: "Validate an EIC code",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "code",
						Aliases:  []string{"c"},
						Required: true,
						Usage:    "EIC code to validate (lowercase and separators allowed)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunValidateEIC(
						ctx,
						eicUseCase.NewEICUseCase(),
						commands.DefaultIO(),
						cmd.String("code"),
						cmd.String("format"),
					)
				},
			},
			{
				Name:  "generate-eic",
				Usage: "Generate one or more EIC codes",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "country-code",
						Aliases:  []string{"cc"},
						Required: true,
						Usage:    "Two character ENTSO-E issuing office code (e.g., 27)",
					},
					&cli.StringFlag{
						Name:     "entity-type",
						Aliases:  []string{"e"},
						Required: true,
						Usage:    "One character ENTSO-E object type (e.g., X)",
					},
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   1,
						Usage:   "Number of codes to generate",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateEIC(
						ctx,
						eicUseCase.NewEICUseCase(),
						commands.DefaultIO(),
						cmd.String("country-code"),
						cmd.String("entity-type"),
						cmd.Int("count"),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
