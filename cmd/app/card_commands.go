package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardgen/cmd/app/commands"
	"github.com/allisson/cardgen/internal/app"
	"github.com/allisson/cardgen/internal/cardgen/domain"
	"github.com/allisson/cardgen/internal/config"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// newCLIContainer builds a container that logs to stderr, keeping stdout for results.
func newCLIContainer() *app.Container {
	return app.NewContainerWithLogOutput(config.Load(), os.Stderr)
}

func getCardCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate unique checksum-valid card numbers into an export file",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "quantity",
					Aliases: []string{"q"},
					Value:   domain.DefaultQuantity,
					Usage:   "How many unique numbers to generate",
				},
				&cli.StringFlag{
					Name:    "prefix",
					Aliases: []string{"p"},
					Value:   domain.DefaultPrefix,
					Usage:   "Six-digit issuer prefix",
				},
				&cli.StringFlag{
					Name:  "expiry-month",
					Value: domain.DefaultExpiryMonth,
					Usage: "Two-digit expiry month (01-12)",
				},
				&cli.StringFlag{
					Name:  "expiry-year",
					Value: domain.DefaultExpiryYear,
					Usage: "Four-digit expiry year",
				},
				&cli.StringFlag{
					Name:  "cvv",
					Value: domain.DefaultCVV,
					Usage: "Three-digit CVV",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Export file path (defaults to GENERATOR_OUTPUT_FILE)",
				},
				&cli.StringFlag{
					Name:  "bucket",
					Usage: "Blob bucket URL to export to, e.g. file:///exports (defaults to GENERATOR_EXPORT_BUCKET_URL)",
				},
				&cli.BoolFlag{
					Name:  "progress",
					Value: true,
					Usage: "Report progress on stderr",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := newCLIContainer()
				defer func() { _ = container.Shutdown(ctx) }()

				cardUseCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				output := cmd.String("output")
				if output == "" {
					output = container.Config().GeneratorOutputFile
				}

				bucket := cmd.String("bucket")
				if bucket == "" {
					bucket = container.Config().GeneratorExportBucketURL
				}

				opts := commands.GenerateOptions{
					Input: domain.GenerateInput{
						Quantity:    int(cmd.Int("quantity")),
						Prefix:      cmd.String("prefix"),
						ExpiryMonth: cmd.String("expiry-month"),
						ExpiryYear:  cmd.String("expiry-year"),
						CVV:         cmd.String("cvv"),
					},
					OutputPath: output,
					BucketURL:  bucket,
					Format:     cmd.String("format"),
				}
				if cmd.Bool("progress") {
					opts.Progress = os.Stderr
				}

				return commands.RunGenerate(
					ctx,
					cardUseCase,
					container.BucketExporter(),
					container.Logger(),
					commands.DefaultIO().Writer,
					opts,
				)
			},
		},
		{
			Name:      "validate",
			Usage:     "Verify the checksum of numbers given as arguments or on stdin",
			ArgsUsage: "[number...]",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := newCLIContainer()
				defer func() { _ = container.Shutdown(ctx) }()

				cardUseCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					cardUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.Args().Slice(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "check-digit",
			Usage: "Compute the check digit completing a partial number",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "partial",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Digits preceding the check digit",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := newCLIContainer()
				defer func() { _ = container.Shutdown(ctx) }()

				cardUseCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunCheckDigit(
					ctx,
					cardUseCase,
					commands.DefaultIO().Writer,
					cmd.String("partial"),
					cmd.String("format"),
				)
			},
		},
	}
}
