// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the extractor CLI. It reads an
// itinerary PDF and writes the per-city paragraphs and a text snippet as JSON.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/itinerary-extract/internal/cli"
	"github.com/pdiddy/itinerary-extract/internal/convert"
	"github.com/pdiddy/itinerary-extract/internal/extract"
)

// version is set at build time via ldflags.
var version = "dev"

const usageLine = "Usage: extractor <pdf-file>"

// newPageExtractor selects the PDF backend. Tests replace it with a fake.
var newPageExtractor = convert.New

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := cli.NewViper()

	cmd := &cobra.Command{
		Use:   "extractor <pdf-file>",
		Short: "Extract city paragraphs and raw text from an itinerary PDF",
		Long: `Extractor reads the text layer of a travel-itinerary PDF, splits it into
paragraphs on blank lines, and lists under each known city the paragraphs
that mention it. The first 6000 characters of the text are included as
text_snippet for the itinerary-parser.

The result is written to standard output as JSON.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return cli.Usage(usageLine, cli.ErrMissingArgument)
			case len(args) > 1:
				return cli.Usage(usageLine, fmt.Errorf("unexpected arguments %q", args[1:]))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			cfg, err := cli.LoadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			if err := cfg.Extractor.Validate(); err != nil {
				return fmt.Errorf("invalid extractor config: %w", err)
			}
			logger := cli.NewLogger(stderr, cfg.Verbose)

			pdfPath := args[0]
			if err := extract.CheckPDF(pdfPath); err != nil {
				return err
			}

			pages, err := newPageExtractor(cfg.Extractor, logger)
			if err != nil {
				return err
			}

			result, err := extract.Run(cmd.Context(), pages, pdfPath, cfg.Extractor)
			if err != nil {
				return err
			}

			matched := 0
			for _, cp := range result.ByCity {
				if len(cp.Paragraphs) > 0 {
					matched++
				}
			}
			logger.Debug("extraction complete",
				slog.String("pdf", pdfPath),
				slog.String("backend", string(cfg.Extractor.Backend)),
				slog.Int("cities_matched", matched),
				slog.Int("snippet_chars", len([]rune(result.TextSnippet))),
			)

			var buf bytes.Buffer
			if err := cli.Render(&buf, result, cfg.Format); err != nil {
				return err
			}
			_, err = stdout.Write(buf.Bytes())
			return err
		},
	}

	cmd.Flags().String("config", "", "config file (yaml) overriding the city table and defaults")
	cmd.Flags().String("format", "json", "output format: json or yaml")
	cmd.Flags().String("backend", "native", "PDF text backend: native or pdftotext")
	cmd.Flags().Int("snippet-length", 6000, "number of characters kept in text_snippet")
	cmd.Flags().BoolP("verbose", "v", false, "log progress and page decode failures to stderr")

	_ = v.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = v.BindPFlag("extractor.backend", cmd.Flags().Lookup("backend"))
	_ = v.BindPFlag("extractor.snippet_length", cmd.Flags().Lookup("snippet-length"))
	_ = v.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.Usage(usageLine, err)
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// classify maps extraction failures to their diagnostic tags.
func classify(err error) *cli.ExitError {
	switch {
	case errors.Is(err, extract.ErrPDFNotFound):
		return &cli.ExitError{Code: cli.ExitNotFound, Tag: "PDF_NOT_FOUND", Err: err}
	case errors.Is(err, convert.ErrBackendUnavailable):
		return &cli.ExitError{Code: cli.ExitFailure, Tag: "PDF_BACKEND_UNAVAILABLE", Err: err}
	case errors.Is(err, convert.ErrUnreadable):
		return &cli.ExitError{Code: cli.ExitFailure, Tag: "PDF_UNREADABLE", Err: err}
	}
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cli.Exit(cmd.ExecuteContext(ctx), stderr, classify)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
