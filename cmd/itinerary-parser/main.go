// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the itinerary-parser CLI. It reads the
// extractor's JSON document and writes the recovered itinerary as JSON.
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
	"github.com/pdiddy/itinerary-extract/internal/itinerary"
)

// version is set at build time via ldflags.
var version = "dev"

const usageLine = "Usage: itinerary-parser <extracted_json>"

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	v := cli.NewViper()

	cmd := &cobra.Command{
		Use:   "itinerary-parser <extracted_json|->",
		Short: "Recover dated itinerary stops from extractor output",
		Long: `Itinerary-parser reads the text_snippet of an extractor JSON document and
recovers a list of {start, end, city, display} stops. Three patterns are
tried in order and the first one that matches anything is used:

  dated-line    lines starting with DD/MM or DD/MM - DD/MM, city up to "Hotel"
  date-range    DD/MM - DD/MM followed by a city name anywhere in a line
  route-header  a "UTRn: A-B-C (DD-Mmm-YYYY - DD-Mmm-YYYY)" tour header

Pass "-" to read the document from standard input.`,
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
			logger := cli.NewLogger(stderr, cfg.Verbose)

			text, err := itinerary.ReadSnippet(args[0], stdin)
			if err != nil {
				return err
			}

			result, used := itinerary.Parse(text, itinerary.DefaultStrategies(cfg.Parser)...)
			logger.Debug("itinerary parsed",
				slog.String("input", args[0]),
				slog.String("strategy", used),
				slog.Int("segments", len(result.Itinerary)),
			)

			var buf bytes.Buffer
			if err := cli.Render(&buf, result, cfg.Format); err != nil {
				return err
			}
			_, err = stdout.Write(buf.Bytes())
			return err
		},
	}

	cmd.Flags().String("config", "", "config file (yaml)")
	cmd.Flags().String("format", "json", "output format: json or yaml")
	cmd.Flags().String("stop-word", "Hotel", "word that ends the city on dated lines")
	cmd.Flags().BoolP("verbose", "v", false, "log the matching strategy to stderr")

	_ = v.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = v.BindPFlag("parser.stop_word", cmd.Flags().Lookup("stop-word"))
	_ = v.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.Usage(usageLine, err)
	})
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func classify(err error) *cli.ExitError {
	if errors.Is(err, itinerary.ErrMissingFile) {
		return &cli.ExitError{Code: cli.ExitNotFound, Tag: "MISSING_FILE", Err: err}
	}
	return nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	return cli.Exit(cmd.ExecuteContext(ctx), stderr, classify)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
