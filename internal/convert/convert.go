// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert pulls per-page plain text out of PDF files through
// pluggable backends: the pure-Go native reader and a pdftotext container.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pdiddy/itinerary-extract/internal/container"
	"github.com/pdiddy/itinerary-extract/pkg/types"
)

// ErrBackendUnavailable is returned when the selected PDF backend cannot run
// on this machine (no container runtime, missing image).
var ErrBackendUnavailable = errors.New("pdf backend unavailable")

// ErrUnreadable is returned when a file cannot be opened as a PDF at all.
var ErrUnreadable = errors.New("unreadable pdf")

// PageExtractor returns the plain text of every page of a PDF, in page
// order. A page that cannot be decoded is returned as an empty string; only
// document-level failures are reported as errors.
type PageExtractor interface {
	Pages(ctx context.Context, pdfPath string) ([]string, error)
}

// New builds the PageExtractor selected by cfg.Backend.
func New(cfg types.ExtractorConfig, logger *slog.Logger) (PageExtractor, error) {
	switch cfg.Backend {
	case types.BackendNative, "":
		return NewNativeExtractor(logger), nil
	case types.BackendPdftotext:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		return NewPdftotextExtractor(rt, cfg.PdftotextImage)
	default:
		return nil, fmt.Errorf("unsupported backend %q", cfg.Backend)
	}
}
