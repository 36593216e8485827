// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/itinerary-extract/internal/container"
)

// PdftotextExtractor pipes the PDF through poppler's pdftotext inside a
// container. pdftotext separates pages with a form feed.
type PdftotextExtractor struct {
	runtime container.Runtime
	image   string
}

// NewPdftotextExtractor verifies that image exists in rt before returning.
func NewPdftotextExtractor(rt container.Runtime, image string) (*PdftotextExtractor, error) {
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("%w: pdftotext image not available in %s: %v", ErrBackendUnavailable, rt.Name(), err)
	}
	return &PdftotextExtractor{runtime: rt, image: image}, nil
}

// Pages runs pdftotext and splits its output on form feeds.
func (p *PdftotextExtractor) Pages(ctx context.Context, pdfPath string) ([]string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := p.runtime.Run(ctx, p.image, []string{"pdftotext", "-enc", "UTF-8", "-", "-"}, f, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, pdfPath, err)
	}
	return splitFormFeed(out.String()), nil
}

// splitFormFeed splits pdftotext output into pages. pdftotext terminates
// every page, including the last, with '\f'.
func splitFormFeed(s string) []string {
	s = strings.TrimSuffix(s, "\f")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\f")
}
