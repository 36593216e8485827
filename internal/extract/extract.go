// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns the page text of an itinerary PDF into paragraphs
// and groups the paragraphs by the cities they mention.
package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/itinerary-extract/internal/convert"
	"github.com/pdiddy/itinerary-extract/pkg/types"
)

// pageSeparator joins page texts so page boundaries become paragraph breaks.
const pageSeparator = "\n\n"

// ErrPDFNotFound is returned when the input PDF path does not exist.
var ErrPDFNotFound = errors.New("pdf not found")

// Run reads the PDF at pdfPath through pages and builds the extraction
// result: city paragraphs from the full text plus a leading text snippet.
func Run(ctx context.Context, pages convert.PageExtractor, pdfPath string, cfg types.ExtractorConfig) (types.ExtractionResult, error) {
	if err := CheckPDF(pdfPath); err != nil {
		return types.ExtractionResult{}, err
	}
	if pages == nil {
		return types.ExtractionResult{}, convert.ErrBackendUnavailable
	}

	texts, err := pages.Pages(ctx, pdfPath)
	if err != nil {
		return types.ExtractionResult{}, fmt.Errorf("extracting text from %s: %w", pdfPath, err)
	}

	return Build(JoinPages(texts), cfg.Cities, cfg.SnippetLength), nil
}

// CheckPDF returns ErrPDFNotFound when pdfPath does not exist.
func CheckPDF(pdfPath string) error {
	if _, err := os.Stat(pdfPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrPDFNotFound, pdfPath)
		}
		return fmt.Errorf("stat %s: %w", pdfPath, err)
	}
	return nil
}

// Build derives the extraction result from already-extracted text.
func Build(text string, cities types.CityTable, snippetLength int) types.ExtractionResult {
	return types.ExtractionResult{
		ByCity:      NewMatcher(cities).Match(SplitParagraphs(text)),
		TextSnippet: Snippet(text, snippetLength),
	}
}

// JoinPages concatenates page texts with a blank line between pages.
func JoinPages(pages []string) string {
	return strings.Join(pages, pageSeparator)
}

// Snippet returns the first n characters (not bytes) of text.
func Snippet(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}
	return text
}
