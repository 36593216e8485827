// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

// document is the subset of a parsed PDF the native extractor needs.
type document interface {
	NumPage() int
	PageText(n int) (string, error)
	io.Closer
}

// opener opens a PDF for page-by-page reading.
type opener func(path string) (document, error)

// NativeExtractor reads the embedded text layer with github.com/ledongthuc/pdf.
// Scanned, image-only pages come back empty.
type NativeExtractor struct {
	open   opener
	logger *slog.Logger
}

// NewNativeExtractor returns the pure-Go page extractor.
func NewNativeExtractor(logger *slog.Logger) *NativeExtractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &NativeExtractor{open: openLedongthuc, logger: logger}
}

// Pages returns the text of each page. A page whose decoding fails or
// panics inside the PDF library is logged and returned as "".
func (n *NativeExtractor) Pages(ctx context.Context, pdfPath string) ([]string, error) {
	doc, err := safeOpen(n.open, pdfPath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	count := doc.NumPage()
	pages := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := safePageText(doc, i)
		if err != nil {
			n.logger.Debug("page decode failed, using empty text",
				slog.String("pdf", pdfPath),
				slog.Int("page", i),
				slog.Any("error", err),
			)
			text = ""
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func safeOpen(open opener, path string) (doc document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, r)
		}
	}()
	doc, err = open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return doc, nil
}

func safePageText(doc document, n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("page %d: panic: %v", n, r)
		}
	}()
	return doc.PageText(n)
}

// ledongthucDoc adapts *pdf.Reader to document, caching fonts across pages.
type ledongthucDoc struct {
	closer io.Closer
	reader *pdf.Reader
	fonts  map[string]*pdf.Font
}

func openLedongthuc(path string) (document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return &ledongthucDoc{closer: f, reader: r, fonts: make(map[string]*pdf.Font)}, nil
}

func (d *ledongthucDoc) NumPage() int { return d.reader.NumPage() }

// PageText lays the page out from glyph positions. GetPlainText only breaks
// lines on T* and quote operators, so it is used only when the positioned
// content yields nothing.
func (d *ledongthucDoc) PageText(n int) (string, error) {
	p := d.reader.Page(n)
	if p.V.IsNull() {
		return "", nil
	}
	if text, ok := positionedText(p); ok && strings.TrimSpace(text) != "" {
		return text, nil
	}
	for _, name := range p.Fonts() {
		if _, ok := d.fonts[name]; !ok {
			f := p.Font(name)
			d.fonts[name] = &f
		}
	}
	return p.GetPlainText(d.fonts)
}

func positionedText(p pdf.Page) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()
	return layoutText(p.Content().Text), true
}

// Layout thresholds, as fractions of the font size.
const (
	sameLineTolerance = 0.5
	paragraphGap      = 1.5
	wordGap           = 0.25
)

// layoutText rebuilds lines from glyphs in content-stream order. A change of
// baseline starts a new line; a drop of more than paragraphGap line heights
// leaves a blank line. A horizontal jump wider than wordGap inserts a space.
func layoutText(glyphs []pdf.Text) string {
	var b strings.Builder
	var (
		started    bool
		prevY      float64
		prevEnd    float64
		prevSpace  bool
		lineStart  = true
		lineHeight float64
	)
	for _, g := range glyphs {
		if g.S == "" || g.S == "\n" {
			continue
		}
		size := math.Max(g.FontSize, 1)
		space := strings.TrimSpace(g.S) == ""

		if started {
			dy := prevY - g.Y
			switch {
			case math.Abs(dy) > sameLineTolerance*math.Max(size, lineHeight):
				if dy > paragraphGap*lineHeight {
					b.WriteString("\n\n")
				} else {
					b.WriteByte('\n')
				}
				lineHeight = 0
				lineStart = true
			case !lineStart && !prevSpace && !space && g.X-prevEnd > wordGap*size:
				b.WriteByte(' ')
			}
		}

		prevY = g.Y
		if space && lineStart {
			continue
		}
		b.WriteString(g.S)
		started = true
		lineStart = false
		prevEnd = g.X + g.W
		prevSpace = space
		lineHeight = math.Max(lineHeight, size)
	}
	return b.String()
}

func (d *ledongthucDoc) Close() error { return d.closer.Close() }
