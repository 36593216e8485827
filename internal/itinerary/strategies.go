// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package itinerary

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/itinerary-extract/pkg/types"
)

// mojibake repairs UTF-8 text that was decoded as Windows-1252 somewhere
// between the PDF and us.
var mojibake = strings.NewReplacer(
	"Ã±", "ñ",
	"Ã‚", "Â",
)

func display(start, end string) string {
	if end == "" {
		return start
	}
	return start + " - " + end
}

// --- dated-line ---

// DatedLine matches lines that start with "DD/MM" or "DD/MM - DD/MM"
// followed by the stop name, which ends at the stop word (typically the
// hotel name that follows) or at end of line.
//
//	04/09 - 05/09 Viana do Castelo Hotel Laranjeira - Hotel 2 ★
type DatedLine struct {
	re *regexp.Regexp
}

// NewDatedLine builds the strategy. An empty stopWord means the city text
// always runs to end of line.
func NewDatedLine(stopWord string) *DatedLine {
	end := `$`
	if stopWord != "" {
		end = `(?:` + regexp.QuoteMeta(stopWord) + `|$)`
	}
	return &DatedLine{
		re: regexp.MustCompile(`(?m)^(\d{2}/\d{2})(?:\s*-\s*(\d{2}/\d{2}))?\s+(.+?)` + end),
	}
}

func (d *DatedLine) Name() string { return "dated-line" }

func (d *DatedLine) Match(text string) []types.Segment {
	var segs []types.Segment
	for _, m := range d.re.FindAllStringSubmatch(text, -1) {
		start, end := m[1], m[2]
		segs = append(segs, types.Segment{
			Start:   start,
			End:     end,
			City:    mojibake.Replace(trimCity(m[3])),
			Display: display(start, end),
		})
	}
	return segs
}

// trimCity strips surrounding whitespace and any trailing run of hyphens
// and commas left over from "City - Hotel" style lines.
func trimCity(s string) string {
	return strings.TrimRightFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '-' || r == ',' || unicode.IsSpace(r)
	})
}

// --- date-range ---

// DateRange matches "DD/MM - DD/MM City" anywhere in a line. The city is
// limited to Latin letters (including accented ones), spaces, apostrophes
// and hyphens. Both dates are required.
//
//	13/09 - 14/09 Padrón Hotel Rosalía
type DateRange struct {
	re *regexp.Regexp
}

// NewDateRange builds the strategy.
func NewDateRange() *DateRange {
	return &DateRange{
		re: regexp.MustCompile(`(\d{2}/\d{2})\s*-\s*(\d{2}/\d{2})\s+([A-Za-zÀ-ÖØ-öø-ÿ '\-]+)`),
	}
}

func (d *DateRange) Name() string { return "date-range" }

func (d *DateRange) Match(text string) []types.Segment {
	var segs []types.Segment
	for _, m := range d.re.FindAllStringSubmatch(text, -1) {
		segs = append(segs, types.Segment{
			Start:   m[1],
			End:     m[2],
			City:    strings.TrimSpace(m[3]),
			Display: display(m[1], m[2]),
		})
	}
	return segs
}

// --- route-header ---

// RouteHeader reads the first tour header of the form
//
//	UTR1: Geneva-Lausanne (01-Jan-2024 - 03-Jan-2024)
//
// and emits one segment per hyphen-separated route stop. Empty stops, as in
// "Zurich--Basel", are skipped rather than emitted with an empty city. All
// segments share the start date and display range, but only the last stop
// carries the end date; earlier stops get an empty end. The header gives no
// per-stop dates, so this is a best guess and is kept as-is.
type RouteHeader struct {
	re *regexp.Regexp
}

// NewRouteHeader builds the strategy.
func NewRouteHeader() *RouteHeader {
	return &RouteHeader{
		re: regexp.MustCompile(`UTR\d+:\s*(.+?)\s*\((\d{2}-[A-Za-z]{3}-\d{4})\s*-\s*(\d{2}-[A-Za-z]{3}-\d{4})\)`),
	}
}

func (r *RouteHeader) Name() string { return "route-header" }

func (r *RouteHeader) Match(text string) []types.Segment {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	start, end := m[2], m[3]

	var stops []string
	for _, part := range strings.Split(m[1], "-") {
		if part = strings.TrimSpace(part); part != "" {
			stops = append(stops, part)
		}
	}

	segs := make([]types.Segment, len(stops))
	for i, city := range stops {
		segEnd := ""
		if i == len(stops)-1 {
			segEnd = end
		}
		segs[i] = types.Segment{
			Start:   start,
			End:     segEnd,
			City:    city,
			Display: display(start, end),
		}
	}
	return segs
}
