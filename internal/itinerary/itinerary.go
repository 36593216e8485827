// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package itinerary recovers dated itinerary segments from the text snippet
// of an extraction result. Matching is a fixed chain of regular-expression
// strategies; the first strategy that finds anything wins.
package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/itinerary-extract/pkg/types"
)

// StdinPath makes ReadSnippet read the document from standard input.
const StdinPath = "-"

// ErrMissingFile is returned when the extraction document does not exist.
var ErrMissingFile = errors.New("extraction file not found")

// Strategy is one matching pass over the snippet text.
type Strategy interface {
	// Name identifies the strategy in logs (e.g. "dated-line").
	Name() string

	// Match returns the segments found in text, or nil when none.
	Match(text string) []types.Segment
}

// DefaultStrategies returns the matching chain in priority order: dated
// lines, then bare date ranges, then the route header.
func DefaultStrategies(cfg types.ParserConfig) []Strategy {
	return []Strategy{
		NewDatedLine(cfg.StopWord),
		NewDateRange(),
		NewRouteHeader(),
	}
}

// Parse runs strategies in order and returns the segments of the first one
// that matches. Results of different strategies are never merged. The
// returned name is empty when nothing matched.
func Parse(text string, strategies ...Strategy) (types.ItineraryResult, string) {
	for _, s := range strategies {
		if segs := s.Match(text); len(segs) > 0 {
			return types.ItineraryResult{Itinerary: segs}, s.Name()
		}
	}
	return types.ItineraryResult{Itinerary: []types.Segment{}}, ""
}

// snippetDoc is the part of an extraction document the parser reads. Other
// fields are ignored so a hand-edited by_city cannot break parsing.
type snippetDoc struct {
	TextSnippet string `json:"text_snippet"`
}

// ReadSnippet loads an extraction document and returns its text_snippet.
// A document without the field yields "".
func ReadSnippet(path string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if path == StdinPath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
	}
	if err != nil {
		return "", fmt.Errorf("reading extraction %s: %w", path, err)
	}

	var doc snippetDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("parsing extraction %s: %w", path, err)
	}
	return doc.TextSnippet, nil
}
