// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSnippetLength is the number of characters of extracted text kept in
// ExtractionResult.TextSnippet.
const DefaultSnippetLength = 6000

// DefaultStopWord ends the city text of a dated itinerary line.
const DefaultStopWord = "Hotel"

// DefaultPdftotextImage is the container image used by the pdftotext backend.
const DefaultPdftotextImage = "minidocks/poppler:latest"

// PDFBackend identifies the tool used to pull page text out of a PDF.
type PDFBackend string

const (
	BackendNative    PDFBackend = "native"
	BackendPdftotext PDFBackend = "pdftotext"
)

// OutputFormat selects how results are rendered on standard output.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ExtractorConfig holds settings for the extractor tool.
type ExtractorConfig struct {
	// SnippetLength is the number of leading characters kept as text_snippet (default 6000).
	SnippetLength int `json:"snippet_length" yaml:"snippet_length" mapstructure:"snippet_length"`

	// Backend selects the page text source: native or pdftotext.
	Backend PDFBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// PdftotextImage is the poppler image run by the pdftotext backend.
	PdftotextImage string `json:"pdftotext_image" yaml:"pdftotext_image" mapstructure:"pdftotext_image"`

	// Cities is the table searched in each paragraph.
	Cities CityTable `json:"cities" yaml:"cities" mapstructure:"cities"`
}

// Validate reports the first problem with the extractor settings.
func (c ExtractorConfig) Validate() error {
	if c.SnippetLength <= 0 {
		return fmt.Errorf("snippet_length must be positive, got %d", c.SnippetLength)
	}
	switch c.Backend {
	case BackendNative, BackendPdftotext:
	default:
		return fmt.Errorf("unsupported backend %q: use native or pdftotext", c.Backend)
	}
	if len(c.Cities) == 0 {
		return errors.New("city table is empty")
	}
	seen := make(map[string]bool, len(c.Cities))
	for _, city := range c.Cities {
		if strings.TrimSpace(city.Name) == "" {
			return errors.New("city with empty name")
		}
		if seen[city.Name] {
			return fmt.Errorf("duplicate city %q", city.Name)
		}
		seen[city.Name] = true
		if len(city.Aliases) == 0 {
			return fmt.Errorf("city %q has no aliases", city.Name)
		}
		for _, a := range city.Aliases {
			if strings.TrimSpace(a) == "" {
				return fmt.Errorf("city %q has an empty alias", city.Name)
			}
		}
	}
	return nil
}

// ParserConfig holds settings for the itinerary parser tool.
type ParserConfig struct {
	// StopWord ends the city text on dated itinerary lines (default "Hotel").
	StopWord string `json:"stop_word" yaml:"stop_word" mapstructure:"stop_word"`
}

// Config groups the settings of both tools as read from the config file.
type Config struct {
	Format    OutputFormat    `json:"format" yaml:"format" mapstructure:"format"`
	Verbose   bool            `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
	Extractor ExtractorConfig `json:"extractor" yaml:"extractor" mapstructure:"extractor"`
	Parser    ParserConfig    `json:"parser" yaml:"parser" mapstructure:"parser"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Format: OutputJSON,
		Extractor: ExtractorConfig{
			SnippetLength:  DefaultSnippetLength,
			Backend:        BackendNative,
			PdftotextImage: DefaultPdftotextImage,
			Cities:         DefaultCityTable(),
		},
		Parser: ParserConfig{
			StopWord: DefaultStopWord,
		},
	}
}
