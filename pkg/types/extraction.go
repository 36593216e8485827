// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// CityParagraphs holds the paragraphs that mention one city, in source order.
type CityParagraphs struct {
	City       string
	Paragraphs []string
}

// ByCity maps city names to matching paragraphs. It is a slice rather than
// a Go map so that encoded output keeps city-table order and is byte-for-byte
// reproducible across runs.
type ByCity []CityParagraphs

// Get returns the paragraphs recorded for city, or nil when the city is absent.
func (b ByCity) Get(city string) []string {
	for _, cp := range b {
		if cp.City == city {
			return cp.Paragraphs
		}
	}
	return nil
}

// MarshalJSON encodes ByCity as a JSON object whose keys follow slice order.
func (b ByCity) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, cp := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(cp.City); err != nil {
			return nil, fmt.Errorf("encoding city %q: %w", cp.City, err)
		}
		buf.WriteByte(':')
		paras := cp.Paragraphs
		if paras == nil {
			paras = []string{}
		}
		if err := enc.Encode(paras); err != nil {
			return nil, fmt.Errorf("encoding paragraphs for %q: %w", cp.City, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders ByCity as a mapping node so YAML output keeps the
// same key order as JSON output.
func (b ByCity) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, cp := range b {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: cp.City}
		paras := cp.Paragraphs
		if paras == nil {
			paras = []string{}
		}
		val := &yaml.Node{}
		if err := val.Encode(paras); err != nil {
			return nil, fmt.Errorf("encoding paragraphs for %q: %w", cp.City, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// ExtractionResult is the document written by the extractor and read by the
// itinerary parser.
type ExtractionResult struct {
	// ByCity lists, per city, the paragraphs mentioning one of its aliases.
	ByCity ByCity `json:"by_city" yaml:"by_city"`

	// TextSnippet is the leading portion of the full extracted text.
	TextSnippet string `json:"text_snippet" yaml:"text_snippet"`
}
