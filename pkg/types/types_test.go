// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestByCityJSONKeepsOrder(t *testing.T) {
	b := ByCity{
		{City: "Zurich", Paragraphs: []string{"Zürich <HB> & lake"}},
		{City: "Adelaide"},
	}
	data, err := json.Marshal(ExtractionResult{ByCity: b, TextSnippet: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"by_city":{"Zurich":["Zürich <HB> & lake"],"Adelaide":[]},"text_snippet":"x"}`, string(data))
	assert.Less(t, indexOf(string(data), `"Zurich"`), indexOf(string(data), `"Adelaide"`))
}

func TestByCityYAMLKeepsOrder(t *testing.T) {
	b := ByCity{
		{City: "Zurich", Paragraphs: []string{"HB"}},
		{City: "Adelaide"},
	}
	data, err := yaml.Marshal(ExtractionResult{ByCity: b})
	require.NoError(t, err)

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &node))
	byCity := node.Content[0].Content[1]
	require.Len(t, byCity.Content, 4)
	assert.Equal(t, "Zurich", byCity.Content[0].Value)
	assert.Equal(t, "Adelaide", byCity.Content[2].Value)
	assert.Empty(t, byCity.Content[3].Content)
}

func TestByCityGet(t *testing.T) {
	b := ByCity{{City: "Doha", Paragraphs: []string{"p"}}}
	assert.Equal(t, []string{"p"}, b.Get("Doha"))
	assert.Nil(t, b.Get("Rabat"))
}

func TestDefaultCityTable(t *testing.T) {
	table := DefaultCityTable()
	assert.Equal(t, []string{
		"Adelaide", "Doha", "Vienna", "Salzburg", "Isen", "Tubingen",
		"Basel", "Rabat", "Geneva", "Lausanne", "Interlaken", "Zurich",
	}, table.Names())

	table[0].Aliases[0] = "changed"
	assert.Equal(t, "adelaide", DefaultCityTable()[0].Aliases[0], "each call returns a fresh table")
}

func TestExtractorConfigValidate(t *testing.T) {
	valid := DefaultConfig().Extractor
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*ExtractorConfig)
		errMsg string
	}{
		{"zero snippet", func(c *ExtractorConfig) { c.SnippetLength = 0 }, "snippet_length"},
		{"unknown backend", func(c *ExtractorConfig) { c.Backend = "ocr" }, "unsupported backend"},
		{"empty table", func(c *ExtractorConfig) { c.Cities = nil }, "empty"},
		{"blank name", func(c *ExtractorConfig) { c.Cities = CityTable{{Name: " ", Aliases: []string{"x"}}} }, "empty name"},
		{"duplicate", func(c *ExtractorConfig) {
			c.Cities = CityTable{{Name: "A", Aliases: []string{"a"}}, {Name: "A", Aliases: []string{"b"}}}
		}, "duplicate"},
		{"no aliases", func(c *ExtractorConfig) { c.Cities = CityTable{{Name: "A"}} }, "no aliases"},
		{"blank alias", func(c *ExtractorConfig) { c.Cities = CityTable{{Name: "A", Aliases: []string{""}}} }, "empty alias"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig().Extractor
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
