// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/itinerary-extract/pkg/types"
)

// Matcher finds the paragraphs that mention each city of a table. It holds
// its own normalised copy of the table and is safe to reuse.
type Matcher struct {
	cities []matchCity
}

type matchCity struct {
	name    string
	aliases []string
}

// NewMatcher prepares table for matching. Aliases are lowercased and NFC
// normalised so "Zürich" typed with a combining diaeresis still matches.
func NewMatcher(table types.CityTable) *Matcher {
	m := &Matcher{cities: make([]matchCity, len(table))}
	for i, c := range table {
		aliases := make([]string, 0, len(c.Aliases))
		for _, a := range c.Aliases {
			aliases = append(aliases, fold(a))
		}
		m.cities[i] = matchCity{name: c.Name, aliases: aliases}
	}
	return m
}

// Match returns, for every city in table order, the paragraphs containing
// one of its aliases. Each paragraph is added at most once per city, in
// source order, with its original casing. Cities without matches get an
// empty, non-nil list.
func (m *Matcher) Match(paragraphs []string) types.ByCity {
	folded := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		folded[i] = fold(p)
	}

	out := make(types.ByCity, len(m.cities))
	for ci, city := range m.cities {
		matched := []string{}
		for pi, fp := range folded {
			for _, a := range city.aliases {
				if strings.Contains(fp, a) {
					matched = append(matched, paragraphs[pi])
					break
				}
			}
		}
		out[ci] = types.CityParagraphs{City: city.name, Paragraphs: matched}
	}
	return out
}

// MatchCities is a convenience wrapper around NewMatcher(table).Match.
func MatchCities(paragraphs []string, table types.CityTable) types.ByCity {
	return NewMatcher(table).Match(paragraphs)
}

func fold(s string) string {
	return norm.NFC.String(strings.ToLower(s))
}
