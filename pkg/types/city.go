// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// City is one entry of the city table: a canonical name and the lowercase
// substrings that identify it in free text.
type City struct {
	// Name is the canonical city name used as the by_city key (e.g. "Geneva").
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Aliases lists lowercase substrings matched case-insensitively
	// (e.g. "geneva", "genève", "geneve").
	Aliases []string `json:"aliases" yaml:"aliases" mapstructure:"aliases"`
}

// CityTable is the ordered, read-only list of cities the extractor searches
// for. Table order determines by_city key order in the output.
type CityTable []City

// Names returns the canonical city names in table order.
func (t CityTable) Names() []string {
	names := make([]string, len(t))
	for i, c := range t {
		names[i] = c.Name
	}
	return names
}

// DefaultCityTable returns the built-in city table. Each call returns a fresh
// copy so callers cannot mutate a shared value.
func DefaultCityTable() CityTable {
	return CityTable{
		{Name: "Adelaide", Aliases: []string{"adelaide"}},
		{Name: "Doha", Aliases: []string{"doha"}},
		{Name: "Vienna", Aliases: []string{"vienna", "wien"}},
		{Name: "Salzburg", Aliases: []string{"salzburg"}},
		{Name: "Isen", Aliases: []string{"isen"}},
		{Name: "Tubingen", Aliases: []string{"tubingen", "tübingen"}},
		{Name: "Basel", Aliases: []string{"basel", "bâle"}},
		{Name: "Rabat", Aliases: []string{"rabat"}},
		{Name: "Geneva", Aliases: []string{"geneva", "genève", "geneve"}},
		{Name: "Lausanne", Aliases: []string{"lausanne"}},
		{Name: "Interlaken", Aliases: []string{"interlaken"}},
		{Name: "Zurich", Aliases: []string{"zurich", "zürich"}},
	}
}
