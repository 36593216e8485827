// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package itinerary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/itinerary-extract/pkg/types"
)

func defaultChain() []Strategy {
	return DefaultStrategies(types.ParserConfig{StopWord: types.DefaultStopWord})
}

func TestDatedLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []types.Segment
	}{
		{
			name: "range with hotel",
			text: "04/09 - 05/09 Vienna Hotel Example",
			want: []types.Segment{{Start: "04/09", End: "05/09", City: "Vienna", Display: "04/09 - 05/09"}},
		},
		{
			name: "multi-word city and trailing hyphen",
			text: "04/09 - 05/09 Viana do Castelo - Hotel Laranjeira - Hotel 2 ★",
			want: []types.Segment{{Start: "04/09", End: "05/09", City: "Viana do Castelo", Display: "04/09 - 05/09"}},
		},
		{
			name: "single date to end of line",
			text: "07/09 Porto,",
			want: []types.Segment{{Start: "07/09", End: "", City: "Porto", Display: "07/09"}},
		},
		{
			name: "compact range",
			text: "10/09-12/09 Santiago de Compostela",
			want: []types.Segment{{Start: "10/09", End: "12/09", City: "Santiago de Compostela", Display: "10/09 - 12/09"}},
		},
		{
			name: "mojibake repaired",
			text: "13/09 - 14/09 La CoruÃ±a Hotel Riazor",
			want: []types.Segment{{Start: "13/09", End: "14/09", City: "La Coruña", Display: "13/09 - 14/09"}},
		},
		{
			name: "several lines in order",
			text: "Itinerary\n04/09 - 05/09 Vienna Hotel A\nnotes\n05/09 - 07/09 Salzburg Hotel B",
			want: []types.Segment{
				{Start: "04/09", End: "05/09", City: "Vienna", Display: "04/09 - 05/09"},
				{Start: "05/09", End: "07/09", City: "Salzburg", Display: "05/09 - 07/09"},
			},
		},
		{
			name: "date not at line start",
			text: "Stay 04/09 - 05/09 Vienna",
			want: nil,
		},
	}
	s := NewDatedLine(types.DefaultStopWord)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Match(tt.text))
		})
	}
}

func TestDatedLineCustomStopWord(t *testing.T) {
	s := NewDatedLine("Pousada")
	got := s.Match("04/09 - 05/09 Óbidos Pousada do Castelo")
	require.Len(t, got, 1)
	assert.Equal(t, "Óbidos", got[0].City)

	got = NewDatedLine("").Match("04/09 Vienna Hotel Example")
	require.Len(t, got, 1)
	assert.Equal(t, "Vienna Hotel Example", got[0].City)
}

func TestDateRange(t *testing.T) {
	s := NewDateRange()

	got := s.Match("Stay 13/09 - 14/09 Padrón Hotel Rosalía\nand 14/09-16/09 L'Aquila-Centro 3*")
	assert.Equal(t, []types.Segment{
		{Start: "13/09", End: "14/09", City: "Padrón Hotel Rosalía", Display: "13/09 - 14/09"},
		{Start: "14/09", End: "16/09", City: "L'Aquila-Centro", Display: "14/09 - 16/09"},
	}, got)

	assert.Nil(t, s.Match("from 13/09 Padrón"), "end date is required")
}

func TestRouteHeader(t *testing.T) {
	s := NewRouteHeader()

	t.Run("two stops, end date only on the last", func(t *testing.T) {
		got := s.Match("UTR1: Geneva-Lausanne (01-Jan-2024 - 03-Jan-2024)")
		assert.Equal(t, []types.Segment{
			{Start: "01-Jan-2024", End: "", City: "Geneva", Display: "01-Jan-2024 - 03-Jan-2024"},
			{Start: "01-Jan-2024", End: "03-Jan-2024", City: "Lausanne", Display: "01-Jan-2024 - 03-Jan-2024"},
		}, got)
	})

	t.Run("spaced separators and empty parts", func(t *testing.T) {
		got := s.Match("Tour UTR12:  Zurich - Interlaken -- Basel (05-Sep-2025-09-Sep-2025) extra")
		require.Len(t, got, 3)
		assert.Equal(t, []string{"Zurich", "Interlaken", "Basel"}, []string{got[0].City, got[1].City, got[2].City})
		assert.Equal(t, []string{"", "", "09-Sep-2025"}, []string{got[0].End, got[1].End, got[2].End})
	})

	t.Run("only first header is used", func(t *testing.T) {
		got := s.Match("UTR1: Rabat (01-Jan-2024 - 02-Jan-2024)\nUTR2: Doha (03-Jan-2024 - 04-Jan-2024)")
		require.Len(t, got, 1)
		assert.Equal(t, "Rabat", got[0].City)
	})

	t.Run("no header", func(t *testing.T) {
		assert.Nil(t, s.Match("UTR1: Geneva 01-Jan-2024"))
	})
}

// stubStrategy returns fixed segments and counts calls.
type stubStrategy struct {
	name  string
	segs  []types.Segment
	calls int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Match(string) []types.Segment {
	s.calls++
	return s.segs
}

func TestParseFallbackOrder(t *testing.T) {
	seg := func(city string) []types.Segment { return []types.Segment{{City: city}} }

	t.Run("first non-empty wins", func(t *testing.T) {
		a := &stubStrategy{name: "a"}
		b := &stubStrategy{name: "b", segs: seg("B")}
		c := &stubStrategy{name: "c", segs: seg("C")}

		got, used := Parse("text", a, b, c)
		assert.Equal(t, "b", used)
		assert.Equal(t, seg("B"), got.Itinerary)
		assert.Equal(t, []int{1, 1, 0}, []int{a.calls, b.calls, c.calls})
	})

	t.Run("nothing matches", func(t *testing.T) {
		got, used := Parse("text", &stubStrategy{name: "a"})
		assert.Empty(t, used)
		assert.NotNil(t, got.Itinerary)
		assert.Empty(t, got.Itinerary)
	})
}

func TestParseDefaultChain(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantUsed string
		wantLen  int
	}{
		{name: "primary", text: "04/09 - 05/09 Vienna Hotel Example\nUTR1: Geneva-Lausanne (01-Jan-2024 - 03-Jan-2024)", wantUsed: "dated-line", wantLen: 1},
		{name: "secondary", text: "Day 1: 13/09 - 14/09 Padrón\nUTR1: Geneva-Lausanne (01-Jan-2024 - 03-Jan-2024)", wantUsed: "date-range", wantLen: 1},
		{name: "tertiary", text: "UTR1: Geneva-Lausanne (01-Jan-2024 - 03-Jan-2024)", wantUsed: "route-header", wantLen: 2},
		{name: "none", text: "no dates here", wantUsed: "", wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, used := Parse(tt.text, defaultChain()...)
			assert.Equal(t, tt.wantUsed, used)
			assert.Len(t, got.Itinerary, tt.wantLen)
		})
	}
}

func TestReadSnippet(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("reads text_snippet", func(t *testing.T) {
		path := write("ok.json", `{"by_city": {"Vienna": ["x"]}, "text_snippet": "04/09 Vienna"}`)
		got, err := ReadSnippet(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "04/09 Vienna", got)
	})

	t.Run("missing field is empty", func(t *testing.T) {
		got, err := ReadSnippet(write("empty.json", `{}`), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadSnippet(filepath.Join(dir, "nope.json"), nil)
		assert.ErrorIs(t, err, ErrMissingFile)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ReadSnippet(write("bad.json", `{"text_snippet":`), nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMissingFile)
	})

	t.Run("standard input", func(t *testing.T) {
		got, err := ReadSnippet(StdinPath, strings.NewReader(`{"text_snippet": "from stdin"}`))
		require.NoError(t, err)
		assert.Equal(t, "from stdin", got)
	})
}
