package tilegrid

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultGlyphs maps 0 to '.' and 1 to '#'.
var DefaultGlyphs = map[int]rune{0: '.', 1: '#'}

// Render draws the grid as text, one line per row, for debugging and previews.
// Codes missing from glyphs render as '?'; a nil glyphs uses DefaultGlyphs.
// With showObjects, a cell holding objects shows the first object's glyph
// ('?' if it has none) instead of its tile.
func (g *Grid) Render(glyphs map[int]rune, showObjects bool) string {
	if glyphs == nil {
		glyphs = DefaultGlyphs
	}
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			i := g.index(x, y)
			if objs := g.objects[i]; showObjects && len(objs) > 0 {
				b.WriteRune(objectGlyph(objs[0]))
				continue
			}
			r, ok := glyphs[g.cells[i]]
			if !ok {
				r = '?'
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func objectGlyph(o Object) rune {
	if r, _ := utf8.DecodeRuneInString(o.Glyph); r != utf8.RuneError {
		return r
	}
	return '?'
}

// TileCount is the number of cells carrying one code.
type TileCount struct {
	Code  int
	Count int
}

// Stats summarizes a grid.
type Stats struct {
	Width, Height int
	Seed          int64
	Generator     string
	// Tiles lists every code present, ascending by code.
	Tiles        []TileCount
	TotalObjects int
}

// Count returns the number of cells carrying code.
func (s Stats) Count(code int) int {
	for _, tc := range s.Tiles {
		if tc.Code == code {
			return tc.Count
		}
	}
	return 0
}

// Stats computes tile counts and object totals.
// Complexity: O(W·H).
func (g *Grid) Stats() Stats {
	counts := make(map[int]int)
	for _, c := range g.cells {
		counts[c]++
	}
	tiles := make([]TileCount, 0, len(counts))
	for code, n := range counts {
		tiles = append(tiles, TileCount{Code: code, Count: n})
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Code < tiles[j].Code })

	return Stats{
		Width:        g.width,
		Height:       g.height,
		Seed:         g.seed,
		Generator:    g.generator,
		Tiles:        tiles,
		TotalObjects: g.ObjectCount(),
	}
}
