package preview

import (
	"strings"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/delve/dungeon"
	"github.com/katalvlaran/delve/pathfind"
	"github.com/katalvlaran/delve/tilegrid"
)

// Glyphs for overlays drawn on top of tiles.
const (
	GlyphPlayer = '@'
	GlyphPath   = '*'
	GlyphHidden = ' '
)

// Options controls what Render draws.
type Options struct {
	// Glyphs maps tile codes to runes; nil uses dungeon.DefaultGlyphs.
	// Codes missing from the map render as '?'.
	Glyphs map[int]rune

	// Path is drawn over the tiles it crosses, endpoints excluded.
	Path pathfind.Path

	// Visible limits drawing to these cells when non-nil. Other cells show
	// dimmed if they are in Seen, blank otherwise.
	Visible *mapset.Set[tilegrid.Point]
	Seen    *mapset.Set[tilegrid.Point]

	// Player, when HasPlayer is set, is drawn as '@'.
	Player    tilegrid.Point
	HasPlayer bool

	// ShowObjects draws the first object's glyph on cells holding objects.
	ShowObjects bool

	// Plain disables styling; the output is the bare glyphs.
	Plain bool
}

// Render draws g one line per row. Styled output groups equal-styled runs,
// so each row carries a handful of escape sequences rather than one per cell.
func Render(g *tilegrid.Grid, o Options) string {
	glyphs := o.Glyphs
	if glyphs == nil {
		glyphs = dungeon.DefaultGlyphs
	}
	onPath := mapset.New[tilegrid.Point]()
	for i := 1; i < len(o.Path)-1; i++ {
		onPath.Put(o.Path[i])
	}

	var sb strings.Builder
	run := make([]rune, 0, g.Width())
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = run[:0]
		runKind := kindPlain
		for x := 0; x < g.Width(); x++ {
			r, k := cell(g, x, y, glyphs, onPath, &o)
			if o.Plain {
				sb.WriteRune(r)
				continue
			}
			if k != runKind && len(run) > 0 {
				flush(&sb, run, runKind)
				run = run[:0]
			}
			runKind = k
			run = append(run, r)
		}
		if len(run) > 0 {
			flush(&sb, run, runKind)
		}
	}
	return sb.String()
}

// cell picks the glyph and style of (x,y), overlays first.
func cell(g *tilegrid.Grid, x, y int, glyphs map[int]rune, onPath mapset.Set[tilegrid.Point], o *Options) (rune, cellKind) {
	p := tilegrid.Pt(x, y)
	code := g.Tile(x, y)
	glyph, ok := glyphs[code]
	if !ok {
		glyph = '?'
	}
	if o.Visible != nil && !o.Visible.Has(p) {
		if o.Seen != nil && o.Seen.Has(p) {
			return glyph, kindRemembered
		}
		return GlyphHidden, kindHidden
	}
	switch {
	case o.HasPlayer && p == o.Player:
		return GlyphPlayer, kindPlayer
	case onPath.Has(p):
		return GlyphPath, kindPath
	}
	if o.ShowObjects {
		if objs := g.ObjectsAt(x, y); len(objs) > 0 {
			r, _ := utf8.DecodeRuneInString(objs[0].Glyph)
			if r == utf8.RuneError {
				r = '?'
			}
			return r, kindObject
		}
	}
	if !ok {
		return glyph, kindUnknown
	}
	return glyph, tileKind(code)
}

func flush(sb *strings.Builder, run []rune, k cellKind) {
	if st, ok := k.style(); ok {
		sb.WriteString(st.Render(string(run)))
		return
	}
	sb.WriteString(string(run))
}
