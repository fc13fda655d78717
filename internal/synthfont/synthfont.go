// Package synthfont builds small in-memory fonts for tests.
//
// A synthetic font implements otquery.Font with exactly the metrics a test
// asks for, which makes it possible to check layout arithmetic against
// hand-computed numbers without depending on a real font file.
package synthfont

import (
	"errors"

	"golang.org/x/image/font/sfnt"
	"seehuhn.de/go/geom/vec"

	"github.com/npillmayer/textsvg/otquery"
	"github.com/npillmayer/textsvg/outline"
)

// Glyph is the definition of one synthetic glyph.
type Glyph struct {
	Advance otquery.Option[sfnt.Units]
	BBox    otquery.Option[otquery.BoundingBox]
	Outline outline.Segments
}

// Font is a synthetic font. It is safe for concurrent use once all glyphs
// have been added.
type Font struct {
	upem   sfnt.Units
	cmap   map[rune]otquery.GlyphIndex
	glyphs []Glyph // index 0 is .notdef
	err    error
}

var _ otquery.Font = (*Font)(nil)

// ErrBroken is the error reported by a font after Break has been called.
var ErrBroken = errors.New("synthetic font is broken")

// New creates a synthetic font with a design grid of upem units.
func New(upem sfnt.Units) *Font {
	return &Font{
		upem:   upem,
		cmap:   make(map[rune]otquery.GlyphIndex),
		glyphs: []Glyph{{}},
	}
}

// Add maps r to a new glyph g and returns the glyph's index.
func (f *Font) Add(r rune, g Glyph) otquery.GlyphIndex {
	gid := otquery.GlyphIndex(len(f.glyphs))
	f.glyphs = append(f.glyphs, g)
	f.cmap[r] = gid
	return gid
}

// AddBox maps r to a glyph with the given advance width, whose outline is
// a single rectangle spanning its bounding box.
func (f *Font) AddBox(r rune, advance, xMin, yMin, xMax, yMax sfnt.Units) otquery.GlyphIndex {
	var b outline.Builder
	b.MoveTo(vec.Vec2{X: float64(xMin), Y: float64(yMin)})
	b.LineTo(vec.Vec2{X: float64(xMax), Y: float64(yMin)})
	b.LineTo(vec.Vec2{X: float64(xMax), Y: float64(yMax)})
	b.LineTo(vec.Vec2{X: float64(xMin), Y: float64(yMax)})
	return f.Add(r, Glyph{
		Advance: otquery.Some(advance),
		BBox: otquery.Some(otquery.BoundingBox{
			MinX: xMin, MinY: yMin, MaxX: xMax, MaxY: yMax,
		}),
		Outline: b.Segments(),
	})
}

// AddBlank maps r to a glyph without contours, such as a space.
func (f *Font) AddBlank(r rune, advance sfnt.Units) otquery.GlyphIndex {
	return f.Add(r, Glyph{
		Advance: otquery.Some(advance),
		BBox:    otquery.None[otquery.BoundingBox](),
	})
}

// Break makes every subsequent glyph query fail with ErrBroken.
func (f *Font) Break() {
	f.err = ErrBroken
}

// UnitsPerEm is part of interface otquery.Font.
func (f *Font) UnitsPerEm() sfnt.Units {
	return f.upem
}

// GlyphIndex is part of interface otquery.Font.
func (f *Font) GlyphIndex(r rune) (otquery.GlyphIndex, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	gid, ok := f.cmap[r]
	return gid, ok, nil
}

// GlyphMetrics is part of interface otquery.Font.
func (f *Font) GlyphMetrics(gid otquery.GlyphIndex) (otquery.GlyphMetricsInfo, error) {
	if f.err != nil {
		return otquery.GlyphMetricsInfo{}, f.err
	}
	g, err := f.glyph(gid)
	if err != nil {
		return otquery.GlyphMetricsInfo{}, err
	}
	return otquery.GlyphMetricsInfo{Advance: g.Advance, BBox: g.BBox}, nil
}

// Outline is part of interface otquery.Font.
func (f *Font) Outline(gid otquery.GlyphIndex) (outline.Segments, error) {
	if f.err != nil {
		return nil, f.err
	}
	g, err := f.glyph(gid)
	if err != nil {
		return nil, err
	}
	return g.Outline, nil
}

func (f *Font) glyph(gid otquery.GlyphIndex) (Glyph, error) {
	if int(gid) >= len(f.glyphs) {
		return Glyph{}, sfnt.ErrNotFound
	}
	return f.glyphs[gid], nil
}
