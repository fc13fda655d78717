/*
Package layout places resolved glyphs on a single horizontal line.

The layout model is deliberately simple: glyphs are separated by a fixed
spacing of one eighth of an em, and the baseline is put at the height
(yMax−yMin) of the tallest glyph of the string. No font-wide ascent or
descent metrics are consulted, and no kerning is applied.

[Compute] is a pure function of its inputs: laying out the same glyphs twice
yields identical results.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/textsvg/otquery"
)

// tracer traces with key 'textsvg.layout'
func tracer() tracing.Trace {
	return tracing.Select("textsvg.layout")
}

// CharacterLayout is the placement of a single character.
type CharacterLayout struct {
	Glyph   otquery.ResolvedGlyph
	Advance sfnt.Units // advance width, including placeholder advances
	Offset  sfnt.Units // x-position of the glyph's origin
}

// StringLayout is the placement of a whole string.
type StringLayout struct {
	Chars      []CharacterLayout // in input order
	Spacing    sfnt.Units        // gap between adjacent glyphs
	TotalWidth sfnt.Units        // sum of advances plus N−1 gaps
	MaxHeight  sfnt.Units        // maximum yMax−yMin over glyphs with a box
	Baseline   sfnt.Units        // y-coordinate of the baseline in drawing space
}

// Spacing returns the inter-glyph spacing for a font with the given design
// grid: one eighth of an em, rounded down.
func Spacing(upem sfnt.Units) sfnt.Units {
	return upem / 8
}

// Compute lays out glyphs, which have been resolved against a font with a
// design grid of upem units.
//
// An empty glyph list results in a layout of zero width and zero height.
func Compute(upem sfnt.Units, glyphs []otquery.ResolvedGlyph) StringLayout {
	l := StringLayout{
		Chars:   make([]CharacterLayout, len(glyphs)),
		Spacing: Spacing(upem),
	}
	var x sfnt.Units
	for i, g := range glyphs {
		if i > 0 {
			x += l.Spacing
		}
		l.Chars[i] = CharacterLayout{Glyph: g, Advance: g.Advance, Offset: x}
		x += g.Advance
		if g.BBox.IsSome() {
			l.MaxHeight = max(l.MaxHeight, g.Height())
		}
	}
	l.TotalWidth = x
	l.Baseline = l.MaxHeight
	tracer().Debugf("layout of %d glyphs: width=%d, height=%d, spacing=%d",
		len(glyphs), l.TotalWidth, l.MaxHeight, l.Spacing)
	return l
}

// Len returns the number of characters laid out.
func (l StringLayout) Len() int {
	return len(l.Chars)
}

// IsEmpty reports whether the layout has zero area, e.g. for an empty string.
func (l StringLayout) IsEmpty() bool {
	return l.TotalWidth == 0
}

// Offsets returns the x-positions of all characters, in input order.
func (l StringLayout) Offsets() []sfnt.Units {
	offsets := make([]sfnt.Units, len(l.Chars))
	for i, c := range l.Chars {
		offsets[i] = c.Offset
	}
	return offsets
}

// ViewBox returns the drawing area of the string as (minX, minY, width, height).
// The height adds one spacing unit below the tallest glyph.
func (l StringLayout) ViewBox() (minX, minY, width, height sfnt.Units) {
	return 0, 0, l.TotalWidth, l.MaxHeight + l.Spacing
}
