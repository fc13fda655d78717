/*
Package otquery resolves characters to glyphs and their metrics.

Clients hand in a [Font], an abstraction of a parsed outline font (package
otfont provides implementations on top of several font parsers), and receive
[ResolvedGlyph] records. Resolution never fails for characters a font cannot
display: unmapped characters and empty glyphs resolve to a placeholder which
has an advance width of one em, but no bounding box and no outline. Only
structural problems reported by the font parser are returned as errors.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textsvg.fonts'
func tracer() tracing.Trace {
	return tracing.Select("textsvg.fonts")
}

// --- Glyph Routines --------------------------------------------------------

// Resolve maps a character to a glyph of font f and retrieves the glyph's
// metrics and outline.
//
// If the character is not contained in the font's character map, or if it
// maps to a glyph without a bounding box (e.g., a space), a placeholder is
// returned: its advance width equals the font's units-per-em, and it carries
// neither a bounding box nor an outline. Otherwise the glyph's own advance
// width is used (or units-per-em, if the font does not specify one).
//
// An error is returned only if the font parser reports a structural error;
// it is wrapped in a *GlyphError.
func Resolve(f Font, r rune) (ResolvedGlyph, error) {
	upem := f.UnitsPerEm()
	g := ResolvedGlyph{Rune: r, Advance: upem, BBox: None[BoundingBox]()}
	gid, ok, err := f.GlyphIndex(r)
	if err != nil {
		return g, &GlyphError{Op: "cmap", Rune: r, Err: err}
	}
	if !ok {
		tracer().Debugf("code-point %#U not in font, using placeholder", r)
		return g, nil
	}
	g.GID, g.Mapped = gid, true
	metrics, err := f.GlyphMetrics(gid)
	if err != nil {
		return g, &GlyphError{Op: "metrics", Rune: r, GID: gid, Err: err}
	}
	bbox, ok := metrics.BBox.Unwrap()
	if !ok {
		tracer().Debugf("glyph %d for %#U has no bounding box, using placeholder", gid, r)
		return g, nil
	}
	segs, err := f.Outline(gid)
	if err != nil {
		return g, &GlyphError{Op: "outline", Rune: r, GID: gid, Err: err}
	}
	g.Advance = metrics.Advance.Or(upem)
	g.BBox = Some(bbox)
	g.Outline = segs
	return g, nil
}

// ResolveString resolves every character of text, in order.
// Invalid UTF-8 sequences resolve as U+FFFD.
//
// Resolution stops at the first structural font error.
func ResolveString(f Font, text string) ([]ResolvedGlyph, error) {
	glyphs := make([]ResolvedGlyph, 0, len(text))
	for _, r := range text {
		g, err := Resolve(f, r)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, nil
}

// CodePointsMissing returns the characters of text which are not contained
// in font f's character map, each reported once, in order of appearance.
func CodePointsMissing(f Font, text string) ([]rune, error) {
	var missing []rune
	seen := make(map[rune]bool)
	for _, r := range text {
		if seen[r] {
			continue
		}
		seen[r] = true
		if _, ok, err := f.GlyphIndex(r); err != nil {
			return missing, &GlyphError{Op: "cmap", Rune: r, Err: err}
		} else if !ok {
			missing = append(missing, r)
		}
	}
	return missing, nil
}
