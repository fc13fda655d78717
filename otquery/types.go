package otquery

import (
	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/textsvg/outline"
)

// GlyphIndex is a glyph identifier within a font. Index 0 is '.notdef'.
type GlyphIndex uint32

// NOTDEF is the glyph index for OpenType ".notdef".
const NOTDEF = GlyphIndex(0)

// Font is a parsed outline font, as seen by the resolver.
// Implementations are read-only and must be safe for concurrent use.
//
// All values are in font design units; outlines are in font design space
// (y-axis pointing up).
type Font interface {
	// UnitsPerEm returns the size of the font's design grid.
	UnitsPerEm() sfnt.Units

	// GlyphIndex maps a code-point to a glyph using the font's character map.
	// ok is false if the code-point is not mapped. An error is returned only
	// for structural problems of the font.
	GlyphIndex(r rune) (gid GlyphIndex, ok bool, err error)

	// GlyphMetrics returns the metrics of a glyph.
	GlyphMetrics(gid GlyphIndex) (GlyphMetricsInfo, error)

	// Outline returns the glyph's outline. Glyphs without contours return
	// an empty outline.
	Outline(gid GlyphIndex) (outline.Segments, error)
}

// GlyphMetricsInfo contains metric information for a glyph.
type GlyphMetricsInfo struct {
	Advance  Option[sfnt.Units]  // advance width, if present in the font
	LSB, RSB sfnt.Units          // side bearings
	BBox     Option[BoundingBox] // bounding box; None for empty glyphs
}

// BoundingBox describes the bounding box of a glyph.
type BoundingBox struct {
	MinX, MinY sfnt.Units
	MaxX, MaxY sfnt.Units
}

// IsEmpty reports whether this box has zero area.
func (bbox BoundingBox) IsEmpty() bool {
	return bbox.MaxX-bbox.MinX == 0 || bbox.MaxY-bbox.MinY == 0
}

// Dx returns the horizontal extent of this box.
func (bbox BoundingBox) Dx() sfnt.Units {
	return bbox.MaxX - bbox.MinX
}

// Dy returns the vertical extent of this box.
func (bbox BoundingBox) Dy() sfnt.Units {
	return bbox.MaxY - bbox.MinY
}

// ResolvedGlyph is the result of resolving one character against a font.
// It caches everything later passes need, including the outline, so the
// font is queried only once per character.
type ResolvedGlyph struct {
	Rune    rune
	GID     GlyphIndex
	Mapped  bool                // character present in the font's cmap
	Advance sfnt.Units          // advance width, possibly a placeholder
	BBox    Option[BoundingBox] // None for unmapped and empty glyphs
	Outline outline.Segments    // empty for unmapped and empty glyphs
}

// HasOutline reports whether the glyph will produce visible output.
func (g ResolvedGlyph) HasOutline() bool {
	return g.BBox.IsSome() && !g.Outline.IsEmpty()
}

// Height returns yMax−yMin of the glyph's bounding box, or 0 for glyphs
// without one.
func (g ResolvedGlyph) Height() sfnt.Units {
	if bbox, ok := g.BBox.Unwrap(); ok {
		return bbox.Dy()
	}
	return 0
}
