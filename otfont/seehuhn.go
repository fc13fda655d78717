package otfont

import (
	"bytes"
	"fmt"

	xsfnt "golang.org/x/image/font/sfnt"
	geompath "seehuhn.de/go/geom/path"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"github.com/npillmayer/textsvg/otquery"
	"github.com/npillmayer/textsvg/outline"
)

// Seehuhn is an otquery.Font on top of a seehuhn.de/go/sfnt font.
//
// The parser does not expose per-glyph bounding boxes uniformly for glyf and
// CFF outlines, so bounding boxes are computed from the decoded outline.
type Seehuhn struct {
	font *sfnt.Font
	cmap cmap.Subtable
}

var _ otquery.Font = (*Seehuhn)(nil)

// FromSeehuhn wraps an already parsed font.
func FromSeehuhn(f *sfnt.Font) (*Seehuhn, error) {
	if f == nil {
		return nil, fmt.Errorf("otfont: font is nil")
	}
	if f.Outlines == nil {
		return nil, fmt.Errorf("otfont: font has no outlines")
	}
	subtable, err := f.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("otfont: %w: %v", ErrNoCMap, err)
	}
	return &Seehuhn{font: f, cmap: subtable}, nil
}

// ParseSeehuhn parses OpenType font data (TTF or OTF) with seehuhn.de/go/sfnt.
func ParseSeehuhn(data []byte) (*Seehuhn, error) {
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return FromSeehuhn(f)
}

// UnitsPerEm is part of interface otquery.Font.
func (f *Seehuhn) UnitsPerEm() xsfnt.Units {
	return xsfnt.Units(f.font.UnitsPerEm)
}

// GlyphIndex is part of interface otquery.Font.
func (f *Seehuhn) GlyphIndex(r rune) (otquery.GlyphIndex, bool, error) {
	gid := f.cmap.Lookup(r)
	return otquery.GlyphIndex(gid), gid != 0, nil
}

// GlyphMetrics is part of interface otquery.Font.
func (f *Seehuhn) GlyphMetrics(gid otquery.GlyphIndex) (otquery.GlyphMetricsInfo, error) {
	if int(gid) >= f.font.NumGlyphs() {
		return otquery.GlyphMetricsInfo{}, xsfnt.ErrNotFound
	}
	adv := round(float64(f.font.GlyphWidth(glyph.ID(gid))))
	metrics := otquery.GlyphMetricsInfo{
		Advance: otquery.Some(adv),
		BBox:    otquery.None[otquery.BoundingBox](),
	}
	lo, hi, ok := f.segments(glyph.ID(gid)).Bounds()
	if !ok {
		return metrics, nil
	}
	bbox := otquery.BoundingBox{
		MinX: round(lo.X), MinY: round(lo.Y),
		MaxX: round(hi.X), MaxY: round(hi.Y),
	}
	metrics.LSB = bbox.MinX
	metrics.RSB = adv - bbox.MaxX
	metrics.BBox = bboxOption(bbox)
	return metrics, nil
}

// Outline is part of interface otquery.Font.
func (f *Seehuhn) Outline(gid otquery.GlyphIndex) (outline.Segments, error) {
	if int(gid) >= f.font.NumGlyphs() {
		return nil, xsfnt.ErrNotFound
	}
	return f.segments(glyph.ID(gid)), nil
}

func (f *Seehuhn) segments(gid glyph.ID) outline.Segments {
	var b outline.Builder
	for cmd, pts := range f.font.Outlines.Path(gid) {
		switch cmd {
		case geompath.CmdMoveTo:
			b.MoveTo(pts[0])
		case geompath.CmdLineTo:
			b.LineTo(pts[0])
		case geompath.CmdQuadTo:
			b.QuadTo(pts[0], pts[1])
		case geompath.CmdCubeTo:
			b.CubeTo(pts[0], pts[1], pts[2])
		case geompath.CmdClose:
			b.Close()
		}
	}
	return b.Segments()
}
