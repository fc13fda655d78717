package otfont

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"

	"github.com/npillmayer/textsvg/otquery"
	"github.com/npillmayer/textsvg/outline"
)

// SFNT is an otquery.Font on top of a golang.org/x/image/font/sfnt font.
//
// Glyphs are loaded at a size where one 26.6 unit equals one design unit,
// which keeps x/image's int32 scaling arithmetic in range for every legal
// units-per-em value. x/image computes implied on-curve points of TrueType
// contours in integer units, so midpoints at half units are truncated;
// clients needing exact outlines should use [Seehuhn] or [GoText].
type SFNT struct {
	font *sfnt.Font
	upem sfnt.Units
	ppem fixed.Int26_6 // upem as a raw 26.6 value, i.e. 1/64 pixel per unit
}

var _ otquery.Font = (*SFNT)(nil)

// FromSFNT wraps an already parsed font.
func FromSFNT(f *sfnt.Font) (*SFNT, error) {
	if f == nil {
		return nil, fmt.Errorf("otfont: font is nil")
	}
	var buf sfnt.Buffer
	if _, err := f.GlyphIndex(&buf, ' '); err != nil {
		return nil, fmt.Errorf("otfont: %w: %v", ErrNoCMap, err)
	}
	upem := f.UnitsPerEm()
	return &SFNT{font: f, upem: upem, ppem: fixed.Int26_6(upem)}, nil
}

// ParseSFNT parses OpenType font data (TTF or OTF).
func ParseSFNT(data []byte) (*SFNT, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return FromSFNT(f)
}

// UnitsPerEm is part of interface otquery.Font.
func (f *SFNT) UnitsPerEm() sfnt.Units {
	return f.upem
}

// GlyphIndex is part of interface otquery.Font.
func (f *SFNT) GlyphIndex(r rune) (otquery.GlyphIndex, bool, error) {
	var buf sfnt.Buffer
	gid, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0, false, err
	}
	return otquery.GlyphIndex(gid), gid != 0, nil
}

// GlyphMetrics is part of interface otquery.Font.
func (f *SFNT) GlyphMetrics(gid otquery.GlyphIndex) (otquery.GlyphMetricsInfo, error) {
	var buf sfnt.Buffer
	bounds, advance, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return otquery.GlyphMetricsInfo{}, err
	}
	// x/image reports bounds with the y-axis pointing down
	bbox := otquery.BoundingBox{
		MinX: sfnt.Units(bounds.Min.X),
		MinY: sfnt.Units(-bounds.Max.Y),
		MaxX: sfnt.Units(bounds.Max.X),
		MaxY: sfnt.Units(-bounds.Min.Y),
	}
	adv := sfnt.Units(advance)
	return otquery.GlyphMetricsInfo{
		Advance: otquery.Some(adv),
		LSB:     bbox.MinX,
		RSB:     adv - bbox.MaxX,
		BBox:    bboxOption(bbox),
	}, nil
}

// Outline is part of interface otquery.Font.
func (f *SFNT) Outline(gid otquery.GlyphIndex) (outline.Segments, error) {
	var buf sfnt.Buffer
	segs, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), f.ppem, nil)
	if err != nil {
		return nil, err
	}
	var b outline.Builder
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.MoveTo(unflip(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.LineTo(unflip(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.QuadTo(unflip(seg.Args[0]), unflip(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.CubeTo(unflip(seg.Args[0]), unflip(seg.Args[1]), unflip(seg.Args[2]))
		default:
			tracer().Errorf("unknown segment op %d in glyph %d", seg.Op, gid)
		}
	}
	return b.Segments(), nil
}

// unflip converts a y-down 26.6 point, loaded at one 26.6 unit per design
// unit, to font design space.
func unflip(p fixed.Point26_6) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: -float64(p.Y)}
}
