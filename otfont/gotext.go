package otfont

import (
	"bytes"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
	"seehuhn.de/go/geom/vec"

	"github.com/npillmayer/textsvg/otquery"
	"github.com/npillmayer/textsvg/outline"
)

// GoText is an otquery.Font on top of a go-text/typesetting face.
//
// Faces cache glyph extents internally and are therefore not safe for
// concurrent use; GoText serializes access to its face.
type GoText struct {
	mu   sync.Mutex
	face *gtfont.Face
	upem sfnt.Units
}

var _ otquery.Font = (*GoText)(nil)

// FromGoText wraps an already parsed face. go-text refuses to load fonts
// without a character map, so no further checks are necessary.
func FromGoText(face *gtfont.Face) (*GoText, error) {
	if face == nil || face.Font == nil {
		return nil, fmt.Errorf("otfont: face is nil")
	}
	return &GoText{face: face, upem: sfnt.Units(face.Upem())}, nil
}

// ParseGoText parses OpenType font data (TTF or OTF) with go-text.
func ParseGoText(data []byte) (*GoText, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return FromGoText(face)
}

// UnitsPerEm is part of interface otquery.Font.
func (f *GoText) UnitsPerEm() sfnt.Units {
	return f.upem
}

// GlyphIndex is part of interface otquery.Font.
func (f *GoText) GlyphIndex(r rune) (otquery.GlyphIndex, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false, nil
	}
	return otquery.GlyphIndex(gid), true, nil
}

// GlyphMetrics is part of interface otquery.Font.
func (f *GoText) GlyphMetrics(gid otquery.GlyphIndex) (otquery.GlyphMetricsInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv := round(float64(f.face.HorizontalAdvance(gtfont.GID(gid))))
	metrics := otquery.GlyphMetricsInfo{
		Advance: otquery.Some(adv),
		BBox:    otquery.None[otquery.BoundingBox](),
	}
	ext, ok := f.face.GlyphExtents(gtfont.GID(gid))
	if !ok {
		return metrics, nil
	}
	// extents are anchored at the top-left corner; height is negative
	bbox := otquery.BoundingBox{
		MinX: round(float64(ext.XBearing)),
		MinY: round(float64(ext.YBearing + ext.Height)),
		MaxX: round(float64(ext.XBearing + ext.Width)),
		MaxY: round(float64(ext.YBearing)),
	}
	metrics.LSB = bbox.MinX
	metrics.RSB = adv - bbox.MaxX
	metrics.BBox = bboxOption(bbox)
	return metrics, nil
}

// Outline is part of interface otquery.Font.
func (f *GoText) Outline(gid otquery.GlyphIndex) (outline.Segments, error) {
	f.mu.Lock()
	data := f.face.GlyphData(gtfont.GID(gid))
	f.mu.Unlock()
	var b outline.Builder
	switch g := data.(type) {
	case gtfont.GlyphOutline:
		for _, seg := range g.Segments {
			switch seg.Op {
			case ot.SegmentOpMoveTo:
				b.MoveTo(point(seg.Args[0]))
			case ot.SegmentOpLineTo:
				b.LineTo(point(seg.Args[0]))
			case ot.SegmentOpQuadTo:
				b.QuadTo(point(seg.Args[0]), point(seg.Args[1]))
			case ot.SegmentOpCubeTo:
				b.CubeTo(point(seg.Args[0]), point(seg.Args[1]), point(seg.Args[2]))
			}
		}
	case nil:
		return nil, fmt.Errorf("otfont: no glyph data for glyph %d: %w", gid, sfnt.ErrNotFound)
	default:
		tracer().Infof("glyph %d is not an outline glyph (%T), skipping", gid, data)
	}
	return b.Segments(), nil
}

func point(p ot.SegmentPoint) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
