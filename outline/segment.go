package outline

import (
	"seehuhn.de/go/geom/vec"
)

// Segment is one drawing instruction of a glyph outline, given in font
// design space (y-axis pointing up).
//
// The set of segment types is closed: MoveTo, LineTo, CubeTo and Close.
type Segment interface {
	segment()
}

// MoveTo starts a new contour at P.
type MoveTo struct {
	P vec.Vec2
}

// LineTo draws a straight line from the current point to P.
type LineTo struct {
	P vec.Vec2
}

// CubeTo draws a cubic Bézier curve from the current point to P, using
// C1 and C2 as control points.
type CubeTo struct {
	C1, C2 vec.Vec2
	P      vec.Vec2
}

// Close closes the current contour.
type Close struct{}

func (MoveTo) segment() {}
func (LineTo) segment() {}
func (CubeTo) segment() {}
func (Close) segment()  {}

// Segments is the outline of a single glyph.
type Segments []Segment

// IsEmpty reports whether the outline has no drawing instructions.
func (segs Segments) IsEmpty() bool {
	return len(segs) == 0
}

// Bounds returns the bounding box of all on-curve and off-curve points of
// the outline. ok is false for an empty outline.
//
// Control points are included, so for curved outlines the box may be a bit
// larger than the tight box of the curve.
func (segs Segments) Bounds() (lo, hi vec.Vec2, ok bool) {
	include := func(p vec.Vec2) {
		if !ok {
			lo, hi, ok = p, p, true
			return
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	for _, seg := range segs {
		switch s := seg.(type) {
		case MoveTo:
			include(s.P)
		case LineTo:
			include(s.P)
		case CubeTo:
			include(s.C1)
			include(s.C2)
			include(s.P)
		}
	}
	return
}
