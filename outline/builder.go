package outline

import (
	"seehuhn.de/go/geom/vec"
)

// Builder collects the segments of a glyph outline from a font parser's
// glyph traversal. Font adapters feed it with the parser's native drawing
// operations and receive normalized [Segments]:
//
//   - quadratic curves are elevated to cubic curves,
//   - every contour ends with an explicit [Close], even if the parser closes
//     contours implicitly,
//   - a closing line back to the contour's start point is dropped, as
//     [Close] already implies it.
//
// Dropping the closing line matches the segment stream fontTools emits when
// drawing TrueType glyphs. It applies to lines a font authors explicitly as
// well, so a contour whose last on-curve point repeats its first one loses
// that zero-length line.
//
// Coordinates are expected in font design space (y-axis pointing up).
// The zero value is ready to use.
type Builder struct {
	segs    Segments
	start   vec.Vec2 // first point of the current contour
	current vec.Vec2 // current point
	open    bool     // inside a contour
}

// MoveTo starts a new contour at p, closing the previous one if necessary.
func (b *Builder) MoveTo(p vec.Vec2) {
	b.Close()
	b.segs = append(b.segs, MoveTo{P: p})
	b.start, b.current, b.open = p, p, true
}

// LineTo adds a straight line to p.
func (b *Builder) LineTo(p vec.Vec2) {
	b.ensureOpen()
	b.segs = append(b.segs, LineTo{P: p})
	b.current = p
}

// QuadTo adds a quadratic Bézier curve with control point q and end point p.
// The curve is stored in its exactly equivalent cubic form.
func (b *Builder) QuadTo(q, p vec.Vec2) {
	b.ensureOpen()
	p0 := b.current
	c1 := vec.Vec2{X: p0.X + 2.0/3.0*(q.X-p0.X), Y: p0.Y + 2.0/3.0*(q.Y-p0.Y)}
	c2 := vec.Vec2{X: p.X + 2.0/3.0*(q.X-p.X), Y: p.Y + 2.0/3.0*(q.Y-p.Y)}
	b.segs = append(b.segs, CubeTo{C1: c1, C2: c2, P: p})
	b.current = p
}

// CubeTo adds a cubic Bézier curve with control points c1, c2 and end point p.
func (b *Builder) CubeTo(c1, c2, p vec.Vec2) {
	b.ensureOpen()
	b.segs = append(b.segs, CubeTo{C1: c1, C2: c2, P: p})
	b.current = p
}

// Close closes the current contour. Closing without an open contour is a no-op.
func (b *Builder) Close() {
	if !b.open {
		return
	}
	if n := len(b.segs); n > 1 {
		if l, ok := b.segs[n-1].(LineTo); ok && l.P == b.start {
			b.segs = b.segs[:n-1]
		}
	}
	b.segs = append(b.segs, Close{})
	b.current, b.open = b.start, false
}

// Segments closes any open contour and returns the collected outline.
// The builder is reset afterwards.
func (b *Builder) Segments() Segments {
	b.Close()
	segs := b.segs
	*b = Builder{}
	return segs
}

// ensureOpen starts an implicit contour at the current point for parsers
// which draw without an initial move.
func (b *Builder) ensureOpen() {
	if b.open {
		return
	}
	tracer().Debugf("outline: drawing without move-to, starting contour at %v", b.current)
	b.segs = append(b.segs, MoveTo{P: b.current})
	b.start, b.open = b.current, true
}
