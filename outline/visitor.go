package outline

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Op is the operation of a path command.
type Op uint8

// Path command operations, named after their SVG path letters.
const (
	OpMoveTo  Op = iota // M
	OpLineTo            // L
	OpCurveTo           // C
	OpClose             // Z
)

// Letter returns the SVG path letter for op.
func (op Op) Letter() byte {
	switch op {
	case OpMoveTo:
		return 'M'
	case OpLineTo:
		return 'L'
	case OpCurveTo:
		return 'C'
	case OpClose:
		return 'Z'
	}
	return '?'
}

// DefaultPrecision is the number of decimal places used to format
// path coordinates.
const DefaultPrecision = 2

// Command is a single path drawing command in drawing space (y-axis
// pointing down).
type Command struct {
	Op   Op
	Args [3]vec.Vec2 // valid are the first Op.NumArgs() entries
}

// NumArgs returns the number of points an operation carries.
func (op Op) NumArgs() int {
	switch op {
	case OpMoveTo, OpLineTo:
		return 1
	case OpCurveTo:
		return 3
	}
	return 0
}

// Points returns the command's coordinates.
func (c Command) Points() []vec.Vec2 {
	return c.Args[:c.Op.NumArgs()]
}

// String formats the command with DefaultPrecision, e.g. "L 10.00 -10.00".
func (c Command) String() string {
	return c.Format(DefaultPrecision)
}

// Format formats the command with prec decimal places.
func (c Command) Format(prec int) string {
	var sb strings.Builder
	c.appendTo(&sb, prec)
	return sb.String()
}

func (c Command) appendTo(sb *strings.Builder, prec int) {
	sb.WriteByte(c.Op.Letter())
	for _, p := range c.Points() {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(p.X, 'f', prec, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(p.Y, 'f', prec, 64))
	}
}

// Path is an ordered list of path commands for one glyph.
type Path []Command

// IsEmpty reports whether p contains no commands, i.e. the glyph has no
// visible outline.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// String formats the path as SVG path data with DefaultPrecision.
func (p Path) String() string {
	return p.Format(DefaultPrecision)
}

// Format formats the path as SVG path data, commands separated by single
// blanks and coordinates with prec decimal places.
func (p Path) Format(prec int) string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		c.appendTo(&sb, prec)
	}
	return sb.String()
}

// Visitor converts outline segments into path commands.
// Each visited segment appends exactly one command; the y-coordinates are
// negated to flip from font design space to drawing space.
//
// The zero value is an empty visitor ready to use.
type Visitor struct {
	path Path
}

// Visit appends the command for seg.
func (v *Visitor) Visit(seg Segment) {
	switch s := seg.(type) {
	case MoveTo:
		v.path = append(v.path, Command{Op: OpMoveTo, Args: [3]vec.Vec2{flip(s.P)}})
	case LineTo:
		v.path = append(v.path, Command{Op: OpLineTo, Args: [3]vec.Vec2{flip(s.P)}})
	case CubeTo:
		v.path = append(v.path, Command{Op: OpCurveTo, Args: [3]vec.Vec2{flip(s.C1), flip(s.C2), flip(s.P)}})
	case Close:
		v.path = append(v.path, Command{Op: OpClose})
	default:
		tracer().Errorf("outline visitor: unknown segment type %T", seg)
	}
}

// Path returns the commands collected so far.
func (v *Visitor) Path() Path {
	return v.path
}

// Reset clears the visitor for re-use. Paths returned earlier are not
// affected.
func (v *Visitor) Reset() {
	v.path = nil
}

// Trace runs a fresh Visitor over segs and returns the resulting path.
// An empty outline results in an empty path.
func Trace(segs Segments) Path {
	v := &Visitor{path: make(Path, 0, len(segs))}
	for _, seg := range segs {
		v.Visit(seg)
	}
	return v.path
}

// flip maps a point from font space to drawing space.
func flip(p vec.Vec2) vec.Vec2 {
	y := -p.Y
	if y == 0 { // no negative zero, which would format as "-0.00"
		y = 0
	}
	return vec.Vec2{X: p.X, Y: y}
}
