package outline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestVisitorSquare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textsvg.outline")
	defer teardown()
	//
	segs := Segments{
		MoveTo{P: pt(0, 0)},
		LineTo{P: pt(10, 0)},
		LineTo{P: pt(10, 10)},
		Close{},
	}
	path := Trace(segs)
	want := []string{"M 0.00 0.00", "L 10.00 0.00", "L 10.00 -10.00", "Z"}
	var got []string
	for _, c := range path {
		got = append(got, c.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", diff)
	}
	if s := path.String(); s != "M 0.00 0.00 L 10.00 0.00 L 10.00 -10.00 Z" {
		t.Errorf("unexpected path data %q", s)
	}
}

func TestVisitorCurve(t *testing.T) {
	var v Visitor
	v.Visit(MoveTo{P: pt(1, 2)})
	v.Visit(CubeTo{C1: pt(3, 4), C2: pt(5, -6), P: pt(7.5, 8.25)})
	v.Visit(Close{})
	got := v.Path().String()
	want := "M 1.00 -2.00 C 3.00 -4.00 5.00 6.00 7.50 -8.25 Z"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if n := len(v.Path()[1].Points()); n != 3 {
		t.Errorf("expected curve to carry 3 points, has %d", n)
	}
}

func TestVisitorEmptyOutline(t *testing.T) {
	path := Trace(nil)
	if !path.IsEmpty() {
		t.Fatalf("expected empty path for empty outline, got %v", path)
	}
	if path.String() != "" {
		t.Errorf("expected empty path data, got %q", path.String())
	}
}

func TestVisitorReset(t *testing.T) {
	var v Visitor
	v.Visit(MoveTo{P: pt(1, 1)})
	first := v.Path()
	v.Reset()
	v.Visit(LineTo{P: pt(2, 2)})
	if first.String() != "M 1.00 -1.00" {
		t.Errorf("earlier path changed after reset: %q", first.String())
	}
	if v.Path().String() != "L 2.00 -2.00" {
		t.Errorf("unexpected path after reset: %q", v.Path().String())
	}
}

func TestPathPrecision(t *testing.T) {
	path := Trace(Segments{MoveTo{P: pt(1.23456, -0.5)}})
	if s := path.Format(0); s != "M 1 0" && s != "M 1 1" {
		t.Errorf("unexpected formatting with precision 0: %q", s)
	}
	if s := path.Format(3); s != "M 1.235 0.500" {
		t.Errorf("unexpected formatting with precision 3: %q", s)
	}
}

func TestBuilderQuadElevation(t *testing.T) {
	var b Builder
	b.MoveTo(pt(0, 0))
	b.QuadTo(pt(30, 30), pt(60, 0))
	segs := b.Segments()
	if len(segs) != 3 {
		t.Fatalf("expected move, curve and close, got %d segments: %v", len(segs), segs)
	}
	c, ok := segs[1].(CubeTo)
	if !ok {
		t.Fatalf("expected quadratic curve to be elevated to cubic, is %T", segs[1])
	}
	near := func(a, b vec.Vec2) bool {
		return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
	}
	if !near(c.C1, pt(20, 20)) || !near(c.C2, pt(40, 20)) || c.P != pt(60, 0) {
		t.Errorf("unexpected cubic control points: %v", c)
	}
	if _, ok := segs[2].(Close); !ok {
		t.Errorf("expected contour to be closed, last segment is %T", segs[2])
	}
}

func TestBuilderImplicitClose(t *testing.T) {
	var b Builder
	b.MoveTo(pt(0, 0))
	b.LineTo(pt(10, 0))
	b.LineTo(pt(10, 10))
	b.LineTo(pt(0, 0)) // back to start: implied by close
	b.MoveTo(pt(100, 100))
	b.LineTo(pt(110, 100))
	segs := b.Segments()
	want := Segments{
		MoveTo{P: pt(0, 0)},
		LineTo{P: pt(10, 0)},
		LineTo{P: pt(10, 10)},
		Close{},
		MoveTo{P: pt(100, 100)},
		LineTo{P: pt(110, 100)},
		Close{},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("unexpected segments (-want +got):\n%s", diff)
	}
	if again := b.Segments(); len(again) != 0 {
		t.Errorf("expected builder to be reset, has %d segments", len(again))
	}
}

func TestBuilderRepeatedStartPoint(t *testing.T) {
	var b Builder
	b.MoveTo(pt(0, 0))
	b.LineTo(pt(30, 0))
	b.QuadTo(pt(30, 30), pt(0, 0))
	b.LineTo(pt(0, 0)) // zero-length line, as authored by the font
	segs := b.Segments()
	if len(segs) != 4 {
		t.Fatalf("expected move, line, curve and close, got %d segments", len(segs))
	}
	if _, ok := segs[2].(CubeTo); !ok {
		t.Errorf("expected curve back to start, got %T", segs[2])
	}
	if _, ok := segs[3].(Close); !ok {
		t.Errorf("expected zero-length line to be dropped, got %T", segs[3])
	}
}

func TestBuilderExplicitCloseIsIdempotent(t *testing.T) {
	var b Builder
	b.MoveTo(pt(0, 0))
	b.CubeTo(pt(1, 1), pt(2, 1), pt(3, 0))
	b.Close()
	b.Close()
	segs := b.Segments()
	if len(segs) != 3 {
		t.Errorf("expected 3 segments, got %d: %v", len(segs), segs)
	}
}

func TestBuilderLineWithoutMove(t *testing.T) {
	var b Builder
	b.LineTo(pt(5, 5))
	segs := b.Segments()
	if len(segs) != 3 {
		t.Fatalf("expected implicit move, line and close, got %v", segs)
	}
	if m, ok := segs[0].(MoveTo); !ok || m.P != pt(0, 0) {
		t.Errorf("expected implicit move to origin, got %v", segs[0])
	}
}

func TestSegmentBounds(t *testing.T) {
	if _, _, ok := (Segments{}).Bounds(); ok {
		t.Errorf("expected empty outline to have no bounds")
	}
	segs := Segments{
		MoveTo{P: pt(10, -20)},
		LineTo{P: pt(300, 40)},
		CubeTo{C1: pt(5, 700), C2: pt(0, 0), P: pt(10, -20)},
		Close{},
	}
	lo, hi, ok := segs.Bounds()
	if !ok || lo != pt(0, -20) || hi != pt(300, 700) {
		t.Errorf("unexpected bounds %v–%v", lo, hi)
	}
}
