package figure

import (
	"math"
	"testing"
)

func TestSegmentMeasures(t *testing.T) {
	s := NewSegment(Pt(1, 1), Pt(4, 5))
	if l := s.Length(); l != 5 {
		t.Errorf("got length %v, want 5", l)
	}
	if m := s.Slope(); math.Abs(m-4.0/3) > 1e-12 {
		t.Errorf("got slope %v, want 4/3", m)
	}
	if m := NewSegment(Pt(2, 0), Pt(2, 3)).Slope(); !math.IsInf(m, 1) {
		t.Errorf("got slope %v for a vertical segment, want +Inf", m)
	}
	diff(t, Pt(2.5, 3), s.Midpoint())
	diff(t, Vec(3, 4), s.Direction())
	if got := NewSegment(Pt(0, 0), Pt(-1, 1)).Angle().SnappedDegrees(); got != 135 {
		t.Errorf("got angle %v°, want 135°", got)
	}
}

func TestSegmentEquation(t *testing.T) {
	segs := []*Segment{
		NewSegment(Pt(1, 1), Pt(4, 5)),
		NewSegment(Pt(0, 2), Pt(0, -3)),
		NewSegment(Pt(-1, 3), Pt(5, 3)),
	}
	for _, s := range segs {
		a, b, c := s.Equation()
		if n := a*a + b*b; math.Abs(n-1) > 1e-12 {
			t.Errorf("%v: a²+b² = %v, want 1", s, n)
		}
		for _, p := range []Point{s.I(), s.F(), s.Midpoint()} {
			if v := a*p.X + b*p.Y + c; math.Abs(v) > 1e-12 {
				t.Errorf("%v: %v is off the line by %v", s, p, v)
			}
		}
	}
}

func TestSegmentTransforms(t *testing.T) {
	const epsilon = 1e-9
	s := NewSegment(Pt(0, 0), Pt(2, 0))

	r := s.Rotate(Pt(0, 0), Degrees(90))
	assertNear(t, r.I(), Pt(0, 0), epsilon)
	assertNear(t, r.F(), Pt(0, 2), epsilon)

	d := s.Dilate(2)
	diff(t, Pt(-1, 0), d.I())
	diff(t, Pt(3, 0), d.F())

	n := s.Normalize(5)
	diff(t, Pt(0, 0), n.I())
	diff(t, Pt(5, 0), n.F())

	tr := NewAffineVector(Pt(0, 0), Pt(1, 1)).Translate(Vec(1, -1))
	diff(t, Pt(1, -1), tr.I())
	diff(t, Pt(2, 0), tr.F())
	if !tr.IsVector() {
		t.Error("translated vector lost its arrow")
	}

	diff(t, Vec(0, -1), s.RightNormal())
	diff(t, Pt(0.5, 0), s.Eval(0.25))
}

func TestSegmentIntersection(t *testing.T) {
	a := NewSegment(Pt(0, 0), Pt(2, 2))
	b := NewSegment(Pt(0, 2), Pt(2, 0))
	p, ok := a.Intersection(b)
	if !ok {
		t.Fatal("no intersection found")
	}
	assertNear(t, p, Pt(1, 1), 1e-12)

	if _, ok := a.Intersection(a.Translate(Vec(0, 1))); ok {
		t.Error("parallel segments intersect")
	}
}

func TestMeasureLengthRightHandSide(t *testing.T) {
	s := NewSegment(Pt(0, 0), Pt(1, 0))
	m := NewMeasureLength(s, 0.1)
	off := m.OffsetSegment()
	assertNear(t, off.I(), Pt(0, -0.1), 1e-12)
	assertNear(t, off.F(), Pt(1, -0.1), 1e-12)
	if _, ok := off.Option("<->"); !ok {
		t.Error("measure isn't drawn with arrows on both ends")
	}

	pic := testPicture(1, 1, Sz(0.5, 0.3))
	if err := pic.DrawObject(m); err != nil {
		t.Fatal(err)
	}
	objs := pic.Objects()
	if len(objs) != 2 || objs[0] != Drawable(m) || objs[1] != Drawable(off) {
		t.Errorf("got objects %v, want the measure and its arrows", objs)
	}
}

func TestSegmentRender(t *testing.T) {
	s := NewSegment(Pt(0, 0), Pt(1.23456789, -2))
	s.SetOption("color", "blue")
	w := NewCodeWriter(4)
	if err := s.Render(nil, w); err != nil {
		t.Fatal(err)
	}
	if got, want := w.String(), "\\draw [color=blue] (0,0) -- (1.2346,-2);\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	w = NewCodeWriter(4)
	if err := NewAffineVector(Pt(0, 0), Pt(1, 0)).Render(nil, w); err != nil {
		t.Fatal(err)
	}
	if got, want := w.String(), "\\draw [->] (0,0) -- (1,0);\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
