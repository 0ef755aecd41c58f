package figure

import (
	"errors"
	"math"
	"testing"
)

func TestSingleAxeEnlargeOnce(t *testing.T) {
	pic := testPicture(2, 1, Sz(0.5, 0.5))
	a := NewSingleAxe(Pt(0, 0), Vec(1, 0), -1, 2)
	if err := a.EnlargeALittle(0.5, pic); err != nil {
		t.Fatal(err)
	}
	// 0.5cm is 0.25 units at 2cm per unit
	if a.Min != -1.25 || a.Max != 2.25 {
		t.Errorf("got [%v, %v], want [-1.25, 2.25]", a.Min, a.Max)
	}
	if !a.Enlarged() {
		t.Error("axis not marked as enlarged")
	}
	err := a.EnlargeALittle(0.5, pic)
	if !errors.Is(err, ErrAlreadyEnlarged) {
		t.Fatalf("got error %v on second enlargement, want ErrAlreadyEnlarged", err)
	}
	if a.Min != -1.25 || a.Max != 2.25 {
		t.Errorf("failed enlargement changed the axis to [%v, %v]", a.Min, a.Max)
	}
}

func TestSingleAxeEnlargeNeedsPicture(t *testing.T) {
	a := NewSingleAxe(Pt(0, 0), Vec(0, 1), 0, 1)
	if err := a.EnlargeALittle(0.5, nil); !errors.Is(err, ErrNoPicture) {
		t.Errorf("got error %v, want ErrNoPicture", err)
	}
	if a.Enlarged() {
		t.Error("axis marked as enlarged after a failure")
	}
}

func TestAxesEnlargeOnce(t *testing.T) {
	pic := testPicture(1, 1, Sz(0.5, 0.5))
	axes := NewAxes(Pt(0, 0), NewBoundingBox(Pt(-1, -1), Pt(1, 1), true))
	if err := axes.EnlargeALittle(0.5, pic); err != nil {
		t.Fatal(err)
	}
	if err := axes.EnlargeALittle(0.5, pic); !errors.Is(err, ErrAlreadyEnlarged) {
		t.Errorf("got error %v, want ErrAlreadyEnlarged", err)
	}
	bb, err := axes.MathBoundingBox(pic)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, BoundingBox{XMin: -1.5, XMax: 1.5, YMin: -1.5, YMax: 1.5, Math: true}, bb)
}

func TestAxesFitTo(t *testing.T) {
	axes := NewAxes(Pt(0, 0), EmptyBoundingBox(true))
	axes.FitTo(BoundingBox{XMin: -1.5, XMax: 2.2, YMin: 0.3, YMax: 4.1})
	got := [4]float64{axes.X.Min, axes.X.Max, axes.Y.Min, axes.Y.Max}
	diff(t, [4]float64{-2, 3, 0, 5}, got)
}

func TestSingleAxeGraduations(t *testing.T) {
	a := NewSingleAxe(Pt(0, 0), Vec(1, 0), -2.5, 3.2)
	ks, err := a.Graduations()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{-2, -1, 1, 2, 3}, ks)
	a.Dx = 0.5
	ks, err = a.Graduations()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{-2.5, -2, -1.5, -1, -0.5, 0.5, 1, 1.5, 2, 2.5, 3}, ks)
}

func TestSingleAxeGraduationsTooMany(t *testing.T) {
	for _, tt := range []struct {
		lo, hi float64
	}{
		{0, math.Inf(1)},
		{math.Inf(-1), 1},
		{math.NaN(), 1},
		{0, 1e9},
		{-1e300, 1e300},
	} {
		a := NewSingleAxe(Pt(0, 0), Vec(1, 0), tt.lo, tt.hi)
		if _, err := a.Graduations(); !errors.Is(err, ErrTooLarge) {
			t.Errorf("[%v, %v]: got error %v, want ErrTooLarge", tt.lo, tt.hi, err)
		}
		pic := testPicture(1, 1, Sz(0.4, 0.3))
		if _, err := a.BoundingBox(pic); !errors.Is(err, ErrTooLarge) {
			t.Errorf("[%v, %v]: got bounding box error %v, want ErrTooLarge", tt.lo, tt.hi, err)
		}
	}

	// few graduations far from the origin
	a := NewSingleAxe(Pt(0, 0), Vec(1, 0), 1e17, 1e17+1000)
	a.Dx = 1000
	ks, err := a.Graduations()
	if err != nil {
		t.Fatal(err)
	}
	if len(ks) > 2 {
		t.Errorf("got %d graduations, want at most 2", len(ks))
	}
}

func TestAxisMarkFollowsEnlargement(t *testing.T) {
	pic := testPicture(1, 1, Sz(0.5, 0.4))
	a := NewSingleAxe(Pt(0, 0), Vec(1, 0), 0, 3)
	m := a.PutMark(0.3, Degrees(0), "$x$", PositionE)
	before, err := m.BoundingBox(pic)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.EnlargeALittle(0.5, pic); err != nil {
		t.Fatal(err)
	}
	c, err := m.CentralPoint(pic)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, c, Pt(3.5+0.3+0.25, 0), 1e-12)
	after, err := m.BoundingBox(pic)
	if err != nil {
		t.Fatal(err)
	}
	if !after.Contains(c) {
		t.Errorf("mark box %v doesn't contain the mark center %v", after, c)
	}
	if after == before {
		t.Errorf("mark box unchanged by the enlargement: %v", after)
	}
	full, err := a.BoundingBox(pic)
	if err != nil {
		t.Fatal(err)
	}
	if full.XMax < c.X+0.25-1e-12 {
		t.Errorf("axis box %v doesn't cover its mark", full)
	}
}

func TestSingleAxeBoundingBox(t *testing.T) {
	pic := testPicture(1, 1, Sz(0.4, 0.3))
	a := NewSingleAxe(Pt(0, 0), Vec(1, 0), 0, 2)
	mbb, err := a.MathBoundingBox(pic)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, BoundingBox{XMin: 0, XMax: 2, YMin: 0, YMax: 0, Math: true}, mbb)

	full, err := a.BoundingBox(pic)
	if err != nil {
		t.Fatal(err)
	}
	// labels below the axis: 0.3 away, 0.3 high
	diff(t, BoundingBox{XMin: 0, XMax: 2.2, YMin: -0.6, YMax: tickLength}, full, approx)
}
