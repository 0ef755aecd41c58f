package figure

import (
	"errors"
	"math"
	"testing"
)

func TestBoundingBoxUnionScenario(t *testing.T) {
	bb := NewBoundingBox(Pt(0, 0), Pt(2, 10), true)
	bb.AppendPoint(Pt(-1, 5))
	want := BoundingBox{XMin: -1, XMax: 2, YMin: 0, YMax: 10, Math: true}
	diff(t, want, bb)
}

func TestBoundingBoxUnionProperties(t *testing.T) {
	boxes := []BoundingBox{
		NewBoundingBox(Pt(0, 0), Pt(1, 1), true),
		NewBoundingBox(Pt(-3, 2), Pt(-1, 7), true),
		NewBoundingBox(Pt(0.5, -4), Pt(8, 0.25), true),
		Pt(12, -9).BoundingBox(),
	}
	empty := EmptyBoundingBox(true)
	for _, a := range boxes {
		diff(t, a, a.Union(empty))
		diff(t, a, empty.Union(a))
		for _, b := range boxes {
			diff(t, a.Union(b), b.Union(a))
			for _, c := range boxes {
				diff(t, a.Union(b).Union(c), a.Union(b.Union(c)))
			}
		}
	}
}

func TestBoundingBoxContainsPoints(t *testing.T) {
	pts := []Point{Pt(3, -1), Pt(0.5, 4), Pt(-2, 2), Pt(1, 1), Pt(3, 0)}
	bb := BoundingBoxOf(true, pts...)
	want := BoundingBox{XMin: -2, XMax: 3, YMin: -1, YMax: 4, Math: true}
	diff(t, want, bb)
	for _, p := range pts {
		if !bb.Contains(p) {
			t.Errorf("%v doesn't contain %v", bb, p)
		}
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bb := EmptyBoundingBox(false)
	if !bb.IsEmpty() {
		t.Fatalf("new box %v isn't empty", bb)
	}
	bb.AddX(3)
	if !bb.IsEmpty() {
		t.Errorf("box with only an x coordinate %v isn't empty", bb)
	}
	bb.AddY(-1)
	if bb.IsEmpty() {
		t.Errorf("box %v is empty", bb)
	}
	diff(t, BoundingBox{XMin: 3, XMax: 3, YMin: -1, YMax: -1}, bb)

	if got := EmptyBoundingBox(true).Enlarged(1, 1); !got.IsEmpty() {
		t.Errorf("enlarged empty box %v isn't empty", got)
	}
}

func TestBoundingBoxGeometry(t *testing.T) {
	bb := NewBoundingBox(Pt(4, 1), Pt(0, -1), true)
	if w, h := bb.Width(), bb.Height(); w != 4 || h != 2 {
		t.Errorf("got size %v×%v, want 4×2", w, h)
	}
	diff(t, Pt(2, 0), bb.Center())
	diff(t, [4]Point{Pt(0, -1), Pt(4, -1), Pt(4, 1), Pt(0, 1)}, bb.Corners())
	diff(t, BoundingBox{XMin: -1, XMax: 5, YMin: -1.5, YMax: 1.5, Math: true}, bb.Enlarged(1, 0.5))
}

func TestBoundingBoxTooLarge(t *testing.T) {
	bb := NewBoundingBox(Pt(0, 0), Pt(1, 2e7), true)
	err := bb.CheckTooLarge(1e6, "segment")
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("got error %v, want ErrTooLarge", err)
	}
	var tl *TooLargeError
	if !errors.As(err, &tl) {
		t.Fatalf("got error %T, want *TooLargeError", err)
	}
	diff(t, &TooLargeError{Object: "segment", Coordinate: "ymax", Value: 2e7, Threshold: 1e6}, tl)

	if err := NewBoundingBox(Pt(0, 0), Pt(1, 1), true).CheckTooLarge(1e6, "segment"); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := Pt(math.NaN(), 0).BoundingBox().CheckTooLarge(1e6, "point"); !errors.Is(err, ErrTooLarge) {
		t.Errorf("got error %v for NaN coordinate, want ErrTooLarge", err)
	}
}
