package figure

import (
	"fmt"
	"math"
)

// BoundingBox is an axis-aligned rectangle accumulating the extent of drawn
// content.
//
// A bounding box starts out empty (see [EmptyBoundingBox]) and grows as
// points, coordinates or other boxes are appended. The empty box is the
// identity of [BoundingBox.Union]; union is commutative and associative.
//
// Math distinguishes boxes of mathematical content, which determine the
// automatic extent of the axes, from full boxes that also account for
// decorations such as marks and determine the canvas.
type BoundingBox struct {
	XMin, XMax float64
	YMin, YMax float64
	Math       bool
}

// EmptyBoundingBox returns a box that contains nothing.
func EmptyBoundingBox(mathBox bool) BoundingBox {
	return BoundingBox{
		XMin: math.Inf(1),
		XMax: math.Inf(-1),
		YMin: math.Inf(1),
		YMax: math.Inf(-1),
		Math: mathBox,
	}
}

// NewBoundingBox returns the smallest box containing p0 and p1.
func NewBoundingBox(p0, p1 Point, mathBox bool) BoundingBox {
	bb := EmptyBoundingBox(mathBox)
	bb.AppendPoint(p0)
	bb.AppendPoint(p1)
	return bb
}

// BoundingBoxOf returns the smallest box containing all points.
func BoundingBoxOf(mathBox bool, pts ...Point) BoundingBox {
	bb := EmptyBoundingBox(mathBox)
	for _, p := range pts {
		bb.AppendPoint(p)
	}
	return bb
}

// IsEmpty reports whether no point has been added in at least one direction.
func (bb BoundingBox) IsEmpty() bool {
	return bb.XMin > bb.XMax || bb.YMin > bb.YMax
}

// Append makes bb the union of bb and o. Appending an empty box is a no-op.
// The Math flag of bb is kept.
func (bb *BoundingBox) Append(o BoundingBox) {
	bb.XMin = min(bb.XMin, o.XMin)
	bb.XMax = max(bb.XMax, o.XMax)
	bb.YMin = min(bb.YMin, o.YMin)
	bb.YMax = max(bb.YMax, o.YMax)
}

// AppendPoint widens bb so that it contains pt, which acts as a degenerate
// box.
func (bb *BoundingBox) AppendPoint(pt Point) {
	bb.AddX(pt.X)
	bb.AddY(pt.Y)
}

// AddX widens bb horizontally so that it contains the abscissa x.
func (bb *BoundingBox) AddX(x float64) {
	bb.XMin = min(bb.XMin, x)
	bb.XMax = max(bb.XMax, x)
}

// AddY widens bb vertically so that it contains the ordinate y.
func (bb *BoundingBox) AddY(y float64) {
	bb.YMin = min(bb.YMin, y)
	bb.YMax = max(bb.YMax, y)
}

// AppendDrawable appends the math bounding box of d if bb is a math box and
// its full bounding box otherwise.
func (bb *BoundingBox) AppendDrawable(d Drawable, pic *Picture) error {
	var o BoundingBox
	var err error
	if bb.Math {
		o, err = d.MathBoundingBox(pic)
	} else {
		o, err = d.BoundingBox(pic)
	}
	if err != nil {
		return err
	}
	bb.Append(o)
	return nil
}

// Union returns the smallest box enclosing bb and o, with the Math flag of bb.
func (bb BoundingBox) Union(o BoundingBox) BoundingBox {
	bb.Append(o)
	return bb
}

func (bb BoundingBox) Width() float64  { return bb.XMax - bb.XMin }
func (bb BoundingBox) Height() float64 { return bb.YMax - bb.YMin }

func (bb BoundingBox) Center() Point {
	return Point{
		X: 0.5 * (bb.XMin + bb.XMax),
		Y: 0.5 * (bb.YMin + bb.YMax),
	}
}

func (bb BoundingBox) SW() Point { return Pt(bb.XMin, bb.YMin) }
func (bb BoundingBox) NE() Point { return Pt(bb.XMax, bb.YMax) }

// Corners returns the corners in the order SW, SE, NE, NW.
func (bb BoundingBox) Corners() [4]Point {
	return [4]Point{
		Pt(bb.XMin, bb.YMin),
		Pt(bb.XMax, bb.YMin),
		Pt(bb.XMax, bb.YMax),
		Pt(bb.XMin, bb.YMax),
	}
}

// Contains reports whether pt lies in bb, borders included.
func (bb BoundingBox) Contains(pt Point) bool {
	return pt.X >= bb.XMin && pt.X <= bb.XMax && pt.Y >= bb.YMin && pt.Y <= bb.YMax
}

// Enlarged returns bb grown by dx on the left and right and by dy at the top
// and bottom. An empty box stays empty.
func (bb BoundingBox) Enlarged(dx, dy float64) BoundingBox {
	if bb.IsEmpty() {
		return bb
	}
	bb.XMin -= dx
	bb.XMax += dx
	bb.YMin -= dy
	bb.YMax += dy
	return bb
}

// CheckTooLarge returns a *TooLargeError if a coordinate of bb exceeds
// threshold in absolute value. object names the owner of the box in the
// error.
func (bb BoundingBox) CheckTooLarge(threshold float64, object string) error {
	if bb.IsEmpty() {
		return nil
	}
	coords := [...]struct {
		name  string
		value float64
	}{
		{"xmin", bb.XMin},
		{"xmax", bb.XMax},
		{"ymin", bb.YMin},
		{"ymax", bb.YMax},
	}
	for _, c := range coords {
		if math.Abs(c.value) > threshold || math.IsNaN(c.value) {
			return &TooLargeError{
				Object:     object,
				Coordinate: c.name,
				Value:      c.value,
				Threshold:  threshold,
			}
		}
	}
	return nil
}

func (bb BoundingBox) String() string {
	if bb.IsEmpty() {
		return "<empty bounding box>"
	}
	return fmt.Sprintf("<bounding box x∈[%g, %g] y∈[%g, %g]>", bb.XMin, bb.XMax, bb.YMin, bb.YMax)
}
