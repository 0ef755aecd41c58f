package figure

import (
	"fmt"
	"math"
)

// Point is a point in model coordinates.
//
// Points compare with == by exact coordinate equality. Code that compares
// computed points uses [Point.Near] instead.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// Near reports whether pt and o are within eps of each other in both
// coordinates.
func (pt Point) Near(o Point, eps float64) bool {
	return AlmostEqual(pt.X, o.X, eps) && AlmostEqual(pt.Y, o.Y, eps)
}

// Rotate rotates pt by a about center.
func (pt Point) Rotate(center Point, a Angle) Point {
	return pt.Transform(RotateAbout(a.Radians(), center))
}

// Dilate returns the image of pt under the homothety of ratio k about center.
func (pt Point) Dilate(center Point, k float64) Point {
	return pt.Transform(DilateAbout(k, center))
}

// Polar returns the point at distance r from pt in direction a.
func (pt Point) Polar(r float64, a Angle) Point {
	return pt.Translate(a.Unit().Mul(r))
}

// BoundingBox returns the degenerate math bounding box containing only pt.
func (pt Point) BoundingBox() BoundingBox {
	bb := EmptyBoundingBox(true)
	bb.AppendPoint(pt)
	return bb
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
