package figure

import (
	"fmt"
	"math"
)

// Circle is an arc of circle, drawn anti-clockwise from AngleI to AngleF.
type Circle struct {
	ObjectGraph
	GenericCurve

	center         Point
	radius         float64
	angleI, angleF Angle
}

// NewCircle returns the full circle of the given center and radius.
func NewCircle(center Point, radius float64, opts ...CurveOption) *Circle {
	return NewArc(center, radius, Radians(0), Radians(2*math.Pi), opts...)
}

// NewArc returns the arc of circle from angleI to angleF.
func NewArc(center Point, radius float64, angleI, angleF Angle, opts ...CurveOption) *Circle {
	c := &Circle{center: center, radius: radius, angleI: angleI, angleF: angleF}
	c.ObjectGraph.init(c)
	conf, so := applyCurveOptions(opts)
	c.GenericCurve.init(c, conf, so)
	return c
}

func (c *Circle) Center() Point   { return c.center }
func (c *Circle) Radius() float64 { return c.radius }

// Angles returns the angular interval of the arc.
func (c *Circle) Angles() (Angle, Angle) { return c.angleI, c.angleF }

func (c *Circle) Kind() Kind { return KindCircle }

// Interval returns the angular interval in radians.
func (c *Circle) Interval() (float64, float64) {
	return c.angleI.Radians(), c.angleF.Radians()
}

// Closed reports whether the arc is a full turn.
func (c *Circle) Closed() bool {
	return AlmostEqual(math.Abs(c.angleF.Radians()-c.angleI.Radians()), 2*math.Pi, 1e-12)
}

// Eval returns the point at angle θ, in radians.
func (c *Circle) Eval(theta float64) Point {
	return c.center.Polar(c.radius, Radians(theta))
}

func (c *Circle) evalComplex(theta float64) (Point, Vec2) {
	return c.Eval(theta), Vec2{}
}

func (c *Circle) Tangent(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec(-c.radius*sin, c.radius*cos)
}

func (c *Circle) Speed(float64) float64     { return math.Abs(c.radius) }
func (c *Circle) Curvature(float64) float64 { return 1 / c.radius }

// Length returns the length of the arc.
func (c *Circle) Length() float64 {
	a, b := c.Interval()
	return math.Abs(c.radius * (b - a))
}

// computeMathBoundingBox returns the box of the endpoints and of the extreme
// points whose angles lie within the arc. It doesn't need sampling.
func (c *Circle) computeMathBoundingBox(*Picture) (BoundingBox, error) {
	a, b := c.Interval()
	if a > b {
		a, b = b, a
	}
	bb := BoundingBoxOf(true, c.Eval(a), c.Eval(b))
	for k := math.Ceil(a / (math.Pi / 2)); k*math.Pi/2 <= b; k++ {
		bb.AppendPoint(c.Eval(k * math.Pi / 2))
	}
	return bb, nil
}

// MarkPoint returns the point at the middle of the arc.
func (c *Circle) MarkPoint(*Picture) (Point, error) {
	a, b := c.Interval()
	return c.Eval((a + b) / 2), nil
}

func (c *Circle) Render(_ *Picture, w *CodeWriter) error {
	pts, err := c.RepresentativePoints()
	if err != nil {
		return fmt.Errorf("sampling %v: %w", c, err)
	}
	w.Plot(c.Options(), pts, c.Closed())
	return nil
}

func (c *Circle) String() string {
	return fmt.Sprintf("circle center %v radius %g from %v to %v", c.center, c.radius, c.angleI, c.angleF)
}
