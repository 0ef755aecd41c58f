package figure

import (
	"fmt"
	"math"
)

// ParametricCurve is the curve t ↦ (x(t), y(t)) for t in [tI, tF].
type ParametricCurve struct {
	ObjectGraph
	GenericCurve

	x, y     Function
	dx, dy   Function
	ddx, ddy Function
	tI, tF   float64
	curveOpt []CurveOption
}

// NewParametricCurve returns the curve (x(t), y(t)) over [tI, tF].
func NewParametricCurve(x, y Function, tI, tF float64, opts ...CurveOption) *ParametricCurve {
	c := &ParametricCurve{
		x:        x,
		y:        y,
		dx:       x.Derivative(),
		dy:       y.Derivative(),
		ddx:      x.SecondDerivative(),
		ddy:      y.SecondDerivative(),
		tI:       tI,
		tF:       tF,
		curveOpt: opts,
	}
	c.ObjectGraph.init(c)
	conf, so := applyCurveOptions(opts)
	c.GenericCurve.init(c, conf, so)
	return c
}

// Functions returns the coordinate functions.
func (c *ParametricCurve) Functions() (x, y Function) { return c.x, c.y }

func (c *ParametricCurve) Kind() Kind { return KindParametricCurve }

func (c *ParametricCurve) Interval() (float64, float64) { return c.tI, c.tF }

// Closed reports whether the curve ends where it starts.
func (c *ParametricCurve) Closed() bool {
	return c.Eval(c.tI).Near(c.Eval(c.tF), 1e-9)
}

func (c *ParametricCurve) Eval(t float64) Point {
	return Pt(c.x.Eval(t), c.y.Eval(t))
}

func (c *ParametricCurve) evalComplex(t float64) (Point, Vec2) {
	x, y := c.x.EvalComplex(t), c.y.EvalComplex(t)
	return Pt(real(x), real(y)), Vec(imag(x), imag(y))
}

// Derivative returns the curve t ↦ (x'(t), y'(t)) over the same interval.
func (c *ParametricCurve) Derivative() *ParametricCurve {
	return NewParametricCurve(c.dx, c.dy, c.tI, c.tF, c.curveOpt...)
}

// Tangent returns the derivative vector (x'(t), y'(t)).
func (c *ParametricCurve) Tangent(t float64) Vec2 {
	return Vec(c.dx.Eval(t), c.dy.Eval(t))
}

// Normal returns the unit normal at t, the tangent turned by +90°.
func (c *ParametricCurve) Normal(t float64) Vec2 {
	return c.Tangent(t).Orthogonal().Normalize()
}

// Speed returns the norm of the tangent.
func (c *ParametricCurve) Speed(t float64) float64 {
	return c.Tangent(t).Hypot()
}

// Curvature returns the signed curvature (x'y'' - y'x'') / speed³. It is
// positive where the curve turns left.
func (c *ParametricCurve) Curvature(t float64) float64 {
	d := c.Tangent(t)
	dd := Vec(c.ddx.Eval(t), c.ddy.Eval(t))
	s := d.Hypot()
	if s == 0 {
		return 0
	}
	return d.Cross(dd) / (s * s * s)
}

// ArcLength returns the length of the curve between parameters a and b.
func (c *ParametricCurve) ArcLength(a, b float64) float64 {
	return integrate(c.Speed, a, b, c.conf.IntegrationPoints)
}

// Length returns the length of the whole curve.
func (c *ParametricCurve) Length() float64 {
	return c.ArcLength(c.tI, c.tF)
}

// TotalCurvature returns the integral of |κ| over the curve, that is the
// total turning in radians.
func (c *ParametricCurve) TotalCurvature() float64 {
	return integrate(func(t float64) float64 {
		return math.Abs(c.Curvature(t)) * c.Speed(t)
	}, c.tI, c.tF, c.conf.IntegrationPoints)
}

func (c *ParametricCurve) computeMathBoundingBox(*Picture) (BoundingBox, error) {
	return c.samplesBoundingBox()
}

// MarkPoint returns the point at the middle of the parameter interval.
func (c *ParametricCurve) MarkPoint(*Picture) (Point, error) {
	return c.Eval((c.tI + c.tF) / 2), nil
}

func (c *ParametricCurve) Render(_ *Picture, w *CodeWriter) error {
	pts, err := c.RepresentativePoints()
	if err != nil {
		return fmt.Errorf("sampling %v: %w", c, err)
	}
	w.Plot(c.Options(), pts, c.Closed())
	return nil
}

func (c *ParametricCurve) String() string {
	return fmt.Sprintf("parametric curve over [%g, %g]", c.tI, c.tF)
}
