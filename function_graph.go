package figure

import (
	"fmt"
)

// FunctionGraph is the graph of y = f(x) for x in [xmin, xmax]. It is sampled as
// the parametric curve (t, f(t)).
type FunctionGraph struct {
	ObjectGraph

	f          Function
	xmin, xmax float64
	curve      *ParametricCurve
}

// NewFunctionGraph returns the graph of f over [xmin, xmax].
func NewFunctionGraph(f Function, xmin, xmax float64, opts ...CurveOption) *FunctionGraph {
	g := &FunctionGraph{
		f:     f,
		xmin:  xmin,
		xmax:  xmax,
		curve: NewParametricCurve(Linear(1, 0), f, xmin, xmax, opts...),
	}
	g.init(g)
	return g
}

// Function returns f.
func (g *FunctionGraph) Function() Function { return g.f }

// ParametricCurve returns the curve (t, f(t)) the graph is sampled as.
func (g *FunctionGraph) ParametricCurve() *ParametricCurve { return g.curve }

func (g *FunctionGraph) Kind() Kind { return KindFunctionGraph }

// Interval returns [xmin, xmax].
func (g *FunctionGraph) Interval() (float64, float64) { return g.xmin, g.xmax }

// Eval returns the point (x, f(x)).
func (g *FunctionGraph) Eval(x float64) Point { return g.curve.Eval(x) }

// Tangent returns (1, f'(x)).
func (g *FunctionGraph) Tangent(x float64) Vec2 { return g.curve.Tangent(x) }

// Slope returns f'(x).
func (g *FunctionGraph) Slope(x float64) float64 { return g.curve.dy.Eval(x) }

// Samples returns the representative points of the graph.
func (g *FunctionGraph) Samples() ([]CurveSample, error) { return g.curve.Samples() }

// RepresentativePoints returns the points used to draw the graph.
func (g *FunctionGraph) RepresentativePoints() ([]Point, error) {
	return g.curve.RepresentativePoints()
}

// Warnings returns the problems found while sampling the graph.
func (g *FunctionGraph) Warnings() []error { return g.curve.Warnings() }

// Integral returns the integral of f over [a, b].
func (g *FunctionGraph) Integral(a, b float64) float64 {
	return g.f.Integral(a, b, g.curve.conf.IntegrationPoints)
}

func (g *FunctionGraph) computeMathBoundingBox(pic *Picture) (BoundingBox, error) {
	return g.curve.MathBoundingBox(pic)
}

// MarkPoint returns the point of the graph at the middle of [xmin, xmax].
func (g *FunctionGraph) MarkPoint(*Picture) (Point, error) {
	return g.Eval((g.xmin + g.xmax) / 2), nil
}

func (g *FunctionGraph) Render(_ *Picture, w *CodeWriter) error {
	pts, err := g.RepresentativePoints()
	if err != nil {
		return fmt.Errorf("sampling %v: %w", g, err)
	}
	w.Plot(g.Options(), pts, false)
	return nil
}

func (g *FunctionGraph) String() string {
	return fmt.Sprintf("graph of a function over [%g, %g]", g.xmin, g.xmax)
}
