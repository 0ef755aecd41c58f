package figure

import (
	"fmt"
	"slices"
)

// Kind identifies the concrete type behind a [Curve].
type Kind uint8

const (
	KindSegment Kind = iota + 1
	KindCircle
	KindParametricCurve
	KindFunctionGraph
)

func (k Kind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindCircle:
		return "circle"
	case KindParametricCurve:
		return "parametric curve"
	case KindFunctionGraph:
		return "function graph"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Curve is implemented by the drawable curves: [*Segment], [*Circle],
// [*ParametricCurve] and [*FunctionGraph]. Code that needs to tell them
// apart switches on Kind.
type Curve interface {
	Drawable
	Kind() Kind
	// Interval returns the parameter interval of the curve. For segments it
	// is [0, 1], for circles the angular interval in radians, and for
	// function graphs the x interval.
	Interval() (float64, float64)
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	// Tangent returns the derivative vector at parameter t.
	Tangent(t float64) Vec2
}

var (
	_ Curve = (*Segment)(nil)
	_ Curve = (*Circle)(nil)
	_ Curve = (*ParametricCurve)(nil)
	_ Curve = (*FunctionGraph)(nil)
)

// sampleable is what the representative points engine needs from a curve.
type sampleable interface {
	Interval() (float64, float64)
	// Closed reports whether the curve ends where it starts, in which case
	// the final parameter isn't sampled.
	Closed() bool
	// evalComplex returns the real point at t together with the imaginary
	// parts of both coordinates.
	evalComplex(t float64) (Point, Vec2)
	Tangent(t float64) Vec2
	Speed(t float64) float64
	Curvature(t float64) float64
}

// Endpoints returns the points at both ends of the parameter interval.
func Endpoints(c Curve) (Point, Point) {
	a, b := c.Interval()
	return c.Eval(a), c.Eval(b)
}

// CurveOption configures a sampled curve at construction. Curves can't be
// changed afterwards.
type CurveOption func(*curveSettings)

type curveSettings struct {
	conf Config
	opts SamplingOptions
	set  bool
}

// WithConfig samples the curve according to conf. Sampling options given by
// WithSampling take precedence regardless of order.
func WithConfig(conf Config) CurveOption {
	return func(s *curveSettings) { s.conf = conf }
}

// WithSampling overrides the sampling options of the curve.
func WithSampling(opts SamplingOptions) CurveOption {
	return func(s *curveSettings) {
		s.opts = opts
		s.set = true
	}
}

// WithAddedPlotPoints forces the curve to be sampled at the given parameters.
func WithAddedPlotPoints(ts ...float64) CurveOption {
	return func(s *curveSettings) {
		s.opts.AddedPlotPoints = append(s.opts.AddedPlotPoints, ts...)
	}
}

func applyCurveOptions(opts []CurveOption) (Config, SamplingOptions) {
	s := curveSettings{conf: DefaultConfig()}
	var added []float64
	for _, o := range opts {
		o(&s)
		added = append(added, s.opts.AddedPlotPoints...)
		s.opts.AddedPlotPoints = nil
	}
	so := s.opts
	if !s.set {
		so = s.conf.SamplingOptions()
	}
	so.AddedPlotPoints = append(slices.Clone(so.AddedPlotPoints), added...)
	return s.conf, so
}
