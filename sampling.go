package figure

import (
	"math"
	"slices"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SamplingOptions controls how many representative points are computed for
// a curve.
type SamplingOptions struct {
	// LinearPlotPoints evenly spaced parameters. For closed curves the last
	// parameter is left out, as it coincides with the first.
	LinearPlotPoints int
	// CurvaturePlotPoints points spread so that the total curvature between
	// successive points is constant.
	CurvaturePlotPoints int
	// ArcLengthPlotPoints points spread so that the arc length between
	// successive points is constant.
	ArcLengthPlotPoints int
	// AddedPlotPoints are parameters that are always sampled, for example to
	// resolve a known singularity.
	AddedPlotPoints []float64
}

// SamplingOptions returns the sampling options configured in c.
func (c Config) SamplingOptions() SamplingOptions {
	return SamplingOptions{
		LinearPlotPoints:    c.LinearPlotPoints,
		CurvaturePlotPoints: c.CurvaturePlotPoints,
		ArcLengthPlotPoints: c.ArcLengthPlotPoints,
	}
}

// CurveSample is one representative point of a curve.
type CurveSample struct {
	Param float64
	Point Point
	// MarkAngle is the direction of the outward normal at Point, a good
	// default angle for a mark attached there.
	MarkAngle Angle
}

// Dichotomy searches parameters by bisection.
type Dichotomy struct {
	// MaxIterations bounds the number of bisections. Exceeding it is an
	// error.
	MaxIterations int
	// Nodes is the number of Gauss-Legendre nodes per integral.
	Nodes int
}

// Dichotomy returns the dichotomy settings configured in c.
func (c Config) Dichotomy() Dichotomy {
	return Dichotomy{MaxIterations: c.MaxDichotomyIterations, Nodes: c.IntegrationPoints}
}

// Advance returns t in (start, end] such that the integral of f from start to
// t equals target, up to target/100. f must be non-negative.
//
// If the integral over the whole of [start, end] falls short of target, ok is
// false: there is no further point. Failing to converge within MaxIterations
// returns a *ShouldNotHappenError.
func (d Dichotomy) Advance(f func(float64) float64, start, end, target float64) (t float64, ok bool, err error) {
	if !(target > 0) {
		return 0, false, shouldNotHappen("dichotomy target must be positive, got %g", target)
	}
	tol := target / 100
	whole := integrate(f, start, end, d.Nodes)
	if math.Abs(whole-target) <= tol {
		return end, true, nil
	}
	if whole < target {
		return end, false, nil
	}
	tooSmall, tooLarge := start, end
	for range d.MaxIterations {
		mid := 0.5 * (tooSmall + tooLarge)
		v := integrate(f, start, mid, d.Nodes)
		if math.Abs(v-target) <= tol {
			return mid, true, nil
		}
		if v < target {
			tooSmall = mid
		} else {
			tooLarge = mid
		}
	}
	return 0, false, shouldNotHappen("dichotomy from %g towards %g did not reach %g after %d iterations (bracket [%g, %g])",
		start, end, target, d.MaxIterations, tooSmall, tooLarge)
}

// AdvanceByIntegral is Advance with at most maxIter bisections and the
// default number of integration nodes.
func AdvanceByIntegral(f func(float64) float64, start, end, target float64, maxIter int) (float64, bool, error) {
	d := DefaultConfig().Dichotomy()
	d.MaxIterations = maxIter
	return d.Advance(f, start, end, target)
}

// GenericCurve holds the representative points of a curve. It is computed on
// first use and kept for the lifetime of the curve, which is why curves can't
// be modified after construction.
type GenericCurve struct {
	curve sampleable
	opts  SamplingOptions
	conf  Config

	once     sync.Once
	samples  []CurveSample
	warnings []error
	err      error
}

func (g *GenericCurve) init(c sampleable, conf Config, opts SamplingOptions) {
	g.curve = c
	g.conf = conf
	g.opts = opts
}

// SamplingOptions returns the options the curve is sampled with.
func (g *GenericCurve) SamplingOptions() SamplingOptions {
	opts := g.opts
	opts.AddedPlotPoints = slices.Clone(opts.AddedPlotPoints)
	return opts
}

// Samples returns the representative points of the curve along with their
// parameters and advised mark angles.
func (g *GenericCurve) Samples() ([]CurveSample, error) {
	g.once.Do(func() {
		g.samples, g.warnings, g.err = sampleCurve(g.curve, g.opts, g.conf)
	})
	return g.samples, g.err
}

// RepresentativeParameters returns the sorted parameters of the
// representative points.
func (g *GenericCurve) RepresentativeParameters() ([]float64, error) {
	samples, err := g.Samples()
	if err != nil {
		return nil, err
	}
	ts := make([]float64, len(samples))
	for i, s := range samples {
		ts[i] = s.Param
	}
	return ts, nil
}

// RepresentativePoints returns the points used to draw the curve.
func (g *GenericCurve) RepresentativePoints() ([]Point, error) {
	samples, err := g.Samples()
	if err != nil {
		return nil, err
	}
	pts := make([]Point, len(samples))
	for i, s := range samples {
		pts[i] = s.Point
	}
	return pts, nil
}

// Warnings returns the non-fatal problems found while sampling, such as
// discarded imaginary parts. The curve is sampled if it wasn't already.
func (g *GenericCurve) Warnings() []error {
	_, _ = g.Samples()
	return slices.Clone(g.warnings)
}

// samplesBoundingBox returns the math bounding box of the representative
// points.
func (g *GenericCurve) samplesBoundingBox() (BoundingBox, error) {
	pts, err := g.RepresentativePoints()
	if err != nil {
		return BoundingBox{}, err
	}
	return BoundingBoxOf(true, pts...), nil
}

// representativeParameters computes the sorted, deduplicated parameters at
// which the curve c gets sampled.
func representativeParameters(c sampleable, opts SamplingOptions, conf Config) ([]float64, error) {
	pI, pF := c.Interval()
	set := treeset.NewWith(utils.Float64Comparator)
	for _, t := range linearParameters(pI, pF, opts.LinearPlotPoints, c.Closed()) {
		set.Add(t)
	}
	dich := conf.Dichotomy()
	if opts.CurvaturePlotPoints > 0 {
		turning := func(t float64) float64 { return math.Abs(c.Curvature(t)) * c.Speed(t) }
		ts, err := adaptiveParameters(dich, turning, pI, pF, opts.CurvaturePlotPoints, c.Closed())
		if err != nil {
			return nil, err
		}
		for _, t := range ts {
			set.Add(t)
		}
	}
	if opts.ArcLengthPlotPoints > 0 {
		ts, err := adaptiveParameters(dich, c.Speed, pI, pF, opts.ArcLengthPlotPoints, c.Closed())
		if err != nil {
			return nil, err
		}
		for _, t := range ts {
			set.Add(t)
		}
	}
	for _, t := range opts.AddedPlotPoints {
		if t < min(pI, pF) || t > max(pI, pF) {
			tracer().Infof("added plot point %g outside of [%g, %g] ignored", t, pI, pF)
			continue
		}
		set.Add(t)
	}
	params := make([]float64, 0, set.Size())
	for _, v := range set.Values() {
		params = append(params, v.(float64))
	}
	return params, nil
}

// linearParameters returns n evenly spaced parameters in [pI, pF]. For closed
// curves the step is (pF-pI)/n and pF itself is left out.
func linearParameters(pI, pF float64, n int, closed bool) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{pI}
	}
	var step float64
	if closed {
		step = (pF - pI) / float64(n)
	} else {
		step = (pF - pI) / float64(n-1)
	}
	ts := make([]float64, n)
	for k := range ts {
		ts[k] = pI + float64(k)*step
	}
	if !closed {
		ts[n-1] = pF
	}
	return ts
}

// adaptiveParameters spreads up to n parameters over [pI, pF] so that the
// integral of the density f between two successive ones is constant. On
// closed curves pF is the same point as pI, so parameters less than half a
// step before pF are left out.
func adaptiveParameters(d Dichotomy, f func(float64) float64, pI, pF float64, n int, closed bool) ([]float64, error) {
	total := integrate(f, pI, pF, d.Nodes)
	if !(total > 0) {
		return nil, nil
	}
	budget := total / float64(n)
	ts := make([]float64, 0, n)
	for ll := pI; len(ts) < n; {
		nl, ok, err := d.Advance(f, ll, pF, budget)
		if err != nil {
			return nil, err
		}
		if !ok || nl <= ll {
			break
		}
		if closed && integrate(f, nl, pF, d.Nodes) < budget/2 {
			break
		}
		ts = append(ts, nl)
		ll = nl
	}
	return ts, nil
}

func sampleCurve(c sampleable, opts SamplingOptions, conf Config) ([]CurveSample, []error, error) {
	params, err := representativeParameters(c, opts, conf)
	if err != nil {
		return nil, nil, err
	}
	var warnings []error
	samples := make([]CurveSample, 0, len(params))
	for _, t := range params {
		pt, im := c.evalComplex(t)
		if im.Hypot() > conf.ImaginaryTolerance {
			ierr := &ImaginaryPartError{Param: t, Real: pt, Imag: im}
			if conf.Strict {
				return nil, nil, ierr
			}
			tracer().Errorf("%v; keeping the real part", ierr)
			warnings = append(warnings, ierr)
		}
		samples = append(samples, CurveSample{
			Param:     t,
			Point:     pt,
			MarkAngle: outwardNormalAngle(c.Tangent(t)),
		})
	}
	tracer().Debugf("sampled %d representative points", len(samples))
	return samples, warnings, nil
}

// outwardNormalAngle returns the direction of the tangent rotated by -90°,
// which points outside of anti-clockwise closed curves.
func outwardNormalAngle(tangent Vec2) Angle {
	if tangent.Hypot2() == 0 {
		return Angle{}
	}
	return AngleOf(Vec2{X: tangent.Y, Y: -tangent.X})
}
