package figure

import (
	"fmt"
	"math"
)

// tickLength is the half length of graduation ticks, in centimeters.
const tickLength = 0.1

// SingleAxe is one axis: the segment from Origin + Min·Base to
// Origin + Max·Base, graduated every Dx multiples of Base.
//
// An axis can be enlarged by a visual margin exactly once. Automatic axes are
// fitted to the content of a picture and then enlarged in a single forward
// pass; enlarging again is an error.
type SingleAxe struct {
	ObjectGraph

	Origin    Point
	Base      Vec2
	Min, Max  float64
	Dx        float64
	Numbering bool

	enlarged bool
}

// NewSingleAxe returns the axis through origin with unit vector base, from
// lo to hi multiples of base. It is graduated and numbered at every unit.
func NewSingleAxe(origin Point, base Vec2, lo, hi float64) *SingleAxe {
	a := &SingleAxe{Origin: origin, Base: base, Min: lo, Max: hi, Dx: 1, Numbering: true}
	a.init(a)
	return a
}

// SetExtent sets Min and Max.
func (a *SingleAxe) SetExtent(lo, hi float64) {
	a.Min, a.Max = lo, hi
	a.forget()
}

// Enlarged reports whether EnlargeALittle has been called.
func (a *SingleAxe) Enlarged() bool { return a.enlarged }

// EnlargeALittle extends the axis on both ends by margin, measured in
// centimeters in pic. It fails with ErrAlreadyEnlarged when called twice.
func (a *SingleAxe) EnlargeALittle(margin float64, pic *Picture) error {
	if a.enlarged {
		return fmt.Errorf("enlarging axis along %v: %w", a.Base, ErrAlreadyEnlarged)
	}
	if pic == nil {
		return fmt.Errorf("enlarging axis along %v: %w", a.Base, ErrNoPicture)
	}
	l := pic.ToVisual(a.Base).Hypot()
	if l == 0 {
		return shouldNotHappen("axis with null base vector")
	}
	dm := margin / l
	a.Min -= dm
	a.Max += dm
	a.enlarged = true
	a.forget()
	tracer().Debugf("axis along %v enlarged by %g to [%g, %g]", a.Base, dm, a.Min, a.Max)
	return nil
}

// Segment returns the drawn axis, as a vector.
func (a *SingleAxe) Segment() *Segment {
	return NewAffineVector(a.Origin.Translate(a.Base.Mul(a.Min)), a.Origin.Translate(a.Base.Mul(a.Max)))
}

// Graduations returns the multiples of Dx within [Min, Max], except 0. An
// infinite extent, or one holding too many graduations, is a *TooLargeError.
func (a *SingleAxe) Graduations() ([]float64, error) {
	all, err := multiples(a.Min, a.Max, a.Dx, fmt.Sprintf("graduations of axis along %v", a.Base))
	if err != nil {
		return nil, err
	}
	var ks []float64
	for _, k := range all {
		if !IsZero(k) {
			ks = append(ks, k)
		}
	}
	return ks, nil
}

// GraduationMarks returns the labels of the graduations. Horizontal axes are
// numbered below, vertical axes on the left, and other axes on their right
// hand side.
func (a *SingleAxe) GraduationMarks(pic *Picture) ([]*Mark, error) {
	if !a.Numbering {
		return nil, nil
	}
	ks, err := a.Graduations()
	if err != nil {
		return nil, err
	}
	pos := PositionCorner
	angle := AngleOf(Vec(a.Base.Y, -a.Base.X))
	switch {
	case IsZero(a.Base.Y):
		pos = PositionS
	case IsZero(a.Base.X):
		pos = PositionW
	}
	dist := pic.Config().MarkDistance
	var marks []*Mark
	for _, k := range ks {
		anchor := NewPointGraph(a.Origin.Translate(a.Base.Mul(k)))
		marks = append(marks, NewMark(anchor, dist, angle, "$"+formatNumber(k, int32(pic.Config().Precision))+"$", pos))
	}
	return marks, nil
}

// tick returns the visual-length half tick at the graduation k.
func (a *SingleAxe) tick(pic *Picture, k float64) (Point, Point) {
	p := a.Origin.Translate(a.Base.Mul(k))
	n := pic.ToVisual(a.Base).Orthogonal().FixSize(tickLength)
	v := pic.FromVisual(n)
	return p.Translate(v.Negate()), p.Translate(v)
}

func (a *SingleAxe) computeMathBoundingBox(pic *Picture) (BoundingBox, error) {
	return a.Segment().MathBoundingBox(pic)
}

func (a *SingleAxe) computeBoundingBox(pic *Picture) (BoundingBox, error) {
	bb, err := a.MathBoundingBox(pic)
	if err != nil {
		return BoundingBox{}, err
	}
	if pic == nil {
		return bb, nil
	}
	ks, err := a.Graduations()
	if err != nil {
		return BoundingBox{}, err
	}
	for _, k := range ks {
		p0, p1 := a.tick(pic, k)
		bb.AppendPoint(p0)
		bb.AppendPoint(p1)
	}
	marks, err := a.GraduationMarks(pic)
	if err != nil {
		return BoundingBox{}, err
	}
	for _, m := range marks {
		if err := bb.AppendDrawable(m, pic); err != nil {
			return BoundingBox{}, err
		}
	}
	return bb, nil
}

// MarkPoint returns the tip of the axis.
func (a *SingleAxe) MarkPoint(*Picture) (Point, error) {
	return a.Origin.Translate(a.Base.Mul(a.Max)), nil
}

func (a *SingleAxe) Render(pic *Picture, w *CodeWriter) error {
	seg := a.Segment()
	seg.MergeOptions(a.Options())
	if err := seg.Render(pic, w); err != nil {
		return err
	}
	ks, err := a.Graduations()
	if err != nil {
		return err
	}
	for _, k := range ks {
		p0, p1 := a.tick(pic, k)
		w.Draw("", w.Point(p0)+" -- "+w.Point(p1))
	}
	marks, err := a.GraduationMarks(pic)
	if err != nil {
		return err
	}
	for _, m := range marks {
		if err := m.Render(pic, w); err != nil {
			return err
		}
	}
	return nil
}

// Axes is a pair of axes through a common origin.
type Axes struct {
	ObjectGraph

	Origin Point
	X, Y   *SingleAxe

	enlarged bool
}

// NewAxes returns horizontal and vertical axes through origin, fitted to bb.
func NewAxes(origin Point, bb BoundingBox) *Axes {
	a := &Axes{
		Origin: origin,
		X:      NewSingleAxe(origin, Vec(1, 0), 0, 0),
		Y:      NewSingleAxe(origin, Vec(0, 1), 0, 0),
	}
	a.init(a)
	a.FitTo(bb)
	return a
}

// FitTo sets the extent of both axes so that they cover bb and the origin,
// rounded outwards to integers. An empty box leaves the axes unchanged.
func (a *Axes) FitTo(bb BoundingBox) {
	if bb.IsEmpty() {
		return
	}
	a.X.SetExtent(math.Floor(min(bb.XMin-a.Origin.X, 0)), math.Ceil(max(bb.XMax-a.Origin.X, 0)))
	a.Y.SetExtent(math.Floor(min(bb.YMin-a.Origin.Y, 0)), math.Ceil(max(bb.YMax-a.Origin.Y, 0)))
	a.forget()
}

// EnlargeALittle enlarges both axes by margin. It fails with
// ErrAlreadyEnlarged when called twice.
func (a *Axes) EnlargeALittle(margin float64, pic *Picture) error {
	if a.enlarged {
		return fmt.Errorf("enlarging axes: %w", ErrAlreadyEnlarged)
	}
	for _, ax := range []*SingleAxe{a.X, a.Y} {
		if err := ax.EnlargeALittle(margin, pic); err != nil {
			return err
		}
	}
	a.enlarged = true
	a.forget()
	return nil
}

func (a *Axes) computeMathBoundingBox(pic *Picture) (BoundingBox, error) {
	bb := EmptyBoundingBox(true)
	for _, ax := range []*SingleAxe{a.X, a.Y} {
		if err := bb.AppendDrawable(ax, pic); err != nil {
			return BoundingBox{}, err
		}
	}
	return bb, nil
}

func (a *Axes) computeBoundingBox(pic *Picture) (BoundingBox, error) {
	bb := EmptyBoundingBox(false)
	for _, ax := range []*SingleAxe{a.X, a.Y} {
		if err := bb.AppendDrawable(ax, pic); err != nil {
			return BoundingBox{}, err
		}
	}
	return bb, nil
}

func (a *Axes) MarkPoint(*Picture) (Point, error) { return a.Origin, nil }

func (a *Axes) Render(pic *Picture, w *CodeWriter) error {
	for _, ax := range []*SingleAxe{a.X, a.Y} {
		if err := pic.render(ax, w); err != nil {
			return err
		}
	}
	return nil
}
