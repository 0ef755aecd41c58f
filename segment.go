package figure

import (
	"math"
)

// Segment is the oriented segment from I to F. An affine vector is a segment
// drawn with an arrow tip at F.
type Segment struct {
	ObjectGraph

	i, f  Point
	arrow bool
}

// NewSegment returns the segment from i to f.
func NewSegment(i, f Point) *Segment {
	s := &Segment{i: i, f: f}
	s.init(s)
	return s
}

// NewAffineVector returns the vector from i to f, drawn with an arrow tip.
func NewAffineVector(i, f Point) *Segment {
	s := NewSegment(i, f)
	s.arrow = true
	return s
}

// derive returns a segment from i to f with the same kind and draw options.
func (s *Segment) derive(i, f Point) *Segment {
	o := NewSegment(i, f)
	o.arrow = s.arrow
	for _, k := range s.options.Keys() {
		v, _ := s.options.Get(k)
		o.options.Put(k, v)
	}
	return o
}

func (s *Segment) I() Point { return s.i }
func (s *Segment) F() Point { return s.f }

// IsVector reports whether s is drawn with an arrow tip.
func (s *Segment) IsVector() bool { return s.arrow }

func (s *Segment) Kind() Kind { return KindSegment }

// Interval returns [0, 1].
func (s *Segment) Interval() (float64, float64) { return 0, 1 }

// Eval returns the point at parameter t, with I at 0 and F at 1.
func (s *Segment) Eval(t float64) Point { return s.i.Lerp(s.f, t) }

// Tangent returns F-I for any t.
func (s *Segment) Tangent(float64) Vec2 { return s.Direction() }

// Direction returns F-I.
func (s *Segment) Direction() Vec2 { return s.f.Sub(s.i) }

// Length returns the distance between I and F.
func (s *Segment) Length() float64 { return s.i.Distance(s.f) }

// Slope returns the slope of the line through I and F. Vertical segments
// have slope +Inf.
func (s *Segment) Slope() float64 {
	d := s.Direction()
	if IsZero(d.X) {
		return math.Inf(1)
	}
	return d.Y / d.X
}

// Angle returns the direction of travel from I to F.
func (s *Segment) Angle() Angle { return AngleOf(s.Direction()) }

// Equation returns a, b, c such that a·x + b·y + c = 0 on the line through I
// and F, normalized so that a² + b² = 1 and (a, b) is the left normal of the
// segment.
func (s *Segment) Equation() (a, b, c float64) {
	n := s.Direction().Orthogonal().Normalize()
	a, b = n.X, n.Y
	c = -(a*s.i.X + b*s.i.Y)
	return a, b, c
}

// Midpoint returns the middle of the segment.
func (s *Segment) Midpoint() Point { return s.i.Midpoint(s.f) }

// RightNormal returns the unit vector pointing to the right of the direction
// of travel.
func (s *Segment) RightNormal() Vec2 {
	d := s.Direction().Normalize()
	return Vec(d.Y, -d.X)
}

// Translate returns s moved by v.
func (s *Segment) Translate(v Vec2) *Segment {
	return s.derive(s.i.Translate(v), s.f.Translate(v))
}

// Rotate returns s rotated by a about center.
func (s *Segment) Rotate(center Point, a Angle) *Segment {
	return s.derive(s.i.Rotate(center, a), s.f.Rotate(center, a))
}

// Dilate returns s scaled by k about its midpoint.
func (s *Segment) Dilate(k float64) *Segment {
	m := s.Midpoint()
	return s.derive(s.i.Dilate(m, k), s.f.Dilate(m, k))
}

// Normalize returns the segment starting at I in the same direction with
// length l. A negative l flips the direction.
func (s *Segment) Normalize(l float64) *Segment {
	return s.derive(s.i, s.i.Translate(s.Direction().FixSize(l)))
}

// Intersection returns the intersection point of the lines carrying s and o.
// It returns false if the lines are parallel.
func (s *Segment) Intersection(o *Segment) (Point, bool) {
	d1, d2 := s.Direction(), o.Direction()
	den := d1.Cross(d2)
	if IsZero(den) {
		return Point{}, false
	}
	t := o.i.Sub(s.i).Cross(d2) / den
	return s.Eval(t), true
}

func (s *Segment) computeMathBoundingBox(*Picture) (BoundingBox, error) {
	return NewBoundingBox(s.i, s.f, true), nil
}

// MarkPoint returns the midpoint.
func (s *Segment) MarkPoint(*Picture) (Point, error) { return s.Midpoint(), nil }

func (s *Segment) Render(_ *Picture, w *CodeWriter) error {
	opts := s.Options()
	if s.arrow {
		if _, ok := s.Option("->"); !ok {
			opts = joinOptions(opts, "->")
		}
	}
	w.Draw(opts, w.Point(s.i)+" -- "+w.Point(s.f))
	return nil
}

func (s *Segment) String() string {
	return "segment " + s.i.String() + " -- " + s.f.String()
}
