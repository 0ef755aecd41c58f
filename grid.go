package figure

import (
	"math"
)

// Grid draws vertical lines every Dx and horizontal lines every Dy over a
// box. It is decoration: it never affects the extent of automatic axes.
type Grid struct {
	ObjectGraph

	Box    BoundingBox
	Dx, Dy float64
}

// NewGrid returns a unit grid over bb, rounded outwards to integers.
func NewGrid(bb BoundingBox) *Grid {
	g := &Grid{Dx: 1, Dy: 1}
	g.init(g)
	g.FitTo(bb)
	g.SetOption("color", "lightgray")
	return g
}

// FitTo sets the grid box to bb rounded outwards to integers.
func (g *Grid) FitTo(bb BoundingBox) {
	if bb.IsEmpty() {
		g.Box = EmptyBoundingBox(false)
	} else {
		g.Box = NewBoundingBox(
			Pt(math.Floor(bb.XMin), math.Floor(bb.YMin)),
			Pt(math.Ceil(bb.XMax), math.Ceil(bb.YMax)),
			false,
		)
	}
	g.forget()
}

// maxMultiples bounds the number of graduations or grid lines along one
// direction.
const maxMultiples = 10000

// multiples returns the multiples of d within [lo, hi]. Non-finite bounds and
// more than maxMultiples values give a *TooLargeError naming object.
func multiples(lo, hi, d float64, object string) ([]float64, error) {
	if !(d > 0) {
		return nil, nil
	}
	for _, v := range [...]float64{lo, hi} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, &TooLargeError{Object: object, Coordinate: "extent", Value: v, Threshold: math.MaxFloat64}
		}
	}
	first := math.Ceil(lo / d)
	count := math.Floor(hi/d) - first + 1
	if count > maxMultiples {
		return nil, &TooLargeError{Object: object, Coordinate: "count", Value: count, Threshold: maxMultiples}
	}
	var out []float64
	for k := 0; k < int(count); k++ {
		out = append(out, (first+float64(k))*d)
	}
	return out, nil
}

func (g *Grid) computeMathBoundingBox(*Picture) (BoundingBox, error) {
	return EmptyBoundingBox(true), nil
}

func (g *Grid) computeBoundingBox(*Picture) (BoundingBox, error) {
	return g.Box, nil
}

func (g *Grid) MarkPoint(*Picture) (Point, error) { return g.Box.Center(), nil }

func (g *Grid) Render(_ *Picture, w *CodeWriter) error {
	if g.Box.IsEmpty() {
		return nil
	}
	xs, err := multiples(g.Box.XMin, g.Box.XMax, g.Dx, "vertical grid lines")
	if err != nil {
		return err
	}
	ys, err := multiples(g.Box.YMin, g.Box.YMax, g.Dy, "horizontal grid lines")
	if err != nil {
		return err
	}
	opts := g.Options()
	for _, x := range xs {
		w.Draw(opts, w.Point(Pt(x, g.Box.YMin))+" -- "+w.Point(Pt(x, g.Box.YMax)))
	}
	for _, y := range ys {
		w.Draw(opts, w.Point(Pt(g.Box.XMin, y))+" -- "+w.Point(Pt(g.Box.XMax, y)))
	}
	return nil
}
