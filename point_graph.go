package figure

// PointGraph draws a point as a small dot.
type PointGraph struct {
	ObjectGraph

	Point Point
	// Size is the radius of the dot in TeX points.
	Size float64
}

// NewPointGraph returns a drawable dot at pt.
func NewPointGraph(pt Point) *PointGraph {
	p := &PointGraph{Point: pt, Size: 0.7}
	p.init(p)
	return p
}

func (p *PointGraph) computeMathBoundingBox(*Picture) (BoundingBox, error) {
	return p.Point.BoundingBox(), nil
}

func (p *PointGraph) MarkPoint(*Picture) (Point, error) { return p.Point, nil }

func (p *PointGraph) Render(_ *Picture, w *CodeWriter) error {
	path := w.Point(p.Point) + " circle (" + w.Number(p.Size) + "pt)"
	if opts := p.Options(); opts != "" {
		w.Printf(`\fill [%s] %s;`, opts, path)
	} else {
		w.Printf(`\fill %s;`, path)
	}
	return nil
}
