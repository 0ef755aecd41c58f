package figure

// VectorField draws the vectors of a field at the nodes of a regular grid.
// Each vector starts at its node.
type VectorField struct {
	ObjectGraph

	field   func(Point) Vec2
	vectors []*Segment
}

// NewVectorField samples field on an nx × ny grid spanning bb. Both counts
// must be at least 1; a count of 1 takes the middle of the box.
func NewVectorField(field func(Point) Vec2, bb BoundingBox, nx, ny int) (*VectorField, error) {
	if nx < 1 || ny < 1 {
		return nil, shouldNotHappen("vector field needs a positive number of nodes, got %d×%d", nx, ny)
	}
	if bb.IsEmpty() {
		return nil, shouldNotHappen("vector field over an empty box")
	}
	vf := &VectorField{field: field}
	vf.init(vf)
	for _, x := range nodes(bb.XMin, bb.XMax, nx) {
		for _, y := range nodes(bb.YMin, bb.YMax, ny) {
			p := Pt(x, y)
			v := field(p)
			if v.IsNaN() || v.IsInf() {
				tracer().Infof("vector field undefined at %v, skipped", p)
				continue
			}
			vec := NewAffineVector(p, p.Translate(v))
			vf.vectors = append(vf.vectors, vec)
			// the vectors are the same whatever the picture
			vf.AddObject(nil, vec)
		}
	}
	return vf, nil
}

func nodes(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{(lo + hi) / 2}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*(hi-lo)/float64(n-1)
	}
	return out
}

// Vectors returns the drawn vectors.
func (vf *VectorField) Vectors() []*Segment { return vf.vectors }

func (vf *VectorField) computeMathBoundingBox(pic *Picture) (BoundingBox, error) {
	bb := EmptyBoundingBox(true)
	for _, v := range vf.vectors {
		if err := bb.AppendDrawable(v, pic); err != nil {
			return BoundingBox{}, err
		}
	}
	return bb, nil
}

// MarkPoint returns the center of the field.
func (vf *VectorField) MarkPoint(pic *Picture) (Point, error) {
	bb, err := vf.MathBoundingBox(pic)
	if err != nil {
		return Point{}, err
	}
	return bb.Center(), nil
}

// Render draws nothing; the vectors are drawn as added objects.
func (vf *VectorField) Render(*Picture, *CodeWriter) error { return nil }
