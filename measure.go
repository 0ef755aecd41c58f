package figure

// MeasureLength marks the length of a segment: a double arrow drawn parallel
// to the segment, at distance Dist on its right-hand side relative to the
// direction of travel.
type MeasureLength struct {
	ObjectGraph

	Measured *Segment
	Dist     float64
	offset   *Segment
}

// NewMeasureLength returns the measure of s at distance dist, in model units.
// A negative dist puts the measure on the left-hand side.
func NewMeasureLength(s *Segment, dist float64) *MeasureLength {
	m := &MeasureLength{
		Measured: s,
		Dist:     dist,
		offset:   s.Translate(s.RightNormal().Mul(dist)),
	}
	m.offset.arrow = false
	m.offset.SetOption("<->", "")
	m.init(m)
	return m
}

// OffsetSegment returns the segment carrying the arrows.
func (m *MeasureLength) OffsetSegment() *Segment { return m.offset }

// PutLengthMark puts text on the outer side of the arrows, at the default
// mark distance.
func (m *MeasureLength) PutLengthMark(pic *Picture, text string) *Mark {
	angle := AngleOf(m.Measured.RightNormal())
	if m.Dist < 0 {
		angle = angle.Add(Degrees(180))
	}
	dist := DefaultConfig().MarkDistance
	if pic != nil {
		dist = pic.Config().MarkDistance
	}
	return m.PutMark(dist, angle, text, PositionCorner)
}

// ActionOnPicture draws the arrows along with the measure.
func (m *MeasureLength) ActionOnPicture(pic *Picture) error {
	m.AddObject(pic, m.offset)
	return nil
}

func (m *MeasureLength) computeMathBoundingBox(pic *Picture) (BoundingBox, error) {
	return m.offset.MathBoundingBox(pic)
}

// MarkPoint returns the middle of the arrows.
func (m *MeasureLength) MarkPoint(*Picture) (Point, error) {
	return m.offset.Midpoint(), nil
}

// Render draws nothing; the arrows are drawn as an added object.
func (m *MeasureLength) Render(*Picture, *CodeWriter) error { return nil }
