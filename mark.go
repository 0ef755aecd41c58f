package figure

import (
	"fmt"
	"math"
)

// Position selects how a mark is placed relative to its anchor.
type Position string

const (
	// PositionN centers the label above the anchor, its lower edge at the
	// mark distance. PositionS, PositionE and PositionW work the same way
	// below, right and left of the anchor.
	PositionN Position = "N"
	PositionS Position = "S"
	PositionE Position = "E"
	PositionW Position = "W"
	// PositionCorner puts the corner of the label nearest to the anchor at
	// the mark distance and angle.
	PositionCorner Position = "corner"
	// PositionCenter puts the center of the label at the mark distance and
	// angle.
	PositionCenter Position = "center"
	// PositionCenterDirection puts the label on the ray of the mark angle so
	// that its border is at the mark distance from the anchor.
	PositionCenterDirection Position = "center_direction"
)

// Mark is a text label attached to a drawable.
//
// The position of a mark depends on the size of its typeset text and on the
// units of the picture, so it is only resolved when the picture is emitted.
// Distances are visual, in centimeters; angles are visual too.
type Mark struct {
	ObjectGraph

	Anchor   Drawable
	Dist     float64
	Angle    Angle
	Text     string
	Position Position
}

// NewMark returns a mark for anchor. An empty pos means PositionCorner.
func NewMark(anchor Drawable, dist float64, angle Angle, text string, pos Position) *Mark {
	if pos == "" {
		pos = PositionCorner
	}
	m := &Mark{Anchor: anchor, Dist: dist, Angle: angle, Text: text, Position: pos}
	m.init(m)
	return m
}

// CentralPoint returns the point the center of the label goes to.
func (m *Mark) CentralPoint(pic *Picture) (Point, error) {
	if pic == nil {
		return Point{}, fmt.Errorf("placing mark %q: %w", m.Text, ErrNoPicture)
	}
	anchor, err := m.Anchor.MarkPoint(pic)
	if err != nil {
		return Point{}, err
	}
	w, h := pic.BoxSize(m.Text).Splat()
	off, err := markOffset(m.Position, m.Dist, m.Angle, w, h)
	if err != nil {
		return Point{}, fmt.Errorf("placing mark %q: %w", m.Text, err)
	}
	return anchor.Translate(pic.FromVisual(off)), nil
}

// markOffset returns the visual vector from the anchor to the center of a w×h
// label.
func markOffset(pos Position, dist float64, angle Angle, w, h float64) (Vec2, error) {
	sin, cos := angle.Sincos()
	switch pos {
	case PositionN:
		return Vec(0, dist+h/2), nil
	case PositionS:
		return Vec(0, -dist-h/2), nil
	case PositionE:
		return Vec(dist+w/2, 0), nil
	case PositionW:
		return Vec(-dist-w/2, 0), nil
	case PositionCorner:
		corner := Vec(dist*cos, dist*sin)
		return corner.Add(Vec(sign(cos)*w/2, sign(sin)*h/2)), nil
	case PositionCenter:
		return Vec(dist*cos, dist*sin), nil
	case PositionCenterDirection:
		// distance from the center of the label to its border along the ray
		s := math.Inf(1)
		if c := math.Abs(Zap(cos)); c > 0 {
			s = w / 2 / c
		}
		if sn := math.Abs(Zap(sin)); sn > 0 {
			s = min(s, h/2/sn)
		}
		return Vec(cos, sin).Mul(dist + s), nil
	default:
		return Vec2{}, shouldNotHappen("unknown mark position %q", string(pos))
	}
}

func (m *Mark) computeMathBoundingBox(*Picture) (BoundingBox, error) {
	return EmptyBoundingBox(true), nil
}

func (m *Mark) computeBoundingBox(pic *Picture) (BoundingBox, error) {
	c, err := m.CentralPoint(pic)
	if err != nil {
		return BoundingBox{}, err
	}
	// the label box in centimeters, centered on the origin
	w, h := pic.BoxSize(m.Text).Splat()
	label := NewBoundingBox(Pt(-w/2, -h/2), Pt(w/2, h/2), false)
	return Translate(Vec2(c)).Mul(pic.fromVisual()).TransformBoundingBox(label), nil
}

// MarkPoint returns the center of the label.
func (m *Mark) MarkPoint(pic *Picture) (Point, error) {
	return m.CentralPoint(pic)
}

func (m *Mark) Render(pic *Picture, w *CodeWriter) error {
	c, err := m.CentralPoint(pic)
	if err != nil {
		return err
	}
	if opts := m.Options(); opts != "" {
		w.Printf(`\node [%s] at %s {%s};`, opts, w.Point(c), m.Text)
	} else {
		w.Printf(`\node at %s {%s};`, w.Point(c), m.Text)
	}
	return nil
}
