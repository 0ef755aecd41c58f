package figure

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Drawable is implemented by everything that can be drawn into a [Picture].
//
// Most implementations get Graph, MathBoundingBox and BoundingBox by
// embedding an [ObjectGraph].
type Drawable interface {
	Graph() *ObjectGraph
	// MathBoundingBox returns the box of the mathematical content, which
	// determines the extent of automatic axes.
	MathBoundingBox(pic *Picture) (BoundingBox, error)
	// BoundingBox returns the box of everything drawn, marks included.
	BoundingBox(pic *Picture) (BoundingBox, error)
	// MarkPoint returns the point marks attached to the object are anchored
	// at.
	MarkPoint(pic *Picture) (Point, error)
	Render(pic *Picture, w *CodeWriter) error
}

// Registerer is implemented by drawables made of sub-objects. ActionOnPicture
// is called once when the object is drawn into a picture, and typically
// registers the sub-objects with [ObjectGraph.AddObject].
type Registerer interface {
	ActionOnPicture(pic *Picture) error
}

// graphOwner is what an ObjectGraph needs from the object embedding it.
type graphOwner interface {
	Drawable
	computeMathBoundingBox(pic *Picture) (BoundingBox, error)
}

// decorated is implemented by owners whose full bounding box exceeds their
// math bounding box by more than their marks.
type decorated interface {
	computeBoundingBox(pic *Picture) (BoundingBox, error)
}

type memoKey struct {
	pic  *Picture
	full bool
}

// ObjectGraph is the state shared by all drawables: draw options, attached
// marks, objects added on behalf of the owner, and the per-picture memoized
// bounding boxes.
type ObjectGraph struct {
	owner   graphOwner
	options *linkedhashmap.Map
	marks   []*Mark
	added   map[*Picture][]Drawable
	memo    map[memoKey]BoundingBox
}

func (g *ObjectGraph) init(owner graphOwner) {
	g.owner = owner
	g.options = linkedhashmap.New()
	g.added = make(map[*Picture][]Drawable)
	g.memo = make(map[memoKey]BoundingBox)
}

func (g *ObjectGraph) Graph() *ObjectGraph { return g }

// SetOption sets a TikZ draw option. An empty value produces a bare key, as
// in "dashed" or "->". Options are rendered in the order they were first set.
func (g *ObjectGraph) SetOption(key, value string) {
	g.options.Put(key, value)
}

// MergeOptions sets every option of a comma separated list such as
// "color=blue,dashed".
func (g *ObjectGraph) MergeOptions(list string) {
	for _, opt := range strings.Split(list, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		key, value, _ := strings.Cut(opt, "=")
		g.SetOption(strings.TrimSpace(key), strings.TrimSpace(value))
	}
}

// Option returns the value of a draw option.
func (g *ObjectGraph) Option(key string) (string, bool) {
	v, ok := g.options.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Options returns the draw options as a TikZ option list, without brackets.
func (g *ObjectGraph) Options() string {
	var sb strings.Builder
	for i, k := range g.options.Keys() {
		if i > 0 {
			sb.WriteByte(',')
		}
		v, _ := g.options.Get(k)
		sb.WriteString(k.(string))
		if v.(string) != "" {
			sb.WriteByte('=')
			sb.WriteString(v.(string))
		}
	}
	return sb.String()
}

// PutMark attaches a label to the object. The mark is drawn along with the
// object and counts in its bounding box.
func (g *ObjectGraph) PutMark(dist float64, angle Angle, text string, pos Position) *Mark {
	m := NewMark(g.owner, dist, angle, text, pos)
	g.marks = append(g.marks, m)
	g.forget()
	return m
}

// GetMark returns the first mark with the given text.
func (g *ObjectGraph) GetMark(text string) (*Mark, bool) {
	for _, m := range g.marks {
		if m.Text == text {
			return m, true
		}
	}
	return nil, false
}

// Marks returns the marks attached to the object.
func (g *ObjectGraph) Marks() []*Mark { return g.marks }

// AddObject draws d whenever the owner is drawn into pic. A nil pic means
// every picture.
func (g *ObjectGraph) AddObject(pic *Picture, d Drawable) {
	g.added[pic] = append(g.added[pic], d)
}

// AddedObjects returns the objects added for all pictures followed by those
// added for pic.
func (g *ObjectGraph) AddedObjects(pic *Picture) []Drawable {
	out := append([]Drawable(nil), g.added[nil]...)
	if pic != nil {
		out = append(out, g.added[pic]...)
	}
	return out
}

// MathBoundingBox returns the math bounding box of the owner, computing it at
// most once per picture.
func (g *ObjectGraph) MathBoundingBox(pic *Picture) (BoundingBox, error) {
	return g.memoize(memoKey{pic: pic}, func() (BoundingBox, error) {
		bb, err := g.owner.computeMathBoundingBox(pic)
		if err != nil {
			return BoundingBox{}, err
		}
		bb.Math = true
		return bb, nil
	})
}

// BoundingBox returns the full bounding box of the owner: its math box, its
// own decorations and the boxes of its marks. It is computed at most once per
// picture.
func (g *ObjectGraph) BoundingBox(pic *Picture) (BoundingBox, error) {
	return g.memoize(memoKey{pic: pic, full: true}, func() (BoundingBox, error) {
		var bb BoundingBox
		var err error
		if d, ok := g.owner.(decorated); ok {
			bb, err = d.computeBoundingBox(pic)
		} else {
			bb, err = g.MathBoundingBox(pic)
		}
		if err != nil {
			return BoundingBox{}, err
		}
		bb.Math = false
		for _, m := range g.marks {
			if err := bb.AppendDrawable(m, pic); err != nil {
				return BoundingBox{}, fmt.Errorf("mark %q: %w", m.Text, err)
			}
		}
		return bb, nil
	})
}

func (g *ObjectGraph) memoize(key memoKey, compute func() (BoundingBox, error)) (BoundingBox, error) {
	if bb, ok := g.memo[key]; ok {
		return bb, nil
	}
	bb, err := compute()
	if err != nil {
		return BoundingBox{}, err
	}
	g.memo[key] = bb
	return bb, nil
}

// forget drops the memoized bounding boxes of the object and of its marks.
// Objects call it whenever they change in a way that affects their extent or
// their mark point.
func (g *ObjectGraph) forget() {
	clear(g.memo)
	for _, m := range g.marks {
		m.forget()
	}
}
