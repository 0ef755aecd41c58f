package figure

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/sets/hashset"
)

// BoxSizer returns the size in centimeters of a text once typeset.
//
// Sizes are usually known only after the document has been compiled once, so
// implementations return a default size for unknown texts rather than
// failing.
type BoxSizer interface {
	BoxSize(text string) Size
}

// fixedSizer returns the same size for every text, warning once per text.
type fixedSizer struct {
	size   Size
	warned *hashset.Set
}

func newFixedSizer(size Size) *fixedSizer {
	return &fixedSizer{size: size, warned: hashset.New()}
}

func (s *fixedSizer) BoxSize(text string) Size {
	if !s.warned.Contains(text) {
		s.warned.Add(text)
		tracer().Infof("no size known for %q, using %v", text, s.size)
	}
	return s.size
}

// PictureOption configures a Picture at construction.
type PictureOption func(*Picture)

// WithUnits sets the length in centimeters of a unit along each axis.
func WithUnits(xunit, yunit float64) PictureOption {
	return func(p *Picture) { p.xunit, p.yunit = xunit, yunit }
}

// WithBoxSizer sets how the size of marks is measured.
func WithBoxSizer(s BoxSizer) PictureOption {
	return func(p *Picture) { p.sizer = s }
}

// Picture collects drawables and emits them as a TikZ picture.
//
// Units and configuration are fixed at construction. Emission is a single
// forward pass: sub-objects are registered as objects are drawn, then the
// default axes, if requested, are fitted to the math bounding box of the
// content and enlarged once, and finally the code is written. Marks are
// collected from their owners when the code is written, so marks put after
// DrawObject are drawn too.
type Picture struct {
	Name string

	conf         Config
	xunit, yunit float64
	visual       Affine
	sizer        BoxSizer

	objects []Drawable
	drawn   map[Drawable]bool

	axes     *Axes
	grid     *Grid
	drawAxes bool
	drawGrid bool

	prepared bool
	prepErr  error
}

// NewPicture returns an empty picture with 1cm units.
func NewPicture(name string, conf Config, opts ...PictureOption) *Picture {
	p := &Picture{
		Name:  name,
		conf:  conf,
		xunit: 1,
		yunit: 1,
		drawn: make(map[Drawable]bool),
	}
	for _, o := range opts {
		o(p)
	}
	if p.sizer == nil {
		p.sizer = newFixedSizer(conf.DefaultBoxSize)
	}
	p.visual = Scale(p.xunit, p.yunit)
	return p
}

func (p *Picture) Config() Config  { return p.conf }
func (p *Picture) XUnit() float64  { return p.xunit }
func (p *Picture) YUnit() float64  { return p.yunit }
func (p *Picture) Sizer() BoxSizer { return p.sizer }

// BoxSize returns the size of text once typeset, in centimeters.
func (p *Picture) BoxSize(text string) Size { return p.sizer.BoxSize(text) }

// FromVisual converts a vector in centimeters to model units.
func (p *Picture) FromVisual(v Vec2) Vec2 {
	return Vec2(Point(v).Transform(p.fromVisual()))
}

// ToVisual converts a vector in model units to centimeters.
func (p *Picture) ToVisual(v Vec2) Vec2 {
	return Vec2(Point(v).Transform(p.visual))
}

// fromVisual is the map from centimeters to model units. Both have the same
// origin.
func (p *Picture) fromVisual() Affine { return p.visual.Invert() }

// DrawObject adds drawables to the picture, along with the objects they add.
// Objects already drawn are skipped. Marks aren't objects of the picture: they
// are drawn with their owner.
func (p *Picture) DrawObject(ds ...Drawable) error {
	if p.prepared {
		return shouldNotHappen("drawing into picture %q after it has been emitted", p.Name)
	}
	for _, d := range ds {
		if p.drawn[d] {
			continue
		}
		p.drawn[d] = true
		p.objects = append(p.objects, d)
		if r, ok := d.(Registerer); ok {
			if err := r.ActionOnPicture(p); err != nil {
				return fmt.Errorf("registering %T: %w", d, err)
			}
		}
		if err := p.DrawObject(d.Graph().AddedObjects(p)...); err != nil {
			return err
		}
	}
	return nil
}

// Objects returns the drawn objects in drawing order.
func (p *Picture) Objects() []Drawable { return p.objects }

// Axes returns the default axes of the picture, through the origin.
func (p *Picture) Axes() *Axes {
	if p.axes == nil {
		p.axes = NewAxes(Point{}, EmptyBoundingBox(true))
	}
	return p.axes
}

// DrawDefaultAxes draws the default axes, fitted to the content.
func (p *Picture) DrawDefaultAxes() { p.drawAxes = true }

// DrawDefaultGrid draws a unit grid behind the content.
func (p *Picture) DrawDefaultGrid() { p.drawGrid = true }

// MathBoundingBox returns the union of the math bounding boxes of the drawn
// objects. The default axes and grid are not included.
func (p *Picture) MathBoundingBox() (BoundingBox, error) {
	bb := EmptyBoundingBox(true)
	for _, d := range p.objects {
		if err := bb.AppendDrawable(d, p); err != nil {
			return BoundingBox{}, fmt.Errorf("math bounding box of %T: %w", d, err)
		}
	}
	return bb, nil
}

// BoundingBox returns the box of everything drawn, default axes, grid and
// marks included. It fits the default axes first if that hasn't happened.
func (p *Picture) BoundingBox() (BoundingBox, error) {
	if err := p.prepare(); err != nil {
		return BoundingBox{}, err
	}
	bb := EmptyBoundingBox(false)
	for _, d := range p.decorations() {
		if err := bb.AppendDrawable(d, p); err != nil {
			return BoundingBox{}, err
		}
	}
	for _, d := range p.objects {
		if err := bb.AppendDrawable(d, p); err != nil {
			return BoundingBox{}, fmt.Errorf("bounding box of %T: %w", d, err)
		}
	}
	return bb, nil
}

func (p *Picture) decorations() []Drawable {
	var ds []Drawable
	if p.drawGrid && p.grid != nil {
		ds = append(ds, p.grid)
	}
	if p.drawAxes {
		ds = append(ds, p.Axes())
	}
	return ds
}

// prepare fits and enlarges the default axes, then fits the grid. It runs
// once; later calls return the first result.
func (p *Picture) prepare() error {
	if p.prepared {
		return p.prepErr
	}
	p.prepared = true
	p.prepErr = p.fitDecorations()
	return p.prepErr
}

func (p *Picture) fitDecorations() error {
	content, err := p.MathBoundingBox()
	if err != nil {
		return err
	}
	// axes and grid enumerate integers over the content
	if err := content.CheckTooLarge(p.conf.TooLargeThreshold, "content of picture "+p.Name); err != nil {
		return err
	}
	if p.drawAxes {
		axes := p.Axes()
		axes.FitTo(content)
		if err := axes.EnlargeALittle(p.conf.AxesMargin, p); err != nil {
			return err
		}
		if content, err = axes.MathBoundingBox(p); err != nil {
			return err
		}
	}
	if p.drawGrid {
		p.grid = NewGrid(content)
	}
	return nil
}

// TikZ returns the code of the picture.
func (p *Picture) TikZ() (string, error) {
	bb, err := p.BoundingBox()
	if err != nil {
		return "", err
	}
	if err := bb.CheckTooLarge(p.conf.TooLargeThreshold, "picture "+p.Name); err != nil {
		return "", err
	}
	w := NewCodeWriter(p.conf.Precision)
	w.Printf(`\begin{tikzpicture}[x=%scm,y=%scm]`, w.Number(p.xunit), w.Number(p.yunit))
	if !bb.IsEmpty() {
		w.Printf(`\path [use as bounding box] %s rectangle %s;`, w.Point(bb.SW()), w.Point(bb.NE()))
	}
	for _, d := range append(p.decorations(), p.objects...) {
		if err := p.render(d, w); err != nil {
			return "", err
		}
	}
	w.Printf(`\end{tikzpicture}`)
	tracer().Debugf("picture %q: %d objects, bounding box %v", p.Name, len(p.objects), bb)
	return w.String(), nil
}

// render writes the code of d followed by that of its marks, as they are at
// the time of the call.
func (p *Picture) render(d Drawable, w *CodeWriter) error {
	if err := d.Render(p, w); err != nil {
		return fmt.Errorf("rendering %T: %w", d, err)
	}
	for _, m := range d.Graph().Marks() {
		if err := p.render(m, w); err != nil {
			return err
		}
	}
	return nil
}

// WriteTikZ writes the code of the picture to dst.
func (p *Picture) WriteTikZ(dst io.Writer) error {
	code, err := p.TikZ()
	if err != nil {
		return err
	}
	_, err = io.WriteString(dst, code)
	return err
}
