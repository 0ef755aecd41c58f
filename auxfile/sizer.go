package auxfile

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"honnef.co/go/figure"
)

// cmPerPt is the length of a TeX point in centimeters.
const cmPerPt = 2.54 / 72.27

// Sizer measures texts from the records of an auxiliary file. It implements
// figure.BoxSizer.
//
// Every text it is asked about is remembered, so that MeasureCode can emit
// the LaTeX code that measures them during the next compilation.
type Sizer struct {
	Default figure.Size

	records   *Records
	requested *linkedhashmap.Map
}

// NewSizer returns a sizer reading recs. Texts without records get def.
func NewSizer(recs *Records, def figure.Size) *Sizer {
	if recs == nil {
		recs = NewRecords()
	}
	return &Sizer{Default: def, records: recs, requested: linkedhashmap.New()}
}

// ID returns the id under which the size of text is recorded.
func ID(text string) string {
	h := fnv.New32a()
	h.Write([]byte(text))
	return fmt.Sprintf("fig%08x", h.Sum32())
}

// BoxSize returns the size of text in centimeters. Missing or malformed
// records are logged and replaced by the default size.
func (s *Sizer) BoxSize(text string) figure.Size {
	id := ID(text)
	s.requested.Put(text, id)
	w, errw := s.points("WIDTH" + id)
	h, errh := s.points("HEIGHT" + id)
	if errw != nil || errh != nil {
		tracer().Infof("size of %q unknown (%v), using %v", text, firstError(errw, errh), s.Default)
		return s.Default
	}
	sz := figure.Sz(w, h)
	if sz.IsNaN() {
		tracer().Infof("size of %q recorded as %v, using %v", text, sz, s.Default)
		return s.Default
	}
	return sz.Scale(cmPerPt)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// points returns the value of key in TeX points.
func (s *Sizer) points(key string) (float64, error) {
	v, ok := s.records.Get(key)
	if !ok {
		return 0, fmt.Errorf("no record %s", key)
	}
	return parsePoints(v)
}

func parsePoints(v string) (float64, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "pt")
	pt, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed dimension %q: %w", v, err)
	}
	return pt, nil
}

// ParseDimension converts a TeX dimension in points, such as "12.5pt", to
// centimeters. A bare number is taken to be in points.
func ParseDimension(v string) (float64, error) {
	pt, err := parsePoints(v)
	if err != nil {
		return 0, err
	}
	return pt * cmPerPt, nil
}

// Requested returns the texts the sizer has been asked about, in order.
func (s *Sizer) Requested() []string {
	keys := s.requested.Keys()
	texts := make([]string, len(keys))
	for i, k := range keys {
		texts[i] = k.(string)
	}
	return texts
}

// MeasureCode returns LaTeX code that typesets every requested text in a box
// and writes its width and total height to the auxiliary file auxName.
func (s *Sizer) MeasureCode(auxName string) string {
	var sb strings.Builder
	sb.WriteString("\\newwrite\\figureaux\n")
	fmt.Fprintf(&sb, "\\immediate\\openout\\figureaux=%s\n", auxName)
	sb.WriteString("\\newbox\\figurebox\n")
	for _, text := range s.Requested() {
		id := ID(text)
		fmt.Fprintf(&sb, "\\setbox\\figurebox=\\hbox{%s}\n", text)
		fmt.Fprintf(&sb, "\\immediate\\write\\figureaux{WIDTH%s:\\the\\wd\\figurebox-}\n", id)
		fmt.Fprintf(&sb, "\\immediate\\write\\figureaux{HEIGHT%s:\\the\\dimexpr\\ht\\figurebox+\\dp\\figurebox\\relax-}\n", id)
	}
	sb.WriteString("\\immediate\\closeout\\figureaux\n")
	return sb.String()
}

var _ figure.BoxSizer = (*Sizer)(nil)
