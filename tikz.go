package figure

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// CodeWriter accumulates TikZ code. Numbers are rounded to a fixed number of
// decimal places and written without trailing zeros, so that output is
// stable across platforms.
type CodeWriter struct {
	sb   strings.Builder
	prec int32
}

// NewCodeWriter returns a writer rounding numbers to prec decimal places.
func NewCodeWriter(prec int) *CodeWriter {
	return &CodeWriter{prec: int32(prec)}
}

// Number formats x.
func (w *CodeWriter) Number(x float64) string {
	return formatNumber(x, w.prec)
}

// Point formats pt as a TikZ coordinate.
func (w *CodeWriter) Point(pt Point) string {
	return "(" + w.Number(pt.X) + "," + w.Number(pt.Y) + ")"
}

// Printf writes one line of code. Use Number and Point for coordinates.
func (w *CodeWriter) Printf(format string, args ...any) {
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

// Draw writes a \draw command with the given options and path.
func (w *CodeWriter) Draw(opts, path string) {
	if opts != "" {
		w.Printf(`\draw [%s] %s;`, opts, path)
	} else {
		w.Printf(`\draw %s;`, path)
	}
}

// Plot writes a smooth plot through pts. Closed plots are drawn as a cycle.
func (w *CodeWriter) Plot(opts string, pts []Point, closed bool) {
	var sb strings.Builder
	if closed {
		sb.WriteString("plot [smooth cycle] coordinates {")
	} else {
		sb.WriteString("plot [smooth] coordinates {")
	}
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.Point(pt))
	}
	sb.WriteByte('}')
	w.Draw(opts, sb.String())
}

// String returns the code written so far.
func (w *CodeWriter) String() string { return w.sb.String() }

// WriteTo writes the code written so far to dst.
func (w *CodeWriter) WriteTo(dst io.Writer) (int64, error) {
	n, err := io.WriteString(dst, w.sb.String())
	return int64(n), err
}

func formatNumber(x float64, prec int32) string {
	d := decimal.NewFromFloat(Zap(x)).Round(prec)
	if d.IsZero() {
		return "0"
	}
	return d.String()
}

// joinOptions joins non-empty option lists with commas.
func joinOptions(opts ...string) string {
	var parts []string
	for _, o := range opts {
		if o != "" {
			parts = append(parts, o)
		}
	}
	return strings.Join(parts, ",")
}
