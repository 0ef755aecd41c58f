package auxfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/figure"
)

func TestParseDimension(t *testing.T) {
	cm, err := ParseDimension("72.27pt")
	require.NoError(t, err)
	assert.InDelta(t, 2.54, cm, 1e-12)

	cm, err = ParseDimension(" 10 ")
	require.NoError(t, err)
	assert.InDelta(t, 10*cmPerPt, cm, 1e-12)

	_, err = ParseDimension("wide")
	assert.Error(t, err)
}

func TestSizer(t *testing.T) {
	recs := NewRecords()
	id := ID("$x^2$")
	recs.Set("WIDTH"+id, "72.27pt")
	recs.Set("HEIGHT"+id, "36.135pt")
	def := figure.Sz(0.5, 0.5)
	s := NewSizer(recs, def)

	got := s.BoxSize("$x^2$")
	assert.InDelta(t, 2.54, got.Width, 1e-12)
	assert.InDelta(t, 1.27, got.Height, 1e-12)

	// unknown and malformed texts fall back to the default size
	assert.Equal(t, def, s.BoxSize("$y$"))
	recs.Set("WIDTH"+ID("bad"), "wide")
	recs.Set("HEIGHT"+ID("bad"), "1pt")
	assert.Equal(t, def, s.BoxSize("bad"))

	assert.Equal(t, []string{"$x^2$", "$y$", "bad"}, s.Requested())
}

func TestIDStable(t *testing.T) {
	assert.Equal(t, ID("$A$"), ID("$A$"))
	assert.NotEqual(t, ID("$A$"), ID("$B$"))
	assert.Regexp(t, `^fig[0-9a-f]{8}$`, ID("$A$"))
}

func TestMeasureCode(t *testing.T) {
	s := NewSizer(nil, figure.Sz(0.5, 0.5))
	s.BoxSize("$A$")
	code := s.MeasureCode("figures.aux")
	id := ID("$A$")
	for _, want := range []string{
		`\immediate\openout\figureaux=figures.aux`,
		`\setbox\figurebox=\hbox{$A$}`,
		`\immediate\write\figureaux{WIDTH` + id + `:\the\wd\figurebox-}`,
		`\immediate\write\figureaux{HEIGHT` + id + `:\the\dimexpr\ht\figurebox+\dp\figurebox\relax-}`,
		`\immediate\closeout\figureaux`,
	} {
		assert.Contains(t, code, want)
	}
}

func TestSizerInPicture(t *testing.T) {
	recs := NewRecords()
	recs.Set("WIDTH"+ID("$P$"), "28.45274pt")
	recs.Set("HEIGHT"+ID("$P$"), "11.38109pt")
	pic := figure.NewPicture("p", figure.DefaultConfig(), figure.WithBoxSizer(NewSizer(recs, figure.Sz(0.5, 0.5))))

	p := figure.NewPointGraph(figure.Pt(0, 0))
	m := p.PutMark(0.3, figure.Degrees(0), "$P$", figure.PositionN)
	require.NoError(t, pic.DrawObject(p))
	c, err := m.CentralPoint(pic)
	require.NoError(t, err)
	// 11.38109pt is 0.4cm
	assert.InDelta(t, 0.3+0.2, c.Y, 1e-5)

	code, err := pic.TikZ()
	require.NoError(t, err)
	assert.True(t, strings.Contains(code, `\node at (0,0.5) {$P$};`), code)
}

func TestSizerNaNRecord(t *testing.T) {
	recs := NewRecords()
	recs.Set("WIDTH"+ID("$n$"), "NaN")
	recs.Set("HEIGHT"+ID("$n$"), "3pt")
	def := figure.Sz(0.5, 0.5)
	assert.Equal(t, def, NewSizer(recs, def).BoxSize("$n$"))
}
