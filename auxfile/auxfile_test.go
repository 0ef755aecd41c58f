package auxfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `WIDTHfig0001:12.5pt-
HEIGHTfig0001:6.94444pt-

garbage line
no dash:here
:value-
WIDTHfig0002:-1.0pt-
WIDTHfig0001:13pt-
`
	recs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"WIDTHfig0001", "HEIGHTfig0001", "WIDTHfig0002"}, recs.IDs())
	v, ok := recs.Get("WIDTHfig0001")
	assert.True(t, ok)
	assert.Equal(t, "13pt", v)
	v, _ = recs.Get("WIDTHfig0002")
	assert.Equal(t, "-1.0pt", v)
	_, ok = recs.Get("missing")
	assert.False(t, ok)
}

func TestRecordsRoundTrip(t *testing.T) {
	recs := NewRecords()
	recs.Set("a", "1pt")
	recs.Set("b", "2pt")
	var sb strings.Builder
	_, err := recs.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, "a:1pt-\nb:2pt-\n", sb.String())

	back, err := Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, recs.IDs(), back.IDs())
}

func TestOpenMissingFile(t *testing.T) {
	recs, err := Open(filepath.Join(t.TempDir(), "figures.aux"))
	require.NoError(t, err)
	assert.Equal(t, 0, recs.Len())
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figures.aux")
	require.NoError(t, os.WriteFile(path, []byte("x:1pt-\n"), 0o644))
	recs, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, recs.Len())
}
