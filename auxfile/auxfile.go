// Package auxfile reads the auxiliary file LaTeX writes while compiling a
// document with figures, and uses it to measure marks.
//
// The file consists of records of the form
//
//	Id:value-
//
// one per line. Typically the values are dimensions such as 12.5pt. The file
// doesn't exist before the first compilation; callers get empty records and
// default sizes until it does.
package auxfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func tracer() tracing.Trace {
	if gtrace.GraphicsTracer == nil {
		gtrace.GraphicsTracer = gologadapter.New()
	}
	return gtrace.GraphicsTracer
}

// Records maps ids to values, in the order they appear in the file. A later
// record with the same id replaces the value but keeps the position.
type Records struct {
	m *linkedhashmap.Map
}

// NewRecords returns empty records.
func NewRecords() *Records {
	return &Records{m: linkedhashmap.New()}
}

// Get returns the value of id.
func (r *Records) Get(id string) (string, bool) {
	v, ok := r.m.Get(id)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Set sets the value of id.
func (r *Records) Set(id, value string) { r.m.Put(id, value) }

// Len returns the number of records.
func (r *Records) Len() int { return r.m.Size() }

// IDs returns the ids in file order.
func (r *Records) IDs() []string {
	keys := r.m.Keys()
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.(string)
	}
	return ids
}

// WriteTo writes the records in the file format.
func (r *Records) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, id := range r.IDs() {
		v, _ := r.Get(id)
		k, err := fmt.Fprintf(w, "%s:%s-\n", id, v)
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Parse reads records from r. Blank lines and lines that aren't records are
// skipped.
func Parse(r io.Reader) (*Records, error) {
	recs := NewRecords()
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		id, value, ok := parseRecord(line)
		if !ok {
			tracer().Debugf("auxfile: line %d is not a record: %q", lineno, line)
			continue
		}
		recs.Set(id, value)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading auxiliary file: %w", err)
	}
	return recs, nil
}

func parseRecord(line string) (id, value string, ok bool) {
	body, found := strings.CutSuffix(line, "-")
	if !found {
		return "", "", false
	}
	id, value, found = strings.Cut(body, ":")
	if !found || id == "" {
		return "", "", false
	}
	return id, value, true
}

// Open reads the records of the file at path. A missing file isn't an error:
// it is logged and yields empty records.
func Open(path string) (*Records, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Infof("auxiliary file %s does not exist yet; compile the document and run again", path)
		return NewRecords(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
