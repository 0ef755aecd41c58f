package figure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats up to an absolute error of 1e-9.
var approx = cmpopts.EquateApprox(0, 1e-9)

// traceToTest sends the graphics tracer to t's log.
func traceToTest(t *testing.T) {
	t.Helper()
	gtrace.GraphicsTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(teardown)
	gtrace.GraphicsTracer.SetTraceLevel(tracing.LevelDebug)
}

// fixedSize is a BoxSizer returning the same size for every text.
type fixedSize Size

func (s fixedSize) BoxSize(string) Size { return Size(s) }

func testPicture(xunit, yunit float64, box Size) *Picture {
	return NewPicture("test", DefaultConfig(), WithUnits(xunit, yunit), WithBoxSizer(fixedSize(box)))
}
