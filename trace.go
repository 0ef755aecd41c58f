package figure

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer traces to the graphics tracer. If the application did not configure
// one, Go's log package is used.
func tracer() tracing.Trace {
	if gtrace.GraphicsTracer == nil {
		gtrace.GraphicsTracer = gologadapter.New()
	}
	return gtrace.GraphicsTracer
}
