// Package figure describes 2D mathematical figures (points, segments,
// circles, function graphs, parametric curves, axes, grids, vector fields and
// the labels attached to them) and emits them as TikZ code for inclusion in
// LaTeX documents.
//
// # Drawables
//
// Everything that can be drawn implements [Drawable], usually by embedding an
// [ObjectGraph]. The object graph carries draw options, attached [Mark]s, and
// the per-picture memoized bounding boxes of its owner. Objects made of
// sub-objects, such as [MeasureLength], implement [Registerer] and register
// their parts when drawn into a [Picture].
//
// The curves ([*Segment], [*Circle], [*ParametricCurve] and [*FunctionGraph])
// additionally implement [Curve], which exposes their kind and parameter
// interval.
//
// # Bounding boxes
//
// Each drawable has two bounding boxes. The math bounding box covers the
// mathematical content and determines the extent of the default axes. The
// full bounding box also covers decorations such as marks and determines the
// size of the canvas. Both are computed at most once per picture.
//
// # Representative points
//
// Curves are drawn through a finite sample of their points: evenly spaced
// parameters, optionally augmented by points spread evenly in total
// curvature or in arc length, and by explicitly requested parameters. The
// adaptive points are found by bisection on the integral of the curvature or
// of the speed, see [Dichotomy]. Samples are computed once; curves can't be
// modified after construction.
//
// # Units and marks
//
// A picture has independent horizontal and vertical units, in centimeters.
// Geometry is scaled by the units, but text isn't: the position of a mark is
// computed from the typeset size of its text in centimeters, as reported by
// the picture's [BoxSizer], and converted back to model units. The auxfile
// package provides a BoxSizer that reads sizes from a file written by LaTeX.
//
// # Default axes
//
// Default axes are fitted to the math bounding box of the content and then
// enlarged by a visual margin exactly once. Enlarging an axis twice is an
// error, see [ErrAlreadyEnlarged].
//
// # Logging
//
// Diagnostics go to the graphics tracer of github.com/npillmayer/schuko.
package figure
