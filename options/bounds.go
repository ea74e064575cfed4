package options

// WithBoundingRectangle returns a [GeometryOptionsFunc] that records a finite clipping
// rectangle in [GeometryOptions]. No operation in this module reads the option;
// voronoi.Build takes its clipping bounds as an argument instead.
//
// Parameters:
//   - minX, minY, maxX, maxY (float64): The bounds of the clipping rectangle. The caller
//     is responsible for ensuring minX <= maxX and minY <= maxY; no validation is performed
//     here since a degenerate rectangle may be meaningful to some callers (e.g. as a
//     sentinel for "clip to nothing").
//
// Returns:
//   - A [GeometryOptionsFunc] that sets BoundingRectangle and BoundingRectangleSet.
func WithBoundingRectangle(minX, minY, maxX, maxY float64) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		opts.BoundingRectangle = Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
		opts.BoundingRectangleSet = true
	}
}
