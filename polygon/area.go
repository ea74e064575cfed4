// Package polygon provides operations on simple polygons described as an
// ordered ring of vertices: convex hull construction, signed area and
// centroid, well-formedness checking, and point-in-polygon classification.
package polygon

import (
	"github.com/gopherplane/geom2d/point"
)

// SignedArea2X calculates twice the signed area of a simple polygon defined by a series
// of points, using the [Shoelace Formula] (also known as Gauss's area formula).
//
// The input points are assumed to form a closed polygon, where the last
// point connects back to the first. If the input slice does not explicitly
// include the closing point, the algorithm still assumes the connection
// between the last and first points.
//
// The "signed" area means that the result is positive if the points are ordered in a
// counterclockwise direction (CCW) and negative if they are ordered in a clockwise
// direction (CW). This property is useful for determining the orientation of the polygon.
//
// Parameters:
//   - points ([]point.Point): A variadic slice of [point.Point] instances defining the
//     vertices of the polygon. The points must represent a simple polygon (no
//     self-intersections) and should be ordered either clockwise or counterclockwise.
//
// Returns:
//   - float64: Twice the signed area of the polygon. The value is positive if the
//     points are ordered counterclockwise, negative if clockwise, and zero if the
//     polygon is degenerate (e.g., collinear points or fewer than 3 vertices).
//
// [Shoelace Formula]: https://en.wikipedia.org/wiki/Shoelace_formula
func SignedArea2X(points ...point.Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}

	var area float64
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		area += (p1.X() * p2.Y()) - (p2.X() * p1.Y())
	}

	return area
}

// Centroid computes the area-weighted centroid of a simple polygon.
//
// Parameters:
//   - points ([]point.Point): The polygon's vertices, in order; the last point is
//     assumed to connect back to the first.
//
// Returns:
//   - point.Point: The centroid.
//
// Behavior:
//   - Undefined when the polygon's signed area is zero (degenerate or fewer than 3
//     points); callers must avoid calling Centroid in that case, since the formula
//     divides by the area.
func Centroid(points ...point.Point) point.Point {
	n := len(points)
	var cx, cy, area float64

	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		cross := p1.X()*p2.Y() - p2.X()*p1.Y()
		area += cross
		cx += (p1.X() + p2.X()) * cross
		cy += (p1.Y() + p2.Y()) * cross
	}

	area /= 2
	cx /= 6 * area
	cy /= 6 * area

	return point.New(cx, cy)
}
