package polygon

import (
	"fmt"

	"github.com/gopherplane/geom2d/linesegment"
	"github.com/gopherplane/geom2d/numeric"
	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
	"github.com/gopherplane/geom2d/types"
)

// IsWellFormed checks whether a given set of points defines a well-formed polygon.
// A polygon is considered well-formed if:
//
//  1. It has at least 3 points.
//  2. It has a non-zero area.
//  3. It does not contain any self-intersecting edges, other than the shared
//     vertex between consecutive edges.
//
// Parameters:
//   - points ([]point.Point): The vertices of the polygon.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the tolerance used both for the area check and the self-intersection check.
//
// Returns:
//   - bool: Whether the polygon is well-formed.
//   - error: Details of why the polygon is not well-formed, or nil.
func IsWellFormed(points []point.Point, opts ...options.GeometryOptionsFunc) (bool, error) {
	if len(points) < 3 {
		return false, fmt.Errorf("polygon must have at least 3 points")
	}

	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	if numeric.FloatEquals(SignedArea2X(points...), 0, geoOpts.Epsilon) {
		return false, fmt.Errorf("polygon has zero area")
	}

	segments := ToLineSegments(points...)
	groups := linesegment.FindIntersectionsBruteForce(segments, opts...)

	for _, group := range groups {
		if sharedVertexOnly(group) {
			continue
		}
		return false, fmt.Errorf("polygon has self-intersecting edges")
	}

	return true, nil
}

// sharedVertexOnly reports whether a MultiLinePoint is explained entirely by two
// consecutive edges meeting at their shared endpoint, which is the expected,
// non-self-intersecting case for every vertex of a simple polygon's edge ring.
func sharedVertexOnly(group linesegment.MultiLinePoint) bool {
	if len(group.Participants) != 2 {
		return false
	}
	for _, p := range group.Participants {
		switch p.Location {
		case types.LineLocationStart, types.LineLocationEnd:
		default:
			return false
		}
	}
	return true
}

// ToLineSegments converts a set of points defining a polygon into a set of
// [linesegment.LineSegment] representing the edges of the polygon. Points are assumed
// to define a closed polygon, meaning the last point connects back to the first.
//
// Degenerate line segments (segments with zero length due to repeated points) are skipped.
//
// Parameters:
//   - points: A variadic slice of [point.Point] that defines the vertices of the polygon.
//
// Returns:
//   - []linesegment.LineSegment: The polygon's edges.
//
// Behavior:
//   - If fewer than two points are provided, the function returns an empty slice.
//   - Degenerate line segments (zero-length segments) are excluded from the result.
func ToLineSegments(points ...point.Point) []linesegment.LineSegment {
	var segments []linesegment.LineSegment
	n := len(points)

	if n < 2 {
		return segments
	}

	for i := 0; i < n; i++ {
		start := points[i]
		end := points[(i+1)%n]

		if start.Eq(end) {
			continue
		}

		segments = append(segments, linesegment.NewFromPoints(start, end))
	}

	return segments
}
