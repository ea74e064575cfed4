package polygon

import (
	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
)

// PointRelation classifies where a query point falls relative to a simple polygon.
type PointRelation uint8

const (
	// Outside means the point lies outside the polygon, including outside its edges.
	Outside PointRelation = iota

	// Inside means the point lies strictly within the polygon's interior.
	Inside

	// Edge means the point lies on one of the polygon's edges, but not at a vertex.
	Edge

	// Vertex means the point coincides with one of the polygon's vertices.
	Vertex
)

// String returns the name of r.
func (r PointRelation) String() string {
	switch r {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	case Edge:
		return "Edge"
	case Vertex:
		return "Vertex"
	default:
		return "Unknown"
	}
}

// PointInPolygon classifies q's position relative to the simple polygon described by
// points.
//
// Parameters:
//   - points ([]point.Point): The polygon's vertices, in order; the last point is
//     assumed to connect back to the first.
//   - q (point.Point): The query point.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the tolerance used for the vertex/edge pre-check.
//
// Returns:
//   - PointRelation: One of {Inside, Outside, Edge, Vertex}.
//
// Behavior:
//  1. q is first checked against every vertex and edge of the polygon, under epsilon;
//     a hit there immediately returns Vertex or Edge.
//  2. Otherwise, a ray-crossing count is run: a horizontal ray extending from q in the
//     +x direction, counting edges it crosses, using a half-open convention on the
//     edges' y-extents so a ray that grazes a vertex is counted exactly once rather
//     than zero or two times. An odd count means Inside, even means Outside.
func PointInPolygon(points []point.Point, q point.Point, opts ...options.GeometryOptionsFunc) PointRelation {
	n := len(points)
	if n == 0 {
		return Outside
	}

	for _, p := range points {
		if q.Eq(p, opts...) {
			return Vertex
		}
	}

	segments := ToLineSegments(points...)
	for _, seg := range segments {
		if seg.ContainsPoint(q, opts...) {
			return Edge
		}
	}

	crossings := 0
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]

		// Half-open on y: an edge is "above" q's scanline at its lower endpoint and
		// "at or above" at its upper endpoint is excluded, so a ray through a shared
		// vertex of two edges crosses exactly one of them.
		aAbove := a.Y() > q.Y()
		bAbove := b.Y() > q.Y()
		if aAbove == bAbove {
			continue
		}

		// x-coordinate where the edge crosses the scanline y = q.Y().
		t := (q.Y() - a.Y()) / (b.Y() - a.Y())
		xCross := a.X() + t*(b.X()-a.X())

		if xCross > q.X() {
			crossings++
		}
	}

	if crossings%2 == 1 {
		return Inside
	}
	return Outside
}
