package polygon

import (
	"sort"

	"github.com/gopherplane/geom2d/point"
)

// ConvexHull computes the [convex hull] of a finite set of points using [Andrew's
// monotone chain] algorithm. The convex hull is the smallest convex polygon that
// encloses all points in the input set.
//
// Parameters:
//   - points ([]point.Point): A variadic slice of points for which the convex hull is
//     to be computed.
//
// Returns:
//   - []point.Point: The hull vertices, in counterclockwise screen order (negative
//     signed area, since screen y grows downward), with no repeated closing point.
//
// Behavior:
//   - Zero points returns an empty hull; all points coincident returns that one
//     point; all points collinear returns the two extreme points of the line.
//   - Duplicate input points collapse into a single hull vertex.
//   - The input is sorted by (x, then y) into a working copy; the original slice is
//     left untouched.
//
// [Andrew's monotone chain]: https://en.wikipedia.org/wiki/Convex_hull_algorithms#Monotone_chain
// [convex hull]: https://en.wikipedia.org/wiki/Convex_hull
func ConvexHull(points ...point.Point) []point.Point {
	if len(points) == 0 {
		return nil
	}

	sorted := make([]point.Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X() != sorted[j].X() {
			return sorted[i].X() < sorted[j].X()
		}
		return sorted[i].Y() < sorted[j].Y()
	})

	dedup := sorted[:1]
	for _, p := range sorted[1:] {
		if !p.Eq(dedup[len(dedup)-1]) {
			dedup = append(dedup, p)
		}
	}
	sorted = dedup

	if len(sorted) < 3 {
		return sorted
	}

	// Lower chain.
	var lower []point.Point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	// Upper chain.
	var upper []point.Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Both chains include their shared endpoints; drop the duplicates before joining.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)

	if len(hull) == 2 && hull[0].Eq(hull[1]) {
		return hull[:1]
	}

	// The chains run counterclockwise with y up; reverse them into screen order.
	for i, j := 0, len(hull)-1; i < j; i, j = i+1, j-1 {
		hull[i], hull[j] = hull[j], hull[i]
	}

	return hull
}

// cross returns the z-component of the cross product of (b-a) and (c-a), used to
// determine the turn direction at b when walking a -> b -> c.
func cross(a, b, c point.Point) float64 {
	return b.Sub(a).CrossProduct(c.Sub(a))
}
