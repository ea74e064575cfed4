package circle

import "github.com/gopherplane/geom2d/point"

// Circumcircle computes the unique circle passing through three non-collinear points.
//
// Parameters:
//   - a, b, c (point.Point): Three points, assumed non-collinear. If they are collinear
//     (or nearly so), the denominator below approaches zero and the returned circle's
//     center and radius will be unreliable or infinite; callers are expected to have
//     already screened for collinearity (for example with [point.Orientation]).
//
// Returns:
//   - Circle: The circle through a, b, and c.
//
// Behavior:
//   - Solves the center as the intersection of the perpendicular bisectors of a-b
//     and b-c using the standard closed-form determinant formula, then sets the
//     radius to the center's distance from a.
//
// This is the key predicate behind Delaunay triangulation: a candidate triangle is
// part of the Delaunay triangulation only if no other input site lies inside its
// circumcircle.
func Circumcircle(a, b, c point.Point) Circle {
	ax, ay := a.X(), a.Y()
	bx, by := b.X(), b.Y()
	cx, cy := c.X(), c.Y()

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))

	aSq := ax*ax + ay*ay
	bSq := bx*bx + by*by
	cSq := cx*cx + cy*cy

	ux := (aSq*(by-cy) + bSq*(cy-ay) + cSq*(ay-by)) / d
	uy := (aSq*(cx-bx) + bSq*(ax-cx) + cSq*(bx-ax)) / d

	center := point.New(ux, uy)
	return NewFromPoint(center, center.DistanceToPoint(a))
}

// InCircumcircle reports whether p lies strictly inside the circumcircle of a, b, c.
//
// Parameters:
//   - a, b, c (point.Point): The three points defining the circumcircle, in either
//     winding order.
//   - p (point.Point): The point to test.
//
// Returns:
//   - bool: True if p lies strictly inside the circumcircle of a, b, c.
//
// Behavior:
//   - Builds the circle with [Circumcircle] and compares p's distance to its center
//     against its radius; a point exactly on the circumcircle's boundary is not
//     considered inside.
func InCircumcircle(a, b, c, p point.Point) bool {
	circ := Circumcircle(a, b, c)
	return p.DistanceToPoint(circ.Center()) < circ.Radius()
}
