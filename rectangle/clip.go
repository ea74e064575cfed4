package rectangle

import "github.com/gopherplane/geom2d/point"

// ClipPolygon clips a polygon, given as an ordered slice of vertices, against this
// rectangle using the Sutherland-Hodgman algorithm.
//
// Parameters:
//   - subject ([]point.Point): The vertices of the polygon to clip, in order (either
//     winding direction is accepted).
//
// Returns:
//   - []point.Point: The vertices of the clipped polygon, in the same winding order
//     as subject. An empty slice is returned if the polygon lies entirely outside
//     the rectangle.
//
// Behavior:
//   - The polygon is clipped successively against each of the rectangle's four
//     half-planes (left, right, bottom, top). Each pass walks the current vertex
//     list and keeps the portions that lie on the inside of the corresponding edge,
//     inserting a new vertex at the boundary wherever the polygon crosses it.
//   - The subject polygon need not be convex, but Sutherland-Hodgman can produce
//     degenerate (self-touching) output for non-convex input; this is primarily
//     intended for clipping convex cells, such as Voronoi regions, to a bounding box.
func (r Rectangle) ClipPolygon(subject []point.Point) []point.Point {
	if len(subject) == 0 {
		return nil
	}

	output := subject

	clipEdge := func(points []point.Point, inside func(point.Point) bool, intersect func(a, b point.Point) point.Point) []point.Point {
		if len(points) == 0 {
			return nil
		}
		var result []point.Point
		prev := points[len(points)-1]
		prevIn := inside(prev)
		for _, curr := range points {
			currIn := inside(curr)
			if currIn {
				if !prevIn {
					result = append(result, intersect(prev, curr))
				}
				result = append(result, curr)
			} else if prevIn {
				result = append(result, intersect(prev, curr))
			}
			prev = curr
			prevIn = currIn
		}
		return result
	}

	left := r.topLeft.X()
	right := r.bottomRight.X()
	bottom := r.bottomRight.Y()
	top := r.topLeft.Y()

	output = clipEdge(output,
		func(p point.Point) bool { return p.X() >= left },
		func(a, b point.Point) point.Point { return intersectVertical(a, b, left) },
	)
	output = clipEdge(output,
		func(p point.Point) bool { return p.X() <= right },
		func(a, b point.Point) point.Point { return intersectVertical(a, b, right) },
	)
	output = clipEdge(output,
		func(p point.Point) bool { return p.Y() >= bottom },
		func(a, b point.Point) point.Point { return intersectHorizontal(a, b, bottom) },
	)
	output = clipEdge(output,
		func(p point.Point) bool { return p.Y() <= top },
		func(a, b point.Point) point.Point { return intersectHorizontal(a, b, top) },
	)

	return output
}

// intersectVertical finds where segment a-b crosses the vertical line x = x.
func intersectVertical(a, b point.Point, x float64) point.Point {
	if b.X() == a.X() {
		return point.New(x, a.Y())
	}
	t := (x - a.X()) / (b.X() - a.X())
	return point.New(x, a.Y()+t*(b.Y()-a.Y()))
}

// intersectHorizontal finds where segment a-b crosses the horizontal line y = y.
func intersectHorizontal(a, b point.Point, y float64) point.Point {
	if b.Y() == a.Y() {
		return point.New(a.X(), y)
	}
	t := (y - a.Y()) / (b.Y() - a.Y())
	return point.New(a.X()+t*(b.X()-a.X()), y)
}
