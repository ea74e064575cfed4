package point

import (
	"math"

	"github.com/gopherplane/geom2d/numeric"
	"github.com/gopherplane/geom2d/options"
)

// CompareX imposes a total order on points by x-coordinate, breaking ties by
// y-coordinate. It compares coordinates exactly (bitwise), with no epsilon
// tolerance.
//
// Returns:
//   - int: -1 if p sorts before q, 1 if p sorts after q, 0 if they are equal.
//
// Note:
//   - This is the order expected by callers such as [ConvexHull], which sorts
//     its input lexicographically by (x, y) before scanning.
func CompareX(p, q Point) int {
	switch {
	case p.x < q.x:
		return -1
	case p.x > q.x:
		return 1
	case p.y < q.y:
		return -1
	case p.y > q.y:
		return 1
	default:
		return 0
	}
}

// CompareY imposes a total order on points by y-coordinate, breaking ties by
// x-coordinate. It compares coordinates exactly (bitwise), with no epsilon
// tolerance.
//
// Returns:
//   - int: -1 if p sorts before q, 1 if p sorts after q, 0 if they are equal.
func CompareY(p, q Point) int {
	switch {
	case p.y < q.y:
		return -1
	case p.y > q.y:
		return 1
	case p.x < q.x:
		return -1
	case p.x > q.x:
		return 1
	default:
		return 0
	}
}

// CompareXEpsilon is the epsilon-tolerant counterpart of [CompareX]. Two
// coordinates within geoOpts.Epsilon of each other are treated as equal
// before falling through to the next tiebreaker.
func CompareXEpsilon(p, q Point, opts ...options.GeometryOptionsFunc) int {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	if !numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) {
		if p.x < q.x {
			return -1
		}
		return 1
	}
	if !numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon) {
		if p.y < q.y {
			return -1
		}
		return 1
	}
	return 0
}

// CompareYEpsilon is the epsilon-tolerant counterpart of [CompareY].
func CompareYEpsilon(p, q Point, opts ...options.GeometryOptionsFunc) int {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	if !numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon) {
		if p.y < q.y {
			return -1
		}
		return 1
	}
	if !numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) {
		if p.x < q.x {
			return -1
		}
		return 1
	}
	return 0
}

// NearestPoint returns the point in points sorted (a slice already sorted by
// [CompareX]) that is closest to query, along with its index.
//
// Parameters:
//   - sorted ([]Point): Points sorted in ascending [CompareX] order.
//   - query (Point): The point to search near.
//
// Returns:
//   - Point: The closest point found.
//   - int: Its index within sorted.
//   - bool: False if sorted is empty, in which case the other return values are zero.
//
// Behavior:
//   - Performs a binary search to find the insertion point of query by x-coordinate,
//     then expands outward from that index in both directions, pruning the search
//     once the horizontal distance alone exceeds the best squared distance found
//     so far. This avoids a full linear scan while still finding the true nearest
//     point, since a closer point could have an x-coordinate on either side of
//     query's.
func NearestPoint(sorted []Point, query Point) (Point, int, bool) {
	n := len(sorted)
	if n == 0 {
		return Point{}, 0, false
	}

	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if sorted[mid].x < query.x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	bestIdx := -1
	bestDist := math.Inf(1)

	consider := func(i int) {
		if i < 0 || i >= n {
			return
		}
		d := sorted[i].DistanceSquaredToPoint(query)
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	left, right := lo-1, lo
	consider(right)
	consider(left)

	for left >= 0 || right < n {
		dxLeft := math.Inf(1)
		if left >= 0 {
			dxLeft = query.x - sorted[left].x
		}
		dxRight := math.Inf(1)
		if right < n {
			dxRight = sorted[right].x - query.x
		}

		if dxLeft*dxLeft > bestDist && dxRight*dxRight > bestDist {
			break
		}

		if left >= 0 {
			left--
			consider(left)
		}
		if right < n {
			right++
			consider(right)
		}
	}

	return sorted[bestIdx], bestIdx, true
}
