package dcel

import (
	"math"

	"github.com/gopherplane/geom2d/linesegment"
	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
)

// FindVertex looks up the vertex at p, if any exists within epsilon.
//
// Returns:
//   - VertexID: The matching vertex, or -1 if none is found.
//   - bool: Whether a match was found.
//
// Behavior:
//   - Runs in O(log n) via the subdivision's coordinate-sorted vertex index.
func (s *Subdivision) FindVertex(p point.Point) (VertexID, bool) {
	k := s.key(p)
	if v, ok := s.vertexIndex.Get(k); ok {
		return v.(VertexID), true
	}
	return -1, false
}

// FindNearestVertex returns the vertex closest to q.
//
// Returns:
//   - VertexID: The nearest vertex, or -1 if the subdivision has no vertices.
//   - float64: The Euclidean distance to it.
//
// Behavior:
//   - Runs in expected O(√n) via an expanding-window search seeded by a binary search
//     on the x-sorted vertex array, the same strategy as [point.NearestPoint].
func (s *Subdivision) FindNearestVertex(q point.Point) (VertexID, float64) {
	if len(s.sortedByX) == 0 {
		return -1, math.Inf(1)
	}

	points := make([]point.Point, len(s.sortedByX))
	for i, id := range s.sortedByX {
		points[i] = s.vertices[id].Point
	}

	_, idx, ok := point.NearestPoint(points, q)
	if !ok {
		return -1, math.Inf(1)
	}

	nearest := s.sortedByX[idx]
	return nearest, q.DistanceToPoint(s.vertices[nearest].Point)
}

// FindEdge returns the half-edge from origin to destination, if one exists.
//
// Parameters:
//   - origin, destination (VertexID): The endpoints to search between.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the tolerance used when comparing candidate destinations.
//
// Returns:
//   - EdgeID: The matching half-edge, or -1 if none exists.
//   - bool: Whether a match was found.
//
// Behavior:
//   - Rotates through the half-edges leaving origin, comparing each destination
//     against destination's coordinates under epsilon.
func (s *Subdivision) FindEdge(origin, destination VertexID, opts ...options.GeometryOptionsFunc) (EdgeID, bool) {
	start := s.vertices[origin].Edge
	if start == NoEdge {
		return -1, false
	}

	target := s.vertices[destination].Point

	e := start
	for {
		if s.destinationPoint(e).Eq(target, opts...) {
			return e, true
		}
		e = s.halfEdges[s.halfEdges[e].Twin].Next
		if e == start {
			break
		}
	}
	return -1, false
}

// FindNearestEdge returns the half-edge closest to q and its distance.
//
// Parameters:
//   - q (point.Point): The query point.
//
// Returns:
//   - EdgeID: The nearest half-edge, or -1 if the subdivision has no edges.
//   - float64: The distance from q to that half-edge.
//
// Behavior:
//   - Brute scan over every undirected edge (one half-edge per pair, the even-indexed
//     one), pruned early by a coarse bounding-box distance check before computing the
//     exact segment distance.
func (s *Subdivision) FindNearestEdge(q point.Point) (EdgeID, float64) {
	best := EdgeID(-1)
	bestDist := math.Inf(1)

	for e := 0; e < len(s.halfEdges); e += 2 {
		a := s.vertices[s.halfEdges[e].Origin].Point
		b := s.destinationPoint(EdgeID(e))

		minX, maxX := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
		minY, maxY := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
		bboxDist := bboxDistance(q, minX, minY, maxX, maxY)
		if bboxDist > bestDist {
			continue
		}

		seg := linesegment.NewFromPoints(a, b)
		d := seg.DistanceToPoint(q)
		if d < bestDist {
			bestDist = d
			best = EdgeID(e)
		}
	}

	return best, bestDist
}

// bboxDistance returns the distance from q to the axis-aligned box
// [minX,maxX]x[minY,maxY], 0 if q is inside it.
func bboxDistance(q point.Point, minX, minY, maxX, maxY float64) float64 {
	dx := math.Max(math.Max(minX-q.X(), q.X()-maxX), 0)
	dy := math.Max(math.Max(minY-q.Y(), q.Y()-maxY), 0)
	return math.Hypot(dx, dy)
}

// Find locates q within the subdivision, returning a tagged result naming the
// vertex, edge, or face it landed on.
//
// Parameters:
//   - q (point.Point): The query point.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the tolerance used for the vertex and edge checks.
//
// Returns:
//   - SubdivisionElement: The tagged result.
//
// Behavior:
//   - This is the brute-force reference implementation; [github.com/gopherplane/geom2d/pointlocation]
//     provides a sublinear-time accelerated equivalent over the same subdivision.
//   - Checks every vertex first (ties always prefer the vertex variant), then every
//     edge, then falls back to a face test: q belongs to whichever bounded face's
//     polygon contains it, or the unbounded face otherwise.
func (s *Subdivision) Find(q point.Point, opts ...options.GeometryOptionsFunc) SubdivisionElement {
	if v, ok := s.FindVertex(q); ok {
		// FindVertex already applies epsilon-snapping, but verify the exact
		// tolerance requested by opts in case it differs from the subdivision's.
		if s.vertices[v].Point.Eq(q, opts...) {
			return SubdivisionElement{Kind: ElementVertex, Vertex: v}
		}
	}

	for e := 0; e < len(s.halfEdges); e += 2 {
		a := s.vertices[s.halfEdges[e].Origin].Point
		b := s.destinationPoint(EdgeID(e))
		seg := linesegment.NewFromPoints(a, b)
		if seg.ContainsPoint(q, opts...) {
			return SubdivisionElement{Kind: ElementEdge, Edge: EdgeID(e)}
		}
	}

	for f := 1; f < len(s.faces); f++ {
		if s.faceContainsPoint(FaceID(f), q, opts...) {
			return SubdivisionElement{Kind: ElementFace, Face: FaceID(f)}
		}
	}

	return SubdivisionElement{Kind: ElementFace, Face: UnboundedFace}
}
