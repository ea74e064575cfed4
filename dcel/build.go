package dcel

import (
	"math"
	"sort"

	"github.com/gopherplane/geom2d/linesegment"
	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
	"github.com/gopherplane/geom2d/polygon"
	"github.com/gopherplane/geom2d/types"
)

// FromLines builds a Subdivision from an arbitrary set of line segments.
//
// Parameters:
//   - segments ([]linesegment.LineSegment): The input segments. They need not form
//     simple polygons; they may cross, touch, or overlap arbitrarily.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the tolerance used both for the intersection split and for snapping
//     near-coincident vertices together.
//
// Returns:
//   - *Subdivision: The resulting planar subdivision.
//
// Behavior:
//   - Every input segment is first split at each point it shares with another
//     segment (via [linesegment.FindIntersectionsBruteForce]), so that the resulting
//     mini-segments meet only at their endpoints.
//   - The mini-segments are then assembled into a DCEL in one batch pass: vertices are
//     deduplicated under epsilon, half-edges are paired, and face cycles are traced by
//     sorting the half-edges leaving each vertex by angle and linking next/prev
//     pointers accordingly — the standard planar-embedding face-tracing construction,
//     equivalent in the resulting topology to inserting edges one at a time.
//   - Each traced cycle's signed area determines whether it bounds an interior
//     (negative signed area under the CCW walk, per screen-coordinate convention) face
//     or is an inner boundary of the unbounded face.
func FromLines(segments []linesegment.LineSegment, opts ...options.GeometryOptionsFunc) *Subdivision {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	miniSegments := splitAtIntersections(segments, geoOpts.Epsilon)
	return buildFromSegments(miniSegments, opts...)
}

// FromPolygons builds a Subdivision from a set of polygon rings, each ring becoming
// the outer boundary of a new bounded face.
//
// Parameters:
//   - rings ([][]point.Point): Each ring is a closed polygon (the last point is
//     assumed to connect back to the first).
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the tolerance used for vertex snapping and the crossing check.
//
// Returns:
//   - *Subdivision: The resulting planar subdivision.
//
// Behavior:
//   - If no pair of rings' edges cross one another, the rings are inserted directly
//     without running the general-purpose intersector, which is faster for the common
//     case of disjoint or nested simple polygons.
//   - Otherwise, the rings' edges are extracted and handed to [FromLines], which
//     splits at every crossing first.
func FromPolygons(rings [][]point.Point, opts ...options.GeometryOptionsFunc) *Subdivision {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	var allSegments []linesegment.LineSegment
	for _, ring := range rings {
		allSegments = append(allSegments, polygon.ToLineSegments(ring...)...)
	}

	if !anyRingsCross(allSegments, geoOpts.Epsilon) {
		return buildFromSegments(allSegments, opts...)
	}

	return FromLines(allSegments, opts...)
}

// anyRingsCross reports whether any two segments in the set intersect somewhere other
// than a shared endpoint, or whether more than two segments meet at one point; either
// means the rings are not safe to insert directly.
func anyRingsCross(segments []linesegment.LineSegment, epsilon float64) bool {
	groups := linesegment.FindIntersectionsBruteForce(segments, options.WithEpsilon(epsilon))
	for _, g := range groups {
		if len(g.Participants) <= 2 {
			sharedVertexOnly := true
			for _, p := range g.Participants {
				if p.Location != types.LineLocationStart && p.Location != types.LineLocationEnd {
					sharedVertexOnly = false
				}
			}
			if sharedVertexOnly {
				continue
			}
		}
		return true
	}
	return false
}

// splitAtIntersections breaks every segment at each point it shares with another
// segment in the set, returning the resulting collection of non-crossing mini-segments.
func splitAtIntersections(segments []linesegment.LineSegment, epsilon float64) []linesegment.LineSegment {
	groups := linesegment.FindIntersectionsBruteForce(segments, options.WithEpsilon(epsilon))

	splitPoints := make([][]point.Point, len(segments))
	for _, g := range groups {
		for _, p := range g.Participants {
			splitPoints[p.SegmentIndex] = append(splitPoints[p.SegmentIndex], g.Point)
		}
	}

	var result []linesegment.LineSegment
	for i, seg := range segments {
		upper, lower := seg.Upper(), seg.Lower()
		pts := append([]point.Point{upper, lower}, splitPoints[i]...)

		sort.Slice(pts, func(a, b int) bool {
			da := upper.DistanceSquaredToPoint(pts[a])
			db := upper.DistanceSquaredToPoint(pts[b])
			return da < db
		})

		for j := 0; j < len(pts)-1; j++ {
			if pts[j].Eq(pts[j+1], options.WithEpsilon(epsilon)) {
				continue
			}
			result = append(result, linesegment.NewFromPoints(pts[j], pts[j+1]))
		}
	}

	return result
}

// buildFromSegments assembles a Subdivision from a collection of segments assumed to
// already meet only at endpoints.
func buildFromSegments(segments []linesegment.LineSegment, opts ...options.GeometryOptionsFunc) *Subdivision {
	s := newSubdivision(opts...)

	for _, seg := range segments {
		a := s.getOrCreateVertex(seg.Upper())
		b := s.getOrCreateVertex(seg.Lower())
		if a == b {
			continue
		}
		s.addHalfEdgePair(a, b)
	}

	s.linkFaces()
	return s
}

// linkFaces computes next/prev pointers for every half-edge by sorting, at each
// vertex, the half-edges leaving it in clockwise angular order, then traces face
// cycles and assigns each to a [face].
func (s *Subdivision) linkFaces() {
	outgoing := make(map[VertexID][]EdgeID, len(s.vertices))
	for e := range s.halfEdges {
		o := s.halfEdges[e].Origin
		outgoing[o] = append(outgoing[o], EdgeID(e))
	}

	for v, edges := range outgoing {
		origin := s.vertices[v].Point
		sort.Slice(edges, func(i, j int) bool {
			return angleOf(origin, s.destinationPoint(edges[i])) > angleOf(origin, s.destinationPoint(edges[j]))
		})

		k := len(edges)
		for i := 0; i < k; i++ {
			e1 := edges[i]
			e2 := edges[(i+1)%k]
			twinOfE1 := s.halfEdges[e1].Twin
			s.halfEdges[twinOfE1].Next = e2
			s.halfEdges[e2].Prev = twinOfE1
		}
	}

	s.faces = s.faces[:1] // keep the pre-allocated unbounded face, discard stale cycles
	s.faces[0] = face{Outer: NoEdge}

	visited := make([]bool, len(s.halfEdges))
	for start := range s.halfEdges {
		if visited[start] {
			continue
		}

		cycle := []EdgeID{EdgeID(start)}
		visited[start] = true
		for e := s.halfEdges[start].Next; e != EdgeID(start); e = s.halfEdges[e].Next {
			visited[e] = true
			cycle = append(cycle, e)
		}

		area := s.cycleSignedArea(cycle)

		if area < 0 {
			fid := FaceID(len(s.faces))
			s.faces = append(s.faces, face{Outer: cycle[0]})
			for _, e := range cycle {
				s.halfEdges[e].Face = fid
			}
		} else {
			s.faces[UnboundedFace].Inner = append(s.faces[UnboundedFace].Inner, cycle[0])
			for _, e := range cycle {
				s.halfEdges[e].Face = UnboundedFace
			}
		}
	}

	s.resolveNesting()
}

// resolveNesting reassigns every exterior cycle provisionally attached to the
// unbounded face as an inner boundary (hole) of whichever bounded face
// actually encloses it. Edge connectivity alone cannot distinguish a
// disjoint component sitting in open space from one sitting inside another
// face's interior, so containment is decided geometrically: each candidate
// cycle's representative point is tested against every bounded face's outer
// boundary, and the smallest-area face that contains it wins (innermost
// nesting level).
func (s *Subdivision) resolveNesting() {
	if len(s.faces) <= 1 {
		return
	}

	candidates := s.faces[UnboundedFace].Inner
	var stillUnbounded []EdgeID

	for _, rep := range candidates {
		cycle := s.walk(rep)
		probe := s.vertices[s.halfEdges[rep].Origin].Point

		best := FaceID(-1)
		bestArea := math.Inf(1)
		for f := 1; f < len(s.faces); f++ {
			outerCycle := s.Cycle(FaceID(f))
			if containsAny(outerCycle, cycle) {
				continue // a cycle cannot nest inside itself
			}
			if polygon.PointInPolygon(s.Vertices(outerCycle), probe) == polygon.Outside {
				continue
			}
			area := math.Abs(s.cycleSignedArea(outerCycle))
			if area < bestArea {
				bestArea = area
				best = FaceID(f)
			}
		}

		if best == -1 {
			stillUnbounded = append(stillUnbounded, rep)
			continue
		}

		s.faces[best].Inner = append(s.faces[best].Inner, rep)
		for _, e := range cycle {
			s.halfEdges[e].Face = best
		}
	}

	s.faces[UnboundedFace].Inner = stillUnbounded
}

// containsAny reports whether any edge of b also appears in a.
func containsAny(a, b []EdgeID) bool {
	set := make(map[EdgeID]bool, len(a))
	for _, e := range a {
		set[e] = true
	}
	for _, e := range b {
		if set[e] {
			return true
		}
	}
	return false
}

// destinationPoint is a build-time helper that reads a half-edge's destination point
// directly, since the face-linking pass runs before faces (and thus most queries) are
// meaningful.
func (s *Subdivision) destinationPoint(e EdgeID) point.Point {
	return s.vertices[s.halfEdges[s.halfEdges[e].Twin].Origin].Point
}

// angleOf returns the angle of the vector from origin to p, in (-pi, pi].
func angleOf(origin, p point.Point) float64 {
	return math.Atan2(p.Y()-origin.Y(), p.X()-origin.X())
}

// cycleSignedArea computes twice the shoelace signed area of the vertex sequence
// traced by cycle.
func (s *Subdivision) cycleSignedArea(cycle []EdgeID) float64 {
	var area float64
	for _, e := range cycle {
		p1 := s.vertices[s.halfEdges[e].Origin].Point
		p2 := s.destinationPoint(e)
		area += p1.X()*p2.Y() - p2.X()*p1.Y()
	}
	return area
}
