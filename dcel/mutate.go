package dcel

import (
	"fmt"

	"github.com/gopherplane/geom2d/geom2derrors"
	"github.com/gopherplane/geom2d/linesegment"
	"github.com/gopherplane/geom2d/options"
)

// Clone returns a deep copy of s, preserving every VertexID/EdgeID/FaceID.
func (s *Subdivision) Clone() *Subdivision {
	clone := newSubdivision(options.WithEpsilon(s.epsilon))

	clone.vertices = append([]Vertex(nil), s.vertices...)
	clone.halfEdges = append([]halfEdge(nil), s.halfEdges...)
	clone.faces = make([]face, len(s.faces))
	for i, f := range s.faces {
		clone.faces[i] = face{Outer: f.Outer, Inner: append([]EdgeID(nil), f.Inner...)}
	}
	clone.sortedByX = append([]VertexID(nil), s.sortedByX...)

	for i, v := range s.vertices {
		clone.vertexIndex.Put(clone.key(v.Point), VertexID(i))
	}

	return clone
}

// Overlay merges s and other into a new Subdivision containing the union of both
// inputs' geometry: every half-edge of both subdivisions is reduced back to its
// underlying undirected segment, and the combined segment set is rebuilt from
// scratch via [FromLines], which splits every new crossing the union introduces
// (where an edge of s crosses an edge of other) and re-traces faces accordingly.
//
// Parameters:
//   - other (*Subdivision): The subdivision to merge into s.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the tolerance used for the rebuild's vertex snapping and intersection
//     splitting, the same as [FromLines].
//
// Returns:
//   - *Subdivision: A new subdivision; s and other are left unmodified.
func (s *Subdivision) Overlay(other *Subdivision, opts ...options.GeometryOptionsFunc) *Subdivision {
	segments := append(s.edgeSegments(), other.edgeSegments()...)
	return FromLines(segments, opts...)
}

// edgeSegments returns one [linesegment.LineSegment] per undirected edge in s.
func (s *Subdivision) edgeSegments() []linesegment.LineSegment {
	segments := make([]linesegment.LineSegment, 0, len(s.halfEdges)/2)
	for e := 0; e < len(s.halfEdges); e += 2 {
		a := s.vertices[s.halfEdges[e].Origin].Point
		b := s.destinationPoint(EdgeID(e))
		segments = append(segments, linesegment.NewFromPoints(a, b))
	}
	return segments
}

// StructureEquals reports whether s and other have identical topology and vertex
// coordinates under epsilon: the same number of vertices, half-edges, and faces, with
// corresponding vertices at matching coordinates and corresponding half-edges sharing
// the same Origin/Twin/Next/Face relationships.
//
// Parameters:
//   - other (*Subdivision): The subdivision to compare against.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the coordinate tolerance.
func (s *Subdivision) StructureEquals(other *Subdivision, opts ...options.GeometryOptionsFunc) bool {
	if len(s.vertices) != len(other.vertices) ||
		len(s.halfEdges) != len(other.halfEdges) ||
		len(s.faces) != len(other.faces) {
		return false
	}

	for i := range s.vertices {
		if !s.vertices[i].Point.Eq(other.vertices[i].Point, opts...) {
			return false
		}
	}

	for i := range s.halfEdges {
		a, b := s.halfEdges[i], other.halfEdges[i]
		if a.Origin != b.Origin || a.Twin != b.Twin || a.Next != b.Next || a.Prev != b.Prev || a.Face != b.Face {
			return false
		}
	}

	for i := range s.faces {
		a, b := s.faces[i], other.faces[i]
		if a.Outer != b.Outer || len(a.Inner) != len(b.Inner) {
			return false
		}
		for j := range a.Inner {
			if a.Inner[j] != b.Inner[j] {
				return false
			}
		}
	}

	return true
}

// Validate checks every structural invariant of s, returning the first violation
// found, or nil if none.
//
// Parameters:
//   - opts: A variadic slice of [options.GeometryOptionsFunc].
//     [options.WithAllowZeroAreaCycles] controls whether degenerate (zero-area)
//     cycles are accepted; by default they are rejected.
//
// Behavior:
//   - Confirms every half-edge's twin points back to it, that Next/Prev are mutual
//     inverses, that walking Next from any half-edge returns to itself, that every
//     bounded face's outer cycle has strictly negative signed area (the CCW-under-
//     screen-coordinates convention), and, unless explicitly allowed, that no
//     zero-area cycle exists.
func (s *Subdivision) Validate(opts ...options.GeometryOptionsFunc) error {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	for e, he := range s.halfEdges {
		if s.halfEdges[he.Twin].Twin != EdgeID(e) {
			return geom2derrors.New(geom2derrors.TopologyViolation, "dcel.Validate",
				fmt.Sprintf("half-edge %d's twin does not point back to it", e))
		}
		if he.Next == NoEdge || he.Prev == NoEdge {
			return geom2derrors.New(geom2derrors.TopologyViolation, "dcel.Validate",
				fmt.Sprintf("half-edge %d has an unset next/prev pointer", e))
		}
		if s.halfEdges[he.Next].Prev != EdgeID(e) {
			return geom2derrors.New(geom2derrors.TopologyViolation, "dcel.Validate",
				fmt.Sprintf("half-edge %d's next does not point back via prev", e))
		}
	}

	visited := make([]bool, len(s.halfEdges))
	for start := range s.halfEdges {
		if visited[start] {
			continue
		}
		cycle := s.walk(EdgeID(start))
		for _, e := range cycle {
			visited[e] = true
		}
	}
	for e, seen := range visited {
		if !seen {
			return geom2derrors.New(geom2derrors.TopologyViolation, "dcel.Validate",
				fmt.Sprintf("half-edge %d is not part of any closed cycle", e))
		}
	}

	for f := 1; f < len(s.faces); f++ {
		cycle := s.Cycle(FaceID(f))
		if s.SignedArea(cycle) >= 0 {
			return geom2derrors.New(geom2derrors.TopologyViolation, "dcel.Validate",
				fmt.Sprintf("bounded face %d's outer cycle does not have negative signed area", f))
		}
	}

	if !geoOpts.AllowZeroAreaCycles {
		if zero := s.GetZeroAreaCycles(opts...); len(zero) > 0 {
			return geom2derrors.New(geom2derrors.TopologyViolation, "dcel.Validate",
				fmt.Sprintf("%d zero-area cycle(s) present but not allowed", len(zero)))
		}
	}

	return nil
}
