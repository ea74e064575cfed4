// Package dcel implements a doubly-connected edge list: a planar subdivision
// of half-edges, vertices, and faces, built from line segments or polygon
// rings, queryable by point and navigable by topology.
package dcel

import "github.com/gopherplane/geom2d/point"

// VertexID identifies a vertex in a [Subdivision]'s vertex arena.
type VertexID int

// EdgeID identifies a half-edge in a [Subdivision]'s half-edge arena. Every
// half-edge has a twin; for an EdgeID e, its twin lives at e^1 (the arena
// always allocates half-edges in twin pairs), matching the teacher's own
// paired-index convention for symmetric structures.
type EdgeID int

// FaceID identifies a face in a [Subdivision]'s face arena. Face 0 is always
// the unbounded face.
type FaceID int

// UnboundedFace is the FaceID of the subdivision's single unbounded face.
const UnboundedFace FaceID = 0

// NoEdge is the sentinel for "no half-edge", used for a vertex or
// face with no incident edges recorded yet.
const NoEdge EdgeID = -1

// Twin returns the EdgeID of e's twin half-edge.
func (e EdgeID) Twin() EdgeID {
	if e%2 == 0 {
		return e + 1
	}
	return e - 1
}

// Vertex is a point in the subdivision together with one of its outgoing
// half-edges, used as the entry point for rotating through all edges
// incident to it.
type Vertex struct {
	Point point.Point
	Edge  EdgeID // an arbitrary outgoing half-edge, or NoEdge if isolated
}

// halfEdge is the internal half-edge record. It is unexported because callers
// interact with half-edges by EdgeID through Subdivision's methods.
type halfEdge struct {
	Origin VertexID
	Twin   EdgeID
	Next   EdgeID
	Prev   EdgeID
	Face   FaceID
}

// Face is a region of the subdivision bounded by one or more half-edge
// cycles.
type face struct {
	// Outer is the half-edge of this face's outer boundary cycle, or NoEdge
	// for the unbounded face (which has no outer boundary of its own).
	Outer EdgeID

	// Inner holds one representative half-edge per inner boundary (hole, or
	// for the unbounded face, one per connected component of the
	// subdivision's finite geometry).
	Inner []EdgeID
}

// ElementKind tags which kind of element a [SubdivisionElement] carries.
type ElementKind uint8

const (
	// ElementFace means the result names a face (the query point landed in
	// a face's interior, away from any edge or vertex).
	ElementFace ElementKind = iota

	// ElementEdge means the result names a half-edge whose carrier the
	// query point lies on.
	ElementEdge

	// ElementVertex means the result names a vertex the query point
	// coincides with.
	ElementVertex
)

// SubdivisionElement is the tagged result of a point-location query against
// a [Subdivision]: exactly one of Face, Edge, Vertex is meaningful,
// determined by Kind.
type SubdivisionElement struct {
	Kind   ElementKind
	Face   FaceID
	Edge   EdgeID
	Vertex VertexID
}
