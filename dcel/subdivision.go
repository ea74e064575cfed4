package dcel

import (
	"cmp"
	"math"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
)

// Subdivision is a doubly-connected edge list: a planar subdivision of
// vertices, half-edges, and faces. Vertices, half-edges, and faces are
// addressed by small integer handles ([VertexID], [EdgeID], [FaceID]) into
// arenas owned by the Subdivision, rather than by pointer, so a Subdivision
// can be cloned, compared, and serialized by value.
type Subdivision struct {
	vertices  []Vertex
	halfEdges []halfEdge
	faces     []face

	epsilon float64

	// vertexIndex maps a vertex's coordinates (rounded to the epsilon grid)
	// to its VertexID, giving O(log n) FindVertex.
	vertexIndex *rbt.Tree

	// sortedByX holds every VertexID in ascending (x, then y) order, used by
	// FindNearestVertex's expanding-window search.
	sortedByX []VertexID
}

// vertexKey is the key type stored in a Subdivision's vertexIndex.
type vertexKey struct {
	x, y float64
}

func vertexKeyComparator(a, b any) int {
	ka, kb := a.(vertexKey), b.(vertexKey)
	if c := cmp.Compare(ka.x, kb.x); c != 0 {
		return c
	}
	return cmp.Compare(ka.y, kb.y)
}

// newSubdivision creates an empty Subdivision with the unbounded face
// pre-allocated as face 0.
func newSubdivision(opts ...options.GeometryOptionsFunc) *Subdivision {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	s := &Subdivision{
		epsilon:     geoOpts.Epsilon,
		vertexIndex: rbt.NewWith(vertexKeyComparator),
	}
	s.faces = append(s.faces, face{Outer: NoEdge})
	return s
}

// key returns the vertex-index key for p, with each coordinate snapped to the
// nearest multiple of epsilon, so that points rounding to the same grid point
// share a key.
func (s *Subdivision) key(p point.Point) vertexKey {
	if s.epsilon <= 0 {
		return vertexKey{p.X(), p.Y()}
	}
	snap := func(v float64) float64 {
		return math.Round(v/s.epsilon) * s.epsilon
	}
	return vertexKey{snap(p.X()), snap(p.Y())}
}

// getOrCreateVertex returns the VertexID for p, creating a new vertex if no
// vertex with the same snapped key already exists.
func (s *Subdivision) getOrCreateVertex(p point.Point) VertexID {
	k := s.key(p)
	if v, ok := s.vertexIndex.Get(k); ok {
		return v.(VertexID)
	}

	id := VertexID(len(s.vertices))
	s.vertices = append(s.vertices, Vertex{Point: p, Edge: NoEdge})
	s.vertexIndex.Put(k, id)
	s.sortedByX = insertSortedByX(s.sortedByX, s.vertices, id)
	return id
}

func insertSortedByX(sorted []VertexID, vertices []Vertex, id VertexID) []VertexID {
	p := vertices[id].Point
	i := 0
	for i < len(sorted) {
		q := vertices[sorted[i]].Point
		if p.X() > q.X() || (p.X() == q.X() && p.Y() > q.Y()) {
			i++
			continue
		}
		break
	}
	sorted = append(sorted, 0)
	copy(sorted[i+1:], sorted[i:])
	sorted[i] = id
	return sorted
}

// addHalfEdgePair allocates a new pair of twin half-edges between origin and
// destination, returning the EdgeID of the origin->destination half-edge.
// The pair is always allocated together so EdgeID.Twin's parity trick holds.
func (s *Subdivision) addHalfEdgePair(origin, destination VertexID) EdgeID {
	e1 := EdgeID(len(s.halfEdges))
	e2 := e1 + 1

	s.halfEdges = append(s.halfEdges,
		halfEdge{Origin: origin, Twin: e2, Next: NoEdge, Prev: NoEdge, Face: UnboundedFace},
		halfEdge{Origin: destination, Twin: e1, Next: NoEdge, Prev: NoEdge, Face: UnboundedFace},
	)

	if s.vertices[origin].Edge == NoEdge {
		s.vertices[origin].Edge = e1
	}
	if s.vertices[destination].Edge == NoEdge {
		s.vertices[destination].Edge = e2
	}

	return e1
}

// VertexCount returns the number of vertices in the subdivision.
func (s *Subdivision) VertexCount() int { return len(s.vertices) }

// EdgeCount returns the number of half-edges in the subdivision (twice the
// number of undirected edges).
func (s *Subdivision) EdgeCount() int { return len(s.halfEdges) }

// FaceCount returns the number of faces, including the unbounded face.
func (s *Subdivision) FaceCount() int { return len(s.faces) }

// VertexAt returns the vertex record for id.
func (s *Subdivision) VertexAt(id VertexID) Vertex { return s.vertices[id] }

// Origin returns the origin vertex of half-edge e.
func (s *Subdivision) Origin(e EdgeID) VertexID { return s.halfEdges[e].Origin }

// Destination returns the destination vertex of half-edge e (the origin of
// its twin).
func (s *Subdivision) Destination(e EdgeID) VertexID { return s.halfEdges[s.halfEdges[e].Twin].Origin }

// Next returns the next half-edge around e's face.
func (s *Subdivision) Next(e EdgeID) EdgeID { return s.halfEdges[e].Next }

// Prev returns the previous half-edge around e's face.
func (s *Subdivision) Prev(e EdgeID) EdgeID { return s.halfEdges[e].Prev }

// FaceOf returns the face that half-edge e bounds.
func (s *Subdivision) FaceOf(e EdgeID) FaceID { return s.halfEdges[e].Face }

// OuterEdge returns the representative half-edge of f's outer boundary, or
// NoEdge if f is the unbounded face.
func (s *Subdivision) OuterEdge(f FaceID) EdgeID { return s.faces[f].Outer }

// InnerEdges returns one representative half-edge per inner boundary (hole,
// or disjoint component for the unbounded face) of f.
func (s *Subdivision) InnerEdges(f FaceID) []EdgeID { return s.faces[f].Inner }
