package dcel

import (
	"math"

	"github.com/gopherplane/geom2d/graph"
	"github.com/gopherplane/geom2d/point"
)

// subdivisionGraph adapts a Subdivision to the [graph.Graph] interface: nodes are
// vertices, edges are the subdivision's half-edges.
type subdivisionGraph struct {
	s *Subdivision
}

// AsGraph returns a [graph.Graph] view of s: nodes are s's vertices (keyed by
// [VertexID]), and a vertex's neighbors are the destinations of its outgoing
// half-edges.
func (s *Subdivision) AsGraph() graph.Graph {
	return subdivisionGraph{s: s}
}

// Nodes returns every vertex in the subdivision, in [VertexID] order.
func (g subdivisionGraph) Nodes() []any {
	nodes := make([]any, g.s.VertexCount())
	for i := range nodes {
		nodes[i] = VertexID(i)
	}
	return nodes
}

// GetNeighbors returns the destination vertices reachable by a single half-edge
// from v, in the order they appear rotating around v.
func (g subdivisionGraph) GetNeighbors(v any) []any {
	id, ok := v.(VertexID)
	if !ok || int(id) < 0 || int(id) >= g.s.VertexCount() {
		return nil
	}

	start := g.s.vertices[id].Edge
	if start == NoEdge {
		return nil
	}

	var neighbors []any
	e := start
	for {
		neighbors = append(neighbors, g.s.Destination(e))
		e = g.s.halfEdges[g.s.halfEdges[e].Twin].Next
		if e == start {
			break
		}
	}
	return neighbors
}

// GetDistance returns the Euclidean distance between the positions of vertices u
// and v, regardless of whether an edge connects them directly.
func (g subdivisionGraph) GetDistance(u, v any) float64 {
	uid, ok1 := u.(VertexID)
	vid, ok2 := v.(VertexID)
	if !ok1 || !ok2 {
		return math.Inf(1)
	}
	return g.s.vertices[uid].Point.DistanceToPoint(g.s.vertices[vid].Point)
}

// GetNearestNode returns the vertex closest to q, via [Subdivision.FindNearestVertex].
func (g subdivisionGraph) GetNearestNode(q point.Point) (any, float64) {
	id, dist := g.s.FindNearestVertex(q)
	return id, dist
}

// Contains reports whether v names a valid vertex of the subdivision.
func (g subdivisionGraph) Contains(v any) bool {
	id, ok := v.(VertexID)
	return ok && int(id) >= 0 && int(id) < g.s.VertexCount()
}
