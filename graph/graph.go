// Package graph defines a minimal read-only 2D-graph query surface, so subdivisions
// and polygon grids can be consumed by the same pathfinding/traversal code. The
// adapters live beside the types they adapt: dcel.Subdivision.AsGraph and
// grid.PolygonGrid.AsGraph.
package graph

import "github.com/gopherplane/geom2d/point"

// Graph is a read-only 2D-graph query surface over a set of nodes identified by
// an opaque comparable key. It is implemented by [github.com/gopherplane/geom2d/dcel.Subdivision]
// (via AsGraph) and by [github.com/gopherplane/geom2d/grid.PolygonGrid].
type Graph interface {
	// Nodes returns every node key in the graph.
	Nodes() []any

	// GetNeighbors returns the node keys directly reachable from node v.
	GetNeighbors(v any) []any

	// GetDistance returns the Euclidean distance between nodes u and v.
	GetDistance(u, v any) float64

	// GetNearestNode returns the node key whose position is closest to q.
	GetNearestNode(q point.Point) (any, float64)

	// Contains reports whether v names a node in the graph.
	Contains(v any) bool
}
