package dcel

import (
	"math"

	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
	"github.com/gopherplane/geom2d/polygon"
)

// Cycle returns the half-edges of face f's outer boundary, in traversal order, or nil
// for the unbounded face.
func (s *Subdivision) Cycle(f FaceID) []EdgeID {
	start := s.faces[f].Outer
	if start == NoEdge {
		return nil
	}
	return s.walk(start)
}

// walk returns the half-edges of the cycle starting at start, following Next
// pointers until it loops back.
func (s *Subdivision) walk(start EdgeID) []EdgeID {
	cycle := []EdgeID{start}
	for e := s.halfEdges[start].Next; e != start; e = s.halfEdges[e].Next {
		cycle = append(cycle, e)
	}
	return cycle
}

// Vertices returns the ordered vertex coordinates traced by cycle.
func (s *Subdivision) Vertices(cycle []EdgeID) []point.Point {
	pts := make([]point.Point, len(cycle))
	for i, e := range cycle {
		pts[i] = s.vertices[s.halfEdges[e].Origin].Point
	}
	return pts
}

// SignedArea returns twice the signed area enclosed by cycle's vertex sequence.
func (s *Subdivision) SignedArea(cycle []EdgeID) float64 {
	return polygon.SignedArea2X(s.Vertices(cycle)...)
}

// Centroid returns the area-weighted centroid of cycle's vertex sequence. Undefined
// (per [polygon.Centroid]) when the cycle's signed area is zero.
func (s *Subdivision) Centroid(cycle []EdgeID) point.Point {
	return polygon.Centroid(s.Vertices(cycle)...)
}

// IsZeroAreaCycle reports whether cycle's signed area is zero under epsilon, meaning
// the cycle is degenerate: a dangling edge or a folded-back boundary rather than a
// genuine enclosed region.
func (s *Subdivision) IsZeroAreaCycle(cycle []EdgeID, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: s.epsilon}, opts...)
	return math.Abs(s.SignedArea(cycle)) <= geoOpts.Epsilon
}

// GetZeroAreaCycles returns the representative half-edge of every degenerate
// (zero-area) inner-boundary cycle of any face, belonging to input geometry
// that folded back on itself (a dangling edge or a retraced boundary).
func (s *Subdivision) GetZeroAreaCycles(opts ...options.GeometryOptionsFunc) []EdgeID {
	var result []EdgeID
	for f := range s.faces {
		for _, rep := range s.faces[f].Inner {
			cycle := s.walk(rep)
			if s.IsZeroAreaCycle(cycle, opts...) {
				result = append(result, rep)
			}
		}
	}
	return result
}

// faceContainsPoint reports whether q lies within face f's region: inside its outer
// boundary and outside every one of its inner boundaries (holes).
func (s *Subdivision) faceContainsPoint(f FaceID, q point.Point, opts ...options.GeometryOptionsFunc) bool {
	outer := s.Cycle(f)
	if outer == nil {
		return false
	}

	rel := polygon.PointInPolygon(s.Vertices(outer), q, opts...)
	if rel == polygon.Outside {
		return false
	}

	for _, rep := range s.faces[f].Inner {
		hole := s.walk(rep)
		holeRel := polygon.PointInPolygon(s.Vertices(hole), q, opts...)
		if holeRel == polygon.Inside {
			return false
		}
	}

	return true
}
