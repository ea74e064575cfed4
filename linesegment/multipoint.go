package linesegment

import (
	"sort"

	"github.com/gopherplane/geom2d/numeric"
	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
	"github.com/gopherplane/geom2d/types"
)

// SegmentParticipation records one segment's classification at a [MultiLinePoint].
type SegmentParticipation struct {
	// SegmentIndex is the index of the participating segment in the caller's input slice.
	SegmentIndex int

	// Location is always one of {Start, End, Between}; Before/After never appear here,
	// since they are only meaningful for a single ordered pair of segments, not for a
	// point shared across many.
	Location types.LineLocation
}

// MultiLinePoint is a point shared by two or more segments from an input set, along
// with each participating segment's classification at that point.
type MultiLinePoint struct {
	Point        point.Point
	Participants []SegmentParticipation
}

// FindIntersectionsBruteForce finds every point shared by two or more segments in the
// input set using the naive O(n^2) pairwise algorithm: it classifies every pair with
// [Intersect] and groups the results by coordinate.
//
// Parameters:
//   - segments ([]LineSegment): The input segments; SegmentIndex values in the result
//     refer back to positions in this slice.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the tolerance used both for the pairwise classification and for grouping
//     near-coincident shared points together.
//
// Returns:
//   - []MultiLinePoint: One entry per distinct shared point, each naming every segment
//     that participates there, sorted by (y ascending, then x ascending). Points
//     shared by fewer than two distinct segments are filtered out.
//
// This is the reference implementation against which [FindIntersectionsSweep] is
// expected to agree; its simplicity makes it suitable as a correctness baseline for
// small inputs, at the cost of quadratic running time.
func FindIntersectionsBruteForce(segments []LineSegment, opts ...options.GeometryOptionsFunc) []MultiLinePoint {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	var groups []MultiLinePoint

	findGroup := func(p point.Point) int {
		for i, g := range groups {
			if numeric.FloatEquals(g.Point.X(), p.X(), geoOpts.Epsilon) &&
				numeric.FloatEquals(g.Point.Y(), p.Y(), geoOpts.Epsilon) {
				return i
			}
		}
		return -1
	}

	addParticipant := func(groupIdx int, idx int, loc types.LineLocation) {
		for _, existing := range groups[groupIdx].Participants {
			if existing.SegmentIndex == idx {
				return
			}
		}
		groups[groupIdx].Participants = append(groups[groupIdx].Participants, SegmentParticipation{
			SegmentIndex: idx,
			Location:     loc,
		})
	}

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			result := Intersect(segments[i], segments[j], geoOpts.Epsilon)
			if result.Shared == nil {
				continue
			}
			if result.LocationA == types.LineLocationBefore || result.LocationA == types.LineLocationAfter ||
				result.LocationB == types.LineLocationBefore || result.LocationB == types.LineLocationAfter {
				continue // the carriers cross outside at least one of the two segments
			}

			locA := normalizeMultiLocation(result.LocationA)
			locB := normalizeMultiLocation(result.LocationB)

			groupIdx := findGroup(*result.Shared)
			if groupIdx == -1 {
				groups = append(groups, MultiLinePoint{Point: *result.Shared})
				groupIdx = len(groups) - 1
			}

			addParticipant(groupIdx, i, locA)
			addParticipant(groupIdx, j, locB)
		}
	}

	filtered := groups[:0]
	for _, g := range groups {
		if len(g.Participants) >= 2 {
			filtered = append(filtered, g)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Point.Y() != filtered[j].Point.Y() {
			return filtered[i].Point.Y() < filtered[j].Point.Y()
		}
		return filtered[i].Point.X() < filtered[j].Point.X()
	})

	return filtered
}

// normalizeMultiLocation maps a pairwise [types.LineLocation] down to the three values
// a [MultiLinePoint] participant may carry: Start, End, or Between. Before/After/Left/
// Right/None collapse to Between, since at a genuinely shared point the participating
// segment must be touching or crossing there.
func normalizeMultiLocation(loc types.LineLocation) types.LineLocation {
	switch loc {
	case types.LineLocationStart, types.LineLocationEnd:
		return loc
	default:
		return types.LineLocationBetween
	}
}
