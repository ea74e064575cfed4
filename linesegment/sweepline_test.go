package linesegment

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherplane/geom2d/point"
)

// groupKey renders a MultiLinePoint's location and participating segment indices into
// a comparable string, so the two intersection algorithms' results can be diffed
// without caring about slice ordering.
func groupKey(g MultiLinePoint) string {
	idx := make([]int, len(g.Participants))
	for i, p := range g.Participants {
		idx[i] = p.SegmentIndex
	}
	sort.Ints(idx)
	return fmt.Sprintf("%.6f,%.6f:%v", g.Point.X(), g.Point.Y(), idx)
}

func groupKeys(groups []MultiLinePoint) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = groupKey(g)
	}
	sort.Strings(keys)
	return keys
}

func assertSameIntersections(t *testing.T, segments []LineSegment) {
	t.Helper()
	brute := FindIntersectionsBruteForce(segments)
	sweep := FindIntersectionsSweep(segments)
	assert.Equal(t, groupKeys(brute), groupKeys(sweep))
}

func TestFindIntersectionsSweep_MatchesBruteForce_SimpleCross(t *testing.T) {
	assertSameIntersections(t, []LineSegment{
		New(0, 0, 10, 10),
		New(0, 10, 10, 0),
	})
}

func TestFindIntersectionsSweep_MatchesBruteForce_NoIntersections(t *testing.T) {
	assertSameIntersections(t, []LineSegment{
		New(0, 0, 10, 0),
		New(0, 5, 10, 5),
		New(0, 10, 10, 10),
	})
}

func TestFindIntersectionsSweep_MatchesBruteForce_SharedEndpoint(t *testing.T) {
	assertSameIntersections(t, []LineSegment{
		New(0, 0, 5, 5),
		New(5, 5, 10, 0),
	})
}

func TestFindIntersectionsSweep_MatchesBruteForce_MultipleCrossings(t *testing.T) {
	assertSameIntersections(t, []LineSegment{
		New(0, 0, 10, 10),
		New(0, 10, 10, 0),
		New(0, 5, 10, 5),
		New(5, 0, 5, 10),
	})
}
