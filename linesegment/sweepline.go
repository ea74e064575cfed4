package linesegment

import (
	"math"
	"sort"

	"github.com/google/btree"

	"github.com/gopherplane/geom2d/numeric"
	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
	"github.com/gopherplane/geom2d/types"
)

// sweepIndexedSegment pairs a segment with its position in the caller's input slice,
// since the sweep line needs to report which original segments participate at each
// event, not merely their geometry.
type sweepIndexedSegment struct {
	segment LineSegment
	index   int
}

// qItem is an entry in the sweep line's event queue: an event point together with the
// segments whose upper endpoint is that point.
type qItem struct {
	point   point.Point
	upperAt []sweepIndexedSegment
}

// qItemLess orders event queue items by sweep order: higher y first (processed
// earlier, since the sweep travels top to bottom in screen coordinates), then lower x.
func qItemLess(p, q qItem) bool {
	if p.point.Y() != q.point.Y() {
		return p.point.Y() > q.point.Y()
	}
	return p.point.X() < q.point.X()
}

// sItem is an entry in the sweep line's status structure: a currently active segment.
type sItem struct {
	segment sweepIndexedSegment
}

// statusLess orders active segments left-to-right as they cross the sweep line at y.
// Segments sharing an x-crossing at y are tie-broken by slope, matching the teacher's
// segmentSortLess rule: steeper negative slopes sort first, horizontals sort last.
func statusLess(y float64, epsilon float64) func(a, b sItem) bool {
	return func(a, b sItem) bool {
		aX := a.segment.segment.XAtY(y)
		bX := b.segment.segment.XAtY(y)
		aHoriz := math.IsNaN(aX)
		bHoriz := math.IsNaN(bX)

		if aHoriz {
			aX = a.segment.segment.Upper().X()
		}
		if bHoriz {
			bX = b.segment.segment.Upper().X()
		}

		if !numeric.FloatEquals(aX, bX, epsilon) {
			return aX < bX
		}

		if aHoriz != bHoriz {
			return bHoriz // non-horizontal sorts before horizontal
		}

		aSlope := a.segment.segment.Slope()
		bSlope := b.segment.segment.Slope()
		if aSlope != bSlope {
			return aSlope < bSlope
		}
		return a.segment.index < b.segment.index
	}
}

// FindIntersectionsSweep finds every point shared by two or more segments in the
// input set using a Bentley-Ottmann-style sweep line: a horizontal sweep line travels from
// high y to low y, maintaining an event queue of upcoming endpoints/intersections and
// a status structure of segments currently crossing the sweep line.
//
// Parameters:
//   - segments ([]LineSegment): The input segments; SegmentIndex values in the result
//     refer back to positions in this slice.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the tolerance used for intersection classification, the on-segment tests at
//     each event point, and the status order. Event points are merged in the queue only
//     when their coordinates are exactly equal.
//
// Returns:
//   - []MultiLinePoint: One entry per distinct shared point, sorted by (y ascending,
//     then x ascending), identical (under the epsilon in effect) to the result of
//     [FindIntersectionsBruteForce] on the same input.
//
// Behavior:
//   - The event queue and status structure are both maintained as [btree.BTreeG]
//     instances, keyed by [qItemLess] and a position-dependent [statusLess]
//     respectively. Because the status comparator depends on the sweep position,
//     [reorderStatus] rebuilds the status tree at every event, so each event costs
//     time proportional to the number of active segments times log n.
//   - At each event point p, the algorithm identifies U(p) (segments starting at p),
//     L(p) (segments ending at p), and C(p) (active segments passing through p's
//     interior). If |U(p) ∪ L(p) ∪ C(p)| >= 2, p is reported as a MultiLinePoint.
//   - L(p) ∪ C(p) are removed from the status structure and U(p) ∪ C(p) are
//     reinserted, re-ordered for the sweep line position just below p. The new
//     neighbors of the inserted block are tested for future intersections with
//     [findNewEvent], which pushes any intersection found strictly below p into the
//     event queue.
func FindIntersectionsSweep(segments []LineSegment, opts ...options.GeometryOptionsFunc) []MultiLinePoint {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	epsilon := geoOpts.Epsilon

	Q := btree.NewG[qItem](32, qItemLess)

	for i, seg := range segments {
		if seg.Upper().Eq(seg.Lower(), opts...) {
			continue // degenerate segment
		}
		upper := seg.Upper()
		lower := seg.Lower()

		upperItem := qItem{point: upper, upperAt: []sweepIndexedSegment{{segment: seg, index: i}}}
		if existing, ok := Q.Get(upperItem); ok {
			upperItem.upperAt = append(existing.upperAt, upperItem.upperAt...)
		}
		Q.ReplaceOrInsert(upperItem)

		lowerItem := qItem{point: lower}
		if _, ok := Q.Get(lowerItem); !ok {
			Q.ReplaceOrInsert(lowerItem)
		}
	}

	var results []MultiLinePoint
	var S *btree.BTreeG[sItem]

	for Q.Len() > 0 {
		p, _ := Q.DeleteMin()

		if S == nil {
			S = btree.NewG[sItem](32, statusLess(p.point.Y(), epsilon))
		} else {
			S = reorderStatus(S, p.point.Y(), epsilon)
		}

		var upperOf, lowerOf, containOf []sweepIndexedSegment

		upperOf = p.upperAt

		S.Ascend(func(item sItem) bool {
			if item.segment.segment.ContainsPoint(p.point, opts...) {
				if item.segment.segment.Lower().Eq(p.point, opts...) {
					lowerOf = append(lowerOf, item.segment)
				} else if !item.segment.segment.Upper().Eq(p.point, opts...) {
					containOf = append(containOf, item.segment)
				}
			}
			return true
		})

		total := len(upperOf) + len(lowerOf) + len(containOf)
		if total >= 2 {
			mlp := MultiLinePoint{Point: p.point}
			add := func(items []sweepIndexedSegment, loc types.LineLocation) {
				for _, it := range items {
					mlp.Participants = append(mlp.Participants, SegmentParticipation{SegmentIndex: it.index, Location: loc})
				}
			}
			add(upperOf, types.LineLocationStart)
			add(lowerOf, types.LineLocationEnd)
			add(containOf, types.LineLocationBetween)
			results = append(results, mlp)
		}

		for _, it := range lowerOf {
			S.Delete(sItem{segment: it})
		}
		for _, it := range containOf {
			S.Delete(sItem{segment: it})
		}

		// Reorder for the sweep line just below p before reinserting.
		S = reorderStatus(S, p.point.Y()-epsilonOrTiny(epsilon), epsilon)

		inserted := append(append([]sweepIndexedSegment{}, upperOf...), containOf...)
		for _, it := range inserted {
			S.ReplaceOrInsert(sItem{segment: it})
		}

		if len(inserted) == 0 {
			left, right, ok := statusNeighbors(S, p.point, epsilon, opts...)
			if ok {
				findNewEvent(left, right, p.point, Q, epsilon, opts...)
			}
		} else {
			sort.Slice(inserted, func(i, j int) bool {
				return statusLess(p.point.Y()-epsilonOrTiny(epsilon), epsilon)(sItem{segment: inserted[i]}, sItem{segment: inserted[j]})
			})
			leftmost := inserted[0]
			rightmost := inserted[len(inserted)-1]

			if leftNeighbor, ok := statusNeighborOf(S, leftmost, true); ok {
				findNewEvent(leftNeighbor, leftmost, p.point, Q, epsilon, opts...)
			}
			if rightNeighbor, ok := statusNeighborOf(S, rightmost, false); ok {
				findNewEvent(rightmost, rightNeighbor, p.point, Q, epsilon, opts...)
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Point.Y() != results[j].Point.Y() {
			return results[i].Point.Y() < results[j].Point.Y()
		}
		return results[i].Point.X() < results[j].Point.X()
	})

	return results
}

// epsilonOrTiny returns epsilon if positive, else a small constant, used to nudge the
// sweep line position strictly below the current event point for re-ordering purposes.
func epsilonOrTiny(epsilon float64) float64 {
	if epsilon > 0 {
		return epsilon
	}
	return 1e-9
}

// reorderStatus rebuilds the status structure's ordering for the sweep line at
// position y, since btree.BTreeG's comparator is fixed at construction time.
func reorderStatus(S *btree.BTreeG[sItem], y float64, epsilon float64) *btree.BTreeG[sItem] {
	newS := btree.NewG[sItem](32, statusLess(y, epsilon))
	if S != nil {
		S.Ascend(func(item sItem) bool {
			newS.ReplaceOrInsert(item)
			return true
		})
	}
	return newS
}

// statusNeighbors locates p among the active segments and returns its immediate left
// and right neighbors, used when no segment starts or passes through p's interior
// (the "U(p) ∪ C(p) = 0" case).
func statusNeighbors(S *btree.BTreeG[sItem], p point.Point, epsilon float64, opts ...options.GeometryOptionsFunc) (left, right sweepIndexedSegment, ok bool) {
	var all []sItem
	S.Ascend(func(item sItem) bool {
		all = append(all, item)
		return true
	})

	idx := sort.Search(len(all), func(i int) bool {
		x := all[i].segment.segment.XAtY(p.Y())
		if math.IsNaN(x) {
			x = all[i].segment.segment.Upper().X()
		}
		return x >= p.X()-epsilon
	})

	if idx == 0 || idx >= len(all) {
		return left, right, false
	}
	return all[idx-1].segment, all[idx].segment, true
}

// statusNeighborOf returns the immediate left (fromLeft=true) or right neighbor of
// item in S.
func statusNeighborOf(S *btree.BTreeG[sItem], item sweepIndexedSegment, fromLeft bool) (sweepIndexedSegment, bool) {
	var found sweepIndexedSegment
	var ok bool
	if fromLeft {
		S.DescendLessOrEqual(sItem{segment: item}, func(i sItem) bool {
			if i.segment.index == item.index {
				return true // skip self, keep descending
			}
			found = i.segment
			ok = true
			return false
		})
	} else {
		S.AscendGreaterOrEqual(sItem{segment: item}, func(i sItem) bool {
			if i.segment.index == item.index {
				return true
			}
			found = i.segment
			ok = true
			return false
		})
	}
	return found, ok
}

// findNewEvent tests whether left and right would intersect strictly below p, and if
// so, inserts that intersection as a future event in Q.
func findNewEvent(left, right sweepIndexedSegment, p point.Point, Q *btree.BTreeG[qItem], epsilon float64, opts ...options.GeometryOptionsFunc) {
	result := Intersect(left.segment, right.segment, epsilon)
	if result.Shared == nil || result.Relation == types.LineRelationParallel {
		return
	}
	if result.LocationA == types.LineLocationBefore || result.LocationA == types.LineLocationAfter ||
		result.LocationB == types.LineLocationBefore || result.LocationB == types.LineLocationAfter {
		return // the carriers cross outside at least one of the two segments
	}

	newPoint := *result.Shared

	if numeric.FloatGreaterThan(newPoint.Y(), p.Y(), epsilon) ||
		(numeric.FloatEquals(newPoint.Y(), p.Y(), epsilon) && numeric.FloatLessThanOrEqualTo(newPoint.X(), p.X(), epsilon)) {
		return
	}

	item := qItem{point: newPoint}
	if _, exists := Q.Get(item); exists {
		return
	}
	Q.ReplaceOrInsert(item)
}
