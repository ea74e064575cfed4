package linesegment

import (
	"math"

	"github.com/gopherplane/geom2d/point"
	"github.com/gopherplane/geom2d/types"
)

// LineIntersection is the result of classifying how two line segments relate,
// following the parametric test of [Intersect].
type LineIntersection struct {
	// Shared is the point the segments share, or nil if they share none.
	Shared *point.Point

	// LocationA is where Shared falls on segment a, relative to its start/end
	// (its Upper and Lower points).
	LocationA types.LineLocation

	// LocationB is where Shared falls on segment b, relative to its start/end
	// (its Upper and Lower points).
	LocationB types.LineLocation

	// Relation classifies the two segments' carrier lines.
	Relation types.LineRelation
}

// Intersect classifies the relationship between segments a and b using the classic
// parametric line-segment test, generalized with an epsilon tolerance.
//
// Parameters:
//   - a, b (LineSegment): The two segments to classify.
//   - epsilon (float64): The tolerance used for the parallel test and for classifying
//     parametric values near the segment endpoints. A value of 0 performs an exact test.
//
// Returns:
//   - LineIntersection: The classified relationship. See the [LineIntersection] docs
//     for the invariants relating Relation, Shared, LocationA, and LocationB.
//
// Each segment's start is its Upper point and its end its Lower point, whatever order
// the endpoints were given in when the segment was built.
//
// Behavior, following the three-step parametric test:
//  1. Let vecA = a.end - a.start, vecB = b.end - b.start, and d = cross(vecA, vecB).
//     If |d| is small relative to the segment lengths, the carriers are parallel.
//  2. When parallel, project b's start onto a's carrier; if that projection is also
//     collinear within epsilon, the segments are collinear, and the function computes
//     the overlap interval (if any) and reports its first point as Shared.
//  3. Otherwise the carriers are divergent: the function solves for the parametric
//     values s (on a) and t (on b) at which the infinite carriers cross, classifies
//     each into {Before, Start, Between, End, After}, and reports the crossing point
//     as Shared regardless of whether either parametric value lies in [0, 1] — the
//     carrier intersection is always returned for Divergent, per the LineIntersection
//     contract; callers check LocationA/LocationB to see whether it falls on the
//     segments themselves.
//
// An endpoint shared by both segments always classifies as Start or End, never
// Between, since epsilon is applied symmetrically around both parameter endpoints
// before the interior range is considered.
func Intersect(a, b LineSegment, epsilon float64) LineIntersection {
	A, B := a.Upper(), a.Lower()
	C, D := b.Upper(), b.Lower()

	vecA := B.Sub(A)
	vecB := D.Sub(C)

	lenA := A.DistanceToPoint(B)
	lenB := C.DistanceToPoint(D)

	d := vecA.CrossProduct(vecB)
	scale := math.Max(lenA, lenB)
	if scale == 0 {
		scale = 1
	}

	if math.Abs(d) <= epsilon*scale {
		// Parallel carriers. Check collinearity by projecting C onto A's carrier.
		ac := C.Sub(A)
		cross := ac.CrossProduct(vecA)
		if math.Abs(cross) > epsilon*scale {
			// Parallel, not collinear.
			return LineIntersection{
				Relation:  types.LineRelationParallel,
				LocationA: types.LineLocationNone,
				LocationB: types.LineLocationNone,
			}
		}

		return collinearIntersection(a, b, A, B, C, D, vecA, epsilon)
	}

	// Divergent: solve the carrier intersection parametrically.
	ac := C.Sub(A)
	s := ac.CrossProduct(vecB) / d
	t := ac.CrossProduct(vecA) / d

	shared := A.Add(vecA.Scale(point.Origin(), s))

	return LineIntersection{
		Shared:    &shared,
		Relation:  types.LineRelationDivergent,
		LocationA: classifyParameter(s, epsilon),
		LocationB: classifyParameter(t, epsilon),
	}
}

// classifyParameter classifies a parametric value t (where 0 is the segment's
// start and 1 its end) into {Before, Start, Between, End, After}.
func classifyParameter(t, epsilon float64) types.LineLocation {
	switch {
	case t < -epsilon:
		return types.LineLocationBefore
	case t <= epsilon:
		return types.LineLocationStart
	case t < 1-epsilon:
		return types.LineLocationBetween
	case t <= 1+epsilon:
		return types.LineLocationEnd
	default:
		return types.LineLocationAfter
	}
}

// collinearIntersection handles the case where a and b's carrier lines coincide. It
// finds the overlap interval (if any) of the two segments projected onto that shared
// carrier and reports the first overlap point, with locations classified relative to
// each segment's own parametrization.
func collinearIntersection(a, b LineSegment, A, B, C, D point.Point, vecA point.Point, epsilon float64) LineIntersection {
	abLenSq := vecA.DotProduct(vecA)
	if abLenSq == 0 {
		// Degenerate segment a; fall back to point containment.
		if a.ContainsPoint(C) || a.ContainsPoint(D) {
			shared := A
			return LineIntersection{
				Shared:    &shared,
				Relation:  types.LineRelationCollinear,
				LocationA: types.LineLocationStart,
				LocationB: classifyParameter(projectParam(C, D, A, epsilon), epsilon),
			}
		}
		return LineIntersection{Relation: types.LineRelationCollinear, LocationA: types.LineLocationNone, LocationB: types.LineLocationNone}
	}

	// Parametrize C and D along a's carrier (A at 0, B at 1).
	tC := C.Sub(A).DotProduct(vecA) / abLenSq
	tD := D.Sub(A).DotProduct(vecA) / abLenSq

	loB, hiB := tC, tD
	if loB > hiB {
		loB, hiB = hiB, loB
	}

	loA, hiA := 0.0, 1.0

	overlapLo := math.Max(loA, loB)
	overlapHi := math.Min(hiA, hiB)

	if overlapLo > overlapHi+epsilon {
		return LineIntersection{Relation: types.LineRelationCollinear, LocationA: types.LineLocationNone, LocationB: types.LineLocationNone}
	}

	shared := A.Add(vecA.Scale(point.Origin(), overlapLo))

	locA := classifyParameter(overlapLo, epsilon)

	// Re-express the shared point's parameter along b's own start->end direction.
	var tB float64
	if tD != tC {
		tB = (overlapLo - tC) / (tD - tC)
	}
	locB := classifyParameter(tB, epsilon)

	return LineIntersection{
		Shared:    &shared,
		Relation:  types.LineRelationCollinear,
		LocationA: locA,
		LocationB: locB,
	}
}

// projectParam returns the parametric position of p along the directed segment c->d,
// where c is at 0 and d is at 1.
func projectParam(c, d, p point.Point, epsilon float64) float64 {
	vec := d.Sub(c)
	lenSq := vec.DotProduct(vec)
	if lenSq == 0 {
		return 0
	}
	return p.Sub(c).DotProduct(vec) / lenSq
}
