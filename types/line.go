package types

import "fmt"

// LineLocation describes where a point falls relative to an oriented line
// segment, or relative to the infinite line carrying it.
type LineLocation uint8

const (
	// LineLocationNone means the point is not on the infinite carrier line
	// and has not otherwise been classified. This value is produced by the
	// pairwise intersector for segments that share no point (parallel, or
	// collinear and disjoint); the multi-segment intersector never reports it.
	LineLocationNone LineLocation = iota

	// LineLocationStart means the point coincides with the segment's start.
	LineLocationStart

	// LineLocationEnd means the point coincides with the segment's end.
	LineLocationEnd

	// LineLocationBefore means the point is collinear with the segment and
	// lies strictly before its start.
	LineLocationBefore

	// LineLocationBetween means the point lies strictly between the
	// segment's start and end (collinear, or between on the segment itself).
	LineLocationBetween

	// LineLocationAfter means the point is collinear with the segment and
	// lies strictly after its end.
	LineLocationAfter

	// LineLocationLeft means the point is not collinear with the segment
	// and lies to its left (counter-clockwise side).
	LineLocationLeft

	// LineLocationRight means the point is not collinear with the segment
	// and lies to its right (clockwise side).
	LineLocationRight
)

// String returns the constant's name.
func (l LineLocation) String() string {
	switch l {
	case LineLocationNone:
		return "None"
	case LineLocationStart:
		return "Start"
	case LineLocationEnd:
		return "End"
	case LineLocationBefore:
		return "Before"
	case LineLocationBetween:
		return "Between"
	case LineLocationAfter:
		return "After"
	case LineLocationLeft:
		return "Left"
	case LineLocationRight:
		return "Right"
	default:
		panic(fmt.Errorf("unsupported LineLocation: %d", l))
	}
}

// LineRelation describes how two line segments (or the infinite lines
// carrying them) relate to one another.
type LineRelation uint8

const (
	// LineRelationParallel means the two segments' carrier lines never meet.
	LineRelationParallel LineRelation = iota

	// LineRelationCollinear means the two segments lie on the same
	// infinite line (they may or may not overlap).
	LineRelationCollinear

	// LineRelationDivergent means the two segments are non-parallel; their
	// carrier lines meet at exactly one point, which may or may not lie
	// within either segment's extent.
	LineRelationDivergent
)

// String returns the constant's name.
func (r LineRelation) String() string {
	switch r {
	case LineRelationParallel:
		return "Parallel"
	case LineRelationCollinear:
		return "Collinear"
	case LineRelationDivergent:
		return "Divergent"
	default:
		panic(fmt.Errorf("unsupported LineRelation: %d", r))
	}
}
