package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherplane/geom2d/point"
)

func TestIsWellFormed_Square(t *testing.T) {
	ok, err := IsWellFormed([]point.Point{
		point.New(0, 0), point.New(10, 0), point.New(10, 10), point.New(0, 10),
	})
	assert.True(t, ok)
	assert.NoError(t, err)
}

func TestIsWellFormed_TooFewPoints(t *testing.T) {
	ok, err := IsWellFormed([]point.Point{point.New(0, 0), point.New(10, 0)})
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestIsWellFormed_ZeroArea(t *testing.T) {
	ok, err := IsWellFormed([]point.Point{
		point.New(0, 0), point.New(10, 0), point.New(20, 0),
	})
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestIsWellFormed_SelfIntersecting(t *testing.T) {
	// A bowtie: (0,0)-(10,10)-(10,0)-(0,10) crosses itself at the center.
	ok, err := IsWellFormed([]point.Point{
		point.New(0, 0), point.New(10, 10), point.New(10, 0), point.New(0, 10),
	})
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestToLineSegments_Square(t *testing.T) {
	pts := []point.Point{
		point.New(0, 0), point.New(10, 0), point.New(10, 10), point.New(0, 10),
	}
	segs := ToLineSegments(pts...)
	assert.Len(t, segs, 4)
}

func TestToLineSegments_SkipsDegenerateEdges(t *testing.T) {
	pts := []point.Point{
		point.New(0, 0), point.New(0, 0), point.New(10, 0), point.New(10, 10),
	}
	segs := ToLineSegments(pts...)
	assert.Len(t, segs, 3)
}

func TestToLineSegments_TooFewPoints(t *testing.T) {
	assert.Empty(t, ToLineSegments(point.New(0, 0)))
}
