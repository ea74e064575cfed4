package linesegment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
)

func TestNew_OrdersUpperAndLower(t *testing.T) {
	seg := New(0, 10, 0, 0)
	assert.Equal(t, point.New(0, 10), seg.Upper())
	assert.Equal(t, point.New(0, 0), seg.Lower())
}

func TestNewFromPoints(t *testing.T) {
	seg := NewFromPoints(point.New(5, 5), point.New(1, 1))
	assert.Equal(t, point.New(5, 5), seg.Upper())
	assert.Equal(t, point.New(1, 1), seg.Lower())
}

func TestLineSegment_Center(t *testing.T) {
	seg := New(0, 0, 10, 10)
	assert.Equal(t, point.New(5, 5), seg.Center())
}

func TestLineSegment_Length(t *testing.T) {
	seg := New(0, 0, 3, 4)
	assert.InDelta(t, 5.0, seg.Length(), 1e-9)
}

func TestLineSegment_ContainsPoint(t *testing.T) {
	seg := New(0, 0, 10, 10)
	assert.True(t, seg.ContainsPoint(point.New(5, 5)))
	assert.False(t, seg.ContainsPoint(point.New(5, 6)))
	assert.True(t, seg.ContainsPoint(point.New(0, 0)))
}

func TestLineSegment_Eq(t *testing.T) {
	a := New(0, 0, 10, 10)
	b := New(0, 0, 10, 10)
	c := New(0, 0, 10, 10.0001)

	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
	assert.True(t, a.Eq(c, options.WithEpsilon(1e-3)))
}

func TestLineSegment_Intersects(t *testing.T) {
	a := New(0, 0, 10, 10)
	b := New(0, 10, 10, 0)
	c := New(20, 20, 30, 30)

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
}

func TestLineSegment_IntersectionPoints_Crossing(t *testing.T) {
	a := New(0, 0, 10, 10)
	b := New(0, 10, 10, 0)

	pts, ok := a.IntersectionPoints(b)
	assert.True(t, ok)
	assert.Len(t, pts, 1)
	assert.True(t, pts[0].Eq(point.New(5, 5), options.WithEpsilon(1e-9)))
}

func TestLineSegment_DistanceToPoint(t *testing.T) {
	seg := New(0, 0, 10, 0)
	assert.InDelta(t, 5.0, seg.DistanceToPoint(point.New(5, 5)), 1e-9)
}

func TestLineSegment_DistanceToLineSegment_Disjoint(t *testing.T) {
	a := New(0, 0, 10, 0)
	b := New(0, 5, 10, 5)
	assert.InDelta(t, 5.0, a.DistanceToLineSegment(b), 1e-9)
}

func TestLineSegment_DistanceToLineSegment_Intersecting(t *testing.T) {
	a := New(0, 0, 10, 10)
	b := New(0, 10, 10, 0)
	assert.Equal(t, 0.0, a.DistanceToLineSegment(b))
}

func TestLineSegment_Translate(t *testing.T) {
	seg := New(0, 0, 10, 10)
	translated := seg.Translate(point.New(5, 5))
	assert.Equal(t, point.New(15, 15), translated.Upper())
	assert.Equal(t, point.New(5, 5), translated.Lower())
}

func TestLineSegment_MarshalUnmarshalJSON(t *testing.T) {
	seg := New(0, 0, 10, 10)

	data, err := seg.MarshalJSON()
	assert.NoError(t, err)

	var round LineSegment
	assert.NoError(t, round.UnmarshalJSON(data))
	assert.True(t, seg.Eq(round))
}

func TestLineSegment_String(t *testing.T) {
	seg := New(1, 2, 3, 4)
	assert.NotEmpty(t, seg.String())
}
