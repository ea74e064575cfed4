package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherplane/geom2d/point"
)

func TestConvexHull_Square(t *testing.T) {
	points := []point.Point{
		point.New(0, 0), point.New(20, 0), point.New(20, 20), point.New(0, 20),
		point.New(19, 1), point.New(18, 3), point.New(17, 4), point.New(16, 4),
	}

	hull := ConvexHull(points...)

	assert.Len(t, hull, 4)
	assert.Contains(t, hull, point.New(0.0, 0.0))
	assert.Contains(t, hull, point.New(20.0, 0.0))
	assert.Contains(t, hull, point.New(20.0, 20.0))
	assert.Contains(t, hull, point.New(0.0, 20.0))

	// CCW order in screen coordinates means the signed area is negative.
	assert.Less(t, SignedArea2X(hull...), 0.0)
}

func TestConvexHull_WithInteriorPoints(t *testing.T) {
	points := []point.Point{
		point.New(1.0, 4.0), point.New(4.0, 13.0), point.New(8.0, 17.0), point.New(18.0, 20.0),
		point.New(33.0, 18.0), point.New(38.0, 11.0), point.New(34.0, -2.0), point.New(21.0, -3.0),
		point.New(6.0, -1.0), point.New(7.0, 6.0), point.New(10.0, 14.0), point.New(5.0, 2.0),
		point.New(16.0, 0.0), point.New(12.0, 12.0), point.New(23.0, 16.0), point.New(14.0, 6.0),
	}

	hull := ConvexHull(points...)

	for _, p := range []point.Point{
		point.New(21.0, -3.0), point.New(34.0, -2.0), point.New(38.0, 11.0),
		point.New(33.0, 18.0), point.New(18.0, 20.0), point.New(1.0, 4.0),
	} {
		assert.Contains(t, hull, p)
	}

	for _, p := range []point.Point{
		point.New(10.0, 14.0), point.New(12.0, 12.0), point.New(14.0, 6.0),
	} {
		assert.NotContains(t, hull, p)
	}
}

func TestConvexHull_DegenerateInputs(t *testing.T) {
	assert.Empty(t, ConvexHull())
	assert.Equal(t, []point.Point{point.New(3.0, 3.0)}, ConvexHull(point.New(3.0, 3.0), point.New(3.0, 3.0)))

	collinear := ConvexHull(point.New(0.0, 0.0), point.New(1.0, 1.0), point.New(2.0, 2.0), point.New(3.0, 3.0))
	assert.Len(t, collinear, 2)
	assert.Contains(t, collinear, point.New(0.0, 0.0))
	assert.Contains(t, collinear, point.New(3.0, 3.0))
}
