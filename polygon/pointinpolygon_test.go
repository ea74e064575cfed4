package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherplane/geom2d/point"
)

func TestPointInPolygon_Square(t *testing.T) {
	square := []point.Point{
		point.New(0, 0), point.New(10, 0), point.New(10, 10), point.New(0, 10),
	}

	assert.Equal(t, Inside, PointInPolygon(square, point.New(5, 5)))
	assert.Equal(t, Outside, PointInPolygon(square, point.New(50, 50)))
	assert.Equal(t, Vertex, PointInPolygon(square, point.New(0, 0)))
	assert.Equal(t, Edge, PointInPolygon(square, point.New(5, 0)))
}

func TestPointInPolygon_ConcavePolygon(t *testing.T) {
	// A "C" shaped polygon with a notch carved out of its right side.
	shape := []point.Point{
		point.New(0, 0), point.New(10, 0), point.New(10, 4),
		point.New(4, 4), point.New(4, 6), point.New(10, 6),
		point.New(10, 10), point.New(0, 10),
	}

	assert.Equal(t, Inside, PointInPolygon(shape, point.New(2, 5)))
	assert.Equal(t, Outside, PointInPolygon(shape, point.New(7, 5)))
}

func TestPointRelation_String(t *testing.T) {
	assert.Equal(t, "Inside", Inside.String())
	assert.Equal(t, "Outside", Outside.String())
	assert.Equal(t, "Edge", Edge.String())
	assert.Equal(t, "Vertex", Vertex.String())
}
