package dcel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplane/geom2d/linesegment"
	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
)

func square(x1, y1, x2, y2 float64) []point.Point {
	return []point.Point{
		point.New(x1, y1),
		point.New(x2, y1),
		point.New(x2, y2),
		point.New(x1, y2),
	}
}

func TestFromPolygons_SingleSquare(t *testing.T) {
	sub := FromPolygons([][]point.Point{square(0, 0, 10, 10)})

	assert.Equal(t, 4, sub.VertexCount())
	assert.Equal(t, 8, sub.EdgeCount())
	require.Equal(t, 2, sub.FaceCount()) // unbounded + 1 interior

	cycle := sub.Cycle(FaceID(1))
	require.Len(t, cycle, 4)
	assert.InDelta(t, -200, sub.SignedArea(cycle), 1e-9)
}

func TestFromPolygons_NestedHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	hole := square(3, 3, 6, 6)

	sub := FromPolygons([][]point.Point{outer, hole})

	assert.Equal(t, 8, sub.VertexCount())
	// Three faces: the unbounded exterior, the annulus between outer and
	// hole (with the hole's exterior cycle as one of its inner boundaries),
	// and the hole's own interior.
	require.Equal(t, 3, sub.FaceCount())

	var annulusFace FaceID = -1
	for f := 1; f < sub.FaceCount(); f++ {
		if len(sub.InnerEdges(FaceID(f))) > 0 {
			annulusFace = FaceID(f)
		}
	}
	require.NotEqual(t, FaceID(-1), annulusFace)
	assert.Less(t, sub.SignedArea(sub.Cycle(annulusFace)), 0.0)
}

func TestFromLines_DanglingEdgeIsZeroAreaCycle(t *testing.T) {
	segments := []linesegment.LineSegment{linesegment.NewFromPoints(point.New(0, 0), point.New(5, 5))}
	sub := FromLines(segments)

	zero := sub.GetZeroAreaCycles()
	assert.NotEmpty(t, zero)

	err := sub.Validate()
	assert.Error(t, err)

	err = sub.Validate(options.WithAllowZeroAreaCycles(true))
	assert.NoError(t, err)
}

func TestSubdivision_FindVertexAndEdge(t *testing.T) {
	sub := FromPolygons([][]point.Point{square(0, 0, 10, 10)})

	v, ok := sub.FindVertex(point.New(0, 0))
	require.True(t, ok)
	assert.Equal(t, point.New(0, 0), sub.VertexAt(v).Point)

	_, ok = sub.FindVertex(point.New(100, 100))
	assert.False(t, ok)

	v1, _ := sub.FindVertex(point.New(0, 0))
	v2, _ := sub.FindVertex(point.New(10, 0))
	_, found := sub.FindEdge(v1, v2)
	assert.True(t, found)
}

func TestSubdivision_Find(t *testing.T) {
	sub := FromPolygons([][]point.Point{square(0, 0, 10, 10)})

	result := sub.Find(point.New(5, 5))
	assert.Equal(t, ElementFace, result.Kind)
	assert.Equal(t, FaceID(1), result.Face)

	result = sub.Find(point.New(50, 50))
	assert.Equal(t, ElementFace, result.Kind)
	assert.Equal(t, UnboundedFace, result.Face)

	result = sub.Find(point.New(0, 0))
	assert.Equal(t, ElementVertex, result.Kind)
}

func TestSubdivision_CloneAndStructureEquals(t *testing.T) {
	sub := FromPolygons([][]point.Point{square(0, 0, 10, 10)})
	clone := sub.Clone()

	assert.True(t, sub.StructureEquals(clone))
	assert.NotSame(t, sub, clone)
}

func TestSubdivision_Validate(t *testing.T) {
	sub := FromPolygons([][]point.Point{square(0, 0, 10, 10)})
	assert.NoError(t, sub.Validate())
}
