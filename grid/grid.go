// Package grid builds regular polygon tilings (square, triangle, hexagon) over a
// plane and materializes them into a [dcel.Subdivision], giving each cell both a
// graph-query identity and a face in the resulting subdivision.
package grid

import (
	"math"

	"github.com/gopherplane/geom2d/dcel"
	"github.com/gopherplane/geom2d/graph"
	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
	"github.com/gopherplane/geom2d/polygon"
)

// Shape selects the regular tiling a PolygonGrid lays out.
type Shape uint8

const (
	// Square tiles the plane with axis-aligned squares, addressed by integer
	// (x, y) grid coordinates.
	Square Shape = iota

	// Triangle tiles the plane with equilateral triangles, addressed by integer
	// (column, row) grid coordinates; a cell's column parity determines
	// whether it points up or down.
	Triangle

	// Hexagon tiles the plane with pointy-top regular hexagons, addressed by
	// axial (q, r) coordinates.
	Hexagon
)

// Cell identifies one tile of a PolygonGrid. Its meaning depends on the grid's
// Shape: integer (x, y) for Square and Triangle, axial (q, r) for Hexagon.
type Cell struct {
	Q, R int
}

// PolygonGrid is a regular tiling of square, triangle, or hexagon cells, with a
// chosen cell size, origin, and orientation.
//
// Parameters (set at construction):
//   - Shape: which regular tiling is used.
//   - CellSize: the edge length of one cell.
//   - Origin: where grid coordinate (0,0)'s reference corner/center sits in the
//     plane.
//   - Rotation: the tiling's orientation, in radians counter-clockwise, applied
//     about Origin.
//   - Cols, Rows: the extent of the tiling, in grid-coordinate units (for
//     Hexagon, these bound the axial q and r ranges respectively).
type PolygonGrid struct {
	Shape    Shape
	CellSize float64
	Origin   point.Point
	Rotation float64
	Cols     int
	Rows     int
}

// New builds a PolygonGrid. cols and rows bound the grid's extent: for Square
// and Triangle, cells span [0,cols) x [0,rows); for Hexagon, axial q spans
// [0,cols) and r spans [0,rows).
func New(shape Shape, origin point.Point, cellSize float64, cols, rows int, rotation float64) *PolygonGrid {
	return &PolygonGrid{
		Shape:    shape,
		CellSize: cellSize,
		Origin:   origin,
		Rotation: rotation,
		Cols:     cols,
		Rows:     rows,
	}
}

// transform maps a point in the grid's unrotated local coordinate system
// (origin at (0,0)) into the plane, applying the grid's rotation and origin.
func (g *PolygonGrid) transform(local point.Point) point.Point {
	rotated := local.Rotate(point.Origin(), g.Rotation)
	return rotated.Translate(g.Origin)
}

// Cells returns every cell in the grid, in row-major (or axial q-major) order.
func (g *PolygonGrid) Cells() []Cell {
	cells := make([]Cell, 0, g.Cols*g.Rows)
	for r := 0; r < g.Rows; r++ {
		for q := 0; q < g.Cols; q++ {
			cells = append(cells, Cell{Q: q, R: r})
		}
	}
	return cells
}

// CellCenter returns the plane coordinates of cell c's center.
func (g *PolygonGrid) CellCenter(c Cell) point.Point {
	switch g.Shape {
	case Square:
		return g.transform(point.New(
			(float64(c.Q)+0.5)*g.CellSize,
			(float64(c.R)+0.5)*g.CellSize,
		))
	case Hexagon:
		return g.transform(hexAxialToPixel(c, g.CellSize))
	case Triangle:
		return polygon.Centroid(g.CellPolygon(c)...)
	default:
		return point.Origin()
	}
}

// CellPolygon returns the ring of vertices bounding cell c, in the plane.
func (g *PolygonGrid) CellPolygon(c Cell) []point.Point {
	switch g.Shape {
	case Square:
		return g.squareCellPolygon(c)
	case Hexagon:
		return g.hexCellPolygon(c)
	case Triangle:
		return g.triangleCellPolygon(c)
	default:
		return nil
	}
}

func (g *PolygonGrid) squareCellPolygon(c Cell) []point.Point {
	x0, y0 := float64(c.Q)*g.CellSize, float64(c.R)*g.CellSize
	x1, y1 := x0+g.CellSize, y0+g.CellSize
	return []point.Point{
		g.transform(point.New(x0, y0)),
		g.transform(point.New(x1, y0)),
		g.transform(point.New(x1, y1)),
		g.transform(point.New(x0, y1)),
	}
}

// triangleCellPolygon lays out rows of equilateral triangles: within a row, a
// triangle with even column points up, odd points down, each sharing its
// slanted edges with its horizontal neighbors.
func (g *PolygonGrid) triangleCellPolygon(c Cell) []point.Point {
	h := g.CellSize * math.Sqrt(3) / 2
	x0 := float64(c.Q) * (g.CellSize / 2)
	y0 := float64(c.R) * h
	y1 := y0 + h

	if c.Q%2 == 0 {
		// Points up: base on the bottom, apex on top.
		return []point.Point{
			g.transform(point.New(x0, y1)),
			g.transform(point.New(x0+g.CellSize, y1)),
			g.transform(point.New(x0+g.CellSize/2, y0)),
		}
	}
	// Points down: base on top, apex on the bottom.
	return []point.Point{
		g.transform(point.New(x0, y0)),
		g.transform(point.New(x0+g.CellSize, y0)),
		g.transform(point.New(x0+g.CellSize/2, y1)),
	}
}

// hexAxialToPixel converts axial hex coordinates to pixel coordinates for a
// pointy-top regular hexagon tiling with the given edge length.
func hexAxialToPixel(c Cell, size float64) point.Point {
	x := size * (math.Sqrt(3)*float64(c.Q) + math.Sqrt(3)/2*float64(c.R))
	y := size * (3.0 / 2.0 * float64(c.R))
	return point.New(x, y)
}

func (g *PolygonGrid) hexCellPolygon(c Cell) []point.Point {
	center := hexAxialToPixel(c, g.CellSize)
	corners := make([]point.Point, 6)
	for i := 0; i < 6; i++ {
		angle := math.Pi/180*60*float64(i) + math.Pi/6 // pointy-top: first corner at 30 degrees
		corners[i] = g.transform(point.New(
			center.X()+g.CellSize*math.Cos(angle),
			center.Y()+g.CellSize*math.Sin(angle),
		))
	}
	return corners
}

// ToSubdivision materializes the grid into a [dcel.Subdivision], one bounded face
// per cell, and returns the bijection between grid cells and the faces they
// became.
//
// Parameters:
//   - opts: A variadic slice of [options.GeometryOptionsFunc], forwarded to
//     [dcel.FromPolygons].
//
// Returns:
//   - *dcel.Subdivision: The resulting subdivision.
//   - map[Cell]dcel.FaceID: Each cell's corresponding face, recovered by locating
//     that cell's centroid in the built subdivision (face-tracing does not
//     preserve input ring order, so the bijection cannot be assumed positional).
func (g *PolygonGrid) ToSubdivision(opts ...options.GeometryOptionsFunc) (*dcel.Subdivision, map[Cell]dcel.FaceID) {
	cells := g.Cells()
	rings := make([][]point.Point, len(cells))
	for i, c := range cells {
		rings[i] = g.CellPolygon(c)
	}

	sub := dcel.FromPolygons(rings, opts...)

	bijection := make(map[Cell]dcel.FaceID, len(cells))
	for i, c := range cells {
		centroid := polygon.Centroid(rings[i]...)
		elem := sub.Find(centroid, opts...)
		if elem.Kind == dcel.ElementFace {
			bijection[c] = elem.Face
		}
	}

	return sub, bijection
}

// AsGraph returns a [graph.Graph] view of g: nodes are cells, and a cell's
// neighbors are the cells adjacent to it under the tiling's adjacency rule.
func (g *PolygonGrid) AsGraph() graph.Graph {
	return gridGraph{g: g}
}

type gridGraph struct {
	g *PolygonGrid
}

func (gg gridGraph) Nodes() []any {
	cells := gg.g.Cells()
	nodes := make([]any, len(cells))
	for i, c := range cells {
		nodes[i] = c
	}
	return nodes
}

func (gg gridGraph) GetNeighbors(v any) []any {
	c, ok := v.(Cell)
	if !ok {
		return nil
	}

	var candidates []Cell
	switch gg.g.Shape {
	case Square:
		candidates = []Cell{{c.Q + 1, c.R}, {c.Q - 1, c.R}, {c.Q, c.R + 1}, {c.Q, c.R - 1}}
	case Hexagon:
		candidates = []Cell{
			{c.Q + 1, c.R}, {c.Q - 1, c.R},
			{c.Q, c.R + 1}, {c.Q, c.R - 1},
			{c.Q + 1, c.R - 1}, {c.Q - 1, c.R + 1},
		}
	case Triangle:
		vertical := 1
		if c.Q%2 == 0 {
			vertical = -1
		}
		candidates = []Cell{{c.Q + 1, c.R}, {c.Q - 1, c.R}, {c.Q, c.R + vertical}}
	}

	var neighbors []any
	for _, cand := range candidates {
		if gg.Contains(cand) {
			neighbors = append(neighbors, cand)
		}
	}
	return neighbors
}

func (gg gridGraph) GetDistance(u, v any) float64 {
	uc, ok1 := u.(Cell)
	vc, ok2 := v.(Cell)
	if !ok1 || !ok2 {
		return math.Inf(1)
	}
	return gg.g.CellCenter(uc).DistanceToPoint(gg.g.CellCenter(vc))
}

func (gg gridGraph) GetNearestNode(q point.Point) (any, float64) {
	best := Cell{}
	bestDist := math.Inf(1)
	found := false
	for _, c := range gg.g.Cells() {
		d := gg.g.CellCenter(c).DistanceToPoint(q)
		if d < bestDist {
			bestDist = d
			best = c
			found = true
		}
	}
	if !found {
		return nil, math.Inf(1)
	}
	return best, bestDist
}

func (gg gridGraph) Contains(v any) bool {
	c, ok := v.(Cell)
	if !ok {
		return false
	}
	switch gg.g.Shape {
	case Square, Triangle:
		return c.Q >= 0 && c.Q < gg.g.Cols && c.R >= 0 && c.R < gg.g.Rows
	case Hexagon:
		return c.Q >= 0 && c.Q < gg.g.Cols && c.R >= 0 && c.R < gg.g.Rows
	default:
		return false
	}
}
