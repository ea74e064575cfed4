// Package voronoi builds a Delaunay triangulation of a set of sites via the
// Bowyer-Watson incremental algorithm and derives its dual Voronoi diagram,
// clipped to a bounding rectangle.
package voronoi

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/gopherplane/geom2d/circle"
	"github.com/gopherplane/geom2d/dcel"
	"github.com/gopherplane/geom2d/geom2derrors"
	"github.com/gopherplane/geom2d/linesegment"
	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
	"github.com/gopherplane/geom2d/polygon"
	"github.com/gopherplane/geom2d/rectangle"
)

// Diagram is the result of [Build]: a Delaunay triangulation of a set of sites and
// its dual Voronoi diagram, clipped to a bounding rectangle.
type Diagram struct {
	// Sites is the input site list, in the order supplied to Build.
	Sites []point.Point

	// DelaunayEdges is the triangulation's edge set, deduplicated, each segment
	// oriented from its lexicographically smaller endpoint (by x, then y) to its
	// larger one.
	DelaunayEdges []linesegment.LineSegment

	// VoronoiRegions holds one cell polygon per site, same indexing as Sites. Each
	// region is wound clockwise (screen coordinates) and clipped to bounds; a site
	// on the convex hull of Sites has its naturally unbounded cell closed along
	// bounds' boundary.
	VoronoiRegions [][]point.Point

	bounds rectangle.Rectangle
}

// triangle holds three indices into the combined (sites + super-triangle) point list.
type triangle struct {
	a, b, c int
}

func (t triangle) vertices() [3]int { return [3]int{t.a, t.b, t.c} }

// Build computes the Delaunay triangulation of sites and its dual Voronoi diagram.
//
// Parameters:
//   - sites ([]point.Point): The input sites. At least 3 are required.
//   - bounds (rectangle.Rectangle): The rectangle Voronoi cells are clipped to. It
//     should comfortably contain every site; sites outside bounds are still
//     triangulated but produce a degenerate (empty) clipped region.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the tolerance for coincident-site detection. [options.WithMinSiteDistance]
//     additionally rejects sites closer together than a configured minimum.
//
// Returns:
//   - Diagram: The triangulation and its dual.
//   - error: A [geom2derrors.Error] of kind [geom2derrors.InvalidInput] if two sites
//     are equal under epsilon or closer than the configured minimum separation, or
//     [geom2derrors.PreconditionViolation] if fewer than 3 sites are supplied.
//
// Behavior:
//   - Triangulates via Bowyer-Watson: a synthetic enclosing super-triangle is
//     inserted first, then each site is added in turn, discarding every triangle
//     whose circumcircle contains the new site and re-triangulating the resulting
//     cavity. Cocircular configurations are broken by insertion order, so results
//     are deterministic for a given site ordering.
//   - Triangles still touching a super-triangle vertex after every site has been
//     inserted are discarded; what remains is the Delaunay triangulation of sites.
//   - Each site's Voronoi cell is the polygon formed by the circumcenters of its
//     incident Delaunay triangles. Because a Voronoi cell is always convex and
//     contains its site, sorting those circumcenters by angle around the site
//     yields the correct cell boundary directly. Sites on the convex hull of sites
//     have an open fan of incident triangles (an unbounded cell); two additional
//     points, projected far outward along the outward perpendiculars of the
//     site's two hull edges, close the fan into a polygon before clipping.
func Build(sites []point.Point, bounds rectangle.Rectangle, opts ...options.GeometryOptionsFunc) (Diagram, error) {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	if len(sites) < 3 {
		return Diagram{}, geom2derrors.New(geom2derrors.PreconditionViolation, "voronoi.Build",
			"at least 3 sites are required")
	}

	for i := 0; i < len(sites); i++ {
		for j := i + 1; j < len(sites); j++ {
			d := sites[i].DistanceToPoint(sites[j])
			if d <= geoOpts.Epsilon || (geoOpts.MinSiteDistance > 0 && d < geoOpts.MinSiteDistance) {
				return Diagram{}, geom2derrors.New(geom2derrors.InvalidInput, "voronoi.Build",
					fmt.Sprintf("sites %d and %d are coincident or closer than the minimum allowed separation", i, j))
			}
		}
	}

	pts := append([]point.Point(nil), sites...)
	superStart := len(pts)
	sa, sb, sc := superTriangle(bounds, sites)
	pts = append(pts, sa, sb, sc)

	triangles := []triangle{{superStart, superStart + 1, superStart + 2}}
	for i := range sites {
		triangles = insertSite(pts, triangles, i)
	}

	var real []triangle
	for _, tr := range triangles {
		v := tr.vertices()
		if v[0] < superStart && v[1] < superStart && v[2] < superStart {
			real = append(real, tr)
		}
	}

	edges := delaunayEdges(sites, real)
	regions := voronoiRegions(sites, real, bounds)

	return Diagram{Sites: sites, DelaunayEdges: edges, VoronoiRegions: regions, bounds: bounds}, nil
}

// superTriangle returns a triangle large enough to enclose bounds and every site.
func superTriangle(bounds rectangle.Rectangle, sites []point.Point) (point.Point, point.Point, point.Point) {
	bl, _, tr, _ := bounds.Contour()
	minX, minY := bl.X(), bl.Y()
	maxX, maxY := tr.X(), tr.Y()

	for _, s := range sites {
		minX = math.Min(minX, s.X())
		minY = math.Min(minY, s.Y())
		maxX = math.Max(maxX, s.X())
		maxY = math.Max(maxY, s.Y())
	}

	dx, dy := maxX-minX, maxY-minY
	delta := math.Max(dx, dy)*10 + 10
	midX := (minX + maxX) / 2

	return point.New(midX-delta, minY-delta),
		point.New(midX+delta, minY-delta),
		point.New(midX, maxY+2*delta)
}

func triEdges(t triangle) [3][2]int {
	return [3][2]int{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}}
}

func edgeKey(e [2]int) [2]int {
	if e[0] > e[1] {
		return [2]int{e[1], e[0]}
	}
	return e
}

// insertSite adds pts[siteIdx] to the triangulation via the standard Bowyer-Watson
// cavity retriangulation step.
func insertSite(pts []point.Point, triangles []triangle, siteIdx int) []triangle {
	p := pts[siteIdx]

	var bad []int
	for i, tr := range triangles {
		a, b, c := pts[tr.a], pts[tr.b], pts[tr.c]
		if circle.InCircumcircle(a, b, c, p) {
			bad = append(bad, i)
		}
	}

	edgeCount := make(map[[2]int]int)
	for _, bi := range bad {
		for _, e := range triEdges(triangles[bi]) {
			edgeCount[edgeKey(e)]++
		}
	}

	var boundary [][2]int
	for _, bi := range bad {
		for _, e := range triEdges(triangles[bi]) {
			if edgeCount[edgeKey(e)] == 1 {
				boundary = append(boundary, e)
			}
		}
	}

	badSet := make(map[int]bool, len(bad))
	for _, bi := range bad {
		badSet[bi] = true
	}

	kept := make([]triangle, 0, len(triangles)-len(bad)+len(boundary))
	for i, tr := range triangles {
		if !badSet[i] {
			kept = append(kept, tr)
		}
	}
	for _, e := range boundary {
		kept = append(kept, triangle{e[0], e[1], siteIdx})
	}

	return kept
}

// delaunayEdges returns the deduplicated edge set of real (non-super) triangles,
// each oriented from its lexicographically smaller endpoint to its larger one.
func delaunayEdges(sites []point.Point, real []triangle) []linesegment.LineSegment {
	seen := make(map[[2]int]bool)
	var edges []linesegment.LineSegment

	for _, tr := range real {
		for _, e := range triEdges(tr) {
			key := edgeKey(e)
			if seen[key] {
				continue
			}
			seen[key] = true

			a, b := sites[key[0]], sites[key[1]]
			if a.X() > b.X() || (a.X() == b.X() && a.Y() > b.Y()) {
				a, b = b, a
			}
			edges = append(edges, linesegment.NewFromPoints(a, b))
		}
	}

	return edges
}

// voronoiRegions derives one clipped Voronoi cell polygon per site from the real
// triangles of the Delaunay triangulation.
func voronoiRegions(sites []point.Point, real []triangle, bounds rectangle.Rectangle) [][]point.Point {
	incident := make([][]point.Point, len(sites))
	for _, tr := range real {
		center := circle.Circumcircle(sites[tr.a], sites[tr.b], sites[tr.c]).Center()
		for _, v := range tr.vertices() {
			incident[v] = append(incident[v], center)
		}
	}

	hull := polygon.ConvexHull(sites...)
	hullIndex := make(map[int]int, len(hull))
	for k, h := range hull {
		for i, s := range sites {
			if s.Eq(h) {
				hullIndex[i] = k
				break
			}
		}
	}

	regions := make([][]point.Point, len(sites))
	for i, s := range sites {
		ring := append([]point.Point(nil), incident[i]...)

		if k, onHull := hullIndex[i]; onHull && len(hull) >= 2 {
			prev := hull[(k-1+len(hull))%len(hull)]
			next := hull[(k+1)%len(hull)]
			ring = append(ring, farPoint(s, prev, next, bounds), farPoint(s, next, prev, bounds))
		}

		sort.Slice(ring, func(a, b int) bool {
			angA := math.Atan2(ring[a].Y()-s.Y(), ring[a].X()-s.X())
			angB := math.Atan2(ring[b].Y()-s.Y(), ring[b].X()-s.X())
			return angA < angB
		})

		regions[i] = bounds.ClipPolygon(ring)
	}

	return regions
}

// farPoint projects a far-away point from site, outward along the perpendicular of
// the hull edge (site, neighbor), biased away from other, so the projected point
// extends the open Voronoi fan outward rather than across it.
func farPoint(site, neighbor, other point.Point, bounds rectangle.Rectangle) point.Point {
	edge := neighbor.Sub(site)
	perp := point.New(-edge.Y(), edge.X())

	mid := point.New((site.X()+neighbor.X())/2, (site.Y()+neighbor.Y())/2)
	toOther := other.Sub(mid)
	if perp.DotProduct(toOther) > 0 {
		perp = perp.Negate()
	}

	norm := math.Hypot(perp.X(), perp.Y())
	if norm == 0 {
		norm = 1
	}

	bl, _, tr, _ := bounds.Contour()
	span := math.Max(tr.X()-bl.X(), tr.Y()-bl.Y())*4 + 4

	return point.New(
		site.X()+perp.X()/norm*span,
		site.Y()+perp.Y()/norm*span,
	)
}

// ToDelaunaySubdivision builds a [dcel.Subdivision] from d's Delaunay edges.
//
// Parameters:
//   - opts: A variadic slice of [options.GeometryOptionsFunc], forwarded to
//     [dcel.FromLines].
func (d Diagram) ToDelaunaySubdivision(opts ...options.GeometryOptionsFunc) *dcel.Subdivision {
	return dcel.FromLines(d.DelaunayEdges, opts...)
}

// ToVoronoiSubdivision builds a [dcel.Subdivision] from d's Voronoi cell polygons.
//
// Parameters:
//   - opts: A variadic slice of [options.GeometryOptionsFunc], forwarded to
//     [dcel.FromPolygons].
func (d Diagram) ToVoronoiSubdivision(opts ...options.GeometryOptionsFunc) *dcel.Subdivision {
	rings := make([][]point.Point, 0, len(d.VoronoiRegions))
	for _, r := range d.VoronoiRegions {
		if len(r) >= 3 {
			rings = append(rings, r)
		}
	}
	return dcel.FromPolygons(rings, opts...)
}

// RandomSites generates n random sites uniformly distributed within bounds.
//
// Parameters:
//   - n (int): The number of sites to generate.
//   - bounds (rectangle.Rectangle): The region sites are drawn from.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithRNGSeed]
//     makes generation reproducible; without it, a fixed default seed is used, so
//     callers that want non-deterministic output should seed from entropy
//     themselves. [options.WithMinSiteDistance] rejects and redraws candidates
//     closer than the configured minimum to any previously accepted site, up to a
//     bounded number of attempts per site.
//
// Returns:
//   - []point.Point: The generated sites, in generation order.
func RandomSites(n int, bounds rectangle.Rectangle, opts ...options.GeometryOptionsFunc) []point.Point {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	seed := int64(1)
	if geoOpts.RNGSeedSet {
		seed = geoOpts.RNGSeed
	}
	rng := rand.New(rand.NewSource(seed))

	bl, _, tr, _ := bounds.Contour()
	minX, minY := bl.X(), bl.Y()
	maxX, maxY := tr.X(), tr.Y()

	sites := make([]point.Point, 0, n)
	for len(sites) < n {
		candidate := point.New(
			minX+rng.Float64()*(maxX-minX),
			minY+rng.Float64()*(maxY-minY),
		)

		ok := true
		if geoOpts.MinSiteDistance > 0 {
			for _, s := range sites {
				if candidate.DistanceToPoint(s) < geoOpts.MinSiteDistance {
					ok = false
					break
				}
			}
		}
		if ok {
			sites = append(sites, candidate)
		}
	}

	return sites
}
