// Package geom2d provides a 2D planar-subdivision geometry kernel: robust
// line-segment intersection (brute-force and sweep-line), a doubly-connected
// edge list (DCEL) planar subdivision, a Voronoi/Delaunay builder, a
// trapezoidal-map point-location structure, and the numerical primitives
// (points, comparators, convex hull, polygon area/centroid/containment) that
// the rest of the kernel is built on.
//
// # Package layout
//
// The kernel is split into small, focused packages, composed bottom-up:
//
//   - [github.com/gopherplane/geom2d/point]: the Point primitive, axis
//     comparators, and angle helpers.
//   - [github.com/gopherplane/geom2d/rectangle]: axis-aligned rectangles,
//     used as the Voronoi clipping window and for bounding-box pruning.
//   - [github.com/gopherplane/geom2d/circle]: circles, used by the Voronoi
//     package for in-circumcircle tests.
//   - [github.com/gopherplane/geom2d/linesegment]: line segments, the
//     pairwise intersection classifier, and the brute-force/sweep-line
//     multi-segment intersectors.
//   - [github.com/gopherplane/geom2d/polygon]: convex hull, signed area,
//     centroid, and point-in-polygon classification.
//   - [github.com/gopherplane/geom2d/dcel]: the half-edge planar
//     subdivision — builders, queries, validation, cloning, and overlay.
//   - [github.com/gopherplane/geom2d/voronoi]: Delaunay triangulation and
//     Voronoi diagram construction, and conversion to a subdivision.
//   - [github.com/gopherplane/geom2d/pointlocation]: the trapezoidal-map
//     point-location accelerator over a subdivision.
//   - [github.com/gopherplane/geom2d/graph]: a 2D-graph view over a
//     subdivision or polygon grid.
//   - [github.com/gopherplane/geom2d/grid]: regular polygon tilings
//     (square, triangle, hexagon).
//   - [github.com/gopherplane/geom2d/options]: the functional-options
//     pattern used across the kernel for epsilon, RNG seed, bounding
//     rectangle, and validation leniency.
//   - [github.com/gopherplane/geom2d/geom2derrors]: the structured error
//     kinds every fallible operation returns.
//
// # Precision
//
// Every comparison that affects topology takes an explicit epsilon via
// [github.com/gopherplane/geom2d/options.WithEpsilon]; there is no hidden
// global tolerance. A zero epsilon means exact comparison.
//
// # Concurrency
//
// The kernel is single-threaded cooperative: a [dcel.Subdivision], a
// [pointlocation.Locator], and a sweep-line run are not shared-mutable
// across goroutines, but distinct instances run independently in parallel.
package geom2d
