// Package types defines the small shared vocabulary used across the geom2d
// kernel: the [Relationship] enum describing how two shapes relate in
// space, [PointOrientation] for the orientation of an ordered point triple,
// and the line-specific [LineLocation]/[LineRelation] enums used by the
// pairwise and multi-segment intersectors.
//
// This package is purely descriptive — it holds no geometric logic, only
// the result vocabulary that the point, linesegment, and dcel packages
// return.
package types
