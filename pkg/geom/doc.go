// Package geom provides the 3-D geometry primitives used by the connectivity
// engine: points, rounding, and segment comparison.
//
// # Precision
//
// Member geometry comes from user-edited tables and is never exact. Every
// comparison therefore goes through a [Grid], which fixes a rounding precision
// (decimal places, in meters) and a tolerance. Two points are the same
// location when they round to the same grid point, or when every coordinate
// differs by less than the tolerance:
//
//	g := geom.NewGrid(3)                 // millimeter grid, 0.5 mm tolerance
//	g.Coincident(geom.Pt(0, 3, 0), geom.Pt(0, 3.0001, 0)) // true
//	g.Coincident(geom.Pt(0, 3, 0), geom.Pt(0, 3.002, 0))  // false
//
// One Grid must be used for a whole frame model. Mixing precisions between
// member kinds breaks adjacency symmetry.
//
// # Segments
//
// Members are straight segments. The grid classifies how two segments meet:
//
//   - [Grid.OnSegment] and [Grid.Interior] test a point against a segment.
//   - [Grid.CollinearOverlap] detects two members running along each other.
//   - [Grid.Crossing] detects a single intersection interior to both.
//   - [Grid.SegmentsOverlap] combines the last two: the pair would clash.
//
// Touching at an end point of either segment is never an overlap; that is a
// junction and is handled by the connect package.
//
// Vector arithmetic is delegated to gonum's spatial/r3 package and rounding to
// gonum's floats/scalar package.
package geom
