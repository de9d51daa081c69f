package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a location in model space, in meters.
type Point struct {
	X, Y, Z float64
}

// Pt is shorthand for Point{X: x, Y: y, Z: z}.
func Pt(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// FromVec converts a gonum vector to a Point.
func FromVec(v r3.Vec) Point { return Point{X: v.X, Y: v.Y, Z: v.Z} }

// Vec returns p as a gonum vector.
func (p Point) Vec() r3.Vec { return r3.Vec{X: p.X, Y: p.Y, Z: p.Z} }

// Array returns the coordinates as [x, y, z].
func (p Point) Array() [3]float64 { return [3]float64{p.X, p.Y, p.Z} }

// String formats the point with millimeter resolution.
func (p Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z)
}

// RoundTo rounds value to precision decimal places (half away from zero).
func RoundTo(value float64, precision int) float64 {
	return scalar.Round(value, precision)
}

// RoundPoint rounds every coordinate of p to precision decimal places.
func RoundPoint(p Point, precision int) Point {
	return Point{
		X: RoundTo(p.X, precision),
		Y: RoundTo(p.Y, precision),
		Z: RoundTo(p.Z, precision),
	}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return r3.Norm(r3.Sub(b.Vec(), a.Vec()))
}

// Direction returns the unit vector pointing from start to end.
// It returns the zero vector when start and end are the same point.
func Direction(start, end Point) r3.Vec {
	d := r3.Sub(end.Vec(), start.Vec())
	n := r3.Norm(d)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, d)
}

// PointAtDistance returns the point reached by walking distance meters from
// start towards end. Distances beyond the segment extrapolate along the same
// line. A degenerate segment yields start.
func PointAtDistance(distance float64, start, end Point) Point {
	dir := Direction(start, end)
	return FromVec(r3.Add(start.Vec(), r3.Scale(distance, dir)))
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return FromVec(r3.Scale(0.5, r3.Add(a.Vec(), b.Vec())))
}

// maxAbsDiff returns the largest per-coordinate difference between a and b.
func maxAbsDiff(a, b Point) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Max(math.Abs(a.Y-b.Y), math.Abs(a.Z-b.Z)))
}
