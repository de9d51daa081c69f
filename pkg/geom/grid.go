package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultPrecision is the number of decimal places used for junction tests
// when no configuration overrides it (millimeters for meter coordinates).
const DefaultPrecision = 3

// DefaultGrid is the grid used by the package-level helpers.
var DefaultGrid = NewGrid(DefaultPrecision)

// Grid fixes the precision at which geometry is compared.
//
// Precision is the number of decimal places coordinates are rounded to before
// any comparison. Tolerance is the largest distance, in meters, at which two
// rounded locations are still treated as the same; it also serves as the
// collinearity tolerance for on-segment tests.
//
// The zero value is not usable - use [NewGrid] or [Grid.WithTolerance].
type Grid struct {
	Precision int
	Tolerance float64
}

// NewGrid returns a grid rounding to precision decimal places with a
// tolerance of half a rounding unit.
func NewGrid(precision int) Grid {
	if precision < 0 {
		precision = 0
	}
	return Grid{Precision: precision, Tolerance: unit(precision) / 2}
}

// WithTolerance returns a copy of g using tol as tolerance. Non-positive
// values restore the default of half a unit.
func (g Grid) WithTolerance(tol float64) Grid {
	if tol <= 0 {
		tol = g.Unit() / 2
	}
	g.Tolerance = tol
	return g
}

// Unit returns the size of one rounding step (10^-Precision).
func (g Grid) Unit() float64 { return unit(g.Precision) }

func unit(precision int) float64 { return math.Pow(10, -float64(precision)) }

// Round snaps p to the grid.
func (g Grid) Round(p Point) Point { return RoundPoint(p, g.Precision) }

// Coincident reports whether a and b are the same location on this grid.
// Points that round to the same grid point are coincident, as are points
// whose coordinates all differ by less than the tolerance. Points more than
// one unit apart along any axis never are.
func (g Grid) Coincident(a, b Point) bool {
	if g.Round(a) == g.Round(b) {
		return true
	}
	return maxAbsDiff(a, b) < g.Tolerance
}

// Degenerate reports whether the segment start-end has no length on this grid.
func (g Grid) Degenerate(start, end Point) bool {
	return g.Coincident(start, end)
}

// OnSegment reports whether p lies on the closed segment a-b.
//
// All three points are rounded first. p is on the segment when its distance
// to the segment is within the tolerance and its projection falls between the
// end points (again within tolerance). For a degenerate segment this reduces
// to [Grid.Coincident].
func (g Grid) OnSegment(p, a, b Point) bool {
	if g.Degenerate(a, b) {
		return g.Coincident(p, a)
	}
	rp, ra, rb := g.Round(p).Vec(), g.Round(a).Vec(), g.Round(b).Vec()
	d := r3.Sub(rb, ra)
	length := r3.Norm(d)
	along := r3.Dot(r3.Sub(rp, ra), d) / length
	if along < -g.Tolerance || along > length+g.Tolerance {
		return false
	}
	t := clamp01(along / length)
	closest := r3.Add(ra, r3.Scale(t, d))
	return r3.Norm(r3.Sub(rp, closest)) <= g.Tolerance
}

// Interior reports whether p lies on the segment a-b without coinciding with
// either end point.
func (g Grid) Interior(p, a, b Point) bool {
	if g.Coincident(p, a) || g.Coincident(p, b) {
		return false
	}
	return g.OnSegment(p, a, b)
}

// OnSegment reports whether p lies on the segment a-b using [DefaultGrid].
func OnSegment(p, a, b Point) bool { return DefaultGrid.OnSegment(p, a, b) }

// SegmentsOverlap reports whether the segments would clash using
// [DefaultGrid]. See [Grid.SegmentsOverlap].
func SegmentsOverlap(aStart, aEnd, bStart, bEnd Point) bool {
	return DefaultGrid.SegmentsOverlap(aStart, aEnd, bStart, bEnd)
}
