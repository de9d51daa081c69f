package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ClosestPoints returns the closest pair of points between segments a1-a2 and
// b1-b2 together with their parameters (0 at the start, 1 at the end) along
// each segment. Parallel and degenerate segments are handled; for parallel
// segments one of the many closest pairs is returned.
func ClosestPoints(a1, a2, b1, b2 Point) (pa, pb Point, s, t float64) {
	const eps = 1e-12

	d1 := r3.Sub(a2.Vec(), a1.Vec())
	d2 := r3.Sub(b2.Vec(), b1.Vec())
	r := r3.Sub(a1.Vec(), b1.Vec())
	a := r3.Dot(d1, d1)
	e := r3.Dot(d2, d2)
	f := r3.Dot(d2, r)

	switch {
	case a <= eps && e <= eps:
		s, t = 0, 0
	case a <= eps:
		s = 0
		t = clamp01(f / e)
	default:
		c := r3.Dot(d1, r)
		if e <= eps {
			t = 0
			s = clamp01(-c / a)
			break
		}
		b := r3.Dot(d1, d2)
		denom := a*e - b*b
		if denom > eps {
			s = clamp01((b*f - c*e) / denom)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = clamp01(-c / a)
		} else if t > 1 {
			t = 1
			s = clamp01((b - c) / a)
		}
	}

	pa = FromVec(r3.Add(a1.Vec(), r3.Scale(s, d1)))
	pb = FromVec(r3.Add(b1.Vec(), r3.Scale(t, d2)))
	return pa, pb, s, t
}

// SegmentDistance returns the shortest distance between two segments.
func SegmentDistance(a1, a2, b1, b2 Point) float64 {
	pa, pb, _, _ := ClosestPoints(a1, a2, b1, b2)
	return Distance(pa, pb)
}

// distanceToLine returns the distance from p to the infinite line through a
// with unit direction dir.
func distanceToLine(p, a Point, dir r3.Vec) float64 {
	v := r3.Sub(p.Vec(), a.Vec())
	return r3.Norm(r3.Sub(v, r3.Scale(r3.Dot(v, dir), dir)))
}

// CollinearOverlap reports whether segment b lies on the line of segment a and
// the two share a run longer than the tolerance. Collinear segments that only
// touch end to end do not overlap.
func (g Grid) CollinearOverlap(aStart, aEnd, bStart, bEnd Point) bool {
	a1, a2, b1, b2 := g.Round(aStart), g.Round(aEnd), g.Round(bStart), g.Round(bEnd)
	if g.Degenerate(a1, a2) || g.Degenerate(b1, b2) {
		return false
	}
	dir := Direction(a1, a2)
	if distanceToLine(b1, a1, dir) > g.Tolerance || distanceToLine(b2, a1, dir) > g.Tolerance {
		return false
	}
	length := Distance(a1, a2)
	tb1 := r3.Dot(r3.Sub(b1.Vec(), a1.Vec()), dir)
	tb2 := r3.Dot(r3.Sub(b2.Vec(), a1.Vec()), dir)
	lo := math.Max(math.Min(tb1, tb2), 0)
	hi := math.Min(math.Max(tb1, tb2), length)
	return hi-lo > g.Tolerance
}

// Crossing reports whether the segments intersect at a single point that is
// interior to both, and returns that point. Intersections at an end point of
// either segment are junctions, not crossings, and return false. Collinear
// runs are reported by [Grid.CollinearOverlap] instead.
func (g Grid) Crossing(aStart, aEnd, bStart, bEnd Point) (Point, bool) {
	a1, a2, b1, b2 := g.Round(aStart), g.Round(aEnd), g.Round(bStart), g.Round(bEnd)
	if g.Degenerate(a1, a2) || g.Degenerate(b1, b2) {
		return Point{}, false
	}
	if r3.Norm(r3.Cross(Direction(a1, a2), Direction(b1, b2))) <= g.Tolerance/math.Max(Distance(a1, a2), Distance(b1, b2)) {
		// Parallel within tolerance over the member length.
		return Point{}, false
	}
	pa, pb, _, _ := ClosestPoints(a1, a2, b1, b2)
	if Distance(pa, pb) > g.Tolerance {
		return Point{}, false
	}
	if !g.Interior(pa, a1, a2) || !g.Interior(pb, b1, b2) {
		return Point{}, false
	}
	return g.Round(Midpoint(pa, pb)), true
}

// SegmentsOverlap reports whether two segments share more than an isolated
// contact point at an end of one of them: either they run collinearly over a
// common length, or they pass through each other at a point interior to both.
// Such pairs would physically clash without a defined junction.
func (g Grid) SegmentsOverlap(aStart, aEnd, bStart, bEnd Point) bool {
	if g.CollinearOverlap(aStart, aEnd, bStart, bEnd) {
		return true
	}
	_, ok := g.Crossing(aStart, aEnd, bStart, bEnd)
	return ok
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
