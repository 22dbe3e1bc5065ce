package sweepline

import (
	"fmt"
	"math"
)

// Segment is a straight line segment from Start to End.
type Segment struct {
	Start, End Point
}

// Len returns the length of the segment.
func (s Segment) Len() float64 {
	return s.End.Sub(s.Start).Length()
}

// Degenerate returns true if the segment has zero length.
func (s Segment) Degenerate() bool {
	return s.Start.Equals(s.End)
}

// Bounds returns the bounding box of the segment.
func (s Segment) Bounds() Rect {
	x0, x1 := math.Min(s.Start.X, s.End.X), math.Max(s.Start.X, s.End.X)
	y0, y1 := math.Min(s.Start.Y, s.End.Y), math.Max(s.Start.Y, s.End.Y)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.Start, s.End)
}

// yAt returns the y-coordinate of the (non-vertical) segment at x. Values of x at the endpoints
// return the endpoint's y-coordinate exactly.
func (s Segment) yAt(x float64) float64 {
	if Equal(x, s.Start.X) {
		return s.Start.Y
	} else if Equal(x, s.End.X) {
		return s.End.Y
	}
	t := (x - s.Start.X) / (s.End.X - s.Start.X)
	return s.Start.Y + t*(s.End.Y-s.Start.Y)
}

// ySpan returns the lowest and highest y-coordinate of the segment.
func (s Segment) ySpan() (float64, float64) {
	return math.Min(s.Start.Y, s.End.Y), math.Max(s.Start.Y, s.End.Y)
}

// snap returns the endpoint of a or b that equals q, or q otherwise.
func snap(q Point, a, b Segment) Point {
	for _, p := range [4]Point{a.Start, a.End, b.Start, b.End} {
		if q.Equals(p) {
			return p
		}
	}
	return q
}

// intersectSegments returns the intersection of segments a and b. It returns the number of
// intersections: zero, one for a single point, or two for an overlap where q0 comes before q1.
func intersectSegments(a, b Segment) (Point, Point, int) {
	if a.Degenerate() || b.Degenerate() {
		if b.Degenerate() {
			a, b = b, a
		}
		if onSegment(a.Start, b) {
			return a.Start, a.Start, 1
		}
		return Point{}, Point{}, 0
	}

	a0, a1, b0, b1 := a.Start, a.End, b.Start, b.End
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := da.PerpDot(db)
	if Equal(div/da.Length()/db.Length(), 0.0) {
		// parallel
		if !Equal(da.Norm(1.0).PerpDot(b0.Sub(a0)), 0.0) {
			return Point{}, Point{}, 0
		}

		// aligned, project b onto a
		dd := da.X*da.X + da.Y*da.Y
		tb0 := (da.X*(b0.X-a0.X) + da.Y*(b0.Y-a0.Y)) / dd
		tb1 := (da.X*(b1.X-a0.X) + da.Y*(b1.Y-a0.Y)) / dd
		lo := math.Max(0.0, math.Min(tb0, tb1))
		hi := math.Min(1.0, math.Max(tb0, tb1))
		q0 := snap(a0.Interpolate(a1, lo), a, b)
		q1 := snap(a0.Interpolate(a1, hi), a, b)
		if q0.Equals(q1) {
			return q0, q0, 1
		} else if hi < lo {
			return Point{}, Point{}, 0
		} else if q1.Less(q0) {
			q0, q1 = q1, q0
		}
		return q0, q1, 2
	} else if a1.Equals(b0) || a1.Equals(b1) {
		// handle common cases with endpoints to avoid numerical issues
		return a1, a1, 1
	} else if a0.Equals(b0) || a0.Equals(b1) {
		return a0, a0, 1
	}

	ta := db.PerpDot(a0.Sub(b0)) / div
	tb := da.PerpDot(a0.Sub(b0)) / div
	if !Interval(ta, 0.0, 1.0) || !Interval(tb, 0.0, 1.0) {
		return Point{}, Point{}, 0
	}

	var q Point
	if Equal(ta, 0.0) {
		q = a0
	} else if Equal(ta, 1.0) {
		q = a1
	} else if Equal(tb, 0.0) {
		q = b0
	} else if Equal(tb, 1.0) {
		q = b1
	} else {
		q = snap(a0.Interpolate(a1, ta), a, b)
	}
	return q, q, 1
}

// onSegment returns true if p lies on segment s.
func onSegment(p Point, s Segment) bool {
	if s.Degenerate() {
		return p.Equals(s.Start)
	}
	d := s.End.Sub(s.Start)
	if !Equal(d.Norm(1.0).PerpDot(p.Sub(s.Start)), 0.0) {
		return false
	}
	return Interval(p.X, s.Start.X, s.End.X) && Interval(p.Y, s.Start.Y, s.End.Y)
}

////////////////////////////////////////////////////////////////

// SegmentTraits implements Traits for straight line segments using float64 arithmetic with a
// tolerance of Epsilon.
type SegmentTraits struct{}

func (SegmentTraits) CompareX(p, q Point) int {
	return compare(p.X, q.X)
}

func (SegmentTraits) CompareXY(p, q Point) int {
	if cmp := compare(p.X, q.X); cmp != 0 {
		return cmp
	}
	return compare(p.Y, q.Y)
}

func (SegmentTraits) PointEqual(p, q Point) bool {
	return p.Equals(q)
}

func (SegmentTraits) XMonotone(s Segment) (Segment, bool) {
	return s, true
}

func (SegmentTraits) MakeXMonotone(s Segment) []Segment {
	return []Segment{s}
}

func (SegmentTraits) Source(s Segment) Point {
	return s.Start
}

func (SegmentTraits) Target(s Segment) Point {
	return s.End
}

func (SegmentTraits) IsVertical(s Segment) bool {
	return Equal(s.Start.X, s.End.X)
}

func (SegmentTraits) PointInXRange(s Segment, p Point) bool {
	return Interval(p.X, s.Start.X, s.End.X)
}

func (t SegmentTraits) CompareYAtX(p Point, s Segment) int {
	if t.IsVertical(s) {
		y0, y1 := s.ySpan()
		if compare(p.Y, y0) < 0 {
			return -1
		} else if 0 < compare(p.Y, y1) {
			return 1
		}
		return 0
	}
	return compare(p.Y, s.yAt(p.X))
}

func (t SegmentTraits) CurvesCompareYAtX(s1, s2 Segment, p Point) int {
	return compare(t.yAt(s1, p), t.yAt(s2, p))
}

// yAt returns the y-coordinate of s at the x-coordinate of p. For vertical segments this is the
// y-coordinate of p clamped to the segment.
func (t SegmentTraits) yAt(s Segment, p Point) float64 {
	if t.IsVertical(s) {
		y0, y1 := s.ySpan()
		return math.Max(y0, math.Min(y1, p.Y))
	}
	return s.yAt(p.X)
}

func (t SegmentTraits) CurvesCompareYAtXRight(s1, s2 Segment, p Point) int {
	if cmp := t.CurvesCompareYAtX(s1, s2, p); cmp != 0 {
		return cmp
	}

	// compare directions towards the right, vertical segments are above all others
	d1, d2 := t.rightDirection(s1), t.rightDirection(s2)
	return -compare(d1.PerpDot(d2), 0.0)
}

// rightDirection returns the unit direction of s pointing to the right, or upwards when vertical.
func (t SegmentTraits) rightDirection(s Segment) Point {
	d := s.End.Sub(s.Start)
	if t.IsVertical(s) {
		return Point{0.0, 1.0}
	} else if d.X < 0.0 {
		d = d.Mul(-1.0)
	}
	return d.Norm(1.0)
}

func (SegmentTraits) CurveEqual(s1, s2 Segment) bool {
	return s1.Start.Equals(s2.Start) && s1.End.Equals(s2.End) || s1.Start.Equals(s2.End) && s1.End.Equals(s2.Start)
}

func (SegmentTraits) CurvesOverlap(s1, s2 Segment) bool {
	_, _, n := intersectSegments(s1, s2)
	return n == 2
}

func (t SegmentTraits) NearestIntersectionToRight(s1, s2 Segment, p Point) (Point, Point, bool) {
	q0, q1, n := intersectSegments(s1, s2)
	if n == 0 || t.CompareXY(q1, p) <= 0 {
		return Point{}, Point{}, false
	} else if n == 1 {
		return q0, q0, true
	} else if t.CompareXY(q0, p) < 0 {
		q0 = p
	}
	return q0, q1, true
}

func (SegmentTraits) Split(s Segment, p Point) (Segment, Segment) {
	return Segment{s.Start, p}, Segment{p, s.End}
}
