package sweepline

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func seg(x0, y0, x1, y1 float64) Segment {
	return Segment{Point{x0, y0}, Point{x1, y1}}
}

func TestSegment(t *testing.T) {
	test.Float(t, seg(0, 0, 3, 4).Len(), 5.0)
	test.That(t, seg(1, 1, 1, 1).Degenerate())
	test.T(t, seg(2, 0, 0, 3).Bounds(), Rect{0, 0, 2, 3})
	test.String(t, seg(0, 0, 1, 2).String(), "(0,0)-(1,2)")
}

func TestIntersectSegments(t *testing.T) {
	var tts = []struct {
		a, b Segment
		n    int
		q0   Point
		q1   Point
	}{
		{seg(0, 0, 2, 2), seg(0, 2, 2, 0), 1, Point{1, 1}, Point{1, 1}},
		{seg(0, 0, 2, 0), seg(1, 0, 1, 2), 1, Point{1, 0}, Point{1, 0}}, // T
		{seg(0, 0, 1, 1), seg(1, 1, 2, 0), 1, Point{1, 1}, Point{1, 1}}, // touch at endpoints
		{seg(0, 0, 1, 0), seg(1, 0, 2, 0), 1, Point{1, 0}, Point{1, 0}}, // aligned touch
		{seg(0, 0, 2, 0), seg(0, 1, 2, 1), 0, Point{}, Point{}},         // parallel
		{seg(0, 0, 1, 0), seg(2, 0, 3, 0), 0, Point{}, Point{}},         // aligned apart
		{seg(0, 0, 1, 1), seg(3, 0, 2, 1), 0, Point{}, Point{}},
		{seg(0, 0, 2, 0), seg(1, 0, 3, 0), 2, Point{1, 0}, Point{2, 0}},
		{seg(3, 0, 1, 0), seg(0, 0, 2, 0), 2, Point{1, 0}, Point{2, 0}},
		{seg(0, 0, 4, 4), seg(1, 1, 2, 2), 2, Point{1, 1}, Point{2, 2}},
		{seg(1, 0, 1, 2), seg(1, 3, 1, 1), 2, Point{1, 1}, Point{1, 2}},
		{seg(1, 1, 1, 1), seg(0, 0, 2, 2), 1, Point{1, 1}, Point{1, 1}},
		{seg(0, 0, 2, 2), seg(1, 0, 1, 0), 0, Point{}, Point{}},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.a, "x", tt.b), func(t *testing.T) {
			q0, q1, n := intersectSegments(tt.a, tt.b)
			test.T(t, n, tt.n)
			if 0 < n {
				test.T(t, q0, tt.q0)
				test.T(t, q1, tt.q1)
			}
		})
	}
}

func TestSegmentTraits(t *testing.T) {
	tr := SegmentTraits{}
	test.T(t, tr.CompareXY(Point{0, 1}, Point{1, 0}), -1)
	test.T(t, tr.CompareXY(Point{1, 1}, Point{1, 0}), 1)
	test.T(t, tr.CompareXY(Point{1, 1}, Point{1, 1}), 0)
	test.T(t, tr.CompareX(Point{1, 5}, Point{1, 0}), 0)
	test.That(t, tr.IsVertical(seg(1, 0, 1, 2)))
	test.That(t, !tr.IsVertical(seg(0, 0, 1, 2)))
	test.That(t, tr.PointInXRange(seg(2, 0, 0, 2), Point{1, 5}))
	test.That(t, !tr.PointInXRange(seg(2, 0, 0, 2), Point{3, 0}))

	test.T(t, tr.CompareYAtX(Point{1, 0}, seg(0, 0, 2, 2)), -1)
	test.T(t, tr.CompareYAtX(Point{1, 1}, seg(2, 2, 0, 0)), 0)
	test.T(t, tr.CompareYAtX(Point{1, 2}, seg(0, 0, 2, 2)), 1)
	test.T(t, tr.CompareYAtX(Point{1, -1}, seg(1, 0, 1, 2)), -1)
	test.T(t, tr.CompareYAtX(Point{1, 1}, seg(1, 2, 1, 0)), 0)
	test.T(t, tr.CompareYAtX(Point{1, 2}, seg(1, 0, 1, 2)), 0)
	test.T(t, tr.CompareYAtX(Point{1, 3}, seg(1, 0, 1, 2)), 1)

	test.T(t, tr.CurvesCompareYAtX(seg(0, 0, 2, 2), seg(0, 2, 2, 0), Point{0, 0}), -1)
	test.T(t, tr.CurvesCompareYAtX(seg(0, 0, 2, 2), seg(0, 2, 2, 0), Point{1, 0}), 0)
	test.T(t, tr.CurvesCompareYAtX(seg(0, 0, 2, 2), seg(0, 2, 2, 0), Point{2, 0}), 1)

	p := Point{1, 1}
	test.T(t, tr.CurvesCompareYAtXRight(seg(0, 0, 2, 2), seg(0, 2, 2, 0), p), 1)
	test.T(t, tr.CurvesCompareYAtXRight(seg(2, 0, 0, 2), seg(2, 2, 0, 0), p), -1)
	test.T(t, tr.CurvesCompareYAtXRight(seg(0, 0, 2, 2), seg(1, 1, 3, 3), p), 0)
	test.T(t, tr.CurvesCompareYAtXRight(seg(1, 1, 1, 3), seg(0, 0, 2, 2), p), 1)

	test.That(t, tr.CurveEqual(seg(0, 0, 2, 2), seg(2, 2, 0, 0)))
	test.That(t, !tr.CurveEqual(seg(0, 0, 2, 2), seg(0, 0, 2, 1)))
	test.That(t, tr.CurvesOverlap(seg(0, 0, 2, 0), seg(1, 0, 3, 0)))
	test.That(t, !tr.CurvesOverlap(seg(0, 0, 1, 0), seg(1, 0, 3, 0)))

	a, b := tr.Split(seg(2, 2, 0, 0), p)
	test.T(t, a, seg(2, 2, 1, 1))
	test.T(t, b, seg(1, 1, 0, 0))
}

func TestNearestIntersectionToRight(t *testing.T) {
	tr := SegmentTraits{}
	var tts = []struct {
		a, b   Segment
		p      Point
		ok     bool
		q0, q1 Point
	}{
		{seg(0, 0, 2, 2), seg(0, 2, 2, 0), Point{0, 0}, true, Point{1, 1}, Point{1, 1}},
		{seg(0, 0, 2, 2), seg(0, 2, 2, 0), Point{1, 1}, false, Point{}, Point{}},
		{seg(0, 0, 2, 2), seg(0, 2, 2, 0), Point{1, 0}, true, Point{1, 1}, Point{1, 1}},
		{seg(0, 0, 3, 0), seg(1, 0, 2, 0), Point{0, 0}, true, Point{1, 0}, Point{2, 0}},
		{seg(0, 0, 3, 0), seg(1, 0, 2, 0), Point{1, 0}, true, Point{1, 0}, Point{2, 0}},
		{seg(0, 0, 3, 0), seg(0, 0, 3, 0), Point{0, 0}, true, Point{0, 0}, Point{3, 0}},
		{seg(0, 0, 3, 0), seg(1, 0, 2, 0), Point{2, 0}, false, Point{}, Point{}},
		{seg(1, 0, 1, 2), seg(0, 1, 2, 1), Point{1, 0}, true, Point{1, 1}, Point{1, 1}},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.a, "x", tt.b, "@", tt.p), func(t *testing.T) {
			q0, q1, ok := tr.NearestIntersectionToRight(tt.a, tt.b, tt.p)
			test.T(t, ok, tt.ok)
			if ok {
				test.T(t, q0, tt.q0)
				test.T(t, q1, tt.q1)
			}
		})
	}
}
