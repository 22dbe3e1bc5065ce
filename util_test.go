package sweepline

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestEqual(t *testing.T) {
	test.That(t, Equal(1.0, 1.0+Epsilon/2.0))
	test.That(t, !Equal(1.0, 1.0+2.0*Epsilon))
	test.That(t, Interval(1.0, 0.0, 1.0))
	test.That(t, Interval(1.0+Epsilon/2.0, 1.0, 0.0))
	test.That(t, !Interval(-0.1, 0.0, 1.0))
	test.T(t, compare(1.0, 2.0), -1)
	test.T(t, compare(2.0, 1.0), 1)
	test.T(t, compare(1.0, 1.0+Epsilon/2.0), 0)
}

func TestPoint(t *testing.T) {
	p := Point{1.0, 2.0}
	test.T(t, p.Add(Point{3.0, 4.0}), Point{4.0, 6.0})
	test.T(t, p.Sub(Point{3.0, 4.0}), Point{-2.0, -2.0})
	test.T(t, p.Mul(2.0), Point{2.0, 4.0})
	test.Float(t, p.PerpDot(Point{2.0, 4.0}), 0.0)
	test.Float(t, Point{3.0, 4.0}.Length(), 5.0)
	test.That(t, Point{3.0, 4.0}.Norm(10.0).Equals(Point{6.0, 8.0}))
	test.T(t, Point{}.Norm(1.0), Point{})
	test.T(t, Point{0.0, 0.0}.Interpolate(Point{2.0, 4.0}, 0.5), Point{1.0, 2.0})
	test.String(t, Point{1.5, -2.0}.String(), "(1.5,-2)")

	test.That(t, Point{0.0, 1.0}.Less(Point{1.0, 0.0}))
	test.That(t, Point{1.0, 0.0}.Less(Point{1.0, 1.0}))
	test.That(t, !Point{1.0, 1.0}.Less(Point{1.0, 1.0 + Epsilon/2.0}))
	test.That(t, Point{1.0, 1.0}.Equals(Point{1.0 + Epsilon/2.0, 1.0}))
}

func TestRect(t *testing.T) {
	test.T(t, Rect{0.0, 0.0, 1.0, 1.0}.Add(Rect{2.0, -1.0, 1.0, 1.0}), Rect{0.0, -1.0, 3.0, 2.0})
	test.T(t, Rect{}.Add(Rect{2.0, -1.0, 1.0, 1.0}), Rect{2.0, -1.0, 1.0, 1.0})
	test.String(t, Rect{0.0, 0.0, 1.0, 2.0}.String(), "(0,0)-(1,2)")
}
