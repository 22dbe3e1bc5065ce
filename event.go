package sweepline

import (
	"fmt"
	"strings"
)

// sweepEvent is a stop of the sweep line at a point, together with the curves that end there (left
// curves), the curves that start there (right curves), and the vertical curves that have an
// endpoint there. A curve passing through the point is both a left and a right curve.
type sweepEvent[P, X any] struct {
	point P
	left  []*subcurve[P, X]
	right []*subcurve[P, X]

	verticals       []*subcurve[P, X]
	verticalXPoints []P // intersections in the interior of the verticals ending here

	internal bool // an intersection that is not merely a shared endpoint
}

func (e *sweepEvent[P, X]) addLeft(sc *subcurve[P, X]) {
	e.left = appendUnique(e.left, sc)
}

func (e *sweepEvent[P, X]) addRight(sc *subcurve[P, X]) {
	e.right = appendUnique(e.right, sc)
}

func (e *sweepEvent[P, X]) addVertical(sc *subcurve[P, X]) {
	e.verticals = appendUnique(e.verticals, sc)
}

func (e *sweepEvent[P, X]) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%v", e.point)
	if e.internal {
		sb.WriteString(" internal")
	}
	writeSubcurves := func(name string, scs []*subcurve[P, X]) {
		if len(scs) == 0 {
			return
		}
		fmt.Fprintf(&sb, " %s=[", name)
		for i, sc := range scs {
			if i != 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%d", sc.id)
		}
		sb.WriteString("]")
	}
	writeSubcurves("left", e.left)
	writeSubcurves("right", e.right)
	writeSubcurves("verticals", e.verticals)
	if 0 < len(e.verticalXPoints) {
		fmt.Fprintf(&sb, " xpoints=%v", e.verticalXPoints)
	}
	return sb.String()
}
