package sweepline

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
)

// Sweeper runs a Bentley-Ottmann sweep line over curves described by the traits. It handles
// degenerate input: curves that are not x-monotone, vertical curves, many curves meeting at a point,
// curves that start or end in the interior of other curves, and overlapping curves.
//
// A Sweeper runs one sweep at a time and must not be used concurrently. It can be reused for
// subsequent sweeps.
type Sweeper[P, C, X any] struct {
	traits Traits[P, C, X]

	queue     *eventQueue[P, X]
	status    *statusLine[P, X]
	events    []*sweepEvent[P, X] // all events of the sweep, also those removed from the queue
	subcurves []*subcurve[P, X]

	cur     *sweepEvent[P, X]
	pos     P // position of the sweep line
	prevPos P // position of the first event at the current x-coordinate
	started bool

	verticals         []*subcurve[P, X] // vertical curves at the current x-coordinate
	verticalSubCurves []X               // vertical pieces emitted at the current x-coordinate

	out     output[P, C, X]
	stop    bool
	running bool
}

// NewSweeper returns a sweeper using the given traits.
func NewSweeper[P, C, X any](traits Traits[P, C, X]) *Sweeper[P, C, X] {
	s := &Sweeper[P, C, X]{traits: traits}
	s.queue = newEventQueue[P, X](traits.CompareXY)
	s.status = newStatusLine(s.compareSubcurves, s.comparePoint)
	return s
}

// Subcurves emits the maximal non-intersecting pieces of the curves to out, in sweep order. Each
// piece keeps the orientation of its curve. Unless overlapping is set, a piece that is equal to
// the previously emitted piece, which happens for overlapping curves, is emitted only once.
func (s *Sweeper[P, C, X]) Subcurves(curves []C, overlapping bool, out func(X)) {
	s.run(curves, &subcurveOutput[P, C, X]{
		overlapping: overlapping,
		out:         out,
	})
}

// IntersectionPoints emits the intersection points of the curves to out, in sweep order. Points
// where curves only touch at their endpoints, as well as the endpoints of all curves, are emitted
// only when includeEndpoints is set.
func (s *Sweeper[P, C, X]) IntersectionPoints(curves []C, includeEndpoints bool, out func(P)) {
	s.run(curves, &pointOutput[P, C, X]{
		includeEndpoints: includeEndpoints,
		out:              out,
	})
}

// Intersects returns true if any two curves cross or overlap, or if a curve ends in the interior
// of another. It stops at the first intersection.
func (s *Sweeper[P, C, X]) Intersects(curves []C) bool {
	found := false
	s.run(curves, &pointOutput[P, C, X]{
		out:         func(P) { found = true },
		stopAtFirst: true,
	})
	return found
}

func (s *Sweeper[P, C, X]) run(curves []C, out output[P, C, X]) {
	s.begin(curves, out)
	defer s.reset()
	for !s.stop && s.queue.Len() != 0 {
		s.step()
	}
}

// begin decomposes the curves into x-monotone subcurves and adds events for their endpoints.
func (s *Sweeper[P, C, X]) begin(curves []C, out output[P, C, X]) {
	if s.running {
		panic(errors.AssertionFailedf("sweep already in progress"))
	}
	s.running = true
	s.out = out
	for _, c := range curves {
		if cv, ok := s.traits.XMonotone(c); ok {
			s.addCurve(cv)
		} else {
			for _, cv := range s.traits.MakeXMonotone(c) {
				s.addCurve(cv)
			}
		}
	}
	Logger().Debug("sweep: begin", "curves", len(curves), "subcurves", len(s.subcurves), "events", s.queue.Len())
}

func (s *Sweeper[P, C, X]) reset() {
	s.queue.Clear()
	s.status.Clear()
	clear(s.events)
	s.events = s.events[:0]
	clear(s.subcurves)
	s.subcurves = s.subcurves[:0]
	clear(s.verticals)
	s.verticals = s.verticals[:0]
	clear(s.verticalSubCurves)
	s.verticalSubCurves = s.verticalSubCurves[:0]

	var zero P
	s.cur = nil
	s.pos, s.prevPos = zero, zero
	s.started = false
	s.out = nil
	s.stop = false
	s.running = false
}

func (s *Sweeper[P, C, X]) addCurve(cv X) {
	source, target := s.traits.Source(cv), s.traits.Target(cv)
	sc := &subcurve[P, X]{
		id:        len(s.subcurves),
		curve:     cv,
		lastCurve: cv,
	}
	if s.traits.CompareXY(source, target) <= 0 {
		sc.left, sc.right, sc.sourceIsLeft = source, target, true
	} else {
		sc.left, sc.right = target, source
	}
	sc.lastPoint = sc.left
	sc.vertical = s.traits.IsVertical(cv) || s.traits.PointEqual(sc.left, sc.right)
	s.subcurves = append(s.subcurves, sc)

	left, _ := s.event(sc.left)
	right, _ := s.event(sc.right)
	if sc.vertical {
		left.addVertical(sc)
		right.addVertical(sc)
	} else {
		left.addRight(sc)
		right.addLeft(sc)
	}
}

// event returns the event at p, creating it if it does not exist.
func (s *Sweeper[P, C, X]) event(p P) (*sweepEvent[P, X], bool) {
	if e, ok := s.queue.Find(p); ok {
		return e, false
	}
	e := &sweepEvent[P, X]{point: p}
	s.queue.Insert(e)
	s.events = append(s.events, e)
	Logger().Debug("sweep: new event", "point", p)
	return e, true
}

// step processes the first event of the queue.
func (s *Sweeper[P, C, X]) step() {
	e, ok := s.queue.Min()
	if !ok {
		return
	}
	s.cur, s.pos = e, e.point
	if !s.started || s.traits.CompareX(s.prevPos, s.pos) < 0 {
		s.started = true
		s.prevPos = s.pos
		clear(s.verticals)
		s.verticals = s.verticals[:0]
		clear(s.verticalSubCurves)
		s.verticalSubCurves = s.verticalSubCurves[:0]
	}
	Logger().Debug("sweep: event", "event", e)

	s.registerPassingCurves()
	s.handleVerticalBottoms()
	s.handleVerticalOverlaps()
	s.handleLeftCurves()
	s.queue.Remove(e)
	s.handleVerticalTops()
	s.handleRightCurves()
	s.stop = s.out.endEvent(s)
}

// compareSubcurves orders subcurve a, which passes through the sweep line position, relative to
// subcurve b in the status line.
func (s *Sweeper[P, C, X]) compareSubcurves(a, b *subcurve[P, X]) int {
	if a.id == b.id {
		return 0
	} else if c := s.traits.CompareYAtX(s.pos, b.curve); c != 0 {
		return c
	} else if c := s.traits.CurvesCompareYAtXRight(a.curve, b.curve, s.pos); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

func (s *Sweeper[P, C, X]) comparePoint(p P, b *subcurve[P, X]) int {
	return s.traits.CompareYAtX(p, b.curve)
}

// passesThrough returns true if p lies on the subcurve.
func (s *Sweeper[P, C, X]) passesThrough(sc *subcurve[P, X], p P) bool {
	return s.traits.PointInXRange(sc.curve, p) && s.traits.CompareYAtX(p, sc.curve) == 0
}

// isInterior returns true if p is not an endpoint of the subcurve.
func (s *Sweeper[P, C, X]) isInterior(sc *subcurve[P, X], p P) bool {
	return !s.traits.PointEqual(p, sc.left) && !s.traits.PointEqual(p, sc.right)
}

// doCurvesOverlap returns true if a and b overlap at the sweep line position.
func (s *Sweeper[P, C, X]) doCurvesOverlap(a, b *subcurve[P, X]) bool {
	return s.traits.CurvesCompareYAtX(a.curve, b.curve, s.pos) == 0 && s.traits.CurvesOverlap(a.curve, b.curve)
}

// registerPassingCurves adds the active curves that pass through the event point but have not
// been registered at the event, such as a curve on which another curve starts or ends.
func (s *Sweeper[P, C, X]) registerPassingCurves() {
	for n := s.status.LowerBound(s.pos); n != nil; n = n.Next() {
		sc := n.sc
		if !s.passesThrough(sc, s.pos) {
			break
		} else if containsID(s.cur.left, sc) {
			continue
		}
		s.cur.addLeft(sc)
		if !s.traits.PointEqual(s.pos, sc.right) {
			s.cur.addRight(sc)
		}
		if s.isInterior(sc, s.pos) {
			s.cur.internal = true
		}
		Logger().Debug("sweep: passing curve", "point", s.pos, "subcurve", sc)
	}
}

// orderLeftCurves returns the left curves of the event in status line order, together with the
// subcurves directly below and above them.
func (s *Sweeper[P, C, X]) orderLeftCurves() ([]*subcurve[P, X], *subcurve[P, X], *subcurve[P, X]) {
	for _, sc := range s.cur.left {
		if sc.node == nil {
			panic(errors.AssertionFailedf("left curve %v of event %v is not in the status line", sc, s.pos))
		}
	}

	isLeft := func(n *statusNode[P, X]) bool {
		return n != nil && containsID(s.cur.left, n.sc)
	}
	first := s.cur.left[0].node
	for isLeft(first.Prev()) {
		first = first.Prev()
	}
	last := first
	lefts := make([]*subcurve[P, X], 0, len(s.cur.left))
	for n := first; isLeft(n); n = n.Next() {
		lefts = append(lefts, n.sc)
		last = n
	}
	for _, sc := range s.cur.left {
		lefts = appendUnique(lefts, sc)
	}

	var below, above *subcurve[P, X]
	if n := first.Prev(); n != nil {
		below = n.sc
	}
	if n := last.Next(); n != nil {
		above = n.sc
	}
	return lefts, below, above
}

// handleLeftCurves emits and removes the curves that end at or pass through the event point. When
// a curve ends here, the curves below and above become neighbours and are tested for
// intersections.
func (s *Sweeper[P, C, X]) handleLeftCurves() {
	if len(s.cur.left) == 0 {
		return
	}

	lefts, below, above := s.orderLeftCurves()
	ended := false
	for _, sc := range lefts {
		s.out.leftCurve(s, sc)
		if s.traits.PointEqual(s.pos, sc.right) {
			ended = true
		}
		s.status.Remove(sc.node)
		Logger().Debug("sweep: erase", "point", s.pos, "subcurve", sc)
	}
	if ended && below != nil && above != nil {
		s.intersectGroups(s.overlapGroup(below, false), s.overlapGroup(above, true))
	}
}

// handleRightCurves inserts the curves that start at or pass through the event point, and tests
// them against each other and their new neighbours.
func (s *Sweeper[P, C, X]) handleRightCurves() {
	if len(s.cur.right) == 0 {
		return
	}

	rights := slices.Clone(s.cur.right)
	slices.SortFunc(rights, func(a, b *subcurve[P, X]) int {
		if c := s.traits.CurvesCompareYAtXRight(a.curve, b.curve, s.pos); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	prev := s.status.Insert(rights[0])
	for _, sc := range rights[1:] {
		prev = s.status.InsertAfter(prev, sc)
	}
	Logger().Debug("sweep: insert", "point", s.pos, "subcurves", len(rights))

	var group, prevGroup []*subcurve[P, X]
	if below := rights[0].node.Prev(); below != nil {
		prevGroup = s.overlapGroup(below.sc, false)
	}
	for i, sc := range rights {
		if 0 < i && !s.doCurvesOverlap(rights[i-1], sc) {
			prevGroup, group = group, nil
		}
		for _, sc2 := range group {
			s.intersect(sc, sc2)
		}
		for _, sc2 := range prevGroup {
			s.intersect(sc, sc2)
		}
		group = append(group, sc)
	}
	if above := rights[len(rights)-1].node.Next(); above != nil {
		s.intersectGroups(s.overlapGroup(above.sc, true), group)
	}
}

// overlapGroup returns sc and the consecutive subcurves below (or above) it that overlap with it.
func (s *Sweeper[P, C, X]) overlapGroup(sc *subcurve[P, X], up bool) []*subcurve[P, X] {
	group := []*subcurve[P, X]{sc}
	for n := sc.node; ; {
		next := n.Prev()
		if up {
			next = n.Next()
		}
		if next == nil || !s.doCurvesOverlap(n.sc, next.sc) {
			break
		}
		group = append(group, next.sc)
		n = next
	}
	return group
}

func (s *Sweeper[P, C, X]) intersectGroups(as, bs []*subcurve[P, X]) {
	for _, a := range as {
		for _, b := range bs {
			s.intersect(a, b)
		}
	}
}

// intersect finds the first intersection of a and b to the right of the sweep line and registers
// it as an event. For overlaps, the start of the overlap becomes the event if it lies to the right
// of the sweep line, otherwise its end.
func (s *Sweeper[P, C, X]) intersect(a, b *subcurve[P, X]) {
	if a.id == b.id {
		return
	}
	q0, q1, ok := s.traits.NearestIntersectionToRight(a.curve, b.curve, s.pos)
	if !ok || s.traits.CompareXY(q1, s.pos) <= 0 {
		return
	}

	if s.traits.PointEqual(q0, q1) {
		s.addIntersection(q0, a, b)
		Logger().Debug("sweep: intersection", "point", q0, "a", a, "b", b)
		return
	}

	q := q0
	if s.traits.CompareXY(q0, s.pos) <= 0 {
		s.cur.internal = true
		q = q1
	}
	e := s.addIntersection(q, a, b)
	e.internal = true
	Logger().Debug("sweep: overlap", "start", q0, "end", q1, "a", a, "b", b)
}

// addIntersection registers the subcurves at the event at p. Subcurves for which p is an endpoint
// are registered already.
func (s *Sweeper[P, C, X]) addIntersection(p P, scs ...*subcurve[P, X]) *sweepEvent[P, X] {
	e, _ := s.event(p)
	for _, sc := range scs {
		if s.isInterior(sc, p) {
			e.addLeft(sc)
			e.addRight(sc)
			e.internal = true
		}
	}
	return e
}

////////////////////////////////////////////////////////////////

// Subcurves returns the maximal non-intersecting segments of the polylines.
func Subcurves(curves []*Polyline, overlapping bool) []Segment {
	segs := []Segment{}
	NewSweeper[Point, *Polyline, Segment](PolylineTraits{}).Subcurves(curves, overlapping, func(seg Segment) {
		segs = append(segs, seg)
	})
	return segs
}

// IntersectionPoints returns the intersection points of the polylines.
func IntersectionPoints(curves []*Polyline, includeEndpoints bool) []Point {
	ps := []Point{}
	NewSweeper[Point, *Polyline, Segment](PolylineTraits{}).IntersectionPoints(curves, includeEndpoints, func(p Point) {
		ps = append(ps, p)
	})
	return ps
}

// Intersects returns true if any of the polylines intersect.
func Intersects(curves []*Polyline) bool {
	return NewSweeper[Point, *Polyline, Segment](PolylineTraits{}).Intersects(curves)
}
