package sweepline

// output receives the results of a sweep. It is chosen once per sweep and decides whether curves
// are split into pieces or whether intersection points are reported.
type output[P, C, X any] interface {
	// leftCurve is called for every curve that ends at or passes through the event point, before
	// it is removed from the status line.
	leftCurve(s *Sweeper[P, C, X], sc *subcurve[P, X])
	// verticalCurve is called for every vertical curve whose top is the event point.
	verticalCurve(s *Sweeper[P, C, X], v *subcurve[P, X])
	// endEvent is called after the event has been processed, it returns true to stop the sweep.
	endEvent(s *Sweeper[P, C, X]) bool
}

// subcurveOutput emits the maximal non-intersecting pieces of the curves.
type subcurveOutput[P, C, X any] struct {
	overlapping bool
	out         func(X)

	prev    X // previously emitted piece
	hasPrev bool
}

func (o *subcurveOutput[P, C, X]) leftCurve(s *Sweeper[P, C, X], sc *subcurve[P, X]) {
	var piece X
	if s.traits.PointEqual(s.pos, sc.right) {
		piece = sc.lastCurve
	} else if sc.sourceIsLeft {
		piece, sc.lastCurve = s.traits.Split(sc.lastCurve, s.pos)
	} else {
		sc.lastCurve, piece = s.traits.Split(sc.lastCurve, s.pos)
	}
	sc.lastPoint = s.pos
	sc.lastSubCurve = piece
	sc.emitted = true

	if !o.overlapping && o.hasPrev && s.traits.CurveEqual(o.prev, piece) {
		return
	}
	o.emit(piece)
}

func (o *subcurveOutput[P, C, X]) verticalCurve(s *Sweeper[P, C, X], v *subcurve[P, X]) {
Pieces:
	for _, piece := range s.verticalPieces(v) {
		if !o.overlapping {
			for _, piece2 := range s.verticalSubCurves {
				if s.traits.CurveEqual(piece, piece2) {
					continue Pieces
				}
			}
		}
		s.verticalSubCurves = append(s.verticalSubCurves, piece)
		o.emit(piece)
	}
	v.lastPoint = v.right
	v.emitted = true
}

func (o *subcurveOutput[P, C, X]) endEvent(*Sweeper[P, C, X]) bool {
	return false
}

func (o *subcurveOutput[P, C, X]) emit(piece X) {
	o.out(piece)
	o.prev, o.hasPrev = piece, true
}

// pointOutput emits the points of the events that are intersections, or all event points when
// endpoints are included.
type pointOutput[P, C, X any] struct {
	includeEndpoints bool
	stopAtFirst      bool
	out              func(P)

	last    P // previously emitted point
	hasLast bool
}

func (o *pointOutput[P, C, X]) leftCurve(*Sweeper[P, C, X], *subcurve[P, X]) {}

func (o *pointOutput[P, C, X]) verticalCurve(*Sweeper[P, C, X], *subcurve[P, X]) {}

func (o *pointOutput[P, C, X]) endEvent(s *Sweeper[P, C, X]) bool {
	if !o.includeEndpoints && !s.cur.internal {
		return false
	} else if o.hasLast && s.traits.PointEqual(o.last, s.pos) {
		return false
	}
	o.out(s.pos)
	o.last, o.hasLast = s.pos, true
	return o.stopAtFirst
}
