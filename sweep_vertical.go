package sweepline

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Vertical curves never enter the status line. Their crossings with other curves are found when
// the bottom endpoint is processed, events in their interior are collected on the event of their
// top endpoint, and they are split and emitted when the top endpoint is processed.

// handleVerticalBottoms adds events for the curves in the status line that cross the vertical
// curves starting at the event point.
func (s *Sweeper[P, C, X]) handleVerticalBottoms() {
	for _, v := range s.cur.verticals {
		if !s.traits.PointEqual(v.left, s.pos) {
			continue
		}

		for n := s.status.LowerBound(v.left); n != nil; n = n.Next() {
			sc := n.sc
			if s.traits.CompareYAtX(v.right, sc.curve) < 0 {
				break
			} else if s.passesThrough(sc, v.left) || s.passesThrough(sc, v.right) {
				// handled by the events at the endpoints of the vertical curve
				continue
			}

			q, _, ok := s.traits.NearestIntersectionToRight(v.curve, sc.curve, v.left)
			if !ok {
				panic(errors.AssertionFailedf("vertical curve %v crosses %v without intersection", v, sc))
			}
			e, _ := s.event(q)
			if s.isInterior(sc, q) {
				e.addLeft(sc)
				e.addRight(sc)
			}
			e.internal = true
			Logger().Debug("sweep: vertical intersection", "point", q, "vertical", v, "subcurve", sc)
		}
	}
}

// handleVerticalOverlaps records the event point on the vertical curves at the current
// x-coordinate that contain it in their interior. Vertical curves that end below the event are
// retired and vertical curves starting at the event are admitted.
func (s *Sweeper[P, C, X]) handleVerticalOverlaps() {
	if len(s.verticals) != 0 {
		verticals := s.verticals[:0]
		for _, v := range s.verticals {
			if s.traits.CompareXY(v.right, s.pos) < 0 {
				continue
			}
			verticals = append(verticals, v)
			if !s.isInterior(v, s.pos) {
				continue
			}

			top, ok := s.queue.Find(v.right)
			if !ok {
				panic(errors.AssertionFailedf("top of vertical curve %v has no event", v))
			}
			top.verticalXPoints = s.appendPoint(top.verticalXPoints, s.pos)
			s.cur.internal = true
			Logger().Debug("sweep: point on vertical", "point", s.pos, "vertical", v)
		}
		clear(s.verticals[len(verticals):])
		s.verticals = verticals
	}

	for i, v := range s.cur.verticals {
		if s.traits.PointEqual(v.left, s.pos) {
			s.verticals = append(s.verticals, v)
		}
		if !s.cur.internal && s.sharesVerticalEnd(v, s.cur.verticals[i+1:]) {
			// start or end of an overlap between vertical curves
			s.cur.internal = true
		}
	}
}

// sharesVerticalEnd returns true if v and one of the other vertical curves both start or both end
// at the event point. Zero-length curves are ignored.
func (s *Sweeper[P, C, X]) sharesVerticalEnd(v *subcurve[P, X], others []*subcurve[P, X]) bool {
	if s.traits.PointEqual(v.left, v.right) {
		return false
	}
	bottom := s.traits.PointEqual(v.left, s.pos)
	for _, w := range others {
		if !s.traits.PointEqual(w.left, w.right) && s.traits.PointEqual(w.left, s.pos) == bottom {
			return true
		}
	}
	return false
}

// handleVerticalTops emits the vertical curves ending at the event point.
func (s *Sweeper[P, C, X]) handleVerticalTops() {
	for _, v := range s.cur.verticals {
		if s.traits.PointEqual(v.right, s.pos) {
			s.out.verticalCurve(s, v)
		}
	}
}

// verticalPieces splits the vertical curve at the points collected on its top event and returns
// the pieces from bottom to top.
func (s *Sweeper[P, C, X]) verticalPieces(v *subcurve[P, X]) []X {
	// the points were collected for all verticals ending here, keep those strictly inside v
	ps := []P{}
	for _, p := range s.cur.verticalXPoints {
		if s.traits.CompareXY(v.left, p) < 0 && s.traits.CompareXY(p, v.right) < 0 {
			ps = append(ps, p)
		}
	}
	slices.SortFunc(ps, s.traits.CompareXY)

	pieces := make([]X, 0, len(ps)+1)
	rest := v.curve
	for _, p := range ps {
		a, b := s.traits.Split(rest, p)
		if v.sourceIsLeft {
			pieces = append(pieces, a)
			rest = b
		} else {
			pieces = append(pieces, b)
			rest = a
		}
	}
	return append(pieces, rest)
}

// appendPoint appends p to ps if it is not yet present.
func (s *Sweeper[P, C, X]) appendPoint(ps []P, p P) []P {
	for _, q := range ps {
		if s.traits.PointEqual(p, q) {
			return ps
		}
	}
	return append(ps, p)
}
