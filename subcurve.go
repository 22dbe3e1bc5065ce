package sweepline

import "fmt"

// subcurve wraps one x-monotone curve during the sweep. It tracks which part of the curve has been
// emitted already and where the curve currently is in the status line.
type subcurve[P, X any] struct {
	id    int
	curve X

	left, right  P // endpoints in sweep order
	sourceIsLeft bool
	vertical     bool

	// emission cursor, lastCurve is the part that has not been emitted yet
	lastPoint    P
	lastCurve    X
	lastSubCurve X
	emitted      bool

	node *statusNode[P, X] // nil when not in the status line
}

func (sc *subcurve[P, X]) String() string {
	return fmt.Sprintf("%d:%v", sc.id, sc.curve)
}

// containsID returns true if a subcurve with the same id is in scs.
func containsID[P, X any](scs []*subcurve[P, X], sc *subcurve[P, X]) bool {
	for _, sc2 := range scs {
		if sc2.id == sc.id {
			return true
		}
	}
	return false
}

// appendUnique appends sc to scs if it is not yet present.
func appendUnique[P, X any](scs []*subcurve[P, X], sc *subcurve[P, X]) []*subcurve[P, X] {
	if containsID(scs, sc) {
		return scs
	}
	return append(scs, sc)
}
