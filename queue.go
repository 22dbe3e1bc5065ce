package sweepline

import (
	"fmt"
	"strings"

	"github.com/google/btree"
)

const queueDegree = 16

// eventQueue is an ordered mapping from points to events. It never holds two events for points
// that are equal under the point order.
type eventQueue[P, X any] struct {
	tree  *btree.BTreeG[*sweepEvent[P, X]]
	probe sweepEvent[P, X]
}

// newEventQueue returns an empty event queue ordered by compareXY.
func newEventQueue[P, X any](compareXY func(P, P) int) *eventQueue[P, X] {
	less := func(a, b *sweepEvent[P, X]) bool {
		return compareXY(a.point, b.point) < 0
	}
	return &eventQueue[P, X]{
		tree: btree.NewG(queueDegree, less),
	}
}

// Len returns the number of events in the queue.
func (q *eventQueue[P, X]) Len() int {
	return q.tree.Len()
}

// Find returns the event at p, if any.
func (q *eventQueue[P, X]) Find(p P) (*sweepEvent[P, X], bool) {
	q.probe.point = p
	return q.tree.Get(&q.probe)
}

// Insert adds the event to the queue. It returns false and leaves the queue unchanged if an event
// exists at the same point.
func (q *eventQueue[P, X]) Insert(e *sweepEvent[P, X]) bool {
	if q.tree.Has(e) {
		return false
	}
	q.tree.ReplaceOrInsert(e)
	return true
}

// Min returns the first event in sweep order.
func (q *eventQueue[P, X]) Min() (*sweepEvent[P, X], bool) {
	return q.tree.Min()
}

// Remove removes the event from the queue.
func (q *eventQueue[P, X]) Remove(e *sweepEvent[P, X]) {
	q.tree.Delete(e)
}

// Clear removes all events.
func (q *eventQueue[P, X]) Clear() {
	q.tree.Clear(false)
}

// Events returns the events in sweep order.
func (q *eventQueue[P, X]) Events() []*sweepEvent[P, X] {
	es := make([]*sweepEvent[P, X], 0, q.tree.Len())
	q.tree.Ascend(func(e *sweepEvent[P, X]) bool {
		es = append(es, e)
		return true
	})
	return es
}

func (q *eventQueue[P, X]) String() string {
	sb := strings.Builder{}
	for i, e := range q.Events() {
		if i != 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	return sb.String()
}
