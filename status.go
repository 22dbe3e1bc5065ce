package sweepline

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

type statusNode[P, X any] struct {
	parent, left, right *statusNode[P, X]
	height              int

	sc *subcurve[P, X]
}

// Prev returns the node directly below, or nil.
func (n *statusNode[P, X]) Prev() *statusNode[P, X] {
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right
		}
		return n
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// Next returns the node directly above, or nil.
func (n *statusNode[P, X]) Next() *statusNode[P, X] {
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left
		}
		return n
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

func (n *statusNode[P, X]) balance() int {
	r := 0
	if n.left != nil {
		r -= n.left.height
	}
	if n.right != nil {
		r += n.right.height
	}
	return r
}

func (n *statusNode[P, X]) updateHeight() {
	n.height = 0
	if n.left != nil {
		n.height = n.left.height
	}
	if n.right != nil && n.height < n.right.height {
		n.height = n.right.height
	}
	n.height++
}

func (n *statusNode[P, X]) swapChild(a, b *statusNode[P, X]) {
	if n.right == a {
		n.right = b
	} else {
		n.left = b
	}
	if b != nil {
		b.parent = n
	}
}

func (a *statusNode[P, X]) rotateLeft() *statusNode[P, X] {
	b := a.right
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.right = b.left; a.right != nil {
		a.right.parent = a
	}
	b.left = a
	return b
}

func (a *statusNode[P, X]) rotateRight() *statusNode[P, X] {
	b := a.left
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.left = b.right; a.left != nil {
		a.left.parent = a
	}
	b.right = a
	return b
}

func (n *statusNode[P, X]) Print(w io.Writer, indent int) {
	if n.right != nil {
		n.right.Print(w, indent+1)
	} else if n.left != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
	fmt.Fprintf(w, "%v%v\n", strings.Repeat("  ", indent), n.sc)
	if n.left != nil {
		n.left.Print(w, indent+1)
	} else if n.right != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
}

// statusLine is the ordered set of subcurves that intersect the sweep line, from bottom to top. It
// is an AVL tree whose nodes are referenced by their subcurves, so that a subcurve can be removed
// or used as an insertion hint without searching for it. The order is given by the comparison
// functions, which depend on the current position of the sweep line.
type statusLine[P, X any] struct {
	root *statusNode[P, X]
	pool *sync.Pool
	size int

	compare      func(a, b *subcurve[P, X]) int
	comparePoint func(p P, b *subcurve[P, X]) int
}

// newStatusLine returns an empty status line. The compare function orders two subcurves and
// comparePoint returns whether a point lies below (-1), on (0), or above (+1) a subcurve.
func newStatusLine[P, X any](compare func(a, b *subcurve[P, X]) int, comparePoint func(p P, b *subcurve[P, X]) int) *statusLine[P, X] {
	return &statusLine[P, X]{
		pool:         &sync.Pool{New: func() any { return &statusNode[P, X]{} }},
		compare:      compare,
		comparePoint: comparePoint,
	}
}

func (s *statusLine[P, X]) newNode(sc *subcurve[P, X]) *statusNode[P, X] {
	n := s.pool.Get().(*statusNode[P, X])
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 1
	n.sc = sc
	n.sc.node = n
	s.size++
	return n
}

func (s *statusLine[P, X]) returnNode(n *statusNode[P, X]) {
	n.sc.node = nil
	n.sc = nil // help the GC
	s.size--
	s.pool.Put(n)
}

func (s *statusLine[P, X]) find(sc *subcurve[P, X]) (*statusNode[P, X], int) {
	n := s.root
	for n != nil {
		cmp := s.compare(sc, n.sc)
		if cmp < 0 {
			if n.left == nil {
				return n, -1
			}
			n = n.left
		} else if 0 < cmp {
			if n.right == nil {
				return n, 1
			}
			n = n.right
		} else {
			break
		}
	}
	return n, 0
}

func (s *statusLine[P, X]) rebalance(n *statusNode[P, X]) {
	for {
		oheight := n.height
		if balance := n.balance(); balance == 2 {
			if n.right != nil && n.right.balance() < 0 {
				// right-left case
				n.right = n.right.rotateRight()
				n.right.right.updateHeight()
			}
			n = n.rotateLeft()
			n.left.updateHeight()
		} else if balance == -2 {
			if n.left != nil && n.left.balance() > 0 {
				// left-right case
				n.left = n.left.rotateLeft()
				n.left.left.updateHeight()
			}
			n = n.rotateRight()
			n.right.updateHeight()
		} else if balance < -2 || 2 < balance {
			panic(errors.AssertionFailedf("status line out of balance: %d", balance))
		}

		n.updateHeight()
		if n.parent == nil {
			s.root = n
			return
		}
		if oheight == n.height {
			return
		}
		n = n.parent
	}
}

// Len returns the number of subcurves in the status line.
func (s *statusLine[P, X]) Len() int {
	return s.size
}

func (s *statusLine[P, X]) String() string {
	if s.root == nil {
		return "nil"
	}

	sb := strings.Builder{}
	s.root.Print(&sb, 0)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}

// Clear removes all subcurves.
func (s *statusLine[P, X]) Clear() {
	for n := s.First(); n != nil; n = n.Next() {
		n.sc.node = nil
	}
	s.root = nil
	s.size = 0
}

// First returns the bottom node.
func (s *statusLine[P, X]) First() *statusNode[P, X] {
	if s.root == nil {
		return nil
	}
	n := s.root
	for n.left != nil {
		n = n.left
	}
	return n
}

// Last returns the top node.
func (s *statusLine[P, X]) Last() *statusNode[P, X] {
	if s.root == nil {
		return nil
	}
	n := s.root
	for n.right != nil {
		n = n.right
	}
	return n
}

// Subcurves returns the subcurves from bottom to top.
func (s *statusLine[P, X]) Subcurves() []*subcurve[P, X] {
	scs := make([]*subcurve[P, X], 0, s.size)
	for n := s.First(); n != nil; n = n.Next() {
		scs = append(scs, n.sc)
	}
	return scs
}

// LowerBound returns the bottom-most node for which p lies below or on its subcurve. May return nil.
func (s *statusLine[P, X]) LowerBound(p P) *statusNode[P, X] {
	var lb *statusNode[P, X]
	n := s.root
	for n != nil {
		if s.comparePoint(p, n.sc) <= 0 {
			lb = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return lb
}

// Insert inserts the subcurve at its ordered position.
func (s *statusLine[P, X]) Insert(sc *subcurve[P, X]) *statusNode[P, X] {
	if s.root == nil {
		s.root = s.newNode(sc)
		return s.root
	}

	n, cmp := s.find(sc)
	if cmp == 0 {
		panic(errors.AssertionFailedf("subcurve %v is equal to %v in the status line", sc, n.sc))
	} else if cmp < 0 {
		// lower
		n.left = s.newNode(sc)
		n.left.parent = n
		n = n.left
	} else {
		// higher
		n.right = s.newNode(sc)
		n.right.parent = n
		n = n.right
	}
	s.rebalance(n.parent)
	return n
}

// InsertAfter inserts the subcurve directly above the hint node, which must be its predecessor in
// the status line order.
func (s *statusLine[P, X]) InsertAfter(hint *statusNode[P, X], sc *subcurve[P, X]) *statusNode[P, X] {
	n := hint
	if n.right == nil {
		n.right = s.newNode(sc)
		n.right.parent = n
		n = n.right
	} else {
		n = n.right
		for n.left != nil {
			n = n.left
		}
		n.left = s.newNode(sc)
		n.left.parent = n
		n = n.left
	}
	s.rebalance(n.parent)
	return n
}

// Remove removes the node from the status line. The nodes of other subcurves may change, but
// each subcurve keeps a valid reference to its own node.
func (s *statusLine[P, X]) Remove(n *statusNode[P, X]) {
	var o *statusNode[P, X]
	for {
		if n.height == 1 {
			o = n.parent
			if o != nil {
				o.swapChild(n, nil)
				s.rebalance(o)
			} else {
				s.root = nil
			}
			s.returnNode(n)
			return
		} else if n.right != nil {
			o = n.right
			for o.left != nil {
				o = o.left
			}
		} else if n.left != nil {
			o = n.left
			for o.right != nil {
				o = o.right
			}
		} else {
			panic(errors.AssertionFailedf("status line node without children has height %d", n.height))
		}
		n.sc, o.sc = o.sc, n.sc
		n.sc.node, o.sc.node = n, o
		n = o
	}
}
