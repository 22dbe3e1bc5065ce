package sweepline

// Traits is the set of geometric predicates and constructions the sweep line depends on. P is the
// point type, C the input curve type, and X the x-monotone curve type that is swept. Comparisons
// return -1, 0, or +1 for smaller, equal, and larger respectively.
//
// The sweep does not validate its input: its correctness depends entirely on the consistency of
// these predicates.
type Traits[P, C, X any] interface {
	// CompareX compares the x-coordinates of p and q.
	CompareX(p, q P) int
	// CompareXY compares p and q lexicographically, first by x and then by y. This is the event order.
	CompareXY(p, q P) int
	PointEqual(p, q P) bool

	// XMonotone returns c as an x-monotone curve if it already is one.
	XMonotone(c C) (X, bool)
	// MakeXMonotone decomposes c into x-monotone curves.
	MakeXMonotone(c C) []X

	Source(cv X) P
	Target(cv X) P
	IsVertical(cv X) bool
	PointInXRange(cv X, p P) bool

	// CompareYAtX returns whether p lies below (-1), on (0), or above (+1) cv at the x-coordinate
	// of p. For a vertical cv it returns whether p is below its bottom, within it, or above its top.
	CompareYAtX(p P, cv X) int
	// CurvesCompareYAtX compares the y-coordinates of cv1 and cv2 at the x-coordinate of p.
	CurvesCompareYAtX(cv1, cv2 X, p P) int
	// CurvesCompareYAtXRight compares cv1 and cv2 immediately to the right of p, where both curves
	// pass through p.
	CurvesCompareYAtXRight(cv1, cv2 X, p P) int
	// CurveEqual returns true if cv1 and cv2 are geometrically equal, regardless of orientation.
	CurveEqual(cv1, cv2 X) bool
	// CurvesOverlap returns true if cv1 and cv2 share a portion of positive length.
	CurvesOverlap(cv1, cv2 X) bool
	// NearestIntersectionToRight returns the first intersection of cv1 and cv2 that is
	// lexicographically larger than p. A single intersection point q is returned as (q, q), an
	// overlap as its start (but not before p) and end.
	NearestIntersectionToRight(cv1, cv2 X, p P) (P, P, bool)
	// Split splits cv at p, returning the part on the side of the source and the part on the side
	// of the target.
	Split(cv X, p P) (X, X)
}
