package sweepline

import (
	"fmt"
	"math"
	"strings"
)

// Polyline defines a list of points in 2D space that form a polyline. If the last coordinate equals the first coordinate, we assume the polyline to close itself.
type Polyline struct {
	coords []Point
}

// NewPolyline returns a polyline through the given points.
func NewPolyline(coords ...Point) *Polyline {
	return &Polyline{coords}
}

// Empty returns true if the polyline is empty.
func (p *Polyline) Empty() bool {
	return len(p.coords) < 2
}

// Len returns the number of segments.
func (p *Polyline) Len() int {
	if p.Empty() {
		return 0
	}
	return len(p.coords) - 1
}

// Add adds a new point to the polyline.
func (p *Polyline) Add(x, y float64) *Polyline {
	p.coords = append(p.coords, Point{x, y})
	return p
}

// Close adds a new point equal to the first, closing the polyline.
func (p *Polyline) Close() *Polyline {
	if 0 < len(p.coords) {
		p.coords = append(p.coords, p.coords[0])
	}
	return p
}

// Closed returns true if the last point coincides with the first.
func (p *Polyline) Closed() bool {
	return 0 < len(p.coords) && p.coords[0].Equals(p.coords[len(p.coords)-1])
}

// Coords returns the list of coordinates of the polyline.
func (p *Polyline) Coords() []Point {
	return p.coords
}

// Segments returns the non-degenerate line segments of the polyline in order.
func (p *Polyline) Segments() []Segment {
	segs := make([]Segment, 0, p.Len())
	for i := 1; i < len(p.coords); i++ {
		seg := Segment{p.coords[i-1], p.coords[i]}
		if !seg.Degenerate() {
			segs = append(segs, seg)
		}
	}
	return segs
}

// Bounds returns the bounding box of the polyline.
func (p *Polyline) Bounds() Rect {
	if len(p.coords) == 0 {
		return Rect{}
	}
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, coord := range p.coords {
		x0, x1 = math.Min(x0, coord.X), math.Max(x1, coord.X)
		y0, y1 = math.Min(y0, coord.Y), math.Max(y1, coord.Y)
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// String returns the polyline as SVG path data.
func (p *Polyline) String() string {
	sb := strings.Builder{}
	for i, coord := range p.coords {
		if i == 0 {
			fmt.Fprintf(&sb, "M%v %v", num(coord.X), num(coord.Y))
		} else if i == len(p.coords)-1 && 2 < len(p.coords) && p.Closed() {
			sb.WriteString("z")
		} else {
			fmt.Fprintf(&sb, "L%v %v", num(coord.X), num(coord.Y))
		}
	}
	return sb.String()
}

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", 10, float64(f))
	if s == "-0" {
		return "0"
	}
	return s
}

////////////////////////////////////////////////////////////////

// PolylineTraits implements Traits for polylines, which are decomposed into their line segments.
type PolylineTraits struct {
	SegmentTraits
}

// XMonotone returns the single segment of a polyline that has only one non-degenerate segment.
func (PolylineTraits) XMonotone(p *Polyline) (Segment, bool) {
	segs := p.Segments()
	if len(segs) != 1 {
		return Segment{}, false
	}
	return segs[0], true
}

// MakeXMonotone returns the non-degenerate segments of the polyline.
func (PolylineTraits) MakeXMonotone(p *Polyline) []Segment {
	return p.Segments()
}
