package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/sweepline"
	"github.com/tdewolff/test"
)

func TestWrite(t *testing.T) {
	pls := sweepline.MustParsePolylines("M0 0L2 2M0 2L2 0")
	segs := sweepline.Subcurves(pls, false)
	ps := sweepline.IntersectionPoints(pls, false)

	buf := &bytes.Buffer{}
	test.Error(t, Write(buf, "svg", "Sub-curves", segs, ps))
	test.That(t, strings.Contains(buf.String(), "<svg"))

	test.That(t, Write(buf, "bmp2", "Sub-curves", segs, ps) != nil, "unknown format")
}

func TestPlotRange(t *testing.T) {
	segs := []sweepline.Segment{
		{Start: sweepline.Point{X: 0, Y: 0}, End: sweepline.Point{X: 10, Y: 0}},
		{Start: sweepline.Point{X: 5, Y: -5}, End: sweepline.Point{X: 5, Y: 5}},
	}
	p, err := Plot("", segs, nil)
	test.Error(t, err)
	test.Float(t, p.X.Min, -0.5)
	test.Float(t, p.X.Max, 10.5)
	test.Float(t, p.Y.Min, -5.5)
	test.Float(t, p.Y.Max, 5.5)

	p, err = Plot("", segs[1:], nil)
	test.Error(t, err)
	test.Float(t, p.X.Min, 4.5)
	test.Float(t, p.X.Max, 5.5)
}

func TestSave(t *testing.T) {
	test.That(t, Save("preview", "", nil, nil) != nil, "no extension")
}
