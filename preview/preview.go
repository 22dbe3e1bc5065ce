// Package preview renders the result of a sweep, the sub-curves and intersection points, as an image.
package preview

import (
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tdewolff/sweepline"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size is the default width and height of a preview.
const Size = 12 * vg.Centimeter

// Margin is the space around the segments relative to their largest dimension.
const Margin = 0.05

// Plot returns a plot of the segments, each in a different color, and the points drawn as circles.
func Plot(title string, segs []sweepline.Segment, ps []sweepline.Point) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	bounds := sweepline.Rect{}
	for i, seg := range segs {
		bounds = bounds.Add(seg.Bounds())
		line, err := plotter.NewLine(plotter.XYs{{X: seg.Start.X, Y: seg.Start.Y}, {X: seg.End.X, Y: seg.End.Y}})
		if err != nil {
			return nil, errors.Wrapf(err, "segment %v", seg)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
	}

	if 0 < len(ps) {
		xys := make(plotter.XYs, len(ps))
		for i, q := range ps {
			xys[i].X, xys[i].Y = q.X, q.Y
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, errors.Wrap(err, "points")
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(3.0)
		p.Add(scatter)
	}
	if 0 < len(segs) {
		margin := Margin * math.Max(bounds.W, bounds.H)
		if margin == 0.0 {
			margin = 1.0
		}
		p.X.Min, p.X.Max = bounds.X-margin, bounds.X+bounds.W+margin
		p.Y.Min, p.Y.Max = bounds.Y-margin, bounds.Y+bounds.H+margin
	}
	return p, nil
}

// Write writes a preview in the given format (png, svg, pdf, ...) to w.
func Write(w io.Writer, format, title string, segs []sweepline.Segment, ps []sweepline.Point) error {
	p, err := Plot(title, segs, ps)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Size, Size, format)
	if err != nil {
		return errors.Wrapf(err, "preview format %s", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "write preview")
	}
	return nil
}

// Save writes a preview to a file, the format is derived from its extension.
func Save(filename, title string, segs []sweepline.Segment, ps []sweepline.Point) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if format == "" {
		return errors.Newf("preview filename has no extension: %s", filename)
	}
	p, err := Plot(title, segs, ps)
	if err != nil {
		return err
	}
	if err := p.Save(Size, Size, filename); err != nil {
		return errors.Wrapf(err, "save preview %s", filename)
	}
	sweepline.Logger().Debug("preview: saved", "filename", filename, "segments", len(segs), "points", len(ps))
	return nil
}
