// Package geo converts between GeoJSON geometries and the polylines, segments, and points of the
// sweep line, optionally projecting WGS84 coordinates into a planar coordinate system.
package geo

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/sweepline"
	"github.com/wroge/wgs84/v2"
)

// WGS84 is the EPSG code of longitude/latitude coordinates.
const WGS84 = 4326

// Projection converts coordinates between WGS84 and a planar coordinate system.
type Projection struct {
	EPSG      int
	forward   func(x, y, z float64) (float64, float64, float64)
	backwards func(x, y, z float64) (float64, float64, float64)
}

// NewProjection returns the projection from WGS84 to the coordinate system with the given EPSG
// code. A code of zero or 4326 returns the identity projection.
func NewProjection(epsg int) *Projection {
	if epsg == 0 || epsg == WGS84 {
		return &Projection{EPSG: WGS84}
	}
	return &Projection{
		EPSG:      epsg,
		forward:   wgs84.Transform(wgs84.EPSG(WGS84), wgs84.EPSG(epsg)),
		backwards: wgs84.Transform(wgs84.EPSG(epsg), wgs84.EPSG(WGS84)),
	}
}

// Identity returns true if the projection does not change coordinates.
func (p *Projection) Identity() bool {
	return p == nil || p.forward == nil
}

// Project converts a longitude/latitude coordinate to the planar coordinate system.
func (p *Projection) Project(q orb.Point) sweepline.Point {
	if p.Identity() {
		return sweepline.Point{X: q[0], Y: q[1]}
	}
	x, y, _ := p.forward(q[0], q[1], 0.0)
	return sweepline.Point{X: x, Y: y}
}

// Unproject converts a planar coordinate back to longitude/latitude.
func (p *Projection) Unproject(q sweepline.Point) orb.Point {
	if p.Identity() {
		return orb.Point{q.X, q.Y}
	}
	x, y, _ := p.backwards(q.X, q.Y, 0.0)
	return orb.Point{x, y}
}

func (p *Projection) polyline(ps []orb.Point) *sweepline.Polyline {
	pl := &sweepline.Polyline{}
	for _, q := range ps {
		r := p.Project(q)
		pl.Add(r.X, r.Y)
	}
	return pl
}

// Polylines returns the polylines of a geometry. Polygon rings become closed polylines, points are
// ignored.
func (p *Projection) Polylines(g orb.Geometry) ([]*sweepline.Polyline, error) {
	pls := []*sweepline.Polyline{}
	switch g := g.(type) {
	case orb.LineString:
		pls = append(pls, p.polyline(g))
	case orb.MultiLineString:
		for _, ls := range g {
			pls = append(pls, p.polyline(ls))
		}
	case orb.Ring:
		pls = append(pls, p.polyline(g))
	case orb.Polygon:
		for _, ring := range g {
			pls = append(pls, p.polyline(ring))
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				pls = append(pls, p.polyline(ring))
			}
		}
	case orb.Collection:
		for _, g2 := range g {
			pls2, err := p.Polylines(g2)
			if err != nil {
				return nil, err
			}
			pls = append(pls, pls2...)
		}
	case orb.Point, orb.MultiPoint:
	default:
		return nil, errors.Newf("unsupported geometry: %s", g.GeoJSONType())
	}

	// drop empty linestrings
	j := 0
	for _, pl := range pls {
		if !pl.Empty() {
			pls[j] = pl
			j++
		}
	}
	return pls[:j], nil
}

// ReadPolylines reads a GeoJSON feature collection and returns the polylines of all its features.
func ReadPolylines(r io.Reader, proj *Projection) ([]*sweepline.Polyline, error) {
	if proj == nil {
		proj = NewProjection(WGS84)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read geojson")
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, errors.Wrap(err, "parse geojson")
	}

	pls := []*sweepline.Polyline{}
	for i, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		pls2, err := proj.Polylines(f.Geometry)
		if err != nil {
			return nil, errors.Wrapf(err, "feature %d", i)
		}
		pls = append(pls, pls2...)
	}
	bounds := sweepline.Rect{}
	for _, pl := range pls {
		bounds = bounds.Add(pl.Bounds())
	}
	sweepline.Logger().Debug("geo: read polylines", "features", len(fc.Features), "polylines", len(pls), "epsg", proj.EPSG, "bounds", bounds)
	return pls, nil
}

// SegmentsFeatureCollection returns a feature collection with a LineString feature per segment.
func SegmentsFeatureCollection(segs []sweepline.Segment, proj *Projection) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, seg := range segs {
		f := geojson.NewFeature(orb.LineString{proj.Unproject(seg.Start), proj.Unproject(seg.End)})
		f.Properties["index"] = i
		fc.Append(f)
	}
	return fc
}

// PointsFeatureCollection returns a feature collection with a Point feature per point.
func PointsFeatureCollection(ps []sweepline.Point, proj *Projection) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, q := range ps {
		f := geojson.NewFeature(proj.Unproject(q))
		f.Properties["index"] = i
		fc.Append(f)
	}
	return fc
}

// WriteFeatureCollection writes the feature collection as GeoJSON.
func WriteFeatureCollection(w io.Writer, fc *geojson.FeatureCollection) error {
	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal geojson")
	}
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "write geojson")
	}
	return nil
}
