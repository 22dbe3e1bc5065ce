package geo

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/sweepline"
	"github.com/tdewolff/test"
)

const collection = `{"type":"FeatureCollection","features":[
{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[[0,0],[2,2]]}},
{"type":"Feature","properties":{},"geometry":{"type":"MultiLineString","coordinates":[[[0,2],[2,0]],[[5,5]]]}},
{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2],[0,0]]]}},
{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[1,1]}}
]}`

func TestReadPolylines(t *testing.T) {
	pls, err := ReadPolylines(strings.NewReader(collection), NewProjection(0))
	test.Error(t, err)
	test.T(t, len(pls), 3)
	test.String(t, pls[0].String(), "M0 0L2 2")
	test.String(t, pls[1].String(), "M0 2L2 0")
	test.That(t, pls[2].Closed())
	test.T(t, sweepline.IntersectionPoints(pls, false), []sweepline.Point{{X: 1, Y: 1}})

	buf := &bytes.Buffer{}
	sweepline.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer sweepline.SetLogger(nil)
	_, err = ReadPolylines(strings.NewReader(collection), nil)
	test.Error(t, err)
	test.That(t, strings.Contains(buf.String(), "bounds=(0,0)-(2,2)"), buf.String())

	_, err = ReadPolylines(strings.NewReader(`{"type":"FeatureCollection","features":[`), nil)
	test.That(t, err != nil)
}

func TestPolylines(t *testing.T) {
	proj := NewProjection(WGS84)
	test.That(t, proj.Identity())

	pls, err := proj.Polylines(orb.Collection{
		orb.MultiPolygon{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}},
		orb.Ring{{0, 0}, {0, 1}, {1, 1}, {0, 0}},
		orb.MultiPoint{{0, 0}},
	})
	test.Error(t, err)
	test.T(t, len(pls), 2)
	test.T(t, pls[0].Len(), 3)

	_, err = proj.Polylines(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}})
	test.That(t, err != nil)
}

func TestProjection(t *testing.T) {
	proj := NewProjection(32633) // UTM zone 33N
	test.That(t, !proj.Identity())

	q := orb.Point{15.0, 50.0}
	p := proj.Project(q)
	test.That(t, math.Abs(p.X-500000.0) < 1e-3, "central meridian at false easting")
	test.That(t, 5e6 < p.Y && p.Y < 6e6)

	r := proj.Unproject(p)
	test.That(t, math.Abs(r[0]-q[0]) < 1e-7 && math.Abs(r[1]-q[1]) < 1e-7, "round trip")
}

func TestWriteFeatureCollection(t *testing.T) {
	segs := []sweepline.Segment{{Start: sweepline.Point{X: 0, Y: 0}, End: sweepline.Point{X: 1, Y: 1}}, {Start: sweepline.Point{X: 1, Y: 1}, End: sweepline.Point{X: 2, Y: 2}}}
	buf := &bytes.Buffer{}
	test.Error(t, WriteFeatureCollection(buf, SegmentsFeatureCollection(segs, nil)))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	test.Error(t, err)
	test.T(t, len(fc.Features), 2)
	test.T(t, fc.Features[1].Geometry, orb.Geometry(orb.LineString{{1, 1}, {2, 2}}))
	test.T(t, fc.Features[1].Properties["index"], any(1.0))

	buf.Reset()
	test.Error(t, WriteFeatureCollection(buf, PointsFeatureCollection([]sweepline.Point{{X: 1, Y: 1}}, NewProjection(0))))
	fc, err = geojson.UnmarshalFeatureCollection(buf.Bytes())
	test.Error(t, err)
	test.T(t, fc.Features[0].Geometry, orb.Geometry(orb.Point{1, 1}))
}
