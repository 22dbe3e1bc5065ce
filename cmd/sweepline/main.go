package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweepline"
	"github.com/tdewolff/sweepline/geo"
	"github.com/tdewolff/sweepline/preview"
)

type Subcurves struct {
	Overlapping bool   `desc:"Report overlapping sub-curves once per curve"`
	GeoJSON     string `short:"g" desc:"GeoJSON input file, '-' for stdin"`
	EPSG        int    `short:"e" default:"0" desc:"EPSG code of the planar projection for GeoJSON input"`
	Format      string `short:"f" default:"text" desc:"Output format: text or geojson"`
	Output      string `short:"o" desc:"Output file"`
	Preview     string `short:"p" desc:"Preview image filename (png, svg, pdf)"`
	Verbose     bool   `short:"v" desc:"Log sweep events"`
	Path        string `index:"0" desc:"SVG path data with M, L, H, V, and Z commands"`
}

type Points struct {
	Endpoints bool   `default:"true" desc:"Include curve endpoints"`
	GeoJSON   string `short:"g" desc:"GeoJSON input file, '-' for stdin"`
	EPSG      int    `short:"e" default:"0" desc:"EPSG code of the planar projection for GeoJSON input"`
	Format    string `short:"f" default:"text" desc:"Output format: text or geojson"`
	Output    string `short:"o" desc:"Output file"`
	Preview   string `short:"p" desc:"Preview image filename (png, svg, pdf)"`
	Verbose   bool   `short:"v" desc:"Log sweep events"`
	Path      string `index:"0" desc:"SVG path data with M, L, H, V, and Z commands"`
}

type Intersects struct {
	GeoJSON string `short:"g" desc:"GeoJSON input file, '-' for stdin"`
	EPSG    int    `short:"e" default:"0" desc:"EPSG code of the planar projection for GeoJSON input"`
	Output  string `short:"o" desc:"Output file"`
	Verbose bool   `short:"v" desc:"Log sweep events"`
	Path    string `index:"0" desc:"SVG path data with M, L, H, V, and Z commands"`
}

// input holds the options shared by all commands.
type input struct {
	geoJSON string
	epsg    int
	format  string
	output  string
	verbose bool
	path    string
}

func main() {
	root := argp.NewCmd(&Subcurves{}, "Generalized Bentley-Ottmann sweep line over polylines")
	root.AddCmd(&Subcurves{}, "subcurves", "Maximal non-intersecting sub-curves (default)")
	root.AddCmd(&Points{}, "points", "Intersection points")
	root.AddCmd(&Intersects{}, "intersects", "Test whether any polylines intersect")
	root.Parse()
	root.PrintHelp()
}

func (in input) polylines() ([]*sweepline.Polyline, *geo.Projection, error) {
	if in.verbose {
		sweepline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	proj := geo.NewProjection(in.epsg)
	if in.geoJSON != "" {
		var r io.Reader = os.Stdin
		if in.geoJSON != "-" {
			f, err := os.Open(in.geoJSON)
			if err != nil {
				return nil, nil, err
			}
			defer f.Close()
			r = f
		}
		pls, err := geo.ReadPolylines(r, proj)
		return pls, proj, err
	} else if in.path == "" {
		return nil, nil, argp.ShowUsage
	}
	pls, err := sweepline.ParsePolylines(in.path)
	return pls, proj, err
}

func (in input) write(fn func(io.Writer) error) error {
	if in.format != "text" && in.format != "geojson" {
		return errors.Newf("unknown output format: %s", in.format)
	}
	if in.output == "" || in.output == "-" {
		return fn(os.Stdout)
	}

	f, err := os.Create(in.output)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (cmd *Subcurves) Run() error {
	in := input{cmd.GeoJSON, cmd.EPSG, cmd.Format, cmd.Output, cmd.Verbose, cmd.Path}
	pls, proj, err := in.polylines()
	if err != nil {
		return err
	}

	segs := sweepline.Subcurves(pls, cmd.Overlapping)
	if cmd.Preview != "" {
		if err := preview.Save(cmd.Preview, "Sub-curves", segs, nil); err != nil {
			return err
		}
	}
	return in.write(func(w io.Writer) error {
		if in.format == "geojson" {
			return geo.WriteFeatureCollection(w, geo.SegmentsFeatureCollection(segs, proj))
		}
		for _, seg := range segs {
			fmt.Fprintln(w, seg)
		}
		return nil
	})
}

func (cmd *Points) Run() error {
	in := input{cmd.GeoJSON, cmd.EPSG, cmd.Format, cmd.Output, cmd.Verbose, cmd.Path}
	pls, proj, err := in.polylines()
	if err != nil {
		return err
	}

	ps := sweepline.IntersectionPoints(pls, cmd.Endpoints)
	if cmd.Preview != "" {
		if err := preview.Save(cmd.Preview, "Intersection points", sweepline.Subcurves(pls, false), ps); err != nil {
			return err
		}
	}
	return in.write(func(w io.Writer) error {
		if in.format == "geojson" {
			return geo.WriteFeatureCollection(w, geo.PointsFeatureCollection(ps, proj))
		}
		for _, p := range ps {
			fmt.Fprintln(w, p)
		}
		return nil
	})
}

func (cmd *Intersects) Run() error {
	in := input{cmd.GeoJSON, cmd.EPSG, "text", cmd.Output, cmd.Verbose, cmd.Path}
	pls, _, err := in.polylines()
	if err != nil {
		return err
	}

	intersects := sweepline.Intersects(pls)
	return in.write(func(w io.Writer) error {
		_, err := fmt.Fprintln(w, intersects)
		return err
	})
}
