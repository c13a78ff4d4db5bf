package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/billiards"
	"github.com/osuushi/billiards/dbg"
	"github.com/osuushi/billiards/geometry"
	"github.com/osuushi/billiards/table"
)

// Demo of the billiards engine. It builds a table, runs one orbit, and prints
// the points it visits, one "x y" pair per line. Hyperbolic points are given
// and printed in Poincaré disk coordinates.
//
// By default the table is a regular polygon around the origin. With --stdin,
// the table is read from stdin instead, as newline separated "x y" vertices
// winding anticlockwise.
//
// Every flag can also be set through its BILLIARDS_* environment variable, or
// in a .env file in the working directory.

var (
	geometryName = kingpin.Flag("geometry", "Plane to play in.").Default("affine").Envar("BILLIARDS_GEOMETRY").Enum("affine", "hyperbolic")
	dualityName  = kingpin.Flag("duality", "Play inside or outside the table.").Default("inner").Envar("BILLIARDS_DUALITY").Enum("inner", "outer")
	flavorName   = kingpin.Flag("flavor", "Billiard map to apply.").Default("regular").Envar("BILLIARDS_FLAVOR").Enum("regular", "symplectic")
	steps        = kingpin.Flag("steps", "Number of steps to take.").Short('n').Default("20").Envar("BILLIARDS_STEPS").Int()

	sides  = kingpin.Flag("sides", "Sides of the regular polygon table.").Default("4").Envar("BILLIARDS_SIDES").Int()
	radius = kingpin.Flag("radius", "Circumradius of the regular polygon table.").Default("1").Envar("BILLIARDS_RADIUS").Float64()
	stdin  = kingpin.Flag("stdin", "Read table vertices from stdin.").Envar("BILLIARDS_STDIN").Bool()

	startTime    = kingpin.Flag("time", "Starting boundary time, for inner billiards.").Default("0.1").Envar("BILLIARDS_TIME").Float64()
	startHeading = kingpin.Flag("heading", "Starting heading in radians, for inner billiards.").Default("1").Envar("BILLIARDS_HEADING").Float64()
	startX       = kingpin.Flag("x", "Starting x coordinate, for outer billiards.").Default("2").Envar("BILLIARDS_X").Float64()
	startY       = kingpin.Flag("y", "Starting y coordinate, for outer billiards.").Default("0.3").Envar("BILLIARDS_Y").Float64()

	pngPath = kingpin.Flag("png", "Draw the orbit to this PNG file.").Envar("BILLIARDS_PNG").String()
	show    = kingpin.Flag("show", "Print the orbit as an image to the terminal (iTerm only).").Envar("BILLIARDS_SHOW").Bool()
	scale   = kingpin.Flag("scale", "Pixels per unit when drawing.").Default("200").Envar("BILLIARDS_SCALE").Float64()
	verbose = kingpin.Flag("verbose", "Log every step and dump the engine.").Short('v').Envar("BILLIARDS_VERBOSE").Bool()
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not read .env: %v", err)
	}
	kingpin.Parse()

	if *verbose {
		billiards.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	duality := billiards.Inner
	if *dualityName == "outer" {
		duality = billiards.Outer
	}
	flavor := billiards.Regular
	if *flavorName == "symplectic" {
		flavor = billiards.Symplectic
	}

	var err error
	if *geometryName == "hyperbolic" {
		err = play(geometry.HyperPoint{}, duality, flavor, func(x, y float64) (geometry.HyperPoint, error) {
			return geometry.FromPoincare(complex(x, y))
		})
	} else {
		err = play(geometry.AffinePoint(0), duality, flavor, func(x, y float64) (geometry.AffinePoint, error) {
			return geometry.Affine(x, y), nil
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()).String())
		os.Exit(1)
	}
}

func play[P geometry.Point[P]](origin P, duality billiards.Duality, flavor billiards.Flavor, parse func(x, y float64) (P, error)) error {
	var poly *table.Polygon[P]
	var err error
	if *stdin {
		var vertices []P
		vertices, err = readVertices(os.Stdin, parse)
		if err != nil {
			return err
		}
		poly, err = table.New(vertices)
	} else {
		poly, err = table.RegularPolygon(origin, *sides, *radius)
	}
	if err != nil {
		return errors.Wrap(err, "building table")
	}

	engine, err := billiards.New[P](poly, duality, flavor)
	if err != nil {
		return err
	}

	var start billiards.State = billiards.InnerState{Time: *startTime, Heading: *startHeading}
	if duality == billiards.Outer {
		p, err := parse(*startX, *startY)
		if err != nil {
			return errors.Wrap(err, "starting point")
		}
		start = billiards.OuterState[P]{Point: p}
	}
	if *verbose {
		pretty.Fprintf(os.Stderr, "%# v\n", poly.Vertices())
		pretty.Fprintf(os.Stderr, "%# v\n", start)
	}

	fmt.Fprintln(os.Stderr, aurora.Cyan(fmt.Sprintf("%v %v billiards, %d steps", flavor, duality, *steps)).String())
	points, err := engine.Iterate(start, *steps)
	if err != nil {
		return err
	}
	for _, p := range points {
		z := coordinates(p)
		fmt.Printf("%g %g\n", real(z), imag(z))
	}

	if *pngPath != "" {
		if err := dbg.DrawOrbit(poly.Vertices(), points, *scale, *pngPath); err != nil {
			return err
		}
	}
	if *show {
		return dbg.CatOrbit(poly.Vertices(), points, *scale)
	}
	return nil
}

// Coordinates for output: Poincaré disk coordinates for hyperbolic points
func coordinates[P geometry.Point[P]](p P) complex128 {
	if h, ok := any(p).(geometry.HyperPoint); ok {
		return h.Poincare()
	}
	return p.Projective()
}

func readVertices[P any](in io.Reader, parse func(x, y float64) (P, error)) ([]P, error) {
	var vertices []P
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Errorf("expected \"x y\", got %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "vertex %q", line)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "vertex %q", line)
		}
		p, err := parse(x, y)
		if err != nil {
			return nil, errors.Wrapf(err, "vertex %q", line)
		}
		vertices = append(vertices, p)
	}
	return vertices, errors.Wrap(scanner.Err(), "reading vertices")
}
