package table

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/osuushi/billiards/geometry"
)

// This file parses the svg fixtures and outputs affine tables. This is not a
// full (or even correct) svg parser. It finds whatever the first polygon is,
// then converts that into an anticlockwise vertex list. If anything goes wrong,
// it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []geometry.AffinePoint {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Fields(pointString)
	points := make([]geometry.AffinePoint, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, geometry.Affine(x, y))
	}

	// Tables wind anticlockwise
	if signedArea(points) < 0 {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}
	return points
}

// Shoelace formula. Positive for anticlockwise polygons.
func signedArea(points []geometry.AffinePoint) float64 {
	var area float64
	for i, p := range points {
		q := points[geometry.CircularIndex(i+1, len(points))]
		area += p.X()*q.Y() - q.X()*p.Y()
	}
	return area / 2
}

func loadTable(name string) *Polygon[geometry.AffinePoint] {
	poly, err := New(LoadFixture(name))
	if err != nil {
		log.Fatalf("Fixture %q is not a valid table: %v", name, err)
	}
	return poly
}
