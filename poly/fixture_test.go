package poly

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/require"

	"github.com/dkolbly/earclip/geom"
)

// This file parses the SVG fixtures and outputs vertex lists. This is not
// a full (or even correct) SVG handler. It parses the SVG, finds whatever
// the first polygon is, and converts that into a CCW vertex slice. If
// anything goes wrong, it bails out.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []geom.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []geom.Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}

	// Ensure that the polygon is CCW
	if geom.IsCW(points) {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}
	return points
}

func TestTriangulateFixtures(t *testing.T) {
	for _, name := range []string{"comb", "star"} {
		name := name
		t.Run(name, func(t *testing.T) {
			vertices := LoadFixture(name)
			triangles, err := Triangulate(vertices)
			require.NoError(t, err)
			assertValidTriangulation(t, vertices, triangles)
		})
	}
}

func TestCombClassification(t *testing.T) {
	vertices := LoadFixture("comb")
	require.Len(t, vertices, 12)
	p := New(vertices)

	// The four tooth roots are the reflex vertices.
	reflexCount := 0
	for v := range vertices {
		if p.IsReflex(v) {
			reflexCount++
		}
	}
	require.Equal(t, 4, reflexCount)
}
