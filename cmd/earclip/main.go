package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/dkolbly/earclip/geom"
	"github.com/dkolbly/earclip/poly"
)

// Demo of ear-clipping triangulation. Input is a file of newline separated
// points in the form "x y", winding counterclockwise; without an input
// file, a built-in sample polygon is used. The resulting triangles are
// printed as vertex index triples, and can optionally be rendered to a
// PNG.

var (
	input = kingpin.Arg("input", "File with one \"x y\" point per line (CCW). Uses a built-in sample polygon if omitted.").ExistingFile()
	draw  = kingpin.Flag("draw", "Render the triangulation to this PNG file.").String()
	scale = kingpin.Flag("scale", "Pixels per unit when rendering.").Default("40").Float64()
	cat   = kingpin.Flag("cat", "Also cat the rendered image to the terminal (iTerm2).").Bool()
)

var samplePolygon = []geom.Point{
	{X: 2, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

func main() {
	kingpin.Parse()

	points := samplePolygon
	if *input != "" {
		var err error
		points, err = readPoints(*input)
		if err != nil {
			fail(err)
		}
	}

	triangles, err := poly.Triangulate(points)
	if err != nil {
		fail(err)
	}

	for _, tri := range triangles {
		fmt.Printf("A: %d, B: %d, C: %d\n", tri.A, tri.B, tri.C)
	}

	if *draw != "" {
		if *cat {
			err = poly.DrawToTerminal(points, triangles, *scale, *draw)
		} else {
			err = poly.Draw(points, triangles, *scale, *draw)
		}
		if err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Println(aurora.Red(err))
	os.Exit(1)
}

func readPoints(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points := []geom.Point{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid y value %q: %v", parts[1], err)
	}
	return geom.Point{X: x, Y: y}, nil
}
