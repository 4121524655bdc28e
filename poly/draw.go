package poly

import (
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/dkolbly/earclip/dbg"
	"github.com/dkolbly/earclip/geom"
)

const drawPadding = 20

// Draw renders a triangulation to a PNG: the polygon filled, every
// triangle outlined, vertices labeled by id and triangles by a readable
// name. Intended for eyeballing results, not for production output.
func Draw(vertices []geom.Point, triangles []Triangle, scale float64, path string) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range vertices {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then map the
	// polygon's bounding box into the padded image.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Polygon fill
	if len(vertices) > 0 {
		c.MoveTo(vertices[0].X, vertices[0].Y)
		for _, p := range vertices[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.Fill()
	}

	// Triangle edges
	c.SetLineWidth(2)
	for _, tri := range triangles {
		rt := tri.Real(vertices)
		c.MoveTo(rt.A.X, rt.A.Y)
		c.LineTo(rt.B.X, rt.B.Y)
		c.LineTo(rt.C.X, rt.C.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Labels are drawn unflipped so the text is upright.
	c.Push()
	c.Identity()
	toImage := func(p geom.Point) (float64, float64) {
		x := (p.X-minX)*scale + drawPadding
		y := float64(height) - ((p.Y-minY)*scale + drawPadding)
		return x, y
	}
	c.SetRGB(1, 1, 0)
	for i, p := range vertices {
		x, y := toImage(p)
		c.DrawStringAnchored(strconv.Itoa(i), x, y, 0.5, 0.5)
	}
	c.SetRGB(1, 0.5, 1)
	for i, tri := range triangles {
		rt := tri.Real(vertices)
		centroid := rt.A.Add(rt.B).Add(rt.C).Scale(1.0 / 3.0)
		x, y := toImage(centroid)
		c.DrawStringAnchored(dbg.Name(i), x, y, 0.5, 0.5)
	}
	c.Pop()

	return c.SavePNG(path)
}

// DrawToTerminal renders like Draw and additionally cats the image inline
// for terminals that support it (iTerm2).
func DrawToTerminal(vertices []geom.Point, triangles []Triangle, scale float64, path string) error {
	if err := Draw(vertices, triangles, scale, path); err != nil {
		return err
	}
	return imgcat.CatFile(path, os.Stdout)
}
