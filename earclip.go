// An ear-clipping triangulation package for Go.
//
// This package converts a simple polygon, which may be non-convex, into a
// set of triangles indexing the original points. The classic ear-clipping
// algorithm is used, with incremental reclassification so that each
// clipped ear only re-examines its two neighbors.
package earclip

import (
	"github.com/dkolbly/earclip/geom"
	"github.com/dkolbly/earclip/poly"
)

type Point = geom.Point
type Triangle = poly.Triangle

// ErrNonSimple is returned when the input turns out not to be a simple
// polygon (self-intersecting, clockwise, or degenerate).
var ErrNonSimple = poly.ErrNonSimple

// Triangulate a simple polygon into exactly len(points)-2 triangles.
//
// The polygon must be simple and its points must be given in
// counterclockwise order. Each resulting triangle is a triple of indices
// into points. Inputs with fewer than three points yield an empty result.
func Triangulate(points []Point) ([]Triangle, error) {
	return poly.Triangulate(points)
}
