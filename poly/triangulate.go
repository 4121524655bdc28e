// Package poly implements ear-clipping triangulation of simple polygons.
//
// The tracker (Polygon) maintains the unclipped vertex ring and its
// convex/reflex/ear classification; Triangulate drives it until only an
// edge remains. Polygons must wind counterclockwise.
package poly

import (
	"github.com/pkg/errors"

	"github.com/dkolbly/earclip/geom"
)

// ErrNonSimple is returned when the ear set empties while more than two
// vertices remain. By the two-ears theorem every simple polygon with more
// than three vertices has at least two ears, so running out of ears means
// the input was not a simple polygon (self-intersecting, clockwise, or
// otherwise degenerate).
var ErrNonSimple = errors.New("polygon is non-simple")

// Triangulate clips ears off the polygon until at most two vertices
// remain, and returns the clipped triangles as index triples into
// vertices. A simple polygon with n >= 3 vertices yields exactly n-2
// triangles; fewer than three vertices yield an empty result. On failure
// no triangles are returned.
func Triangulate(vertices []geom.Point) ([]Triangle, error) {
	p := New(vertices)

	var capacity int
	if len(vertices) > 2 {
		capacity = len(vertices) - 2
	}
	triangles := make([]Triangle, 0, capacity)

	for p.Size() > 2 {
		if !p.HasEar() {
			return nil, errors.Wrapf(ErrNonSimple, "no ear among %d remaining vertices", p.Size())
		}
		ear, err := p.NextEar()
		if err != nil {
			return nil, err
		}
		tri, err := p.RemoveVertex(ear)
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, tri)
	}
	return triangles, nil
}
