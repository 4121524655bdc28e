package poly

import (
	"github.com/pkg/errors"

	"github.com/dkolbly/earclip/geom"
)

// Triangle is a triple of indices into the vertex slice a Polygon was built
// from. B is always the clipped vertex; A and C were its ring neighbors at
// the moment the triangle was built.
type Triangle struct {
	A, B, C int
}

// Real resolves the index triangle against its backing vertices.
func (t Triangle) Real(vertices []geom.Point) geom.Triangle {
	return geom.Triangle{
		A: vertices[t.A],
		B: vertices[t.B],
		C: vertices[t.C],
	}
}

// Polygon tracks the state of a polygon while its ears are clipped off. It
// keeps the ring of surviving vertex ids together with three derived sets:
// convex, reflex, and ear. Every ring vertex is in exactly one of
// {convex, reflex}, and the ear set is a subset of convex. The sets are
// only ever recomputed for a vertex whose neighborhood changed, which is
// what keeps a full triangulation run cheap.
//
// The backing vertex slice is shared, not copied. The caller must keep it
// unchanged for as long as the Polygon is in use.
type Polygon struct {
	vertices []geom.Point
	ring     *ring
	convex   idSet
	reflex   idSet
	ears     idSet
}

// New builds the tracker for the given boundary, which must be in
// counterclockwise order. Every vertex is classified convex or reflex
// against its initial neighbors, and every convex vertex is then tested
// for ear status.
func New(vertices []geom.Point) *Polygon {
	p := &Polygon{
		vertices: vertices,
		ring:     newRing(len(vertices)),
		convex:   make(idSet),
		reflex:   make(idSet),
		ears:     make(idSet),
	}

	for v := range vertices {
		if p.reflexAt(v) {
			p.reflex.Add(v)
		} else {
			p.convex.Add(v)
		}
	}

	// Only convex vertices can be ears, so the initial ear scan skips the
	// reflex set entirely.
	for v := range p.convex {
		if p.IsEar(v, false) {
			p.ears.Add(v)
		}
	}
	return p
}

// TriangleAt returns the triangle formed by v and its two current ring
// neighbors. It fails if v has already been removed or was never part of
// the polygon; that is a caller bug, not a geometric condition.
func (p *Polygon) TriangleAt(v int) (Triangle, error) {
	if !p.ring.Has(v) {
		return Triangle{}, errors.Errorf("vertex %d is not in the ring", v)
	}
	prev, next := p.ring.Neighbors(v)
	return Triangle{A: prev, B: v, C: next}, nil
}

func (p *Polygon) realTriangleAt(v int) geom.Triangle {
	prev, next := p.ring.Neighbors(v)
	return Triangle{A: prev, B: v, C: next}.Real(p.vertices)
}

// reflexAt recomputes v's classification from its current neighbors. A
// collinear triple (zero signed area) counts as convex: it clips as a
// zero-area ear, whereas calling it reflex would let it block its
// neighbors' ears forever and stall the ring.
func (p *Polygon) reflexAt(v int) bool {
	return p.realTriangleAt(v).IsReflex()
}

// IsConvex reports whether v is a convex vertex. Set membership is the
// fast path; on a miss the classification is recomputed from v's current
// neighbors.
func (p *Polygon) IsConvex(v int) bool {
	if p.convex.Has(v) {
		return true
	}
	if !p.ring.Has(v) {
		return false
	}
	return !p.reflexAt(v)
}

// IsReflex reports whether v is a reflex vertex.
func (p *Polygon) IsReflex(v int) bool {
	if p.reflex.Has(v) {
		return true
	}
	if !p.ring.Has(v) {
		return false
	}
	return p.reflexAt(v)
}

// IsEar reports whether v can be clipped: v must be convex, and no reflex
// vertex may lie inside or on the boundary of v's neighbor triangle. A
// vertex inside a candidate ear always implies a reflex vertex inside it,
// so only the reflex set is scanned. The triangle's own
// corners are exempt; a reflex neighbor sits on the boundary by
// construction and does not block the ear.
//
// With preTest set, ear-set membership short-circuits the scan. That is
// only sound when v's neighborhood has not changed since it was last
// classified, so updates always pass false.
func (p *Polygon) IsEar(v int, preTest bool) bool {
	if preTest && p.ears.Has(v) {
		return true
	}
	if !p.ring.Has(v) || p.reflex.Has(v) {
		return false
	}
	prev, next := p.ring.Neighbors(v)
	tri := Triangle{A: prev, B: v, C: next}.Real(p.vertices)
	for r := range p.reflex {
		if r == prev || r == v || r == next {
			continue
		}
		if tri.Contains(p.vertices[r]) {
			return false
		}
	}
	return true
}

// updateVertexConvexity reclassifies v from scratch and reports whether it
// is convex. A vertex that turned reflex is purged from the convex and ear
// sets so the set invariants keep holding; the caller can then skip the
// ear check, since a reflex vertex is never an ear.
func (p *Polygon) updateVertexConvexity(v int) bool {
	if p.reflexAt(v) {
		p.reflex.Add(v)
		p.convex.Remove(v)
		p.ears.Remove(v)
		return false
	}
	p.convex.Add(v)
	p.reflex.Remove(v)
	return true
}

// updateVertexEarness re-runs the full ear test for v and updates the ear
// set accordingly.
func (p *Polygon) updateVertexEarness(v int) {
	if p.IsEar(v, false) {
		p.ears.Add(v)
	} else {
		p.ears.Remove(v)
	}
}

// UpdateVertex reclassifies v after its neighborhood changed: convexity
// first, and only if v came out convex, the ear test. RemoveVertex calls
// this for the two neighbors of every clipped vertex.
func (p *Polygon) UpdateVertex(v int) {
	if p.updateVertexConvexity(v) {
		p.updateVertexEarness(v)
	}
}

// RemoveVertex clips v out of the ring and returns its neighbor triangle.
// Only v's two neighbors have their neighborhood changed by the removal,
// so they are the only vertices reclassified; everything else keeps its
// cached state.
func (p *Polygon) RemoveVertex(v int) (Triangle, error) {
	tri, err := p.TriangleAt(v)
	if err != nil {
		return Triangle{}, err
	}

	p.ring.Remove(v)
	p.convex.Remove(v)
	p.reflex.Remove(v)
	p.ears.Remove(v)

	p.UpdateVertex(tri.A)
	p.UpdateVertex(tri.C)

	return tri, nil
}

// HasEar reports whether any clippable vertex remains.
func (p *Polygon) HasEar() bool {
	return p.ears.Len() > 0
}

// NextEar returns the ear with the smallest id. Which ear is clipped first
// does not affect validity of the result, but a fixed tie-break makes the
// output reproducible. Callers must check HasEar first; an empty ear set
// is an error.
func (p *Polygon) NextEar() (int, error) {
	v, ok := p.ears.Min()
	if !ok {
		return 0, errors.New("ear set is empty")
	}
	return v, nil
}

// Size returns the number of vertices still in the ring.
func (p *Polygon) Size() int {
	return p.ring.Len()
}

// Vertices returns the surviving vertex ids in ring order, starting from
// the smallest surviving id.
func (p *Polygon) Vertices() []int {
	return p.ring.Walk()
}
