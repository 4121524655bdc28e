// Package geom provides the 2D primitives and predicates that ear clipping
// is built on: points, triangles, signed orientation, and an inclusive
// point-in-triangle test.
package geom

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point scaled by a scalar.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Triangle is an ordered triple of points. The vertex order determines the
// sign of its area: counterclockwise is positive.
type Triangle struct {
	A, B, C Point
}

// Sign gives the side of the directed edge p3→p2 that p1 lies on: positive
// on the left, negative on the right, zero on the line.
func Sign(p1, p2, p3 Point) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}

// Det returns twice the signed area of the ordered triple (a, b, c).
func Det(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(b))
}

// Det returns twice the triangle's signed area.
func (t Triangle) Det() float64 {
	return Det(t.A, t.B, t.C)
}

// SignedArea returns the triangle's signed area, positive for
// counterclockwise vertex order.
func (t Triangle) SignedArea() float64 {
	return t.Det() / 2
}

// IsConvex reports whether the triple turns left at B, i.e. whether B is a
// convex vertex of a counterclockwise polygon.
func (t Triangle) IsConvex() bool {
	return t.Det() > 0
}

// IsReflex reports whether the triple turns right at B. IsConvex and
// IsReflex are both false for a collinear triple.
func (t Triangle) IsReflex() bool {
	return t.Det() < 0
}

// Contains reports whether pt lies inside the triangle or on its boundary.
// The test checks that pt is on a consistent side of all three edges, so it
// works for either vertex winding.
func (t Triangle) Contains(pt Point) bool {
	d1 := Sign(pt, t.A, t.B)
	d2 := Sign(pt, t.B, t.C)
	d3 := Sign(pt, t.C, t.A)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// SignedArea returns the shoelace area of the polygon described by points,
// positive if the boundary winds counterclockwise.
func SignedArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.Cross(q)
	}
	return sum / 2
}

// IsCW reports whether the polygon described by points winds clockwise.
func IsCW(points []Point) bool {
	return SignedArea(points) < 0
}
