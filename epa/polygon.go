package epa

import (
	"github.com/akmonengine/quill/geom"
	"github.com/akmonengine/quill/scalar"
)

// Polygon is the EPA working state: a winding-ordered vertex list that
// grows as the polytope expands toward the Minkowski difference
// boundary. Unlike the fixed 3-slot GJK simplex, it holds arbitrarily
// many vertices.
type Polygon[T scalar.Real[T]] struct {
	vertices []geom.Vec2[T]
}

// newPolygon seeds the polygon from the three vertices of a GJK terminal
// simplex.
func newPolygon[T scalar.Real[T]](a, b, c geom.Vec2[T]) Polygon[T] {
	p := Polygon[T]{vertices: make([]geom.Vec2[T], 0, 8)}
	p.vertices = append(p.vertices, a, b, c)
	return p
}

func (p *Polygon[T]) Len() int {
	return len(p.vertices)
}

func (p *Polygon[T]) At(i int) geom.Vec2[T] {
	return p.vertices[i]
}

// InsertAt places a vertex between index-1 and index, preserving the
// winding order.
func (p *Polygon[T]) InsertAt(index int, vertex geom.Vec2[T]) {
	p.vertices = append(p.vertices, geom.Vec2[T]{})
	copy(p.vertices[index+1:], p.vertices[index:])
	p.vertices[index] = vertex
}
