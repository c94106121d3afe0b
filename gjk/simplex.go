package gjk

import (
	"github.com/akmonengine/quill/geom"
	"github.com/akmonengine/quill/scalar"
)

// Simplex2D is the GJK working state: up to three points in the
// Minkowski difference space (a 0-, 1- or 2-simplex).
type Simplex2D[T scalar.Real[T]] struct {
	Points [3]geom.Vec2[T]
	Count  int
}

// NewSimplex2D builds a simplex from the given vertices.
// Panics when given more than three.
func NewSimplex2D[T scalar.Real[T]](vertices ...geom.Vec2[T]) Simplex2D[T] {
	if len(vertices) > 3 {
		panic("gjk: simplex holds at most three points")
	}
	var s Simplex2D[T]
	s.Count = copy(s.Points[:], vertices)
	return s
}

func (s *Simplex2D[T]) Reset() {
	*s = Simplex2D[T]{}
}

// Push appends a vertex. Panics when the simplex is full.
func (s *Simplex2D[T]) Push(point geom.Vec2[T]) {
	if s.Count == len(s.Points) {
		panic("gjk: push on full simplex")
	}
	s.Points[s.Count] = point
	s.Count++
}

// Insert places a vertex at index, shifting later vertices down one
// slot. When the simplex is full the last vertex falls off: inserting at
// index 0 on (a, b, c) yields (new, a, b).
func (s *Simplex2D[T]) Insert(index int, point geom.Vec2[T]) {
	last := s.Count
	if last == len(s.Points) {
		last = len(s.Points) - 1
	} else {
		s.Count++
	}
	for i := last; i > index; i-- {
		s.Points[i] = s.Points[i-1]
	}
	s.Points[index] = point
}

// Vertices returns the live vertices as a slice into the simplex.
func (s *Simplex2D[T]) Vertices() []geom.Vec2[T] {
	return s.Points[:s.Count]
}

// SetEquals reports whether the two simplices contain the same vertices
// regardless of order. Intended for tests.
func (s Simplex2D[T]) SetEquals(other Simplex2D[T]) bool {
	if s.Count != other.Count {
		return false
	}
	var matched [3]bool
	for i := 0; i < s.Count; i++ {
		found := false
		for j := 0; j < other.Count; j++ {
			if !matched[j] && s.Points[i] == other.Points[j] {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
