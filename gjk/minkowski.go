package gjk

import (
	"github.com/akmonengine/quill/geom"
	"github.com/akmonengine/quill/scalar"
)

// MinkowskiDifference is a computed view over the set
// {a - b : a in shapeA, b in shapeB} of two transformed shapes.
// It stores no geometry; two shapes intersect exactly when this set
// contains the origin, which is the property GJK searches for.
type MinkowskiDifference[T scalar.Real[T]] struct {
	ShapeA     geom.Shape[T]
	TransformA geom.Transform2D[T]
	ShapeB     geom.Shape[T]
	TransformB geom.Transform2D[T]
}

// NewMinkowskiDifference pairs two shape/transform pairs.
// Panics on a nil shape.
func NewMinkowskiDifference[T scalar.Real[T]](
	shapeA geom.Shape[T], transformA geom.Transform2D[T],
	shapeB geom.Shape[T], transformB geom.Transform2D[T],
) MinkowskiDifference[T] {
	if shapeA == nil || shapeB == nil {
		panic("gjk: minkowski difference of nil shape")
	}
	return MinkowskiDifference[T]{
		ShapeA: shapeA, TransformA: transformA,
		ShapeB: shapeB, TransformB: transformB,
	}
}

// Support returns the difference's extreme point along direction:
// supportA(direction) - supportB(-direction).
func (m MinkowskiDifference[T]) Support(direction geom.Vec2[T]) geom.Vec2[T] {
	supportA := m.ShapeA.Support(direction, m.TransformA)
	supportB := m.ShapeB.Support(direction.Neg(), m.TransformB)
	return supportA.Sub(supportB)
}
