package geom

import "github.com/akmonengine/quill/scalar"

// Transform2D is an immutable position/rotation/scale triple.
//
// The composite affine matrix is derived on first access and memoized.
// The cache is the only mutable state and is unobservable: equality and
// comparisons use only Position, Rotation and Scale, never the cache,
// and copies that drop it simply recompute.
type Transform2D[T scalar.Real[T]] struct {
	Position Vec2[T]
	Rotation T
	Scale    Vec2[T]

	matrix *Mat32[T]
}

// NewTransform2D builds a transform from position, rotation in radians,
// and a componentwise scale.
func NewTransform2D[T scalar.Real[T]](position Vec2[T], rotation T, scale Vec2[T]) Transform2D[T] {
	return Transform2D[T]{Position: position, Rotation: rotation, Scale: scale}
}

// NewTranslation2D builds a transform with identity rotation and scale.
func NewTranslation2D[T scalar.Real[T]](position Vec2[T]) Transform2D[T] {
	one := scalar.One[T]()
	return Transform2D[T]{Position: position, Scale: Vec2[T]{one, one}}
}

// Matrix returns the composite affine matrix scale * rotation * translation,
// computing and caching it on first call.
func (t *Transform2D[T]) Matrix() Mat32[T] {
	if t.matrix == nil {
		m := CreateScale(t.Scale.X, t.Scale.Y).
			Mul(CreateRotation(t.Rotation)).
			Mul(CreateTranslation(t.Position.X, t.Position.Y))
		t.matrix = &m
	}
	return *t.matrix
}

// Apply transforms a point by the composite matrix.
func (t *Transform2D[T]) Apply(v Vec2[T]) Vec2[T] {
	return t.Matrix().Transform(v)
}

// IsAxisAligned reports whether the transform applies no rotation.
// Axis-aligned transforms are eligible for the rectangle fast paths.
func (t Transform2D[T]) IsAxisAligned() bool {
	var zero T
	return t.Rotation == zero
}

// IsUniformScale reports whether both scale components are equal.
// Uniform scale is required for the circle fast paths, where a single
// world radius must exist.
func (t Transform2D[T]) IsUniformScale() bool {
	return t.Scale.X == t.Scale.Y
}

// Compose combines two transforms by adding positions, adding rotations
// and multiplying scales componentwise.
//
// This is an approximation, not a true affine composition: the result
// ignores how the first rotation reorients the second translation.
// Callers needing rigorous transform chaining should multiply matrices.
func (t Transform2D[T]) Compose(other Transform2D[T]) Transform2D[T] {
	return Transform2D[T]{
		Position: t.Position.Add(other.Position),
		Rotation: t.Rotation.Add(other.Rotation),
		Scale:    Vec2[T]{t.Scale.X.Mul(other.Scale.X), t.Scale.Y.Mul(other.Scale.Y)},
	}
}

// Eq reports field equality of position, rotation and scale.
func (t Transform2D[T]) Eq(other Transform2D[T]) bool {
	return t.Position == other.Position &&
		t.Rotation == other.Rotation &&
		t.Scale == other.Scale
}
