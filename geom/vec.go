// Package geom provides quill's 2D geometric primitives: vectors, 3x2
// affine matrices, transforms, axis-aligned bounding boxes and the convex
// shapes the narrow phase operates on.
//
// Every type is generic over scalar.Real, so the same code serves the
// float and the deterministic fixed-point domains. The Y axis points
// downward by convention: Top is numerically smaller than Bottom.
package geom

import "github.com/akmonengine/quill/scalar"

// Vec2 is a 2D vector.
type Vec2[T scalar.Real[T]] struct {
	X, Y T
}

func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X.Add(other.X), v.Y.Add(other.Y)}
}

func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X.Sub(other.X), v.Y.Sub(other.Y)}
}

// Mul scales the vector by c.
func (v Vec2[T]) Mul(c T) Vec2[T] {
	return Vec2[T]{v.X.Mul(c), v.Y.Mul(c)}
}

func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{v.X.Neg(), v.Y.Neg()}
}

func (v Vec2[T]) Dot(other Vec2[T]) T {
	return v.X.Mul(other.X).Add(v.Y.Mul(other.Y))
}

// Cross returns the z component of the 3D cross product of the two
// vectors embedded in the z=0 plane.
func (v Vec2[T]) Cross(other Vec2[T]) T {
	return v.X.Mul(other.Y).Sub(v.Y.Mul(other.X))
}

func (v Vec2[T]) LenSqr() T {
	return v.Dot(v)
}

func (v Vec2[T]) Len() T {
	return v.LenSqr().Sqrt()
}

// Normalize returns the unit vector in v's direction.
// Panics on the zero vector.
func (v Vec2[T]) Normalize() Vec2[T] {
	length := v.Len()
	var zero T
	if length == zero {
		panic("geom: normalize zero-length vector")
	}
	return Vec2[T]{v.X.Div(length), v.Y.Div(length)}
}

// Lerp interpolates linearly from v to other; t=0 yields v, t=1 yields
// other. t is not clamped.
func (v Vec2[T]) Lerp(other Vec2[T], t T) Vec2[T] {
	return v.Add(other.Sub(v).Mul(t))
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{v.Y.Neg(), v.X}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2[T]) IsZero() bool {
	var zero Vec2[T]
	return v == zero
}

// TripleProduct computes (a x b) x c for 2D vectors embedded in the z=0
// plane, which stays in the plane: b*(a.c) - a*(b.c). GJK and EPA use it
// to derive a perpendicular on a chosen side of an edge.
func TripleProduct[T scalar.Real[T]](a, b, c Vec2[T]) Vec2[T] {
	return b.Mul(a.Dot(c)).Sub(a.Mul(b.Dot(c)))
}

// PerpendicularToward returns a vector perpendicular to v on the side of
// target. When v and target are collinear the triple product degenerates
// to zero; the fallback is a literal 90-degree rotation of v.
func PerpendicularToward[T scalar.Real[T]](v, target Vec2[T]) Vec2[T] {
	perp := TripleProduct(v, target, v)
	if perp.IsZero() {
		return v.Perp()
	}
	return perp
}
