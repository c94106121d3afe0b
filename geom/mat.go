package geom

import "github.com/akmonengine/quill/scalar"

// Mat32 is a 3x2 affine matrix in row-vector convention: a point
// transforms as [x y 1] * M. Rows one and two are the linear part,
// row three is the translation.
type Mat32[T scalar.Real[T]] struct {
	M11, M12 T
	M21, M22 T
	M31, M32 T
}

// IdentityMat32 returns the identity transform matrix.
func IdentityMat32[T scalar.Real[T]]() Mat32[T] {
	one := scalar.One[T]()
	return Mat32[T]{M11: one, M22: one}
}

// CreateTranslation returns a matrix translating by (x, y).
func CreateTranslation[T scalar.Real[T]](x, y T) Mat32[T] {
	m := IdentityMat32[T]()
	m.M31 = x
	m.M32 = y
	return m
}

// CreateRotation returns a matrix rotating by radians.
func CreateRotation[T scalar.Real[T]](radians T) Mat32[T] {
	sin := radians.Sin()
	cos := radians.Cos()
	return Mat32[T]{
		M11: cos, M12: sin,
		M21: sin.Neg(), M22: cos,
	}
}

// CreateScale returns a matrix scaling by (x, y).
func CreateScale[T scalar.Real[T]](x, y T) Mat32[T] {
	return Mat32[T]{M11: x, M22: y}
}

// Mul returns the matrix product m * other, applying m first.
func (m Mat32[T]) Mul(other Mat32[T]) Mat32[T] {
	return Mat32[T]{
		M11: m.M11.Mul(other.M11).Add(m.M12.Mul(other.M21)),
		M12: m.M11.Mul(other.M12).Add(m.M12.Mul(other.M22)),
		M21: m.M21.Mul(other.M11).Add(m.M22.Mul(other.M21)),
		M22: m.M21.Mul(other.M12).Add(m.M22.Mul(other.M22)),
		M31: m.M31.Mul(other.M11).Add(m.M32.Mul(other.M21)).Add(other.M31),
		M32: m.M31.Mul(other.M12).Add(m.M32.Mul(other.M22)).Add(other.M32),
	}
}

// Transform applies the full affine transform to a point.
func (m Mat32[T]) Transform(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X.Mul(m.M11).Add(v.Y.Mul(m.M21)).Add(m.M31),
		Y: v.X.Mul(m.M12).Add(v.Y.Mul(m.M22)).Add(m.M32),
	}
}

// TransformNormal applies only the linear part, ignoring translation.
func (m Mat32[T]) TransformNormal(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X.Mul(m.M11).Add(v.Y.Mul(m.M21)),
		Y: v.X.Mul(m.M12).Add(v.Y.Mul(m.M22)),
	}
}

// AbsLinear returns the componentwise absolute value of the linear part
// with no translation. Used for the transformed-AABB half-extent trick.
func (m Mat32[T]) AbsLinear() Mat32[T] {
	return Mat32[T]{
		M11: m.M11.Abs(), M12: m.M12.Abs(),
		M21: m.M21.Abs(), M22: m.M22.Abs(),
	}
}

// InvertLinear returns the inverse of the 2x2 linear part with no
// translation. Panics when the linear part is singular.
func (m Mat32[T]) InvertLinear() Mat32[T] {
	det := m.M11.Mul(m.M22).Sub(m.M12.Mul(m.M21))
	var zero T
	if det == zero {
		panic("geom: invert singular matrix")
	}
	return Mat32[T]{
		M11: m.M22.Div(det), M12: m.M12.Neg().Div(det),
		M21: m.M21.Neg().Div(det), M22: m.M11.Div(det),
	}
}
