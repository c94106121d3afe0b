package geom

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/akmonengine/quill/scalar"
)

// Interop with go-gl/mathgl for the float domain. Rendering and
// game-loop code built on mathgl consumes quill transforms through these
// conversions; the fixed-point domain has no float interop by design.

// MglVec2 converts a float vector to mgl32.
func MglVec2(v Vec2[scalar.Float]) mgl32.Vec2 {
	return mgl32.Vec2{float32(v.X), float32(v.Y)}
}

// Vec2FromMgl converts an mgl32 vector to a float vector.
func Vec2FromMgl(v mgl32.Vec2) Vec2[scalar.Float] {
	return Vec2[scalar.Float]{X: scalar.Float(v.X()), Y: scalar.Float(v.Y())}
}

// MglMat3 expands a 3x2 row-vector affine matrix to the column-vector
// mgl32.Mat3 form, so that MglMat3(m).Mul3x1(p) equals m.Transform(p).
func MglMat3(m Mat32[scalar.Float]) mgl32.Mat3 {
	// mgl32.Mat3 literals are column-major.
	return mgl32.Mat3{
		float32(m.M11), float32(m.M12), 0,
		float32(m.M21), float32(m.M22), 0,
		float32(m.M31), float32(m.M32), 1,
	}
}

// MglTransform returns the transform's composite matrix in mgl32 form.
func MglTransform(t Transform2D[scalar.Float]) mgl32.Mat3 {
	return MglMat3(t.Matrix())
}
