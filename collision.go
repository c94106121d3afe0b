// Package quill is a 2D narrow-phase collision core with a uniform-grid
// broad phase.
//
// The payload is the GJK intersection test and the EPA penetration
// solver over convex shapes (points, circles, rectangles), fronted by
// closed-form fast paths for the shape/transform combinations that
// permit them, and a spatial hash that prunes candidate pairs before the
// narrow phase runs.
//
// Everything is generic over scalar.Real: instantiate with scalar.Float
// for ordinary use or scalar.Fixed when downstream simulation needs
// bit-exact determinism across platforms.
package quill

import (
	"github.com/akmonengine/quill/epa"
	"github.com/akmonengine/quill/geom"
	"github.com/akmonengine/quill/gjk"
	"github.com/akmonengine/quill/scalar"
)

// TestCollision reports whether two transformed shapes overlap.
//
// Shape pairs whose transforms permit it are resolved with exact O(1)
// closed-form tests; rotated rectangles, non-uniformly scaled circles and
// every other combination fall through to GJK. Touching counts as
// overlapping throughout. Panics on a nil shape.
func TestCollision[T scalar.Real[T]](
	shapeA geom.Shape[T], transformA geom.Transform2D[T],
	shapeB geom.Shape[T], transformB geom.Transform2D[T],
) bool {
	if shapeA == nil || shapeB == nil {
		panic("quill: test collision with nil shape")
	}
	if result, ok := testFastPath(shapeA, transformA, shapeB, transformB); ok {
		return result
	}
	if result, ok := testFastPath(shapeB, transformB, shapeA, transformA); ok {
		return result
	}
	return gjk.TestCollision(gjk.NewMinkowskiDifference(shapeA, transformA, shapeB, transformB))
}

// FindCollisionSimplex is TestCollision's GJK form: on overlap it also
// returns the terminal simplex that Intersect needs to recover the
// penetration vector. It always runs the full GJK test, never a fast path.
func FindCollisionSimplex[T scalar.Real[T]](
	shapeA geom.Shape[T], transformA geom.Transform2D[T],
	shapeB geom.Shape[T], transformB geom.Transform2D[T],
) (bool, gjk.Simplex2D[T]) {
	return gjk.FindCollisionSimplex(gjk.NewMinkowskiDifference(shapeA, transformA, shapeB, transformB))
}

// Intersect resolves the penetration of two overlapping shapes via EPA,
// returning the minimum translation vector that separates them. The
// simplex must come from FindCollisionSimplex for the same pair.
// The result is an approximation within the convergence epsilon.
func Intersect[T scalar.Real[T]](
	shapeA geom.Shape[T], transformA geom.Transform2D[T],
	shapeB geom.Shape[T], transformB geom.Transform2D[T],
	simplex gjk.Simplex2D[T],
) geom.Vec2[T] {
	return epa.Intersect(gjk.NewMinkowskiDifference(shapeA, transformA, shapeB, transformB), simplex)
}

// testFastPath tries the closed-form tests with shapeA in the leading
// role. The second return value reports whether a fast path applied;
// callers try both argument orders before falling back to GJK.
func testFastPath[T scalar.Real[T]](
	shapeA geom.Shape[T], transformA geom.Transform2D[T],
	shapeB geom.Shape[T], transformB geom.Transform2D[T],
) (bool, bool) {
	switch a := shapeA.(type) {
	case geom.Rectangle[T]:
		if b, isRect := shapeB.(geom.Rectangle[T]); isRect {
			if transformA.IsAxisAligned() && transformB.IsAxisAligned() {
				return a.TransformedAABB(transformA).TestOverlap(b.TransformedAABB(transformB)), true
			}
		}

	case geom.Point[T]:
		if b, isRect := shapeB.(geom.Rectangle[T]); isRect {
			if transformB.IsAxisAligned() {
				return b.TransformedAABB(transformB).ContainsPoint(transformA.Position), true
			}
		}

	case geom.Circle[T]:
		switch b := shapeB.(type) {
		case geom.Circle[T]:
			if transformA.IsUniformScale() && transformB.IsUniformScale() {
				return circlesOverlap(a, transformA, b, transformB), true
			}
		case geom.Point[T]:
			if transformA.IsUniformScale() {
				radius := worldRadius(a, transformA)
				distanceSqr := transformB.Position.Sub(transformA.Position).LenSqr()
				return scalar.LessEq(distanceSqr, radius.Mul(radius)), true
			}
		case geom.Rectangle[T]:
			if transformB.IsAxisAligned() && transformA.IsUniformScale() {
				return circleRectangleOverlap(a, transformA, b, transformB), true
			}
		}
	}
	return false, false
}

// worldRadius is the circle's radius under a uniform scale. The X scale
// is read for both circles of a pair, by convention.
func worldRadius[T scalar.Real[T]](c geom.Circle[T], t geom.Transform2D[T]) T {
	return c.Radius.Mul(t.Scale.X.Abs())
}

func circlesOverlap[T scalar.Real[T]](
	a geom.Circle[T], transformA geom.Transform2D[T],
	b geom.Circle[T], transformB geom.Transform2D[T],
) bool {
	radiusSum := worldRadius(a, transformA).Add(worldRadius(b, transformB))
	distanceSqr := transformB.Position.Sub(transformA.Position).LenSqr()
	return scalar.LessEq(distanceSqr, radiusSum.Mul(radiusSum))
}

// circleRectangleOverlap clamps the circle center to the rectangle's
// world AABB and compares the squared distance to the squared radius,
// avoiding any square root.
func circleRectangleOverlap[T scalar.Real[T]](
	c geom.Circle[T], transformC geom.Transform2D[T],
	r geom.Rectangle[T], transformR geom.Transform2D[T],
) bool {
	aabb := r.TransformedAABB(transformR)
	center := transformC.Position
	closest := geom.Vec2[T]{
		X: scalar.Clamp(center.X, aabb.Min.X, aabb.Max.X),
		Y: scalar.Clamp(center.Y, aabb.Min.Y, aabb.Max.Y),
	}
	radius := worldRadius(c, transformC)
	return scalar.LessEq(closest.Sub(center).LenSqr(), radius.Mul(radius))
}
