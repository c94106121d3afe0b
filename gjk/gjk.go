// Package gjk implements the 2D Gilbert-Johnson-Keerthi intersection
// test over a Minkowski difference.
//
// GJK detects whether two convex shapes overlap by testing whether their
// Minkowski difference contains the origin. The algorithm refines a
// simplex of support points toward the origin, converging in a handful
// of iterations; in 2D the simplex never exceeds a triangle.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the
//     Distance Between Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D
//     Environments" (2003)
package gjk

import (
	"github.com/akmonengine/quill/geom"
	"github.com/akmonengine/quill/scalar"
)

// maxIterations bounds the refinement loop. 2D GJK terminates in a few
// iterations for well-formed shapes; the cap only guards against
// oscillation from degenerate input.
const maxIterations = 32

// TestCollision reports whether the Minkowski difference contains the
// origin, i.e. whether the two shapes intersect.
func TestCollision[T scalar.Real[T]](md MinkowskiDifference[T]) bool {
	collision, _ := FindCollisionSimplex(md)
	return collision
}

// FindCollisionSimplex runs the GJK existence test. On collision it
// returns true together with the terminal 2-simplex enclosing the
// origin, which EPA expands into a penetration vector. Without collision
// the returned simplex is empty.
func FindCollisionSimplex[T scalar.Real[T]](md MinkowskiDifference[T]) (bool, Simplex2D[T]) {
	var zero T
	unitX := geom.Vec2[T]{X: scalar.One[T]()}

	// Seed the simplex with supports along +X and -X, the widest span of
	// the difference on one axis.
	a := md.Support(unitX)
	b := md.Support(unitX.Neg())

	ab := b.Sub(a)
	if ab.IsZero() {
		// The difference is a single point; it contains the origin only
		// if that point is the origin (two coincident points, etc.).
		if a.IsZero() {
			return true, NewSimplex2D(a, a, a)
		}
		return false, Simplex2D[T]{}
	}

	// Search perpendicular to the segment, on the side of the origin.
	direction := geom.PerpendicularToward(ab, a.Neg())

	for i := 0; i < maxIterations; i++ {
		c := md.Support(direction)

		// If the new support point does not cross the origin along the
		// search direction, the origin is unreachable: no collision.
		if c.Dot(direction).Less(zero) {
			return false, Simplex2D[T]{}
		}

		// Triangle (a, b, c) with c newest. Test the Voronoi regions of
		// the two edges adjacent to c.
		co := c.Neg()
		ca := a.Sub(c)
		cb := b.Sub(c)

		caPerp := geom.TripleProduct(cb, ca, ca)
		cbPerp := geom.TripleProduct(ca, cb, cb)

		if zero.Less(caPerp.Dot(co)) {
			// Origin beyond edge ca: drop b, search past that edge.
			b = c
			direction = caPerp
			continue
		}
		if zero.Less(cbPerp.Dot(co)) {
			// Origin beyond edge cb: drop a.
			a = c
			direction = cbPerp
			continue
		}

		// Neither edge region claims the origin: the triangle encloses it.
		return true, NewSimplex2D(a, b, c)
	}

	// Degenerate input oscillated without enclosing the origin.
	return false, Simplex2D[T]{}
}
