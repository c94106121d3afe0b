// Package epa implements the 2D Expanding Polytope Algorithm.
//
// EPA runs after GJK has found a simplex enclosing the origin. It grows
// that simplex into a polygon approximating the Minkowski difference
// boundary and reads off the minimum translation vector: the shortest
// push that separates the two shapes.
//
// References:
//   - Van den Bergen: "Proximity Queries and Penetration Depth
//     Computation on 3D Game Objects" (2001)
package epa

import (
	"github.com/akmonengine/quill/geom"
	"github.com/akmonengine/quill/gjk"
	"github.com/akmonengine/quill/scalar"
)

// maxIterations caps polygon expansion. Reaching the cap is not an
// error: the best edge found so far is close enough for real-time use,
// and callers must treat the result as an approximation either way.
const maxIterations = 32

// convergenceTolerance returns the expansion epsilon, 1/10000 in the
// shared numeric scale: once a new support point extends the polygon by
// less than this along the closest edge's normal, that edge lies on the
// difference boundary.
func convergenceTolerance[T scalar.Real[T]]() T {
	return scalar.One[T]().Div(scalar.FromInt[T](10000))
}

// closestEdge describes the polygon edge nearest the origin.
type closestEdge[T scalar.Real[T]] struct {
	distance T
	normal   geom.Vec2[T]
	// index is where a new vertex splits this edge.
	index int
}

// Intersect expands a GJK terminal simplex into the minimum translation
// vector for two overlapping shapes. The vector points from shape A's
// interior outward; moving shape B by it separates the pair.
//
// The simplex must be a full 2-simplex produced by
// gjk.FindCollisionSimplex for the same pair; anything else is a
// programming error and panics.
func Intersect[T scalar.Real[T]](md gjk.MinkowskiDifference[T], simplex gjk.Simplex2D[T]) geom.Vec2[T] {
	if md.ShapeA == nil || md.ShapeB == nil {
		panic("epa: intersect with nil shape")
	}
	if simplex.Count != 3 {
		panic("epa: simplex must contain three points")
	}

	polygon := newPolygon(simplex.Points[0], simplex.Points[1], simplex.Points[2])
	tolerance := convergenceTolerance[T]()

	var edge closestEdge[T]
	for i := 0; i < maxIterations; i++ {
		edge = findClosestEdge(&polygon)

		support := md.Support(edge.normal)
		distance := support.Dot(edge.normal)

		// The support point barely extends past the edge: the edge is on
		// the difference boundary and normal*distance is the MTV.
		if distance.Sub(edge.distance).Less(tolerance) {
			return edge.normal.Mul(edge.distance)
		}

		polygon.InsertAt(edge.index, support)
	}

	// Not converged within the cap; the last closest edge is the best
	// estimate.
	return edge.normal.Mul(edge.distance)
}

// findClosestEdge scans every polygon edge for the one nearest the
// origin, returning its outward normal, distance and insertion index.
func findClosestEdge[T scalar.Real[T]](polygon *Polygon[T]) closestEdge[T] {
	var best closestEdge[T]
	found := false

	for i := 0; i < polygon.Len(); i++ {
		j := (i + 1) % polygon.Len()
		a := polygon.At(i)
		b := polygon.At(j)

		ab := b.Sub(a)
		if ab.IsZero() {
			// Coincident vertices span no edge.
			continue
		}
		// Outward: perpendicular to the edge on the side away from the
		// origin, which the edge vertex itself indicates since the
		// origin is interior.
		normal := geom.TripleProduct(ab, a, ab)
		if normal.IsZero() {
			// Edge line passes through the origin: zero depth, either
			// perpendicular will do.
			normal = ab.Perp()
		}
		length := normal.Len()
		var zero T
		if length == zero {
			// Underflowed in the fixed-point scale; no usable normal.
			continue
		}
		normal = geom.Vec2[T]{X: normal.X.Div(length), Y: normal.Y.Div(length)}
		distance := normal.Dot(a)

		if !found || distance.Less(best.distance) {
			best = closestEdge[T]{distance: distance, normal: normal, index: j}
			found = true
		}
	}

	if !found {
		// Fully degenerate polygon (all vertices coincident): the shapes
		// overlap with no measurable depth.
		return closestEdge[T]{normal: geom.Vec2[T]{X: scalar.One[T]()}}
	}
	return best
}
