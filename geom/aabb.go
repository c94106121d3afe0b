package geom

import "github.com/akmonengine/quill/scalar"

// AABB2D is an axis-aligned bounding box given by its min and max corners.
// Min must be componentwise <= Max; construction does not enforce this,
// so callers supply ordered corners or use FromVertices.
type AABB2D[T scalar.Real[T]] struct {
	Min Vec2[T]
	Max Vec2[T]
}

// NewAABB2D builds a box from edge coordinates.
func NewAABB2D[T scalar.Real[T]](left, top, right, bottom T) AABB2D[T] {
	return AABB2D[T]{
		Min: Vec2[T]{left, top},
		Max: Vec2[T]{right, bottom},
	}
}

func (a AABB2D[T]) Left() T   { return a.Min.X }
func (a AABB2D[T]) Top() T    { return a.Min.Y }
func (a AABB2D[T]) Right() T  { return a.Max.X }
func (a AABB2D[T]) Bottom() T { return a.Max.Y }

func (a AABB2D[T]) Width() T  { return a.Max.X.Sub(a.Min.X) }
func (a AABB2D[T]) Height() T { return a.Max.Y.Sub(a.Min.Y) }

func (a AABB2D[T]) Center() Vec2[T] {
	two := scalar.FromInt[T](2)
	return Vec2[T]{
		X: a.Min.X.Add(a.Max.X).Div(two),
		Y: a.Min.Y.Add(a.Max.Y).Div(two),
	}
}

func (a AABB2D[T]) HalfExtents() Vec2[T] {
	two := scalar.FromInt[T](2)
	return Vec2[T]{X: a.Width().Div(two), Y: a.Height().Div(two)}
}

// FromVertices builds the bounding box of a point cloud with a min/max
// scan. Panics on an empty slice: an empty cloud has no box, and an
// inverted placeholder would silently poison later unions.
func FromVertices[T scalar.Real[T]](vertices []Vec2[T]) AABB2D[T] {
	if len(vertices) == 0 {
		panic("geom: FromVertices on empty slice")
	}
	box := AABB2D[T]{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		box.Min.X = scalar.Min(box.Min.X, v.X)
		box.Min.Y = scalar.Min(box.Min.Y, v.Y)
		box.Max.X = scalar.Max(box.Max.X, v.X)
		box.Max.Y = scalar.Max(box.Max.Y, v.Y)
	}
	return box
}

// Transformed computes the bounding box of the transformed box without
// enumerating corners: the center moves through the full transform and
// the half-extent through the absolute value of the linear part.
func (a AABB2D[T]) Transformed(transform Transform2D[T]) AABB2D[T] {
	matrix := transform.Matrix()
	center := matrix.Transform(a.Center())
	half := matrix.AbsLinear().TransformNormal(a.HalfExtents())
	return AABB2D[T]{Min: center.Sub(half), Max: center.Add(half)}
}

// TestOverlap reports whether the boxes overlap. Comparisons are closed:
// boxes sharing only an edge or corner count as overlapping. The same
// convention applies throughout quill, keeping the broad phase
// conservative with respect to the narrow phase.
func (a AABB2D[T]) TestOverlap(other AABB2D[T]) bool {
	return scalar.LessEq(a.Min.X, other.Max.X) &&
		scalar.LessEq(other.Min.X, a.Max.X) &&
		scalar.LessEq(a.Min.Y, other.Max.Y) &&
		scalar.LessEq(other.Min.Y, a.Max.Y)
}

// ContainsPoint reports whether the point lies in the closed box.
func (a AABB2D[T]) ContainsPoint(point Vec2[T]) bool {
	return scalar.LessEq(a.Min.X, point.X) &&
		scalar.LessEq(point.X, a.Max.X) &&
		scalar.LessEq(a.Min.Y, point.Y) &&
		scalar.LessEq(point.Y, a.Max.Y)
}

// Compose returns the union of the two boxes.
func (a AABB2D[T]) Compose(other AABB2D[T]) AABB2D[T] {
	return AABB2D[T]{
		Min: Vec2[T]{
			X: scalar.Min(a.Min.X, other.Min.X),
			Y: scalar.Min(a.Min.Y, other.Min.Y),
		},
		Max: Vec2[T]{
			X: scalar.Max(a.Max.X, other.Max.X),
			Y: scalar.Max(a.Max.Y, other.Max.Y),
		},
	}
}
