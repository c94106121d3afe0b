package geom

import "github.com/akmonengine/quill/scalar"

// Shape is the interface implemented by all convex collision shapes.
//
// A shape is an immutable value in local space; a Transform2D places it
// in the world. The support function is the only geometric query GJK and
// EPA need: the farthest point on the transformed shape along a
// direction.
type Shape[T scalar.Real[T]] interface {
	// AABB returns the local-space bounding box.
	AABB() AABB2D[T]
	// TransformedAABB returns the world-space bounding box under the
	// given transform.
	TransformedAABB(transform Transform2D[T]) AABB2D[T]
	// Support returns the farthest world-space point along direction.
	Support(direction Vec2[T], transform Transform2D[T]) Vec2[T]
	// Shapes yields the shape as a single-element sequence. Calling code
	// written against this accessor keeps working if compound shapes are
	// introduced later.
	Shapes() []Shape[T]
}

// Point is a shape with a single vertex at the local origin.
// All points are equal to each other.
type Point[T scalar.Real[T]] struct{}

func (Point[T]) AABB() AABB2D[T] {
	return AABB2D[T]{}
}

func (p Point[T]) TransformedAABB(transform Transform2D[T]) AABB2D[T] {
	return p.AABB().Transformed(transform)
}

// Support returns the transform's translation; a point has only one
// vertex, so the direction is ignored.
func (Point[T]) Support(direction Vec2[T], transform Transform2D[T]) Vec2[T] {
	return transform.Position
}

func (p Point[T]) Shapes() []Shape[T] {
	return []Shape[T]{p}
}

// Circle is a circle of the given radius centered on the local origin.
// The radius must be non-negative.
type Circle[T scalar.Real[T]] struct {
	Radius T
}

func (c Circle[T]) AABB() AABB2D[T] {
	return AABB2D[T]{
		Min: Vec2[T]{c.Radius.Neg(), c.Radius.Neg()},
		Max: Vec2[T]{c.Radius, c.Radius},
	}
}

func (c Circle[T]) TransformedAABB(transform Transform2D[T]) AABB2D[T] {
	return c.AABB().Transformed(transform)
}

// Support normalizes the direction, scales it by the radius and maps the
// result through the full transform. A zero direction has no farthest
// point; the center is returned instead. The same applies to directions
// so small their squared length underflows the fixed-point scale.
func (c Circle[T]) Support(direction Vec2[T], transform Transform2D[T]) Vec2[T] {
	var zero T
	lenSqr := direction.LenSqr()
	if lenSqr == zero {
		return transform.Apply(Vec2[T]{})
	}
	length := lenSqr.Sqrt()
	unit := Vec2[T]{X: direction.X.Div(length), Y: direction.Y.Div(length)}
	return transform.Apply(unit.Mul(c.Radius))
}

func (c Circle[T]) Shapes() []Shape[T] {
	return []Shape[T]{c}
}

// Rectangle is an axis-aligned local-space rectangle given by its
// top-left corner and extent.
type Rectangle[T scalar.Real[T]] struct {
	Left, Top     T
	Width, Height T
}

// NewRectangle builds a rectangle centered on the local origin.
func NewRectangle[T scalar.Real[T]](width, height T) Rectangle[T] {
	two := scalar.FromInt[T](2)
	return Rectangle[T]{
		Left:  width.Div(two).Neg(),
		Top:   height.Div(two).Neg(),
		Width: width, Height: height,
	}
}

func (r Rectangle[T]) Right() T  { return r.Left.Add(r.Width) }
func (r Rectangle[T]) Bottom() T { return r.Top.Add(r.Height) }

func (r Rectangle[T]) TopLeft() Vec2[T] {
	return Vec2[T]{r.Left, r.Top}
}

func (r Rectangle[T]) BottomRight() Vec2[T] {
	return Vec2[T]{r.Right(), r.Bottom()}
}

func (r Rectangle[T]) AABB() AABB2D[T] {
	return AABB2D[T]{Min: r.TopLeft(), Max: r.BottomRight()}
}

func (r Rectangle[T]) TransformedAABB(transform Transform2D[T]) AABB2D[T] {
	return r.AABB().Transformed(transform)
}

// Support maps the query direction into local space with the inverse of
// the transform's linear part, picks the corner matching the direction's
// sign quadrant, and maps it back through the full transform.
// Panics on a zero direction, which selects no quadrant.
func (r Rectangle[T]) Support(direction Vec2[T], transform Transform2D[T]) Vec2[T] {
	if direction.IsZero() {
		panic("geom: rectangle support with zero direction")
	}
	var zero T
	local := transform.Matrix().InvertLinear().TransformNormal(direction)

	var corner Vec2[T]
	switch {
	case !local.X.Less(zero) && !local.Y.Less(zero):
		corner = r.BottomRight()
	case !local.X.Less(zero):
		corner = Vec2[T]{r.Right(), r.Top}
	case !local.Y.Less(zero):
		corner = Vec2[T]{r.Left, r.Bottom()}
	default:
		corner = r.TopLeft()
	}
	return transform.Apply(corner)
}

func (r Rectangle[T]) Shapes() []Shape[T] {
	return []Shape[T]{r}
}
