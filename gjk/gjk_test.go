package gjk

import (
	"testing"

	"github.com/akmonengine/quill/geom"
	"github.com/akmonengine/quill/scalar"
)

func circleAt[T scalar.Real[T]](x, y, radius int) (geom.Shape[T], geom.Transform2D[T]) {
	shape := geom.Circle[T]{Radius: scalar.FromInt[T](radius)}
	transform := geom.NewTranslation2D(geom.Vec2[T]{
		X: scalar.FromInt[T](x), Y: scalar.FromInt[T](y),
	})
	return shape, transform
}

func rectAt[T scalar.Real[T]](x, y, w, h int) (geom.Shape[T], geom.Transform2D[T]) {
	shape := geom.Rectangle[T]{
		Left: scalar.Zero[T](), Top: scalar.Zero[T](),
		Width: scalar.FromInt[T](w), Height: scalar.FromInt[T](h),
	}
	transform := geom.NewTranslation2D(geom.Vec2[T]{
		X: scalar.FromInt[T](x), Y: scalar.FromInt[T](y),
	})
	return shape, transform
}

func testCollisionCases[T scalar.Real[T]](t *testing.T) {
	t.Helper()

	circleA, transformA := circleAt[T](0, 0, 5)
	circleB, transformB := circleAt[T](8, 0, 5)
	circleFar, transformFar := circleAt[T](20, 20, 5)

	rectA, rectTransformA := rectAt[T](0, 0, 10, 10)
	rectB, rectTransformB := rectAt[T](5, 5, 10, 10)
	rectFar, rectTransformFar := rectAt[T](20, 20, 10, 10)

	cases := []struct {
		name       string
		shapeA     geom.Shape[T]
		transformA geom.Transform2D[T]
		shapeB     geom.Shape[T]
		transformB geom.Transform2D[T]
		want       bool
	}{
		{"overlapping circles", circleA, transformA, circleB, transformB, true},
		{"distant circles", circleA, transformA, circleFar, transformFar, false},
		{"overlapping rectangles", rectA, rectTransformA, rectB, rectTransformB, true},
		{"distant rectangles", rectA, rectTransformA, rectFar, rectTransformFar, false},
		{"circle inside rectangle", circleA, transformA, rectA, rectTransformA, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			md := NewMinkowskiDifference(c.shapeA, c.transformA, c.shapeB, c.transformB)
			if got := TestCollision(md); got != c.want {
				t.Errorf("TestCollision = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCollisionFloat(t *testing.T) {
	testCollisionCases[scalar.Float](t)
}

func TestCollisionFixed(t *testing.T) {
	testCollisionCases[scalar.Fixed](t)
}

func TestCollisionRotatedRectangles(t *testing.T) {
	// Two 10x10 rectangles centered 12 apart on X do not overlap while
	// axis-aligned, but rotating one 45 degrees extends its reach to
	// 5*sqrt(2) > 7, producing an overlap.
	shape := geom.NewRectangle[scalar.Float](10, 10)
	left := geom.NewTranslation2D(vf(0, 0))
	right := geom.NewTransform2D(vf(12, 0), 0, vf(1, 1))

	md := NewMinkowskiDifference[scalar.Float](shape, left, shape, right)
	if TestCollision(md) {
		t.Fatal("axis-aligned rectangles 12 apart should not collide")
	}

	rotated := geom.NewTransform2D(vf(12, 0), scalar.Float(0.785398), vf(1, 1))
	md = NewMinkowskiDifference[scalar.Float](shape, left, shape, rotated)
	if !TestCollision(md) {
		t.Fatal("rotated rectangle should reach the left one")
	}
}

func TestFindCollisionSimplexEnclosesOrigin(t *testing.T) {
	shapeA, transformA := circleAt[scalar.Float](0, 0, 5)
	shapeB, transformB := circleAt[scalar.Float](8, 0, 5)

	md := NewMinkowskiDifference(shapeA, transformA, shapeB, transformB)
	collision, simplex := FindCollisionSimplex(md)
	if !collision {
		t.Fatal("expected collision")
	}
	if simplex.Count != 3 {
		t.Fatalf("simplex Count = %d, want 3", simplex.Count)
	}

	// The terminal triangle must enclose the origin: the origin lies on
	// the same side of every edge, walking the winding.
	a, b, c := simplex.Points[0], simplex.Points[1], simplex.Points[2]
	ab := b.Sub(a).Cross(a.Neg())
	bc := c.Sub(b).Cross(b.Neg())
	ca := a.Sub(c).Cross(c.Neg())
	if !(ab >= 0 && bc >= 0 && ca >= 0) && !(ab <= 0 && bc <= 0 && ca <= 0) {
		t.Errorf("terminal simplex %v does not enclose the origin", simplex.Points)
	}
}

func TestFindCollisionSimplexMiss(t *testing.T) {
	shapeA, transformA := circleAt[scalar.Float](0, 0, 2)
	shapeB, transformB := circleAt[scalar.Float](10, 0, 2)

	collision, simplex := FindCollisionSimplex(NewMinkowskiDifference(shapeA, transformA, shapeB, transformB))
	if collision {
		t.Fatal("expected no collision")
	}
	if simplex.Count != 0 {
		t.Errorf("miss should return an empty simplex, got %d points", simplex.Count)
	}
}

func TestCollisionCoincidentPoints(t *testing.T) {
	point := geom.Point[scalar.Float]{}
	at := geom.NewTranslation2D(vf(3, 3))
	elsewhere := geom.NewTranslation2D(vf(4, 3))

	if !TestCollision(NewMinkowskiDifference[scalar.Float](point, at, point, at)) {
		t.Error("coincident points should collide")
	}
	if TestCollision(NewMinkowskiDifference[scalar.Float](point, at, point, elsewhere)) {
		t.Error("distinct points should not collide")
	}
}

func TestMinkowskiSupport(t *testing.T) {
	shapeA, transformA := circleAt[scalar.Float](0, 0, 5)
	shapeB, transformB := circleAt[scalar.Float](8, 0, 3)
	md := NewMinkowskiDifference(shapeA, transformA, shapeB, transformB)

	// support_A(+X) - support_B(-X) = (5, 0) - (5, 0) = (0, 0)
	if got := md.Support(vf(1, 0)); got != vf(0, 0) {
		t.Errorf("Support(+X) = %v, want (0, 0)", got)
	}
	// support_A(-X) - support_B(+X) = (-5, 0) - (11, 0) = (-16, 0)
	if got := md.Support(vf(-1, 0)); got != vf(-16, 0) {
		t.Errorf("Support(-X) = %v, want (-16, 0)", got)
	}
}

func TestMinkowskiNilShapePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("nil shape did not panic")
		}
	}()
	transform := geom.NewTranslation2D(vf(0, 0))
	NewMinkowskiDifference[scalar.Float](nil, transform, geom.Point[scalar.Float]{}, transform)
}
