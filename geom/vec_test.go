package geom

import (
	"testing"

	"github.com/akmonengine/quill/scalar"
)

func vf(x, y float64) Vec2[scalar.Float] {
	return Vec2[scalar.Float]{X: scalar.Float(x), Y: scalar.Float(y)}
}

func TestVec2Arithmetic(t *testing.T) {
	a := vf(3, 4)
	b := vf(-1, 2)

	if got := a.Add(b); got != vf(2, 6) {
		t.Errorf("Add = %v, want (2, 6)", got)
	}
	if got := a.Sub(b); got != vf(4, 2) {
		t.Errorf("Sub = %v, want (4, 2)", got)
	}
	if got := a.Mul(2); got != vf(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := a.Neg(); got != vf(-3, -4) {
		t.Errorf("Neg = %v, want (-3, -4)", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot = %v, want 5", got)
	}
	if got := a.Cross(b); got != 10 {
		t.Errorf("Cross = %v, want 10", got)
	}
	if got := a.LenSqr(); got != 25 {
		t.Errorf("LenSqr = %v, want 25", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	if got := vf(0, 10).Normalize(); got != vf(0, 1) {
		t.Errorf("Normalize = %v, want (0, 1)", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Normalize of zero vector did not panic")
		}
	}()
	vf(0, 0).Normalize()
}

func TestVec2Lerp(t *testing.T) {
	a := vf(0, 0)
	b := vf(10, -4)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp at 0 = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp at 1 = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != vf(5, -2) {
		t.Errorf("Lerp at 0.5 = %v, want (5, -2)", got)
	}
}

func TestVec2Perp(t *testing.T) {
	// 90 degrees counter-clockwise with Y pointing down.
	if got := vf(1, 0).Perp(); got != vf(0, 1) {
		t.Errorf("Perp = %v, want (0, 1)", got)
	}
	if got := vf(0, 1).Perp(); got != vf(-1, 0) {
		t.Errorf("Perp = %v, want (-1, 0)", got)
	}
}

func TestTripleProduct(t *testing.T) {
	a := vf(1, 0)
	b := vf(0, 1)
	// (a x b) x c = b*(a.c) - a*(b.c)
	got := TripleProduct(a, b, vf(2, 3))
	if got != vf(-3, 2) {
		t.Errorf("TripleProduct = %v, want (-3, 2)", got)
	}
}

func TestPerpendicularToward(t *testing.T) {
	edge := vf(1, 0)

	toward := PerpendicularToward(edge, vf(0, -5))
	if !(toward.Dot(vf(0, -5)) > 0) {
		t.Errorf("perpendicular %v does not point toward target", toward)
	}
	if got := toward.Dot(edge); got != 0 {
		t.Errorf("perpendicular %v not orthogonal to edge, dot = %v", toward, got)
	}

	// Collinear target degenerates the triple product; the fallback is a
	// literal 90-degree rotation.
	fallback := PerpendicularToward(edge, vf(3, 0))
	if fallback != edge.Perp() {
		t.Errorf("collinear fallback = %v, want %v", fallback, edge.Perp())
	}
}
