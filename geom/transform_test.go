package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/akmonengine/quill/scalar"
)

func TestTransformApplyTranslation(t *testing.T) {
	transform := NewTranslation2D(vf(10, -5))
	if got := transform.Apply(vf(1, 2)); got != vf(11, -3) {
		t.Errorf("Apply = %v, want (11, -3)", got)
	}
	if got := transform.Position; got != vf(10, -5) {
		t.Errorf("Position = %v, want (10, -5)", got)
	}
}

func TestTransformApplyRotation(t *testing.T) {
	quarter := scalar.Float(math.Pi / 2)
	transform := NewTransform2D(vf(0, 0), quarter, vf(1, 1))

	got := transform.Apply(vf(1, 0))
	if math.Abs(float64(got.X)) > 1e-6 || math.Abs(float64(got.Y-1)) > 1e-6 {
		t.Errorf("quarter turn of (1, 0) = %v, want (0, 1)", got)
	}
}

func TestTransformApplyScale(t *testing.T) {
	transform := NewTransform2D(vf(0, 0), 0, vf(2, 3))
	if got := transform.Apply(vf(1, 1)); got != vf(2, 3) {
		t.Errorf("Apply = %v, want (2, 3)", got)
	}
}

// The hand-rolled generic affine pipeline must agree with mathgl's,
// which rendering code consumes through the interop conversions.
func TestTransformMatrixMatchesMgl(t *testing.T) {
	cases := []struct {
		name                string
		px, py, rot, sx, sy float32
	}{
		{"identity", 0, 0, 0, 1, 1},
		{"translation", 12, -7, 0, 1, 1},
		{"rotation", 0, 0, 1.2, 1, 1},
		{"scale", 0, 0, 0, 2, 0.5},
		{"combined", 3, 4, -0.7, 1.5, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			transform := NewTransform2D(
				vf(float64(c.px), float64(c.py)),
				scalar.Float(c.rot),
				vf(float64(c.sx), float64(c.sy)),
			)
			got := MglTransform(transform)

			want := mgl32.Translate2D(c.px, c.py).
				Mul3(mgl32.HomogRotate2D(c.rot)).
				Mul3(mgl32.Scale2D(c.sx, c.sy))

			if !got.ApproxEqualThreshold(want, 1e-5) {
				t.Errorf("matrix mismatch:\ngot  %v\nwant %v", got, want)
			}
		})
	}
}

func TestMglVecRoundtrip(t *testing.T) {
	v := vf(3.5, -2.25)
	if got := Vec2FromMgl(MglVec2(v)); got != v {
		t.Errorf("roundtrip = %v, want %v", got, v)
	}
}

func TestTransformPredicates(t *testing.T) {
	aligned := NewTranslation2D(vf(1, 1))
	if !aligned.IsAxisAligned() {
		t.Error("translation-only transform should be axis-aligned")
	}
	if !aligned.IsUniformScale() {
		t.Error("translation-only transform should be uniform-scale")
	}

	rotated := NewTransform2D(vf(0, 0), 0.5, vf(1, 1))
	if rotated.IsAxisAligned() {
		t.Error("rotated transform should not be axis-aligned")
	}

	stretched := NewTransform2D(vf(0, 0), 0, vf(2, 1))
	if stretched.IsUniformScale() {
		t.Error("stretched transform should not be uniform-scale")
	}
}

// Compose is additive by design: positions add, rotations add, scales
// multiply componentwise. Not a true affine composition.
func TestTransformCompose(t *testing.T) {
	a := NewTransform2D(vf(1, 2), 0.25, vf(2, 2))
	b := NewTransform2D(vf(10, 20), 0.5, vf(3, 0.5))

	got := a.Compose(b)
	if got.Position != vf(11, 22) {
		t.Errorf("composed position = %v, want (11, 22)", got.Position)
	}
	if got.Rotation != 0.75 {
		t.Errorf("composed rotation = %v, want 0.75", got.Rotation)
	}
	if got.Scale != vf(6, 1) {
		t.Errorf("composed scale = %v, want (6, 1)", got.Scale)
	}
}

func TestTransformEqIgnoresMatrixCache(t *testing.T) {
	a := NewTransform2D(vf(5, 5), 1, vf(1, 1))
	b := NewTransform2D(vf(5, 5), 1, vf(1, 1))

	a.Matrix() // populate a's cache only

	if !a.Eq(b) {
		t.Error("transforms with equal fields should be equal regardless of cache")
	}
}

func TestMatrixInvertLinear(t *testing.T) {
	m := CreateRotation(scalar.Float(0.8)).Mul(CreateScale(scalar.Float(2), scalar.Float(3)))
	inv := m.InvertLinear()

	v := vf(4, -1)
	back := inv.TransformNormal(m.TransformNormal(v))
	if math.Abs(float64(back.X-v.X)) > 1e-5 || math.Abs(float64(back.Y-v.Y)) > 1e-5 {
		t.Errorf("inverse roundtrip = %v, want %v", back, v)
	}

	defer func() {
		if recover() == nil {
			t.Error("InvertLinear of singular matrix did not panic")
		}
	}()
	CreateScale(scalar.Float(0), scalar.Float(1)).InvertLinear()
}
