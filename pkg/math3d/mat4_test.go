package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vec4Near(a, b Vec4) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Z-b.Z) < eps && math.Abs(a.W-b.W) < eps
}

func TestTranslateRowVector(t *testing.T) {
	got := Point(1, 2, 3).Mul(Translate(V3(10, 20, 30)))
	want := Point(11, 22, 33)
	if !vec4Near(got, want) {
		t.Errorf("point · translate = %v, want %v", got, want)
	}

	// Directions ignore translation.
	dir := Direction(0, 0, 1).Mul(Translate(V3(10, 20, 30)))
	if !vec4Near(dir, Direction(0, 0, 1)) {
		t.Errorf("direction · translate = %v, want unchanged", dir)
	}
}

func TestMulAppliesLeftFirst(t *testing.T) {
	// Rotate 90° about Y, then translate along X.
	m := RotateY(math.Pi / 2).Mul(Translate(V3(5, 0, 0)))
	got := Point(1, 0, 0).Mul(m)

	// RotateY(90°) sends +X to -Z; then +5 on X.
	want := Point(5, 0, -1)
	if !vec4Near(got, want) {
		t.Errorf("v·R·T = %v, want %v", got, want)
	}

	// Reversed order translates first.
	rev := Point(1, 0, 0).Mul(Translate(V3(5, 0, 0)).Mul(RotateY(math.Pi / 2)))
	if !vec4Near(rev, Point(0, 0, -6)) {
		t.Errorf("v·T·R = %v, want (0,0,-6,1)", rev)
	}
}

func TestMulAssociatesWithVectorProduct(t *testing.T) {
	a := RotateX(0.3).Mul(Translate(V3(1, -2, 3)))
	b := RotateZ(-0.7).Mul(ScaleUniform(2))
	v := Point(0.5, 1.5, -2)

	got := v.Mul(a).Mul(b)
	want := v.Mul(a.Mul(b))
	if !vec4Near(got, want) {
		t.Errorf("(v·a)·b = %v, v·(a·b) = %v", got, want)
	}
}

func TestTransposeRowCol(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	if m.Row(1) != V4(5, 6, 7, 8) {
		t.Errorf("Row(1) = %v", m.Row(1))
	}
	if m.Col(1) != V4(2, 6, 10, 14) {
		t.Errorf("Col(1) = %v", m.Col(1))
	}
	if m.Transpose().Row(1) != m.Col(1) {
		t.Error("transpose should swap rows and columns")
	}
	if m.Get(2, 3) != 12 {
		t.Errorf("Get(2,3) = %v, want 12", m.Get(2, 3))
	}
	m.Set(2, 3, 99)
	if m[11] != 99 {
		t.Errorf("Set(2,3) wrote %v at index 11", m[11])
	}
}

func TestLookAtPutsTargetOnNegativeZ(t *testing.T) {
	view := LookAt(V3(0, 0, -5), Zero3(), Up())
	got := Point(0, 0, 0).Mul(view)
	if !vec4Near(got, Point(0, 0, -5)) {
		t.Errorf("target in view space = %v, want (0,0,-5,1)", got)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := 0.5, 50.0
	proj := Perspective(math.Pi/3, 1, near, far)

	tests := []struct {
		name string
		z    float64
		ndc  float64
	}{
		{"near plane", -near, -1},
		{"far plane", -far, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clip := Point(0, 0, tc.z).Mul(proj)
			if math.Abs(clip.W-(-tc.z)) > eps {
				t.Errorf("w = %v, want %v", clip.W, -tc.z)
			}
			ndc := clip.DivW()
			if math.Abs(ndc.Z-tc.ndc) > 1e-9 {
				t.Errorf("ndc z = %v, want %v", ndc.Z, tc.ndc)
			}
			if ndc.W != 1 {
				t.Errorf("w after divide = %v, want 1", ndc.W)
			}
		})
	}
}

func TestViewportMapsZeroToHalfDimensions(t *testing.T) {
	vp := Viewport(640, 480)

	tests := []struct {
		name string
		in   Vec4
		want Vec2
	}{
		{"center", Point(0, 0, 0), V2(320, 240)},
		{"top left", Point(-1, 1, 0), V2(0, 0)},
		{"bottom right", Point(1, -1, 0), V2(640, 480)},
		{"x zeroed", Point(0, 0.5, 0), V2(320, 120)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Mul(vp).XY(); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTransformPointAndDir(t *testing.T) {
	m := TRS(V3(1, 2, 3), RotateZ(math.Pi/2), V3(2, 2, 2))

	p := m.TransformPoint(V3(1, 0, 0))
	// scale → (2,0,0); rotZ(90°) → (0,2,0); translate → (1,4,3)
	if p.Distance(V3(1, 4, 3)) > 1e-9 {
		t.Errorf("TransformPoint = %v, want (1,4,3)", p)
	}

	d := m.TransformDir(V3(1, 0, 0))
	if d.Distance(V3(0, 2, 0)) > 1e-9 {
		t.Errorf("TransformDir = %v, want (0,2,0)", d)
	}
}
