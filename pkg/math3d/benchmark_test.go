package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkVec4MulMat4(b *testing.B) {
	m := RotateY(0.5).Mul(Translate(V3(1, 2, 3)))
	v := Point(1, 2, 3)

	for b.Loop() {
		_ = v.Mul(m)
	}
}

func BenchmarkVec4MulDivW(b *testing.B) {
	view := LookAt(V3(0, 0, 10), Zero3(), Up())
	proj := Perspective(1.0, 1.333, 0.1, 100.0)
	v := Point(1, 2, 3)

	for b.Loop() {
		_ = v.Mul(view).Mul(proj).DivW()
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkPerspective(b *testing.B) {
	for b.Loop() {
		_ = Perspective(1.047, 1.333, 0.1, 100.0)
	}
}

func BenchmarkLookAt(b *testing.B) {
	eye := V3(0, 0, 10)
	target := V3(0, 0, 0)
	up := V3(0, 1, 0)

	for b.Loop() {
		_ = LookAt(eye, target, up)
	}
}
