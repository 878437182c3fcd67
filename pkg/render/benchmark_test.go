package render

import (
	"math"
	"math/rand"
	"testing"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

// BenchmarkFrustumExtract benchmarks frustum plane extraction from a
// view-projection matrix.
func BenchmarkFrustumExtract(b *testing.B) {
	proj := math3d.Perspective(math.Pi/3, 16.0/9.0, 0.1, 1000.0)
	view := math3d.LookAt(math3d.V3(0, 10, 20), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))
	viewProj := view.Mul(proj)

	for b.Loop() {
		_ = FrustumFromViewProj(viewProj)
	}
}

// BenchmarkAABBIntersection benchmarks AABB vs frustum intersection test.
func BenchmarkAABBIntersection(b *testing.B) {
	frustum := FrustumFromViewProj(math3d.Perspective(math.Pi/3, 16.0/9.0, 0.1, 100.0))

	b.Run("visible", func(b *testing.B) {
		box := NewAABB(math3d.V3(-1, -1, -15), math3d.V3(1, 1, -5))
		for b.Loop() {
			_ = frustum.IntersectAABB(box)
		}
	})

	b.Run("culled", func(b *testing.B) {
		box := NewAABB(math3d.V3(-1, -1, 5), math3d.V3(1, 1, 15))
		for b.Loop() {
			_ = frustum.IntersectAABB(box)
		}
	})
}

// BenchmarkRunFrame draws 100 cubes, half of them behind the camera, with
// and without the frustum pre-cull.
func BenchmarkRunFrame(b *testing.B) {
	fb := NewFramebuffer(160, 120)
	proj := NewProjection(fb.Width, fb.Height, math.Pi/3, 0.1, 100)
	cam := NewCamera(math3d.V3(0, 10, 20))
	cam.LookAt(math3d.Zero3())
	light := NewLight(math3d.V3(-0.5, -1, -0.3))
	cube := models.Cube(2, RGB(100, 150, 200), RGB(200, 120, 80))

	rng := rand.New(rand.NewSource(42))
	objects := make([]*SceneObject, 100)
	for i := range objects {
		var z float64
		if i%2 == 0 {
			z = rng.Float64()*30 - 40 // in front of the camera
		} else {
			z = rng.Float64()*20 + 25 // behind it
		}
		obj := NewSceneObject("cube", cube)
		obj.WorldMatrix = math3d.Translate(math3d.V3(rng.Float64()*40-20, rng.Float64()*10, z))
		objects[i] = obj
	}

	for _, cull := range []bool{true, false} {
		name := "without_culling"
		if cull {
			name = "with_culling"
		}
		b.Run(name, func(b *testing.B) {
			d := NewDisplayLists(fb, proj, WithFrustumCull(cull))
			for i, obj := range objects {
				_ = d.Register(obj, Modes()[i%int(numModes)])
			}
			for b.Loop() {
				fb.Clear(ColorBlack)
				d.RunFrame(cam, light)
			}
		})
	}
}
