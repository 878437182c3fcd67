package render

import (
	"image/color"

	"github.com/taigrr/facet/pkg/math3d"
)

// IsBackFace reports whether a face with the given world normal, containing
// vertex, faces away from eye. Edge-on faces count as back-facing.
func IsBackFace(normal, vertex, eye math3d.Vec3) bool {
	view := vertex.Sub(eye).Normalize()
	return normal.Dot(view) >= 0
}

// LightIntensity returns the flat lighting factor in [0, 1]. A face whose
// normal points against the light direction is fully lit.
func LightIntensity(normal math3d.Vec3, light Light) float64 {
	li := (1 - normal.Dot(light.Direction)) * 0.5
	return clamp01(li)
}

// ShadeColor scales the RGB channels by li, truncating. Alpha is kept.
func ShadeColor(c color.RGBA, li float64) color.RGBA {
	li = clamp01(li)
	return color.RGBA{
		R: uint8(float64(c.R) * li),
		G: uint8(float64(c.G) * li),
		B: uint8(float64(c.B) * li),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
