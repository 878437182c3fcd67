package render

import "github.com/taigrr/facet/pkg/math3d"

// Light is a single directional light in world space.
type Light struct {
	Direction math3d.Vec3 // unit length
}

// NewLight returns a light shining along dir, normalized.
func NewLight(dir math3d.Vec3) Light {
	return Light{Direction: dir.Normalize()}
}
