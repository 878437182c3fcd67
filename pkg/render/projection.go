package render

import "github.com/taigrr/facet/pkg/math3d"

// Projection holds the precomputed view-to-clip and unit-cube-to-pixel
// matrices for one output size.
type Projection struct {
	Width, Height int
	FOV           float64 // Vertical field of view in radians
	Near, Far     float64

	projection math3d.Mat4
	screen     math3d.Mat4
}

// NewProjection builds a perspective projection for a width x height pixel
// surface.
func NewProjection(width, height int, fov, near, far float64) *Projection {
	p := &Projection{FOV: fov, Near: near, Far: far}
	p.Resize(width, height)
	return p
}

// Resize recomputes both matrices for a new surface size.
func (p *Projection) Resize(width, height int) {
	p.Width, p.Height = width, height
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	p.projection = math3d.Perspective(p.FOV, aspect, p.Near, p.Far)
	p.screen = math3d.Viewport(float64(width), float64(height))
}

// ProjectionMatrix returns the view-to-clip matrix.
func (p *Projection) ProjectionMatrix() math3d.Mat4 { return p.projection }

// ScreenMatrix returns the unit-cube-to-pixel matrix.
func (p *Projection) ScreenMatrix() math3d.Mat4 { return p.screen }

// HalfWidth is where a unit-cube x of 0 lands on screen.
func (p *Projection) HalfWidth() float64 { return float64(p.Width) / 2 }

// HalfHeight is where a unit-cube y of 0 lands on screen.
func (p *Projection) HalfHeight() float64 { return float64(p.Height) / 2 }
