package render

import (
	"github.com/taigrr/facet/pkg/math3d"
)

// Plane is n·p + D = 0 with the normal pointing into the frustum.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

func (p *Plane) normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// Distance returns the signed distance from the plane to point, positive on
// the inside.
func (p Plane) Distance(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Plane indices within a Frustum.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// Frustum is the six world-space planes bounding what a View sees.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustum returns the frustum for a view matrix and projection.
func NewFrustum(viewMatrix math3d.Mat4, proj *Projection) Frustum {
	return FrustumFromViewProj(viewMatrix.Mul(proj.ProjectionMatrix()))
}

// FrustumFromViewProj extracts the planes of a combined view·projection
// matrix (Gribb/Hartmann).
func FrustumFromViewProj(m math3d.Mat4) Frustum {
	// With row vectors, clip component j is the dot product with column j.
	col := func(j int) (math3d.Vec3, float64) {
		c := m.Col(j)
		return c.Vec3(), c.W
	}
	cx, dx := col(0)
	cy, dy := col(1)
	cz, dz := col(2)
	cw, dw := col(3)

	f := Frustum{Planes: [6]Plane{
		FrustumLeft:   {Normal: cw.Add(cx), D: dw + dx},
		FrustumRight:  {Normal: cw.Sub(cx), D: dw - dx},
		FrustumBottom: {Normal: cw.Add(cy), D: dw + dy},
		FrustumTop:    {Normal: cw.Sub(cy), D: dw - dy},
		FrustumNear:   {Normal: cw.Add(cz), D: dw + dz},
		FrustumFar:    {Normal: cw.Sub(cz), D: dw - dz},
	}}
	for i := range f.Planes {
		f.Planes[i].normalize()
	}
	return f
}

// ContainsPoint reports whether p is inside every plane.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for _, pl := range f.Planes {
		if pl.Distance(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectAABB reports whether any part of box may be inside. For each
// plane only the corner furthest along its normal is tested, so boxes near
// frustum corners can pass while fully outside.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, pl := range f.Planes {
		far := math3d.V3(
			pick(pl.Normal.X >= 0, box.Max.X, box.Min.X),
			pick(pl.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			pick(pl.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if pl.Distance(far) < 0 {
			return false
		}
	}
	return true
}

// Sees reports whether obj's world bounds may be visible.
func (f Frustum) Sees(obj *SceneObject) bool {
	return f.IntersectAABB(obj.Bounds())
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// AABB is an axis-aligned box.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// NewAABB creates an AABB from its corners.
func NewAABB(lo, hi math3d.Vec3) AABB {
	return AABB{Min: lo, Max: hi}
}

// Transform returns the box bounding all eight corners after m.
func (b AABB) Transform(m math3d.Mat4) AABB {
	p := m.TransformPoint(b.Min)
	out := AABB{Min: p, Max: p}
	for i := 1; i < 8; i++ {
		c := math3d.V3(
			pick(i&1 != 0, b.Max.X, b.Min.X),
			pick(i&2 != 0, b.Max.Y, b.Min.Y),
			pick(i&4 != 0, b.Max.Z, b.Min.Z),
		)
		p = m.TransformPoint(c)
		out.Min = out.Min.Min(p)
		out.Max = out.Max.Max(p)
	}
	return out
}
