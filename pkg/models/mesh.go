// Package models provides mesh data and loaders for the facet pipeline.
package models

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/taigrr/facet/pkg/math3d"
)

var (
	// ErrNormalCount means a mesh has fewer face normals than faces.
	ErrNormalCount = errors.New("fewer face normals than faces")
	// ErrFaceIndexRange means a face references a vertex that does not exist.
	ErrFaceIndexRange = errors.New("face vertex index out of range")
)

// Mesh is an indexed triangle mesh in local space. Vertices are homogeneous
// points (W=1) and FaceNormals homogeneous directions (W=0), one per face.
// A loaded mesh is treated as immutable and may be shared between objects.
type Mesh struct {
	Name        string
	Vertices    []math3d.Vec4
	FaceNormals []math3d.Vec4
	Faces       []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a solid-colored triangle. V lists vertex indices in winding order;
// counter-clockwise seen from the front.
type Face struct {
	Color color.RGBA
	V     [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:        name,
		Vertices:    make([]math3d.Vec4, 0),
		FaceNormals: make([]math3d.Vec4, 0),
		Faces:       make([]Face, 0),
	}
}

// AddVertex appends a local-space point and returns its index.
func (m *Mesh) AddVertex(p math3d.Vec3) int {
	m.Vertices = append(m.Vertices, math3d.V4FromV3(p, 1))
	return len(m.Vertices) - 1
}

// AddFace appends a triangle together with its winding-order normal.
func (m *Mesh) AddFace(c color.RGBA, a, b, d int) {
	m.Faces = append(m.Faces, Face{Color: c, V: [3]int{a, b, d}})
	m.FaceNormals = append(m.FaceNormals, math3d.V4FromV3(m.windingNormal(a, b, d), 0))
}

// AddQuad appends the quad a-b-c-d as two triangles sharing one color.
func (m *Mesh) AddQuad(c color.RGBA, a, b, d, e int) {
	m.AddFace(c, a, b, d)
	m.AddFace(c, a, d, e)
}

func (m *Mesh) windingNormal(a, b, c int) math3d.Vec3 {
	if a >= len(m.Vertices) || b >= len(m.Vertices) || c >= len(m.Vertices) || a < 0 || b < 0 || c < 0 {
		return math3d.Zero3()
	}
	v0 := m.Vertices[a].Vec3()
	edge1 := m.Vertices[b].Vec3().Sub(v0)
	edge2 := m.Vertices[c].Vec3().Sub(v0)
	return edge1.Cross(edge2).Normalize()
}

// CalculateFaceNormals recomputes every face normal from its winding.
func (m *Mesh) CalculateFaceNormals() {
	m.FaceNormals = m.FaceNormals[:0]
	for _, f := range m.Faces {
		n := m.windingNormal(f.V[0], f.V[1], f.V[2])
		m.FaceNormals = append(m.FaceNormals, math3d.V4FromV3(n, 0))
	}
}

// Validate checks the preconditions the per-frame pipeline relies on and
// never re-checks: one normal per face and every index in range.
func (m *Mesh) Validate() error {
	if len(m.FaceNormals) < len(m.Faces) {
		return fmt.Errorf("mesh %q: %w (%d normals, %d faces)", m.Name, ErrNormalCount, len(m.FaceNormals), len(m.Faces))
	}
	for i, f := range m.Faces {
		for _, idx := range f.V {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("mesh %q face %d: %w (index %d, %d vertices)", m.Name, i, ErrFaceIndexRange, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Vec3()
	m.BoundsMax = m.Vertices[0].Vec3()

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Vec3())
		m.BoundsMax = m.BoundsMax.Max(v.Vec3())
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform bakes a matrix into the vertices and normals. Normals are
// renormalized, which is exact for rotation and uniform scale only.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Mul(mat)
	}
	for i := range m.FaceNormals {
		n := m.FaceNormals[i].Mul(mat).Vec3().Normalize()
		m.FaceNormals[i] = math3d.V4FromV3(n, 0)
	}
	m.CalculateBounds()
}

// FitUnit centers the mesh on the origin and scales its largest dimension
// to size.
func (m *Mesh) FitUnit(size float64) {
	m.CalculateBounds()
	s := m.Size()
	maxDim := max(s.X, s.Y, s.Z)
	if maxDim <= 0 {
		return
	}
	k := size / maxDim
	m.Transform(math3d.Translate(m.Center().Negate()).Mul(math3d.ScaleUniform(k)))
}
