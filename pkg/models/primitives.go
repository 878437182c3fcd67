package models

import (
	"image/color"

	"github.com/taigrr/facet/pkg/math3d"
)

// DefaultColor is used by the builders when no colors are given.
var DefaultColor = color.RGBA{200, 200, 200, 255}

// palette cycles through the given colors, falling back to DefaultColor.
func palette(colors []color.RGBA) func(i int) color.RGBA {
	return func(i int) color.RGBA {
		if len(colors) == 0 {
			return DefaultColor
		}
		return colors[i%len(colors)]
	}
}

// Triangle builds a single triangle of the given size in the XY plane,
// facing +Z.
func Triangle(size float64, c color.RGBA) *Mesh {
	h := size / 2
	m := NewMesh("triangle")
	a := m.AddVertex(math3d.V3(-h, -h, 0))
	b := m.AddVertex(math3d.V3(h, -h, 0))
	d := m.AddVertex(math3d.V3(0, h, 0))
	m.AddFace(c, a, b, d)
	m.CalculateBounds()
	return m
}

// Quad builds a square of the given size in the XY plane, facing +Z.
func Quad(size float64, c color.RGBA) *Mesh {
	h := size / 2
	m := NewMesh("quad")
	a := m.AddVertex(math3d.V3(-h, -h, 0))
	b := m.AddVertex(math3d.V3(h, -h, 0))
	d := m.AddVertex(math3d.V3(h, h, 0))
	e := m.AddVertex(math3d.V3(-h, h, 0))
	m.AddQuad(c, a, b, d, e)
	m.CalculateBounds()
	return m
}

// Cube builds an axis-aligned cube centered on the origin with outward
// normals. Colors are assigned per side, cycling.
func Cube(size float64, colors ...color.RGBA) *Mesh {
	h := size / 2
	m := NewMesh("cube")

	corners := [8]math3d.Vec3{
		{X: -h, Y: -h, Z: -h}, // 0: bottom-left-back
		{X: h, Y: -h, Z: -h},  // 1: bottom-right-back
		{X: h, Y: h, Z: -h},   // 2: top-right-back
		{X: -h, Y: h, Z: -h},  // 3: top-left-back
		{X: -h, Y: -h, Z: h},  // 4: bottom-left-front
		{X: h, Y: -h, Z: h},   // 5: bottom-right-front
		{X: h, Y: h, Z: h},    // 6: top-right-front
		{X: -h, Y: h, Z: h},   // 7: top-left-front
	}
	for _, c := range corners {
		m.AddVertex(c)
	}

	// Counter-clockwise seen from outside.
	sides := [6][4]int{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{7, 6, 2, 3}, // +Y
		{0, 1, 5, 4}, // -Y
	}
	col := palette(colors)
	for i, s := range sides {
		m.AddQuad(col(i), s[0], s[1], s[2], s[3])
	}

	m.CalculateBounds()
	return m
}

// Tetrahedron builds a regular tetrahedron inscribed in a cube of the given
// size, centered on the origin with outward normals.
func Tetrahedron(size float64, colors ...color.RGBA) *Mesh {
	h := size / 2
	m := NewMesh("tetra")
	m.AddVertex(math3d.V3(h, h, h))
	m.AddVertex(math3d.V3(-h, -h, h))
	m.AddVertex(math3d.V3(-h, h, -h))
	m.AddVertex(math3d.V3(h, -h, -h))

	col := palette(colors)
	tris := [4][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}}
	for i, t := range tris {
		a, b, c := t[0], t[1], t[2]
		centroid := m.Vertices[a].Vec3().Add(m.Vertices[b].Vec3()).Add(m.Vertices[c].Vec3())
		if m.windingNormal(a, b, c).Dot(centroid) < 0 {
			b, c = c, b
		}
		m.AddFace(col(i), a, b, c)
	}

	m.CalculateBounds()
	return m
}
