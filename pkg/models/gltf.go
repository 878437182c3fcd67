package models

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/facet/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into flat-colored meshes. Each triangle
// takes its primitive's material base color; face normals come from the
// GLTF counter-clockwise winding.
type GLTFLoader struct {
	// Color for primitives without a material base color.
	DefaultColor color.RGBA
	// If positive, center the mesh and scale its largest side to FitSize.
	FitSize float64
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		DefaultColor: DefaultColor,
		FitSize:      2,
	}
}

// LoadGLB loads a GLTF or GLB file with the default loader.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a validated Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	if l.FitSize > 0 {
		mesh.FitUnit(l.FitSize)
	} else {
		mesh.CalculateBounds()
	}

	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return mesh, nil
}

// processMesh extracts geometry from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		}

		appendPrimitive(mesh, positions, indices, l.materialColor(doc, prim.Material))
	}
	return nil
}

// appendPrimitive adds one triangle list to the mesh. Without indices the
// positions are taken as sequential triangles.
func appendPrimitive(mesh *Mesh, positions [][3]float32, indices []uint32, c color.RGBA) {
	base := len(mesh.Vertices)
	for _, p := range positions {
		mesh.Vertices = append(mesh.Vertices, pointFromFloat32(p))
	}

	if indices == nil {
		for i := 0; i+2 < len(positions); i += 3 {
			mesh.AddFace(c, base+i, base+i+1, base+i+2)
		}
		return
	}
	for i := 0; i+2 < len(indices); i += 3 {
		mesh.AddFace(c, base+int(indices[i]), base+int(indices[i+1]), base+int(indices[i+2]))
	}
}

func (l *GLTFLoader) materialColor(doc *gltf.Document, idx *int) color.RGBA {
	if idx == nil || *idx < 0 || *idx >= len(doc.Materials) {
		return l.DefaultColor
	}
	pbr := doc.Materials[*idx].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return l.DefaultColor
	}
	return colorFromFactor(*pbr.BaseColorFactor)
}

// colorFromFactor converts a linear 0-1 RGBA factor to 8-bit color.
func colorFromFactor(f [4]float64) color.RGBA {
	ch := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{ch(f[0]), ch(f[1]), ch(f[2]), ch(f[3])}
}

func pointFromFloat32(p [3]float32) math3d.Vec4 {
	return math3d.Point(float64(p[0]), float64(p[1]), float64(p[2]))
}
