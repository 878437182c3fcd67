package render

import (
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

// SceneObject places a mesh in the world. WorldMatrix is owned by the host
// and may change between frames; the pipeline only reads it.
type SceneObject struct {
	Name         string
	Mesh         *models.Mesh
	WorldMatrix  math3d.Mat4
	DrawNormals  bool
	DrawVertices bool
}

// NewSceneObject wraps mesh with an identity world matrix.
func NewSceneObject(name string, mesh *models.Mesh) *SceneObject {
	return &SceneObject{
		Name:        name,
		Mesh:        mesh,
		WorldMatrix: math3d.Identity(),
	}
}

// Bounds returns the world-space box around the object's mesh.
func (o *SceneObject) Bounds() AABB {
	return NewAABB(o.Mesh.BoundsMin, o.Mesh.BoundsMax).Transform(o.WorldMatrix)
}
