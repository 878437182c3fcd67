package render

import "github.com/taigrr/facet/pkg/math3d"

// ObjectFrame holds one object's per-frame transform results. Slices are
// indexed like the mesh vertices and normals and are reused between calls.
type ObjectFrame struct {
	Screen       []math3d.Vec2
	Clip         []ClipState
	WorldVerts   []math3d.Vec4
	WorldNormals []math3d.Vec4
}

func (f *ObjectFrame) reset(verts, normals int) {
	f.Screen = grow(f.Screen, verts)
	f.Clip = grow(f.Clip, verts)
	f.WorldVerts = grow(f.WorldVerts, verts)
	f.WorldNormals = grow(f.WorldNormals, normals)
}

func grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}

// TransformObject moves obj's mesh through world, view, clip and screen
// space, writing into frame. Components outside the unit cube after the
// divide are zeroed and tagged before the screen transform.
func TransformObject(obj *SceneObject, viewMatrix math3d.Mat4, proj *Projection, frame *ObjectFrame) *ObjectFrame {
	mesh := obj.Mesh
	frame.reset(len(mesh.Vertices), len(mesh.FaceNormals))

	world := obj.WorldMatrix
	// Renormalized so a uniform scale leaves n·L alone.
	for i, n := range mesh.FaceNormals {
		frame.WorldNormals[i] = math3d.V4FromV3(n.Mul(world).Vec3().Normalize(), 0)
	}

	projection := proj.ProjectionMatrix()
	screen := proj.ScreenMatrix()
	for i, v := range mesh.Vertices {
		w := v.Mul(world)
		frame.WorldVerts[i] = w

		ndc := w.Mul(viewMatrix).Mul(projection).DivW()
		ndc, frame.Clip[i] = clipUnitCube(ndc)
		frame.Screen[i] = ndc.Mul(screen).XY()
	}
	return frame
}

// clipUnitCube zeroes each of x, y, z outside [-1, 1]. Bounds are
// inclusive, and NaN counts as outside.
func clipUnitCube(v math3d.Vec4) (math3d.Vec4, ClipState) {
	var st ClipState
	if !(v.X >= -1 && v.X <= 1) {
		v.X = 0
		st |= ClipX
	}
	if !(v.Y >= -1 && v.Y <= 1) {
		v.Y = 0
		st |= ClipY
	}
	if !(v.Z >= -1 && v.Z <= 1) {
		v.Z = 0
		st |= ClipZ
	}
	return v, st
}

// ProjectPoint takes a world-space point straight to screen space with no
// clipping.
func ProjectPoint(p math3d.Vec3, viewMatrix math3d.Mat4, proj *Projection) math3d.Vec2 {
	return math3d.V4FromV3(p, 1).
		Mul(viewMatrix).
		Mul(proj.ProjectionMatrix()).
		DivW().
		Mul(proj.ScreenMatrix()).
		XY()
}
