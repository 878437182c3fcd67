package render

import (
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

type drawCall struct {
	kind      string // "line", "fill", "circle"
	pts       []math3d.Vec2
	color     Color
	thickness int // line thickness or circle radius
}

// recorder is a Surface that remembers every call.
type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawLine(p0, p1 math3d.Vec2, c Color, thickness int) {
	r.calls = append(r.calls, drawCall{"line", []math3d.Vec2{p0, p1}, c, thickness})
}

func (r *recorder) FillPolygon(pts []math3d.Vec2, c Color) {
	r.calls = append(r.calls, drawCall{"fill", append([]math3d.Vec2(nil), pts...), c, 0})
}

func (r *recorder) DrawCircle(center math3d.Vec2, radius int, c Color) {
	r.calls = append(r.calls, drawCall{"circle", []math3d.Vec2{center}, c, radius})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

// fixedView is a View backed by math3d.LookAt.
type fixedView struct {
	eye    math3d.Vec3
	matrix math3d.Mat4
}

func lookAtView(eye, target math3d.Vec3) fixedView {
	return fixedView{eye: eye, matrix: math3d.LookAt(eye, target, math3d.Up())}
}

func (v fixedView) CalcViewMatrix() math3d.Mat4 { return v.matrix }
func (v fixedView) Eye() math3d.Vec3            { return v.eye }

var testColor = Color{R: 200, G: 100, B: 50, A: 255}

// facingCamera returns a triangle at the origin whose normal is (0,0,-1),
// towards a camera at (0,0,-5).
func facingCamera() *models.Mesh {
	m := models.NewMesh("facing")
	m.AddVertex(math3d.V3(-1, -1, 0))
	m.AddVertex(math3d.V3(0, 1, 0))
	m.AddVertex(math3d.V3(1, -1, 0))
	m.AddFace(testColor, 0, 1, 2)
	m.CalculateBounds()
	return m
}

// testScene is a 100x100 surface with a 90 degree field of view, a camera
// at (0,0,-5) looking at the origin and a light shining along +Z.
type testScene struct {
	surface *recorder
	proj    *Projection
	view    fixedView
	light   Light
}

func newTestScene() testScene {
	return testScene{
		surface: &recorder{},
		proj:    NewProjection(100, 100, math3d.Radians(90), 0.1, 100),
		view:    lookAtView(math3d.V3(0, 0, -5), math3d.Zero3()),
		light:   NewLight(math3d.V3(0, 0, 1)),
	}
}
