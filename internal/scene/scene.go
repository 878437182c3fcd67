// Package scene builds a renderable scene from configuration and advances
// it frame by frame.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/taigrr/facet/internal/config"
	"github.com/taigrr/facet/pkg/anim"
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
	"go.uber.org/zap"
)

// ErrUnknownMesh is returned for mesh names that are neither a builtin
// primitive nor a GLTF path.
var ErrUnknownMesh = errors.New("unknown mesh")

// primitiveSize is the edge length of builtin meshes, matching the size
// GLTF models are fitted to.
const primitiveSize = 2.0

// Scene is a configured set of objects with their camera, light and
// display lists, drawing into its own framebuffer.
type Scene struct {
	Camera  *render.Camera
	Light   render.Light
	Proj    *render.Projection
	FB      *render.Framebuffer
	Lists   *render.DisplayLists
	Objects []*render.SceneObject

	spinners   []*anim.Spinner
	background color.RGBA
	log        *zap.Logger
}

// Build loads every mesh and registers every object named in cfg. Objects
// whose mesh fails to load are logged and left out; objects with an
// unknown mode are handed to the display lists, which report and drop them.
func Build(cfg *config.Config, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	vis, _ := render.ParseVisibilityMode(cfg.Render.Visibility)
	d := cfg.Display
	s := &Scene{
		Light:      render.NewLight(vec3(cfg.Light.Direction)),
		Proj:       render.NewProjection(d.Width, d.Height, math3d.Radians(cfg.Camera.FOVDegrees), cfg.Camera.Near, cfg.Camera.Far),
		FB:         render.NewFramebuffer(d.Width, d.Height),
		background: render.RGB(d.Background[0], d.Background[1], d.Background[2]),
		log:        log,
	}
	s.Camera = render.NewCamera(vec3(cfg.Camera.Position))
	s.Camera.LookAt(vec3(cfg.Camera.Target))
	s.Lists = render.NewDisplayLists(s.FB, s.Proj,
		render.WithLogger(log.Named("render")),
		render.WithVisibility(vis),
		render.WithFrustumCull(cfg.Render.FrustumCull),
	)

	cache := newMeshCache()
	for i, oc := range cfg.Objects {
		name := oc.Name
		if name == "" {
			name = fmt.Sprintf("object-%d", i)
		}
		mesh, err := cache.load(oc.Mesh, objectColor(oc.Color))
		if err != nil {
			log.Warn("skipping object", zap.String("object", name), zap.Error(err))
			continue
		}

		obj := render.NewSceneObject(name, mesh)
		obj.DrawNormals = oc.DrawNormals
		obj.DrawVertices = oc.DrawVertices

		// An unparsed mode is still registered so the display lists
		// report it.
		mode, _ := render.ParseRenderMode(oc.Mode)
		if err := s.Lists.Register(obj, mode); err != nil {
			continue
		}

		sp := anim.NewSpinner(d.FPS, vec3Radians(oc.Spin), placement(oc))
		obj.WorldMatrix = sp.Matrix()
		s.Objects = append(s.Objects, obj)
		s.spinners = append(s.spinners, sp)
	}

	log.Info("scene built",
		zap.Int("objects", len(s.Objects)),
		zap.Int("configured", len(cfg.Objects)),
		zap.Int("meshes", cache.len()),
		zap.Stringer("visibility", vis))
	return s, nil
}

// Step advances every spinner one frame and updates the world matrices.
func (s *Scene) Step() {
	for i, sp := range s.spinners {
		s.Objects[i].WorldMatrix = sp.Step()
	}
}

// Frame clears the framebuffer and draws every registered object.
func (s *Scene) Frame() render.FrameStats {
	s.FB.Clear(s.background)
	return s.Lists.RunFrame(s.Camera, s.Light)
}

// Resize replaces the framebuffer and updates the projection.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == s.FB.Width && height == s.FB.Height) {
		return
	}
	s.FB = render.NewFramebuffer(width, height)
	s.Proj.Resize(width, height)
	s.Lists.SetTarget(s.FB, s.Proj)
	s.log.Debug("resized", zap.Int("width", width), zap.Int("height", height))
}

// Nudge adds an impulse, in radians per frame, to every spinner.
func (s *Scene) Nudge(pitch, yaw, roll float64) {
	for _, sp := range s.spinners {
		sp.ApplyImpulse(pitch, yaw, roll)
	}
}

// ResetMotion returns every object to its configured placement.
func (s *Scene) ResetMotion() {
	for i, sp := range s.spinners {
		sp.Reset()
		s.Objects[i].WorldMatrix = sp.Matrix()
	}
}

// FaceCount returns the number of triangles across all objects.
func (s *Scene) FaceCount() int {
	n := 0
	for _, o := range s.Objects {
		n += o.Mesh.TriangleCount()
	}
	return n
}

// meshCache shares one mesh between objects with the same source and color.
type meshCache struct {
	meshes map[meshKey]*models.Mesh
}

type meshKey struct {
	spec string
	c    color.RGBA
}

func newMeshCache() *meshCache {
	return &meshCache{meshes: make(map[meshKey]*models.Mesh)}
}

func (c *meshCache) load(spec string, col color.RGBA) (*models.Mesh, error) {
	key := meshKey{meshName(spec), col}
	if m, ok := c.meshes[key]; ok {
		return m, nil
	}
	m, err := LoadMesh(spec, col)
	if err != nil {
		return nil, err
	}
	c.meshes[key] = m
	return m, nil
}

func (c *meshCache) len() int { return len(c.meshes) }

// LoadMesh builds a primitive (cube, triangle, quad, tetra) or loads a
// .glb/.gltf file. col colors primitives and GLTF parts without a material.
func LoadMesh(spec string, col color.RGBA) (*models.Mesh, error) {
	switch meshName(spec) {
	case "cube":
		return models.Cube(primitiveSize, col), nil
	case "triangle":
		return models.Triangle(primitiveSize, col), nil
	case "quad":
		return models.Quad(primitiveSize, col), nil
	case "tetra", "tetrahedron":
		return models.Tetrahedron(primitiveSize, col), nil
	}

	switch strings.ToLower(filepath.Ext(spec)) {
	case ".glb", ".gltf":
		loader := models.NewGLTFLoader()
		loader.DefaultColor = col
		loader.FitSize = primitiveSize
		return loader.Load(spec)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMesh, spec)
}

// meshName folds primitive names to lower case. File paths are kept as
// given.
func meshName(spec string) string {
	switch lower := strings.ToLower(spec); lower {
	case "cube", "triangle", "quad", "tetra", "tetrahedron":
		return lower
	}
	return spec
}

// objectColor maps an unset color to the model default.
func objectColor(c [3]uint8) color.RGBA {
	if c == [3]uint8{} {
		return models.DefaultColor
	}
	return render.RGB(c[0], c[1], c[2])
}

func placement(oc config.ObjectConfig) anim.Placement {
	return anim.Placement{
		Position: vec3(oc.Position),
		Rotation: vec3Radians(oc.RotationDegrees),
		Scale:    vec3(oc.EffectiveScale()),
	}
}

func vec3(a [3]float64) math3d.Vec3 {
	return math3d.V3(a[0], a[1], a[2])
}

func vec3Radians(a [3]float64) math3d.Vec3 {
	return math3d.V3(math3d.Radians(a[0]), math3d.Radians(a[1]), math3d.Radians(a[2]))
}
