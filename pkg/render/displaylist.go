package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/taigrr/facet/pkg/math3d"
	"go.uber.org/zap"
)

// ErrAlreadyRegistered is returned when an object is already in a bucket.
var ErrAlreadyRegistered = errors.New("object already registered")

// ErrNoMesh is returned when registering a nil object or one without a mesh.
var ErrNoMesh = errors.New("object has no mesh")

// FrameStats counts what one RunFrame did, for debugging and benchmarking.
type FrameStats struct {
	Objects        int // Objects visited across all buckets
	ObjectsCulled  int // Objects skipped by the frustum pre-cull
	FacesTested    int // Faces considered
	FacesClipped   int // Faces rejected by the visibility classifier
	FacesBackfaced int // Faces rejected as back-facing
	FacesDrawn     int // Faces rasterized
}

// Add accumulates other into s.
func (s *FrameStats) Add(other FrameStats) {
	s.Objects += other.Objects
	s.ObjectsCulled += other.ObjectsCulled
	s.FacesTested += other.FacesTested
	s.FacesClipped += other.FacesClipped
	s.FacesBackfaced += other.FacesBackfaced
	s.FacesDrawn += other.FacesDrawn
}

// DisplayLists is the registry of objects to draw, one ordered bucket per
// RenderMode. Insertion order is draw order and an object lives in at most
// one bucket.
type DisplayLists struct {
	mu      sync.RWMutex
	buckets [numModes][]*SceneObject
	members map[*SceneObject]RenderMode

	surface Surface
	proj    *Projection

	log         *zap.Logger
	visibility  VisibilityMode
	frustumCull bool

	// Per-frame scratch, guarded by frameMu.
	frameMu  sync.Mutex
	scratch  ObjectFrame
	worldTri [3]math3d.Vec3
}

// Option configures a DisplayLists.
type Option func(*DisplayLists)

// WithLogger sets the logger used for configuration errors.
func WithLogger(log *zap.Logger) Option {
	return func(d *DisplayLists) {
		if log != nil {
			d.log = log
		}
	}
}

// WithVisibility selects the clipped-face detection strategy.
func WithVisibility(m VisibilityMode) Option {
	return func(d *DisplayLists) { d.visibility = m }
}

// WithFrustumCull enables skipping objects whose bounds lie outside the
// view frustum before they are transformed.
func WithFrustumCull(on bool) Option {
	return func(d *DisplayLists) { d.frustumCull = on }
}

// NewDisplayLists creates an empty registry drawing onto surface.
func NewDisplayLists(surface Surface, proj *Projection, opts ...Option) *DisplayLists {
	d := &DisplayLists{
		members: make(map[*SceneObject]RenderMode),
		surface: surface,
		proj:    proj,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetTarget swaps the output surface and projection, e.g. after a resize.
func (d *DisplayLists) SetTarget(surface Surface, proj *Projection) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.surface = surface
	d.proj = proj
}

// Register appends obj to the bucket for mode. An unknown mode or an object
// that is already registered is logged and leaves every bucket unchanged.
func (d *DisplayLists) Register(obj *SceneObject, mode RenderMode) error {
	if obj == nil || obj.Mesh == nil {
		name := ""
		if obj != nil {
			name = obj.Name
		}
		d.log.Error("register: object has no mesh",
			zap.String("object", name), zap.Int("mode", int(mode)))
		return fmt.Errorf("register %q: %w", name, ErrNoMesh)
	}
	if !mode.Valid() {
		d.log.Error("register: unknown render mode",
			zap.String("object", obj.Name), zap.Int("mode", int(mode)))
		return fmt.Errorf("register %q: %w: %d", obj.Name, ErrUnknownMode, int(mode))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.members[obj]; ok {
		d.log.Error("register: object already in a display list",
			zap.String("object", obj.Name), zap.Stringer("bucket", prev), zap.Stringer("mode", mode))
		return fmt.Errorf("register %q in %s: %w (in %s)", obj.Name, mode, ErrAlreadyRegistered, prev)
	}
	d.members[obj] = mode
	d.buckets[mode] = append(d.buckets[mode], obj)
	d.log.Debug("registered object",
		zap.String("object", obj.Name), zap.Stringer("mode", mode), zap.Int("faces", len(obj.Mesh.Faces)))
	return nil
}

// Objects returns a copy of the bucket for mode.
func (d *DisplayLists) Objects(mode RenderMode) []*SceneObject {
	if !mode.Valid() {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*SceneObject(nil), d.buckets[mode]...)
}

// Len returns the number of registered objects.
func (d *DisplayLists) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.members)
}

// RunFrame draws every registered object once, bucket by bucket in mode
// order and insertion order within a bucket.
func (d *DisplayLists) RunFrame(view View, light Light) FrameStats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	d.frameMu.Lock()
	defer d.frameMu.Unlock()

	var stats FrameStats
	viewMatrix := view.CalcViewMatrix()
	eye := view.Eye()

	var frustum Frustum
	if d.frustumCull {
		frustum = NewFrustum(viewMatrix, d.proj)
	}

	for mode := range numModes {
		for _, obj := range d.buckets[mode] {
			stats.Objects++
			if d.frustumCull && !frustum.Sees(obj) {
				stats.ObjectsCulled++
				continue
			}
			d.drawObject(obj, mode, viewMatrix, eye, light, &stats)
		}
	}
	return stats
}

func (d *DisplayLists) drawObject(obj *SceneObject, mode RenderMode, viewMatrix math3d.Mat4, eye math3d.Vec3, light Light, stats *FrameStats) {
	frame := TransformObject(obj, viewMatrix, d.proj, &d.scratch)
	hw, hh := d.proj.HalfWidth(), d.proj.HalfHeight()

	for i, face := range obj.Mesh.Faces {
		stats.FacesTested++

		pts := [3]math3d.Vec2{frame.Screen[face.V[0]], frame.Screen[face.V[1]], frame.Screen[face.V[2]]}
		if !d.visible(frame, face.V, pts, hw, hh) {
			stats.FacesClipped++
			continue
		}

		normal := frame.WorldNormals[i].Vec3()
		if IsBackFace(normal, frame.WorldVerts[face.V[0]].Vec3(), eye) {
			stats.FacesBackfaced++
			continue
		}

		shaded := ShadeColor(face.Color, LightIntensity(normal, light))
		if err := DrawFace(d.surface, mode, pts, face.Color, shaded); err != nil {
			d.log.Error("draw face", zap.String("object", obj.Name), zap.Int("face", i), zap.Error(err))
			continue
		}
		stats.FacesDrawn++

		if obj.DrawNormals {
			for k, idx := range face.V {
				d.worldTri[k] = frame.WorldVerts[idx].Vec3()
			}
			drawFaceNormal(d.surface, d.worldTri, normal, viewMatrix, d.proj)
		}
	}

	if obj.DrawVertices {
		drawVertexMarkers(d.surface, frame.Screen)
	}
}

func (d *DisplayLists) visible(frame *ObjectFrame, idx [3]int, pts [3]math3d.Vec2, hw, hh float64) bool {
	if d.visibility == VisibilitySentinel {
		return AreAllVisible(pts, hw, hh)
	}
	return FaceVisible([3]ClipState{frame.Clip[idx[0]], frame.Clip[idx[1]], frame.Clip[idx[2]]})
}
