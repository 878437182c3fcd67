// Package anim drives per-frame object motion with spring-damped rotation.
package anim

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/facet/pkg/math3d"
)

// Axis tracks the angle and impulse velocity of one rotation axis. The
// velocity decays towards zero through a critically damped spring.
type Axis struct {
	Position float64 // radians
	Velocity float64 // radians per frame, from impulses
	spring   harmonica.Spring
	accel    float64 // spring's own velocity while easing Velocity to 0
}

// NewAxis creates an axis whose impulses settle at the given frame rate.
func NewAxis(fps int) Axis {
	return Axis{
		// Frequency 4.0 = moderate speed, damping 1.0 = no overshoot
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances the axis by one frame, adding a constant step on top of
// the decaying impulse velocity.
func (a *Axis) Update(step float64) {
	a.Position += step + a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Placement is an object's resting transform.
type Placement struct {
	Position math3d.Vec3
	Rotation math3d.Vec3 // pitch, yaw, roll in radians
	Scale    math3d.Vec3
}

// Matrix composes the placement with an extra local rotation applied first.
func (p Placement) Matrix(spin math3d.Mat4) math3d.Mat4 {
	rot := spin.Mul(math3d.Euler(p.Rotation.X, p.Rotation.Y, p.Rotation.Z))
	return math3d.TRS(p.Position, rot, p.Scale)
}

// Spinner rotates an object at a constant rate plus spring-damped impulses
// and produces its world matrix each frame.
type Spinner struct {
	Pitch, Yaw, Roll Axis
	Rate             math3d.Vec3 // radians per second about X, Y, Z
	Placement        Placement
	fps              int
}

// NewSpinner creates a spinner stepping at fps frames per second.
func NewSpinner(fps int, rate math3d.Vec3, place Placement) *Spinner {
	fps = max(fps, 1)
	return &Spinner{
		Pitch:     NewAxis(fps),
		Yaw:       NewAxis(fps),
		Roll:      NewAxis(fps),
		Rate:      rate,
		Placement: place,
		fps:       fps,
	}
}

// Step advances one frame and returns the new world matrix.
func (s *Spinner) Step() math3d.Mat4 {
	dt := 1 / float64(s.fps)
	s.Pitch.Update(s.Rate.X * dt)
	s.Yaw.Update(s.Rate.Y * dt)
	s.Roll.Update(s.Rate.Z * dt)
	return s.Matrix()
}

// Matrix returns the world matrix for the current angles.
func (s *Spinner) Matrix() math3d.Mat4 {
	return s.Placement.Matrix(math3d.Euler(s.Pitch.Position, s.Yaw.Position, s.Roll.Position))
}

// ApplyImpulse adds angular velocity (radians per frame) to each axis.
func (s *Spinner) ApplyImpulse(pitch, yaw, roll float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
	s.Roll.Velocity += roll
}

// Reset zeroes every angle and velocity.
func (s *Spinner) Reset() {
	s.Pitch = NewAxis(s.fps)
	s.Yaw = NewAxis(s.fps)
	s.Roll = NewAxis(s.fps)
}
