package render

import (
	"math"

	"github.com/taigrr/facet/pkg/math3d"
)

// View supplies the world-to-view transform for a frame. The matrix uses the
// row-vector convention and Eye is the camera position in world space.
type View interface {
	CalcViewMatrix() math3d.Mat4
	Eye() math3d.Vec3
}

// Camera is a free-look camera with position and Euler orientation.
// It implements View.
type Camera struct {
	Position math3d.Vec3

	// Radians. Pitch turns about X, Yaw about Y, Roll about Z.
	Pitch, Yaw, Roll float64

	viewMatrix math3d.Mat4
	viewDirty  bool
}

var _ View = (*Camera)(nil)

// NewCamera creates a camera at pos looking down -Z.
func NewCamera(pos math3d.Vec3) *Camera {
	return &Camera{
		Position:  pos,
		viewDirty: true,
	}
}

// SetPosition moves the camera to pos.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
	c.viewDirty = true
}

// SetRotation replaces the orientation.
func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.Roll = roll
	c.viewDirty = true
}

// Eye returns the camera position.
func (c *Camera) Eye() math3d.Vec3 {
	return c.Position
}

// Forward is the unit view direction in world space.
func (c *Camera) Forward() math3d.Vec3 {
	return math3d.V3(
		-math.Sin(c.Yaw)*math.Cos(c.Pitch),
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw)*math.Cos(c.Pitch),
	)
}

// Right is the horizontal unit vector to the camera's right.
func (c *Camera) Right() math3d.Vec3 {
	return math3d.V3(math.Cos(c.Yaw), 0, -math.Sin(c.Yaw))
}

// CalcViewMatrix returns the world-to-view matrix, rebuilding it only after
// the camera moved.
func (c *Camera) CalcViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		// Move the world opposite to the camera, then undo yaw, pitch and roll.
		c.viewMatrix = math3d.Translate(c.Position.Negate()).
			Mul(math3d.RotateY(-c.Yaw)).
			Mul(math3d.RotateX(-c.Pitch)).
			Mul(math3d.RotateZ(-c.Roll))
		c.viewDirty = false
	}
	return c.viewMatrix
}

// MoveForward steps along Forward; negative distances step back.
func (c *Camera) MoveForward(distance float64) {
	c.SetPosition(c.Position.Add(c.Forward().Scale(distance)))
}

// MoveRight strafes along Right.
func (c *Camera) MoveRight(distance float64) {
	c.SetPosition(c.Position.Add(c.Right().Scale(distance)))
}

// MoveUp moves along world up.
func (c *Camera) MoveUp(distance float64) {
	c.SetPosition(c.Position.Add(math3d.Up().Scale(distance)))
}

// Rotate adds the deltas to the orientation. Pitch stays short of vertical.
func (c *Camera) Rotate(deltaPitch, deltaYaw, deltaRoll float64) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw
	c.Roll += deltaRoll

	const maxPitch = math.Pi/2 - 0.01
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch))

	c.viewDirty = true
}

// LookAt points the camera at target and levels the roll.
func (c *Camera) LookAt(target math3d.Vec3) {
	dir := target.Sub(c.Position).Normalize()

	c.Pitch = math.Asin(dir.Y)
	c.Yaw = math.Atan2(-dir.X, -dir.Z)
	c.Roll = 0

	c.viewDirty = true
}
