// Package camera provides the free-fly camera used by the demo.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement directions for keyboard-driven flight.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// pitch is clamped short of +-90 to avoid gimbal flip at the poles
const maxPitch = 89.0

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a free-fly camera. The basis vectors are recomputed from
// yaw/pitch on every mutation and never go stale.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	RightVec mgl32.Vec3
	UpVec    mgl32.Vec3

	Yaw   float32 // degrees; -90 looks down -Z
	Pitch float32 // degrees, clamped to [-89, 89]

	FOV    float32 // vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32

	Speed       float32 // units per second
	Sensitivity float32 // degrees per pixel of mouse motion
}

// New creates a camera at the given position looking down -Z.
func New(position mgl32.Vec3, aspect float32) *Camera {
	c := &Camera{
		Position:    position,
		Yaw:         -90,
		Pitch:       0,
		FOV:         60,
		Aspect:      aspect,
		Near:        0.1,
		Far:         500,
		Speed:       5,
		Sensitivity: 0.1,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the camera's view matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.UpVec)
}

// ProjectionMatrix returns the camera's perspective projection.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ProcessMouse applies a mouse delta to yaw/pitch and recomputes the basis.
func (c *Camera) ProcessMouse(dx, dy float32) {
	c.SetAngles(c.Yaw+dx*c.Sensitivity, c.Pitch+dy*c.Sensitivity)
}

// SetAngles sets yaw/pitch directly. Pitch is clamped to [-89, 89] degrees.
func (c *Camera) SetAngles(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = pitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.updateVectors()
}

// Move translates the camera along its basis. speedScale multiplies the base
// speed (sprint); dt is the frame time in seconds.
func (c *Camera) Move(dir Direction, dt, speedScale float32) {
	velocity := c.Speed * speedScale * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.RightVec.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.RightVec.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(worldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(worldUp.Mul(velocity))
	}
}

// SetAspect updates the aspect ratio after a window resize.
func (c *Camera) SetAspect(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// updateVectors recomputes front/right/up from yaw and pitch.
func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(gomath.Cos(pitch) * gomath.Cos(yaw)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Cos(pitch) * gomath.Sin(yaw)),
	}
	c.Front = front.Normalize()
	c.RightVec = c.Front.Cross(worldUp).Normalize()
	c.UpVec = c.RightVec.Cross(c.Front).Normalize()
}
