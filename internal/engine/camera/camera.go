// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/calmsea/wavetank/pkg/math"
)

// FlyCamera is a free-fly camera driven by keyboard movement and mouse
// look. Yaw and pitch are in degrees; pitch is clamped short of the poles.
type FlyCamera struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32

	MoveSpeed   float32 // world units per second
	Sensitivity float32 // degrees per mouse count
}

// NewFlyCamera creates a camera at the given position, facing along yaw.
func NewFlyCamera(pos math.Vec3, yaw, pitch float32) *FlyCamera {
	return &FlyCamera{
		Position:    pos,
		Yaw:         yaw,
		Pitch:       pitch,
		MoveSpeed:   10.0,
		Sensitivity: 0.1,
	}
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() math.Vec3 {
	yaw := float64(c.Yaw) * gomath.Pi / 180
	pitch := float64(c.Pitch) * gomath.Pi / 180
	return math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}

// Right returns the unit right vector.
func (c *FlyCamera) Right() math.Vec3 {
	return c.Front().Cross(math.Vec3{X: 0, Y: 1, Z: 0}).Normalize()
}

// Move translates the camera. forward/right/up are signed amounts in
// [-1, 1]; dt is the frame delta in seconds.
func (c *FlyCamera) Move(forward, right, up float32, dt float32) {
	step := c.MoveSpeed * dt
	c.Position = c.Position.
		Add(c.Front().Scale(forward * step)).
		Add(c.Right().Scale(right * step)).
		Add(math.Vec3{X: 0, Y: 1, Z: 0}.Scale(up * step))
}

// Look rotates the view by a mouse delta.
func (c *FlyCamera) Look(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.Sensitivity
	c.Pitch += deltaY * c.Sensitivity

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front()), math.Vec3{X: 0, Y: 1, Z: 0})
}
