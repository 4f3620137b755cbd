package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera on the +Z axis looking down -Z.
type Camera struct {
	FOV    float32 // vertical, degrees
	Near   float32
	Far    float32
	Z      float32
	Aspect float32
}

// DefaultCamera returns the camera the scene is viewed through.
func DefaultCamera() Camera {
	return Camera{FOV: 75, Near: 0.1, Far: 100, Z: 2, Aspect: 16.0 / 9.0}
}

// SetViewport updates the aspect ratio for a w x h target.
func (c *Camera) SetViewport(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Aspect = float32(w) / float32(h)
}

// Projection returns the perspective matrix.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -c.Z)
}

// PlaneScale is the uniform XY scale that makes the plane fill the view
// regardless of window shape.
func (c Camera) PlaneScale() float32 {
	return c.Z * math32.Tan(mgl32.DegToRad(c.FOV)) * 0.8
}
