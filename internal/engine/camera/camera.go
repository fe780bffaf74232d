// Package camera provides the orbit camera used to inspect a scene.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles a target point at a given distance.
type OrbitCamera struct {
	Target mgl32.Vec3

	// Spherical coordinates around Target.
	Distance float32
	Pitch    float32 // radians, positive looks down
	Yaw      float32 // radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera returns a camera with sensible limits for scenes a few
// units across.
func NewOrbitCamera(distance, pitch, yaw float32, target mgl32.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		Target:          target,
		Distance:        distance,
		Pitch:           pitch,
		Yaw:             yaw,
		MinDistance:     0.5,
		MaxDistance:     500,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
	c.clamp()
	return c
}

// Position returns the eye position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cp, sp := cosSin(c.Pitch)
	cy, sy := cosSin(c.Yaw)
	offset := mgl32.Vec3{cp * sy, sp, cp * cy}.Mul(c.Distance)
	return c.Target.Add(offset)
}

// ViewMatrix returns the look-at matrix from Position to Target.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// HandleDrag rotates by a mouse delta in pixels.
func (c *OrbitCamera) HandleDrag(dx, dy float32) {
	c.Yaw -= dx * c.DragSensitivity
	c.Pitch += dy * c.DragSensitivity
	c.clamp()
}

// HandleZoom scales the distance by a wheel delta. Positive moves closer.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clamp()
}

// FitRadius places the camera so a sphere of radius r around Target fits
// in a vertical field of view of fovDeg.
func (c *OrbitCamera) FitRadius(r, fovDeg float32) {
	half := mgl32.DegToRad(fovDeg) / 2
	c.Distance = r / float32(math.Sin(float64(half)))
	c.clamp()
}

func (c *OrbitCamera) clamp() {
	c.Pitch = mgl32.Clamp(c.Pitch, c.MinPitch, c.MaxPitch)
	c.Distance = mgl32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// Projection returns a perspective matrix for the given viewport.
func Projection(fovDeg float32, width, height int, near, far float32) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
}

func cosSin(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(c), float32(s)
}
