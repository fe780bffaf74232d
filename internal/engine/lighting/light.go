// Package lighting positions the point light used by the Phong shaders.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Spherical converts an azimuth around the Y axis and an elevation from
// the horizon, both in degrees, to a point at radius from the origin.
func Spherical(azimuth, elevation, radius float32) mgl32.Vec3 {
	az := float64(mgl32.DegToRad(azimuth))
	el := float64(mgl32.DegToRad(elevation))

	x := float32(math.Cos(el) * math.Sin(az))
	y := float32(math.Sin(el))
	z := float32(math.Cos(el) * math.Cos(az))

	return mgl32.Vec3{x, y, z}.Mul(radius)
}

// PointLight is a light that can orbit the Y axis at a fixed speed.
type PointLight struct {
	azimuth   float32
	elevation float32
	radius    float32

	// Speed is the orbit speed in degrees per second. Zero keeps the
	// light still.
	Speed float32
}

// NewPointLight returns a light at position orbiting at speed deg/s.
func NewPointLight(position mgl32.Vec3, speed float32) *PointLight {
	l := &PointLight{Speed: speed, radius: position.Len()}
	if l.radius > 0 {
		l.elevation = mgl32.RadToDeg(float32(math.Asin(float64(position.Y() / l.radius))))
		l.azimuth = mgl32.RadToDeg(float32(math.Atan2(float64(position.X()), float64(position.Z()))))
	}
	return l
}

// Update advances the orbit by dt seconds.
func (l *PointLight) Update(dt float32) {
	if l.Speed == 0 {
		return
	}
	l.azimuth = float32(math.Mod(float64(l.azimuth+l.Speed*dt), 360))
}

// Position returns the current world position.
func (l *PointLight) Position() mgl32.Vec3 {
	return Spherical(l.azimuth, l.elevation, l.radius)
}
