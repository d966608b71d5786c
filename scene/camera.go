package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const polarEpsilon = 1e-4

// OrbitControls keeps a camera on a sphere around Target. Azimuth is
// measured around +Y from +Z, Polar down from +Y.
type OrbitControls struct {
	Target   mgl32.Vec3
	Azimuth  float32
	Polar    float32
	Distance float32

	MinDistance float32
	MaxDistance float32

	AutoRotate      bool
	AutoRotateSpeed float32

	Fov  float32 // degrees
	Near float32
	Far  float32
}

// NewOrbitControls places the camera at position looking at target.
func NewOrbitControls(position, target mgl32.Vec3, fov float32) *OrbitControls {
	offset := position.Sub(target)
	c := &OrbitControls{
		Target:      target,
		Distance:    offset.Len(),
		MinDistance: 0,
		MaxDistance: float32(math.Inf(1)),
		Fov:         fov,
		Near:        0.1,
		Far:         1000,
	}
	if c.Distance > 0 {
		c.Azimuth = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
		c.Polar = float32(math.Acos(float64(mgl32.Clamp(offset.Y()/c.Distance, -1, 1))))
	}
	return c
}

// Rotate orbits by the given azimuth and polar deltas in radians.
func (c *OrbitControls) Rotate(dAzimuth, dPolar float32) {
	c.Azimuth += dAzimuth
	c.Polar += dPolar
	c.clamp()
}

// Zoom multiplies the distance by scale; values below one move closer.
func (c *OrbitControls) Zoom(scale float32) {
	if scale <= 0 {
		return
	}
	c.Distance *= scale
	c.clamp()
}

// Update applies auto-rotation. At speed 1 a full orbit takes 60 seconds;
// positive speeds turn clockwise seen from above, as three.js does.
func (c *OrbitControls) Update(dt float32) {
	if c.AutoRotate && dt > 0 {
		a := math.Mod(float64(c.Azimuth)-2*math.Pi/60*float64(c.AutoRotateSpeed*dt), 2*math.Pi)
		if a < 0 {
			a += 2 * math.Pi
		}
		c.Azimuth = float32(a)
	}
	c.clamp()
}

func (c *OrbitControls) clamp() {
	c.Polar = mgl32.Clamp(c.Polar, polarEpsilon, math.Pi-polarEpsilon)
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

func (c *OrbitControls) Position() mgl32.Vec3 {
	sinP, cosP := math.Sincos(float64(c.Polar))
	sinA, cosA := math.Sincos(float64(c.Azimuth))
	d := float64(c.Distance)
	return c.Target.Add(mgl32.Vec3{
		float32(d * sinP * sinA),
		float32(d * cosP),
		float32(d * sinP * cosA),
	})
}

func (c *OrbitControls) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitControls) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}
