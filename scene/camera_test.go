package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitControls_RoundTripsPosition(t *testing.T) {
	c := NewOrbitControls(mgl32.Vec3{0, 2.5, 10}, mgl32.Vec3{}, 60)

	pos := c.Position()
	assert.InDelta(t, 0, pos.X(), 1e-4)
	assert.InDelta(t, 2.5, pos.Y(), 1e-4)
	assert.InDelta(t, 10, pos.Z(), 1e-4)
}

func TestOrbitControls_ClampsDistance(t *testing.T) {
	c := NewOrbitControls(mgl32.Vec3{0, 2.5, 10}, mgl32.Vec3{}, 60)
	c.MinDistance, c.MaxDistance = 4, 10

	c.Update(0)
	assert.InDelta(t, 10, c.Distance, 1e-6)

	c.Zoom(0.1)
	assert.InDelta(t, 4, c.Distance, 1e-6)

	c.Zoom(-1)
	assert.InDelta(t, 4, c.Distance, 1e-6, "non-positive zoom is ignored")
}

func TestOrbitControls_AutoRotate(t *testing.T) {
	c := NewOrbitControls(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 60)
	c.AutoRotate = true
	c.AutoRotateSpeed = 0.5

	c.Update(1)
	assert.InDelta(t, 2*math.Pi-2*math.Pi/60*0.5, c.Azimuth, 1e-5)
}

func TestOrbitControls_AutoRotateTurnsClockwise(t *testing.T) {
	c := NewOrbitControls(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, 60)
	c.AutoRotate = true
	c.AutoRotateSpeed = 0.5

	c.Update(1)
	pos := c.Position()
	assert.Less(t, pos.X(), float32(0))
	assert.InDelta(t, 10, pos.Len(), 1e-4)

	c.AutoRotate = false
	before := c.Azimuth
	c.Update(1)
	assert.Equal(t, before, c.Azimuth)
}

func TestOrbitControls_PolarStaysOffPoles(t *testing.T) {
	c := NewOrbitControls(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 60)
	c.Rotate(0, 10)
	assert.Less(t, c.Polar, float32(math.Pi))
	c.Rotate(0, -20)
	assert.Greater(t, c.Polar, float32(0))
}
