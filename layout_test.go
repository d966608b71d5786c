package universe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xzRadius(p Placement) float64 {
	return math.Hypot(float64(p.Position.X()), float64(p.Position.Z()))
}

func TestGenerateRing_CountAndRadius(t *testing.T) {
	ring := GenerateRing(26, 33)
	require.Len(t, ring, 26)

	for i, p := range ring {
		assert.InDelta(t, 33, xzRadius(p), 1e-3, "placement %d", i)
	}
}

func TestGenerateRing_Empty(t *testing.T) {
	ring := GenerateRing(0, 33)
	assert.NotNil(t, ring)
	assert.Empty(t, ring)

	assert.Empty(t, GenerateRing(-4, 33))
	assert.Empty(t, GenerateRing(5, 0))
	assert.Empty(t, GenerateRing(5, -1))
}

func TestGenerateRing_UniformSpacing(t *testing.T) {
	const count = 26
	ring := GenerateRing(count, 33)
	step := 2 * math.Pi / count

	for i := 1; i < count; i++ {
		prev := -float64(ring[i-1].Yaw)
		cur := -float64(ring[i].Yaw)
		assert.InDelta(t, step, cur-prev, 1e-5, "spacing between %d and %d", i-1, i)

		a := math.Atan2(float64(ring[i].Position.Z()), float64(ring[i].Position.X()))
		if a < 0 {
			a += 2 * math.Pi
		}
		assert.InDelta(t, float64(i)*step, a, 1e-4)
	}
}

func TestGenerateRing_BobAndYaw(t *testing.T) {
	ring := GenerateRing(8, 10)

	for i, p := range ring {
		theta := RingAngle(i, 8)
		assert.InDelta(t, math.Sin(2*theta)*0.6, p.Position.Y(), 1e-5)
		assert.InDelta(t, -theta, p.Yaw, 1e-6)
	}
	// two full bob cycles per revolution: peaks at 45° and 225°
	assert.InDelta(t, 0.6, ring[1].Position.Y(), 1e-5)
	assert.InDelta(t, 0.6, ring[5].Position.Y(), 1e-5)
	assert.InDelta(t, -0.6, ring[3].Position.Y(), 1e-5)
}

func TestRingParams_Configurable(t *testing.T) {
	flat := RingParams{Count: 12, Radius: 4, BobAmplitude: 0}.Generate()
	for _, p := range flat {
		assert.Zero(t, p.Position.Y())
	}
}

func TestGenerateBelt_Deterministic(t *testing.T) {
	a := GenerateBelt(80, 6, 1.5)
	b := GenerateBelt(80, 6, 1.5)
	require.Len(t, a, 80)
	assert.Equal(t, a, b)
}

func TestGenerateBelt_Scatter(t *testing.T) {
	belt := GenerateBelt(80, 6, 1.5)

	for i, p := range belt {
		assert.InDelta(t, 6, xzRadius(p), 1e-3)
		assert.InDelta(t, (Noise(i)-0.5)*1.5, p.Position.Y(), 1e-5)
		assert.LessOrEqual(t, math.Abs(float64(p.Position.Y())), 0.75)
		assert.InDelta(t, -RingAngle(i, 80), p.Yaw, 1e-6)
	}
}

func TestGenerateBelt_Empty(t *testing.T) {
	assert.Empty(t, GenerateBelt(0, 6, 1.5))
}

func TestLayoutCache(t *testing.T) {
	c := NewLayoutCache()
	p := RingParams{Count: 26, Radius: 33, BobAmplitude: 0.6, BobCycles: 2}

	first := c.Ring(p)
	second := c.Ring(p)
	require.Len(t, first, 26)
	assert.Same(t, &first[0], &second[0], "same params must reuse the layout")
	assert.Equal(t, GenerateRing(26, 33), first)

	p.Radius = 20
	third := c.Ring(p)
	assert.NotSame(t, &first[0], &third[0])

	c.Belt(BeltParams{Count: 80, Radius: 6, VerticalSpread: 1.5})
	assert.Equal(t, 3, c.Len())
}
