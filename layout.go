package universe

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultBobAmplitude = 0.6
	DefaultBobCycles    = 2
)

// Placement is where one billboard sits within its group. Yaw turns the
// billboard to face the group's centre.
type Placement struct {
	Position mgl32.Vec3
	Yaw      float32
}

// RingParams places Count items evenly on a circle, bobbing vertically
// BobCycles times per revolution.
type RingParams struct {
	Count        int
	Radius       float32
	BobAmplitude float32
	BobCycles    int
}

// BeltParams places Count items evenly on a circle with a stable,
// noise-driven vertical scatter of VerticalSpread.
type BeltParams struct {
	Count          int
	Radius         float32
	VerticalSpread float32
}

// GenerateRing lays out count placements on a ring of the given radius
// with the default bob.
func GenerateRing(count int, radius float32) []Placement {
	return RingParams{
		Count:        count,
		Radius:       radius,
		BobAmplitude: DefaultBobAmplitude,
		BobCycles:    DefaultBobCycles,
	}.Generate()
}

func GenerateBelt(count int, radius, verticalSpread float32) []Placement {
	return BeltParams{Count: count, Radius: radius, VerticalSpread: verticalSpread}.Generate()
}

func (p RingParams) Generate() []Placement {
	return circle(p.Count, p.Radius, func(i int, theta float64) float64 {
		return math.Sin(float64(p.BobCycles)*theta) * float64(p.BobAmplitude)
	})
}

func (p BeltParams) Generate() []Placement {
	return circle(p.Count, p.Radius, func(i int, theta float64) float64 {
		return (Noise(i) - 0.5) * float64(p.VerticalSpread)
	})
}

// RingAngle is the angle of item i out of count on a ring.
func RingAngle(i, count int) float64 {
	return 2 * math.Pi * float64(i) / float64(count)
}

func circle(count int, radius float32, height func(i int, theta float64) float64) []Placement {
	if count <= 0 || radius <= 0 {
		return []Placement{}
	}

	r := float64(radius)
	out := make([]Placement, count)
	for i := range out {
		theta := RingAngle(i, count)
		sin, cos := math.Sincos(theta)
		out[i] = Placement{
			Position: mgl32.Vec3{float32(r * cos), float32(height(i, theta)), float32(r * sin)},
			Yaw:      float32(-theta),
		}
	}
	return out
}

// LayoutCache memoizes layouts by their parameters. Callers must not
// modify the returned slices.
type LayoutCache struct {
	rings map[RingParams][]Placement
	belts map[BeltParams][]Placement
}

func NewLayoutCache() *LayoutCache {
	return &LayoutCache{
		rings: make(map[RingParams][]Placement),
		belts: make(map[BeltParams][]Placement),
	}
}

func (c *LayoutCache) Ring(p RingParams) []Placement {
	if l, ok := c.rings[p]; ok {
		return l
	}
	l := p.Generate()
	c.rings[p] = l
	return l
}

func (c *LayoutCache) Belt(p BeltParams) []Placement {
	if l, ok := c.belts[p]; ok {
		return l
	}
	l := p.Generate()
	c.belts[p] = l
	return l
}

func (c *LayoutCache) Len() int {
	return len(c.rings) + len(c.belts)
}
