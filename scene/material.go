package scene

import (
	"image"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

type MaterialKind uint8

const (
	MaterialBasic MaterialKind = iota
	MaterialStandard
	MaterialFresnel
	MaterialPoints
)

func (k MaterialKind) String() string {
	switch k {
	case MaterialBasic:
		return "basic"
	case MaterialStandard:
		return "standard"
	case MaterialFresnel:
		return "fresnel"
	case MaterialPoints:
		return "points"
	}
	return "unknown"
}

var White = colorful.Color{R: 1, G: 1, B: 1}

// Texture is a decoded image shared by any number of materials. Nodes only
// read its pixel dimensions; the owner is whoever resolved it.
type Texture struct {
	ID     string
	Ref    string
	Width  int
	Height int
	Image  image.Image
}

type Material struct {
	Kind        MaterialKind
	Color       colorful.Color
	Opacity     float32
	Transparent bool

	// Standard
	Roughness       float32
	Metalness       float32
	EnvMapIntensity float32
	Gradient        *Gradient
	Map             *Texture

	// Fresnel
	FresnelPower float32

	// Points
	PointSize float32
}

func BasicMaterial(color colorful.Color, opacity float32) Material {
	return Material{
		Kind:        MaterialBasic,
		Color:       color,
		Opacity:     opacity,
		Transparent: opacity < 1,
	}
}

func TextureMaterial(tex *Texture) Material {
	return Material{
		Kind:        MaterialBasic,
		Color:       White,
		Opacity:     1,
		Transparent: true,
		Map:         tex,
	}
}

func FresnelMaterial(color colorful.Color, power float32) Material {
	return Material{
		Kind:         MaterialFresnel,
		Color:        color,
		Opacity:      1,
		Transparent:  true,
		FresnelPower: power,
	}
}

// FresnelFactor is the rim-light intensity pow(1 - dot(n, v), power):
// zero when looking straight at the surface, brightest at grazing angles.
func FresnelFactor(normal, viewDir mgl32.Vec3, power float32) float32 {
	base := 1 - normal.Normalize().Dot(viewDir.Normalize())
	if base < 0 {
		base = 0
	}
	return float32(math.Pow(float64(base), float64(power)))
}

type GradientStop struct {
	Offset float32
	Color  colorful.Color
}

// Gradient is a linear colour ramp over [0, 1].
type Gradient struct {
	Stops []GradientStop
}

func NewGradient(stops ...GradientStop) *Gradient {
	sorted := append([]GradientStop(nil), stops...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	return &Gradient{Stops: sorted}
}

func (g *Gradient) At(t float32) colorful.Color {
	if g == nil || len(g.Stops) == 0 {
		return White
	}
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		lo, hi := g.Stops[i-1], g.Stops[i]
		if t > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		return lo.Color.BlendRgb(hi.Color, float64((t-lo.Offset)/span))
	}
	return last.Color
}

// Bake samples the gradient into size texels, first and last texel landing
// exactly on the end stops.
func (g *Gradient) Bake(size int) []colorful.Color {
	if size <= 0 {
		return nil
	}
	out := make([]colorful.Color, size)
	if size == 1 {
		out[0] = g.At(0)
		return out
	}
	for i := range out {
		out[i] = g.At(float32(i) / float32(size-1))
	}
	return out
}
