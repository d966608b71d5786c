package universe

import (
	"testing"

	"github.com/gekko3d/universe/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestComputeScale(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		target float32
		sx, sy float32
	}{
		{"landscape", 400, 200, 1, 1, 0.5},
		{"portrait", 200, 400, 0.75, 0.75, 1.5},
		{"square", 64, 64, 0.45, 0.45, 0.45},
		{"zero height", 400, 0, 0.75, 0.75, 0.75},
		{"zero width", 0, 300, 0.45, 0.45, 0.45},
		{"negative", -10, 20, 2, 2, 2},
		{"zero target", 400, 200, 0, 1, 1},
		{"negative target", 400, 200, -3, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := ComputeScale(tt.w, tt.h, tt.target)
			assert.InDelta(t, tt.sx, sx, 1e-6)
			assert.InDelta(t, tt.sy, sy, 1e-6)
		})
	}
}

func TestBillboard_FitIsIdempotent(t *testing.T) {
	tex := &scene.Texture{Ref: "a.png", Width: 400, Height: 200}
	b := NewBillboard("b", tex, 1)

	assert.Equal(t, mgl32.Vec3{1, 0.5, 1}, b.Node.Transform.Scale)
	assert.Same(t, tex, b.Node.Material.Map)
	assert.False(t, b.Fit(tex))
	assert.False(t, b.Fit(tex))
}

func TestBillboard_FitRescalesOnChange(t *testing.T) {
	b := NewBillboard("b", nil, 0.75)
	assert.Equal(t, mgl32.Vec3{0.75, 0.75, 1}, b.Node.Transform.Scale)

	// the aspect is corrected once the real texture arrives
	tex := &scene.Texture{Ref: "a.png", Width: 300, Height: 600}
	assert.True(t, b.Fit(tex))
	assert.InDelta(t, 1.5, b.Node.Transform.Scale.Y(), 1e-6)

	b.TargetWidth = 0.45
	assert.True(t, b.Fit(tex))
	assert.InDelta(t, 0.45, b.Node.Transform.Scale.X(), 1e-6)
	assert.InDelta(t, 0.9, b.Node.Transform.Scale.Y(), 1e-6)
}
