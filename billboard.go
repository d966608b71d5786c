package universe

import (
	"github.com/gekko3d/universe/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// ComputeScale returns the quad scale that shows an image of the given
// pixel size targetWidth wide without distorting it. Unknown or zero
// dimensions fall back to a square aspect; a non-positive targetWidth
// yields unit scale.
func ComputeScale(imageWidthPx, imageHeightPx int, targetWidth float32) (scaleX, scaleY float32) {
	if targetWidth <= 0 {
		return 1, 1
	}
	aspect := float32(1)
	if imageWidthPx > 0 && imageHeightPx > 0 {
		aspect = float32(imageWidthPx) / float32(imageHeightPx)
	}
	return targetWidth, targetWidth / aspect
}

// Billboard keeps a textured quad sized to its image.
type Billboard struct {
	Node        *scene.Node
	TargetWidth float32

	sizedFor   *scene.Texture
	sizedWidth float32
	sized      bool
}

func NewBillboard(name string, tex *scene.Texture, targetWidth float32) *Billboard {
	b := &Billboard{
		Node:        scene.NewBillboard(name, tex),
		TargetWidth: targetWidth,
	}
	b.Fit(tex)
	return b
}

// Fit points the billboard at tex and rescales it when the texture or the
// target width changed since the last call. A nil texture is sized square;
// the real aspect is applied when Fit is called with the loaded texture.
func (b *Billboard) Fit(tex *scene.Texture) bool {
	if b.sized && tex == b.sizedFor && b.TargetWidth == b.sizedWidth {
		return false
	}

	var w, h int
	if tex != nil {
		w, h = tex.Width, tex.Height
	}
	sx, sy := ComputeScale(w, h, b.TargetWidth)

	b.Node.Material.Map = tex
	b.Node.Transform.Scale = mgl32.Vec3{sx, sy, 1}
	b.sizedFor = tex
	b.sizedWidth = b.TargetWidth
	b.sized = true
	return true
}
