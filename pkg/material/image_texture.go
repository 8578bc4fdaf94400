package material

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

// missingImageColor is returned by textures that have no pixel data
var missingImageColor = core.NewVec3(0, 1, 1)

// ImageTexture maps surface coordinates onto a decoded image.
// Pixels hold gamma-encoded channel values in [0, 1].
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value looks up the nearest pixel. UV is clamped to [0,1] and v=1 is the top row.
// The stored value is squared to undo gamma 2 encoding.
func (t *ImageTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) == 0 {
		return missingImageColor
	}

	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	v := 1.0 - unit.Clamp(uv.Y)

	i := int(u * float64(t.Width-1))
	j := int(v * float64(t.Height-1))

	return t.Pixels[j*t.Width+i].Square()
}
