package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

// PixelBuffer is a row-major grid of display-ready colors in [0, 1].
// Snapshots handed out by the renderer are already gamma corrected.
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewPixelBuffer creates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y), where y = 0 is the top row
func (b *PixelBuffer) At(x, y int) core.Vec3 {
	return b.Pixels[y*b.Width+x]
}

func (b *PixelBuffer) Set(x, y int, c core.Vec3) {
	b.Pixels[y*b.Width+x] = c
}

// RGB returns pixel (x, y) as 8-bit channels
func (b *PixelBuffer) RGB(x, y int) (r, g, bl uint8) {
	c := b.At(x, y)
	return to8Bit(c.X), to8Bit(c.Y), to8Bit(c.Z)
}

// RGB24 returns pixel (x, y) packed as 0xRRGGBB
func (b *PixelBuffer) RGB24(x, y int) uint32 {
	r, g, bl := b.RGB(x, y)
	return uint32(r)<<16 | uint32(g)<<8 | uint32(bl)
}

// Clone returns a deep copy that shares no memory with b
func (b *PixelBuffer) Clone() *PixelBuffer {
	pixels := make([]core.Vec3, len(b.Pixels))
	copy(pixels, b.Pixels)
	return &PixelBuffer{Width: b.Width, Height: b.Height, Pixels: pixels}
}

// ToImage converts the buffer to an opaque RGBA image
func (b *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			r, g, bl := b.RGB(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 255})
		}
	}
	return img
}

var displayRange = core.NewInterval(0, 0.999)

func to8Bit(c float64) uint8 {
	return uint8(256 * displayRange.Clamp(c))
}
