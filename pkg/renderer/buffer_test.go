package renderer

import (
	"testing"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

func TestPixelBufferRGB24(t *testing.T) {
	buf := NewPixelBuffer(2, 1)
	buf.Set(0, 0, core.NewVec3(1, 0.5, 0))
	buf.Set(1, 0, core.NewVec3(-1, 2, 0.999))

	tests := []struct {
		x    int
		want uint32
	}{
		{0, 0xFF8000},
		{1, 0x00FFFF},
	}
	for _, tt := range tests {
		if got := buf.RGB24(tt.x, 0); got != tt.want {
			t.Errorf("Pixel %d: expected %06X, got %06X", tt.x, tt.want, got)
		}
	}
}

func TestPixelBufferRowMajor(t *testing.T) {
	buf := NewPixelBuffer(3, 2)
	buf.Set(2, 1, core.NewVec3(1, 1, 1))
	if buf.Pixels[1*3+2] != core.NewVec3(1, 1, 1) {
		t.Error("Expected (2,1) at index y*width+x")
	}
}

func TestPixelBufferCloneIsIndependent(t *testing.T) {
	buf := NewPixelBuffer(2, 2)
	buf.Set(0, 0, core.NewVec3(0.5, 0.5, 0.5))

	clone := buf.Clone()
	buf.Set(0, 0, core.NewVec3(1, 0, 0))

	if clone.At(0, 0) != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Clone changed with the original: %v", clone.At(0, 0))
	}
	if clone.Width != 2 || clone.Height != 2 {
		t.Errorf("Clone has wrong size %dx%d", clone.Width, clone.Height)
	}
}

func TestPixelBufferToImage(t *testing.T) {
	buf := NewPixelBuffer(2, 1)
	buf.Set(1, 0, core.NewVec3(1, 0, 0))

	img := buf.ToImage()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}
	c := img.RGBAAt(1, 0)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("Expected opaque red, got %v", c)
	}
	if img.RGBAAt(0, 0).A != 255 {
		t.Error("Expected black pixel to be opaque")
	}
}
