package output

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func TestProgressionEncode(t *testing.T) {
	p := NewProgression(10)
	for i := 0; i < 3; i++ {
		p.AddFrame(testBuffer())
	}
	if p.Len() != 3 {
		t.Fatalf("Expected 3 frames, got %d", p.Len())
	}

	var b bytes.Buffer
	if err := p.Encode(&b); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	anim, err := gif.DecodeAll(&b)
	if err != nil {
		t.Fatalf("Output is not a GIF: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(anim.Image))
	}
	if got := anim.Image[0].Bounds(); got.Dx() != 2 || got.Dy() != 2 {
		t.Errorf("Expected 2x2 frames, got %v", got)
	}
	want := []int{10, 10, 30}
	for i, d := range anim.Delay {
		if d != want[i] {
			t.Errorf("Frame %d: expected delay %d, got %d", i, want[i], d)
		}
	}

	// Red stays red through the palette
	r, g, b2, _ := anim.Image[0].At(0, 0).RGBA()
	if r>>8 < 200 || g>>8 > 50 || b2>>8 > 50 {
		t.Errorf("Expected red top-left pixel, got %d %d %d", r>>8, g>>8, b2>>8)
	}
}

func TestProgressionEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := NewProgression(10).Encode(&b); err == nil {
		t.Error("Expected an error for a progression without frames")
	}
}

func TestProgressionSave(t *testing.T) {
	p := NewProgression(5)
	p.AddFrame(testBuffer())

	path := filepath.Join(t.TempDir(), "anim", "progress.gif")
	if err := p.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("Expected a non-empty file at %s: %v", path, err)
	}
}
