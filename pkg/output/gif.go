package output

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-progressive-pathtracer/pkg/renderer"
)

// Progression collects pass snapshots into an animated GIF that shows the
// image converging
type Progression struct {
	frames []*image.Paletted
	delays []int
	// Delay is the time each frame is shown, in 100ths of a second
	Delay int
}

func NewProgression(delay int) *Progression {
	return &Progression{Delay: delay}
}

// AddFrame quantizes buf to the Plan 9 palette and appends it
func (p *Progression) AddFrame(buf *renderer.PixelBuffer) {
	img := buf.ToImage()
	frame := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, img.Bounds(), img, image.Point{})
	p.frames = append(p.frames, frame)
	p.delays = append(p.delays, p.Delay)
}

func (p *Progression) Len() int {
	return len(p.frames)
}

// Encode writes the frames as a GIF that loops forever. The last frame is
// held three times as long.
func (p *Progression) Encode(w io.Writer) error {
	if len(p.frames) == 0 {
		return fmt.Errorf("encoding gif: no frames")
	}
	delays := make([]int, len(p.delays))
	copy(delays, p.delays)
	delays[len(delays)-1] *= 3

	anim := &gif.GIF{
		Image:     p.frames,
		Delay:     delays,
		LoopCount: 0,
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}

// Save encodes the progression to path, creating parent directories
func (p *Progression) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := p.Encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
