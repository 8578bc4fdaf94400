package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-progressive-pathtracer/pkg/renderer"
)

// WritePPM writes buf as a plain-text P3 image: a header of
// "P3\n<width> <height>\n255\n" followed by one "R G B" line per pixel in
// row-major order
func WritePPM(w io.Writer, buf *renderer.PixelBuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", buf.Width, buf.Height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b := buf.RGB(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("writing ppm pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing ppm: %w", err)
	}
	return nil
}
