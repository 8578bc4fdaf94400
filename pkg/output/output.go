package output

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-progressive-pathtracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned by SaveFile for unknown file extensions
var ErrUnsupportedFormat = errors.New("output: unsupported image format")

// WritePNG encodes buf as an 8-bit PNG
func WritePNG(w io.Writer, buf *renderer.PixelBuffer) error {
	if err := png.Encode(w, buf.ToImage()); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SaveFile writes buf to path, choosing PPM or PNG by extension.
// Missing parent directories are created.
func SaveFile(path string, buf *renderer.PixelBuffer) error {
	var write func(io.Writer, *renderer.PixelBuffer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		write = WritePPM
	case ".png":
		write = WritePNG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := write(file, buf); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
