package renderer

import (
	"time"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

// RenderStats contains statistics about a completed pass
type RenderStats struct {
	PassNumber      int           // 1-based pass index
	SamplesPerPixel int           // Samples accumulated in every pixel so far
	TotalPixels     int           // Pixels in the image
	TotalSamples    int           // Samples taken across all passes
	PassDuration    time.Duration // Wall time of this pass
	TotalDuration   time.Duration // Wall time since the first pass started
}

// PixelStats holds the running mean of the samples taken for one pixel
type PixelStats struct {
	Mean        core.Vec3
	SampleCount int
}

// AddSample folds a new sample into the mean as mean*(n-1)/n + s/n
func (ps *PixelStats) AddSample(sample core.Vec3) {
	ps.SampleCount++
	n := float64(ps.SampleCount)
	ps.Mean = ps.Mean.Multiply((n - 1) / n).Add(sample.Multiply(1 / n))
}

// GetColor returns the current linear mean color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	return ps.Mean
}
