package renderer

import (
	"context"
	"fmt"
	"image"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/geometry"
	"github.com/df07/go-progressive-pathtracer/pkg/integrator"
	"github.com/df07/go-progressive-pathtracer/pkg/scene"
)

// Raytracer takes one sample per pixel over a region of the image
type Raytracer struct {
	world      geometry.Hittable
	camera     *geometry.Camera
	integrator integrator.Integrator
	width      int
	height     int
}

// NewRaytracer creates a raytracer for the given scene
func NewRaytracer(sc *scene.Scene) *Raytracer {
	return &Raytracer{
		world:      sc.World,
		camera:     sc.Camera,
		integrator: sc.NewIntegrator(),
		width:      sc.Camera.Width(),
		height:     sc.Camera.Height(),
	}
}

// RenderBounds adds one sample to every pixel inside bounds. Rows are visited
// top to bottom and the context is checked before each row, so a cancelled
// render stops partway through a tile. Returns the number of samples taken.
func (rt *Raytracer) RenderBounds(ctx context.Context, bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler) (int, error) {
	samples := 0
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		if err := ctx.Err(); err != nil {
			return samples, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ray := rt.camera.GetRay(i, j, sampler)
			color := rt.integrator.RayColor(ray, rt.world, sampler)
			pixelStats[j][i].AddSample(color)
			samples++
		}
	}
	return samples, nil
}
