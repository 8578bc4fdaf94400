package scene

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/geometry"
	"github.com/df07/go-progressive-pathtracer/pkg/integrator"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// defaultCamera looks down -Z from the origin with a 90 degree field of view,
// giving a viewport 2 units tall at distance 1
func defaultCamera(width int) geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 16.0 / 9.0,
		VFov:        90,
	}
}

// NewTwoSpheresScene creates a small sphere resting on a huge ground sphere,
// shaded by surface normal under a white-to-blue sky
func NewTwoSpheresScene(opts Options) (*Scene, error) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, mat),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mat),
	)

	return &Scene{
		World:  world,
		Camera: geometry.NewCamera(defaultCamera(opts.width(400))),
		Config: opts.apply(Config{
			SamplesPerPixel: 100,
			MaxDepth:        1,
			Background:      integrator.NewSkyGradient(),
			Shading:         ShadingNormals,
		}),
	}, nil
}

// NewNormalSphereScene creates a single unit sphere at the look-at point
// against a plain white background
func NewNormalSphereScene(opts Options) (*Scene, error) {
	config := defaultCamera(opts.width(200))
	config.Center = core.NewVec3(0, 0, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.VFov = 60

	world := geometry.NewHittableList(
		geometry.NewSphere(config.LookAt, 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	return &Scene{
		World:  world,
		Camera: geometry.NewCamera(config),
		Config: opts.apply(Config{
			SamplesPerPixel: 1,
			MaxDepth:        1,
			Background:      integrator.NewSolidBackground(core.NewVec3(1, 1, 1)),
			Shading:         ShadingNormals,
		}),
	}, nil
}
