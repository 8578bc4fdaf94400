package scene

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/geometry"
	"github.com/df07/go-progressive-pathtracer/pkg/integrator"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// NewQuadsScene creates five colored quads boxing in the view axis
func NewQuadsScene(opts Options) (*Scene, error) {
	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	camera := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 9),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       opts.width(400),
		AspectRatio: 1.0,
		VFov:        80,
	}

	return &Scene{
		World:  world,
		Camera: geometry.NewCamera(camera),
		Config: opts.apply(Config{SamplesPerPixel: 15, MaxDepth: 50, Background: daylight}),
	}, nil
}

// NewSimpleLightScene creates noise-textured spheres lit only by a glowing
// sphere and a rectangular light, against a black sky
func NewSimpleLightScene(opts Options) (*Scene, error) {
	perlin := material.NewTexturedLambertian(material.NewNoiseTexture(4, opts.sampler()))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, perlin),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, perlin),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
	)

	camera := geometry.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       opts.width(400),
		AspectRatio: 16.0 / 9.0,
		VFov:        20,
	}

	return &Scene{
		World:  world,
		Camera: geometry.NewCamera(camera),
		Config: opts.apply(Config{
			SamplesPerPixel: 15,
			MaxDepth:        50,
			Background:      integrator.NewSolidBackground(core.Vec3{}),
		}),
	}, nil
}
