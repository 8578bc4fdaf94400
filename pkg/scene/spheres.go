package scene

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/geometry"
	"github.com/df07/go-progressive-pathtracer/pkg/integrator"
	"github.com/df07/go-progressive-pathtracer/pkg/loaders"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

var daylight = integrator.NewSolidBackground(core.NewVec3(0.7, 0.8, 1.0))

// groundChecker is the green and white checker under the sphere scenes
func groundChecker() *material.CheckerTexture {
	return material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
}

// wideCamera frames the origin from (13, 2, 3) with a narrow field of view
func wideCamera(width int, lookAt core.Vec3) geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      lookAt,
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 16.0 / 9.0,
		VFov:        20,
	}
}

// NewBouncingSpheresScene creates a grid of small random spheres around three
// large feature spheres. Diffuse spheres move upward during the exposure.
func NewBouncingSpheresScene(opts Options) (*Scene, error) {
	sampler := opts.sampler()
	world := geometry.NewHittableList()

	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(groundChecker())))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomColor(sampler, 0, 1).MultiplyVec(core.RandomColor(sampler, 0, 1))
				center2 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomColor(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	camera := wideCamera(opts.width(1000), core.NewVec3(0, 0, -1))
	camera.DefocusAngle = 0.6
	camera.FocusDistance = 10

	return &Scene{
		World:  geometry.NewHittableList(geometry.NewBVH(world, sampler)),
		Camera: geometry.NewCamera(camera),
		Config: opts.apply(Config{SamplesPerPixel: 15, MaxDepth: 50, Background: daylight}),
	}, nil
}

// NewCheckeredSpheresScene creates two large spheres sharing one solid checker texture
func NewCheckeredSpheresScene(opts Options) (*Scene, error) {
	checker := material.NewTexturedLambertian(groundChecker())
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	camera := wideCamera(opts.width(400), core.NewVec3(0, 0, 0))
	camera.DefocusAngle = 0.6

	return &Scene{
		World:  geometry.NewHittableList(geometry.NewBVH(world, opts.sampler())),
		Camera: geometry.NewCamera(camera),
		Config: opts.apply(Config{SamplesPerPixel: 15, MaxDepth: 50, Background: daylight}),
	}, nil
}

// earthTexture loads the texture image, or returns a checker when no path is set
func earthTexture(opts Options) (material.Texture, error) {
	if opts.TexturePath == "" {
		return material.NewCheckerColors(0.5, core.NewVec3(0.1, 0.3, 0.7), core.NewVec3(0.2, 0.6, 0.2)), nil
	}
	texture, err := loaders.LoadImageTexture(opts.TexturePath)
	if err != nil {
		return nil, err
	}
	return texture, nil
}

// NewEarthScene creates a single image-textured globe
func NewEarthScene(opts Options) (*Scene, error) {
	texture, err := earthTexture(opts)
	if err != nil {
		return nil, err
	}

	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture))

	camera := wideCamera(opts.width(400), core.NewVec3(0, 0, 0))
	camera.Center = core.NewVec3(0, 0, 12)

	return &Scene{
		World:  geometry.NewHittableList(globe),
		Camera: geometry.NewCamera(camera),
		Config: opts.apply(Config{SamplesPerPixel: 15, MaxDepth: 50, Background: daylight}),
	}, nil
}

// NewPerlinSpheresScene creates a smooth-noise ground with a marbled sphere on top
func NewPerlinSpheresScene(opts Options) (*Scene, error) {
	sampler := opts.sampler()
	ground := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	marble := material.NewTexturedLambertian(material.NewMarbleTexture(4, sampler))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return &Scene{
		World:  world,
		Camera: geometry.NewCamera(wideCamera(opts.width(400), core.NewVec3(0, 0, 0))),
		Config: opts.apply(Config{SamplesPerPixel: 15, MaxDepth: 50, Background: daylight}),
	}, nil
}
