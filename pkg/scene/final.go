package scene

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/geometry"
	"github.com/df07/go-progressive-pathtracer/pkg/integrator"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// NewFinalScene creates the showcase scene: a field of random-height boxes,
// a moving sphere, glass and metal spheres, a fog-filled glass sphere, global
// mist, a textured globe, a noise sphere and a rotated cluster of small spheres
func NewFinalScene(opts Options) (*Scene, error) {
	sampler := opts.sampler()

	// Ground of boxes with random heights
	boxes := geometry.NewHittableList()
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 0, 101)
			boxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}

	world := geometry.NewHittableList()
	world.Add(geometry.NewBVH(boxes, sampler))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 45), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Blue subsurface-looking sphere: glass shell filled with fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 45), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMediumColor(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMediumColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earth, err := earthTexture(opts)
	if err != nil {
		return nil, err
	}
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)))
	world.Add(geometry.NewSphere(core.NewVec3(200, 280, 300), 80,
		material.NewTexturedLambertian(material.NewNoiseTexture(0.2, sampler))))

	// Cluster of small white spheres, rotated and moved into place
	cluster := geometry.NewHittableList()
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	for i := 0; i < 1000; i++ {
		cluster.Add(geometry.NewSphere(core.RandomColor(sampler, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVH(cluster, sampler), 15),
		core.NewVec3(-100, 270, 395),
	))

	camera := geometry.CameraConfig{
		Center:      core.NewVec3(478, 278, -600),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       opts.width(400),
		AspectRatio: 1.0,
		VFov:        40,
	}

	return &Scene{
		World:  world,
		Camera: geometry.NewCamera(camera),
		Config: opts.apply(Config{
			SamplesPerPixel: 250,
			MaxDepth:        40,
			Background:      integrator.NewSolidBackground(core.Vec3{}),
		}),
	}, nil
}
