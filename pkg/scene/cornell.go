package scene

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/geometry"
	"github.com/df07/go-progressive-pathtracer/pkg/integrator"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellWalls adds the five walls of the box plus the ceiling light
func cornellWalls(world *geometry.HittableList, light material.Material, lightCorner, lightU, lightV core.Vec3) *material.Lambertian {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Right wall (green) - YZ plane at x=boxSize
	world.Add(geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green))
	// Left wall (red) - YZ plane at x=0
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red))
	// Ceiling light, just below the ceiling
	world.Add(geometry.NewQuad(lightCorner, lightU, lightV, light))
	// Floor (white) - XZ plane at y=0
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white))
	// Ceiling (white) - XZ plane at y=boxSize
	world.Add(geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white))
	// Back wall (white) - XY plane at z=boxSize
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white))

	return white
}

// cornellBoxes returns the tall and short rotated boxes
func cornellBoxes(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))
	return tall, short
}

func cornellCamera(width int) geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Outside the open side of the box
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 1.0,
		VFov:        40,
	}
}

// NewCornellBoxScene creates the classic Cornell box lit by a small ceiling quad
func NewCornellBoxScene(opts Options) (*Scene, error) {
	world := geometry.NewHittableList()
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	white := cornellWalls(world, light,
		core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105))

	tall, short := cornellBoxes(white)
	world.Add(tall)
	world.Add(short)

	return &Scene{
		World:  world,
		Camera: geometry.NewCamera(cornellCamera(opts.width(600))),
		Config: opts.apply(Config{
			SamplesPerPixel: 64,
			MaxDepth:        50,
			Background:      integrator.NewSolidBackground(core.Vec3{}),
		}),
	}, nil
}

// NewCornellSmokeScene replaces the solid boxes with black and white smoke
// and uses a larger, dimmer light
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	world := geometry.NewHittableList()
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	white := cornellWalls(world, light,
		core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305))

	tall, short := cornellBoxes(white)
	world.Add(geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)))

	return &Scene{
		World:  world,
		Camera: geometry.NewCamera(cornellCamera(opts.width(600))),
		Config: opts.apply(Config{
			SamplesPerPixel: 15,
			MaxDepth:        50,
			Background:      integrator.NewSolidBackground(core.Vec3{}),
		}),
	}, nil
}
