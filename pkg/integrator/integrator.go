package integrator

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from world
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
}

// Background supplies the radiance of rays that leave the scene
type Background interface {
	Radiance(ray core.Ray) core.Vec3
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Color core.Vec3
}

func NewSolidBackground(color core.Vec3) SolidBackground {
	return SolidBackground{Color: color}
}

func (b SolidBackground) Radiance(ray core.Ray) core.Vec3 {
	return b.Color
}

// SkyGradient blends vertically from Bottom (straight down) to Top (straight up)
type SkyGradient struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewSkyGradient returns the familiar white-to-blue sky
func NewSkyGradient() SkyGradient {
	return SkyGradient{Bottom: core.NewVec3(1, 1, 1), Top: core.NewVec3(0.5, 0.7, 1.0)}
}

func (g SkyGradient) Radiance(ray core.Ray) core.Vec3 {
	a := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return g.Bottom.Lerp(g.Top, a)
}
