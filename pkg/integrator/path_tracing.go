package integrator

import (
	"math"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/geometry"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// shadowAcneEpsilon keeps secondary rays from re-hitting the surface they left
const shadowAcneEpsilon = 0.001

// hitInterval is the parameter range searched for every ray
var hitInterval = core.NewInterval(shadowAcneEpsilon, math.Inf(1))

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce limit
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, pt.MaxDepth, sampler)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, hitInterval, sampler)
	if !isHit {
		return pt.Background.Radiance(ray)
	}

	colorEmitted := material.Emitted(hit.Material, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, world, depth-1, sampler))
	return colorEmitted.Add(colorScattered)
}

// NormalIntegrator shades each hit by its surface normal, mapped from [-1,1] to [0,1].
// It is a debugging aid that makes geometry visible without any lighting.
type NormalIntegrator struct {
	Background Background
}

func NewNormalIntegrator(background Background) *NormalIntegrator {
	return &NormalIntegrator{Background: background}
}

func (n *NormalIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	hit, isHit := world.Hit(ray, hitInterval, sampler)
	if !isHit {
		return n.Background.Radiance(ray)
	}
	return NormalColor(hit.Normal)
}

// NormalColor maps a unit normal to an RGB color
func NormalColor(normal core.Vec3) core.Vec3 {
	return normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
