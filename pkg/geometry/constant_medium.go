package geometry

import (
	"math"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// mediumExitEpsilon separates the search for the exit point from the entry point
const mediumExitEpsilon = 0.0001

// ConstantMedium is a convex volume of uniform density, such as smoke or fog.
// Rays passing through scatter at an exponentially distributed distance.
type ConstantMedium struct {
	Boundary      Hittable
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium fills boundary with a medium of the given density whose albedo follows tex.
// It panics if density is not positive.
func NewConstantMedium(boundary Hittable, density float64, tex material.Texture) *ConstantMedium {
	if density <= 0 {
		panic("geometry: medium density must be positive")
	}
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(tex),
		negInvDensity: -1 / density,
	}
}

// NewConstantMediumColor fills boundary with a medium of a single albedo
func NewConstantMediumColor(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.UniverseInterval, sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, core.NewInterval(entry.T+mediumExitEpsilon, math.Inf(1)), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(entry.T, rayT.Min)
	t2 := math.Min(exit.T, rayT.Max)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Material:  m.PhaseFunction,
	}, true
}

func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
