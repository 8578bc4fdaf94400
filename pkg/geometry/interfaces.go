package geometry

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect: primitives, aggregates and instance transforms
type Hittable interface {
	// Hit returns the nearest intersection with parameter t inside rayT.
	// The sampler is consumed by participating media only.
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
