package geometry

import (
	"math"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// Sphere is a stationary or linearly moving sphere.
// A moving sphere is at Center at time 0 and at Center+Motion at time 1.
type Sphere struct {
	Center   core.Vec3
	Motion   core.Vec3
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a stationary sphere. It panics if radius is not positive.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return newSphere(center, core.Vec3{}, radius, mat)
}

// NewMovingSphere creates a sphere moving from center1 at time 0 to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) *Sphere {
	return newSphere(center1, center2.Subtract(center1), radius, mat)
}

func newSphere(center, motion core.Vec3, radius float64, mat material.Material) *Sphere {
	if radius <= 0 {
		panic("geometry: sphere radius must be positive")
	}

	s := &Sphere{
		Center:   center,
		Motion:   motion,
		Radius:   radius,
		Material: mat,
	}

	rvec := core.NewVec3(radius, radius, radius)
	start := core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec))
	end := center.Add(motion)
	s.bbox = start.Union(core.NewAABBFromPoints(end.Subtract(rvec), end.Add(rvec)))
	return s
}

// CenterAt returns the center at the given shutter time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.Motion.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	oc := center.Subtract(ray.Origin)

	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Nearest root inside the open interval
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.UV = sphereUV(outwardNormal)

	return hit, true
}

// BoundingBox covers the whole swept volume for moving spheres
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting at -X, v runs from -Y (0) to +Y (1).
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
