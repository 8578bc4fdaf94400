package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// Translate is an instance of Object displaced by Offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit moves the ray into object space, intersects, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(offsetRay, rayT, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// RotateY is an instance of Object rotated about the world Y axis
type RotateY struct {
	Object Hittable
	// toWorld rotates object space into world space, toObject is its inverse
	toWorld  mgl64.Mat3
	toObject mgl64.Mat3
	bbox     core.AABB
}

// NewRotateY rotates object counterclockwise by angle degrees when viewed from +Y
func NewRotateY(object Hittable, angle float64) *RotateY {
	toWorld := mgl64.Rotate3DY(mgl64.DegToRad(angle))
	r := &RotateY{
		Object:   object,
		toWorld:  toWorld,
		toObject: toWorld.Transpose(),
	}

	// Box around the eight rotated corners of the child box
	box := object.BoundingBox()
	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(i, box.X),
					pick(j, box.Y),
					pick(k, box.Z),
				)
				p := r.rotate(toWorld, corner)
				lo = core.NewVec3(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
				hi = core.NewVec3(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(lo, hi)

	return r
}

func pick(i int, interval core.Interval) float64 {
	if i == 0 {
		return interval.Min
	}
	return interval.Max
}

func (r *RotateY) rotate(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}

// Hit rotates the ray into object space, intersects, and rotates the point and normal back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(
		r.rotate(r.toObject, ray.Origin),
		r.rotate(r.toObject, ray.Direction),
		ray.Time,
	)

	hit, ok := r.Object.Hit(rotated, rayT, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = r.rotate(r.toWorld, hit.Point)
	hit.Normal = r.rotate(r.toWorld, hit.Normal)
	return hit, true
}

func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
