package geometry

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// HittableList is an ordered collection searched linearly for the nearest hit
type HittableList struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding objects
func NewHittableList(objects ...Hittable) *HittableList {
	l := &HittableList{bbox: core.EmptyAABB}
	for _, o := range objects {
		l.Add(o)
	}
	return l
}

// Add appends an object and grows the bounding box to include it
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

func (l *HittableList) Clear() {
	l.Objects = nil
	l.bbox = core.EmptyAABB
}

func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit over all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
