package geometry

import (
	"sort"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// BVHNode is a node of a bounding volume hierarchy. Both children are always set;
// a node built from a single object holds that object on both sides.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// NewBVH builds a hierarchy over the objects of list. The list itself is left untouched.
func NewBVH(list *HittableList, sampler core.Sampler) *BVHNode {
	objects := make([]Hittable, len(list.Objects))
	copy(objects, list.Objects)
	return NewBVHNode(objects, sampler)
}

// NewBVHNode builds a hierarchy over objects, reordering the slice in place.
// Each level sorts by box minimum along a random axis and splits at the midpoint.
// It panics on an empty slice.
func NewBVHNode(objects []Hittable, sampler core.Sampler) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: cannot build a BVH over zero objects")
	}

	node := &BVHNode{}
	axis := core.RandomInt(sampler, 0, 2)

	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		node.Left = objects[0]
		node.Right = objects[1]
	default:
		sortByBoxMin(objects, axis)
		mid := len(objects) / 2
		node.Left = NewBVHNode(objects[:mid], sampler)
		node.Right = NewBVHNode(objects[mid:], sampler)
	}

	node.bbox = node.Left.BoundingBox().Union(node.Right.BoundingBox())
	return node
}

func sortByBoxMin(objects []Hittable, axis int) {
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisInterval(axis).Min < objects[j].BoundingBox().AxisInterval(axis).Min
	})
}

// Hit tests the left subtree first and then searches the right one only up to the left hit
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)

	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, rightT, sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	TotalNodes  int
	LeafObjects int
	MaxDepth    int
}

// Stats walks the hierarchy and counts nodes and leaves
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if inner, ok := child.(*BVHNode); ok {
			inner.collectStats(depth+1, stats)
		} else {
			stats.LeafObjects++
		}
	}
}
