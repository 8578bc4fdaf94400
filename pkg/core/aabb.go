package core

// aabbMinThickness is the smallest extent any axis of a box may have,
// so that planar primitives still produce a hittable volume.
const aabbMinThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing and is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates a box from three axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// NewAABBFromPoints creates the box with opposite corners a and b, in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	return NewAABB(
		orderedInterval(a.X, b.X),
		orderedInterval(a.Y, b.Y),
		orderedInterval(a.Z, b.Z),
	)
}

// NewAABBFromBoxes returns the union of two boxes
func NewAABBFromBoxes(a, b AABB) AABB {
	return a.Union(b)
}

func orderedInterval(a, b float64) Interval {
	if a <= b {
		return NewInterval(a, b)
	}
	return NewInterval(b, a)
}

// AxisInterval returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (aabb AABB) AxisInterval(n int) Interval {
	switch n {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	}
	panic("core: aabb axis out of range")
}

// Hit tests whether the ray passes through the box anywhere inside rayT, using the slab method.
// Division by a zero direction component yields ±Inf and falls out of the comparisons naturally.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		adinv := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (ax.Min - origin) * adinv
		t1 := (ax.Max - origin) * adinv
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// Union returns a box that bounds both boxes
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: NewIntervalFromIntervals(aabb.X, other.X),
		Y: NewIntervalFromIntervals(aabb.Y, other.Y),
		Z: NewIntervalFromIntervals(aabb.Z, other.Z),
	}
}

// Translate shifts the box by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Offset(offset.X),
		Y: aabb.Y.Offset(offset.Y),
		Z: aabb.Z.Offset(offset.Z),
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() {
		if aabb.X.Size() > aabb.Z.Size() {
			return 0
		}
		return 2
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}

func (aabb AABB) padToMinimums() AABB {
	if aabb.X.Size() < aabbMinThickness {
		aabb.X = aabb.X.Expand(aabbMinThickness)
	}
	if aabb.Y.Size() < aabbMinThickness {
		aabb.Y = aabb.Y.Expand(aabbMinThickness)
	}
	if aabb.Z.Size() < aabbMinThickness {
		aabb.Z = aabb.Z.Expand(aabbMinThickness)
	}
	return aabb
}
