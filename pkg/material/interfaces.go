package material

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

// Material decides how light leaves a surface after a ray hits it
type Material interface {
	// Scatter returns the continuation ray and its color attenuation.
	// A false result means the ray was absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emitted(hit HitRecord) core.Vec3
}

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at surface coordinates uv and world point p.
	// UV drives image textures, the point drives procedural ones.
	Value(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.Vec3
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface coordinates
	FrontFace bool      // Whether the ray hit the outside of the surface
	Material  Material
}

// SetFaceNormal orients the normal against the ray and records which side was hit.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Emitted returns the light emitted by m at the hit, or black when m does not emit
func Emitted(m Material, hit HitRecord) core.Vec3 {
	if e, ok := m.(Emitter); ok {
		return e.Emitted(hit)
	}
	return core.Vec3{}
}
