package material

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

// DiffuseLight is a light-emitting material. It never scatters.
type DiffuseLight struct {
	Emit Texture
	// OneSided restricts emission to the front face of the surface
	OneSided bool
}

// NewDiffuseLight creates a light emitting a constant color from both faces
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission follows a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter absorbs every incoming ray
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func (d *DiffuseLight) Emitted(hit HitRecord) core.Vec3 {
	if d.OneSided && !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emit.Value(hit.UV, hit.Point)
}
