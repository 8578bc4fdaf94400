package material

import (
	"math"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

// Dielectric is a clear material such as glass or water. Each scatter either
// reflects or refracts; the choice is made stochastically by Fresnel reflectance.
type Dielectric struct {
	// RefractiveIndex is relative to the enclosing medium, so a bubble of air
	// inside glass uses 1/1.5
	RefractiveIndex float64
}

func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// relativeIndex is eta_in / eta_out for a ray crossing the surface at hit
func (d *Dielectric) relativeIndex(hit HitRecord) float64 {
	if hit.FrontFace {
		return 1 / d.RefractiveIndex
	}
	return d.RefractiveIndex
}

// Scatter never absorbs and never tints
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	eta := d.relativeIndex(hit)
	in := rayIn.Direction.Normalize()

	cosTheta := math.Min(in.Negate().Dot(hit.Normal), 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	// Matched indices form no interface, so nothing reflects
	direction := in
	if eta != 1 {
		direction = core.Refract(in, hit.Normal, eta)
		if totalInternalReflection(eta, sinTheta) || Reflectance(cosTheta, eta) > sampler.Get1D() {
			direction = core.Reflect(in, hit.Normal)
		}
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// totalInternalReflection reports whether Snell's law has no solution
func totalInternalReflection(eta, sinTheta float64) bool {
	return eta*sinTheta > 1
}

// Reflectance is Schlick's approximation of the Fresnel reflectance for an
// incident cosine and relative refractive index
func Reflectance(cosine, eta float64) float64 {
	r0 := math.Pow((1-eta)/(1+eta), 2)
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
