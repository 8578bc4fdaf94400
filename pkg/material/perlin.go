package material

import (
	"math"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient noise generator over a 256-entry lattice
type Perlin struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin builds the lattice gradients and permutation tables from sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.randVec {
		p.randVec[i] = core.NewVec3(
			core.RandomRange(sampler, -1, 1),
			core.RandomRange(sampler, -1, 1),
			core.RandomRange(sampler, -1, 1),
		).Normalize()
	}
	perlinGeneratePerm(&p.permX, sampler)
	perlinGeneratePerm(&p.permY, sampler)
	perlinGeneratePerm(&p.permZ, sampler)
	return p
}

// Noise returns smoothed gradient noise at p, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randVec[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(&c, u, v, w)
}

// Turbulence sums depth octaves of noise, halving the weight and doubling the frequency each time
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

func perlinGeneratePerm(perm *[perlinPointCount]int, sampler core.Sampler) {
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		target := core.RandomInt(sampler, 0, i)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// perlinInterp blends the corner gradients with Hermite-smoothed trilinear weights
func perlinInterp(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}
