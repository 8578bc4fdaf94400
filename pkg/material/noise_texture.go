package material

import (
	"math"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

// NoisePattern selects how a NoiseTexture turns Perlin noise into a gray level
type NoisePattern int

const (
	// NoiseSmooth maps raw noise to 0.5*(1+noise(scale*p))
	NoiseSmooth NoisePattern = iota
	// NoiseMarble phase-shifts a sine along z by turbulence
	NoiseMarble
)

const turbulenceDepth = 7

// NoiseTexture is a procedural gray texture driven by Perlin noise
type NoiseTexture struct {
	noise   *Perlin
	Scale   float64
	Pattern NoisePattern
}

// NewNoiseTexture creates a smooth noise texture with frequency scale
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(sampler), Scale: scale}
}

// NewMarbleTexture creates a turbulence-perturbed marble texture
func NewMarbleTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(sampler), Scale: scale, Pattern: NoiseMarble}
}

func (n *NoiseTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	var gray float64
	switch n.Pattern {
	case NoiseMarble:
		gray = 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.noise.Turbulence(point, turbulenceDepth)))
	default:
		gray = 0.5 * (1 + n.noise.Noise(point.Multiply(n.Scale)))
	}
	return core.NewVec3(gray, gray, gray)
}
