package core

import (
	"math"
	"math/rand"
)

// Sampler provides random numbers to rendering code.
// Every randomized call takes one explicitly so that tiles can own independent, seeded streams.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator. It is not safe for concurrent use.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomRange returns a value in [min, max)
func RandomRange(sampler Sampler, min, max float64) float64 {
	return min + (max-min)*sampler.Get1D()
}

// RandomInt returns an integer in [min, max]
func RandomInt(sampler Sampler, min, max int) int {
	return int(RandomRange(sampler, float64(min), float64(max+1)))
}

// RandomColor returns a color with each channel in [min, max)
func RandomColor(sampler Sampler, min, max float64) Vec3 {
	return NewVec3(RandomRange(sampler, min, max), RandomRange(sampler, min, max), RandomRange(sampler, min, max))
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	return SampleOnUnitSphere(sampler.Get2D())
}

// RandomInUnitDisk returns a point uniformly distributed in the unit disk on the z=0 plane
func RandomInUnitDisk(sampler Sampler) Vec3 {
	return SamplePointInUnitDisk(sampler.Get2D())
}

// SampleSquare returns an offset in [-0.5, 0.5)² used to jitter a sample within a pixel
func SampleSquare(sampler Sampler) Vec2 {
	s := sampler.Get2D()
	return NewVec2(s.X-0.5, s.Y-0.5)
}

// SampleOnUnitSphere maps a uniform 2D sample to a uniform direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SamplePointInUnitDisk maps a square sample to the unit disk using concentric mapping,
// which avoids rejection sampling
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	ox, oy := 2*sample.X-1, 2*sample.Y-1
	if ox == 0 && oy == 0 {
		return Vec3{}
	}

	var theta, r float64
	if math.Abs(ox) > math.Abs(oy) {
		r = ox
		theta = math.Pi / 4 * (oy / ox)
	} else {
		r = oy
		theta = math.Pi/2 - math.Pi/4*(ox/oy)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}
