package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomUnitVector(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Sample %d has length %f", i, v.Length())
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Sample %d left the z=0 plane: %v", i, p)
		}
		if p.LengthSquared() > 1.0+1e-9 {
			t.Fatalf("Sample %d outside unit disk: %v", i, p)
		}
	}
}

func TestSampleSquareRange(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		s := SampleSquare(sampler)
		if s.X < -0.5 || s.X >= 0.5 || s.Y < -0.5 || s.Y >= 0.5 {
			t.Fatalf("Jitter out of range: %v", s)
		}
	}
}

func TestRandomIntInclusive(t *testing.T) {
	sampler := NewSeededSampler(1)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := RandomInt(sampler, 0, 2)
		if n < 0 || n > 2 {
			t.Fatalf("RandomInt out of range: %d", n)
		}
		seen[n] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all of 0..2 to appear, saw %v", seen)
	}
}

func TestSeededSamplerDeterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical streams for identical seeds")
		}
	}
}
