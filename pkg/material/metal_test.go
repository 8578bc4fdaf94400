package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRayAtTime(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0), 0.25)
	hit := HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	result, scattered := metal.Scatter(ray, hit, sampler)
	if !scattered {
		t.Fatal("Expected mirror reflection to scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, result.Scattered.Direction)
	}
	if result.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, result.Attenuation)
	}
	if result.Scattered.Time != ray.Time {
		t.Errorf("Expected scattered ray to keep time %f, got %f", ray.Time, result.Scattered.Time)
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	// A grazing ray with full fuzz regularly gets pushed under the surface
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	absorbed := 0
	for i := 0; i < 200; i++ {
		result, scattered := metal.Scatter(ray, hit, sampler)
		if !scattered {
			absorbed++
			continue
		}
		if result.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered ray below surface: %v", result.Scattered.Direction)
		}
	}
	if absorbed == 0 {
		t.Error("Expected some grazing rays to be absorbed")
	}
}
