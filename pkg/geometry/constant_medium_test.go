package geometry

import (
	"testing"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

func TestConstantMedium_DenseScattersNearEntry(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 1, nil)
	fog := NewConstantMediumColor(boundary, 1e6, core.NewVec3(0.5, 0.5, 0.5))
	sampler := newTestSampler()

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	for i := 0; i < 100; i++ {
		hit, ok := fog.Hit(ray, hitRange, sampler)
		if !ok {
			t.Fatal("Expected dense medium to scatter")
		}
		if hit.T < 4 || hit.T > 4.01 {
			t.Fatalf("Expected scatter just past entry at t=4, got %f", hit.T)
		}
		if !hit.FrontFace || hit.Normal != core.NewVec3(1, 0, 0) {
			t.Fatalf("Unexpected synthesized normal %v front=%v", hit.Normal, hit.FrontFace)
		}
		if _, ok := hit.Material.(*material.Isotropic); !ok {
			t.Fatalf("Expected isotropic phase function, got %T", hit.Material)
		}
	}
}

func TestConstantMedium_ThinPassesThrough(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 1, nil)
	fog := NewConstantMediumColor(boundary, 1e-9, core.NewVec3(1, 1, 1))
	sampler := newTestSampler()

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	for i := 0; i < 100; i++ {
		if _, ok := fog.Hit(ray, hitRange, sampler); ok {
			t.Fatal("Expected near-vacuum medium to be transparent")
		}
	}
}

func TestConstantMedium_RayStartingInside(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 1, nil)
	fog := NewConstantMediumColor(boundary, 1e6, core.NewVec3(1, 1, 1))

	ray := core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0))
	hit, ok := fog.Hit(ray, hitRange, newTestSampler())
	if !ok {
		t.Fatal("Expected scatter inside dense medium")
	}
	if hit.T < hitRange.Min || hit.T > 0.01 {
		t.Errorf("Expected scatter near the ray origin, got t=%f", hit.T)
	}
}

func TestConstantMedium_MissesOutsideInterval(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 1, nil)
	fog := NewConstantMediumColor(boundary, 1e6, core.NewVec3(1, 1, 1))

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	if _, ok := fog.Hit(ray, core.NewInterval(0.001, 3), newTestSampler()); ok {
		t.Error("Expected no scatter when the interval ends before the medium")
	}
}

func TestConstantMedium_PanicsOnNonPositiveDensity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero density")
		}
	}()
	NewConstantMediumColor(NewSphere(core.Vec3{}, 1, nil), 0, core.NewVec3(1, 1, 1))
}
