package core

import (
	"math"
	"testing"
)

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v, n     Vec3
		expected Vec3
	}{
		{"Straight down onto floor", NewVec3(0, -1, 0), NewVec3(0, 1, 0), NewVec3(0, 1, 0)},
		{"Diagonal onto floor", NewVec3(1, -1, 0), NewVec3(0, 1, 0), NewVec3(1, 1, 0)},
		{"Grazing", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reflect(tt.v, tt.n)
			if result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_RefractUnitRatioKeepsDirection(t *testing.T) {
	in := NewVec3(1, -1, 0.5).Normalize()
	n := NewVec3(0, 1, 0)

	out := Refract(in, n, 1.0)
	if out.Subtract(in).Length() > 1e-9 {
		t.Errorf("Expected unchanged direction %v, got %v", in, out)
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
	if got := NewVec3(3, 4, 0).Normalize().Length(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", got)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	c := NewVec3(0.25, -1, 1).GammaCorrect()
	expected := NewVec3(0.5, 0, 1)
	if c != expected {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("Expected 1e-3 component not to be near zero")
	}
}

func TestRay_At(t *testing.T) {
	r := NewRayAtTime(NewVec3(1, 2, 3), NewVec3(0, 0, -2), 0.5)
	if got := r.At(1.5); got != NewVec3(1, 2, 0) {
		t.Errorf("Expected (1,2,0), got %v", got)
	}
	if r.Time != 0.5 {
		t.Errorf("Expected time 0.5, got %f", r.Time)
	}
}
