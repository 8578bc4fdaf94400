package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90,
	}
}

func TestCamera_Height(t *testing.T) {
	tests := []struct {
		width    int
		aspect   float64
		expected int
	}{
		{400, 16.0 / 9.0, 225},
		{100, 1.0, 100},
		{1, 16.0 / 9.0, 1},
	}

	for _, tt := range tests {
		config := testCameraConfig()
		config.Width = tt.width
		config.AspectRatio = tt.aspect
		if got := NewCamera(config).Height(); got != tt.expected {
			t.Errorf("Width %d aspect %f: expected height %d, got %d", tt.width, tt.aspect, tt.expected, got)
		}
	}
}

func TestCamera_PixelCenterRays(t *testing.T) {
	config := testCameraConfig()
	config.Width = 200
	config.AspectRatio = 1
	camera := NewCamera(config)

	// Viewport at distance 1 spans [-1,1]² with vfov 90
	upperLeft := camera.PixelCenterRay(0, 0).Direction
	expected := core.NewVec3(-1+0.005, 1-0.005, -1)
	if upperLeft.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected upper-left direction %v, got %v", expected, upperLeft)
	}

	// Opposite pixels straddle the optical axis
	a := camera.PixelCenterRay(99, 99).Direction
	b := camera.PixelCenterRay(100, 100).Direction
	mid := a.Add(b).Multiply(0.5)
	if mid.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected symmetric pixels around the axis, midpoint %v", mid)
	}
}

func TestCamera_GetRayStaysInPixel(t *testing.T) {
	config := testCameraConfig()
	config.Width = 200
	config.AspectRatio = 1
	camera := NewCamera(config)
	sampler := newTestSampler()

	const pixel = 2.0 / 200
	for n := 0; n < 500; n++ {
		ray := camera.GetRay(10, 20, sampler)
		if ray.Origin != config.Center {
			t.Fatalf("Expected pinhole origin, got %v", ray.Origin)
		}
		if ray.Time < 0 || ray.Time >= 1 {
			t.Fatalf("Ray time out of range: %f", ray.Time)
		}
		center := camera.PixelCenterRay(10, 20).Direction
		d := ray.Direction.Subtract(center)
		if math.Abs(d.X) > pixel/2+1e-12 || math.Abs(d.Y) > pixel/2+1e-12 || math.Abs(d.Z) > 1e-12 {
			t.Fatalf("Sample left its pixel: offset %v", d)
		}
	}
}

func TestCamera_DefocusDisk(t *testing.T) {
	config := testCameraConfig()
	config.DefocusAngle = 10
	config.FocusDistance = 3.4
	camera := NewCamera(config)
	sampler := newTestSampler()

	radius := 3.4 * math.Tan(5*math.Pi/180)
	moved := false
	for n := 0; n < 200; n++ {
		ray := camera.GetRay(50, 50, sampler)
		if ray.Origin.Z != 0 {
			t.Fatalf("Lens sample left the lens plane: %v", ray.Origin)
		}
		if ray.Origin.Length() > radius+1e-9 {
			t.Fatalf("Lens sample %v outside radius %f", ray.Origin, radius)
		}
		if ray.Origin.Length() > 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("Expected lens samples away from the center")
	}
}

func TestCamera_PanicsOnZeroWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero width")
		}
	}()
	config := testCameraConfig()
	config.Width = 0
	NewCamera(config)
}
