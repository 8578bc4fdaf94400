package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/geometry"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
)

// createTestWorld creates a simple world with one diffuse sphere
func createTestWorld() geometry.Hittable {
	lambertian := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	return geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian))
}

func newTestSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func TestPathTracingDepthTermination(t *testing.T) {
	world := createTestWorld()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	background := NewSolidBackground(core.NewVec3(1, 1, 1))

	// Depth 0 gathers nothing, even for a ray that would miss
	integrator := NewPathTracingIntegrator(0, background)
	if c := integrator.RayColor(ray, world, newTestSampler()); c != (core.Vec3{}) {
		t.Errorf("Expected black for depth 0, got %v", c)
	}

	// Depth 1 hits a non-emitter and has no bounces left to gather light
	integrator = NewPathTracingIntegrator(1, background)
	if c := integrator.RayColor(ray, world, newTestSampler()); c != (core.Vec3{}) {
		t.Errorf("Expected black for a single diffuse bounce, got %v", c)
	}

	// Deeper paths pick up the background through the albedo
	integrator = NewPathTracingIntegrator(10, background)
	sampler := newTestSampler()
	sum := core.Vec3{}
	const samples = 200
	for i := 0; i < samples; i++ {
		sum = sum.Add(integrator.RayColor(ray, world, sampler))
	}
	mean := sum.Multiply(1.0 / samples)
	if mean.X <= 0 || mean.X > 0.7+1e-9 {
		t.Errorf("Expected red channel in (0, 0.7], got %v", mean)
	}
	if mean.X <= mean.Y {
		t.Errorf("Expected red albedo to dominate, got %v", mean)
	}
}

func TestPathTracingMissReturnsBackground(t *testing.T) {
	world := createTestWorld()
	background := NewSolidBackground(core.NewVec3(0.2, 0.4, 0.6))
	integrator := NewPathTracingIntegrator(5, background)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	if c := integrator.RayColor(ray, world, newTestSampler()); c != background.Color {
		t.Errorf("Expected background %v, got %v", background.Color, c)
	}
}

func TestPathTracingEmission(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -3), 1, light))
	integrator := NewPathTracingIntegrator(5, NewSolidBackground(core.Vec3{}))

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	if c := integrator.RayColor(ray, world, newTestSampler()); c != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected direct emission (4,4,4), got %v", c)
	}
}

func TestPathTracingMirrorSeesBackground(t *testing.T) {
	mirror := material.NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0)
	world := geometry.NewHittableList(geometry.NewQuad(
		core.NewVec3(-1, -1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mirror))
	integrator := NewPathTracingIntegrator(5, NewSolidBackground(core.NewVec3(1, 1, 1)))

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	c := integrator.RayColor(ray, world, newTestSampler())
	if c.Subtract(core.NewVec3(0.5, 0.5, 0.5)).Length() > 1e-12 {
		t.Errorf("Expected attenuated background (0.5,0.5,0.5), got %v", c)
	}
}

func TestNormalIntegrator(t *testing.T) {
	world := createTestWorld()
	integrator := NewNormalIntegrator(NewSolidBackground(core.NewVec3(1, 1, 1)))

	hit := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, newTestSampler())
	if hit.Subtract(core.NewVec3(0.5, 0.5, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal color (0.5,0.5,1), got %v", hit)
	}

	miss := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), world, newTestSampler())
	if miss != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected background, got %v", miss)
	}
}

func TestSkyGradient(t *testing.T) {
	sky := NewSkyGradient()

	up := sky.Radiance(core.NewRay(core.Vec3{}, core.NewVec3(0, 5, 0)))
	down := sky.Radiance(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)))
	level := sky.Radiance(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)))

	if up.Subtract(sky.Top).Length() > 1e-12 || down != sky.Bottom {
		t.Errorf("Expected endpoints %v/%v, got %v/%v", sky.Top, sky.Bottom, up, down)
	}
	if math.Abs(level.X-0.75) > 1e-12 || math.Abs(level.Y-0.85) > 1e-12 || math.Abs(level.Z-1.0) > 1e-12 {
		t.Errorf("Expected horizon blend (0.75,0.85,1), got %v", level)
	}
}
