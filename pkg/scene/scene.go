package scene

import (
	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/geometry"
	"github.com/df07/go-progressive-pathtracer/pkg/integrator"
)

// Shading selects the integrator a scene is rendered with
type Shading int

const (
	ShadingPath    Shading = iota // Full path tracing
	ShadingNormals                // Surface normals only, for inspecting geometry
)

// Config contains the rendering parameters that belong to a scene
type Config struct {
	SamplesPerPixel int                   // Sample cap per pixel (0 = refine until stopped)
	MaxDepth        int                   // Maximum ray bounce depth
	Background      integrator.Background // Radiance of rays that escape the scene
	Shading         Shading
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  geometry.Hittable
	Camera *geometry.Camera
	Config Config
}

// NewIntegrator returns the integrator described by the scene's config
func (s *Scene) NewIntegrator() integrator.Integrator {
	background := s.Config.Background
	if background == nil {
		background = integrator.NewSolidBackground(core.Vec3{})
	}
	if s.Config.Shading == ShadingNormals {
		return integrator.NewNormalIntegrator(background)
	}
	return integrator.NewPathTracingIntegrator(s.Config.MaxDepth, background)
}

// Options override scene defaults. Zero values keep the scene's own setting.
type Options struct {
	Width           int    // Image width in pixels
	SamplesPerPixel int    // Sample cap per pixel
	MaxDepth        int    // Maximum ray bounce depth
	Seed            int64  // Seed for the random layout and noise of procedural scenes
	TexturePath     string // Image for the earth texture
}

func (o Options) width(def int) int {
	if o.Width > 0 {
		return o.Width
	}
	return def
}

// apply overrides the sampling settings of config
func (o Options) apply(config Config) Config {
	if o.SamplesPerPixel > 0 {
		config.SamplesPerPixel = o.SamplesPerPixel
	}
	if o.MaxDepth > 0 {
		config.MaxDepth = o.MaxDepth
	}
	return config
}

// sampler returns the random stream used while building a scene
func (o Options) sampler() core.Sampler {
	seed := o.Seed
	if seed == 0 {
		seed = 42
	}
	return core.NewSeededSampler(seed)
}

// PrimitiveCount returns the number of leaf primitives reachable from the world.
// A box counts as its six faces and a shared BVH leaf is counted once.
func (s *Scene) PrimitiveCount() int {
	return countPrimitives(s.World)
}

func countPrimitives(h geometry.Hittable) int {
	switch obj := h.(type) {
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Objects {
			count += countPrimitives(child)
		}
		return count
	case *geometry.BVHNode:
		if obj.Right == obj.Left {
			return countPrimitives(obj.Left)
		}
		return countPrimitives(obj.Left) + countPrimitives(obj.Right)
	case *geometry.Translate:
		return countPrimitives(obj.Object)
	case *geometry.RotateY:
		return countPrimitives(obj.Object)
	case *geometry.ConstantMedium:
		return countPrimitives(obj.Boundary)
	case nil:
		return 0
	default:
		return 1
	}
}

// BVHStats sums the shape of every hierarchy in the world. Scenes without a
// BVH report zero nodes.
func (s *Scene) BVHStats() geometry.BVHStats {
	var total geometry.BVHStats
	collectBVHStats(s.World, &total)
	return total
}

func collectBVHStats(h geometry.Hittable, total *geometry.BVHStats) {
	switch obj := h.(type) {
	case *geometry.HittableList:
		for _, child := range obj.Objects {
			collectBVHStats(child, total)
		}
	case *geometry.BVHNode:
		stats := obj.Stats()
		total.TotalNodes += stats.TotalNodes
		total.LeafObjects += stats.LeafObjects
		total.MaxDepth = max(total.MaxDepth, stats.MaxDepth)
	case *geometry.Translate:
		collectBVHStats(obj.Object, total)
	case *geometry.RotateY:
		collectBVHStats(obj.Object, total)
	case *geometry.ConstantMedium:
		collectBVHStats(obj.Boundary, total)
	}
}
