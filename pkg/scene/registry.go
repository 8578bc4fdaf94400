package scene

import (
	"errors"
	"fmt"
)

// ErrUnknownScene is returned by New for names missing from the registry
var ErrUnknownScene = errors.New("scene: unknown scene")

// Info describes a registered scene
type Info struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Group       string `json:"group"`
}

// Builder constructs a scene from options
type Builder func(opts Options) (*Scene, error)

type entry struct {
	info  Info
	build Builder
}

// registry preserves registration order for listings
var registry = []entry{
	{Info{"two-spheres", "Two Spheres", "Normal-shaded sphere resting on a large ground sphere under a sky gradient", "Basics"}, NewTwoSpheresScene},
	{Info{"normal-sphere", "Normal Sphere", "Single unit sphere at the look-at point on a white background", "Basics"}, NewNormalSphereScene},
	{Info{"bouncing-spheres", "Bouncing Spheres", "Random field of moving diffuse, metal and glass spheres with depth of field", "Materials"}, NewBouncingSpheresScene},
	{Info{"checkered-spheres", "Checkered Spheres", "Two spheres sharing a solid checker texture", "Textures"}, NewCheckeredSpheresScene},
	{Info{"earth", "Earth", "Image-textured globe (checker fallback without --texture)", "Textures"}, NewEarthScene},
	{Info{"perlin-spheres", "Perlin Spheres", "Marble Perlin noise on a ground sphere and a small sphere", "Textures"}, NewPerlinSpheresScene},
	{Info{"quads", "Quads", "Five colored quads around the camera axis", "Geometry"}, NewQuadsScene},
	{Info{"simple-light", "Simple Light", "Noise-textured spheres lit by a sphere light and a quad light", "Lights"}, NewSimpleLightScene},
	{Info{"cornell-box", "Cornell Box", "Classic Cornell box with two rotated boxes", "Lights"}, NewCornellBoxScene},
	{Info{"cornell-smoke", "Cornell Smoke", "Cornell box whose boxes are filled with black and white smoke", "Volumes"}, NewCornellSmokeScene},
	{Info{"final", "Final Scene", "Every feature at once: boxes, volumes, motion blur, textures, instancing", "Showcase"}, NewFinalScene},
}

// Names returns the registered scene names in listing order
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.info.ID
	}
	return names
}

// List returns the info for every registered scene
func List() []Info {
	infos := make([]Info, len(registry))
	for i, e := range registry {
		infos[i] = e.info
	}
	return infos
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	for _, e := range registry {
		if e.info.ID != name {
			continue
		}
		s, err := e.build(opts)
		if err != nil {
			return nil, fmt.Errorf("building scene %q: %w", name, err)
		}
		s.Name = name
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}
