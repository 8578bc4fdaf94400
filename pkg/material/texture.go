package material

import (
	"math"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

// SolidColor is a texture with the same color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two textures in a 3D checker pattern of cubes with side Scale
type CheckerTexture struct {
	invScale float64
	Even     Texture
	Odd      Texture
}

// NewCheckerTexture creates a checker alternating between even and odd textures
func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker alternating two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value picks Even when the sum of the cell indices is even, Odd otherwise
func (c *CheckerTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * point.X))
	y := int(math.Floor(c.invScale * point.Y))
	z := int(math.Floor(c.invScale * point.Z))

	// & 1 is a parity test that also works for negative sums
	if (x+y+z)&1 == 0 {
		return c.Even.Value(uv, point)
	}
	return c.Odd.Value(uv, point)
}
