package geometry

import (
	"math"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

// CameraConfig describes a thin-lens perspective camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from point)
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Camera-relative up direction
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Cone angle in degrees of rays through each pixel; 0 disables depth of field
	FocusDistance float64   // Distance to the plane of perfect focus; 0 uses |LookAt - Center|
}

// Camera turns pixel coordinates into primary rays
type Camera struct {
	config       CameraConfig
	height       int
	center       core.Vec3
	pixel00      core.Vec3 // Center of pixel (0, 0), the upper-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera creates a camera. It panics on a non-positive image width.
func NewCamera(config CameraConfig) *Camera {
	if config.Width <= 0 {
		panic("geometry: camera image width must be positive")
	}

	height := max(1, int(float64(config.Width)/config.AspectRatio))

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(height)

	// Orthonormal camera basis
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(height))

	upperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))

	defocusRadius := focusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180)

	return &Camera{
		config:       config,
		height:       height,
		center:       config.Center,
		pixel00:      upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5)),
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels, at least 1
func (c *Camera) Height() int {
	return c.height
}

// GetRay returns a ray through a random point of pixel (i, j), where j counts down from the top row.
// With depth of field the ray starts on the defocus disk. The ray time is uniform in [0, 1).
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// PixelCenterRay returns the unjittered ray from the camera center through the center of pixel (i, j)
func (c *Camera) PixelCenterRay(i, j int) core.Ray {
	center := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	return core.NewRay(c.center, center.Subtract(c.center))
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
