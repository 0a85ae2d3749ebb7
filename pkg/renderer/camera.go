package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// CameraConfig describes the viewpoint and lens of a render
type CameraConfig struct {
	Center        core.Vec3 // Eye position (look from)
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up hint; must not be parallel to the view direction
	Width         int       // Image width in pixels
	Height        int       // Image height in pixels (0 = derive from AspectRatio)
	AspectRatio   float64   // Width / height, used when Height is 0
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Lens cone angle in degrees (0 = pinhole, no depth of field)
	FocusDistance float64   // Distance to the plane of perfect focus (0 = distance to LookAt)
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          90.0,
		DefocusAngle:  0.0,
		FocusDistance: 0.0,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}

	if override.Center != zero {
		result.Center = override.Center
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}

	return result
}

// Validate reports configuration that would produce a degenerate camera
func (c CameraConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("camera width must be positive, got %d", c.Width)
	}
	if c.Height < 0 {
		return fmt.Errorf("camera height must not be negative, got %d", c.Height)
	}
	if c.Height == 0 && !(c.AspectRatio > 0) {
		return fmt.Errorf("camera aspect ratio must be positive when height is not set, got %v", c.AspectRatio)
	}
	if !(c.VFov > 0 && c.VFov < 180) {
		return fmt.Errorf("camera vertical field of view must be in (0, 180) degrees, got %v", c.VFov)
	}
	view := c.Center.Subtract(c.LookAt)
	if view.NearZero() {
		return fmt.Errorf("camera center %v and look-at point %v coincide", c.Center, c.LookAt)
	}
	if c.Up.Cross(view).NearZero() {
		return fmt.Errorf("camera up vector %v is parallel to the view direction", c.Up)
	}
	if c.FocusDistance < 0 {
		return fmt.Errorf("camera focus distance must not be negative, got %v", c.FocusDistance)
	}
	return nil
}

// ImageHeight returns the pixel height implied by the configuration
func (c CameraConfig) ImageHeight() int {
	if c.Height > 0 {
		return c.Height
	}
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// Camera generates primary rays. It is immutable after construction and safe
// for concurrent use.
type Camera struct {
	config       CameraConfig
	imageWidth   int
	imageHeight  int
	center       core.Vec3
	pixel00Loc   core.Vec3 // Center of the upper-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	u, v, w      core.Vec3 // Camera frame basis vectors
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera from the configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	imageWidth := config.Width
	imageHeight := config.ImageHeight()

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	// Viewport dimensions at the focus plane
	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * (float64(imageWidth) / float64(imageHeight))

	// Orthonormal basis for the camera frame
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Image rows increase downward, so the vertical edge runs along -v
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(imageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		imageWidth:   imageWidth,
		imageHeight:  imageHeight,
		center:       config.Center,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}, nil
}

// GetRay returns a ray through a random point inside pixel (i, j), starting
// from the eye or from a random point on the defocus disk
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampleSquare(sampler)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// PixelCenter returns the world position of the center of pixel (i, j) on the focus plane
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.imageWidth
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetCameraForward returns the unit viewing direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// sampleSquare returns a random offset in the [-0.5, 0.5) unit square
func sampleSquare(sampler core.Sampler) core.Vec2 {
	u := sampler.Get2D()
	return core.NewVec2(u.X-0.5, u.Y-0.5)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
