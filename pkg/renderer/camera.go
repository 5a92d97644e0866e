package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Camera generates rays for fractional image coordinates (s, t) in [0,1].
// s runs left to right and t bottom to top.
type Camera interface {
	GetRay(s, t float64, sampler core.Sampler) core.Ray
}

// PinholeCamera is a fixed-basis camera with no lens
type PinholeCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewPinholeCamera creates a pinhole camera from an explicit view-plane basis
func NewPinholeCamera(origin, lowerLeftCorner, horizontal, vertical core.Vec3) *PinholeCamera {
	return &PinholeCamera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// DefaultPinholeCamera looks down -Z from the origin with a 2:1 view plane
func DefaultPinholeCamera() *PinholeCamera {
	return NewPinholeCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(-2, -1, -1),
		core.NewVec3(4, 0, 0),
		core.NewVec3(0, 2, 0),
	)
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
func (c *PinholeCamera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction.Normalize())
}

// CameraConfig contains all parameters needed to create a thin lens camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 disables defocus blur
	FocusDistance float64   // Distance to the focal plane, 0 = |LookFrom - LookAt|
}

// Validate reports configurations that would produce degenerate rays
func (c CameraConfig) Validate() error {
	if !(c.VFov > 0 && c.VFov < 180) {
		return fmt.Errorf("vertical fov must be in (0, 180), got %g", c.VFov)
	}
	if !(c.AspectRatio > 0) {
		return fmt.Errorf("aspect ratio must be positive, got %g", c.AspectRatio)
	}
	if c.Aperture < 0 {
		return fmt.Errorf("aperture must not be negative, got %g", c.Aperture)
	}
	if c.FocusDistance < 0 {
		return fmt.Errorf("focus distance must not be negative, got %g", c.FocusDistance)
	}
	forward := c.LookFrom.Subtract(c.LookAt)
	if forward.LengthSquared() == 0 {
		return fmt.Errorf("look from and look at must differ")
	}
	if c.Up.Cross(forward).LengthSquared() == 0 {
		return fmt.Errorf("up vector must not be parallel to the view direction")
	}
	return nil
}

// ThinLensCamera is a positionable camera with defocus blur
type ThinLensCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Camera basis vectors
	lensRadius      float64
}

// NewThinLensCamera creates a camera from the given configuration
func NewThinLensCamera(config CameraConfig) *ThinLensCamera {
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	// Orthonormal basis; w points backwards from the view direction
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// The view plane sits on the focal plane so defocus is consistent with focus distance
	origin := config.LookFrom
	horizontal := u.Multiply(2 * halfWidth * focusDistance)
	vertical := v.Multiply(2 * halfHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &ThinLensCamera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for screen coordinates (s, t), jittering the origin across the lens
func (c *ThinLensCamera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	return core.NewRay(origin, target.Subtract(origin).Normalize())
}

// Forward returns the viewing direction
func (c *ThinLensCamera) Forward() core.Vec3 {
	return c.w.Negate()
}
