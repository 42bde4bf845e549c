package geometry

import (
	"github.com/chewxy/math32"

	"github.com/menuan/kektracer/pkg/core"
)

// CameraConfig contains camera configuration parameters
type CameraConfig struct {
	Center      core.Vec3 // Eye position
	LookAt      core.Vec3 // Point the camera looks at
	Up          core.Vec3 // Up direction for tilt
	VFov        float32   // Vertical field of view in degrees
	AspectRatio float32   // Width / height
}

// Camera generates world-space rays from normalized image coordinates
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from a look-at configuration.
// Degenerate configurations (Center == LookAt, or Up parallel to the view
// direction) are not guarded; callers must validate their scene setup.
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math32.Pi / 180
	halfHeight := math32.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal basis: w points from the target back to the eye
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeftCorner := config.Center.
		Subtract(u.Multiply(halfWidth)).
		Subtract(v.Multiply(halfHeight)).
		Subtract(w)

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth),
		vertical:        v.Multiply(2 * halfHeight),
	}
}

// GetRay generates a ray for normalized image coordinates (s, t) in [0,1],
// with t increasing toward the top of the image
func (c *Camera) GetRay(s, t float32) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
