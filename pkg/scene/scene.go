package scene

import (
	"github.com/menuan/kektracer/pkg/core"
	"github.com/menuan/kektracer/pkg/geometry"
)

// Scene contains the world geometry and camera for a render.
// It is built once and read-only afterwards, so it may be shared by
// reference across parallel render workers without locks.
type Scene struct {
	Shapes       []core.Shape
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	TopColor     core.Vec3 // Background gradient at the zenith
	BottomColor  core.Vec3 // Background gradient at the horizon
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetBackgroundColors returns the background gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetShapes returns all shapes in the scene
func (s *Scene) GetShapes() []core.Shape {
	return s.Shapes
}

// Hit finds the nearest intersection along the ray within (tMin, tMax).
// The upper bound shrinks to the closest accepted hit so far; on an exact
// tie the shape encountered first in scan order wins.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float32) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
