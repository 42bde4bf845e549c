package scene

import (
	"github.com/menuan/kektracer/pkg/core"
	"github.com/menuan/kektracer/pkg/geometry"
	"github.com/menuan/kektracer/pkg/material"
)

// NewDefaultScene creates the default scene: a diffuse sphere resting on a
// large ground sphere, flanked by a polished and a fuzzy metal sphere
func NewDefaultScene(aspectRatio float32) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: aspectRatio,
	}

	s := &Scene{
		Camera:       geometry.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		TopColor:     core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:  core.NewVec3(1, 1, 1),
	}

	lambertianRose := material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	lambertianOlive := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)

	s.Shapes = []core.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianRose),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianOlive),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, metalSilver),
	}

	return s
}

// NewCloseupScene creates the same world viewed through a narrow field of
// view, framing the center sphere
func NewCloseupScene(aspectRatio float32) *Scene {
	s := NewDefaultScene(aspectRatio)

	s.CameraConfig.VFov = 25
	s.Camera = geometry.NewCamera(s.CameraConfig)

	return s
}
