package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSimpleScene creates three spheres on a large ground sphere: diffuse in the center,
// a hollow glass ball on the left and polished gold on the right
func NewSimpleScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        30.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.0, // pinhole
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	groundMat := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	centerMat := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, groundMat),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, centerMat),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return newScene(cameraConfig, DefaultSamplingConfig(), world)
}

// NewEmptyScene creates a scene with no objects, so every pixel shows the sky gradient.
// The camera sits at the origin looking down -z with a 90 degree vertical field of view.
func NewEmptyScene(width, height int) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   90.0,
	}

	samplingConfig := DefaultSamplingConfig()
	samplingConfig.Width = width
	samplingConfig.Height = height

	return newScene(cameraConfig, samplingConfig, geometry.NewHittableList())
}
