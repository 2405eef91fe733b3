package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	gridExtent      = 11  // small spheres are placed for i, j in [-gridExtent, gridExtent)
	smallRadius     = 0.2 // radius of the grid spheres
	bubbleRadius    = -0.15
	clearanceRadius = 0.9 // grid spheres closer than this to the metal showcase sphere are skipped
)

// RandomSceneCameraConfig returns the camera used by the random scene
func RandomSceneCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 0.0, // focus on LookAt
	}
}

// NewRandomScene creates the sphere field: a large ground sphere, a grid of small random spheres
// and three showcase spheres. The same seed always produces the same scene.
func NewRandomScene(seed uint64, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := RandomSceneCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	return newScene(cameraConfig, DefaultSamplingConfig(), NewRandomWorld(core.NewRandom(seed)))
}

// NewRandomWorld populates the sphere field from the given generator
func NewRandomWorld(random *core.Random) *geometry.HittableList {
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	showcase := core.NewVec3(4, smallRadius, 0)
	for i := -gridExtent; i < gridExtent; i++ {
		for j := -gridExtent; j < gridExtent; j++ {
			decider := random.Float64()
			center := core.NewVec3(
				float64(i)+0.9*random.Float64(),
				smallRadius,
				float64(j)+0.9*random.Float64(),
			)

			if center.Subtract(showcase).Length() <= clearanceRadius {
				continue
			}

			switch {
			case decider < 0.5:
				mat := material.NewLambertian(core.RandomColor(random))
				world.Add(geometry.NewSphere(center, smallRadius, mat))
			case decider < 0.9:
				albedo := core.RandomColor(random)
				mat := material.NewMetal(albedo, random.Float64())
				world.Add(geometry.NewSphere(center, smallRadius, mat))
			default:
				glass := material.NewDielectric(1.5)
				world.Add(geometry.NewSphere(center, smallRadius, glass))
				if random.Float64() < 0.3 {
					// Negative radius flips the normals, turning the ball into a hollow shell
					world.Add(geometry.NewSphere(center, bubbleRadius, glass))
				}
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.RandomColor(random))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.RandomColor(random), 0.5)))

	return world
}
