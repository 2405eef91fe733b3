package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ErrUnknownScene is returned by Lookup for names that match no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering.
// After construction a scene is only read, which lets every render worker share it.
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	World          *geometry.HittableList // Objects in the scene
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns the full-quality settings: 1280x720, 500 samples, 50 bounces
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           1280,
		Height:          720,
		SamplesPerPixel: 500,
		MaxDepth:        50,
	}
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Validate reports configuration values the renderer cannot work with
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

// ListScenes returns the built-in scenes in display order
func ListScenes() []SceneInfo {
	return []SceneInfo{
		{Name: "random", Description: "Ground plane covered with random small spheres and three large ones"},
		{Name: "simple", Description: "Three spheres (diffuse, hollow glass, metal) on a ground sphere"},
		{Name: "empty", Description: "No objects, only the sky gradient"},
	}
}

// Lookup builds the named scene. The seed drives random scene population.
func Lookup(name string, seed uint64) (*Scene, error) {
	switch name {
	case "random":
		return NewRandomScene(seed), nil
	case "simple":
		return NewSimpleScene(), nil
	case "empty":
		config := DefaultSamplingConfig()
		return NewEmptyScene(config.Width, config.Height), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
}

// newScene builds the camera from its config, matching the aspect ratio to the image size
func newScene(cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig, world *geometry.HittableList) *Scene {
	if cameraConfig.AspectRatio == 0 {
		cameraConfig.AspectRatio = samplingConfig.AspectRatio()
	}
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          world,
		SamplingConfig: samplingConfig,
	}
}

// WithSamplingConfig returns a copy of the scene with new sampling settings.
// The camera is rebuilt so its aspect ratio follows the new image size.
func (s *Scene) WithSamplingConfig(config SamplingConfig) *Scene {
	cameraConfig := s.CameraConfig
	cameraConfig.AspectRatio = 0
	return newScene(cameraConfig, config, s.World)
}
