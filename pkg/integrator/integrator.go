package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray.
	// world must not be mutated while RayColor runs; sampler is owned by the caller.
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Color
}

// SkyGradient is the only light source: a vertical blend seen by rays that miss everything
type SkyGradient struct {
	Horizon core.Color // color for a direction pointing straight down
	Zenith  core.Color // color for a direction pointing straight up
}

// DefaultSky returns a white-to-light-blue gradient
func DefaultSky() SkyGradient {
	return SkyGradient{
		Horizon: core.NewColor(1.0, 1.0, 1.0),
		Zenith:  core.NewColor(0.5, 0.7, 1.0),
	}
}

// Evaluate returns the sky color for a direction
func (s SkyGradient) Evaluate(direction core.Vec3) core.Color {
	unitDirection := direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5*unitDirection.Y + 0.5

	// Linear interpolation: (1-t)*horizon + t*zenith
	return s.Horizon.Multiply(1.0 - t).Add(s.Zenith.Multiply(t))
}
