package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// HitEpsilon is the minimum ray parameter accepted for a hit; it avoids self-intersection acne
const HitEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	maxDepth int
	sky      SkyGradient
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		maxDepth: maxDepth,
		sky:      DefaultSky(),
	}
}

// WithSky returns a copy of the integrator using a different sky
func (pt *PathTracingIntegrator) WithSky(sky SkyGradient) *PathTracingIntegrator {
	copied := *pt
	copied.sky = sky
	return &copied
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single ray using the configured bounce limit
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Color {
	return pt.RayColorDepth(ray, world, sampler, pt.maxDepth)
}

// RayColorDepth computes the color for a ray with an explicit remaining depth
func (pt *PathTracingIntegrator) RayColorDepth(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, HitEpsilon, math.Inf(1))
	if !isHit {
		return pt.sky.Evaluate(ray.Direction)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Color{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColorDepth(scatter.Scattered, world, sampler, depth-1))
}
