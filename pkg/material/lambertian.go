package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Color // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// DefaultLambertian returns a purple diffuse material
func DefaultLambertian() *Lambertian {
	return NewLambertian(core.NewColor(0.4, 0.2, 0.6))
}

// Scatter implements the Material interface for lambertian scattering.
// It always scatters.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := core.RandomInHemisphere(hit.Normal, sampler)

	// Degenerate sample: the ray would have no direction
	if direction.IsNearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, true
}
