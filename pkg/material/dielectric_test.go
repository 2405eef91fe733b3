package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectric_RefractionRatio(t *testing.T) {
	glass := NewDielectric(1.5)
	if got := glass.RefractionRatio(true); got != 1.0/1.5 {
		t.Errorf("Entering ratio = %f, want %f", got, 1.0/1.5)
	}
	if got := glass.RefractionRatio(false); got != 1.5 {
		t.Errorf("Exiting ratio = %f, want 1.5", got)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Leaving glass at 60 degrees from the normal: 1.5 * sin(60°) ≈ 1.3 > 1
	direction := core.NewVec3(math.Sin(math.Pi/3), -math.Cos(math.Pi/3), 0)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), direction)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false,
		Material:  glass,
	}

	// A sampler that never triggers Schlick reflection proves the TIR branch alone reflects
	result, scattered := glass.Scatter(rayIn, hit, core.ConstantSampler{Value: 0.999999})
	if !scattered {
		t.Fatal("Dielectric should always scatter")
	}

	expected := Reflect(rayIn.Direction, hit.Normal)
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected total internal reflection %v, got %v", expected, result.Scattered.Direction)
	}
	if result.Scattered.Direction.Y <= 0 {
		t.Errorf("Reflected ray should head back up, got %v", result.Scattered.Direction)
	}
}

func TestDielectric_NormalIncidenceRefracts(t *testing.T) {
	glass := NewDielectric(1.5)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	// Reflectance at normal incidence is 0.04, so a draw of 0.5 refracts
	result, scattered := glass.Scatter(rayIn, hit, core.ConstantSampler{Value: 0.5})
	if !scattered {
		t.Fatal("Dielectric should always scatter")
	}
	if result.Scattered.Direction.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-12 {
		t.Errorf("Expected straight-through refraction, got %v", result.Scattered.Direction)
	}
	if result.Attenuation != core.NewColor(1, 1, 1) {
		t.Errorf("Expected white attenuation, got %v", result.Attenuation)
	}

	// A draw below the reflectance reflects instead
	result, _ = glass.Scatter(rayIn, hit, core.ConstantSampler{Value: 0.01})
	if result.Scattered.Direction.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("Expected Schlick reflection, got %v", result.Scattered.Direction)
	}
}

func TestDielectric_ReflectsAndRefracts(t *testing.T) {
	glass := NewDielectric(1.5)
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	sampler := core.NewRandom(42)
	reflections, refractions := 0, 0
	for i := 0; i < 2000; i++ {
		result, _ := glass.Scatter(rayIn, hit, sampler)
		if result.Scattered.Direction.Y > 0 {
			reflections++
		} else {
			refractions++
		}
	}

	if reflections == 0 || refractions == 0 {
		t.Errorf("Expected both branches, got %d reflections and %d refractions", reflections, refractions)
	}
	if reflections > refractions {
		t.Errorf("At 45 degrees refraction should dominate: %d reflections, %d refractions", reflections, refractions)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	ratio := 1.0 / 1.5
	incoming := core.NewVec3(1, -1, 0).Normalize()
	normal := core.NewVec3(0, 1, 0)

	refracted := Refract(incoming, normal, ratio)

	sinIn := math.Abs(incoming.X)
	sinOut := math.Abs(refracted.Normalize().X)
	if math.Abs(sinIn*ratio-sinOut) > 1e-12 {
		t.Errorf("Snell's law violated: sin_in*ratio = %f, sin_out = %f", sinIn*ratio, sinOut)
	}
	if math.Abs(refracted.Length()-1) > 1e-12 {
		t.Errorf("Refracted unit vector should stay unit length, got %f", refracted.Length())
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"normal incidence glass", 1.0, 1.5, 0.04},
		{"grazing incidence", 0.0, 1.5, 1.0},
		{"matched media", 0.5, 1.0, 0.03125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Reflectance(%f, %f) = %f, want %f", tt.cosine, tt.ratio, got, tt.expected)
			}
		})
	}
}
