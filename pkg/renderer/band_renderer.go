package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplerFactory returns the sampler used for one row, given that row's seed
type SamplerFactory func(rowSeed uint64) core.Sampler

// DefaultSamplerFactory draws from the 48-bit LCG seeded with the row seed
func DefaultSamplerFactory(rowSeed uint64) core.Sampler {
	return core.NewRandom(rowSeed)
}

// BandRenderer samples every pixel of a band using an integrator
type BandRenderer struct {
	camera          *geometry.Camera
	world           geometry.Hittable
	integrator      integrator.Integrator
	width           int
	height          int
	samplesPerPixel int
	seed            uint64
	newSampler      SamplerFactory
}

// RenderBand renders the rows of band into pixels, which holds exactly those rows.
// Each row draws from its own sampler seeded by SeedForRow, so the result does not depend
// on how rows were split between workers.
func (br *BandRenderer) RenderBand(band Band, pixels []core.Color) RenderStats {
	stats := RenderStats{SamplesPerPixel: br.samplesPerPixel}

	for row := band.Start; row < band.End; row++ {
		sampler := br.newSampler(core.SeedForRow(br.seed, row))
		line := pixels[(row-band.Start)*br.width : (row-band.Start+1)*br.width]

		for col := 0; col < br.width; col++ {
			line[col] = br.samplePixel(col, row, sampler)
			stats.TotalPixels++
			stats.TotalSamples += br.samplesPerPixel
		}
	}

	return stats
}

// samplePixel averages samplesPerPixel jittered camera rays through pixel (col, row)
func (br *BandRenderer) samplePixel(col, row int, sampler core.Sampler) core.Color {
	var ps PixelStats
	for s := 0; s < br.samplesPerPixel; s++ {
		jitter := sampler.Get2D()
		u := 2*(float64(col)+jitter.X)/float64(br.width) - 1
		v := 2*(float64(row)+jitter.Y)/float64(br.height) - 1

		ray := br.camera.GetRay(u, v, sampler)
		ps.AddSample(br.integrator.RayColor(ray, br.world, sampler))
	}
	return ps.GetColor()
}
