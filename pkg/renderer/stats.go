package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Samples taken for every pixel
	Bands           int           // Number of row bands, one per worker
	Duration        time.Duration // Wall-clock time of the render
}

// Merge adds the pixel and sample counts of a band to the totals
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB accumulator for final result
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Color{}
	}
	return ps.ColorAccum.Divide(float64(ps.SampleCount))
}

// GammaCorrect applies gamma 2 (element-wise square root)
func GammaCorrect(c core.Color) core.Color {
	return c.Sqrt()
}

// ToByte quantizes a channel in [0, 1] to 8 bits by truncating 256*c.
// Values outside the range are clamped, so 1.0 maps to 255.
func ToByte(c float64) uint8 {
	v := int(256 * c)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ToRGB converts a linear color to gamma-corrected 8-bit channels
func ToRGB(c core.Color) (r, g, b uint8) {
	corrected := GammaCorrect(c)
	return ToByte(corrected.X), ToByte(corrected.Y), ToByte(corrected.Z)
}

// AverageLuminance returns the mean luminance of the linear pixel colors
func (fb *FrameBuffer) AverageLuminance() float64 {
	if len(fb.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range fb.Pixels {
		total += c.Luminance()
	}
	return total / float64(len(fb.Pixels))
}
