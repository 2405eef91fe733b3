package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		input    float64
		expected uint8
	}{
		{0.0, 0},
		{0.5, 128},
		{0.999, 255},
		{1.0, 255}, // 256 clamps to 255
		{1.5, 255},
		{-0.25, 0},
		{0.00390625, 1}, // exactly 1/256
		{0.0039, 0},     // truncates
	}

	for _, tt := range tests {
		if got := ToByte(tt.input); got != tt.expected {
			t.Errorf("ToByte(%f) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestGammaCorrect(t *testing.T) {
	got := GammaCorrect(core.NewColor(0.25, 1, 0))
	if got != core.NewColor(0.5, 1, 0) {
		t.Errorf("GammaCorrect = %v, want (0.5, 1, 0)", got)
	}

	r, g, b := ToRGB(core.NewColor(0.25, 1, 0))
	if r != 128 || g != 255 || b != 0 {
		t.Errorf("ToRGB = (%d, %d, %d), want (128, 255, 0)", r, g, b)
	}
}

func TestPixelStats(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != (core.Color{}) {
		t.Errorf("empty pixel should be black, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewColor(1, 0, 0.5))
	ps.AddSample(core.NewColor(0, 1, 0.5))
	if ps.SampleCount != 2 {
		t.Errorf("expected 2 samples, got %d", ps.SampleCount)
	}
	if got := ps.GetColor(); got != core.NewColor(0.5, 0.5, 0.5) {
		t.Errorf("average = %v, want (0.5, 0.5, 0.5)", got)
	}
}

func TestRenderStats(t *testing.T) {
	var total RenderStats
	total.Merge(RenderStats{TotalPixels: 10, TotalSamples: 40})
	total.Merge(RenderStats{TotalPixels: 6, TotalSamples: 24})

	if total.TotalPixels != 16 || total.TotalSamples != 64 {
		t.Errorf("merged stats = %+v", total)
	}
	if total.AverageSamples() != 4 {
		t.Errorf("average samples = %f, want 4", total.AverageSamples())
	}
	if (RenderStats{}).AverageSamples() != 0 {
		t.Error("empty stats should average to 0")
	}
}

func TestAverageLuminance(t *testing.T) {
	fb, _ := NewFrameBuffer(2, 2)
	fb.Set(0, 0, core.NewColor(1, 0, 0))
	fb.Set(1, 0, core.NewColor(0, 1, 0))
	fb.Set(0, 1, core.NewColor(0, 0, 1))

	expected := (0.299 + 0.587 + 0.114) / 4
	if got := fb.AverageLuminance(); math.Abs(got-expected) > 1e-12 {
		t.Errorf("AverageLuminance = %f, want %f", got, expected)
	}
}
