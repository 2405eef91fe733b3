package output

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// createTestBuffer returns a 2x2 buffer: bottom row red and green, top row blue and white
func createTestBuffer(t *testing.T) *renderer.FrameBuffer {
	t.Helper()
	fb, err := renderer.NewFrameBuffer(2, 2)
	if err != nil {
		t.Fatalf("NewFrameBuffer failed: %v", err)
	}
	fb.Set(0, 0, core.NewColor(1, 0, 0))
	fb.Set(1, 0, core.NewColor(0, 1, 0))
	fb.Set(0, 1, core.NewColor(0, 0, 0.25))
	fb.Set(1, 1, core.NewColor(1, 1, 1))
	return fb
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, createTestBuffer(t)); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	// Top row first, gamma 2 applied, 1.0 clamped to 255
	expected := "P3\n2 2\n255\n" +
		"0 0 128\n" +
		"255 255 255\n" +
		"255 0 0\n" +
		"0 255 0\n"
	if buf.String() != expected {
		t.Errorf("WritePPM output:\n%q\nwant:\n%q", buf.String(), expected)
	}
}

func TestWritePPM_SinglePixel(t *testing.T) {
	fb, _ := renderer.NewFrameBuffer(1, 1)
	var buf bytes.Buffer
	if err := WritePPM(&buf, fb); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	if buf.String() != "P3\n1 1\n255\n0 0 0\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWritePPM_PropagatesWriteErrors(t *testing.T) {
	if err := WritePPM(failingWriter{}, createTestBuffer(t)); err == nil {
		t.Error("expected an error from a failing writer")
	}
}

func TestToImage_FlipsRows(t *testing.T) {
	img := ToImage(createTestBuffer(t))

	tests := []struct {
		x, y    int
		r, g, b uint8
	}{
		{0, 0, 0, 0, 128},
		{1, 0, 255, 255, 255},
		{0, 1, 255, 0, 0},
		{1, 1, 0, 255, 0},
	}
	for _, tt := range tests {
		c := img.RGBAAt(tt.x, tt.y)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 255 {
			t.Errorf("image pixel (%d,%d) = %v, want (%d %d %d 255)", tt.x, tt.y, c, tt.r, tt.g, tt.b)
		}
	}
}

func TestWritePNG_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, createTestBuffer(t)); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	fb := createTestBuffer(t)

	ppmPath := filepath.Join(dir, "nested", "render.ppm")
	if err := SaveFile(ppmPath, fb); err != nil {
		t.Fatalf("SaveFile(ppm) failed: %v", err)
	}
	data, err := os.ReadFile(ppmPath)
	if err != nil {
		t.Fatalf("reading PPM: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("P3\n2 2\n255\n")) {
		t.Errorf("PPM file has wrong header: %q", data)
	}

	pngPath := filepath.Join(dir, "render.PNG")
	if err := SaveFile(pngPath, fb); err != nil {
		t.Fatalf("SaveFile(png) failed: %v", err)
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Errorf("PNG not written: %v", err)
	}

	if err := SaveFile(filepath.Join(dir, "render.jpg"), fb); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
