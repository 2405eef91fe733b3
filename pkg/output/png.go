package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ToImage converts the frame buffer to an RGBA image with the top row at y=0
func ToImage(fb *renderer.FrameBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x, c := range fb.Row(y) {
			r, g, b := renderer.ToRGB(c)
			img.SetRGBA(x, fb.Height-1-y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePNG encodes the frame buffer as PNG
func WritePNG(w io.Writer, fb *renderer.FrameBuffer) error {
	if err := png.Encode(w, ToImage(fb)); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
