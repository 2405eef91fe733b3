package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// WritePPM writes the frame buffer as an ASCII (P3) PPM image with max value 255.
// Rows are written top first; every pixel is one "r g b" line.
func WritePPM(w io.Writer, fb *renderer.FrameBuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	for y := fb.Height - 1; y >= 0; y-- {
		for _, c := range fb.Row(y) {
			r, g, b := renderer.ToRGB(c)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("writing PPM row %d: %w", y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing PPM: %w", err)
	}
	return nil
}
