package renderer

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// FrameBuffer holds one linear color per pixel. Row 0 is the bottom of the image.
type FrameBuffer struct {
	Width  int
	Height int
	Pixels []core.Color // row-major, Pixels[y*Width+x]
}

// NewFrameBuffer allocates a black frame buffer
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}, nil
}

// At returns the color at column x of row y
func (fb *FrameBuffer) At(x, y int) core.Color {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the color at column x of row y
func (fb *FrameBuffer) Set(x, y int, c core.Color) {
	fb.Pixels[y*fb.Width+x] = c
}

// Row returns the pixels of row y. The slice aliases the buffer.
func (fb *FrameBuffer) Row(y int) []core.Color {
	start := y * fb.Width
	return fb.Pixels[start : start+fb.Width]
}

// Band is a contiguous range of rows [Start, End)
type Band struct {
	Start int
	End   int
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.End - b.Start
}

// PartitionRows splits height rows into at most workers contiguous bands.
// Every band has height/workers rows except the last, which also takes the remainder.
// The worker count is capped at height so no band is empty.
func PartitionRows(height, workers int) []Band {
	if height <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > height {
		workers = height
	}

	stride := height / workers
	bands := make([]Band, workers)
	for i := range bands {
		bands[i] = Band{Start: i * stride, End: (i + 1) * stride}
	}
	bands[workers-1].End = height
	return bands
}

// SplitBands returns one pixel slice per band. The bands must be contiguous, ordered and cover
// the whole buffer, as PartitionRows produces; the returned slices never overlap, so each may be
// written by a different goroutine.
func (fb *FrameBuffer) SplitBands(bands []Band) [][]core.Color {
	parts := make([][]core.Color, len(bands))
	rest := fb.Pixels
	for i, band := range bands {
		n := band.Rows() * fb.Width
		parts[i], rest = rest[:n:n], rest[n:]
	}
	return parts
}
