package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned for output paths that are neither .ppm nor .png
var ErrUnsupportedFormat = errors.New("unsupported image format")

// SaveFile writes the frame buffer to path, choosing the format from the extension.
// Missing parent directories are created.
func SaveFile(path string, fb *renderer.FrameBuffer) (err error) {
	var write func(io.Writer, *renderer.FrameBuffer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		write = WritePPM
	case ".png":
		write = WritePNG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", closeErr)
		}
	}()

	return write(file, fb)
}
