package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ErrInvalidDimensions is returned when the image width or height is not positive
var ErrInvalidDimensions = errors.New("invalid image dimensions")

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig controls how a frame is split across workers
type RenderConfig struct {
	NumWorkers       int    // Number of parallel workers (0 = NumCPU * WorkerMultiplier)
	WorkerMultiplier int    // Workers per CPU when NumWorkers is 0
	Seed             uint64 // Base seed for the per-row sample sequences
}

// DefaultRenderConfig returns two workers per CPU and seed 0
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers:       0,
		WorkerMultiplier: DefaultWorkerMultiplier,
		Seed:             0,
	}
}

// Workers resolves the configured worker count
func (c RenderConfig) Workers(numCPU int) int {
	if c.NumWorkers > 0 {
		return c.NumWorkers
	}
	multiplier := c.WorkerMultiplier
	if multiplier <= 0 {
		multiplier = DefaultWorkerMultiplier
	}
	return numCPU * multiplier
}

// Raytracer renders a scene into a frame buffer with a pool of band workers
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
	newSampler SamplerFactory
	numCPU     int
}

// NewRaytracer creates a raytracer for the scene using a path tracing integrator
// bounded by the scene's maximum depth
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := s.SamplingConfig.Validate(); err != nil {
		if s.SamplingConfig.Width <= 0 || s.SamplingConfig.Height <= 0 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
		}
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      s,
		integrator: integrator.NewPathTracingIntegrator(s.SamplingConfig.MaxDepth),
		config:     config,
		logger:     logger,
		newSampler: DefaultSamplerFactory,
		numCPU:     runtime.NumCPU(),
	}, nil
}

// SetRenderConfig updates the worker configuration
func (rt *Raytracer) SetRenderConfig(config RenderConfig) {
	rt.config = config
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// SetSamplerFactory replaces the per-row sampler construction
func (rt *Raytracer) SetSamplerFactory(factory SamplerFactory) {
	rt.newSampler = factory
}

// Render traces the whole frame and returns the averaged linear colors.
// Rows are split into contiguous bands, one per worker; each worker writes only its own band.
func (rt *Raytracer) Render() (*FrameBuffer, RenderStats) {
	start := time.Now()
	sampling := rt.scene.SamplingConfig

	// Dimensions were validated by NewRaytracer
	fb, _ := NewFrameBuffer(sampling.Width, sampling.Height)

	pool := NewWorkerPool(rt.config.Workers(rt.numCPU))
	bands := PartitionRows(fb.Height, pool.GetNumWorkers())
	parts := fb.SplitBands(bands)

	tasks := make([]BandTask, len(bands))
	for i, band := range bands {
		tasks[i] = BandTask{Band: band, Pixels: parts[i], TaskID: i}
	}

	rt.logger.Printf("Rendering %dx%d, %d samples, depth %d, %d workers\n",
		fb.Width, fb.Height, sampling.SamplesPerPixel, sampling.MaxDepth, len(bands))

	bandRenderer := &BandRenderer{
		camera:          rt.scene.Camera,
		world:           rt.scene.World,
		integrator:      rt.integrator,
		width:           fb.Width,
		height:          fb.Height,
		samplesPerPixel: sampling.SamplesPerPixel,
		seed:            rt.config.Seed,
		newSampler:      rt.newSampler,
	}

	completed := 0
	results := pool.Run(tasks, func(task BandTask) RenderStats {
		return bandRenderer.RenderBand(task.Band, task.Pixels)
	}, func(result BandResult) {
		completed++
		band := bands[result.TaskID]
		rt.logger.Printf("Band %d/%d done (rows %d-%d)\n", completed, len(bands), band.Start, band.End-1)
	})

	stats := RenderStats{
		SamplesPerPixel: sampling.SamplesPerPixel,
		Bands:           len(bands),
	}
	for _, result := range results {
		stats.Merge(result.Stats)
	}
	stats.Duration = time.Since(start)

	rt.logger.Printf("Render complete: %d pixels, %d samples in %v\n",
		stats.TotalPixels, stats.TotalSamples, stats.Duration.Round(time.Millisecond))

	return fb, stats
}
