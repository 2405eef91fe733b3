package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line. Zero values keep the scene's defaults.
type options struct {
	sceneName string
	samples   int
	depth     int
	width     int
	height    int
	workers   int
	seed      uint64
	out       string
}

func main() {
	// Parse command line flags
	var opts options
	flag.StringVar(&opts.sceneName, "scene", "random", "Scene type: 'random', 'simple' or 'empty'")
	flag.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	flag.IntVar(&opts.width, "width", 0, "Image width (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height (0 = scene default)")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = 2 per CPU)")
	flag.Uint64Var(&opts.seed, "seed", 0, "Random seed for scene and sampling (0 = derive from clock)")
	flag.StringVar(&opts.out, "out", "", "Output file, .ppm or .png (default output/<scene>/render_<timestamp>.ppm)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-7s - %s\n", info.Name, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.ppm unless -out is given")
		return
	}

	if err := run(opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the selected scene and writes the image
func run(opts options, logger core.Logger) error {
	if opts.seed == 0 {
		opts.seed = core.TimeSeed()
	}
	logger.Printf("Starting path tracer (scene %s, seed %d)...\n", opts.sceneName, opts.seed)

	selectedScene, err := createScene(opts)
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, renderer.RenderConfig{
		NumWorkers:       opts.workers,
		WorkerMultiplier: renderer.DefaultWorkerMultiplier,
		Seed:             opts.seed,
	}, logger)
	if err != nil {
		return fmt.Errorf("configuring renderer: %w", err)
	}

	fb, stats := raytracer.Render()
	logger.Printf("Samples per pixel: %.1f, average luminance %.3f\n", stats.AverageSamples(), fb.AverageLuminance())

	filename := opts.out
	if filename == "" {
		filename = defaultOutputPath(opts.sceneName, time.Now())
	}
	if err := output.SaveFile(filename, fb); err != nil {
		return fmt.Errorf("saving render: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the named scene and applies the size and quality overrides
func createScene(opts options) (*scene.Scene, error) {
	selected, err := scene.Lookup(opts.sceneName, opts.seed)
	if err != nil {
		return nil, err
	}

	config := selected.SamplingConfig
	if opts.samples > 0 {
		config.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		config.MaxDepth = opts.depth
	}
	if opts.width > 0 {
		config.Width = opts.width
	}
	if opts.height > 0 {
		config.Height = opts.height
	}
	if config == selected.SamplingConfig {
		return selected, nil
	}
	return selected.WithSamplingConfig(config), nil
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.ppm
func defaultOutputPath(sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.ppm", timestamp))
}
