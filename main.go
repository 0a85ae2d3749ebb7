package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Samples   int
	MaxDepth  int
	Workers   int
	Seed      int64
	Format    string
	Output    string
	Help      bool
}

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		config.Help = true
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if config.Help {
		showHelp(os.Stdout)
		return
	}

	logger := renderer.NewDefaultLogger()
	if err := run(config, os.Stdout, logger); err != nil {
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet registers the command line flags, storing their values in config
func newFlagSet(config *Config, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {}
	fs.StringVar(&config.SceneType, "scene", "basic", "Scene type: 'basic', 'materials' or 'cover'")
	fs.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&config.MaxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.Int64Var(&config.Seed, "seed", 0, "Random seed for sampling (0 = scene default)")
	fs.StringVar(&config.Format, "format", "ppm", "Output format: 'ppm' or 'png'")
	fs.StringVar(&config.Output, "output", "", "Output file, or '-' for stdout (default output/<scene>/render_<timestamp>.<format>)")
	fs.BoolVar(&config.Help, "help", false, "Show help information")
	return fs
}

// parseFlags reads the command line into a Config
func parseFlags(args []string, errOut io.Writer) (Config, error) {
	var config Config
	if err := newFlagSet(&config, errOut).Parse(args); err != nil {
		return Config{}, err
	}
	if config.Format != "ppm" && config.Format != "png" {
		return Config{}, fmt.Errorf("unknown output format: %s", config.Format)
	}
	if config.Width < 0 || config.Samples < 0 || config.MaxDepth < 0 || config.Workers < 0 {
		return Config{}, fmt.Errorf("width, samples, depth and workers must not be negative")
	}
	return config, nil
}

func showHelp(w io.Writer) {
	fmt.Fprintln(w, "Weekend Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	newFlagSet(&Config{}, w).PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-10s - %s\n", info.Name, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>.<format> unless -output is given")
}

// createScene builds the named scene with the command line overrides applied
func createScene(config Config) (*scene.Scene, error) {
	s, err := scene.New(config.SceneType)
	if err != nil {
		return nil, err
	}

	s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, renderer.CameraConfig{Width: config.Width})
	s.SamplingConfig = renderer.MergeSamplingConfig(s.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: config.Samples,
		MaxDepth:        config.MaxDepth,
		NumWorkers:      config.Workers,
		Seed:            config.Seed,
	})

	return s, nil
}

// createOutputPath returns the file the render is written to
func createOutputPath(config Config, now time.Time) string {
	if config.Output != "" {
		return config.Output
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", config.SceneType, fmt.Sprintf("render_%s.%s", timestamp, config.Format))
}

// run renders the configured scene and writes the encoded image
func run(config Config, stdout io.Writer, logger core.Logger) error {
	s, err := createScene(config)
	if err != nil {
		return err
	}

	logger.Printf("Using %s scene with %d shapes...\n", config.SceneType, len(s.Shapes))

	raytracer, err := s.NewRaytracer(logger)
	if err != nil {
		return fmt.Errorf("failed to create raytracer: %w", err)
	}

	frame, _, err := raytracer.Render()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	path := createOutputPath(config, time.Now())
	if path == "-" {
		return output.Write(stdout, frame, config.Format)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := output.Write(file, frame, config.Format); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", path)
	return nil
}
