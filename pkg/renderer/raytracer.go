package renderer

import (
	"fmt"
	"math"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// shadowAcneEpsilon is the lower bound on t for scene intersection; it keeps
// scattered rays from re-hitting the surface they start on
const shadowAcneEpsilon = 0.001

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	TileSize        int   // Size of each square tile in pixels
	Seed            int64 // Base seed for the per-tile random streams
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		TileSize:        32,
		Seed:            42,
	}
}

// MergeSamplingConfig returns base with every non-zero field of override applied
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.TileSize != 0 {
		result.TileSize = override.TileSize
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// Validate reports configuration the sampling loop cannot run with
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max depth must be at least 1, got %d", c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("number of workers must not be negative, got %d", c.NumWorkers)
	}
	if c.TileSize < 1 {
		return fmt.Errorf("tile size must be at least 1, got %d", c.TileSize)
	}
	return nil
}

// Raytracer handles the rendering process. The world, camera and config are
// read-only once constructed, so one Raytracer is shared by all workers.
type Raytracer struct {
	world  geometry.Shape
	camera *Camera
	config SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(world geometry.Shape, camera *Camera, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if world == nil {
		return nil, fmt.Errorf("raytracer requires a world to render")
	}
	if camera == nil {
		return nil, fmt.Errorf("raytracer requires a camera")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampling config: %w", err)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		world:  world,
		camera: camera,
		config: config,
		logger: logger,
	}, nil
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// RayColor returns the radiance carried back along ray, following at most depth bounces
func (rt *Raytracer) RayColor(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := rt.world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return backgroundGradient(ray)
	}

	if hit.Absorbed {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	return hit.Scatter.Attenuation.MultiplyVec(
		rt.RayColor(hit.Scatter.Scattered, depth-1, sampler))
}

// backgroundGradient blends white at the bottom into sky blue at the top
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return skyWhite.Lerp(skyBlue, t)
}

// SamplePixel accumulates SamplesPerPixel radiance samples for pixel (i, j)
func (rt *Raytracer) SamplePixel(i, j int, ps *PixelStats, sampler core.Sampler) {
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, sampler)
		ps.AddSample(rt.RayColor(ray, rt.config.MaxDepth, sampler))
	}
}

// RenderTile renders every pixel in the tile into pixelStats using the tile's random stream
func (rt *Raytracer) RenderTile(tile *Tile, pixelStats [][]PixelStats) RenderStats {
	bounds := tile.Bounds
	stats := RenderStats{TotalTiles: 1}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			before := ps.SampleCount
			rt.SamplePixel(i, j, ps, tile.Sampler)
			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount - before
		}
	}

	return stats
}

// Render computes every pixel in parallel and returns the averaged linear
// colors in an addressable raster-order frame
func (rt *Raytracer) Render() (*Frame, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()

	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	pool := NewWorkerPool(rt, rt.config.NumWorkers, len(tiles))
	pool.Start()

	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d, %d tiles on %d workers\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, len(tiles), pool.GetNumWorkers())

	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, PixelStats: pixelStats})
	}

	stats := RenderStats{NumWorkers: pool.GetNumWorkers()}
	var renderErr error
	lastDecile := 0

	for completed := 1; completed <= len(tiles); completed++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil && renderErr == nil {
			renderErr = result.Error
		}
		stats.Merge(result.Stats)

		if decile := completed * 10 / len(tiles); decile > lastDecile {
			lastDecile = decile
			rt.logger.Printf("Rendered %d/%d tiles (%d%%)\n", completed, len(tiles), decile*10)
		}
	}

	pool.Stop()

	if renderErr != nil {
		return nil, RenderStats{}, renderErr
	}

	frame := NewFrame(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			frame.Set(x, y, pixelStats[y][x].GetColor())
		}
	}

	stats.Finalize()
	stats.Duration = time.Since(startTime)

	rt.logger.Printf("Render completed in %v (%.1f samples per pixel)\n", stats.Duration, stats.AverageSamples)

	return frame, stats, nil
}
