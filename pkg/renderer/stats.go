package renderer

import (
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	TotalTiles     int           // Number of tiles the image was split into
	NumWorkers     int           // Number of goroutines that rendered tiles
	Duration       time.Duration // Wall-clock render time
}

// Merge folds the counters of a tile into the overall statistics
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.TotalTiles += other.TotalTiles
}

// Finalize computes derived statistics once all tiles are merged
func (rs *RenderStats) Finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
	}
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
