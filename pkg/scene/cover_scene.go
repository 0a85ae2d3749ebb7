package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

const (
	coverGridExtent  = 11  // small spheres are placed on integer cells in [-11, 11)
	coverSmallRadius = 0.2 // radius of every small sphere
)

// NewCoverScene creates a field of small random spheres around three large
// ones. The layout is fully determined by seed.
func NewCoverScene(seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         600,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		DefocusAngle:  0.6,
		FocusDistance: 10.0,
	}

	s := &Scene{
		CameraConfig: cameraConfig(defaultCameraConfig, cameraOverrides),
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 50,
			MaxDepth:        50,
			TileSize:        32,
			Seed:            seed,
		},
	}

	glass, err := newGlass("cover", 1.5)
	if err != nil {
		return nil, err
	}

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	random := core.NewSeededSampler(seed)
	clearing := core.NewVec3(4, 0.2, 0) // keep the metal sphere unobstructed

	for a := -coverGridExtent; a < coverGridExtent; a++ {
		for b := -coverGridExtent; b < coverGridExtent; b++ {
			chooseMat := random.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*random.Get1D(),
				coverSmallRadius,
				float64(b)+0.9*random.Get1D(),
			)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := random.Get3D().MultiplyVec(random.Get3D())
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				// metal
				albedo := core.RandomVec3InRange(random, 0.5, 1)
				fuzz := core.RandomInRange(random, 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = glass
			}

			s.Add(geometry.NewSphere(center, coverSmallRadius, mat))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s, nil
}
