package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewBasicScene creates a diffuse sphere resting on a large ground sphere,
// seen from the origin looking down -z
func NewBasicScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := &Scene{
		CameraConfig: cameraConfig(renderer.DefaultCameraConfig(), cameraOverrides),
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
			TileSize:        32,
			Seed:            42,
		},
	}

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)

	return s
}
