package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewMaterialsScene creates one sphere of each material on a ground sphere:
// a hollow glass bubble on the left, diffuse blue in the middle and fuzzy
// gold metal on the right, with shallow depth of field
func NewMaterialsScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		DefocusAngle:  10.0,
		FocusDistance: 3.4,
	}

	s := &Scene{
		CameraConfig: cameraConfig(defaultCameraConfig, cameraOverrides),
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
			TileSize:        32,
			Seed:            42,
		},
	}

	glass, err := newGlass("materials", 1.50)
	if err != nil {
		return nil, err
	}
	// Air inside glass: the inner sphere turns the left sphere into a hollow shell
	bubble, err := newGlass("materials", 1.00/1.50)
	if err != nil {
		return nil, err
	}

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, ground),
		geometry.NewSphere(core.NewVec3(0.0, 0.0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.4, bubble),
		geometry.NewSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, gold),
	)

	return s, nil
}
