package scene

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes         geometry.ShapeList // Objects in the scene
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes.Add(shapes...)
}

// NewRaytracer builds the camera for this scene and a raytracer over its shapes
func (s *Scene) NewRaytracer(logger core.Logger) (*renderer.Raytracer, error) {
	camera, err := renderer.NewCamera(s.CameraConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid camera: %w", err)
	}
	return renderer.NewRaytracer(s.Shapes, camera, s.SamplingConfig, logger)
}

// newGlass creates a dielectric, wrapping the error with the scene it belongs to
func newGlass(sceneName string, refractionIndex float64) (*material.Dielectric, error) {
	glass, err := material.NewDielectric(refractionIndex)
	if err != nil {
		return nil, fmt.Errorf("%s scene: %w", sceneName, err)
	}
	return glass, nil
}

// cameraConfig applies the first override, if any, to the scene's camera defaults
func cameraConfig(defaults renderer.CameraConfig, overrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(overrides) > 0 {
		return renderer.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}
