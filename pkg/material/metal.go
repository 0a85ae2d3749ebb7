package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	// Clamp fuzz to valid range
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering.
// A fuzzed direction that ends up below the surface still scatters; the
// continuation ray then re-enters the sphere and is resolved by later bounces.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected.Normalize()),
		Attenuation: m.Albedo,
	}, true
}
