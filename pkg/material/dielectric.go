package material

import (
	"fmt"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractionIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material.
// The refraction index must be positive.
func NewDielectric(refractionIndex float64) (*Dielectric, error) {
	if !(refractionIndex > 0) {
		return nil, fmt.Errorf("dielectric refraction index must be positive, got %v", refractionIndex)
	}
	return &Dielectric{RefractionIndex: refractionIndex}, nil
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Clear glass does not absorb
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractionIndex // entering the medium
	} else {
		refractionRatio = d.RefractionIndex // leaving the medium
	}

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
