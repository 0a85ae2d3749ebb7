package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter produces the attenuation and outgoing ray for a ray arriving at hit.
	// It returns false when the ray is fully absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// The scatter outcome is evaluated by the hit surface's material when the
// record is produced, so the record is complete once a shape returns it.
type HitRecord struct {
	Point     core.Vec3     // Point of intersection
	Normal    core.Vec3     // Unit normal, always facing against the incoming ray
	T         float64       // Parameter t along the ray
	FrontFace bool          // Whether the ray arrived from outside the surface
	Scatter   ScatterResult // Material response, valid when Absorbed is false
	Absorbed  bool          // Whether the material absorbed the ray
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ApplyMaterial evaluates mat at the hit and stores the outcome in the record
func (h *HitRecord) ApplyMaterial(rayIn core.Ray, mat Material, sampler core.Sampler) {
	if mat == nil {
		h.Absorbed = true
		return
	}
	scatter, ok := mat.Scatter(rayIn, *h, sampler)
	h.Scatter = scatter
	h.Absorbed = !ok
}
