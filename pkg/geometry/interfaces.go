package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// A returned record already carries the material's scatter outcome, so the
// sampler is consumed by the hit surface's material.
type Shape interface {
	Hit(ray core.Ray, interval core.Interval, sampler core.Sampler) (*material.HitRecord, bool)
}
