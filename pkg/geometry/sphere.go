package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. Negative radii are clamped to zero.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   math.Max(0, radius),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere within the open interval
func (s *Sphere) Hit(ray core.Ray, interval core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	// A zero-radius sphere is a point and is never reported as hit
	if s.Radius <= 0 {
		return nil, false
	}

	root, ok := s.nearestRoot(ray, interval)
	if !ok {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	// Calculate outward normal (from center to hit point)
	outwardNormal := hitRecord.Point.Subtract(s.Center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.ApplyMaterial(ray, s.Material, sampler)

	return hitRecord, true
}

// nearestRoot solves the ray-sphere quadratic and returns the smallest root the interval surrounds
func (s *Sphere) nearestRoot(ray core.Ray, interval core.Interval) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !interval.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !interval.Surrounds(root) {
			return 0, false
		}
	}

	return root, true
}
