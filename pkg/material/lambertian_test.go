package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// sequenceSampler replays a fixed sequence of values, wrapping around
type sequenceSampler struct {
	values []float64
	index  int
}

func (s *sequenceSampler) Get1D() float64 {
	v := s.values[s.index%len(s.values)]
	s.index++
	return v
}

func (s *sequenceSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.Get1D(), s.Get1D())
}

func (s *sequenceSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}

func TestLambertian_ScatterAboveSurface(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		FrontFace: true,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		// normal + unit vector never points below the tangent plane
		if scatter.Scattered.Direction.Dot(normal) < 0 {
			t.Fatalf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Fatalf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(1, 2, 3), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(1, 3, 3), core.NewVec3(0, -1, 0))

	// (0.5, 0, 0.5) maps to the unit vector (0, -1, 0), cancelling the normal exactly
	sampler := &sequenceSampler{values: []float64{0.5, 0, 0.5}}

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if !scatter.Scattered.Direction.Equals(normal) {
		t.Errorf("Expected fallback direction %v, got %v", normal, scatter.Scattered.Direction)
	}
}

func TestLambertian_CosineWeightedDistribution(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// For a cosine-weighted hemisphere E[cos(theta)] = 2/3
	const samples = 20000
	sum := 0.0
	for i := 0; i < samples; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, sampler)
		sum += scatter.Scattered.Direction.Normalize().Dot(normal)
	}
	mean := sum / samples

	if math.Abs(mean-2.0/3.0) > 0.02 {
		t.Errorf("Expected mean cosine near 2/3, got %f", mean)
	}
}
