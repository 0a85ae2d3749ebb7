package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; give each goroutine its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInRange returns a random float64 in [min, max)
func RandomInRange(sampler Sampler, min, max float64) float64 {
	return min + (max-min)*sampler.Get1D()
}

// RandomVec3InRange returns a vector with each component uniform in [min, max)
func RandomVec3InRange(sampler Sampler, min, max float64) Vec3 {
	u := sampler.Get3D()
	return NewVec3(
		min+(max-min)*u.X,
		min+(max-min)*u.Y,
		min+(max-min)*u.Z,
	)
}

// RandomUnitVector returns a uniformly distributed unit vector using rejection sampling.
// The lower bound on the squared length keeps the normalization away from tiny vectors.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomVec3InRange(sampler, -1, 1)
		lensq := p.LengthSquared()
		if 1e-160 < lensq && lensq <= 1 {
			return p.Divide(math.Sqrt(lensq))
		}
	}
}

// RandomOnHemisphere returns a random unit vector in the hemisphere around normal
func RandomOnHemisphere(normal Vec3, sampler Sampler) Vec3 {
	onUnitSphere := RandomUnitVector(sampler)
	if onUnitSphere.Dot(normal) > 0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		u := sampler.Get2D()
		p := NewVec3(2*u.X-1, 2*u.Y-1, 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
