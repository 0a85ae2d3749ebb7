package core

import (
	"math"
	"math/rand"
	"testing"
)

// fixedSampler replays a fixed sequence of values, wrapping around
type fixedSampler struct {
	values []float64
	index  int
}

func (f *fixedSampler) Get1D() float64 {
	v := f.values[f.index%len(f.values)]
	f.index++
	return v
}

func (f *fixedSampler) Get2D() Vec2 {
	return NewVec2(f.Get1D(), f.Get1D())
}

func (f *fixedSampler) Get3D() Vec3 {
	return NewVec3(f.Get1D(), f.Get1D(), f.Get1D())
}

func TestRandomUnitVector_UnitLength(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 10000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Draw %d: expected unit length, got %v (length %f)", i, v, v.Length())
		}
	}
}

func TestRandomUnitVector_RejectsOutsideSphere(t *testing.T) {
	// First triple maps to (1,1,1) which lies outside the unit sphere,
	// second maps to (0.5,0,0) which is accepted.
	sampler := &fixedSampler{values: []float64{0.9999999, 0.9999999, 0.9999999, 0.75, 0.5, 0.5}}

	v := RandomUnitVector(sampler)
	if !vecApproxEqual(v, NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected (1, 0, 0) after rejection, got %v", v)
	}
	if sampler.index != 6 {
		t.Errorf("Expected 6 draws, got %d", sampler.index)
	}
}

func TestRandomUnitVector_RejectsDegenerate(t *testing.T) {
	// 0.5 maps to exactly zero: the zero vector must be rejected
	sampler := &fixedSampler{values: []float64{0.5, 0.5, 0.5, 0.5, 0.25, 0.5}}

	v := RandomUnitVector(sampler)
	if !vecApproxEqual(v, NewVec3(0, -1, 0), 1e-9) {
		t.Errorf("Expected (0, -1, 0) after rejecting the zero vector, got %v", v)
	}
}

func TestRandomOnHemisphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(3)))
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		for i := 0; i < 2000; i++ {
			v := RandomOnHemisphere(normal, sampler)
			if v.Dot(normal) < 0 {
				t.Fatalf("Sample %v lies outside the hemisphere of %v", v, normal)
			}
			if math.Abs(v.Length()-1) > 1e-9 {
				t.Fatalf("Expected unit vector, got length %f", v.Length())
			}
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(11)))

	sawNegativeX, sawPositiveX := false, false
	for i := 0; i < 5000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Expected point in the z=0 plane, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Expected point inside unit disk, got %v", p)
		}
		if p.X < 0 {
			sawNegativeX = true
		} else {
			sawPositiveX = true
		}
	}

	if !sawNegativeX || !sawPositiveX {
		t.Error("Expected disk samples on both sides of the y axis")
	}
}

func TestRandomInRange(t *testing.T) {
	sampler := NewSeededSampler(5)
	for i := 0; i < 1000; i++ {
		v := RandomInRange(sampler, -0.5, 0.5)
		if v < -0.5 || v >= 0.5 {
			t.Fatalf("Expected value in [-0.5, 0.5), got %f", v)
		}
	}
}

func TestSeededSampler_Reproducible(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Expected identical streams for identical seeds at draw %d", i)
		}
	}
}
