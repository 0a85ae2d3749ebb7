package material

import (
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// absorber never scatters
type absorber struct{}

func (absorber) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	tests := []struct {
		name           string
		direction      core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"approaching from outside", core.NewVec3(0, 0, -1), true, core.NewVec3(0, 0, 1)},
		{"leaving from inside", core.NewVec3(0, 0, 1), false, core.NewVec3(0, 0, -1)},
		{"oblique from outside", core.NewVec3(1, 0, -0.1), true, core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit HitRecord
			hit.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 0), tt.direction), outward)

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Normal.Dot(tt.direction) >= 0 {
				t.Errorf("Normal %v should oppose the ray direction %v", hit.Normal, tt.direction)
			}
		})
	}
}

func TestHitRecord_ApplyMaterial(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	sampler := core.NewSeededSampler(42)

	t.Run("scattering material", func(t *testing.T) {
		hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}
		albedo := core.NewVec3(0.3, 0.4, 0.5)
		hit.ApplyMaterial(ray, NewMetal(albedo, 0), sampler)

		if hit.Absorbed {
			t.Fatal("Expected metal to scatter")
		}
		if !hit.Scatter.Attenuation.Equals(albedo) {
			t.Errorf("Expected attenuation %v, got %v", albedo, hit.Scatter.Attenuation)
		}
		if !hit.Scatter.Scattered.Direction.Equals(core.NewVec3(0, 0, 1)) {
			t.Errorf("Expected mirror direction (0, 0, 1), got %v", hit.Scatter.Scattered.Direction)
		}
	})

	t.Run("absorbing material", func(t *testing.T) {
		hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: true}
		hit.ApplyMaterial(ray, absorber{}, sampler)
		if !hit.Absorbed {
			t.Error("Expected record to be marked absorbed")
		}
	})

	t.Run("missing material", func(t *testing.T) {
		hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: true}
		hit.ApplyMaterial(ray, nil, sampler)
		if !hit.Absorbed {
			t.Error("Expected record without material to be marked absorbed")
		}
	})
}
