package material

import (
	"math"
	"testing"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
)

func TestDielectric_AttenuationAlwaysWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	white := core.NewVec3(1, 1, 1)

	directions := []core.Vec3{
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, -0.05, 0),
		core.NewVec3(-0.3, -0.8, 0.4),
	}

	for seed := int64(0); seed < 50; seed++ {
		sampler := core.NewSeededSampler(seed)
		for _, dir := range directions {
			for _, front := range []bool{true, false} {
				ray := core.NewRay(core.NewVec3(0, 1, 0), dir)
				hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: front}
				result := glass.Scatter(ray, hit, sampler)
				if !result.Attenuation.Equals(white) {
					t.Fatalf("Expected attenuation %v, got %v", white, result.Attenuation)
				}
			}
		}
	}
}

func TestDielectric_ReflectsAndRefracts(t *testing.T) {
	glass := NewDielectric(1.5)
	rayDirection := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	hasReflection := false
	hasRefraction := false
	sampler := core.NewSeededSampler(42)
	for i := 0; i < 2000 && (!hasReflection || !hasRefraction); i++ {
		result := glass.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction")
	}
	// Schlick gives ~5% reflectance at 45 degrees, 2000 draws make a miss vanishingly unlikely
	if !hasReflection {
		t.Error("Expected to see at least one Fresnel reflection")
	}
}

func TestDielectric_RefractionFollowsSnell(t *testing.T) {
	incoming := core.NewVec3(1, -1, 0).Normalize()
	normal := core.NewVec3(0, 1, 0)
	ratio := 1.0 / 1.5

	out := Refract(incoming, normal, ratio)
	sinIn := math.Sqrt(1 - math.Pow(incoming.Dot(normal), 2))
	sinOut := math.Sqrt(1 - math.Pow(out.Normalize().Dot(normal), 2))

	if math.Abs(sinOut-ratio*sinIn) > 1e-9 {
		t.Errorf("Snell's law violated: sinOut=%f, expected %f", sinOut, ratio*sinIn)
	}
	if math.Abs(out.Length()-1) > 1e-9 {
		t.Errorf("Refracted unit vector should stay unit length, got %f", out.Length())
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// exiting the glass at a shallow angle
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: false}

	cosTheta := -rayDirection.Dot(hit.Normal)
	if 1.5*math.Sqrt(1-cosTheta*cosTheta) <= 1 {
		t.Fatalf("Test setup error: this angle should cause total internal reflection")
	}

	for seed := int64(0); seed < 20; seed++ {
		result := glass.Scatter(ray, hit, core.NewSeededSampler(seed))
		expected := Reflect(rayDirection, hit.Normal)
		if !result.Scattered.Direction.ApproxEquals(expected, 1e-12) {
			t.Errorf("Expected reflection %v, got %v", expected, result.Scattered.Direction)
		}
	}
}

func TestReflectance_Schlick(t *testing.T) {
	// normal incidence gives R0
	r0 := math.Pow((1-1.5)/(1+1.5), 2)
	if math.Abs(Reflectance(1, 1.5)-r0) > 1e-12 {
		t.Errorf("Expected R0=%f, got %f", r0, Reflectance(1, 1.5))
	}
	// grazing incidence reflects everything
	if math.Abs(Reflectance(0, 1.5)-1) > 1e-12 {
		t.Errorf("Expected full reflectance at grazing angle, got %f", Reflectance(0, 1.5))
	}
}
