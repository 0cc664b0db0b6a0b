package core

import (
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		v := sampler.Range(-2, 3)
		if v < -2 || v >= 3 {
			t.Fatalf("Range value %f outside [-2,3)", v)
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point %v is not inside the unit sphere", p)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(42)
	var mean Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(sampler)
		if d := v.Length() - 1; d > 1e-12 || d < -1e-12 {
			t.Fatalf("Vector %v is not unit length", v)
		}
		mean = mean.Add(v)
	}
	// uniform on the sphere, so the mean should be near the origin
	if mean.Divide(n).Length() > 0.05 {
		t.Errorf("Unit vectors look biased, mean %v", mean.Divide(n))
	}
}

func TestRandomInHemisphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	normal := NewVec3(0, 1, 0)
	for i := 0; i < 1000; i++ {
		if p := RandomInHemisphere(normal, sampler); p.Dot(normal) < 0 {
			t.Fatalf("Point %v is below the hemisphere", p)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 || p.LengthSquared() >= 1 {
			t.Fatalf("Point %v is not in the unit disk", p)
		}
	}
}
