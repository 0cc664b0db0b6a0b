package material

import (
	"fmt"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
)

// Kind tags which scattering model a Material uses
type Kind uint8

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Material is a small immutable value describing how light bounces off a surface.
// Primitives hold their own copy. The zero value is a black Lambertian.
type Material struct {
	kind            Kind
	albedo          core.Vec3 // lambertian, metal
	fuzz            float64   // metal
	refractiveIndex float64   // dielectric
}

// Kind returns the scattering model
func (m Material) Kind() Kind {
	return m.kind
}

// Albedo returns the reflectance color (zero for dielectrics)
func (m Material) Albedo() core.Vec3 {
	return m.albedo
}

// Fuzz returns the metal roughness in [0, 1]
func (m Material) Fuzz() float64 {
	return m.fuzz
}

// RefractiveIndex returns the dielectric index of refraction
func (m Material) RefractiveIndex() float64 {
	return m.refractiveIndex
}

// Scatter bounces rayIn off the surface described by hit. It always produces a ray.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult {
	switch m.kind {
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return m.scatterLambertian(hit, sampler)
	}
}

func (m Material) String() string {
	switch m.kind {
	case KindMetal:
		return fmt.Sprintf("metal(albedo=%v, fuzz=%.3g)", m.albedo, m.fuzz)
	case KindDielectric:
		return fmt.Sprintf("dielectric(ior=%.3g)", m.refractiveIndex)
	default:
		return fmt.Sprintf("lambertian(albedo=%v)", m.albedo)
	}
}
