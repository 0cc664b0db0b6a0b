package material

import (
	"github.com/df07/go-adaptive-pathtracer/pkg/core"
)

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{kind: KindLambertian, albedo: albedo}
}

// scatterLambertian offsets the normal by a random unit vector, which approximates a
// cosine-weighted bounce
func (m Material) scatterLambertian(hit HitRecord, sampler core.Sampler) ScatterResult {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))

	// the two vectors nearly cancelled; a zero direction would poison the next hit test
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.albedo,
	}
}
