package renderer

import (
	"math"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

// World is the scene as seen by the renderer
type World interface {
	// Hit returns the nearest intersection within [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// FirstHit answers the primary-ray query for the ray through screen position (u, v)
	FirstHit(ray core.Ray, tMin, tMax, u, v float64) (*material.HitRecord, bool)
}

// rayColor traces one path of at most cfg.MaxDepth scene queries.
// It returns the path's color together with the t and object id of the first hit;
// a primary ray that misses reports depth +Inf and object 0.
func rayColor(world World, cfg *Config, ray core.Ray, u, v float64, sampler core.Sampler) (core.Vec3, float64, uint64) {
	throughput := core.NewVec3(1, 1, 1)

	hit, isHit := world.FirstHit(ray, cfg.TMin, cfg.TMax, u, v)
	if !isHit {
		return throughput.MultiplyVec(cfg.Sky.Color(ray.Direction)), math.Inf(1), 0
	}
	depth, objectID := hit.T, hit.ObjectID

	for queries := 1; ; queries++ {
		scatter := hit.Material.Scatter(ray, *hit, sampler)
		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered

		// If we've exceeded the ray bounce limit, no more light is gathered
		if queries >= cfg.MaxDepth {
			return core.Vec3{}, depth, objectID
		}

		hit, isHit = world.Hit(ray, cfg.TMin, cfg.TMax)
		if !isHit {
			return throughput.MultiplyVec(cfg.Sky.Color(ray.Direction)), depth, objectID
		}
	}
}
