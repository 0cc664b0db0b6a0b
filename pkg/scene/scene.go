package scene

import (
	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/geometry"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

// Scene is a flat list of primitives. Queries test every object in turn,
// skipping those whose culling volume the ray misses.
type Scene struct {
	objects []geometry.Traced
}

// New creates a scene holding the given objects
func New(objects ...geometry.Traced) *Scene {
	s := &Scene{objects: make([]geometry.Traced, 0, len(objects))}
	s.Add(objects...)
	return s
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Traced) {
	s.objects = append(s.objects, objects...)
}

// Len returns the number of objects in the scene
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns the scene's objects. The slice must not be modified.
func (s *Scene) Objects() []geometry.Traced {
	return s.objects
}

// Hit returns the nearest intersection within [tMin, tMax]
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range s.objects {
		if !object.HitBoundingBox(ray, tMin, closestSoFar) {
			continue
		}
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// FirstHit answers a primary-ray query. The screen position (u, v) of the ray is
// accepted so that coherent primary rays could be accelerated; it is not used yet.
func (s *Scene) FirstHit(ray core.Ray, tMin, tMax, u, v float64) (*material.HitRecord, bool) {
	return s.Hit(ray, tMin, tMax)
}

// WorldBounds returns the union of all finite object bounds.
// Unbounded objects such as infinite planes are left out, so a scene without any
// finite object reports an invalid (empty) box.
func (s *Scene) WorldBounds() core.AABB {
	bounds := core.EmptyAABB()
	for _, object := range s.objects {
		if box := object.WorldBoundingBox(); box.IsFinite() {
			bounds = bounds.Union(box)
		}
	}
	return bounds
}
