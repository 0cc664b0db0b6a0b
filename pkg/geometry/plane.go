package geometry

import (
	"math"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

// parallelEpsilon is the |n·d| below which a ray counts as parallel to a plane
const parallelEpsilon = 1e-6

// InfinitePlane represents an infinite plane defined by a point and normal
type InfinitePlane struct {
	primitive
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
}

// NewInfinitePlane creates a new plane
func NewInfinitePlane(point, normal core.Vec3, mat material.Material) *InfinitePlane {
	return &InfinitePlane{
		primitive: newPrimitive(mat, DrawAlways()),
		Point:     point,
		Normal:    normal.Normalize(),
	}
}

// rayPlaneIntersect returns the ray parameter where it crosses the plane through
// center with the given normal. ok is false for near-parallel rays.
func rayPlaneIntersect(ray core.Ray, normal, center core.Vec3) (t float64, ok bool) {
	denominator := normal.Dot(ray.Direction)
	if math.Abs(denominator) < parallelEpsilon {
		return 0, false
	}
	return -normal.Dot(ray.Origin.Subtract(center)) / denominator, true
}

// Hit tests if a ray intersects with the plane
func (p *InfinitePlane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t, ok := rayPlaneIntersect(ray, p.Normal, p.Point)
	if !ok || t < tMin || t > tMax {
		return nil, false
	}
	return p.record(ray, t, ray.At(t), p.Normal), true
}

// WorldBoundingBox returns a box standing in for the unbounded plane
func (p *InfinitePlane) WorldBoundingBox() core.AABB {
	return core.NewInfiniteAABB()
}
