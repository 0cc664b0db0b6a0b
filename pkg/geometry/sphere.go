package geometry

import (
	"math"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

// unitCube bounds the unit sphere in local space
var unitCube = core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))

// Sphere is the unit sphere at the local origin placed in the world by an affine transform,
// so one shape covers spheres and ellipsoids alike.
type Sphere struct {
	primitive
	LocalToWorld core.Mat4
	WorldToLocal core.Mat4 // cached inverse of LocalToWorld
	normalMatrix core.Mat3 // inverse transpose of the linear part
}

// NewSphere creates a sphere from its local-to-world transform
func NewSphere(localToWorld core.Mat4, mat material.Material) *Sphere {
	worldToLocal := localToWorld.FastHomogeneousInverse()
	return &Sphere{
		primitive:    newPrimitive(mat, DrawAlways()),
		LocalToWorld: localToWorld,
		WorldToLocal: worldToLocal,
		normalMatrix: worldToLocal.Linear().Transpose(),
	}
}

// NewSphereAt creates a sphere from a center and radius
func NewSphereAt(center core.Vec3, radius float64, mat material.Material) *Sphere {
	m := core.Translate(center).Mul(core.Scale(core.NewVec3(radius, radius, radius)))
	return NewSphere(m, mat)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	local := ray.Transform(s.WorldToLocal)

	// Quadratic equation coefficients for the unit sphere: at² + 2·halfB·t + c = 0
	a := local.Direction.LengthSquared()
	halfB := local.Origin.Dot(local.Direction)
	c := local.Origin.LengthSquared() - 1

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	localPoint := local.At(root)
	outwardNormal := s.normalMatrix.MulVec(localPoint).Normalize()
	return s.record(ray, root, s.LocalToWorld.MulPoint(localPoint), outwardNormal), true
}

// WorldBoundingBox returns the transformed local bounds
func (s *Sphere) WorldBoundingBox() core.AABB {
	return unitCube.Transform(s.LocalToWorld)
}
