package geometry

import (
	"math"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

const (
	cubeHalfExtent = 0.5
	// cubeEpsilon bounds both the near-parallel slab test and the face check
	cubeEpsilon = 1e-5
	// boxPadding keeps bounding boxes of flat or axis-aligned shapes from collapsing
	boxPadding = 1e-4
)

var localCube = core.NewAABB(
	core.NewVec3(-cubeHalfExtent, -cubeHalfExtent, -cubeHalfExtent),
	core.NewVec3(cubeHalfExtent, cubeHalfExtent, cubeHalfExtent),
)

// Cube is the axis-aligned cube [-0.5, 0.5]³ placed in the world by an affine
// transform. Rotated and non-uniformly scaled boxes are cubes with a different transform.
type Cube struct {
	primitive
	LocalToWorld core.Mat4
	WorldToLocal core.Mat4
	normalMatrix core.Mat3
	box          core.AABB
}

// NewCube creates a cube from its local-to-world transform
func NewCube(localToWorld core.Mat4, mat material.Material) *Cube {
	worldToLocal := localToWorld.FastHomogeneousInverse()
	box := localCube.Transform(localToWorld).Expand(boxPadding)
	return &Cube{
		primitive:    newPrimitive(mat, Bounded(box)),
		LocalToWorld: localToWorld,
		WorldToLocal: worldToLocal,
		normalMatrix: worldToLocal.Linear().Transpose(),
		box:          box,
	}
}

// NewCubeAt creates an axis-aligned cube from a center and edge length
func NewCubeAt(center core.Vec3, edge float64, mat material.Material) *Cube {
	m := core.Translate(center).Mul(core.Scale(core.NewVec3(edge, edge, edge)))
	return NewCube(m, mat)
}

// Hit tests if a ray intersects with the cube
func (c *Cube) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	local := ray.Transform(c.WorldToLocal)

	smallestT := math.Inf(1)
	hitAxis := -1
	for axis := 0; axis < 3; axis++ {
		d := local.Direction.Index(axis)
		if math.Abs(d) < cubeEpsilon {
			continue
		}
		o := local.Origin.Index(axis)
		t1 := (cubeHalfExtent - o) / d
		t2 := (-cubeHalfExtent - o) / d

		// Entering face when both are ahead, exit face when the origin is inside
		var t float64
		if t1 >= 0 && t2 >= 0 {
			t = math.Min(t1, t2)
		} else {
			t = math.Max(t1, t2)
		}
		if t > smallestT || t < tMin || t > tMax {
			continue
		}
		// The slab root must land on the cube surface, not just the plane
		if math.Abs(local.At(t).Abs().MaxComponent()-cubeHalfExtent) > cubeEpsilon {
			continue
		}
		smallestT = t
		hitAxis = axis
	}
	if hitAxis < 0 {
		return nil, false
	}

	localPoint := local.At(smallestT)
	sign := math.Copysign(1, localPoint.Index(hitAxis))
	var localNormal core.Vec3
	switch hitAxis {
	case 0:
		localNormal = core.NewVec3(sign, 0, 0)
	case 1:
		localNormal = core.NewVec3(0, sign, 0)
	default:
		localNormal = core.NewVec3(0, 0, sign)
	}
	outwardNormal := c.normalMatrix.MulVec(localNormal).Normalize()
	return c.record(ray, smallestT, c.LocalToWorld.MulPoint(localPoint), outwardNormal), true
}

// WorldBoundingBox returns the transformed cube bounds
func (c *Cube) WorldBoundingBox() core.AABB {
	return c.box
}
