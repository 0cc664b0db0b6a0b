package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// infiniteExtent bounds primitives with no finite extent (planes)
const infiniteExtent = 1e6

// NewInfiniteAABB returns a box large enough to stand in for an unbounded primitive
func NewInfiniteAABB() AABB {
	return AABB{
		Min: NewVec3(-infiniteExtent, -infiniteExtent, -infiniteExtent),
		Max: NewVec3(infiniteExtent, infiniteExtent, infiniteExtent),
	}
}

// EmptyAABB returns an inverted box that bounds nothing. It is the identity for
// Union and reports !IsValid until something is merged into it.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: NewVec3(inf, inf, inf), Max: NewVec3(-inf, -inf, -inf)}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min = min.Min(point)
		max = max.Max(point)
	}

	return AABB{Min: min, Max: max}
}

// Hit reports whether the ray overlaps the box within [tMin, tMax] (slab test)
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		lo, hi := aabb.Min.Index(axis), aabb.Max.Index(axis)
		origin, direction := ray.Origin.Index(axis), ray.Direction.Index(axis)

		if math.Abs(direction) < nearZeroEpsilon {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		t0 := (lo - origin) / direction
		t1 := (hi - origin) / direction
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = max(tMin, t0)
		tMax = min(tMax, t1)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// Transform returns the axis-aligned box bounding the 8 transformed corners
func (aabb AABB) Transform(m Mat4) AABB {
	var corners [8]Vec3
	for i := range corners {
		corner := aabb.Min
		if i&1 != 0 {
			corner.X = aabb.Max.X
		}
		if i&2 != 0 {
			corner.Y = aabb.Max.Y
		}
		if i&4 != 0 {
			corner.Z = aabb.Max.Z
		}
		corners[i] = m.MulPoint(corner)
	}
	return NewAABBFromPoints(corners[:]...)
}

// IsFinite reports whether the box is smaller than the stand-in used for unbounded primitives
func (aabb AABB) IsFinite() bool {
	return aabb.Size().MaxComponent() < 2*infiniteExtent
}
