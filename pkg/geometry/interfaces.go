package geometry

import (
	"sync/atomic"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

// Traced is implemented by every primitive a ray can hit
type Traced interface {
	// Hit returns the intersection within [tMin, tMax], if any
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// WorldBoundingBox returns conservative world-space bounds
	WorldBoundingBox() core.AABB
	// BoundingBox returns the culling volume used by HitBoundingBox
	BoundingBox() BoundingBox
	// HitBoundingBox is a cheap pre-test. A false result means Hit would miss;
	// a true result means nothing.
	HitBoundingBox(ray core.Ray, tMin, tMax float64) bool
	// ID returns the process-unique object id (never 0)
	ID() uint64
}

var lastObjectID atomic.Uint64

// nextObjectID hands out ids starting at 1; 0 stands for the background
func nextObjectID() uint64 {
	return lastObjectID.Add(1)
}

// primitive holds the state every shape shares
type primitive struct {
	Material material.Material
	id       uint64
	cull     BoundingBox
}

func newPrimitive(mat material.Material, cull BoundingBox) primitive {
	return primitive{Material: mat, id: nextObjectID(), cull: cull}
}

// ID returns the object id
func (p *primitive) ID() uint64 {
	return p.id
}

// BoundingBox returns the culling volume
func (p *primitive) BoundingBox() BoundingBox {
	return p.cull
}

// HitBoundingBox runs the culling pre-test
func (p *primitive) HitBoundingBox(ray core.Ray, tMin, tMax float64) bool {
	return p.cull.Hit(ray, tMin, tMax)
}

// record builds a hit record whose normal faces against the ray
func (p *primitive) record(ray core.Ray, t float64, point, outwardNormal core.Vec3) *material.HitRecord {
	hit := &material.HitRecord{
		T:        t,
		Point:    point,
		Material: p.Material,
		ObjectID: p.id,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}
