package geometry

import (
	"github.com/df07/go-adaptive-pathtracer/pkg/core"
)

// BoundingBox is a culling volume. A primitive for which no cheap bound helps
// (a full sphere, an infinite plane) reports DrawAlways and is always tested exactly.
type BoundingBox struct {
	always bool
	box    core.AABB
}

// DrawAlways returns a volume whose pre-test always passes
func DrawAlways() BoundingBox {
	return BoundingBox{always: true}
}

// Bounded returns a volume that culls rays missing box
func Bounded(box core.AABB) BoundingBox {
	return BoundingBox{box: box}
}

// IsDrawAlways reports whether the pre-test always passes
func (b BoundingBox) IsDrawAlways() bool {
	return b.always
}

// Hit is the coarse pre-test
func (b BoundingBox) Hit(ray core.Ray, tMin, tMax float64) bool {
	if b.always {
		return true
	}
	return b.box.Hit(ray, tMin, tMax)
}
