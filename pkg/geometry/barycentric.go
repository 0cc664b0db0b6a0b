package geometry

import (
	"fmt"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

// BarycentricKind selects which region of the (λ1, λ2) plane counts as inside
type BarycentricKind uint8

const (
	// Parallelogram accepts 0 < λ1 < 1 and 0 < λ2 < 1
	Parallelogram BarycentricKind = iota
	// Triangle additionally requires 0 < λ3 < 1
	Triangle
)

func (k BarycentricKind) String() string {
	switch k {
	case Parallelogram:
		return "parallelogram"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("BarycentricKind(%d)", uint8(k))
	}
}

// Barycentric is a flat primitive spanned by two edges from an origin.
// Hits are classified by barycentric coordinates in the plane's own basis.
type Barycentric struct {
	primitive
	Kind    BarycentricKind
	Origin  core.Vec3
	U, V    core.Vec3 // unit edge directions
	ULength float64
	VLength float64
	Normal  core.Vec3 // unit u×v

	worldToPlane core.Mat4 // world point -> coordinates in the frame {u, n, n×u} at Origin
	vInBase      core.Vec3 // v expressed in that frame
	box          core.AABB
}

// NewBarycentric creates a parallelogram or triangle from an origin, two edge
// directions and their lengths. It panics on an unknown kind.
func NewBarycentric(kind BarycentricKind, origin, uDir, vDir core.Vec3, uLength, vLength float64, mat material.Material) *Barycentric {
	if kind != Parallelogram && kind != Triangle {
		panic(fmt.Sprintf("geometry: unknown barycentric kind %d", uint8(kind)))
	}

	u := uDir.Normalize()
	v := vDir.Normalize()
	normal := u.Cross(v).Normalize()
	inPlane := normal.Cross(u)

	worldToPlane := core.Basis(u, normal, inPlane, origin).FastHomogeneousInverse()

	corners := []core.Vec3{
		origin,
		origin.Add(u.Multiply(uLength)),
		origin.Add(v.Multiply(vLength)),
	}
	if kind == Parallelogram {
		corners = append(corners, origin.Add(u.Multiply(uLength)).Add(v.Multiply(vLength)))
	}
	// Pad so an axis-aligned primitive does not produce a flat box
	box := core.NewAABBFromPoints(corners...).Expand(boxPadding)

	b := &Barycentric{
		Kind:         kind,
		Origin:       origin,
		U:            u,
		V:            v,
		ULength:      uLength,
		VLength:      vLength,
		Normal:       normal,
		worldToPlane: worldToPlane,
		vInBase:      worldToPlane.MulDir(v),
		box:          box,
	}
	b.primitive = newPrimitive(mat, Bounded(box))
	return b
}

// NewParallelogram creates a parallelogram with corner origin and edge vectors u and v
func NewParallelogram(origin, u, v core.Vec3, mat material.Material) *Barycentric {
	return NewBarycentric(Parallelogram, origin, u, v, u.Length(), v.Length(), mat)
}

// NewTriangle creates a triangle from three vertices
func NewTriangle(a, b, c core.Vec3, mat material.Material) *Barycentric {
	u := b.Subtract(a)
	v := c.Subtract(a)
	return NewBarycentric(Triangle, a, u, v, u.Length(), v.Length(), mat)
}

// Coordinates returns (λ1, λ2, λ3) for a point assumed to lie in the plane.
// λ1 and λ2 are the fractions of the u and v edges; λ3 = 1 - λ1 - λ2.
func (b *Barycentric) Coordinates(point core.Vec3) (l1, l2, l3 float64) {
	r := b.worldToPlane.MulPoint(point)

	// Solve r = a·u + c·v in the plane, using the (u, n×u) components.
	// u is (1, 0) in this basis, so the 2x2 determinant is just v's second component.
	rx, ry := r.X, r.Z
	vx, vy := b.vInBase.X, b.vInBase.Z
	det := vy

	l1 = ((rx*vy - vx*ry) / det) / b.ULength
	l2 = (ry / det) / b.VLength
	l3 = 1 - l1 - l2
	return l1, l2, l3
}

// inside reports whether the coordinates fall within this kind's region
func (b *Barycentric) inside(l1, l2, l3 float64) bool {
	switch b.Kind {
	case Parallelogram:
		return l1 > 0 && l1 < 1 && l2 > 0 && l2 < 1
	case Triangle:
		return l1 > 0 && l1 < 1 && l2 > 0 && l2 < 1 && l3 > 0 && l3 < 1
	default:
		panic(fmt.Sprintf("geometry: unknown barycentric kind %d", uint8(b.Kind)))
	}
}

// Hit tests if a ray intersects with the primitive
func (b *Barycentric) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t, ok := rayPlaneIntersect(ray, b.Normal, b.Origin)
	if !ok || t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	if !b.inside(b.Coordinates(point)) {
		return nil, false
	}
	return b.record(ray, t, point, b.Normal), true
}

// WorldBoundingBox returns the box around the corners
func (b *Barycentric) WorldBoundingBox() core.AABB {
	return b.box
}
