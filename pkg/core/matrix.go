package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a column-major 4x4 affine transform.
type Mat4 mgl64.Mat4

// Mat3 is a column-major 3x3 linear transform.
type Mat3 mgl64.Mat3

func (v Vec3) mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Identity returns the identity transform
func Identity() Mat4 {
	return Mat4(mgl64.Ident4())
}

// Translate returns a translation by offset
func Translate(offset Vec3) Mat4 {
	return Mat4(mgl64.Translate3D(offset.X, offset.Y, offset.Z))
}

// Scale returns a non-uniform scale about the origin
func Scale(factors Vec3) Mat4 {
	return Mat4(mgl64.Scale3D(factors.X, factors.Y, factors.Z))
}

// Rotate returns a rotation of angle radians about axis
func Rotate(axis Vec3, angle float64) Mat4 {
	return Mat4(mgl64.HomogRotate3D(angle, axis.Normalize().mgl()))
}

// Basis returns the transform whose linear columns are x, y, z and whose
// translation is origin.
func Basis(x, y, z, origin Vec3) Mat4 {
	return Mat4(mgl64.Mat4FromCols(
		x.mgl().Vec4(0),
		y.mgl().Vec4(0),
		z.mgl().Vec4(0),
		origin.mgl().Vec4(1),
	))
}

// TRS composes translate * rotate(axis, angle) * scale, the usual way to place a
// local-space primitive in the world.
func TRS(translation, axis Vec3, angle float64, scale Vec3) Mat4 {
	m := Translate(translation)
	if angle != 0 && !axis.NearZero() {
		m = m.Mul(Rotate(axis, angle))
	}
	return m.Mul(Scale(scale))
}

// Mul returns m * other (other is applied first)
func (m Mat4) Mul(other Mat4) Mat4 {
	return Mat4(mgl64.Mat4(m).Mul4(mgl64.Mat4(other)))
}

// MulPoint transforms p as a point (w = 1)
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return Vec3{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// MulDir transforms d as a direction (w = 0); the result is not normalized
func (m Mat4) MulDir(d Vec3) Vec3 {
	return Vec3{
		X: m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		Y: m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		Z: m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// Linear returns the upper-left 3x3 block
func (m Mat4) Linear() Mat3 {
	return Mat3(mgl64.Mat4(m).Mat3())
}

// Translation returns the translation column
func (m Mat4) Translation() Vec3 {
	return Vec3{X: m[12], Y: m[13], Z: m[14]}
}

// FastHomogeneousInverse inverts an affine [L|t] transform as [L⁻¹ | -L⁻¹t].
// Only the 3x3 block is inverted. The bottom row is assumed to be (0,0,0,1).
// A singular linear block yields the zero matrix.
func (m Mat4) FastHomogeneousInverse() Mat4 {
	inv := mgl64.Mat4(m).Mat3().Inv()
	t := inv.Mul3x1(m.Translation().mgl())
	out := inv.Mat4()
	out[12], out[13], out[14] = -t[0], -t[1], -t[2]
	return Mat4(out)
}

// ApproxEqual reports whether every element differs by at most eps.
// The tolerance is absolute, so entries near zero compare like any other.
func (m Mat4) ApproxEqual(other Mat4, eps float64) bool {
	return mgl64.Mat4(m).ApproxFuncEqual(mgl64.Mat4(other), func(a, b float64) bool {
		return math.Abs(a-b) <= eps
	})
}

// Transpose returns the transposed matrix
func (m Mat3) Transpose() Mat3 {
	return Mat3(mgl64.Mat3(m).Transpose())
}

// MulVec returns m * v
func (m Mat3) MulVec(v Vec3) Vec3 {
	return fromMgl(mgl64.Mat3(m).Mul3x1(v.mgl()))
}
