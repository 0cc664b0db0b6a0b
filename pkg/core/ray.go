package core

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform re-expresses the ray in the space m maps into. The direction is not
// re-normalized, so a parameter t names the same point in both spaces.
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulDir(r.Direction),
	}
}
