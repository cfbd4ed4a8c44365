package geometry

import (
	"math"

	"github.com/rmercier/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape. Center is mutable so the animation
// driver can move spheres between frames.
type Sphere struct {
	Center  core.Vec3
	Radius  float64
	Surface Surface
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface Surface) *Sphere {
	return &Sphere{
		Center:  center,
		Radius:  radius,
		Surface: surface,
	}
}

// IntersectRay solves the quadratic for a ray against the sphere and returns
// both roots unordered, or (NoHit, NoHit) when the discriminant is negative.
// Both roots are returned so the caller can range-check them independently.
// The direction does not need to be unit length.
func (s *Sphere) IntersectRay(origin, dir core.Vec3) (float64, float64) {
	oc := origin.Subtract(s.Center)

	a := dir.Dot(dir)
	b := 2 * oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return NoHit, NoHit
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b + sqrtD) / (2 * a)
	t2 := (-b - sqrtD) / (2 * a)

	return t1, t2
}

// NormalAt returns the outward unit normal at a point on the sphere
func (s *Sphere) NormalAt(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center).Normalize()
}

// UVAt maps a point on the sphere to spherical UV coordinates in [0, 1]²
func (s *Sphere) UVAt(p core.Vec3) (float64, float64) {
	local := p.Subtract(s.Center).Normalize()

	u := 0.5 + math.Atan2(local.Z, local.X)/(2*math.Pi)
	v := 0.5 - math.Asin(local.Y)/math.Pi

	return u, v
}
