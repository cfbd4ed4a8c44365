package geometry

import (
	"math"

	"github.com/rmercier/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point   core.Vec3 // A point on the plane
	Normal  core.Vec3 // Unit normal, normalized at construction
	Surface Surface
}

// NewPlane creates a new plane. The normal is normalized here so
// intersection and shading never have to renormalize it.
func NewPlane(point, normal core.Vec3, surface Surface) *Plane {
	return &Plane{
		Point:   point,
		Normal:  normal.Normalize(),
		Surface: surface,
	}
}

// IntersectRay returns the ray parameter of the intersection with the plane,
// or NoHit when the ray is parallel to the plane or the hit is behind the
// ray origin.
func (p *Plane) IntersectRay(origin, dir core.Vec3) float64 {
	denom := p.Normal.Dot(dir)
	if math.Abs(denom) < 1e-6 {
		return NoHit
	}

	t := p.Point.Subtract(origin).Dot(p.Normal) / denom
	if t > 0 {
		return t
	}
	return NoHit
}
