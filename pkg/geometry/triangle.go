package geometry

import (
	"github.com/rmercier/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// Counter-clockwise winding defines the front face.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Surface    Surface
	normal     core.Vec3 // Cached unit normal
}

// NewTriangle creates a new triangle and caches its normal
func NewTriangle(v0, v1, v2 core.Vec3, surface Surface) *Triangle {
	t := &Triangle{
		V0:      v0,
		V1:      v1,
		V2:      v2,
		Surface: surface,
	}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return t
}

// Normal returns the triangle's cached unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// IntersectRay tests the ray against the triangle using the Möller-Trumbore
// algorithm and returns the ray parameter, or NoHit. A degenerate
// configuration (ray parallel to the triangle plane) and barycentric
// coordinates outside the triangle both miss; the final parameter must
// exceed a small epsilon to reject self-intersection at the origin.
func (t *Triangle) IntersectRay(origin, dir core.Vec3) float64 {
	const epsilon = 1e-6

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := dir.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return NoHit
	}

	f := 1.0 / a
	s := origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return NoHit
	}

	q := s.Cross(edge1)
	v := f * dir.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return NoHit
	}

	tParam := f * edge2.Dot(q)
	if tParam > epsilon {
		return tParam
	}

	return NoHit
}

// Centroid returns the average of the triangle's vertices
func (t *Triangle) Centroid() core.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Multiply(1.0 / 3.0)
}
