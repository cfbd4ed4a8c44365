package scene

import (
	"github.com/rmercier/go-whitted-raytracer/pkg/core"
	"github.com/rmercier/go-whitted-raytracer/pkg/geometry"
	"github.com/rmercier/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is pure data:
// the renderer only reads it, and only the animation driver mutates it
// between frames.
type Scene struct {
	Spheres   []*geometry.Sphere
	Planes    []*geometry.Plane
	Triangles []*geometry.Triangle
	Lights    []lights.Light
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		Spheres:   make([]*geometry.Sphere, 0),
		Planes:    make([]*geometry.Plane, 0),
		Triangles: make([]*geometry.Triangle, 0),
		Lights:    make([]lights.Light, 0),
	}
}

// Centroid returns the reference point the animation driver orbits lights
// around: the first sphere's center, else the average triangle centroid,
// else a fixed point in front of the camera.
func (s *Scene) Centroid() core.Vec3 {
	if len(s.Spheres) > 0 {
		return s.Spheres[0].Center
	}
	if len(s.Triangles) > 0 {
		sum := core.NewVec3(0, 0, 0)
		for _, tri := range s.Triangles {
			sum = sum.Add(tri.Centroid())
		}
		return sum.Multiply(1.0 / float64(len(s.Triangles)))
	}
	return core.NewVec3(0, 0, 5)
}

// FirstPointLight returns the first point light in the scene, or nil.
// The shipped scenes list their orbiting light second, after the ambient
// light, but selection is by type rather than by list position.
func (s *Scene) FirstPointLight() *lights.Point {
	for _, l := range s.Lights {
		if p, ok := l.(*lights.Point); ok {
			return p
		}
	}
	return nil
}
