package scene

import (
	"github.com/rmercier/go-whitted-raytracer/pkg/core"
	"github.com/rmercier/go-whitted-raytracer/pkg/geometry"
	"github.com/rmercier/go-whitted-raytracer/pkg/lights"
)

// NewBoxScene creates a scene enclosed by the five standard wall planes
// (floor, back wall, left and right walls, ceiling) around the given
// primitives and lights. The walls are not shadow-tested, so they read as
// a backdrop rather than occluders.
func NewBoxScene(spheres []*geometry.Sphere, triangles []*geometry.Triangle, lightList []lights.Light) *Scene {
	s := NewScene()
	s.Spheres = append(s.Spheres, spheres...)
	s.Triangles = append(s.Triangles, triangles...)
	s.Lights = append(s.Lights, lightList...)

	wall := func(r, g, b uint8) geometry.Surface {
		return geometry.Surface{
			Color:      core.NewColor(r, g, b),
			Specular:   100,
			Reflective: 0,
		}
	}

	s.Planes = append(s.Planes,
		geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), wall(200, 200, 200)),  // floor
		geometry.NewPlane(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), wall(180, 190, 200)), // back wall
		geometry.NewPlane(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), wall(100, 50, 200)),   // left wall
		geometry.NewPlane(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), wall(200, 0, 0)),      // right wall
		geometry.NewPlane(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), wall(200, 200, 200)),  // ceiling
	)

	return s
}
