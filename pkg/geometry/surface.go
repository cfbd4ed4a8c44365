package geometry

import (
	"math"

	"github.com/rmercier/go-whitted-raytracer/pkg/core"
	"github.com/rmercier/go-whitted-raytracer/pkg/material"
)

// NoHit is the sentinel returned by intersection tests when a ray misses.
// It doubles as the unbounded tMax for shadow and reflection rays.
var NoHit = math.Inf(1)

// Surface holds the shading fields shared by every primitive.
// Specular is the Phong exponent; -1 disables the specular term.
// Reflective is the mirror blend weight in [0, 1].
type Surface struct {
	Color      core.Color
	Specular   float64
	Reflective float64
	Texture    material.Texture
}
