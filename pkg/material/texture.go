package material

import (
	"github.com/rmercier/go-whitted-raytracer/pkg/core"
)

// Texture provides a procedural surface color parameterized by UV coordinates
type Texture interface {
	ColorAt(u, v float64) core.Color
}

// Checker is a checkerboard pattern alternating between two colors
type Checker struct {
	A, B  core.Color
	Scale float64
}

// NewChecker creates a checkerboard texture with the given cell scale
func NewChecker(a, b core.Color, scale float64) *Checker {
	return &Checker{A: a, B: b, Scale: scale}
}

// ColorAt returns A or B depending on which checker cell (u, v) falls in
func (c *Checker) ColorAt(u, v float64) core.Color {
	if int(u*c.Scale)%2 == int(v*c.Scale)%2 {
		return c.A
	}
	return c.B
}
