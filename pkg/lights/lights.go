package lights

import (
	"github.com/rmercier/go-whitted-raytracer/pkg/core"
)

// Light is the closed set of light variants. Each variant carries exactly
// the fields it needs, so a point light without a position is
// unrepresentable.
type Light interface {
	light()
}

// Ambient contributes its intensity uniformly, independent of geometry
type Ambient struct {
	Intensity float64
}

// Point emits from a position in the scene. Position is mutable so the
// animation driver can orbit the light between frames.
type Point struct {
	Intensity float64
	Position  core.Vec3
}

// Directional emits along a fixed direction from infinitely far away.
// Direction is the direction the light travels from the source; shading
// inverts it to get the direction toward the light.
type Directional struct {
	Intensity float64
	Direction core.Vec3
}

func (*Ambient) light()     {}
func (*Point) light()       {}
func (*Directional) light() {}

// NewAmbient creates an ambient light
func NewAmbient(intensity float64) *Ambient {
	return &Ambient{Intensity: intensity}
}

// NewPoint creates a point light at the given position
func NewPoint(intensity float64, position core.Vec3) *Point {
	return &Point{Intensity: intensity, Position: position}
}

// NewDirectional creates a directional light travelling along direction
func NewDirectional(intensity float64, direction core.Vec3) *Directional {
	return &Directional{Intensity: intensity, Direction: direction}
}
