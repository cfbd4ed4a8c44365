// Package animation drives per-frame scene mutation and assembles rendered
// frames into an animated GIF. Mutation and rendering are strictly
// sequential: the caller advances the animator, renders the frame, and
// only then advances again.
package animation

import (
	"image"
	"math"

	"github.com/rmercier/go-whitted-raytracer/pkg/core"
	"github.com/rmercier/go-whitted-raytracer/pkg/scene"
)

// Mode selects which part of the scene the animator mutates
type Mode int

const (
	// OrbitLight circles the scene's point light around its centroid
	OrbitLight Mode = iota
	// MoveSpheres orbits each sphere along its own parametric path
	MoveSpheres
)

// Orbit parameters for the light path
const (
	lightOrbitRadius = 5.0
	lightOrbitHeight = 3.0
)

// Animator mutates a scene between frames. It snapshots the initial
// sphere centers at construction so sphere paths stay anchored to their
// starting positions instead of compounding.
type Animator struct {
	mode           Mode
	initialCenters []core.Vec3
}

// NewAnimator creates an animator for the given scene and mode
func NewAnimator(s *scene.Scene, mode Mode) *Animator {
	centers := make([]core.Vec3, len(s.Spheres))
	for i, sphere := range s.Spheres {
		centers[i] = sphere.Center
	}
	return &Animator{
		mode:           mode,
		initialCenters: centers,
	}
}

// Advance applies the mutation for the given frame. frame counts from 0;
// a full cycle spans totalFrames frames.
func (a *Animator) Advance(s *scene.Scene, frame, totalFrames int) {
	angle := 360.0 / float64(totalFrames) * float64(frame)

	switch a.mode {
	case MoveSpheres:
		a.moveSpheres(s, frame, totalFrames)
	case OrbitLight:
		if light := s.FirstPointLight(); light != nil {
			light.Position = orbitPosition(s.Centroid(), lightOrbitRadius, angle, lightOrbitHeight)
		}
	}
}

// moveSpheres places each sphere on its own orbit around its initial
// center. Radius, speed and phase are derived from the sphere's index so
// the paths interleave instead of moving in lockstep.
func (a *Animator) moveSpheres(s *scene.Scene, frame, totalFrames int) {
	angleBase := 360.0 * float64(frame) / float64(totalFrames)

	for i, sphere := range s.Spheres {
		if i >= len(a.initialCenters) {
			break
		}
		base := a.initialCenters[i]
		radius := 1.5 + 0.5*float64(i)
		speed := 1.0 + 0.3*float64(i)
		phase := angleBase*speed + float64(i)*45

		angle := phase * math.Pi / 180
		sphere.Center = core.NewVec3(
			base.X+radius*math.Cos(angle),
			base.Y+math.Sin(angle)*0.8,
			base.Z+radius*math.Sin(angle),
		)
	}
}

// orbitPosition returns a point on a horizontal circle of the given radius
// around center, at the given height
func orbitPosition(center core.Vec3, radius, angleDeg, height float64) core.Vec3 {
	angle := angleDeg * math.Pi / 180
	return core.NewVec3(
		center.X+radius*math.Cos(angle),
		height,
		center.Z+radius*math.Sin(angle),
	)
}

// Frames accumulates rendered frames for GIF assembly
type Frames struct {
	images []*image.RGBA
}

// Append adds a rendered frame
func (f *Frames) Append(img *image.RGBA) {
	f.images = append(f.images, img)
}

// Count returns the number of accumulated frames
func (f *Frames) Count() int {
	return len(f.images)
}
