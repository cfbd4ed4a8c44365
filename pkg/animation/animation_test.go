package animation

import (
	"math"
	"testing"

	"github.com/rmercier/go-whitted-raytracer/pkg/core"
	"github.com/rmercier/go-whitted-raytracer/pkg/geometry"
	"github.com/rmercier/go-whitted-raytracer/pkg/lights"
	"github.com/rmercier/go-whitted-raytracer/pkg/scene"
)

func orbitScene() *scene.Scene {
	s := scene.NewScene()
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(1, 2, 3), 1, geometry.Surface{}))
	s.Lights = append(s.Lights,
		lights.NewAmbient(0.2),
		lights.NewPoint(0.8, core.NewVec3(0, 3, 0)),
	)
	return s
}

func TestAnimator_OrbitLight(t *testing.T) {
	s := orbitScene()
	animator := NewAnimator(s, OrbitLight)

	tests := []struct {
		name     string
		frame    int
		expected core.Vec3
	}{
		// Orbit around the first sphere's center (1,2,3), radius 5, height 3
		{"frame 0 starts at angle 0", 0, core.NewVec3(6, 3, 3)},
		{"frame 9 is a quarter turn", 9, core.NewVec3(1, 3, 8)},
		{"frame 18 is a half turn", 18, core.NewVec3(-4, 3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			animator.Advance(s, tt.frame, 36)

			light := s.FirstPointLight()
			if light == nil {
				t.Fatal("Expected a point light")
			}
			if light.Position.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, light.Position)
			}
		})
	}
}

func TestAnimator_OrbitLeavesSpheresAlone(t *testing.T) {
	s := orbitScene()
	before := s.Spheres[0].Center

	animator := NewAnimator(s, OrbitLight)
	animator.Advance(s, 5, 36)

	if s.Spheres[0].Center != before {
		t.Errorf("Orbit mode must not move spheres, center changed to %v", s.Spheres[0].Center)
	}
}

func TestAnimator_MoveSpheres(t *testing.T) {
	s := scene.NewScene()
	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(0, 0, 6), 1, geometry.Surface{}),
		geometry.NewSphere(core.NewVec3(0, 1, 7), 1, geometry.Surface{}),
	)
	s.Lights = append(s.Lights, lights.NewPoint(0.8, core.NewVec3(2, 3, 0)))
	lightBefore := s.FirstPointLight().Position

	animator := NewAnimator(s, MoveSpheres)
	animator.Advance(s, 0, 36)

	// Sphere 0 at frame 0: angle 0, radius 1.5 -> offset (1.5, 0, 0)
	expected0 := core.NewVec3(1.5, 0, 6)
	if s.Spheres[0].Center.Subtract(expected0).Length() > 1e-9 {
		t.Errorf("Sphere 0: expected %v, got %v", expected0, s.Spheres[0].Center)
	}

	// Sphere 1 at frame 0: phase 45 degrees, radius 2.0
	angle := 45 * math.Pi / 180
	expected1 := core.NewVec3(
		0+2.0*math.Cos(angle),
		1+math.Sin(angle)*0.8,
		7+2.0*math.Sin(angle),
	)
	if s.Spheres[1].Center.Subtract(expected1).Length() > 1e-9 {
		t.Errorf("Sphere 1: expected %v, got %v", expected1, s.Spheres[1].Center)
	}

	// Move mode does not orbit the light
	if s.FirstPointLight().Position != lightBefore {
		t.Error("Move mode must not move lights")
	}
}

func TestAnimator_PathsAnchorToInitialCenters(t *testing.T) {
	s := scene.NewScene()
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(0, 0, 6), 1, geometry.Surface{}))

	animator := NewAnimator(s, MoveSpheres)

	// Advancing to the same frame twice must give the same position;
	// paths are anchored to the snapshot, not the current center
	animator.Advance(s, 10, 36)
	first := s.Spheres[0].Center
	animator.Advance(s, 10, 36)
	second := s.Spheres[0].Center

	if first.Subtract(second).Length() > 1e-12 {
		t.Errorf("Path compounded: %v then %v", first, second)
	}
}
