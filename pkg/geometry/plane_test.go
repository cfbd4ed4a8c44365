package geometry

import (
	"math"
	"testing"

	"github.com/rmercier/go-whitted-raytracer/pkg/core"
)

func TestPlane_IntersectRay(t *testing.T) {
	floor := NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), Surface{})

	tests := []struct {
		name      string
		origin    core.Vec3
		dir       core.Vec3
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "ray hits floor from above",
			origin:    core.NewVec3(0, 0, 0),
			dir:       core.NewVec3(0, -1, 0),
			shouldHit: true,
			expectedT: 2,
		},
		{
			name:      "ray parallel to plane",
			origin:    core.NewVec3(0, 0, 0),
			dir:       core.NewVec3(1, 0, 0),
			shouldHit: false,
		},
		{
			name:      "intersection behind ray origin",
			origin:    core.NewVec3(0, 0, 0),
			dir:       core.NewVec3(0, 1, 0),
			shouldHit: false,
		},
		{
			name:      "slanted hit",
			origin:    core.NewVec3(0, 0, 0),
			dir:       core.NewVec3(0, -1, 1),
			shouldHit: true,
			expectedT: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := floor.IntersectRay(tt.origin, tt.dir)

			if !tt.shouldHit {
				if !math.IsInf(got, 1) {
					t.Errorf("Expected no hit, got t=%v", got)
				}
				return
			}

			if math.Abs(got-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got t=%v", tt.expectedT, got)
			}
		})
	}
}

func TestPlane_NormalizesNormal(t *testing.T) {
	p := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 5), Surface{})
	if math.Abs(p.Normal.Length()-1) > 1e-12 {
		t.Errorf("Expected unit normal, got length %v", p.Normal.Length())
	}
}
