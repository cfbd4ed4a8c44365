package main

import (
	"testing"

	"github.com/rmercier/go-whitted-raytracer/pkg/animation"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name         string
		sceneType    string
		mode         animation.Mode
		wantSpheres  bool
		wantTriangle bool
	}{
		{"sphere scene", "sphere", animation.OrbitLight, true, false},
		{"triangle scene", "triangle", animation.OrbitLight, false, true},
		{"move scene", "move", animation.MoveSpheres, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mode, err := createScene(tt.sceneType)
			if err != nil {
				t.Fatalf("createScene(%q) failed: %v", tt.sceneType, err)
			}
			if mode != tt.mode {
				t.Errorf("Expected mode %v, got %v", tt.mode, mode)
			}
			if tt.wantSpheres && len(s.Spheres) == 0 {
				t.Error("Expected spheres in scene")
			}
			if tt.wantTriangle && len(s.Triangles) == 0 {
				t.Error("Expected triangles in scene")
			}
			if len(s.Planes) != 5 {
				t.Errorf("Expected 5 room walls, got %d planes", len(s.Planes))
			}
			if len(s.Lights) == 0 {
				t.Error("Expected lights in scene")
			}
		})
	}
}

func TestCreateScene_UnknownType(t *testing.T) {
	if _, _, err := createScene("teapot"); err == nil {
		t.Error("Expected error for unknown scene type")
	}
}
