package loaders

import (
	"strings"
	"testing"

	"github.com/rmercier/go-whitted-raytracer/pkg/core"
	"github.com/rmercier/go-whitted-raytracer/pkg/lights"
)

const sampleScene = `
# comment line
sphere {
    center = (0, -1, 3)
    radius = 1
    color = (255, 0, 0)
    specular = 500
    reflective = 0.2
}

sphere {
    center = (2, 0, 4)
    radius = 0.5
    color = (0, 0, 255)
    texture = checker
}

triangle {
    v0 = (0, 0, 4)
    v1 = (1, 0, 4)
    v2 = (0, 1, 4)
    color = (0, 255, 0)
}

light {
    type = ambient
    intensity = 0.2
}

light {
    type = point
    intensity = 0.6
    position = (2, 1, 0)
}

light {
    type = directional
    intensity = 0.2
    direction = (1, 4, 4)
}
`

func TestParseScene(t *testing.T) {
	sf, err := ParseScene(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	if len(sf.Spheres) != 2 {
		t.Fatalf("Expected 2 spheres, got %d", len(sf.Spheres))
	}
	if len(sf.Triangles) != 1 {
		t.Fatalf("Expected 1 triangle, got %d", len(sf.Triangles))
	}
	if len(sf.Lights) != 3 {
		t.Fatalf("Expected 3 lights, got %d", len(sf.Lights))
	}

	first := sf.Spheres[0]
	if first.Center != core.NewVec3(0, -1, 3) {
		t.Errorf("Unexpected center: %v", first.Center)
	}
	if first.Radius != 1 {
		t.Errorf("Unexpected radius: %v", first.Radius)
	}
	if first.Surface.Color != core.NewColor(255, 0, 0) {
		t.Errorf("Unexpected color: %v", first.Surface.Color)
	}
	if first.Surface.Specular != 500 || first.Surface.Reflective != 0.2 {
		t.Errorf("Unexpected surface: %+v", first.Surface)
	}
	if first.Surface.Texture != nil {
		t.Error("Expected no texture on first sphere")
	}

	second := sf.Spheres[1]
	if second.Surface.Texture == nil {
		t.Error("Expected checker texture on second sphere")
	}
	// Unspecified fields fall back to their defaults
	if second.Surface.Specular != 100 || second.Surface.Reflective != 0 {
		t.Errorf("Expected default surface values, got %+v", second.Surface)
	}

	if _, ok := sf.Lights[0].(*lights.Ambient); !ok {
		t.Errorf("Expected ambient light first, got %T", sf.Lights[0])
	}
	point, ok := sf.Lights[1].(*lights.Point)
	if !ok {
		t.Fatalf("Expected point light second, got %T", sf.Lights[1])
	}
	if point.Position != core.NewVec3(2, 1, 0) {
		t.Errorf("Unexpected point light position: %v", point.Position)
	}
	if _, ok := sf.Lights[2].(*lights.Directional); !ok {
		t.Errorf("Expected directional light third, got %T", sf.Lights[2])
	}
}

func TestParseScene_SkipsIncompleteEntries(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name: "sphere missing radius",
			input: `sphere {
    center = (0, 0, 3)
    color = (255, 0, 0)
}`,
		},
		{
			name: "sphere with malformed center",
			input: `sphere {
    center = (0, 0)
    radius = 1
    color = (255, 0, 0)
}`,
		},
		{
			name: "triangle missing vertex",
			input: `triangle {
    v0 = (0, 0, 4)
    v1 = (1, 0, 4)
    color = (0, 255, 0)
}`,
		},
		{
			name: "point light missing position",
			input: `light {
    type = point
    intensity = 0.6
}`,
		},
		{
			name: "light with unknown type",
			input: `light {
    type = spot
    intensity = 0.6
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf, err := ParseScene(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseScene failed: %v", err)
			}
			total := len(sf.Spheres) + len(sf.Triangles) + len(sf.Lights)
			if total != 0 {
				t.Errorf("Expected incomplete entry to be skipped, parsed %d objects", total)
			}
		})
	}
}

func TestParseScene_IgnoresUnknownBlocks(t *testing.T) {
	input := `
cube {
    size = 2
}
sphere {
    center = (0, 0, 3)
    radius = 1
    color = (10, 20, 30)
}
`
	sf, err := ParseScene(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}
	if len(sf.Spheres) != 1 {
		t.Errorf("Expected the sphere after the unknown block, got %d spheres", len(sf.Spheres))
	}
}

func TestLoadSceneFile_MissingFile(t *testing.T) {
	if _, err := LoadSceneFile("does-not-exist.txt"); err == nil {
		t.Error("Expected error for missing file")
	}
}
