package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rmercier/go-whitted-raytracer/pkg/core"
	"github.com/rmercier/go-whitted-raytracer/pkg/geometry"
	"github.com/rmercier/go-whitted-raytracer/pkg/lights"
	"github.com/rmercier/go-whitted-raytracer/pkg/material"
)

// SceneFile contains the primitives and lights parsed from a scene
// description file. Wall planes are not part of the format; scene
// constructors add them.
type SceneFile struct {
	Spheres   []*geometry.Sphere
	Triangles []*geometry.Triangle
	Lights    []lights.Light
}

// block is one "kind { key = value ... }" entry from the file
type block struct {
	kind   string
	fields map[string]string
}

// LoadSceneFile parses a scene description file from disk
func LoadSceneFile(path string) (*SceneFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene file: %w", err)
	}
	defer file.Close()

	sf, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}
	return sf, nil
}

// ParseScene parses scene description content from a reader. Entries that
// are missing required fields are skipped rather than constructed
// partially, so consumers never see a half-initialized primitive.
func ParseScene(reader io.Reader) (*SceneFile, error) {
	sf := &SceneFile{}

	blocks, err := scanBlocks(reader)
	if err != nil {
		return nil, err
	}

	for _, b := range blocks {
		switch b.kind {
		case "sphere":
			if sphere, ok := parseSphere(b.fields); ok {
				sf.Spheres = append(sf.Spheres, sphere)
			}
		case "triangle":
			if triangle, ok := parseTriangle(b.fields); ok {
				sf.Triangles = append(sf.Triangles, triangle)
			}
		case "light":
			if light, ok := parseLight(b.fields); ok {
				sf.Lights = append(sf.Lights, light)
			}
		}
	}

	return sf, nil
}

// scanBlocks splits the file into blocks. Unknown block kinds and stray
// lines outside blocks are ignored.
func scanBlocks(reader io.Reader) ([]block, error) {
	var blocks []block
	var current *block

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if current == nil {
			if name, found := strings.CutSuffix(line, "{"); found {
				current = &block{
					kind:   strings.TrimSpace(name),
					fields: make(map[string]string),
				}
			}
			continue
		}

		if line == "}" {
			blocks = append(blocks, *current)
			current = nil
			continue
		}

		if key, value, found := strings.Cut(line, "="); found {
			current.fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return blocks, nil
}

func parseSphere(fields map[string]string) (*geometry.Sphere, bool) {
	center, ok := parseVec(fields["center"])
	if !ok {
		return nil, false
	}
	radius, ok := parseFloat(fields["radius"])
	if !ok {
		return nil, false
	}
	color, ok := parseColor(fields["color"])
	if !ok {
		return nil, false
	}

	surface := geometry.Surface{
		Color:      color,
		Specular:   parseFloatDefault(fields["specular"], 100),
		Reflective: parseFloatDefault(fields["reflective"], 0),
	}
	if fields["texture"] == "checker" {
		surface.Texture = material.NewChecker(core.NewColor(255, 255, 255), core.NewColor(0, 0, 0), 10)
	}

	return geometry.NewSphere(center, radius, surface), true
}

func parseTriangle(fields map[string]string) (*geometry.Triangle, bool) {
	v0, ok0 := parseVec(fields["v0"])
	v1, ok1 := parseVec(fields["v1"])
	v2, ok2 := parseVec(fields["v2"])
	color, okc := parseColor(fields["color"])
	if !ok0 || !ok1 || !ok2 || !okc {
		return nil, false
	}

	surface := geometry.Surface{
		Color:      color,
		Specular:   parseFloatDefault(fields["specular"], 100),
		Reflective: parseFloatDefault(fields["reflective"], 0),
	}

	return geometry.NewTriangle(v0, v1, v2, surface), true
}

func parseLight(fields map[string]string) (lights.Light, bool) {
	intensity, ok := parseFloat(fields["intensity"])
	if !ok {
		return nil, false
	}

	switch fields["type"] {
	case "ambient":
		return lights.NewAmbient(intensity), true
	case "point":
		position, ok := parseVec(fields["position"])
		if !ok {
			return nil, false
		}
		return lights.NewPoint(intensity, position), true
	case "directional":
		direction, ok := parseVec(fields["direction"])
		if !ok {
			return nil, false
		}
		return lights.NewDirectional(intensity, direction), true
	}
	return nil, false
}

// parseVec parses "(x, y, z)" into a vector
func parseVec(value string) (core.Vec3, bool) {
	parts, ok := parseTuple(value)
	if !ok || len(parts) != 3 {
		return core.Vec3{}, false
	}
	return core.NewVec3(parts[0], parts[1], parts[2]), true
}

// parseColor parses "(r, g, b)" with channels in [0, 255]
func parseColor(value string) (core.Color, bool) {
	parts, ok := parseTuple(value)
	if !ok || len(parts) != 3 {
		return core.Color{}, false
	}
	return core.NewColor(uint8(parts[0]), uint8(parts[1]), uint8(parts[2])), true
}

func parseTuple(value string) ([]float64, bool) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "(") || !strings.HasSuffix(value, ")") {
		return nil, false
	}

	fields := strings.Split(value[1:len(value)-1], ",")
	parts := make([]float64, 0, len(fields))
	for _, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, false
		}
		parts = append(parts, f)
	}
	return parts, true
}

func parseFloat(value string) (float64, bool) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseFloatDefault(value string, fallback float64) float64 {
	if f, ok := parseFloat(value); ok {
		return f
	}
	return fallback
}
