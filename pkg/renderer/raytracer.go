package renderer

import (
	"image"
	"image/color"

	"github.com/rmercier/go-whitted-raytracer/pkg/core"
	"github.com/rmercier/go-whitted-raytracer/pkg/geometry"
	"github.com/rmercier/go-whitted-raytracer/pkg/scene"
)

// Config contains rendering configuration. It is passed explicitly so
// there are no package-level canvas or viewport globals.
type Config struct {
	Width            int     // Canvas width in pixels
	Height           int     // Canvas height in pixels
	ViewportWidth    float64 // Viewport plane width in world units
	ViewportHeight   float64 // Viewport plane height in world units
	ViewportDistance float64 // Distance from camera to viewport plane
	MaxDepth         int     // Mirror reflection recursion limit
	NumWorkers       int     // Parallel row workers (0 = CPU count, 1 = sequential)
}

// DefaultConfig returns the standard 500x500 canvas with a 2x2 viewport
// at distance 1
func DefaultConfig() Config {
	return Config{
		Width:            500,
		Height:           500,
		ViewportWidth:    2.0,
		ViewportHeight:   2.0,
		ViewportDistance: 1.0,
		MaxDepth:         3,
		NumWorkers:       0,
	}
}

// Raytracer renders a scene by recursive ray casting
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	config Config
}

// NewRaytracer creates a new raytracer for the given scene and configuration
func NewRaytracer(s *scene.Scene, config Config) *Raytracer {
	return &Raytracer{
		scene:  s,
		camera: NewCamera(config),
		config: config,
	}
}

// closestIntersection finds the globally nearest hit with t in [tMin, tMax]
// across planes, spheres and triangles, in that order. Only a strictly
// smaller t replaces the current closest, so an exact tie keeps the object
// found first.
func (rt *Raytracer) closestIntersection(origin, dir core.Vec3, tMin, tMax float64) (float64, any) {
	closestT := geometry.NoHit
	var closest any

	for _, plane := range rt.scene.Planes {
		t := plane.IntersectRay(origin, dir)
		if tMin <= t && t <= tMax && t < closestT {
			closestT = t
			closest = plane
		}
	}

	for _, sphere := range rt.scene.Spheres {
		t1, t2 := sphere.IntersectRay(origin, dir)
		if tMin <= t1 && t1 <= tMax && t1 < closestT {
			closestT = t1
			closest = sphere
		}
		if tMin <= t2 && t2 <= tMax && t2 < closestT {
			closestT = t2
			closest = sphere
		}
	}

	for _, triangle := range rt.scene.Triangles {
		t := triangle.IntersectRay(origin, dir)
		if tMin <= t && t <= tMax && t < closestT {
			closestT = t
			closest = triangle
		}
	}

	return closestT, closest
}

// TraceRay casts a ray and returns the color at the nearest intersection,
// recursing for mirror reflection while depth > 0
func (rt *Raytracer) TraceRay(origin, dir core.Vec3, tMin, tMax float64, depth int) core.Color {
	closestT, object := rt.closestIntersection(origin, dir, tMin, tMax)
	if object == nil {
		return core.Black
	}

	p := origin.Add(dir.Multiply(closestT))
	view := dir.Negate()

	var normal core.Vec3
	var surface geometry.Surface
	var sphereHit *geometry.Sphere

	switch obj := object.(type) {
	case *geometry.Sphere:
		normal = obj.NormalAt(p)
		surface = obj.Surface
		sphereHit = obj
	case *geometry.Plane:
		normal = obj.Normal
		surface = obj.Surface
	case *geometry.Triangle:
		normal = obj.Normal()
		surface = obj.Surface
	}

	// Flip the normal toward the incoming ray so surfaces shade correctly
	// when viewed from behind
	if normal.Dot(dir) > 0 {
		normal = normal.Negate()
	}

	lighting := ComputeLighting(p, normal, view, surface.Specular, rt.scene, object)
	lighting = clamp01(lighting)

	baseColor := surface.Color
	if surface.Texture != nil {
		// Only spheres carry a UV parameterization; textured primitives of
		// other types sample at the origin of UV space
		u, v := 0.0, 0.0
		if sphereHit != nil {
			u, v = sphereHit.UVAt(p)
		}
		baseColor = surface.Texture.ColorAt(u, v)
	}

	localColor := baseColor.Scale(lighting)

	if depth <= 0 || surface.Reflective <= 0 {
		return localColor
	}

	reflectedDir := dir.Reflect(normal).Normalize()
	reflectOrigin := p.Add(normal.Multiply(0.001))
	reflectedColor := rt.TraceRay(reflectOrigin, reflectedDir, 0.001, geometry.NoHit, depth-1)

	return localColor.Blend(reflectedColor, surface.Reflective)
}

// Render produces the full image, one primary ray per pixel. Rows are
// rendered in parallel; every pixel is independent, so the result is
// identical to the sequential order.
func (rt *Raytracer) Render() *image.RGBA {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	pool := newRowPool(rt.config.NumWorkers, height, func(task rowTask) {
		rt.renderRow(img, task)
	})

	// Canvas rows run from +H/2 at the top of the image down to -H/2+1
	top := height / 2
	for rowIndex := 0; rowIndex < height; rowIndex++ {
		pool.submit(rowTask{canvasY: top - rowIndex, rowIndex: rowIndex})
	}
	pool.wait()

	return img
}

// renderRow traces every pixel of a single canvas row
func (rt *Raytracer) renderRow(img *image.RGBA, task rowTask) {
	width := rt.config.Width
	origin := core.NewVec3(0, 0, 0)

	// Canvas columns run from -W/2 on the left to W/2-1 on the right
	left := width/2 - width
	for col := 0; col < width; col++ {
		dir := rt.camera.RayDirection(left+col, task.canvasY)
		c := rt.TraceRay(origin, dir, 1.0, geometry.NoHit, rt.config.MaxDepth)
		img.SetRGBA(col, task.rowIndex, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
