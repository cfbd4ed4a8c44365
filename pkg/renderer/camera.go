package renderer

import (
	"github.com/rmercier/go-whitted-raytracer/pkg/core"
)

// Camera is a pinhole camera fixed at the world origin looking down +Z.
// It maps centered canvas coordinates onto the viewport plane.
type Camera struct {
	canvasWidth      int
	canvasHeight     int
	viewportWidth    float64
	viewportHeight   float64
	viewportDistance float64
}

// NewCamera creates a camera for the given render configuration
func NewCamera(config Config) *Camera {
	return &Camera{
		canvasWidth:      config.Width,
		canvasHeight:     config.Height,
		viewportWidth:    config.ViewportWidth,
		viewportHeight:   config.ViewportHeight,
		viewportDistance: config.ViewportDistance,
	}
}

// CanvasToViewport converts centered canvas coordinates
// (x in [-W/2, W/2), y in [-H/2, H/2]) to a point on the viewport plane
func (c *Camera) CanvasToViewport(x, y int) core.Vec3 {
	return core.NewVec3(
		float64(x)*c.viewportWidth/float64(c.canvasWidth),
		float64(y)*c.viewportHeight/float64(c.canvasHeight),
		c.viewportDistance,
	)
}

// RayDirection returns the normalized primary ray direction for a canvas
// pixel
func (c *Camera) RayDirection(x, y int) core.Vec3 {
	return c.CanvasToViewport(x, y).Normalize()
}
