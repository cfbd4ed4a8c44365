package renderer

import (
	"math"

	"github.com/rmercier/go-whitted-raytracer/pkg/core"
	"github.com/rmercier/go-whitted-raytracer/pkg/geometry"
	"github.com/rmercier/go-whitted-raytracer/pkg/lights"
	"github.com/rmercier/go-whitted-raytracer/pkg/scene"
)

// shadowBias rejects shadow-ray intersections right at the surface point,
// which would otherwise read as self-shadowing acne
const shadowBias = 0.001

// ComputeLighting evaluates the total incident light intensity at point p
// with unit normal n and view direction view. specular is the Phong
// exponent (-1 disables the specular term). self is the primitive being
// shaded; it is excluded from shadow tests. The returned sum is unclamped;
// the caller clamps before scaling colors.
//
// Point lights accumulate the plain Lambert term plus a second,
// distance-attenuated Lambert term. Both are kept for compatibility with
// the established render output.
func ComputeLighting(p, n, view core.Vec3, specular float64, s *scene.Scene, self any) float64 {
	intensity := 0.0

	for _, light := range s.Lights {
		switch l := light.(type) {
		case *lights.Ambient:
			intensity += l.Intensity
		case *lights.Point:
			toLight := l.Position.Subtract(p)
			intensity += surfaceLight(p, n, view, specular, s, self, toLight, toLight.Length(), l.Intensity, true)
		case *lights.Directional:
			toLight := l.Direction.Normalize().Negate()
			intensity += surfaceLight(p, n, view, specular, s, self, toLight, geometry.NoHit, l.Intensity, false)
		}
	}

	return intensity
}

// surfaceLight computes the diffuse and specular contribution of a single
// point or directional light. toLight points from p toward the light; tMax
// bounds the shadow test (distance to a point light, infinity for
// directional).
func surfaceLight(p, n, view core.Vec3, specular float64, s *scene.Scene, self any, toLight core.Vec3, tMax, lightIntensity float64, attenuate bool) float64 {
	lightDir := toLight.Normalize()

	if shadowed(s, self, p, lightDir, tMax) {
		return 0
	}

	contribution := 0.0

	nDotL := n.Dot(lightDir)
	if nDotL > 0 {
		contribution += lightIntensity * nDotL
	}

	if attenuate {
		distance := toLight.Length()
		attenuation := 1 / (1 + 0.1*distance + 0.01*distance*distance)
		contribution += lightIntensity * nDotL * attenuation
	}

	if specular != -1 && specular > 0 && nDotL > 0 {
		reflected := n.Multiply(2 * nDotL).Subtract(lightDir)
		rDotV := reflected.Dot(view)
		if rDotV > 0 {
			contribution += lightIntensity * math.Pow(rDotV/(reflected.Length()*view.Length()), specular)
		}
	}

	return contribution
}

// shadowed casts a secondary ray from p toward the light and reports
// whether any sphere or triangle blocks it within (shadowBias, tMax).
// Planes are deliberately not shadow-tested; the wall planes act as a
// backdrop, not occluders.
func shadowed(s *scene.Scene, self any, p, lightDir core.Vec3, tMax float64) bool {
	for _, sphere := range s.Spheres {
		if any(sphere) == self {
			continue
		}
		t1, t2 := sphere.IntersectRay(p, lightDir)
		if (shadowBias < t1 && t1 < tMax) || (shadowBias < t2 && t2 < tMax) {
			return true
		}
	}

	for _, triangle := range s.Triangles {
		if any(triangle) == self {
			continue
		}
		t := triangle.IntersectRay(p, lightDir)
		if shadowBias < t && t < tMax {
			return true
		}
	}

	return false
}
