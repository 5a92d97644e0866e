package scene

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewVec3(r, g, blue)
}

// SphereGridDescription lays out a gridSize x gridSize grid of metal spheres
// whose hue varies along X and chroma along Z.
func SphereGridDescription(gridSize int) *Description {
	d := &Description{
		Name:        "Sphere Grid",
		Description: "Grid of rainbow-colored metallic spheres",
		Camera: CameraDescription{
			Type:     CameraThinLens,
			LookFrom: Vector{4.5, 6, 18},    // Farther back and slightly lower
			LookAt:   Vector{4.5, 0.8, 4.5}, // Center of the grid
			Up:       Vector{0, 1, 0},
			VFov:     40.0,
			Aperture: 0.02, // Small depth of field for some focus variation
		},
	}

	// Ground is a huge sphere whose top touches y = 0
	d.addSphere(core.NewVec3(4.5, -1000, 4.5), 1000, material.NewLambertian(core.Gray(0.5)))

	if gridSize < 2 {
		gridSize = 2
	}

	// Fit the grid in roughly 9x9 units regardless of size
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)

	sphereRadius := spacing * 0.35
	sphereRadius = math.Max(0.02, math.Min(0.35, sphereRadius))

	baseLightness := 0.65
	minChroma := 0.05 // near gray
	maxChroma := 0.25 // vivid

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			color := oklchToRGB(lightness, chroma, hue)
			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0

			d.addSphere(position, sphereRadius, material.NewMetal(color, roughness))
		}
	}

	return d
}

// NewSphereGridScene creates a 10x10 sphere grid for images with the given aspect ratio
func NewSphereGridScene(aspectRatio float64) (*Scene, error) {
	return SphereGridDescription(10).Build(aspectRatio)
}
