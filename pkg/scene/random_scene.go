package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// featureClearance is the minimum horizontal distance between a small sphere
// and any feature sphere center; at 0.9 a 0.2 sphere never touches a unit sphere.
const featureClearance = 0.9

// featureCenters are the large spheres in the middle row
var featureCenters = []core.Vec3{
	core.NewVec3(0, 1, 0),
	core.NewVec3(-4, 1, 0),
	core.NewVec3(4, 1, 0),
}

// nearFeature reports whether a small sphere at center would crowd a feature sphere.
// Feature centers are projected to the small spheres' height before comparing.
func nearFeature(center core.Vec3) bool {
	for _, f := range featureCenters {
		reserved := core.NewVec3(f.X, center.Y, f.Z)
		if center.Subtract(reserved).Length() <= featureClearance {
			return true
		}
	}
	return false
}

// RandomDescription generates a field of small random spheres around three large
// feature spheres. The same seed always gives the same layout.
func RandomDescription(seed uint64) *Description {
	sampler := core.NewSeededSampler(seed, 0)

	d := &Description{
		Name:        "Random Spheres",
		Description: "Hundreds of small random spheres around three large feature spheres",
		Camera: CameraDescription{
			Type:          CameraThinLens,
			LookFrom:      Vector{13, 2, 3},
			LookAt:        Vector{0, 0, 0},
			Up:            Vector{0, 1, 0},
			VFov:          20,
			Aperture:      0.1,
			FocusDistance: 10,
		},
	}

	d.addSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.Gray(0.5)))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			if nearFeature(center) {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				// metal
				albedo := sampler.Get3D().Multiply(0.5).Add(core.Gray(0.5))
				mat = material.NewMetal(albedo, 0.5*sampler.Get1D())
			default:
				// glass
				mat = material.NewDielectric(1.5)
			}
			d.addSphere(center, 0.2, mat)
		}
	}

	d.addSphere(featureCenters[0], 1.0, material.NewDielectric(1.5))
	d.addSphere(featureCenters[1], 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	d.addSphere(featureCenters[2], 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	return d
}

// NewRandomScene creates the random sphere field for images with the given aspect ratio
func NewRandomScene(aspectRatio float64, seed uint64) (*Scene, error) {
	return RandomDescription(seed).Build(aspectRatio)
}
