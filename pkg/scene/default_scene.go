package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// DefaultDescription describes the four-sphere scene viewed by the default pinhole camera:
// a diffuse blue sphere, a fuzzy gold mirror, a glass sphere and a huge yellow ground sphere.
func DefaultDescription() *Description {
	d := &Description{
		Name:        "Default Scene",
		Description: "Diffuse, metal and glass spheres on a ground sphere",
		Camera:      CameraDescription{Type: CameraPinhole},
	}

	d.addSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	d.addSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	d.addSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2))
	d.addSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5))

	return d
}

// NewDefaultScene creates the default scene. Its pinhole camera has a fixed 2:1 view plane.
func NewDefaultScene() *Scene {
	s, err := DefaultDescription().Build(2)
	if err != nil {
		panic(err)
	}
	return s
}
