package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// scatterLambertian picks a direction around the normal offset by a point in the unit sphere.
// Diffuse surfaces never absorb.
func (m Material) scatterLambertian(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomInUnitSphere(sampler))

	// The sample can land almost exactly opposite the normal
	if direction.LengthSquared() < 1e-16 {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction.Normalize()),
		Attenuation: m.Albedo,
	}, true
}
