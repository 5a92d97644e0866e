package material

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// scatterDielectric chooses between reflection and refraction with Schlick probability
func (m Material) scatterDielectric(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	unitDirection := rayIn.Direction
	cosIncident := unitDirection.Dot(hit.Normal)

	// Determine if we're entering or exiting the material
	var outwardNormal core.Vec3
	var niOverNt float64
	exiting := cosIncident > 0
	if exiting {
		outwardNormal = hit.Normal.Negate()
		niOverNt = m.RefractiveIndex
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / m.RefractiveIndex
		cosIncident = -cosIncident
	}

	reflected := Reflect(unitDirection, hit.Normal)
	refracted, canRefract := Refract(unitDirection, outwardNormal, niOverNt)

	direction := reflected
	if canRefract {
		// Schlick is evaluated on the side of the less dense medium
		cosine := cosIncident
		if exiting {
			cosine = math.Sqrt(1 - niOverNt*niOverNt*(1-cosIncident*cosIncident))
		}
		if sampler.Get1D() >= Schlick(cosine, m.RefractiveIndex) {
			direction = refracted
		}
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction.Normalize()),
		Attenuation: attenuation,
	}, true
}

// Refract bends the unit vector v through a surface with unit normal n facing v's origin
// side, using Snell's law with ratio niOverNt. It returns false on total internal reflection.
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	dt := v.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := v.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Schlick calculates the Fresnel reflectance using Schlick's approximation
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
