package material

import (
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Kind tags the material variant
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

// String returns the lowercase variant name used in scene descriptions
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Material is a closed set of surface models. Only the fields of the active
// Kind are meaningful; values are immutable once attached to a shape.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Attenuation color (lambertian, metal)
	Fuzz            float64   // 0.0 = perfect mirror, 1.0 = very fuzzy (metal)
	RefractiveIndex float64   // Index of refraction, e.g. 1.5 for glass (dielectric)
}

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// NewMetal creates a metallic material with specular reflection
func NewMetal(albedo core.Vec3, fuzz float64) Material {
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: max(0.0, min(1.0, fuzz))}
}

// NewDielectric creates a transparent material like glass that can both reflect and refract
func NewDielectric(refractiveIndex float64) Material {
	return Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	T        float64   // Parameter t along the ray
	Normal   core.Vec3 // Unit outward surface normal
	Material Material  // Material of the hit object
}

// NewHitRecord creates a hit record. It panics if normal is not unit length.
func NewHitRecord(point core.Vec3, t float64, normal core.Vec3, material Material) HitRecord {
	if !normal.IsUnit() {
		panic(fmt.Sprintf("material: hit normal %v is not unit length", normal))
	}
	return HitRecord{Point: point, T: t, Normal: normal, Material: material}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// Scatter produces the outgoing ray for rayIn at hit. The boolean is false
// when the ray is absorbed.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		panic(fmt.Sprintf("material: unknown kind %v", m.Kind))
	}
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
