package core

import "fmt"

// Ray represents a half-line with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. It panics if direction is not unit length,
// since every producer of rays is expected to normalize first.
func NewRay(origin, direction Vec3) Ray {
	if !direction.IsUnit() {
		panic(fmt.Sprintf("core: ray direction %v is not unit length (|d| = %g)", direction, direction.Length()))
	}
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
