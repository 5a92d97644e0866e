package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3
}

// Background is the sky gradient seen by rays that escape the scene
type Background struct {
	Horizon core.Vec3 // Color for rays pointing straight down
	Sky     core.Vec3 // Color for rays pointing straight up
}

// DefaultBackground returns the white-to-blue sky
func DefaultBackground() Background {
	return Background{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Sky:     core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the gradient color for a unit direction
func (b Background) Color(direction core.Vec3) core.Vec3 {
	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (direction.Y + 1.0)

	// Linear interpolation: (1-t)*horizon + t*sky
	return b.Horizon.Multiply(1.0 - t).Add(b.Sky.Multiply(t))
}
