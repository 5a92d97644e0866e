package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// World is the scene aggregate: an ordered list of shapes tested linearly.
// It is built once and then only read, so it is safe to share between workers.
// There is no spatial index; cost per ray is linear in the number of shapes.
type World struct {
	shapes []Shape
}

// NewWorld creates a world from the given shapes
func NewWorld(shapes ...Shape) *World {
	return &World{shapes: append([]Shape(nil), shapes...)}
}

// Add appends a shape. Only valid while the scene is being built.
func (w *World) Add(shape Shape) {
	w.shapes = append(w.shapes, shape)
}

// Len returns the number of shapes in the world
func (w *World) Len() int {
	return len(w.shapes)
}

// Shapes returns the shapes in insertion order
func (w *World) Shapes() []Shape {
	return w.shapes
}

// Hit returns the hit with the smallest t among all shapes
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord

	for _, shape := range w.shapes {
		hit, isHit := shape.Hit(ray, tMin, tMax)
		if !isHit {
			continue
		}
		if closest == nil || hit.T < closest.T {
			closest = hit
		}
	}

	return closest, closest != nil
}
