package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// fixedShape reports a hit at a fixed distance regardless of the ray
type fixedShape struct {
	t     float64
	calls int
}

func (f *fixedShape) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	f.calls++
	if f.t <= tMin || f.t >= tMax {
		return nil, false
	}
	hit := material.NewHitRecord(ray.At(f.t), f.t, ray.Direction.Negate(), gray)
	return &hit, true
}

func TestWorld_ReturnsNearestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -3), 1.0, material.NewMetal(core.Gray(0.8), 0))
	far := NewSphere(core.NewVec3(0, 0, -6), 1.0, gray)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Insertion order must not matter
	for _, world := range []*World{NewWorld(near, far), NewWorld(far, near)} {
		hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
		if !isHit {
			t.Fatal("Expected hit")
		}
		if math.Abs(hit.T-2.0) > 1e-9 {
			t.Errorf("Expected nearest hit at t=2, got t=%f", hit.T)
		}
		if hit.Material.Kind != material.KindMetal {
			t.Errorf("Expected the near sphere's material, got %v", hit.Material.Kind)
		}
	}
}

func TestWorld_DistancesNotQuantized(t *testing.T) {
	// Distances differ by less than 1e-5, below any integer-keyed resolution
	a := &fixedShape{t: 2.000004}
	b := &fixedShape{t: 2.000001}
	world := NewWorld(a, b)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.T != 2.000001 {
		t.Errorf("Expected t=2.000001, got t=%.9f", hit.T)
	}
}

func TestWorld_TestsEveryShape(t *testing.T) {
	shapes := []*fixedShape{{t: 5}, {t: 2}, {t: 9}}
	world := NewWorld()
	for _, s := range shapes {
		world.Add(s)
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, _ := world.Hit(ray, 0.001, math.Inf(1))
	if hit.T != 2 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
	for i, s := range shapes {
		if s.calls != 1 {
			t.Errorf("Shape %d tested %d times, expected 1", i, s.calls)
		}
	}
	if world.Len() != 3 {
		t.Errorf("Expected 3 shapes, got %d", world.Len())
	}
}

func TestWorld_Miss(t *testing.T) {
	world := NewWorld(NewSphere(core.NewVec3(0, 5, -3), 1.0, gray))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := world.Hit(ray, 0.001, math.Inf(1)); isHit || hit != nil {
		t.Errorf("Expected miss, got %v", hit)
	}

	empty := NewWorld()
	if _, isHit := empty.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Empty world should never report a hit")
	}
}

func TestWorld_RespectsInterval(t *testing.T) {
	world := NewWorld(&fixedShape{t: 2}, &fixedShape{t: 5})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := world.Hit(ray, 3, 10)
	if !isHit || hit.T != 5 {
		t.Errorf("Expected hit at t=5 when t=2 is below tMin, got %v", hit)
	}
}
