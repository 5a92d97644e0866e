package core

import (
	"math"
	"testing"
)

func TestNewRay_AcceptsUnitDirection(t *testing.T) {
	directions := []Vec3{
		NewVec3(0, 0, -1),
		NewVec3(1, 2, 3).Normalize(),
		NewVec3(-0.6, 0, 0.8),
	}

	for _, d := range directions {
		ray := NewRay(NewVec3(1, 1, 1), d)
		if !ray.Direction.Equals(d) {
			t.Errorf("Expected direction %v, got %v", d, ray.Direction)
		}
	}
}

func TestNewRay_PanicsOnNonUnitDirection(t *testing.T) {
	directions := []Vec3{
		NewVec3(0, 0, -2),
		NewVec3(1, 1, 0),
		NewVec3(0, 0, 0),
	}

	for _, d := range directions {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for direction %v", d)
				}
			}()
			NewRay(NewVec3(0, 0, 0), d)
		}()
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))
	p := ray.At(2.5)
	expected := NewVec3(1, 2, 0.5)

	if p.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, p)
	}

	if math.Abs(ray.At(0).Subtract(ray.Origin).Length()) > 0 {
		t.Error("At(0) should return the origin")
	}
}
