package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Camera types accepted in a scene description
const (
	CameraPinhole  = "pinhole"
	CameraThinLens = "thin_lens"
)

// Vector is a 3-component vector written as a JSON array [x, y, z]
type Vector [3]float64

// Vec3 converts the vector to a core.Vec3
func (v Vector) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func vector(v core.Vec3) Vector {
	return Vector{v.X, v.Y, v.Z}
}

// Description is the serializable form of a scene
type Description struct {
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	Camera      CameraDescription      `json:"camera"`
	Background  *BackgroundDescription `json:"background,omitempty"`
	Spheres     []SphereDescription    `json:"spheres"`
}

// CameraDescription describes either a pinhole or a thin lens camera.
// A pinhole camera with no view plane set uses renderer.DefaultPinholeCamera.
type CameraDescription struct {
	Type string `json:"type"`

	// pinhole
	Origin          Vector `json:"origin,omitzero"`
	LowerLeftCorner Vector `json:"lower_left_corner,omitzero"`
	Horizontal      Vector `json:"horizontal,omitzero"`
	Vertical        Vector `json:"vertical,omitzero"`

	// thin_lens
	LookFrom      Vector  `json:"look_from,omitzero"`
	LookAt        Vector  `json:"look_at,omitzero"`
	Up            Vector  `json:"up,omitzero"`
	VFov          float64 `json:"vfov,omitempty"`
	Aperture      float64 `json:"aperture,omitempty"`
	FocusDistance float64 `json:"focus_distance,omitempty"`
}

// BackgroundDescription sets the sky gradient; omitted means integrator.DefaultBackground
type BackgroundDescription struct {
	Horizon Vector `json:"horizon"`
	Sky     Vector `json:"sky"`
}

// SphereDescription is one sphere with its material
type SphereDescription struct {
	Center   Vector              `json:"center"`
	Radius   float64             `json:"radius"`
	Material MaterialDescription `json:"material"`
}

// MaterialDescription is a tagged material; Type is one of the material.Kind names
type MaterialDescription struct {
	Type            string  `json:"type"`
	Albedo          Vector  `json:"albedo,omitzero"`
	Fuzz            float64 `json:"fuzz,omitempty"`
	RefractiveIndex float64 `json:"refractive_index,omitempty"`
}

// Decode reads a JSON scene description. Unknown fields are rejected.
func Decode(r io.Reader) (*Description, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var d Description
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return &d, nil
}

func (c CameraDescription) isDefaultPinhole() bool {
	return c.Horizontal == (Vector{}) && c.Vertical == (Vector{})
}

func (c CameraDescription) thinLensConfig(aspectRatio float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      c.LookFrom.Vec3(),
		LookAt:        c.LookAt.Vec3(),
		Up:            c.Up.Vec3(),
		VFov:          c.VFov,
		AspectRatio:   aspectRatio,
		Aperture:      c.Aperture,
		FocusDistance: c.FocusDistance,
	}
}

// viewPlaneEpsilon is the smallest sine of the angle between the view plane
// and the origin's offset from lower_left_corner
const viewPlaneEpsilon = 1e-9

// Validate checks every value that would otherwise reach a panicking constructor
func (d *Description) Validate() error {
	switch d.Camera.Type {
	case "", CameraPinhole:
		if !d.Camera.isDefaultPinhole() {
			normal := d.Camera.Horizontal.Vec3().Cross(d.Camera.Vertical.Vec3())
			if normal.LengthSquared() == 0 {
				return fmt.Errorf("scene: camera: horizontal and vertical must span a plane")
			}
			offset := d.Camera.Origin.Vec3().Subtract(d.Camera.LowerLeftCorner.Vec3())
			if math.Abs(offset.Dot(normal)) <= viewPlaneEpsilon*offset.Length()*normal.Length() {
				return fmt.Errorf("scene: camera: origin must not lie on the view plane")
			}
		}
	case CameraThinLens:
		if err := d.Camera.thinLensConfig(1).Validate(); err != nil {
			return fmt.Errorf("scene: camera: %w", err)
		}
	default:
		return fmt.Errorf("scene: camera: unknown type %q", d.Camera.Type)
	}

	if len(d.Spheres) == 0 {
		return fmt.Errorf("scene: no spheres")
	}

	for i, s := range d.Spheres {
		if !(s.Radius > 0) {
			return fmt.Errorf("scene: sphere %d: radius must be positive, got %g", i, s.Radius)
		}
		if err := s.Material.validate(); err != nil {
			return fmt.Errorf("scene: sphere %d: %w", i, err)
		}
	}

	return nil
}

func (m MaterialDescription) validate() error {
	switch m.Type {
	case material.KindLambertian.String(), material.KindMetal.String():
		for _, c := range m.Albedo {
			if c < 0 {
				return fmt.Errorf("%s albedo must not be negative, got %v", m.Type, m.Albedo)
			}
		}
		if m.Type == material.KindMetal.String() && (m.Fuzz < 0 || m.Fuzz > 1) {
			return fmt.Errorf("metal fuzz must be in [0, 1], got %g", m.Fuzz)
		}
	case material.KindDielectric.String():
		if !(m.RefractiveIndex > 0) {
			return fmt.Errorf("dielectric refractive index must be positive, got %g", m.RefractiveIndex)
		}
	default:
		return fmt.Errorf("unknown material type %q", m.Type)
	}
	return nil
}

func (m MaterialDescription) build() material.Material {
	switch m.Type {
	case material.KindMetal.String():
		return material.NewMetal(m.Albedo.Vec3(), m.Fuzz)
	case material.KindDielectric.String():
		return material.NewDielectric(m.RefractiveIndex)
	default:
		return material.NewLambertian(m.Albedo.Vec3())
	}
}

func describeMaterial(m material.Material) MaterialDescription {
	desc := MaterialDescription{Type: m.Kind.String()}
	switch m.Kind {
	case material.KindLambertian:
		desc.Albedo = vector(m.Albedo)
	case material.KindMetal:
		desc.Albedo = vector(m.Albedo)
		desc.Fuzz = m.Fuzz
	case material.KindDielectric:
		desc.RefractiveIndex = m.RefractiveIndex
	}
	return desc
}

// Build validates the description and constructs a scene for images with the
// given width/height ratio. The ratio only affects thin lens cameras.
func (d *Description) Build(aspectRatio float64) (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !(aspectRatio > 0) {
		return nil, fmt.Errorf("scene: aspect ratio must be positive, got %g", aspectRatio)
	}

	s := &Scene{
		Name:       d.Name,
		World:      geometry.NewWorld(),
		Background: integrator.DefaultBackground(),
	}

	switch {
	case d.Camera.Type == CameraThinLens:
		s.Camera = renderer.NewThinLensCamera(d.Camera.thinLensConfig(aspectRatio))
	case d.Camera.isDefaultPinhole():
		s.Camera = renderer.DefaultPinholeCamera()
	default:
		s.Camera = renderer.NewPinholeCamera(
			d.Camera.Origin.Vec3(),
			d.Camera.LowerLeftCorner.Vec3(),
			d.Camera.Horizontal.Vec3(),
			d.Camera.Vertical.Vec3(),
		)
	}

	if d.Background != nil {
		s.Background = integrator.Background{
			Horizon: d.Background.Horizon.Vec3(),
			Sky:     d.Background.Sky.Vec3(),
		}
	}

	for _, sphere := range d.Spheres {
		s.AddSphere(sphere.Center.Vec3(), sphere.Radius, sphere.Material.build())
	}

	return s, nil
}

// addSphere appends a sphere description; used by the built-in scene generators
func (d *Description) addSphere(center core.Vec3, radius float64, mat material.Material) {
	d.Spheres = append(d.Spheres, SphereDescription{
		Center:   vector(center),
		Radius:   radius,
		Material: describeMaterial(mat),
	})
}
