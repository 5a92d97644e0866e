package core

import (
	"math/rand/v2"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a Go random generator. It is not safe for concurrent use;
// every worker owns its own instance.
type RandomSampler struct {
	random *rand.Rand
	pcg    *rand.PCG
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a PCG stream
func NewSeededSampler(seed, stream uint64) *RandomSampler {
	pcg := rand.NewPCG(seed, stream)
	return &RandomSampler{random: rand.New(pcg), pcg: pcg}
}

// Reseed restarts the sampler on a new PCG stream without allocating
func (r *RandomSampler) Reseed(seed, stream uint64) {
	if r.pcg == nil {
		r.pcg = rand.NewPCG(seed, stream)
		r.random = rand.New(r.pcg)
		return
	}
	r.pcg.Seed(seed, stream)
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInUnitDisk generates a random point in the unit disk (z = 0) for depth of field.
// Points are drawn in [-1,1]² and rejected until strictly inside the disk.
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitSphere generates a random point strictly inside the unit sphere
// by rejection sampling the enclosing cube.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := sampler.Get3D().Multiply(2).Subtract(NewVec3(1, 1, 1))
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
