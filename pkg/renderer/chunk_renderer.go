package renderer

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// ChunkRenderer handles the rendering of individual chunks using an integrator
type ChunkRenderer struct {
	camera     Camera
	world      geometry.Shape
	integrator integrator.Integrator
	width      int
	height     int
	samples    int
	seed       uint64
}

// NewChunkRenderer creates a chunk renderer for an image of the given size
func NewChunkRenderer(camera Camera, world geometry.Shape, integratorInst integrator.Integrator, width, height, samples int, seed uint64) *ChunkRenderer {
	return &ChunkRenderer{
		camera:     camera,
		world:      world,
		integrator: integratorInst,
		width:      width,
		height:     height,
		samples:    samples,
		seed:       seed,
	}
}

// RenderChunk renders every pixel in the chunk and writes it to pixels[idx].
// Only indices inside the chunk are written, so chunks can render concurrently
// into a shared slice.
func (cr *ChunkRenderer) RenderChunk(chunk Chunk, pixels []RGB) RenderStats {
	sampler := core.NewSeededSampler(cr.seed, 0)
	stats := RenderStats{}

	for idx := chunk.Start; idx < chunk.End; idx++ {
		// Each pixel draws from its own stream so output does not depend on the partition
		sampler.Reseed(cr.seed, pixelStream(idx))
		pixels[idx] = ColorToRGB(cr.samplePixel(idx, sampler))

		stats.TotalPixels++
		stats.TotalSamples += cr.samples
	}

	return stats
}

// samplePixel averages the integrator's estimate over all samples for one pixel
func (cr *ChunkRenderer) samplePixel(idx int, sampler core.Sampler) core.Vec3 {
	x := idx % cr.width
	y := idx / cr.width

	colorAccum := core.Vec3{}
	for sample := 0; sample < cr.samples; sample++ {
		// Row 0 is the top of the image, so t is flipped
		s := (float64(x) + sampler.Get1D()) / float64(cr.width)
		t := (float64(cr.height-1-y) + sampler.Get1D()) / float64(cr.height)

		ray := cr.camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(cr.integrator.RayColor(ray, cr.world, sampler))
	}

	return colorAccum.Multiply(1.0 / float64(cr.samples))
}

// pixelStream scrambles a pixel index into a PCG stream selector (splitmix64 finalizer)
func pixelStream(idx int) uint64 {
	z := uint64(idx) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
