package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int    // Number of rays per pixel
	MaxDepth        int    // Maximum ray bounce depth
	NumWorkers      int    // Number of parallel workers, 0 = runtime.NumCPU()
	Seed            uint64 // Base seed for all per-pixel random streams
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() Camera
	GetWorld() geometry.Shape
	GetBackground() integrator.Background
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("renderer: invalid image size %dx%d", width, height))
	}
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
		logger: nopLogger{},
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetIntegrator overrides the path tracer built from the sampling config
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetLogger sets the logger for progress output; nil disables logging
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = nopLogger{}
	}
	rt.logger = logger
}

// Width returns the image width in pixels
func (rt *Raytracer) Width() int { return rt.width }

// Height returns the image height in pixels
func (rt *Raytracer) Height() int { return rt.height }

// Render traces the whole image in parallel and returns the pixel buffer.
// The result depends only on the scene, the image size and the sampling
// config seed, never on the number of workers.
func (rt *Raytracer) Render() (*PixelBuffer, RenderStats) {
	if rt.config.SamplesPerPixel <= 0 {
		panic(fmt.Sprintf("renderer: samples per pixel must be positive, got %d", rt.config.SamplesPerPixel))
	}

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	integratorInst := rt.integrator
	if integratorInst == nil {
		integratorInst = integrator.NewPathTracingIntegrator(rt.config.MaxDepth, rt.scene.GetBackground())
	}

	buffer := NewPixelBuffer(rt.width, rt.height)
	chunks := NewChunks(rt.width*rt.height, numWorkers)
	chunkRenderer := NewChunkRenderer(
		rt.scene.GetCamera(),
		rt.scene.GetWorld(),
		integratorInst,
		rt.width, rt.height,
		rt.config.SamplesPerPixel,
		rt.config.Seed,
	)
	pool := NewWorkerPool(chunkRenderer, chunks)

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel with %d workers...\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, pool.GetNumWorkers())

	start := time.Now()
	results := pool.Run(buffer.Pixels)

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	for _, chunkStats := range results {
		stats.merge(chunkStats)
	}
	stats.Duration = time.Since(start)
	stats.finalize()

	rt.logger.Printf("Render complete: %d pixels, %.1f avg samples, %v\n",
		stats.TotalPixels, stats.AverageSamples, stats.Duration)

	return buffer, stats
}
