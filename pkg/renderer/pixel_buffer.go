package renderer

import (
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ColorScale maps a gamma-corrected channel in [0,1] to [0,255]
const ColorScale = 255.99

// RGB holds integer channel values. Values are not clamped: very bright
// radiance produces channels above 255.
type RGB struct {
	R, G, B int
}

// ColorToRGB applies gamma 2 correction to an averaged color and scales it to integers
func ColorToRGB(c core.Vec3) RGB {
	corrected := c.Sqrt().Multiply(ColorScale)
	return RGB{
		R: int(corrected.X),
		G: int(corrected.Y),
		B: int(corrected.Z),
	}
}

// PixelBuffer is a row-major grid of pixels with (0,0) at the top left
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewPixelBuffer allocates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("renderer: invalid buffer size %dx%d", width, height))
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// At returns the pixel at column x, row y
func (p *PixelBuffer) At(x, y int) RGB {
	return p.Pixels[y*p.Width+x]
}

// Set stores the pixel at column x, row y
func (p *PixelBuffer) Set(x, y int, c RGB) {
	p.Pixels[y*p.Width+x] = c
}
