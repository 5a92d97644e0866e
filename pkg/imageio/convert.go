package imageio

import (
	"image"
	"image/color"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ToImage converts a pixel buffer to an opaque RGBA image. Channels are
// clamped to [0,255] since 8-bit formats cannot hold overflowing values.
func ToImage(buffer *renderer.PixelBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buffer.Width, buffer.Height))
	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			p := buffer.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: clampChannel(p.R),
				G: clampChannel(p.G),
				B: clampChannel(p.B),
				A: 255,
			})
		}
	}
	return img
}

// FromImage converts any image to a pixel buffer, dropping alpha
func FromImage(img image.Image) *renderer.PixelBuffer {
	bounds := img.Bounds()
	buffer := renderer.NewPixelBuffer(bounds.Dx(), bounds.Dy())

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			// RGBA returns 16-bit channels; >> 8 maps them back to 8 bits
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			buffer.Set(x, y, renderer.RGB{R: int(r >> 8), G: int(g >> 8), B: int(b >> 8)})
		}
	}

	return buffer
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}
