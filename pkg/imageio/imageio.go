// Package imageio writes rendered pixel buffers to disk and reads images back.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Format identifies an output file format
type Format string

const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
	BMP  Format = "bmp"
)

// Formats lists every supported output format
var Formats = []Format{PPM, PNG, WebP, TGA, BMP}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if string(f) == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("imageio: unsupported file extension %q (supported: %v)", filepath.Ext(path), Formats)
}

// Encode writes the buffer in the given format. Only PPM keeps unclamped channels.
func Encode(w io.Writer, buffer *renderer.PixelBuffer, format Format) error {
	if format == PPM {
		return EncodePPM(w, buffer)
	}

	img := ToImage(buffer)
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("imageio: unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}

// Save writes the buffer to path in the format implied by its extension
func Save(path string, buffer *renderer.PixelBuffer) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}

	if err := Encode(f, buffer, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}
	return nil
}

// Load reads a PPM, PNG, WebP, TGA or BMP file into a pixel buffer.
// The decoder is chosen by file extension.
func Load(path string) (*renderer.PixelBuffer, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	if format == PPM {
		buffer, err := DecodePPM(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return buffer, nil
	}

	var img image.Image
	switch format {
	case PNG:
		img, err = png.Decode(f)
	case WebP:
		img, err = webp.Decode(f)
	case TGA:
		img, err = tga.Decode(f)
	case BMP:
		img, err = bmp.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}
