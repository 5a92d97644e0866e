package imageio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"out.ppm", PPM, false},
		{"dir/out.PNG", PNG, false},
		{"out.webp", WebP, false},
		{"out.tga", TGA, false},
		{"out.bmp", BMP, false},
		{"out.jpg", "", true},
		{"out", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	buffer := testBuffer()

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(dir, "render."+string(format))
			if err := Save(path, buffer); err != nil {
				t.Fatalf("Save() error: %v", err)
			}

			info, err := os.Stat(path)
			if err != nil || info.Size() == 0 {
				t.Fatalf("Expected non-empty file, stat error %v", err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			assertBuffersEqual(t, buffer, loaded)
		})
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.gif")
	err := Save(path, testBuffer())
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("Expected unsupported extension error, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("No file should be created for an unsupported format")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestToImage_Clamps(t *testing.T) {
	buffer := renderer.NewPixelBuffer(2, 1)
	buffer.Pixels[0] = renderer.RGB{R: 300, G: 128, B: -5}
	buffer.Pixels[1] = renderer.RGB{R: 1, G: 2, B: 3}

	img := ToImage(buffer)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("Pixel (0,0) = %+v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Pixel (1,0) = %+v", got)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 12, 21))
	img.SetRGBA(10, 20, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	img.SetRGBA(11, 20, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	buffer := FromImage(img)
	if buffer.Width != 2 || buffer.Height != 1 {
		t.Fatalf("Size = %dx%d, want 2x1", buffer.Width, buffer.Height)
	}
	if buffer.At(0, 0) != (renderer.RGB{R: 9, G: 8, B: 7}) || buffer.At(1, 0) != (renderer.RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("Unexpected pixels %+v", buffer.Pixels)
	}
}
