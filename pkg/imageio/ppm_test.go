package imageio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

func testBuffer() *renderer.PixelBuffer {
	buffer := renderer.NewPixelBuffer(3, 2)
	buffer.Set(0, 0, renderer.RGB{R: 255, G: 0, B: 0})
	buffer.Set(1, 0, renderer.RGB{R: 0, G: 255, B: 0})
	buffer.Set(2, 0, renderer.RGB{R: 0, G: 0, B: 255})
	buffer.Set(0, 1, renderer.RGB{R: 12, G: 34, B: 56})
	buffer.Set(1, 1, renderer.RGB{R: 128, G: 128, B: 128})
	buffer.Set(2, 1, renderer.RGB{R: 255, G: 255, B: 255})
	return buffer
}

func TestEncodePPM_Format(t *testing.T) {
	buffer := renderer.NewPixelBuffer(2, 1)
	buffer.Pixels[0] = renderer.RGB{R: 255, G: 0, B: 7}
	buffer.Pixels[1] = renderer.RGB{R: 0, G: 128, B: 300}

	var out bytes.Buffer
	if err := EncodePPM(&out, buffer); err != nil {
		t.Fatalf("EncodePPM() error: %v", err)
	}

	// Overflowing channels are written as stored
	expected := "P3\n2 1\n255\n255 0 7\n0 128 300\n"
	if out.String() != expected {
		t.Errorf("EncodePPM() = %q, want %q", out.String(), expected)
	}
}

func TestPPMRoundTrip(t *testing.T) {
	buffer := testBuffer()

	var out bytes.Buffer
	if err := EncodePPM(&out, buffer); err != nil {
		t.Fatalf("EncodePPM() error: %v", err)
	}
	decoded, err := DecodePPM(&out)
	if err != nil {
		t.Fatalf("DecodePPM() error: %v", err)
	}

	assertBuffersEqual(t, buffer, decoded)
}

func TestDecodePPM_CommentsAndMaxValue(t *testing.T) {
	input := "P3 # plain ppm\n# size\n2 1\n15\n15 0 0   0 15\n# last channel\n5"
	decoded, err := DecodePPM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodePPM() error: %v", err)
	}

	expected := []renderer.RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 85}}
	for i, p := range decoded.Pixels {
		if p != expected[i] {
			t.Errorf("Pixel %d = %+v, want %+v", i, p, expected[i])
		}
	}
}

func TestDecodePPM_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"binary magic", "P6\n1 1\n255\n"},
		{"zero width", "P3\n0 1\n255\n"},
		{"bad number", "P3\n1 x\n255\n"},
		{"truncated pixels", "P3\n2 1\n255\n1 2 3\n4 5"},
		{"negative channel", "P3\n1 1\n255\n1 -2 3\n"},
		{"oversized header", "P3\n100000000 100000000\n255\n0 0 0\n"},
		{"overflowing size", "P3\n9223372036854775807 2\n255\n0 0 0\n"},
		{"max value too large", "P3\n1 1\n70000\n1 2 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePPM(strings.NewReader(tt.input)); err == nil {
				t.Errorf("DecodePPM(%q) expected error", tt.input)
			}
		})
	}
}

func assertBuffersEqual(t *testing.T, expected, got *renderer.PixelBuffer) {
	t.Helper()
	if got.Width != expected.Width || got.Height != expected.Height {
		t.Fatalf("Size = %dx%d, want %dx%d", got.Width, got.Height, expected.Width, expected.Height)
	}
	for i := range expected.Pixels {
		if got.Pixels[i] != expected.Pixels[i] {
			t.Errorf("Pixel %d = %+v, want %+v", i, got.Pixels[i], expected.Pixels[i])
		}
	}
}
