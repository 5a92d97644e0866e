package imageio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// EncodePPM writes the buffer as a plain-text P3 PPM: a "P3\n<w> <h>\n255\n"
// header then one "R G B" line per pixel, top row first. Channels are written
// as stored, so values above 255 are not clamped.
func EncodePPM(w io.Writer, buffer *renderer.PixelBuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", buffer.Width, buffer.Height); err != nil {
		return fmt.Errorf("imageio: write ppm header: %w", err)
	}

	line := make([]byte, 0, 16)
	for _, p := range buffer.Pixels {
		line = strconv.AppendInt(line[:0], int64(p.R), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(p.G), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(p.B), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("imageio: write ppm pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("imageio: write ppm: %w", err)
	}
	return nil
}

// MaxPPMPixels bounds the image size DecodePPM will allocate
const MaxPPMPixels = 1 << 28

const maxPPMValue = 65535

// DecodePPM reads a P3 PPM. Whitespace is free-form and '#' starts a comment
// that runs to the end of the line. Channels are rescaled to 255 when the
// file's maximum value differs.
func DecodePPM(r io.Reader) (*renderer.PixelBuffer, error) {
	tr := &ppmTokenizer{r: bufio.NewReader(r)}

	magic, err := tr.next()
	if err != nil {
		return nil, fmt.Errorf("imageio: read ppm magic: %w", err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("imageio: unsupported ppm magic %q", magic)
	}

	var header [3]int
	for i, name := range []string{"width", "height", "max value"} {
		v, err := tr.nextInt()
		if err != nil {
			return nil, fmt.Errorf("imageio: read ppm %s: %w", name, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("imageio: invalid ppm %s %d", name, v)
		}
		header[i] = v
	}
	width, height, maxValue := header[0], header[1], header[2]
	if width > MaxPPMPixels/height {
		return nil, fmt.Errorf("imageio: ppm size %dx%d exceeds %d pixels", width, height, MaxPPMPixels)
	}
	if maxValue > maxPPMValue {
		return nil, fmt.Errorf("imageio: invalid ppm max value %d", maxValue)
	}

	buffer := renderer.NewPixelBuffer(width, height)
	for i := range buffer.Pixels {
		var c [3]int
		for j := range c {
			v, err := tr.nextInt()
			if err != nil {
				return nil, fmt.Errorf("imageio: read ppm pixel %d: %w", i, err)
			}
			if v < 0 {
				return nil, fmt.Errorf("imageio: negative ppm channel at pixel %d", i)
			}
			if maxValue != 255 {
				if v > maxValue {
					return nil, fmt.Errorf("imageio: ppm channel %d exceeds max value at pixel %d", v, i)
				}
				v = v * 255 / maxValue
			}
			c[j] = v
		}
		buffer.Pixels[i] = renderer.RGB{R: c[0], G: c[1], B: c[2]}
	}

	return buffer, nil
}

type ppmTokenizer struct {
	r *bufio.Reader
}

// next returns the next whitespace separated token, skipping comments
func (t *ppmTokenizer) next() (string, error) {
	var token []byte
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF && len(token) > 0 {
			return string(token), nil
		}
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
		if err != nil {
			return "", err
		}

		switch {
		case b == '#':
			if _, err := t.r.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
			if len(token) > 0 {
				return string(token), nil
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, b)
		}
	}
}

func (t *ppmTokenizer) nextInt() (int, error) {
	token, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(token)
}
