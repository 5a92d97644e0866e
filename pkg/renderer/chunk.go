package renderer

import "fmt"

// Chunk is a contiguous span [Start, End) of row-major pixel indices owned by one worker
type Chunk struct {
	ID    int
	Start int
	End   int
}

// Len returns the number of pixels in the chunk
func (c Chunk) Len() int {
	return c.End - c.Start
}

// NewChunks splits totalPixels into numChunks contiguous, non-overlapping spans.
// Lengths differ by at most one; the first spans take the remainder.
// If numChunks exceeds totalPixels, one chunk per pixel is returned.
func NewChunks(totalPixels, numChunks int) []Chunk {
	if totalPixels <= 0 || numChunks <= 0 {
		panic(fmt.Sprintf("renderer: cannot split %d pixels into %d chunks", totalPixels, numChunks))
	}
	numChunks = min(numChunks, totalPixels)

	size := totalPixels / numChunks
	remainder := totalPixels % numChunks

	chunks := make([]Chunk, 0, numChunks)
	start := 0
	for id := 0; id < numChunks; id++ {
		length := size
		if id < remainder {
			length++
		}
		chunks = append(chunks, Chunk{ID: id, Start: start, End: start + length})
		start += length
	}

	return chunks
}
