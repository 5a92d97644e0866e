package renderer

import (
	"sync"
)

// WorkerPool renders a fixed set of chunks in parallel, one goroutine per chunk
type WorkerPool struct {
	renderer *ChunkRenderer
	chunks   []Chunk
}

// NewWorkerPool creates a pool that will render the given chunks with renderer
func NewWorkerPool(renderer *ChunkRenderer, chunks []Chunk) *WorkerPool {
	return &WorkerPool{
		renderer: renderer,
		chunks:   chunks,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.chunks)
}

// Run renders all chunks into pixels and blocks until every worker has finished.
// The returned stats are indexed by chunk ID.
func (wp *WorkerPool) Run(pixels []RGB) []RenderStats {
	results := make([]RenderStats, len(wp.chunks))

	var wg sync.WaitGroup
	for i, chunk := range wp.chunks {
		wg.Add(1)
		go func(i int, chunk Chunk) {
			defer wg.Done()
			// Chunks have disjoint index ranges, so writes never overlap
			results[i] = wp.renderer.RenderChunk(chunk, pixels)
		}(i, chunk)
	}
	wg.Wait()

	return results
}
