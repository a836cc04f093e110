// Package scratch provides pooled float64 work buffers for the transform
// kernels.
package scratch

import "sync"

// Buffer wraps a reusable float64 slice.
type Buffer struct {
	samples []float64
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible. All
// samples are zero after the call.
func (b *Buffer) Resize(n int) {
	n = max(n, 0)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
		clear(b.samples)

		return
	}

	b.samples = make([]float64, n)
}

// Pool provides sync.Pool-based Buffer reuse. It is safe for concurrent use.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer with the requested length. Callers must return
// it via Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)

	return b
}

// Put returns buffers to the pool. Nil buffers are ignored. The caller must
// not use a buffer after calling Put.
func (p *Pool) Put(bufs ...*Buffer) {
	for _, b := range bufs {
		if b != nil {
			p.pool.Put(b)
		}
	}
}
