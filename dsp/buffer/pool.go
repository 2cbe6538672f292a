package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse to reduce GC pressure when
// transforms run repeatedly or fan out across workers.
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

// Get returns a zeroed Buffer with the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// GetPair returns a pooled Buffer split into two disjoint n-length views.
func (p *Pool) GetPair(n int) (b *Buffer, first, second []float64) {
	b = p.pool.Get().(*Buffer)
	first, second = b.Pair(n)
	return b, first, second
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer or its views after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
