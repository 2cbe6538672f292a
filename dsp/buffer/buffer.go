package buffer

import "github.com/cwbudde/algo-wavelet/dsp/core"

// Buffer wraps a float64 slice with reuse-friendly semantics.
// Transform functions accept raw []float64; use Samples() to bridge.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// FromSlice wraps an existing slice without copying.
func FromSlice(s []float64) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	old := b.samples
	b.samples = core.EnsureLen(old, n)
	if n > cap(old) {
		core.CopyInto(b.samples, old)
		return
	}
	if n > len(old) {
		core.Zero(b.samples[len(old):])
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	core.Zero(b.samples)
}

// Pair resizes the buffer to 2*n and returns two disjoint n-length views,
// e.g. a gather slot and the step output of a column pass.
func (b *Buffer) Pair(n int) (first, second []float64) {
	if n < 0 {
		n = 0
	}
	b.Resize(2 * n)
	return b.samples[:n:n], b.samples[n:]
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	core.CopyInto(s, b.samples)
	return &Buffer{samples: s}
}
