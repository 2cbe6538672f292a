package haar

// Side identifies one of the two physical buffers of a [PingPong].
type Side int

const (
	SideA Side = iota
	SideB
)

// Other returns the opposite side.
func (s Side) Other() Side {
	return 1 - s
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "Unknown"
	}
}

// PingPong owns the alternation between two equal-length buffers during a
// multi-level transform. Exactly one buffer is active at any time; each
// level reads the active trend, writes the scratch buffer and swaps.
//
// Outside the active trend region both buffers hold identical, finalized
// fluctuation coefficients, so the active buffer is always a complete
// coefficient vector.
//
// A PingPong is not safe for concurrent use.
type PingPong[F Float] struct {
	bufs   [2][]F
	active Side
	level  int
}

// NewPingPong binds a (holding the signal) and b (scratch). Both must have
// the same power-of-two length and must not overlap. a starts active at level 0.
func NewPingPong[F Float](a, b []F) (*PingPong[F], error) {
	return newPingPong("pingpong", a, b)
}

func newPingPong[F Float](op string, a, b []F) (*PingPong[F], error) {
	if err := validatePair(op, a, b); err != nil {
		return nil, err
	}
	if err := validateSignal(op, len(a)); err != nil {
		return nil, err
	}
	return &PingPong[F]{bufs: [2][]F{a, b}}, nil
}

// Active returns the buffer holding the current coefficients.
func (p *PingPong[F]) Active() []F {
	return p.bufs[p.active]
}

// Scratch returns the buffer the next level writes into.
func (p *PingPong[F]) Scratch() []F {
	return p.bufs[p.active.Other()]
}

// ActiveSide returns which physical buffer is active.
func (p *PingPong[F]) ActiveSide() Side {
	return p.active
}

// Level returns how many decomposition levels the active buffer holds.
func (p *PingPong[F]) Level() int {
	return p.level
}

// Len returns the signal length.
func (p *PingPong[F]) Len() int {
	return len(p.bufs[SideA])
}

// MaxDepth returns the deepest level reachable for this signal length.
func (p *PingPong[F]) MaxDepth() int {
	return MaxDepth(p.Len())
}

// Swap exchanges the active and scratch buffers without touching data.
func (p *PingPong[F]) Swap() {
	p.active = p.active.Other()
}

// SetLevel declares that the active buffer already holds a level-deep
// decomposition, e.g. coefficients produced elsewhere that are about to be
// inverted.
func (p *PingPong[F]) SetLevel(level int) error {
	if err := validateDepth("set level", level, p.Len()); err != nil {
		return err
	}
	p.level = level
	return nil
}

// Trend returns the active trend region of the current level.
func (p *PingPong[F]) Trend() []F {
	return p.Active()[:p.Len()>>p.level]
}

// Forward applies levels more decomposition levels on top of the current one.
// The total depth must stay within MaxDepth; nothing is modified otherwise.
func (p *PingPong[F]) Forward(levels int) error {
	n := p.Len()
	if levels < 0 {
		return &DepthError{Op: "forward", Requested: levels, Max: p.MaxDepth() - p.level, Length: n}
	}
	if err := validateDepth("forward", p.level+levels, n); err != nil {
		return err
	}
	if levels == 0 {
		return nil
	}

	p.syncTail(n >> p.level)
	for range levels {
		extents := n >> p.level
		src, dst := p.Active()[:extents], p.Scratch()[:extents]
		step(dst, src)

		// Mirror the new fluctuation into the buffer that becomes scratch.
		half := extents / 2
		copy(src[half:], dst[half:])

		p.Swap()
		p.level++
	}
	return nil
}

// Inverse undoes levels decomposition levels, starting at the current one.
func (p *PingPong[F]) Inverse(levels int) error {
	n := p.Len()
	if levels < 0 || levels > p.level {
		return &DepthError{Op: "inverse", Requested: levels, Max: p.level, Length: n}
	}
	if levels == 0 {
		return nil
	}

	p.syncTail(n >> (p.level - 1))
	for range levels {
		extents := n >> (p.level - 1)
		unstep(p.Scratch()[:extents], p.Active()[:extents])
		p.Swap()
		p.level--
	}
	return nil
}

// syncTail copies the finalized region [from, n) of the active buffer into
// the scratch buffer.
func (p *PingPong[F]) syncTail(from int) {
	copy(p.Scratch()[from:], p.Active()[from:])
}
