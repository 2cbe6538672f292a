package haar

// Transform decomposes the signal in a by depth levels using b as scratch.
//
// It returns the slice holding the coefficients, which is a or b depending on
// the parity of depth, together with its [Side]. The other buffer is left in
// an unspecified state. Depth must be within [0, MaxDepth(len(a))].
func Transform(a, b []float64, depth int) ([]float64, Side, error) {
	return TransformT(a, b, depth)
}

// TransformT is the generic form of [Transform].
func TransformT[F Float](a, b []F, depth int) ([]F, Side, error) {
	p, err := newPingPong("transform", a, b)
	if err != nil {
		return nil, SideA, err
	}
	if err := validateDepth("transform", depth, p.Len()); err != nil {
		return nil, SideA, err
	}
	if err := p.Forward(depth); err != nil {
		return nil, SideA, err
	}
	return p.Active(), p.ActiveSide(), nil
}

// Inverse reconstructs a signal from the depth-level coefficients in a,
// using b as scratch. Like [Transform], the reconstructed signal lands in a or
// b depending on the parity of depth.
func Inverse(a, b []float64, depth int) ([]float64, Side, error) {
	return InverseT(a, b, depth)
}

// InverseT is the generic form of [Inverse].
func InverseT[F Float](a, b []F, depth int) ([]F, Side, error) {
	p, err := newPingPong("inverse", a, b)
	if err != nil {
		return nil, SideA, err
	}
	if err := validateDepth("inverse", depth, p.Len()); err != nil {
		return nil, SideA, err
	}
	p.level = depth
	if err := p.Inverse(depth); err != nil {
		return nil, SideA, err
	}
	return p.Active(), p.ActiveSide(), nil
}

// TransformInPlace decomposes x by depth levels and leaves the coefficients
// in x, allocating a scratch buffer of the same length.
func TransformInPlace(x []float64, depth int) error {
	out, side, err := Transform(x, make([]float64, len(x)), depth)
	if err != nil {
		return err
	}
	if side == SideB {
		copy(x, out)
	}
	return nil
}

// InverseInPlace reconstructs x from depth-level coefficients in place,
// allocating a scratch buffer of the same length.
func InverseInPlace(x []float64, depth int) error {
	out, side, err := Inverse(x, make([]float64, len(x)), depth)
	if err != nil {
		return err
	}
	if side == SideB {
		copy(x, out)
	}
	return nil
}
