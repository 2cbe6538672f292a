package haar

// View is a non-owning window over a coefficient buffer.
type View struct {
	Offset int
	Len    int
}

// Of returns the part of buf covered by v.
func (v View) Of(buf []float64) []float64 {
	return buf[v.Offset : v.Offset+v.Len]
}

// End returns the exclusive end index of v.
func (v View) End() int {
	return v.Offset + v.Len
}

// BandKind distinguishes trend and fluctuation bands.
type BandKind int

const (
	BandTrend BandKind = iota
	BandFluctuation
)

func (k BandKind) String() string {
	switch k {
	case BandTrend:
		return "trend"
	case BandFluctuation:
		return "fluctuation"
	default:
		return "unknown"
	}
}

// Band locates the coefficients produced at one level.
type Band struct {
	Level int
	Kind  BandKind
	View
}

// Layout returns the bands of a depth-level decomposition of a length-n
// signal in buffer order: the coarsest trend first, then fluctuations from
// the coarsest level (depth) to the finest (1).
//
// A depth of 0 yields a single trend band covering the whole signal.
func Layout(n, depth int) ([]Band, error) {
	if err := validateSignal("layout", n); err != nil {
		return nil, err
	}
	if err := validateDepth("layout", depth, n); err != nil {
		return nil, err
	}

	bands := make([]Band, 0, depth+1)
	bands = append(bands, Band{Level: depth, Kind: BandTrend, View: TrendView(n, depth)})
	for level := depth; level >= 1; level-- {
		size := n >> level
		bands = append(bands, Band{
			Level: level,
			Kind:  BandFluctuation,
			View:  View{Offset: size, Len: size},
		})
	}
	return bands, nil
}

// TrendView returns the trend region after depth levels. It does not
// validate its arguments.
func TrendView(n, depth int) View {
	return View{Offset: 0, Len: n >> depth}
}
