package haar

// Grid is a row-major rows×cols array of samples, e.g. a grayscale image.
// The pyramid transforms mutate it in place.
type Grid struct {
	rows int
	cols int
	data []float64
}

// NewGrid allocates a zero-filled grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if err := validateGridShape("grid", rows, cols); err != nil {
		return nil, err
	}
	return &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// WrapGrid views data as a rows×cols grid without copying.
func WrapGrid(rows, cols int, data []float64) (*Grid, error) {
	if err := validateGridShape("grid", rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, &DimensionError{Op: "grid", What: "data length", Got: len(data), Want: rows * cols}
	}
	return &Grid{rows: rows, cols: cols, data: data}, nil
}

// GridFromRows copies a rectangular [][]float64 into a new grid.
func GridFromRows(src [][]float64) (*Grid, error) {
	rows := len(src)
	cols := 0
	if rows > 0 {
		cols = len(src[0])
	}
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for r, row := range src {
		if len(row) != cols {
			return nil, &DimensionError{Op: "grid", What: "row length", Got: len(row), Want: cols}
		}
		copy(g.Row(r), row)
	}
	return g, nil
}

func validateGridShape(op string, rows, cols int) error {
	if rows <= 0 {
		return &LengthError{Op: op, Length: rows, Reason: "rows must be > 0"}
	}
	if cols <= 0 {
		return &LengthError{Op: op, Length: cols, Reason: "cols must be > 0"}
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Data returns the row-major backing slice.
func (g *Grid) Data() []float64 { return g.data }

// Row returns row r as a slice aliasing the grid.
func (g *Grid) Row(r int) []float64 {
	return g.data[r*g.cols : (r+1)*g.cols]
}

// At returns the sample at row r, column c.
func (g *Grid) At(r, c int) float64 {
	return g.data[r*g.cols+c]
}

// Set stores v at row r, column c.
func (g *Grid) Set(r, c int, v float64) {
	g.data[r*g.cols+c] = v
}

// Fill sets every sample to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)
	return &Grid{rows: g.rows, cols: g.cols, data: data}
}

// ToRows copies the grid into a freshly allocated [][]float64.
func (g *Grid) ToRows() [][]float64 {
	out := make([][]float64, g.rows)
	for r := range out {
		out[r] = append([]float64(nil), g.Row(r)...)
	}
	return out
}

// gatherColumn copies the first len(dst) samples of column c into dst.
func (g *Grid) gatherColumn(dst []float64, c int) {
	for r := range dst {
		dst[r] = g.data[r*g.cols+c]
	}
}

// scatterColumn writes src into the first len(src) samples of column c.
func (g *Grid) scatterColumn(src []float64, c int) {
	for r, v := range src {
		g.data[r*g.cols+c] = v
	}
}
