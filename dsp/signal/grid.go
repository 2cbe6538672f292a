package signal

import "fmt"

// Gradient returns a rows×cols row-major diagonal ramp from 0 at the top-left
// corner to 1 at the bottom-right corner.
func Gradient(rows, cols int) ([]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("gradient size must be > 0: %dx%d", rows, cols)
	}
	out := make([]float64, rows*cols)
	span := float64(rows + cols - 2)
	if span == 0 {
		return out, nil
	}
	for r := range rows {
		for c := range cols {
			out[r*cols+c] = float64(r+c) / span
		}
	}
	return out, nil
}

// Checkerboard returns a rows×cols row-major pattern of cell×cell squares
// alternating between 0 and 1, starting with 1 at the top-left.
func Checkerboard(rows, cols, cell int) ([]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("checkerboard size must be > 0: %dx%d", rows, cols)
	}
	if cell <= 0 {
		return nil, fmt.Errorf("checkerboard cell must be > 0: %d", cell)
	}
	out := make([]float64, rows*cols)
	for r := range rows {
		for c := range cols {
			if (r/cell+c/cell)%2 == 0 {
				out[r*cols+c] = 1
			}
		}
	}
	return out, nil
}
