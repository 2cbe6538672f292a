package haar

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// chunksPerWorker is the number of row or column batches queued per worker.
const chunksPerWorker = 4

type kernel func(dst, src []float64)

// MaxIterations returns the deepest pyramid a rows×cols grid supports:
// both dimensions must stay divisible by 2^iterations.
func MaxIterations(rows, cols int) int {
	if rows < MinStepLength || cols < MinStepLength {
		return 0
	}
	return min(core.TrailingZeros(rows), core.TrailingZeros(cols))
}

// Forward2D applies an iterations-level separable Haar pyramid to g in place.
//
// Level k transforms the top-left (rows>>k)×(cols>>k) block: every row first,
// then every column. Coefficients outside the block are left untouched.
func Forward2D(g *Grid, iterations int, opts ...Option) error {
	if err := validatePyramid("forward2d", g, iterations); err != nil {
		return err
	}
	cfg := applyOptions(opts)

	for k := range iterations {
		levRows, levCols := g.rows>>k, g.cols>>k
		if err := cfg.rowPass(g, levRows, levCols, step64); err != nil {
			return err
		}
		if err := cfg.colPass(g, levRows, levCols, step64); err != nil {
			return err
		}
	}
	return nil
}

// Inverse2D undoes [Forward2D] in place, walking levels from iterations-1
// down to 0 and processing columns before rows within each level.
func Inverse2D(g *Grid, iterations int, opts ...Option) error {
	if err := validatePyramid("inverse2d", g, iterations); err != nil {
		return err
	}
	cfg := applyOptions(opts)

	for k := iterations - 1; k >= 0; k-- {
		levRows, levCols := g.rows>>k, g.cols>>k
		if err := cfg.colPass(g, levRows, levCols, unstep64); err != nil {
			return err
		}
		if err := cfg.rowPass(g, levRows, levCols, unstep64); err != nil {
			return err
		}
	}
	return nil
}

// Forward2DSlice runs [Forward2D] on a rectangular [][]float64 and writes
// the coefficients back into data.
func Forward2DSlice(data [][]float64, iterations int, opts ...Option) error {
	return sliceAdapter(data, func(g *Grid) error {
		return Forward2D(g, iterations, opts...)
	})
}

// Inverse2DSlice runs [Inverse2D] on a rectangular [][]float64.
func Inverse2DSlice(data [][]float64, iterations int, opts ...Option) error {
	return sliceAdapter(data, func(g *Grid) error {
		return Inverse2D(g, iterations, opts...)
	})
}

func sliceAdapter(data [][]float64, fn func(*Grid) error) error {
	g, err := GridFromRows(data)
	if err != nil {
		return err
	}
	if err := fn(g); err != nil {
		return err
	}
	for r, row := range data {
		copy(row, g.Row(r))
	}
	return nil
}

func validatePyramid(op string, g *Grid, iterations int) error {
	if g == nil {
		return &LengthError{Op: op, Length: 0, Reason: "grid must not be nil"}
	}
	if err := validateGridShape(op, g.rows, g.cols); err != nil {
		return err
	}
	if len(g.data) != g.rows*g.cols {
		return &DimensionError{Op: op, What: "data length", Got: len(g.data), Want: g.rows * g.cols}
	}
	if err := validateDepth(op, iterations, g.rows); err != nil {
		return err
	}
	if err := validateDepth(op, iterations, g.cols); err != nil {
		return err
	}

	unit := 1 << iterations
	if g.rows%unit != 0 {
		return &LengthError{Op: op, Length: g.rows, Reason: fmt.Sprintf("rows must be divisible by 2^%d", iterations)}
	}
	if g.cols%unit != 0 {
		return &LengthError{Op: op, Length: g.cols, Reason: fmt.Sprintf("cols must be divisible by 2^%d", iterations)}
	}
	return nil
}

// rowPass applies fn to the first levCols samples of the first levRows rows.
func (cfg config) rowPass(g *Grid, levRows, levCols int, fn kernel) error {
	return cfg.parallel(levRows, levCols, func(lo, hi int, _, out []float64) {
		for r := lo; r < hi; r++ {
			row := g.data[r*g.cols : r*g.cols+levCols]
			fn(out, row)
			copy(row, out)
		}
	})
}

// colPass applies fn to the first levRows samples of the first levCols columns.
func (cfg config) colPass(g *Grid, levRows, levCols int, fn kernel) error {
	return cfg.parallel(levCols, levRows, func(lo, hi int, gather, out []float64) {
		for c := lo; c < hi; c++ {
			g.gatherColumn(gather, c)
			fn(out, gather)
			g.scatterColumn(out, c)
		}
	})
}

// parallel splits [0, n) into batches and hands each batch private scratch
// views of length width. Batches touch disjoint rows or columns.
func (cfg config) parallel(n, width int, fn func(lo, hi int, gather, out []float64)) error {
	run := func(lo, hi int) {
		b, gather, out := cfg.pool.GetPair(width)
		fn(lo, hi, gather, out)
		cfg.pool.Put(b)
	}

	workers := min(cfg.workers, n)
	if workers <= 1 {
		run(0, n)
		return nil
	}

	chunk := max(1, n/(workers*chunksPerWorker))
	var eg errgroup.Group
	eg.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			run(lo, hi)
			return nil
		})
	}
	return eg.Wait()
}
