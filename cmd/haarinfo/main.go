// Command haarinfo runs the Haar wavelet engine on a generated signal or grid
// and prints the band layout, the energy balance and the round-trip error.
//
// Usage:
//
//	haarinfo [flags]
//
// Without flags it transforms 10 sine cycles over 64 samples to the maximum
// depth.
//
// Examples:
//
//	haarinfo
//	haarinfo -n 1024 -depth 4 -signal noise
//	haarinfo -n 256 -signal impulse -k 4
//	haarinfo -grid 256x128 -pattern checker -iterations 3 -workers 4
//	haarinfo -grid 64x64 -pattern checker -visualize
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/signal"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet/haar"
	"github.com/cwbudde/algo-wavelet/measure/energy"
	"github.com/cwbudde/algo-wavelet/stats/coeff"
)

type options struct {
	length     int
	depth      int
	kind       string
	cycles     float64
	seed       int64
	tol        float64
	keep       int
	grid       string
	pattern    string
	iterations int
	workers    int
	visualize  bool
}

var signalKinds = []string{"cycles", "sine", "noise", "impulse", "edge"}

var gridPatterns = []string{"gradient", "checker", "noise"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("haarinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.IntVar(&opts.length, "n", 64, "signal length (power of two)")
	fs.IntVar(&opts.depth, "depth", -1, "decomposition depth (-1 = maximum)")
	fs.StringVar(&opts.kind, "signal", "cycles", "signal type: "+strings.Join(signalKinds, ", "))
	fs.Float64Var(&opts.cycles, "cycles", 10, "periods for the cycles/sine signal")
	fs.Int64Var(&opts.seed, "seed", 1, "noise seed")
	fs.Float64Var(&opts.tol, "tol", 0, "energy tolerance (0 = scale with length and energy)")
	fs.IntVar(&opts.keep, "k", 8, "coefficients kept for the compaction comparison")
	fs.StringVar(&opts.grid, "grid", "", "run the 2D pyramid on a ROWSxCOLS grid instead")
	fs.StringVar(&opts.pattern, "pattern", "gradient", "grid pattern: "+strings.Join(gridPatterns, ", "))
	fs.IntVar(&opts.iterations, "iterations", -1, "pyramid iterations (-1 = maximum)")
	fs.IntVar(&opts.workers, "workers", 1, "parallel row/column workers for the pyramid (0 = GOMAXPROCS)")
	fs.BoolVar(&opts.visualize, "visualize", false, "print the one-level display preview of the grid")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: haarinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Runs the orthonormal Haar transform and reports energy conservation.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var err error
	if opts.grid != "" {
		err = runGrid(stdout, opts)
	} else {
		err = runSignal(stdout, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func makeSignal(opts options) ([]float64, error) {
	if !core.IsPowerOfTwo(opts.length) {
		return nil, fmt.Errorf("signal length must be a power of two: %d", opts.length)
	}
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSignalLength(opts.length)},
		signal.WithSeed(opts.seed),
	)
	n := gen.Length()

	switch opts.kind {
	case "cycles":
		return gen.Cycles(opts.cycles, 1, n)
	case "sine":
		freq := opts.cycles * gen.Config().SampleRate / float64(n)
		return gen.Sine(freq, 1, n)
	case "noise":
		return gen.WhiteNoise(1, n)
	case "impulse":
		return gen.Impulse(1, n, n/3)
	case "edge":
		return gen.Edge(1, n, n/3)
	default:
		return nil, fmt.Errorf("unknown signal %q (want one of %s)", opts.kind, strings.Join(signalKinds, ", "))
	}
}

func runSignal(w io.Writer, opts options) error {
	x, err := makeSignal(opts)
	if err != nil {
		return err
	}
	n := len(x)
	maxDepth := haar.MaxDepth(n)
	depth := opts.depth
	if depth < 0 {
		depth = maxDepth
	}

	a := slices.Clone(x)
	b := make([]float64, n)
	coeffs, side, err := haar.Transform(a, b, depth)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Signal length: %d, Max depth: %d, Depth: %d, Result buffer: %v\n\n", n, maxDepth, depth, side)

	bands, err := energy.BandEnergies(coeffs, depth)
	if err != nil {
		return err
	}
	summaries, err := coeff.Bands(coeffs, depth)
	if err != nil {
		return err
	}
	if err := printBands(w, bands, summaries); err != nil {
		return err
	}

	report, checkErr := energy.Check(x, coeffs, opts.tol)
	fmt.Fprintf(w, "\nEnergy: %s ok=%v\n", report, report.OK())

	scratch := b
	if side == haar.SideB {
		scratch = a
	}
	coeffsCopy := slices.Clone(coeffs)
	rec, _, err := haar.Inverse(coeffs, scratch, depth)
	if err != nil {
		return err
	}
	rtErr, err := energy.MaxAbsDiff(x, rec)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Round-trip max error: %.3g\n", rtErr)

	dft, err := energy.SpectrumCompaction(x, opts.keep)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Energy in top %d coefficients: haar=%.4f dft=%.4f\n",
		opts.keep, energy.Compaction(coeffsCopy, opts.keep), dft)

	return checkErr
}

func printBands(w io.Writer, bands []energy.BandEnergy, summaries []coeff.BandStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tLevel\tOffset\tLength\tEnergy\tFraction\tPeak\tSparsity\n")
	fmt.Fprintf(tw, "----\t-----\t------\t------\t------\t--------\t----\t--------\n")
	for i, b := range bands {
		s := summaries[i]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.6g\t%.4f\t%.4g\t%.2f\n",
			b.Kind, b.Level, b.Offset, b.Len, b.Energy, b.Fraction, s.Peak, s.Sparsity)
	}
	return tw.Flush()
}

func parseShape(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("grid must be ROWSxCOLS: %q", s)
	}
	if rows, err = strconv.Atoi(strings.TrimSpace(r)); err != nil {
		return 0, 0, fmt.Errorf("grid rows: %w", err)
	}
	if cols, err = strconv.Atoi(strings.TrimSpace(c)); err != nil {
		return 0, 0, fmt.Errorf("grid cols: %w", err)
	}
	return rows, cols, nil
}

func makeGrid(opts options, rows, cols int) (*haar.Grid, error) {
	var (
		data []float64
		err  error
	)
	switch opts.pattern {
	case "gradient":
		data, err = signal.Gradient(rows, cols)
	case "checker":
		data, err = signal.Checkerboard(rows, cols, max(1, min(rows, cols)/8))
	case "noise":
		gen := signal.NewGeneratorWithOptions(nil, signal.WithSeed(opts.seed))
		data, err = gen.WhiteNoise(1, rows*cols)
	default:
		err = fmt.Errorf("unknown pattern %q (want one of %s)", opts.pattern, strings.Join(gridPatterns, ", "))
	}
	if err != nil {
		return nil, err
	}
	return haar.WrapGrid(rows, cols, data)
}

func runGrid(w io.Writer, opts options) error {
	rows, cols, err := parseShape(opts.grid)
	if err != nil {
		return err
	}
	g, err := makeGrid(opts, rows, cols)
	if err != nil {
		return err
	}
	iterations := opts.iterations
	if iterations < 0 {
		iterations = haar.MaxIterations(rows, cols)
	}

	if opts.visualize {
		preview, err := visualize(g)
		if err != nil {
			return err
		}
		if err := printPreview(w, preview); err != nil {
			return err
		}
	}

	orig := g.Clone()
	workers := haar.WithWorkers(opts.workers)
	if err := haar.Forward2D(g, iterations, workers); err != nil {
		return err
	}

	fmt.Fprintf(w, "Grid: %dx%d, Max iterations: %d, Iterations: %d\n",
		rows, cols, haar.MaxIterations(rows, cols), iterations)

	trendRows, trendCols := rows>>iterations, cols>>iterations
	var trend float64
	for r := range trendRows {
		trend += energy.Energy(g.Row(r)[:trendCols])
	}
	total := energy.Energy(g.Data())
	if total > 0 {
		fmt.Fprintf(w, "Trend block %dx%d holds %.4f of the energy\n", trendRows, trendCols, trend/total)
	}

	report, checkErr := energy.Check(orig.Data(), g.Data(), opts.tol)
	fmt.Fprintf(w, "Energy: %s ok=%v\n", report, report.OK())

	if err := haar.Inverse2D(g, iterations, workers); err != nil {
		return err
	}
	rtErr, err := energy.MaxAbsDiff(orig.Data(), g.Data())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Round-trip max error: %.3g\n", rtErr)
	return checkErr
}

// visualize maps one level of g to display range: pair means in the first
// half and 0.5+0.5*difference in the second, over rows then columns.
func visualize(g *haar.Grid) (*haar.Grid, error) {
	rows, cols := g.Rows(), g.Cols()
	out := g.Clone()

	tmp := make([]float64, cols)
	for r := range rows {
		if err := haar.VisualizeStep(tmp, out.Row(r)); err != nil {
			return nil, err
		}
		copy(out.Row(r), tmp)
	}

	col := make([]float64, rows)
	res := make([]float64, rows)
	for c := range cols {
		for r := range rows {
			col[r] = out.At(r, c)
		}
		if err := haar.VisualizeStep(res, col); err != nil {
			return nil, err
		}
		for r, v := range res {
			out.Set(r, c, v)
		}
	}
	return out, nil
}

func printPreview(w io.Writer, g *haar.Grid) error {
	hr, hc := g.Rows()/2, g.Cols()/2
	quadrants := []struct {
		name   string
		r0, c0 int
	}{
		{"top-left", 0, 0},
		{"top-right", 0, hc},
		{"bottom-left", hr, 0},
		{"bottom-right", hr, hc},
	}

	fmt.Fprintf(w, "Preview (one level, display range):\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Quadrant\tMean\tMin\tMax\n")
	fmt.Fprintf(tw, "--------\t----\t---\t---\n")
	for _, q := range quadrants {
		lo, hi, sum := g.At(q.r0, q.c0), g.At(q.r0, q.c0), 0.0
		for r := q.r0; r < q.r0+hr; r++ {
			for _, v := range g.Row(r)[q.c0 : q.c0+hc] {
				lo, hi = min(lo, v), max(hi, v)
				sum += v
			}
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\n", q.name, sum/float64(hr*hc), lo, hi)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}
