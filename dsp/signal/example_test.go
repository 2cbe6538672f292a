package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/signal"
)

func ExampleGenerator_Cycles() {
	g := signal.NewGenerator()
	s, _ := g.Cycles(1, 1, 5)
	fmt.Printf("%.2f\n", s)
	// Output:
	// [0.00 1.00 0.00 -1.00 -0.00]
}
