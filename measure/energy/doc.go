// Package energy provides the diagnostics used to validate orthonormal
// transforms: signal energy (sum of squares), length- and magnitude-aware
// tolerances, round-trip checks, per-band energy of a Haar decomposition and
// energy compaction compared against a DFT.
//
// A transform/inverse pair is checked by computing energy before and after:
//
//	before := energy.Energy(signal)
//	coeffs, _, _ := haar.Transform(a, b, depth)
//	report, err := energy.Check(signal, coeffs, 0) // 0 selects energy.Tolerance
//
// The package never mutates its inputs.
package energy
