package energy

import "github.com/cwbudde/algo-wavelet/dsp/wavelet/haar"

// BandEnergy is the energy held by one band of a Haar decomposition.
type BandEnergy struct {
	haar.Band
	Energy   float64
	Fraction float64
}

// BandEnergies splits the energy of depth-level Haar coefficients by band,
// in [haar.Layout] order. Fractions are 0 when the total energy is 0.
func BandEnergies(coeffs []float64, depth int) ([]BandEnergy, error) {
	bands, err := haar.Layout(len(coeffs), depth)
	if err != nil {
		return nil, err
	}

	total := Energy(coeffs)
	out := make([]BandEnergy, len(bands))
	for i, b := range bands {
		e := Energy(b.Of(coeffs))
		out[i] = BandEnergy{Band: b, Energy: e}
		if total > 0 {
			out[i].Fraction = e / total
		}
	}
	return out, nil
}
