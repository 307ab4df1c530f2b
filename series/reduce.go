package series

import (
	"fmt"
	"math"

	"github.com/mlund/dipolar-fibrils/histo"
	"gonum.org/v1/gonum/floats"
)

// MeanDipole returns the effective per-monomer dipole moment given the
// system total and the number of proteins in the cell.
func MeanDipole(total float64, nprot int) (float64, error) {
	if nprot <= 0 {
		return 0, Error{fmt.Sprintf("need a positive protein count, got %d", nprot), "", Domain, []string{"MeanDipole"}}
	}
	return total / float64(nprot), nil
}

// DipoleRatio returns the reduction factor bare/effective, i.e. how much the
// simulation environment (counter-ions, neighboring monomers) screens the
// bare single-protein dipole moment.
func DipoleRatio(effective, bare float64) (float64, error) {
	if effective == 0 {
		return 0, Error{"effective dipole moment is zero", "", Domain, []string{"DipoleRatio"}}
	}
	return bare / effective, nil
}

// Alignment reduces three synchronized per-step dipole component series to
// the orientation alignment vector: each sample is normalized to a unit
// vector and the squared components are averaged independently per axis.
// The three entries of the result sum to one. Values near 1/3 everywhere
// mean isotropic orientation; a value near one on an axis means full
// alignment along it.
//
// The component files are written by the same engine run, so unequal series
// lengths mean mismatched inputs and are rejected rather than truncated.
// A zero-magnitude sample cannot be normalized and is likewise an error.
func Alignment(x, y, z []float64) ([3]float64, error) {
	var ret [3]float64
	if len(x) != len(y) || len(x) != len(z) {
		return ret, Error{fmt.Sprintf("component series of unequal length: %d, %d, %d", len(x), len(y), len(z)), "", Format, []string{"Alignment"}}
	}
	if len(x) == 0 {
		return ret, Error{"empty component series", "", Format, []string{"Alignment"}}
	}
	for i := range x {
		n2 := x[i]*x[i] + y[i]*y[i] + z[i]*z[i]
		if n2 == 0 {
			return ret, Error{fmt.Sprintf("sample %d has zero magnitude", i), "", Domain, []string{"Alignment"}}
		}
		ret[0] += x[i] * x[i] / n2
		ret[1] += y[i] * y[i] / n2
		ret[2] += z[i] * z[i] / n2
	}
	n := float64(len(x))
	ret[0] /= n
	ret[1] /= n
	ret[2] /= n
	return ret, nil
}

// LengthHistogram normalizes a raw cell-length series by the protein count
// and bins it into bins equal-width bins spanning the sample range, for
// distributional reporting of the length per monomer. A series where every
// sample is identical has no distribution to report and is rejected.
func LengthHistogram(lengths []float64, nprot, bins int) (*histo.Data, error) {
	if nprot <= 0 {
		return nil, Error{fmt.Sprintf("need a positive protein count, got %d", nprot), "", Domain, []string{"LengthHistogram"}}
	}
	if len(lengths) == 0 {
		return nil, Error{"empty length series", "", Format, []string{"LengthHistogram"}}
	}
	scaled := make([]float64, len(lengths))
	for i, v := range lengths {
		scaled[i] = v / float64(nprot)
	}
	lo := floats.Min(scaled)
	hi := floats.Max(scaled)
	if lo == hi {
		return nil, Error{fmt.Sprintf("degenerate length series: all samples equal %g", lo), "", Domain, []string{"LengthHistogram"}}
	}
	//nudge the upper edge so the largest sample lands in the last bin
	//instead of just outside it.
	hi = math.Nextafter(hi, math.Inf(1))
	h, err := histo.NewUniform(lo, hi, bins, scaled)
	if err != nil {
		return nil, Error{err.Error(), "", Format, []string{"LengthHistogram"}}
	}
	return h, nil
}
