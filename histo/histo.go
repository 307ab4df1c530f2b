// Package histo provides a simple binned histogram for the distributional
// reporting done by the analysis code, such as fibril length distributions.
package histo

import (
	"encoding/json"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a one-dimensional histogram. The dividers slice holds the bin
// edges, so there is one more divider than there are bins. Values outside
// [dividers[0], dividers[len-1]) are silently omitted when added.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	counts     []float64
}

// NewData returns a new histogram with the given bin dividers. rawdata can
// be nil, in which case an empty histogram is created. It returns an error
// if fewer than two dividers are given or if they are not strictly
// increasing.
func NewData(dividers []float64, rawdata []float64) (*Data, error) {
	if len(dividers) < 2 {
		return nil, fmt.Errorf("histo: need at least 2 dividers, got %d", len(dividers))
	}
	for i := 1; i < len(dividers); i++ {
		if dividers[i] <= dividers[i-1] {
			return nil, fmt.Errorf("histo: dividers not strictly increasing at index %d", i)
		}
	}
	d := new(Data)
	//copy so nobody can change the dividers from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.counts = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.AddData(rawdata...)
	}
	return d, nil
}

// NewUniform returns a new histogram with bins equal-width bins spanning
// [min, max). rawdata can be nil.
func NewUniform(min, max float64, bins int, rawdata []float64) (*Data, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("histo: need a positive number of bins, got %d", bins)
	}
	if max <= min {
		return nil, fmt.Errorf("histo: empty range [%g, %g)", min, max)
	}
	dividers := make([]float64, bins+1)
	floats.Span(dividers, min, max)
	return NewData(dividers, rawdata)
}

// AddData adds the given data point(s) to the histogram.
func (d *Data) AddData(points ...float64) {
	norma := d.normalized
	if norma {
		d.UnNormalize()
	}
	for _, v := range points {
		for j := 0; j < len(d.dividers)-1; j++ {
			if d.dividers[j] <= v && v < d.dividers[j+1] {
				d.counts[j]++
				break
			}
		}
	}
	d.total += len(points)
	if norma {
		d.Normalize()
	}
}

// Bins returns the number of bins in the histogram.
func (d *Data) Bins() int {
	return len(d.counts)
}

// Total returns the number of data points added so far, including any that
// fell outside the histogram range.
func (d *Data) Total() int {
	return d.total
}

// Normalized returns true if the histogram is normalized.
func (d *Data) Normalized() bool {
	return d.normalized
}

// Normalize scales the counts so they sum to one.
func (d *Data) Normalize() {
	d.normaUnnorma(true)
}

// UnNormalize restores raw counts on a normalized histogram.
func (d *Data) UnNormalize() {
	d.normaUnnorma(false)
}

func (d *Data) normaUnnorma(normalize bool) {
	if d.total <= 0 || d.normalized == normalize {
		return
	}
	n := float64(d.total)
	d.normalized = false
	if normalize {
		n = 1 / float64(d.total)
		d.normalized = true
	}
	floats.Scale(n, d.counts)
}

// Mean returns the histogram mean estimated from bin centers weighted by
// counts.
func (d *Data) Mean() float64 {
	centers := make([]float64, len(d.counts))
	for i := range centers {
		centers[i] = (d.dividers[i] + d.dividers[i+1]) / 2
	}
	return stat.Mean(centers, d.counts)
}

// CopyDividers returns a copy of the bin dividers.
func (d *Data) CopyDividers() []float64 {
	ret := make([]float64, len(d.dividers))
	copy(ret, d.dividers)
	return ret
}

// Copy returns a copy of the bin counts.
func (d *Data) Copy() []float64 {
	ret := make([]float64, len(d.counts))
	copy(ret, d.counts)
	return ret
}

// View returns the bin counts themselves, not a copy.
func (d *Data) View() []float64 {
	return d.counts
}

// String prints a -hopefully- pretty two-line representation of the
// histogram: bin ranges on top, counts below.
func (d *Data) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", d.normalized, d.total)
	ranges := make([]string, 0, len(d.counts))
	counts := make([]string, 0, len(d.counts))
	for i, v := range d.counts {
		ranges = append(ranges, fmt.Sprintf("%4.2f-%4.2f", d.dividers[i], d.dividers[i+1]))
		counts = append(counts, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(ranges, " "), strings.Join(counts, " "))
}

func (d *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Counts     []float64 `json:"counts"`
	}{
		Normalized: d.normalized,
		Total:      d.total,
		Dividers:   d.dividers,
		Counts:     d.counts,
	})
}

func (d *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Counts     []float64 `json:"counts"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	d.normalized = a.Normalized
	d.total = a.Total
	d.dividers = a.Dividers
	d.counts = a.Counts
	return nil
}
