// Package fibrilplot renders the quantities computed by the series package
// as PNG figures: binned distributions and per-step traces.
package fibrilplot

import (
	"fmt"
	"image/color"

	"github.com/mlund/dipolar-fibrils/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram plots the binned data in d as a step line, one point per bin
// center, and saves it to filename (the extension selects the format, e.g.
// .png).
func Histogram(d *histo.Data, title, xlabel, filename string) error {
	if d == nil {
		return fmt.Errorf("fibrilplot: given a nil histogram")
	}
	dividers := d.CopyDividers()
	counts := d.Copy()
	pts := make(plotter.XYs, len(counts))
	for i, v := range counts {
		pts[i].X = (dividers[i] + dividers[i+1]) / 2
		pts[i].Y = v
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "P"
	p.Add(plotter.NewGrid())
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.StepStyle = plotter.MidStep
	l.Color = color.RGBA{B: 255, A: 255}
	p.Add(l)
	return p.Save(12*vg.Centimeter, 9*vg.Centimeter, filename)
}

// Series plots ys against xs as a line and saves it to filename. The two
// slices must have the same length.
func Series(xs, ys []float64, title, xlabel, ylabel, filename string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("fibrilplot: x and y series of unequal length: %d, %d", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Color = color.RGBA{R: 255, A: 255}
	p.Add(l)
	return p.Save(12*vg.Centimeter, 9*vg.Centimeter, filename)
}
