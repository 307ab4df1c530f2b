package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	fibril "github.com/mlund/dipolar-fibrils"
	"github.com/mlund/dipolar-fibrils/fibrilplot"
	"github.com/mlund/dipolar-fibrils/mcconfig"
	"github.com/mlund/dipolar-fibrils/series"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// generate
	nbeads int
	radius float64
	charge float64
	dipole float64
	fict   float64
	mode   string
	start  string
	axis   string
	out    string
	// potential
	pqrFile string
	at      string
	bjerrum float64
	// analyze
	muFile     string
	xFile      string
	yFile      string
	zFile      string
	lengthFile string
	column     int
	nprot      int
	bins       int
	bare       float64
	plotFile   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fibril",
		Short: "generate dipolar fibril structures and analyze MC simulation output",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "build a linear fibril of charged beads and write it in PQR format",
		RunE:  runGenerate,
	}
	generateCmd.Flags().IntVar(&nbeads, "n", 10, "number of beads")
	generateCmd.Flags().Float64Var(&radius, "radius", 15, "bead radius in Angstrom")
	generateCmd.Flags().Float64Var(&charge, "charge", 0, "net charge per bead in elementary charges")
	generateCmd.Flags().Float64Var(&dipole, "dipole", 150, "dipole moment per bead in Debye")
	generateCmd.Flags().Float64Var(&fict, "fict", 10, "magnitude of the auxiliary dipole charges")
	generateCmd.Flags().StringVar(&mode, "mode", "dipole", "bead mode: monopole or dipole")
	generateCmd.Flags().StringVar(&start, "start", "0,0,0", "position of the first bead center")
	generateCmd.Flags().StringVar(&axis, "axis", "1,0,0", "fibril growth direction")
	generateCmd.Flags().StringVarP(&out, "out", "o", "fibril.pqr", "output file")

	potentialCmd := &cobra.Command{
		Use:   "potential",
		Short: "evaluate the electrostatic potential of a PQR structure at a point",
		RunE:  runPotential,
	}
	potentialCmd.Flags().StringVar(&pqrFile, "pqr", "", "input PQR file (required)")
	potentialCmd.Flags().StringVar(&at, "at", "0,0,0", "target point")
	potentialCmd.Flags().Float64Var(&bjerrum, "bjerrum", fibril.BjerrumVacuum, "Bjerrum length in Angstrom")
	potentialCmd.MarkFlagRequired("pqr")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "reduce simulation output series to dipole, alignment and length statistics",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVar(&muFile, "mu", "", "JSON result file with the multipole analysis")
	analyzeCmd.Flags().StringVar(&xFile, "x", "", "x dipole component series file")
	analyzeCmd.Flags().StringVar(&yFile, "y", "", "y dipole component series file")
	analyzeCmd.Flags().StringVar(&zFile, "z", "", "z dipole component series file")
	analyzeCmd.Flags().StringVar(&lengthFile, "length", "", "cell length series file")
	analyzeCmd.Flags().IntVar(&column, "column", 2, "zero-based data column in the series files")
	analyzeCmd.Flags().IntVar(&nprot, "nprot", 1, "number of proteins in the cell")
	analyzeCmd.Flags().IntVar(&bins, "bins", 30, "number of histogram bins")
	analyzeCmd.Flags().Float64Var(&bare, "bare", 0, "bare single-protein dipole in Debye, for the reduction factor")
	analyzeCmd.Flags().StringVar(&plotFile, "plot", "", "write the length histogram to this PNG file")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage MC engine configuration files",
	}
	configCheckCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := mcconfig.New(args[0]); err != nil {
				return err
			}
			fmt.Printf("%s: ok\n", args[0])
			return nil
		},
	}
	configInitCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write a template configuration for a dipolar fibril run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcconfig.Template().Write(args[0])
		},
	}
	configCmd.AddCommand(configCheckCmd, configInitCmd)

	rootCmd.AddCommand(generateCmd, potentialCmd, analyzeCmd, configCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var m fibril.Mode
	switch mode {
	case "monopole":
		m = fibril.Monopole
	case "dipole":
		m = fibril.Dipole
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	origin, err := parseVec(start)
	if err != nil {
		return err
	}
	dir, err := parseVec(axis)
	if err != nil {
		return err
	}
	charges, err := fibril.Chain(nbeads, origin, dir, m, charge, radius, dipole, fict)
	if err != nil {
		return err
	}
	if err := fibril.PQRWriteFile(out, charges); err != nil {
		return err
	}
	mu := r3.Norm(fibril.NetDipole(charges, origin)) / fibril.Debye
	fmt.Printf("wrote %d records to %s (net charge %.2f e, net dipole %.1f D about the first bead)\n",
		len(charges), out, fibril.NetCharge(charges), mu)
	return nil
}

func runPotential(cmd *cobra.Command, args []string) error {
	charges, err := fibril.PQRReadFile(pqrFile)
	if err != nil {
		return err
	}
	target, err := parseVec(at)
	if err != nil {
		return err
	}
	pot, err := fibril.Potential(charges, target, bjerrum)
	if err != nil {
		return err
	}
	fmt.Printf("%d charges, potential at (%g %g %g) = %.6f kT/e\n",
		len(charges), target.X, target.Y, target.Z, pot)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	did := false
	if muFile != "" {
		total, err := series.ReadMultipole(muFile, "protein")
		if err != nil {
			return err
		}
		mean, err := series.MeanDipole(total, nprot)
		if err != nil {
			return err
		}
		fmt.Printf("system dipole %.1f D, %.1f D per protein\n", total, mean)
		if bare != 0 {
			ratio, err := series.DipoleRatio(mean, bare)
			if err != nil {
				return err
			}
			fmt.Printf("reduction factor vs bare %.1f D: %.2f\n", bare, ratio)
		}
		did = true
	}
	if xFile != "" || yFile != "" || zFile != "" {
		if xFile == "" || yFile == "" || zFile == "" {
			return fmt.Errorf("alignment needs all three of -x, -y and -z")
		}
		x, err := series.ReadColumn(xFile, column)
		if err != nil {
			return err
		}
		y, err := series.ReadColumn(yFile, column)
		if err != nil {
			return err
		}
		z, err := series.ReadColumn(zFile, column)
		if err != nil {
			return err
		}
		a, err := series.Alignment(x, y, z)
		if err != nil {
			return err
		}
		fmt.Printf("alignment <u_i^2> = (%.4f %.4f %.4f) over %d samples\n", a[0], a[1], a[2], len(x))
		did = true
	}
	if lengthFile != "" {
		lengths, err := series.ReadColumn(lengthFile, column)
		if err != nil {
			return err
		}
		h, err := series.LengthHistogram(lengths, nprot, bins)
		if err != nil {
			return err
		}
		h.Normalize()
		fmt.Printf("length per protein, %d samples, mean %.2f A\n%s\n", h.Total(), h.Mean(), h.String())
		if plotFile != "" {
			if err := fibrilplot.Histogram(h, "Length per protein", "L/N (A)", plotFile); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", plotFile)
		}
		did = true
	}
	if !did {
		return fmt.Errorf("nothing to do: give at least one of -mu, -x/-y/-z or -length")
	}
	return nil
}

// parseVec parses a comma-separated "x,y,z" triple.
func parseVec(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("bad component %q in %q", p, s)
		}
		v[i] = f
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}
