// Package mcconfig models the declarative configuration files consumed by
// the external Monte Carlo engine: atom and molecule definitions, the move
// set, and the analysis hooks whose output the series package reads back.
// The engine itself is an external tool; this package only builds, checks
// and serializes its input.
package mcconfig

import (
	"bufio"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AtomDef defines one atom type: its charge in elementary charges, its
// diameter sigma in Angstrom and, optionally, an explicit point dipole in
// Debye.
type AtomDef struct {
	Name   string  `yaml:"name"`
	Charge float64 `yaml:"q"`
	Sigma  float64 `yaml:"sigma"`
	Dipole float64 `yaml:"mu,omitempty"`
}

// MoleculeDef defines a molecule as an ordered list of atom types.
type MoleculeDef struct {
	Name  string   `yaml:"name"`
	Atoms []string `yaml:"atoms"`
	//Rigid molecules keep their internal geometry; the engine only
	//translates and rotates them as a whole.
	Rigid bool `yaml:"rigid,omitempty"`
	//Structure optionally points at a PQR file with the starting geometry.
	Structure string `yaml:"structure,omitempty"`
}

// InsertDef tells the engine how many copies of a molecule to place in the
// cell before sampling starts.
type InsertDef struct {
	Molecule string `yaml:"molecule"`
	N        int    `yaml:"N"`
}

// MoveDef defines one Monte Carlo move. Dp and Dprot are the translational
// and rotational displacement parameters; Repeat is the number of attempts
// per sweep.
type MoveDef struct {
	Name     string  `yaml:"name"`
	Molecule string  `yaml:"molecule,omitempty"`
	Dp       float64 `yaml:"dp,omitempty"`
	Dprot    float64 `yaml:"dprot,omitempty"`
	Repeat   int     `yaml:"repeat,omitempty"`
}

// AnalysisDef defines one analysis hook and how often it samples. File is
// the output file the hook writes, when it writes one.
type AnalysisDef struct {
	Name  string `yaml:"name"`
	Nstep int    `yaml:"nstep"`
	File  string `yaml:"file,omitempty"`
}

// Geometry defines the simulation cell.
type Geometry struct {
	Type   string  `yaml:"type"` //cuboid or cylinder
	Length float64 `yaml:"length,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
}

// Config is the full engine input. It can be instanced through New or by
// hand; when built by hand, use Check to verify it meets the engine's
// requirements before writing it out.
type Config struct {
	Temperature float64       `yaml:"temperature"` //in Kelvin
	Geometry    Geometry      `yaml:"geometry"`
	Atoms       []AtomDef     `yaml:"atomlist"`
	Molecules   []MoleculeDef `yaml:"moleculelist"`
	Insert      []InsertDef   `yaml:"insertmolecules"`
	Moves       []MoveDef     `yaml:"moves"`
	Analysis    []AnalysisDef `yaml:"analysis"`
}

// New opens and decodes the specified YAML configuration file and checks
// its integrity.
func New(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	dec := yaml.NewDecoder(bufio.NewReader(f))
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return &c, nil
}

// Check checks whether the configuration is internally consistent. It
// returns an error naming the first field that does not meet the
// requirements.
func (c *Config) Check() error {
	if c.Temperature <= 0 {
		return fmt.Errorf("temperature must be positive, got %g", c.Temperature)
	}
	switch c.Geometry.Type {
	case "cuboid":
		if c.Geometry.Length <= 0 {
			return fmt.Errorf("cuboid geometry needs a positive length")
		}
	case "cylinder":
		if c.Geometry.Length <= 0 || c.Geometry.Radius <= 0 {
			return fmt.Errorf("cylinder geometry needs a positive length and radius")
		}
	default:
		return fmt.Errorf("unknown geometry type %q", c.Geometry.Type)
	}
	atoms := make(map[string]bool, len(c.Atoms))
	for _, a := range c.Atoms {
		if a.Name == "" {
			return fmt.Errorf("atom definition without a name")
		}
		if atoms[a.Name] {
			return fmt.Errorf("duplicate atom definition %q", a.Name)
		}
		if a.Sigma <= 0 {
			return fmt.Errorf("atom %q: sigma must be positive, got %g", a.Name, a.Sigma)
		}
		atoms[a.Name] = true
	}
	molecules := make(map[string]bool, len(c.Molecules))
	for _, m := range c.Molecules {
		if m.Name == "" {
			return fmt.Errorf("molecule definition without a name")
		}
		if molecules[m.Name] {
			return fmt.Errorf("duplicate molecule definition %q", m.Name)
		}
		if len(m.Atoms) == 0 {
			return fmt.Errorf("molecule %q has no atoms", m.Name)
		}
		for _, a := range m.Atoms {
			if !atoms[a] {
				return fmt.Errorf("molecule %q references undefined atom %q", m.Name, a)
			}
		}
		molecules[m.Name] = true
	}
	for _, ins := range c.Insert {
		if !molecules[ins.Molecule] {
			return fmt.Errorf("insertion of undefined molecule %q", ins.Molecule)
		}
		if ins.N < 0 {
			return fmt.Errorf("molecule %q: insertion count must not be negative, got %d", ins.Molecule, ins.N)
		}
	}
	for _, mv := range c.Moves {
		if mv.Name == "" {
			return fmt.Errorf("move definition without a name")
		}
		if mv.Molecule != "" && !molecules[mv.Molecule] {
			return fmt.Errorf("move %q acts on undefined molecule %q", mv.Name, mv.Molecule)
		}
	}
	for _, an := range c.Analysis {
		if an.Name == "" {
			return fmt.Errorf("analysis definition without a name")
		}
		if an.Nstep <= 0 {
			return fmt.Errorf("analysis %q: nstep must be positive, got %d", an.Name, an.Nstep)
		}
	}
	return nil
}

// Write checks the configuration and serializes it as YAML to the file
// path, which is created, or truncated if it exists.
func (c *Config) Write(path string) error {
	if err := c.Check(); err != nil {
		return fmt.Errorf("Check: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return w.Flush()
}
