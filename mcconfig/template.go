package mcconfig

// Template returns a ready-to-edit configuration for a dipolar fibril run:
// five rigid three-site proteins in a cylindrical cell, whole-molecule
// translation/rotation moves and the analysis hooks whose output the series
// package consumes.
func Template() *Config {
	return &Config{
		Temperature: 298.15,
		Geometry:    Geometry{Type: "cylinder", Length: 500, Radius: 80},
		Atoms: []AtomDef{
			{Name: "MP", Charge: -5, Sigma: 30},
			{Name: "DP", Charge: 10, Sigma: 2},
			{Name: "DN", Charge: -10, Sigma: 2},
		},
		Molecules: []MoleculeDef{
			{Name: "protein", Atoms: []string{"MP", "DP", "DN"}, Rigid: true, Structure: "protein.pqr"},
		},
		Insert: []InsertDef{
			{Molecule: "protein", N: 5},
		},
		Moves: []MoveDef{
			{Name: "moltransrot", Molecule: "protein", Dp: 10, Dprot: 0.5, Repeat: 5},
		},
		Analysis: []AnalysisDef{
			{Name: "multipole", Nstep: 20},
			{Name: "systemdipole", Nstep: 20, File: "dipole.dat.gz"},
			{Name: "celllength", Nstep: 100, File: "length.dat.gz"},
		},
	}
}
