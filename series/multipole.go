package series

import (
	"encoding/json"
	"fmt"
	"os"
)

//The engine's structured result file is a JSON document with an "analysis"
//list of single-key entries, one per analysis hook that ran. The multipole
//entry nests per-molecule moments under molecules.<name>.

type multipoleEntry struct {
	Molecules map[string]struct {
		Mu     float64 `json:"μ"`
		MuSq   float64 `json:"μ²"`
		Charge float64 `json:"Z"`
	} `json:"molecules"`
}

// ReadMultipole reads the engine's JSON result file at path and returns the
// bare per-molecule dipole moment μ, in Debye, recorded by the multipole
// analysis for the named molecule. A missing file, a missing multipole entry
// or an unknown molecule name is an error identifying exactly what was
// absent.
func ReadMultipole(path, molecule string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, Error{err.Error(), path, IO, []string{"ReadMultipole"}}
	}
	defer f.Close()
	var doc struct {
		Analysis []map[string]json.RawMessage `json:"analysis"`
	}
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return 0, Error{err.Error(), path, Format, []string{"ReadMultipole"}}
	}
	if doc.Analysis == nil {
		return 0, Error{"no analysis list in document", path, Format, []string{"ReadMultipole"}}
	}
	for _, entry := range doc.Analysis {
		raw, ok := entry["multipole"]
		if !ok {
			continue
		}
		var mp multipoleEntry
		if err := json.Unmarshal(raw, &mp); err != nil {
			return 0, Error{fmt.Sprintf("ill-formed multipole entry: %v", err), path, Format, []string{"ReadMultipole"}}
		}
		mol, ok := mp.Molecules[molecule]
		if !ok {
			return 0, Error{fmt.Sprintf("no molecule %q in multipole entry", molecule), path, Format, []string{"ReadMultipole"}}
		}
		return mol.Mu, nil
	}
	return 0, Error{"no multipole entry in analysis list", path, Format, []string{"ReadMultipole"}}
}
