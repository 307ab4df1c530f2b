package mcconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateIsValid(t *testing.T) {
	require.NoError(t, Template().Check())
}

func TestWriteThenNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fibril.yml")
	require.NoError(t, Template().Write(path))

	c, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, 298.15, c.Temperature)
	assert.Equal(t, "cylinder", c.Geometry.Type)
	require.Len(t, c.Molecules, 1)
	assert.Equal(t, []string{"MP", "DP", "DN"}, c.Molecules[0].Atoms)
	require.Len(t, c.Insert, 1)
	assert.Equal(t, 5, c.Insert[0].N)
}

func TestNewRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("temperature: [not a number\n"), 0o644))
	_, err := New(path)
	assert.Error(t, err)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	cases := []struct {
		name   string
		mangle func(*Config)
		want   string
	}{
		{"negative temperature", func(c *Config) { c.Temperature = -1 }, "temperature"},
		{"unknown geometry", func(c *Config) { c.Geometry.Type = "sphere" }, "geometry"},
		{"cylinder without radius", func(c *Config) { c.Geometry.Radius = 0 }, "radius"},
		{"duplicate atom", func(c *Config) { c.Atoms = append(c.Atoms, AtomDef{Name: "MP", Sigma: 1}) }, "duplicate"},
		{"zero sigma", func(c *Config) { c.Atoms[0].Sigma = 0 }, "sigma"},
		{"undefined atom in molecule", func(c *Config) { c.Molecules[0].Atoms = []string{"XX"} }, `"XX"`},
		{"empty molecule", func(c *Config) { c.Molecules[0].Atoms = nil }, "no atoms"},
		{"insert undefined molecule", func(c *Config) { c.Insert[0].Molecule = "dna" }, `"dna"`},
		{"negative insert count", func(c *Config) { c.Insert[0].N = -2 }, "negative"},
		{"move on undefined molecule", func(c *Config) { c.Moves[0].Molecule = "dna" }, `"dna"`},
		{"analysis without nstep", func(c *Config) { c.Analysis[0].Nstep = 0 }, "nstep"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Template()
			tc.mangle(c)
			err := c.Check()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestWriteRefusesInvalid(t *testing.T) {
	c := Template()
	c.Temperature = 0
	err := c.Write(filepath.Join(t.TempDir(), "bad.yml"))
	assert.Error(t, err)
}
