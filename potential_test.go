package fibril

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPotentialSingleCharge(t *testing.T) {
	charges := []PointCharge{{Position: r3.Vec{}, Charge: 1, Radius: 2}}
	for _, d := range []float64{1, 2.5, 100, 1e4} {
		pot, err := Potential(charges, r3.Vec{X: d})
		require.NoError(t, err)
		assert.InEpsilon(t, BjerrumVacuum/d, pot, 1e-12, "distance %g", d)
	}
	//a caller-supplied Bjerrum length scales the whole sum
	pot, err := Potential(charges, r3.Vec{Y: 2}, 7.1)
	require.NoError(t, err)
	assert.InEpsilon(t, 7.1/2, pot, 1e-12)
}

func TestPotentialEmpty(t *testing.T) {
	pot, err := Potential(nil, r3.Vec{X: 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, pot)
}

func TestPotentialSuperposition(t *testing.T) {
	charges := []PointCharge{
		{Position: r3.Vec{X: -3}, Charge: 2},
		{Position: r3.Vec{X: 3}, Charge: -2},
	}
	//by symmetry the midpoint potential vanishes
	pot, err := Potential(charges, r3.Vec{})
	require.NoError(t, err)
	assert.InDelta(t, 0, pot, 1e-12)

	pot, err = Potential(charges, r3.Vec{X: 4})
	require.NoError(t, err)
	assert.InEpsilon(t, BjerrumVacuum*(2.0/7-2.0/1), pot, 1e-12)
}

func TestPotentialSingularity(t *testing.T) {
	charges := []PointCharge{
		{Position: r3.Vec{X: 5}, Charge: 1},
		{Position: r3.Vec{X: 7, Y: 1}, Charge: -1},
	}
	_, err := Potential(charges, r3.Vec{X: 7, Y: 1})
	require.Error(t, err)
	assert.True(t, IsDomain(err), "got %v", err)
}

func TestPotentialDipoleFarField(t *testing.T) {
	//far from a neutral dipole bead the potential decays like 1/r^2
	recs, err := DipoleBead(r3.Vec{}, r3.Vec{X: 1}, 0, 15, 150, 10)
	require.NoError(t, err)
	near, err := Potential(recs, r3.Vec{X: 1e3})
	require.NoError(t, err)
	far, err := Potential(recs, r3.Vec{X: 2e3})
	require.NoError(t, err)
	assert.InEpsilon(t, 4.0, near/far, 1e-4)
}
