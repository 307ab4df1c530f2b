package fibril

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestDipoleBeadScenario(t *testing.T) {
	//radius 15 A, 150 D, fictitious charge 10 -> displacement 1.5614... A
	pos := r3.Vec{X: 10, Y: -3, Z: 2}
	recs, err := DipoleBead(pos, r3.Vec{X: 1}, -5, 15, 150, 10)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	want := Debye * 150 / (2 * 10)
	assert.InDelta(t, 1.5614, want, 1e-4)
	assert.Equal(t, pos, recs[0].Position)
	assert.InDelta(t, pos.X+want, recs[1].Position.X, 1e-12)
	assert.InDelta(t, pos.X-want, recs[2].Position.X, 1e-12)
	assert.Equal(t, pos.Y, recs[1].Position.Y)
	assert.Equal(t, pos.Z, recs[2].Position.Z)

	assert.Equal(t, -5.0, recs[0].Charge)
	assert.Equal(t, 15.0, recs[0].Radius)
	assert.Equal(t, 10.0, recs[1].Charge)
	assert.Equal(t, -10.0, recs[2].Charge)
	assert.Equal(t, 1.0, recs[1].Radius)
	assert.Equal(t, 1.0, recs[2].Radius)

	//the bead monopole must not contribute to the dipole about its center
	assert.InDelta(t, -5.0, NetCharge(recs), 1e-12)
}

func TestDipoleBeadRecoversMoment(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dirs := []r3.Vec{
		{X: 1}, {Y: 1}, {Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: -0.3, Y: 0.9, Z: 0.1},
	}
	for i := 0; i < 20; i++ {
		dirs = append(dirs, r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()})
	}
	for _, mu := range []float64{1, 10, 150, 385, 1000} {
		for _, dir := range dirs {
			recs, err := DipoleBead(r3.Vec{}, dir, 0, 50, mu, 20)
			require.NoError(t, err)
			got := r3.Norm(NetDipole(recs, r3.Vec{})) / Debye
			assert.InEpsilon(t, mu, got, 1e-9, "dipole %g D along (%g %g %g)", mu, dir.X, dir.Y, dir.Z)
		}
	}
}

func TestDipoleBeadDirectionNotPrenormalized(t *testing.T) {
	long := r3.Vec{X: 0, Y: 123.4, Z: 0}
	recs, err := DipoleBead(r3.Vec{}, long, 0, 15, 150, 10)
	require.NoError(t, err)
	want := Debye * 150 / 20
	assert.InDelta(t, want, recs[1].Position.Y, 1e-12)
	assert.InDelta(t, -want, recs[2].Position.Y, 1e-12)
}

func TestDipoleBeadRejectsProtrudingCharges(t *testing.T) {
	//displacement 0.2081943*1000/(2*0.1) = 1040 A >> radius
	recs, err := DipoleBead(r3.Vec{}, r3.Vec{X: 1}, 0, 15, 1000, 0.1)
	require.Error(t, err)
	assert.True(t, IsConfiguration(err), "got %v", err)
	assert.Nil(t, recs, "no records may be emitted on configuration errors")

	_, err = DipoleBead(r3.Vec{}, r3.Vec{X: 1}, 0, 15, 150, -1)
	assert.True(t, IsConfiguration(err))

	_, err = DipoleBead(r3.Vec{}, r3.Vec{}, 0, 15, 150, 10)
	assert.True(t, IsConfiguration(err))
}

func TestChainEmpty(t *testing.T) {
	recs, err := Chain(0, r3.Vec{}, r3.Vec{X: 1}, Dipole, 0, 15, 150, 10)
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = Chain(-1, r3.Vec{}, r3.Vec{X: 1}, Dipole, 0, 15, 150, 10)
	assert.True(t, IsConfiguration(err))
}

func TestChainMonopole(t *testing.T) {
	const n = 7
	const radius = 12.5
	start := r3.Vec{X: 1, Y: 2, Z: 3}
	recs, err := Chain(n, start, r3.Vec{Z: -2}, Monopole, -5, radius, 0, 0)
	require.NoError(t, err)
	require.Len(t, recs, n)
	for i, c := range recs {
		assert.Equal(t, i+1, c.Molid)
		assert.Equal(t, -5.0, c.Charge)
		assert.Equal(t, radius, c.Radius)
	}
	//consecutive centers tangent: separation exactly 2*radius
	for i := 1; i < n; i++ {
		sep := r3.Norm(r3.Sub(recs[i].Position, recs[i-1].Position))
		assert.InDelta(t, 2*radius, sep, 1e-9)
		assert.Equal(t, start.X, recs[i].Position.X)
		assert.Equal(t, start.Y, recs[i].Position.Y)
	}
}

func TestChainDipole(t *testing.T) {
	const n = 5
	const radius = 15.0
	recs, err := Chain(n, r3.Vec{}, r3.Vec{X: 1}, Dipole, -5, radius, 150, 10)
	require.NoError(t, err)
	require.Len(t, recs, 3*n)
	//every bead's dipole points along the chain axis
	for i := 0; i < n; i++ {
		bead := recs[3*i : 3*i+3]
		assert.Equal(t, BeadName, bead[0].Name)
		assert.Equal(t, i+1, bead[0].Molid)
		mu := NetDipole(bead, bead[0].Position)
		assert.Greater(t, mu.X, 0.0)
		assert.InDelta(t, 0, mu.Y, 1e-12)
		assert.InDelta(t, 0, mu.Z, 1e-12)
	}
	//centers at 0, 30, 60, ...
	for i := 0; i < n; i++ {
		assert.InDelta(t, float64(i)*2*radius, recs[3*i].Position.X, 1e-9)
	}
	//for a neutral chain the total moment is additive over beads
	neutral, err := Chain(n, r3.Vec{}, r3.Vec{X: 1}, Dipole, 0, radius, 150, 10)
	require.NoError(t, err)
	total := r3.Norm(NetDipole(neutral, r3.Vec{}))
	assert.InEpsilon(t, float64(n)*150*Debye, total, 1e-9)
}

func TestChainDeterministic(t *testing.T) {
	a, err := Chain(4, r3.Vec{}, r3.Vec{X: 1, Y: 1}, Dipole, 1, 10, 50, 5)
	require.NoError(t, err)
	b, err := Chain(4, r3.Vec{}, r3.Vec{X: 1, Y: 1}, Dipole, 1, 10, 50, 5)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "monopole", Monopole.String())
	assert.Equal(t, "dipole", Dipole.String())
}

func TestDebyeConstant(t *testing.T) {
	//the conversion factor is used bidirectionally, so a round trip must be exact
	mu := 385.0
	assert.Equal(t, mu, mu*Debye/Debye)
	assert.InDelta(t, 0.2081943, Debye, 1e-12)
	assert.False(t, math.Signbit(Debye))
}
