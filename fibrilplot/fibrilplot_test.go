package fibrilplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mlund/dipolar-fibrils/histo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	d, err := histo.NewUniform(0, 10, 5, []float64{1, 2, 2, 5, 7, 9})
	require.NoError(t, err)
	d.Normalize()
	name := filepath.Join(t.TempDir(), "hist.png")
	require.NoError(t, Histogram(d, "Length per protein", "L/N (A)", name))
	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHistogramNil(t *testing.T) {
	assert.Error(t, Histogram(nil, "", "", "x.png"))
}

func TestSeries(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 0.5, 0.25, 0.125}
	name := filepath.Join(t.TempDir(), "series.png")
	require.NoError(t, Series(xs, ys, "decay", "step", "value", name))
	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSeriesLengthMismatch(t *testing.T) {
	assert.Error(t, Series([]float64{1}, []float64{1, 2}, "", "", "", "x.png"))
}
