package compare_test

import (
	"math"
	"testing"

	"github.com/mirkomartn/pim-book/compare"
	"github.com/mirkomartn/pim-book/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(xs, ys []float64) []interp.Point[float64] {
	out := make([]interp.Point[float64], len(xs))
	for i := range xs {
		out[i] = interp.Point[float64]{X: xs[i], Y: ys[i]}
	}
	return out
}

// TestPoints_Statistics checks counting and the error summary.
func TestPoints_Statistics(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	truth := pts(xs, []float64{0, 0, 0, 0})
	got := pts(xs, []float64{1, -2, 3, -4})

	rep, err := compare.Points(truth, got, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Total)
	assert.Equal(t, 2, rep.Mismatches, "|3| and |-4| exceed 2.5")
	assert.Zero(t, rep.NonFinite)
	assert.Equal(t, 4.0, rep.MaxAbsError)
	assert.InDelta(t, 2.5, rep.MeanAbsError, 1e-12)
	assert.InDelta(t, 2.5, rep.MedianAbsError, 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), rep.StdDevAbsError, 1e-12)
}

// TestPoints_ToleranceIsStrict checks |Δy| == tol is not a mismatch.
func TestPoints_ToleranceIsStrict(t *testing.T) {
	rep, err := compare.Points(pts([]float64{0}, []float64{0}), pts([]float64{0}, []float64{0.5}), 0.5)
	require.NoError(t, err)
	assert.Zero(t, rep.Mismatches)
}

// TestPoints_NonFinite counts NaN/Inf differences as mismatches.
func TestPoints_NonFinite(t *testing.T) {
	xs := []float64{0, 1, 2}
	truth := pts(xs, []float64{1, 1, 1})
	got := pts(xs, []float64{1, math.NaN(), math.Inf(1)})

	rep, err := compare.Points(truth, got, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Mismatches)
	assert.Equal(t, 2, rep.NonFinite)
	assert.Zero(t, rep.MaxAbsError)

	allBad, err := compare.Points(truth[:1], pts(xs[:1], []float64{math.NaN()}), 0.1)
	require.NoError(t, err)
	assert.Equal(t, 1, allBad.Mismatches)
	assert.Zero(t, allBad.MeanAbsError)
}

// TestPoints_Errors covers the sentinel set.
func TestPoints_Errors(t *testing.T) {
	one := pts([]float64{0}, []float64{0})

	_, err := compare.Points[float64](nil, nil, 0.1)
	assert.ErrorIs(t, err, compare.ErrEmptyQuery)
	assert.EqualError(t, err, "Points: 0 truth points: compare: no query points")

	_, err = compare.Points(one, append(one, one...), 0.1)
	assert.ErrorIs(t, err, compare.ErrLengthMismatch)

	_, err = compare.Points(one, pts([]float64{1}, []float64{0}), 0.1)
	assert.ErrorIs(t, err, compare.ErrAbscissaMismatch)

	_, err = compare.Points(one, one, -1)
	assert.ErrorIs(t, err, compare.ErrBadTolerance)
	_, err = compare.Points(one, one, math.NaN())
	assert.ErrorIs(t, err, compare.ErrBadTolerance)
}

// TestEvaluators_ReferenceScenario runs the reference mismatch count.
func TestEvaluators_ReferenceScenario(t *testing.T) {
	truth := interp.NewMonomial([]float64{1.9, 9.2, 7.0})
	nodes := truth.EvaluateMany([]float64{1.8, 37.2, 80.9})
	lp, err := interp.NewLagrange(nodes)
	require.NoError(t, err)
	np, err := interp.NewNewton(nodes)
	require.NoError(t, err)

	xs := make([]float64, 0, 90)
	for x := 10; x < 100; x++ {
		xs = append(xs, float64(x))
	}

	rl, err := compare.Evaluators[float64](truth, lp, xs, 0.01)
	require.NoError(t, err)
	assert.Equal(t, 90, rl.Total)
	assert.Zero(t, rl.Mismatches)

	rn, err := compare.Evaluators[float64](truth, np, xs, 0.05)
	require.NoError(t, err)
	assert.Zero(t, rn.Mismatches)
	assert.Less(t, rn.MaxAbsError, 0.05)
}
