package interp_test

import (
	"math"
	"testing"

	"github.com/mirkomartn/pim-book/interp"
	"github.com/stretchr/testify/assert"
)

// countMismatches counts xs where |want(x) − got(x)| > tol.
func countMismatches[T interp.Float](want, got interp.Evaluator[T], xs []T, tol float64) int {
	n := 0
	for _, x := range xs {
		if math.Abs(float64(want.Evaluate(x))-float64(got.Evaluate(x))) > tol {
			n++
		}
	}
	return n
}

// TestScenario_ReferenceQuadratic is the chapter 2 experiment: sample the
// quadratic at three nodes and query 10..99.
func TestScenario_ReferenceQuadratic(t *testing.T) {
	truth := interp.NewMonomial(scenarioCoeffs)
	pts := truth.EvaluateMany(scenarioNodes)
	lp := mustLagrange(t, pts)
	np := mustNewton(t, pts)
	xs := scenarioQueries[float64]()

	assert.Zero(t, countMismatches[float64](truth, lp, xs, 0.01), "lagrange mismatches")
	assert.Zero(t, countMismatches[float64](truth, np, xs, 0.05), "newton mismatches")
}

// TestScenario_CrossAgreement checks Lagrange and Newton agree tightly.
func TestScenario_CrossAgreement(t *testing.T) {
	truth := interp.NewMonomial(scenarioCoeffs)
	pts := truth.EvaluateMany(scenarioNodes)
	lp := mustLagrange(t, pts)
	np := mustNewton(t, pts)

	for _, x := range scenarioQueries[float64]() {
		assert.InDelta(t, lp.Evaluate(x), np.Evaluate(x), 1e-4, "x=%v", x)
	}
}

// TestScenario_SinglePrecision runs the reference scenario in float32: zero
// mismatches at the absolute tolerances, plus relative agreement throughout.
func TestScenario_SinglePrecision(t *testing.T) {
	truth := interp.NewMonomial(toT[float32](scenarioCoeffs))
	pts := truth.EvaluateMany(toT[float32](scenarioNodes))
	lp := mustLagrange(t, pts)
	np := mustNewton(t, pts)

	for _, p := range pts {
		assert.Equal(t, p.Y, lp.Evaluate(p.X))
		assert.Equal(t, p.Y, np.Evaluate(p.X))
	}
	xs := scenarioQueries[float32]()
	assert.Zero(t, countMismatches[float32](truth, lp, xs, 0.01), "lagrange mismatches")
	assert.Zero(t, countMismatches[float32](truth, np, xs, 0.05), "newton mismatches")

	for _, x := range xs {
		want := float64(truth.Evaluate(x))
		assert.InEpsilon(t, want, float64(lp.Evaluate(x)), 1e-3, "lagrange x=%v", x)
		assert.InEpsilon(t, want, float64(np.Evaluate(x)), 1e-3, "newton x=%v", x)
	}
}

// TestReconstruction_HigherDegree checks a degree-5 polynomial is recovered
// from six nodes away from the nodes.
func TestReconstruction_HigherDegree(t *testing.T) {
	truth := interp.NewMonomial([]float64{1, -0.5, 0.25, 2, -1, 0.3})
	pts := truth.EvaluateMany([]float64{-2, -1.2, -0.1, 0.7, 1.6, 2.4})
	lp := mustLagrange(t, pts)
	np := mustNewton(t, pts)

	for x := -2.5; x <= 2.5; x += 0.125 {
		want := truth.Evaluate(x)
		assert.InDelta(t, want, lp.Evaluate(x), 1e-8, "lagrange x=%v", x)
		assert.InDelta(t, want, np.Evaluate(x), 1e-8, "newton x=%v", x)
	}
}

// TestOrderInvariance permutes the nodes and expects the same interpolant
// up to summation-order rounding.
func TestOrderInvariance(t *testing.T) {
	truth := interp.NewMonomial([]float64{3, -1, 0.5, 0.75})
	base := truth.EvaluateMany([]float64{-2, -0.5, 1, 3})
	perms := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}
	refL := mustLagrange(t, base)
	refN := mustNewton(t, base)

	for _, perm := range perms {
		pts := make([]interp.Point[float64], len(perm))
		for i, j := range perm {
			pts[i] = base[j]
		}
		lp := mustLagrange(t, pts)
		np := mustNewton(t, pts)
		for x := -3.0; x <= 4.0; x += 0.25 {
			assert.InDelta(t, refL.Evaluate(x), lp.Evaluate(x), 1e-9, "lagrange perm=%v x=%v", perm, x)
			assert.InDelta(t, refN.Evaluate(x), np.Evaluate(x), 1e-9, "newton perm=%v x=%v", perm, x)
		}
	}
}
