// Package interp_test contains shared fixtures.
//
// Purpose:
//   • The reference scenario f(x) = 1.9 + 9.2x + 7.0x² sampled at 1.8, 37.2, 80.9.
//   • A recursive divided-difference oracle to check the bottom-up table against.

package interp_test

import (
	"testing"

	"github.com/mirkomartn/pim-book/interp"
	"github.com/stretchr/testify/require"
)

var (
	scenarioCoeffs = []float64{1.9, 9.2, 7.0}
	scenarioNodes  = []float64{1.8, 37.2, 80.9}
)

// scenarioQueries returns 10, 11, …, 99.
func scenarioQueries[T interp.Float]() []T {
	xs := make([]T, 0, 90)
	for i := 10; i < 100; i++ {
		xs = append(xs, T(i))
	}
	return xs
}

// toT converts a float64 fixture into T.
func toT[T interp.Float](in []float64) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}

// mustLagrange builds a Lagrange interpolant or fails the test.
func mustLagrange[T interp.Float](t testing.TB, pts []interp.Point[T], opts ...interp.Option) *interp.Lagrange[T] {
	t.Helper()
	lp, err := interp.NewLagrange(pts, opts...)
	require.NoError(t, err)
	return lp
}

// mustNewton builds a Newton interpolant or fails the test.
func mustNewton[T interp.Float](t testing.TB, pts []interp.Point[T], opts ...interp.Option) *interp.Newton[T] {
	t.Helper()
	np, err := interp.NewNewton(pts, opts...)
	require.NoError(t, err)
	return np
}

// recursiveDD is the textbook definition without memoization:
//
//	f[i..i]   = yᵢ
//	f[i..j]   = (f[i+1..j] − f[i..j−1]) / (x_j − x_i)
func recursiveDD(pts []interp.Point[float64], i, j int) float64 {
	if i == j {
		return pts[i].Y
	}
	return (recursiveDD(pts, i+1, j) - recursiveDD(pts, i, j-1)) / (pts[j].X - pts[i].X)
}
