// SPDX-License-Identifier: MIT
// Package interp - coefficient recovery through the Vandermonde system.
//
// Given n points, the interpolating polynomial c₀ + c₁x + … + cₙ₋₁xⁿ⁻¹ solves
//
//	V·c = y,  V[i][j] = xᵢʲ
//
// The system is factorized as P·V = L·U (Doolittle, unit lower L) with
// partial pivoting, then solved by forward and back substitution.
// Vandermonde matrices are badly conditioned for many or widely spread nodes;
// prefer Lagrange or Newton for evaluation and use this to inspect coefficients.
package interp

import "fmt"

// FitMonomial returns the Monomial through points, degree ≤ len(points)-1.
//
// Errors:
//   - ErrEmptyPoints   — len(points) == 0.
//   - ErrDuplicateNode — only with WithDistinctNodes.
//   - ErrNaNInf        — only with WithFiniteValues.
//   - ErrSingular      — a zero pivot was met (duplicate nodes, exactly).
//
// Complexity: O(n³) time, O(n²) memory.
func FitMonomial[T Float](points []Point[T], opts ...Option) (*Monomial[T], error) {
	o := gatherOptions(opts...)
	if err := validatePoints("FitMonomial", points, o); err != nil {
		return nil, err
	}

	// Stage 1: build V row-major and the right-hand side.
	n := len(points)
	a := make([]T, n*n)
	b := make([]T, n)
	for i, p := range points {
		var pow T = 1
		for j := 0; j < n; j++ {
			a[i*n+j] = pow
			pow *= p.X
		}
		b[i] = p.Y
	}

	// Stage 2: factorize in place.
	perm, err := luDecompose(a, n)
	if err != nil {
		return nil, fmt.Errorf("FitMonomial: %w", err)
	}

	// Stage 3: solve.
	return &Monomial[T]{coeffs: luSolve(a, n, perm, b)}, nil
}

// luDecompose overwrites a (n×n, row-major) with L below the diagonal
// (unit diagonal implied) and U on and above it. perm[i] is the source row
// of row i. A pivot that is exactly zero returns ErrSingular.
func luDecompose[T Float](a []T, n int) ([]int, error) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		// pick the largest |a[i][k]|, i ≥ k
		piv := k
		best := abs(a[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := abs(a[i*n+k]); v > best {
				piv, best = i, v
			}
		}
		if best == 0 {
			return nil, fmt.Errorf("pivot %d: %w", k, ErrSingular)
		}
		if piv != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[piv*n+j] = a[piv*n+j], a[k*n+j]
			}
			perm[k], perm[piv] = perm[piv], perm[k]
		}

		uDiag := a[k*n+k]
		for i := k + 1; i < n; i++ {
			l := a[i*n+k] / uDiag
			a[i*n+k] = l
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= l * a[k*n+j]
			}
		}
	}

	return perm, nil
}

// luSolve solves L·U·x = P·b for a factorized by luDecompose.
func luSolve[T Float](lu []T, n int, perm []int, b []T) []T {
	x := make([]T, n)
	// forward: L·z = P·b
	for i := 0; i < n; i++ {
		sum := b[perm[i]]
		for j := 0; j < i; j++ {
			sum -= lu[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// backward: U·x = z
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for j := i + 1; j < n; j++ {
			sum -= lu[i*n+j] * x[j]
		}
		x[i] = sum / lu[i*n+i]
	}
	return x
}

// abs returns |v| without a float64 round trip.
func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
