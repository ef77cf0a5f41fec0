// Package sample generates the abscissas and coefficients that drive an
// interpolation experiment: query ranges, evenly spaced grids, and seeded
// random coefficients or pairwise-distinct random nodes.
//
// ⚙️ Usage:
//
//	xs, _ := sample.Range(10.0, 100.0, 1.0)             // 10, 11, …, 99
//	nodes, _ := sample.RandomNodes(4, -5.0, 5.0, 42)     // sorted, distinct
//	coeffs, _ := sample.RandomCoefficients(4, -1.0, 1.0, 42)
//
// Determinism:
//
//	The same seed yields the same values on every platform. seed == 0 selects
//	a fixed default seed; nothing is seeded from the clock.
package sample
