// Package pimbook reconstructs univariate polynomials from samples and
// checks the reconstruction against the source polynomial.
//
// 🚀 What is inside?
//
//	interp/  — Monomial, Lagrange (barycentric) and Newton (divided differences)
//	           evaluators behind one Evaluator[T] capability, plus FitMonomial
//	sample/  — query ranges, evenly spaced grids, seeded random coefficients and nodes
//	compare/ — mismatch counting against a tolerance and error statistics
//	cmd/interpcheck — the end-to-end experiment as a command
//
// Quick example:
//
//	truth := interp.NewMonomial([]float64{1.9, 9.2, 7.0})
//	nodes := truth.EvaluateMany([]float64{1.8, 37.2, 80.9})
//	lp, _ := interp.NewLagrange(nodes)
//	xs, _ := sample.Range(10.0, 100.0, 1.0)
//	rep, _ := compare.Evaluators[float64](truth, lp, xs, 0.01)
//	fmt.Println(rep.Mismatches) // 0
//
// See Chapter 2 of A Programmer's Introduction to Mathematics (https://pimbook.org).
package pimbook
