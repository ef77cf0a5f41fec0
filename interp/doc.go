// Package interp evaluates and reconstructs univariate real polynomials.
//
// 🚀 What is inside?
//
//	Three evaluators that share one capability, Evaluator[T]:
//	  • Monomial — coefficients c₀…cₙ₋₁, constant term first, evaluated by power summation
//	  • Lagrange — barycentric form built from sample points, O(n²) setup, O(n) per query
//	  • Newton   — divided-difference form built from sample points, O(n²) setup, O(n) per query
//
//	plus FitMonomial, which recovers monomial coefficients from sample points by
//	solving the Vandermonde system with pivoted LU.
//
// ✨ Key properties:
//   - exact node hits: Lagrange and Newton return the stored y when x equals a node
//   - immutable after construction: safe to share read-only across goroutines
//   - generic over float32 and float64 (golang.org/x/exp/constraints.Float)
//   - permissive by default: duplicate nodes are not rejected unless WithDistinctNodes
//     is passed, and the resulting non-finite values propagate silently
//
// ⚙️ Usage:
//
//	truth := interp.NewMonomial([]float64{1.9, 9.2, 7.0})
//	nodes := truth.EvaluateMany([]float64{1.8, 37.2, 80.9})
//
//	lp, err := interp.NewLagrange(nodes)
//	if err != nil {
//	  // ErrEmptyPoints
//	}
//	np, _ := interp.NewNewton(nodes, interp.WithDistinctNodes())
//	fmt.Println(truth.Evaluate(50), lp.Evaluate(50), np.Evaluate(50))
//
// Preconditions:
//
//	Interpolation is well posed only for pairwise distinct node x-coordinates.
//	For duplicate nodes the Lagrange weights silently drop the zero factors and
//	the Newton table divides by zero; neither is guarded by default.
package interp
