package interp

import "golang.org/x/exp/constraints"

// Float is the set of real scalar types accepted by the package.
type Float interface {
	constraints.Float
}

// Point is a sample (x, y) of a polynomial. Two points are equal iff both
// coordinates are equal, so Point is comparable with ==.
type Point[T Float] struct {
	X T
	Y T
}

// Evaluator is anything that can be evaluated at a single abscissa.
// Monomial, Lagrange and Newton all implement it.
type Evaluator[T Float] interface {
	Evaluate(x T) T
}

// Compile-time interface checks.
var (
	_ Evaluator[float64] = (*Monomial[float64])(nil)
	_ Evaluator[float64] = (*Lagrange[float64])(nil)
	_ Evaluator[float64] = (*Newton[float64])(nil)
	_ Evaluator[float32] = (*Monomial[float32])(nil)
	_ Evaluator[float32] = (*Lagrange[float32])(nil)
	_ Evaluator[float32] = (*Newton[float32])(nil)
)

// bterm is one barycentric term: a node paired with its weight
// w = ∏(xᵢ − xⱼ) over all non-zero factors.
type bterm[T Float] struct {
	p Point[T]
	w T
}
