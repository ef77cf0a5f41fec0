package interp

// Monomial is a polynomial c₀ + c₁x + … + cₙ₋₁xⁿ⁻¹ stored by its
// coefficients, constant term first. Immutable after NewMonomial.
type Monomial[T Float] struct {
	coeffs []T
}

// NewMonomial builds a Monomial from coeffs (constant term first).
// The slice is copied; an empty slice is the zero polynomial.
func NewMonomial[T Float](coeffs []T) *Monomial[T] {
	c := make([]T, len(coeffs))
	copy(c, coeffs)
	return &Monomial[T]{coeffs: c}
}

// Evaluate returns Σ cᵢ·xⁱ by direct power summation.
// The power xⁱ is carried incrementally, one multiply per term.
//
// Complexity: O(n).
func (m *Monomial[T]) Evaluate(x T) T {
	var (
		acc T
		pow T = 1
	)
	for _, c := range m.coeffs {
		acc += c * pow
		pow *= x
	}
	return acc
}

// EvaluateMany samples the polynomial at every x in xs.
func (m *Monomial[T]) EvaluateMany(xs []T) []Point[T] {
	return EvaluateMany[T](m, xs)
}

// Coefficients returns a copy of the coefficient sequence.
func (m *Monomial[T]) Coefficients() []T {
	c := make([]T, len(m.coeffs))
	copy(c, m.coeffs)
	return c
}

// Degree returns len(coefficients)-1, or -1 for the empty polynomial.
// Trailing zero coefficients are not trimmed.
func (m *Monomial[T]) Degree() int {
	return len(m.coeffs) - 1
}
