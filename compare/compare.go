package compare

import (
	"errors"
	"fmt"
	"math"

	"github.com/mirkomartn/pim-book/interp"
	"github.com/montanaflynn/stats"
)

var (
	// ErrEmptyQuery indicates there was nothing to compare.
	ErrEmptyQuery = errors.New("compare: no query points")

	// ErrLengthMismatch indicates the two point sequences differ in length.
	ErrLengthMismatch = errors.New("compare: point sequences differ in length")

	// ErrAbscissaMismatch indicates the sequences were sampled at different xs.
	ErrAbscissaMismatch = errors.New("compare: point sequences sampled at different x")

	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("compare: tolerance must be >= 0")
)

// Report summarizes the agreement between a truth and a candidate.
type Report struct {
	// Total is the number of query points compared.
	Total int

	// Mismatches counts points with |Δy| > tolerance (non-finite Δy included).
	Mismatches int

	// NonFinite counts points whose Δy was NaN or ±Inf.
	NonFinite int

	// Error statistics over the finite |Δy| values; zero when none are finite.
	MaxAbsError    float64
	MeanAbsError   float64
	MedianAbsError float64
	StdDevAbsError float64
}

// String renders the report on one line.
func (r Report) String() string {
	return fmt.Sprintf("mismatches=%d/%d nonfinite=%d max=%.3g mean=%.3g median=%.3g stddev=%.3g",
		r.Mismatches, r.Total, r.NonFinite, r.MaxAbsError, r.MeanAbsError, r.MedianAbsError, r.StdDevAbsError)
}

// Points compares two samplings element by element. got[i].X must equal
// truth[i].X exactly.
//
// Errors: ErrEmptyQuery, ErrLengthMismatch, ErrAbscissaMismatch, ErrBadTolerance.
//
// Complexity: O(n log n) (median).
func Points[T interp.Float](truth, got []interp.Point[T], tol float64) (Report, error) {
	if math.IsNaN(tol) || tol < 0 {
		return Report{}, fmt.Errorf("Points: tol=%v: %w", tol, ErrBadTolerance)
	}
	if len(truth) == 0 {
		return Report{}, fmt.Errorf("Points: %d truth points: %w", len(truth), ErrEmptyQuery)
	}
	if len(truth) != len(got) {
		return Report{}, fmt.Errorf("Points: %d vs %d: %w", len(truth), len(got), ErrLengthMismatch)
	}

	rep := Report{Total: len(truth)}
	diffs := make(stats.Float64Data, 0, len(truth))
	for i := range truth {
		if truth[i].X != got[i].X {
			return Report{}, fmt.Errorf("Points: index %d: %v vs %v: %w", i, truth[i].X, got[i].X, ErrAbscissaMismatch)
		}
		d := math.Abs(float64(truth[i].Y) - float64(got[i].Y))
		if math.IsNaN(d) || math.IsInf(d, 0) {
			rep.NonFinite++
			rep.Mismatches++
			continue
		}
		if d > tol {
			rep.Mismatches++
		}
		diffs = append(diffs, d)
	}

	if len(diffs) == 0 {
		return rep, nil
	}
	if err := fillStats(&rep, diffs); err != nil {
		return Report{}, fmt.Errorf("Points: %w", err)
	}
	return rep, nil
}

// Evaluators samples truth and got at xs and compares the results.
func Evaluators[T interp.Float](truth, got interp.Evaluator[T], xs []T, tol float64) (Report, error) {
	return Points(interp.EvaluateMany(truth, xs), interp.EvaluateMany(got, xs), tol)
}

// fillStats writes the error summary of a non-empty diffs into rep.
func fillStats(rep *Report, diffs stats.Float64Data) error {
	var err error
	if rep.MaxAbsError, err = stats.Max(diffs); err != nil {
		return err
	}
	if rep.MeanAbsError, err = stats.Mean(diffs); err != nil {
		return err
	}
	if rep.MedianAbsError, err = stats.Median(diffs); err != nil {
		return err
	}
	if rep.StdDevAbsError, err = stats.StandardDeviation(diffs); err != nil {
		return err
	}
	return nil
}
