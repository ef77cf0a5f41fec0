package sample

import "errors"

var (
	// ErrBadStep indicates a non-positive or non-finite Range step.
	ErrBadStep = errors.New("sample: step must be finite and > 0")

	// ErrBadCount indicates a count below the minimum the generator needs.
	ErrBadCount = errors.New("sample: invalid count")

	// ErrBadInterval indicates lo/hi bounds that are non-finite or out of order.
	ErrBadInterval = errors.New("sample: invalid interval")

	// ErrTooLarge indicates a Range that would hold more than maxRangeLen values.
	ErrTooLarge = errors.New("sample: range too large")

	// ErrTooFewDistinct indicates RandomNodes could not draw n distinct values,
	// which happens when the interval is too narrow for the precision of T.
	ErrTooFewDistinct = errors.New("sample: could not draw enough distinct values")
)
