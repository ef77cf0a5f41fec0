// Package compare measures how closely one representation tracks another.
//
// A Report counts the query points where |y_truth − y_got| exceeds a
// tolerance and summarizes the absolute error distribution (max, mean,
// median, standard deviation) with github.com/montanaflynn/stats.
//
// ⚙️ Usage:
//
//	rep, err := compare.Evaluators[float64](truth, lagrange, xs, 0.01)
//	fmt.Println(rep.Mismatches)
//
// Non-finite differences (NaN or ±Inf from degenerate nodes) always count as
// mismatches and are excluded from the error statistics; NonFinite reports
// how many there were.
package compare
