// Command interpcheck samples a ground-truth polynomial at a few nodes,
// rebuilds it with the Lagrange and Newton interpolants and reports how many
// query points disagree with the truth by more than a tolerance.
//
// With no flags it runs the reference scenario:
//
//	f(x) = 1.9 + 9.2x + 7.0x², nodes 1.8, 37.2, 80.9, queries 10..99
//
// Usage:
//
//	interpcheck [--coeffs 1.9,9.2,7.0] [--nodes 1.8,37.2,80.9]
//	            [--from 10 --to 100 --step 1]
//	            [--lagrange-tol 0.01] [--newton-tol 0.05] [--single]
//	            [--random-degree N --seed S] [--verbose]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mirkomartn/pim-book/compare"
	"github.com/mirkomartn/pim-book/interp"
	"github.com/mirkomartn/pim-book/sample"
	"github.com/spf13/cobra"
)

// config holds the resolved command-line flags.
type config struct {
	coeffs       []float64
	nodes        []float64
	from, to     float64
	step         float64
	lagrangeTol  float64
	newtonTol    float64
	single       bool
	randomDegree int
	seed         int64
	verbose      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires flags to a config and runs the check.
func newRootCmd() *cobra.Command {
	cfg := config{}
	cmd := &cobra.Command{
		Use:          "interpcheck",
		Short:        "Compare Lagrange and Newton interpolants against a ground-truth polynomial",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.randomDegree > 0 {
				if err := randomize(&cfg); err != nil {
					return err
				}
			}
			if cfg.single {
				return run[float32](cmd.OutOrStdout(), cfg)
			}
			return run[float64](cmd.OutOrStdout(), cfg)
		},
	}

	f := cmd.Flags()
	f.Float64SliceVar(&cfg.coeffs, "coeffs", []float64{1.9, 9.2, 7.0}, "ground-truth coefficients, constant term first")
	f.Float64SliceVar(&cfg.nodes, "nodes", []float64{1.8, 37.2, 80.9}, "interpolation node x-coordinates")
	f.Float64Var(&cfg.from, "from", 10, "first query x")
	f.Float64Var(&cfg.to, "to", 100, "query range end (exclusive)")
	f.Float64Var(&cfg.step, "step", 1, "query spacing")
	f.Float64Var(&cfg.lagrangeTol, "lagrange-tol", 0.01, "Lagrange mismatch tolerance")
	f.Float64Var(&cfg.newtonTol, "newton-tol", 0.05, "Newton mismatch tolerance")
	f.BoolVar(&cfg.single, "single", false, "use float32 arithmetic")
	f.IntVar(&cfg.randomDegree, "random-degree", 0, "if > 0, draw a random polynomial of this degree and degree+1 random nodes in [from, to)")
	f.Int64Var(&cfg.seed, "seed", 0, "seed for --random-degree (0 selects the default seed)")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "print error statistics")

	return cmd
}

// randomize replaces coeffs and nodes with seeded random draws.
func randomize(cfg *config) error {
	coeffs, err := sample.RandomCoefficients(cfg.randomDegree+1, -10.0, 10.0, cfg.seed)
	if err != nil {
		return fmt.Errorf("random coefficients: %w", err)
	}
	nodes, err := sample.RandomNodes(cfg.randomDegree+1, cfg.from, cfg.to, cfg.seed)
	if err != nil {
		return fmt.Errorf("random nodes: %w", err)
	}
	cfg.coeffs, cfg.nodes = coeffs, nodes
	return nil
}

// run executes the experiment in precision T and writes the report to w.
func run[T interp.Float](w io.Writer, cfg config) error {
	truth := interp.NewMonomial(convert[T](cfg.coeffs))
	points := truth.EvaluateMany(convert[T](cfg.nodes))

	lp, err := interp.NewLagrange(points)
	if err != nil {
		return fmt.Errorf("lagrange: %w", err)
	}
	np, err := interp.NewNewton(points)
	if err != nil {
		return fmt.Errorf("newton: %w", err)
	}

	xs, err := sample.Range(T(cfg.from), T(cfg.to), T(cfg.step))
	if err != nil {
		return fmt.Errorf("queries: %w", err)
	}
	want := interp.EvaluateManyParallel[T](truth, xs, 0)

	lr, err := compare.Points(want, interp.EvaluateManyParallel[T](lp, xs, 0), cfg.lagrangeTol)
	if err != nil {
		return fmt.Errorf("lagrange: %w", err)
	}
	nr, err := compare.Points(want, interp.EvaluateManyParallel[T](np, xs, 0), cfg.newtonTol)
	if err != nil {
		return fmt.Errorf("newton: %w", err)
	}

	fmt.Fprintf(w, "lagrange mismatches: %d\n", lr.Mismatches)
	fmt.Fprintf(w, "newton mismatches: %d\n", nr.Mismatches)
	if cfg.verbose {
		fmt.Fprintf(w, "coeffs: %v\nnodes: %v\n", cfg.coeffs, cfg.nodes)
		fmt.Fprintf(w, "lagrange: %s\n", lr)
		fmt.Fprintf(w, "newton: %s\n", nr)
	}
	return nil
}

func convert[T interp.Float](in []float64) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}
