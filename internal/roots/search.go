package roots

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/baryroot/internal/opt"
)

// Search looks for a zero of f in [lo, hi] by minimising f(x)^2 with a
// global optimizer. It does not need a sign change, but it only
// approximates the root, so it serves as a cross-check for the bracketing
// solvers. Lo and Hi of the result are the search box.
func Search(f Func, lo, hi float64, optimizer opt.Optimizer) (Result, error) {
	if lo >= hi {
		return Result{}, &BracketError{kind: notBracketed, Lo: lo, Hi: hi, Reason: "lower bound must be below upper bound"}
	}

	evaluations := 0
	residual := func(x []float64) float64 {
		evaluations++
		fx := f(x[0])
		return fx * fx
	}

	best, cost, err := optimizer.Run(residual, []float64{lo}, []float64{hi}, 1)
	if err != nil {
		return Result{}, fmt.Errorf("global search failed: %w", err)
	}

	slog.Debug("Global search complete", "x", best[0], "squared_residual", cost, "evaluations", evaluations)

	return Result{
		Root:       best[0],
		Lo:         lo,
		Hi:         hi,
		Iterations: evaluations,
	}, nil
}
