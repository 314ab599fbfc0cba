package roots

import (
	"log/slog"
)

// Bisect halves [lo, hi] until tol is satisfied, the bracket can no longer
// shrink, or maxIter evaluations have been spent. f(lo) and f(hi) must have
// opposite signs. The returned Root is the midpoint of the final bracket.
func Bisect(f Func, lo, hi float64, tol Tolerance, maxIter int) (Result, error) {
	flo := f(lo)
	fhi := f(hi)
	if flo == 0 {
		return Result{Root: lo, Lo: lo, Hi: lo, Iterations: 2}, nil
	}
	if fhi == 0 {
		return Result{Root: hi, Lo: hi, Hi: hi, Iterations: 2}, nil
	}
	if lo >= hi {
		return Result{}, &BracketError{kind: notBracketed, Lo: lo, Hi: hi, FLo: flo, FHi: fhi, Reason: "lower bound must be below upper bound"}
	}
	if sign(flo)*sign(fhi) >= 0 {
		return Result{}, &BracketError{kind: notBracketed, Lo: lo, Hi: hi, FLo: flo, FHi: fhi, Reason: "no change of sign"}
	}

	// The endpoint evaluations count against the budget.
	count := maxIter
	if count < 3 {
		count = 0
	} else {
		count -= 2
	}

	for count > 0 && !tol(lo, hi) {
		mid := (lo + hi) / 2
		fmid := f(mid)
		if mid == hi || mid == lo {
			break
		}
		if fmid == 0 {
			lo, hi = mid, mid
			break
		}
		if sign(fmid)*sign(flo) < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
		count--
	}

	iterations := maxIter - count
	slog.Debug("Bisection complete", "lo", lo, "hi", hi, "iterations", iterations)

	return Result{
		Root:       lo + (hi-lo)/2,
		Lo:         lo,
		Hi:         hi,
		Iterations: iterations,
	}, nil
}
