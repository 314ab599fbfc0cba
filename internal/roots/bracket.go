package roots

import (
	"log/slog"
	"math"
)

// BracketAndSolve searches outward from guess for a sign change of f, then
// refines the root inside the bracket with TOMS748.
//
// The bracket grows geometrically: each step multiplies (or divides) the
// moving endpoint by factor, and factor itself doubles at a decreasing
// interval so that distant roots are still reached quickly. rising states
// whether f increases with x; together with the sign of f(guess) and of
// guess it selects the search direction.
//
// The returned Iterations covers both the expansion and the refinement.
func BracketAndSolve(f Func, guess, factor float64, rising bool, tol Tolerance, maxIter int) (Result, error) {
	if !(factor > 1) {
		return Result{}, &BracketError{kind: noBracket, Lo: guess, Hi: guess, Reason: "step factor must exceed 1"}
	}
	// Scaling zero never moves the endpoint.
	if guess == 0 || !finite(guess) {
		return Result{}, &BracketError{kind: noBracket, Lo: guess, Hi: guess, Reason: "guess must be finite and non-zero"}
	}

	a := guess
	b := a
	fa := f(a)
	fb := fa
	if fa == 0 {
		return Result{Root: guess, Lo: guess, Hi: guess, Iterations: 1}, nil
	}
	if math.IsNaN(fa) {
		return Result{}, &BracketError{kind: noBracket, Lo: a, Hi: b, Reason: "function is NaN at the guess"}
	}
	count := maxIter - 1
	step := 32

	towardLarger := rising
	if guess < 0 {
		towardLarger = !rising
	}

	if (fa < 0) == towardLarger {
		// Zero lies to the right of b: walk upward.
		for sign(fb) == sign(fa) {
			if count <= 0 {
				return Result{}, &BracketError{kind: noBracket, Lo: a, Hi: b, Reason: "iteration budget exhausted while walking upward"}
			}
			// Grow the factor every so often to reach a root quickly.
			if (maxIter-count)%step == 0 {
				factor *= 2
				if step > 1 {
					step /= 2
				}
			}
			a, fa = b, fb
			b *= factor
			if !finite(b) {
				return Result{}, &BracketError{kind: noBracket, Lo: a, Hi: b, Reason: "search overflowed walking upward"}
			}
			fb = f(b)
			count--
			if math.IsNaN(fb) {
				return Result{}, &BracketError{kind: noBracket, Lo: a, Hi: b, Reason: "function is NaN at the upper end"}
			}
			slog.Debug("Expanding bracket upward", "a", a, "b", b, "fb", fb)
		}
	} else {
		// Zero lies to the left of a: walk downward.
		for sign(fb) == sign(fa) {
			if math.Abs(a) < minValue {
				return Result{}, &BracketError{kind: noBracket, Lo: a, Hi: b, Reason: "search underflowed toward zero"}
			}
			if count <= 0 {
				return Result{}, &BracketError{kind: noBracket, Lo: a, Hi: b, Reason: "iteration budget exhausted while walking downward"}
			}
			if (maxIter-count)%step == 0 {
				factor *= 2
				if step > 1 {
					step /= 2
				}
			}
			b, fb = a, fa
			a /= factor
			if !finite(a) {
				return Result{}, &BracketError{kind: noBracket, Lo: a, Hi: b, Reason: "search left the finite range walking downward"}
			}
			fa = f(a)
			count--
			if math.IsNaN(fa) {
				return Result{}, &BracketError{kind: noBracket, Lo: a, Hi: b, Reason: "function is NaN at the lower end"}
			}
			slog.Debug("Expanding bracket downward", "a", a, "b", b, "fa", fa)
		}
	}

	expansion := maxIter - count
	slog.Debug("Bracket found", "a", a, "b", b, "evaluations", expansion)

	// Negative guesses make the walk run backwards, so order the endpoints.
	lo, hi, flo, fhi := a, b, fa, fb
	if a < 0 {
		lo, hi, flo, fhi = b, a, fb, fa
	}

	r, err := toms748(f, lo, hi, flo, fhi, tol, count)
	if err != nil {
		return Result{}, err
	}
	r.Iterations += expansion
	return r, nil
}
