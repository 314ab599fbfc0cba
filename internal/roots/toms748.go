package roots

import (
	"log/slog"
	"math"
)

// mu is the required shrink factor per cycle before a bisection step is forced.
const mu = 0.5

// TOMS748 solves f(x) = 0 on [lo, hi] with Alefeld, Potra and Shi's
// Algorithm 748: secant, quadratic and inverse cubic steps combined with a
// double-length secant step and a bisection safeguard.
func TOMS748(f Func, lo, hi float64, tol Tolerance, maxIter int) (Result, error) {
	if maxIter < 2 {
		return Result{}, &BracketError{kind: noBracket, Lo: lo, Hi: hi, Reason: "iteration budget too small"}
	}
	flo := f(lo)
	fhi := f(hi)
	r, err := toms748(f, lo, hi, flo, fhi, tol, maxIter-2)
	r.Iterations += 2
	return r, err
}

// toms748 runs the algorithm with the endpoint values already known.
// The returned Iterations excludes those two evaluations.
func toms748(f Func, ax, bx, fax, fbx float64, tol Tolerance, maxIter int) (Result, error) {
	count := maxIter
	a, b, fa, fb := ax, bx, fax, fbx

	if !(a < b) {
		return Result{}, &BracketError{kind: notBracketed, Lo: a, Hi: b, FLo: fa, FHi: fb, Reason: "lower bound must be below upper bound"}
	}
	if !finite(a) || !finite(b) || !finite(fa) || !finite(fb) {
		return Result{}, &BracketError{kind: notBracketed, Lo: a, Hi: b, FLo: fa, FHi: fb, Reason: "bracket endpoints and values must be finite"}
	}

	if tol(a, b) || fa == 0 || fb == 0 {
		if fa == 0 {
			b = a
		} else if fb == 0 {
			a = b
		}
		return Result{Root: a + (b-a)/2, Lo: a, Hi: b}, nil
	}

	if sign(fa)*sign(fb) > 0 {
		return Result{}, &BracketError{kind: notBracketed, Lo: a, Hi: b, FLo: fa, FHi: fb, Reason: "no change of sign"}
	}

	s := &state{f: f, a: a, b: b, fa: fa, fb: fb, e: 1e5, fe: 1e5, fd: 1e5}

	// First a secant step, then a quadratic one, before the main loop.
	if s.fa != 0 {
		c := secantInterpolate(s.a, s.b, s.fa, s.fb)
		s.bracket(c)
		count--

		if count > 0 && s.fa != 0 && !tol(s.a, s.b) {
			c = quadraticInterpolate(s.a, s.b, s.d, s.fa, s.fb, s.fd, 2)
			s.e, s.fe = s.d, s.fd
			s.bracket(c)
			count--
		}
	}

	done := func() bool {
		count--
		return count == 0 || s.fa == 0 || tol(s.a, s.b)
	}

	for count > 0 && s.fa != 0 && !tol(s.a, s.b) {
		a0, b0 := s.a, s.b

		var c float64
		if s.profligate() {
			c = quadraticInterpolate(s.a, s.b, s.d, s.fa, s.fb, s.fd, 2)
		} else {
			c = cubicInterpolate(s.a, s.b, s.d, s.e, s.fa, s.fb, s.fd, s.fe)
		}
		s.e, s.fe = s.d, s.fd
		s.bracket(c)
		if done() {
			break
		}

		if s.profligate() {
			c = quadraticInterpolate(s.a, s.b, s.d, s.fa, s.fb, s.fd, 3)
		} else {
			c = cubicInterpolate(s.a, s.b, s.d, s.e, s.fa, s.fb, s.fd, s.fe)
		}
		s.bracket(c)
		if done() {
			break
		}

		// Double-length secant step from the endpoint with the smaller residual.
		u, fu := s.b, s.fb
		if math.Abs(s.fa) < math.Abs(s.fb) {
			u, fu = s.a, s.fa
		}
		c = u - 2*(fu/(s.fb-s.fa))*(s.b-s.a)
		if math.Abs(c-u) > (s.b-s.a)/2 {
			c = s.a + (s.b-s.a)/2
		}
		s.e, s.fe = s.d, s.fd
		s.bracket(c)
		if done() {
			break
		}

		if (s.b - s.a) < mu*(b0-a0) {
			continue
		}

		// Not converging fast enough: bisect.
		s.e, s.fe = s.d, s.fd
		s.bracket(s.a + (s.b-s.a)/2)
		count--
	}

	a, b = s.a, s.b
	if s.fa == 0 {
		b = a
	} else if s.fb == 0 {
		a = b
	}

	iterations := maxIter - count
	slog.Debug("TOMS748 complete", "lo", a, "hi", b, "iterations", iterations)

	return Result{Root: a + (b-a)/2, Lo: a, Hi: b, Iterations: iterations}, nil
}

// state is the working bracket [a, b] plus the two previous points d and e.
type state struct {
	f              Func
	a, b, d, e     float64
	fa, fb, fd, fe float64
}

// bracket evaluates f at c (kept strictly inside [a, b]) and shrinks the
// bracket around the sign change. The discarded endpoint moves to d.
func (s *state) bracket(c float64) {
	tol := epsilon * 2

	switch {
	case (s.b - s.a) < 2*tol*s.a:
		c = s.a + (s.b-s.a)/2
	case c <= s.a+math.Abs(s.a)*tol:
		c = s.a + math.Abs(s.a)*tol
	case c >= s.b-math.Abs(s.b)*tol:
		c = s.b - math.Abs(s.b)*tol
	}

	fc := s.f(c)

	if fc == 0 {
		s.a, s.fa = c, 0
		s.d, s.fd = 0, 0
		return
	}

	if sign(s.fa)*sign(fc) < 0 {
		s.d, s.fd = s.b, s.fb
		s.b, s.fb = c, fc
	} else {
		s.d, s.fd = s.a, s.fa
		s.a, s.fa = c, fc
	}
}

// profligate reports whether any two stored function values are too close
// for cubic interpolation to be safe.
func (s *state) profligate() bool {
	const minDiff = minValue * 32
	return math.Abs(s.fa-s.fb) < minDiff ||
		math.Abs(s.fa-s.fd) < minDiff ||
		math.Abs(s.fa-s.fe) < minDiff ||
		math.Abs(s.fb-s.fd) < minDiff ||
		math.Abs(s.fb-s.fe) < minDiff ||
		math.Abs(s.fd-s.fe) < minDiff
}

func safeDiv(num, denom, r float64) float64 {
	if math.Abs(denom) < 1 && math.Abs(denom*maxValue) <= math.Abs(num) {
		return r
	}
	return num / denom
}

func secantInterpolate(a, b, fa, fb float64) float64 {
	tol := epsilon * 5
	c := a - (fa/(fb-fa))*(b-a)
	if c <= a+math.Abs(a)*tol || c >= b-math.Abs(b)*tol {
		return (a + b) / 2
	}
	return c
}

// quadraticInterpolate takes count Newton steps on the quadratic through
// (a, fa), (b, fb), (d, fd).
func quadraticInterpolate(a, b, d, fa, fb, fd float64, count int) float64 {
	B := safeDiv(fb-fa, b-a, maxValue)
	A := safeDiv(fd-fb, d-b, maxValue)
	A = safeDiv(A-B, d-a, 0)

	if A == 0 {
		return secantInterpolate(a, b, fa, fb)
	}

	c := b
	if sign(A)*sign(fa) > 0 {
		c = a
	}

	for i := 1; i <= count; i++ {
		c -= safeDiv(fa+(B+A*(c-b))*(c-a), B+A*(2*c-a-b), 1+c-a)
	}
	if math.IsNaN(c) || c <= a || c >= b {
		c = secantInterpolate(a, b, fa, fb)
	}
	return c
}

// cubicInterpolate is inverse cubic interpolation through a, b, d and e.
func cubicInterpolate(a, b, d, e, fa, fb, fd, fe float64) float64 {
	q11 := (d - e) * fd / (fe - fd)
	q21 := (b - d) * fb / (fd - fb)
	q31 := (a - b) * fa / (fb - fa)
	d21 := (b - d) * fd / (fd - fb)
	d31 := (a - b) * fb / (fb - fa)

	q22 := (d21 - q11) * fb / (fe - fb)
	q32 := (d31 - q21) * fa / (fd - fa)
	d32 := (d31 - q21) * fd / (fd - fa)
	q33 := (d32 - q22) * fa / (fe - fa)

	c := q31 + q32 + q33 + a
	if math.IsNaN(c) || c <= a || c >= b {
		c = quadraticInterpolate(a, b, d, fa, fb, fd, 3)
	}
	return c
}
