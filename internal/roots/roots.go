// Package roots finds zeros of scalar functions on the real line.
//
// Every solver is a zero-finder: to solve f(x) = target, callers shift the
// function first, e.g. func(x float64) float64 { return f(x) - target }.
//
// Iteration counts are the number of function evaluations, including the
// evaluations of the initial bracket endpoints.
package roots

import (
	"math"
)

// Func is a scalar function whose zero is sought
type Func func(x float64) float64

// Tolerance reports whether the bracket [a, b] is narrow enough to stop.
type Tolerance func(a, b float64) bool

// Unbounded is an iteration cap that is never reached in practice.
const Unbounded = math.MaxInt

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

const (
	epsilon  = 2.220446049250313e-16
	minValue = 2.2250738585072014e-308 // smallest normal float64
	maxValue = math.MaxFloat64
)

// EpsTolerance stops once a and b agree to the given number of bits,
// relative to the smaller of |a| and |b|. The relative width is never
// allowed below 4 machine epsilons.
func EpsTolerance(bits int) Tolerance {
	eps := math.Max(math.Ldexp(1, 1-bits), 4*epsilon)
	return func(a, b float64) bool {
		return math.Abs(a-b) <= eps*math.Min(math.Abs(a), math.Abs(b))
	}
}

// DefaultTolerance asks for full double precision.
func DefaultTolerance() Tolerance {
	return EpsTolerance(53)
}

// Result is the outcome of a root search
type Result struct {
	// Root is the best estimate of the zero
	Root float64

	// Lo, Hi is the final bracket; Lo == Hi when an exact zero was hit
	Lo, Hi float64

	// Iterations is the number of function evaluations used
	Iterations int
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
