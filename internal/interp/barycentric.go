// Package interp implements Floater-Hormann barycentric rational interpolation
// over strictly increasing abscissas.
package interp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultOrder is the approximation order used by New when the data allows it.
const DefaultOrder = 3

// Barycentric is a rational interpolant y ≈ f(x) through (x_i, y_i).
// It never mutates its data after construction, so values may be copied
// and shared freely.
type Barycentric struct {
	x, y, w []float64
	order   int
}

// New builds an interpolant with order min(DefaultOrder, len(x)-1).
func New(x, y []float64) (*Barycentric, error) {
	order := DefaultOrder
	if len(x)-1 < order {
		order = len(x) - 1
	}
	return NewWithOrder(x, y, order)
}

// NewWithOrder builds an interpolant of the given approximation order.
// The order must satisfy 0 <= order < len(x).
func NewWithOrder(x, y []float64, order int) (*Barycentric, error) {
	n := len(x)
	if n < 2 {
		return nil, &ValidationError{Field: "x", Reason: fmt.Sprintf("need at least 2 points, got %d", n)}
	}
	if len(y) != n {
		return nil, &ValidationError{Field: "y", Reason: fmt.Sprintf("length %d does not match x length %d", len(y), n)}
	}
	if floats.HasNaN(x) || floats.HasNaN(y) {
		return nil, &ValidationError{Field: "data", Reason: "contains NaN"}
	}
	if order < 0 || order >= n {
		return nil, &ValidationError{Field: "order", Reason: fmt.Sprintf("must be in [0, %d), got %d", n, order)}
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, &ValidationError{
				Field:  fmt.Sprintf("x[%d]", i),
				Reason: fmt.Sprintf("must be strictly increasing (%g after %g)", x[i], x[i-1]),
			}
		}
	}

	b := &Barycentric{
		x:     append([]float64(nil), x...),
		y:     append([]float64(nil), y...),
		w:     make([]float64, n),
		order: order,
	}
	if err := b.computeWeights(); err != nil {
		return nil, err
	}
	return b, nil
}

// computeWeights fills w_k = sum over the order+1 point windows containing k
// of (-1)^i / prod_{j != k} (x_k - x_j).
func (b *Barycentric) computeWeights() error {
	n := len(b.x)
	d := b.order
	for k := 0; k < n; k++ {
		iMin := max(k-d, 0)
		iMax := k
		if k >= n-d {
			iMax = n - d - 1
		}

		for i := iMin; i <= iMax; i++ {
			invProduct := 1.0
			jMax := min(i+d, n-1)
			for j := i; j <= jMax; j++ {
				if j == k {
					continue
				}
				diff := b.x[k] - b.x[j]
				if math.Abs(diff) < epsilon {
					return &ValidationError{
						Field:  fmt.Sprintf("x[%d]", k),
						Reason: fmt.Sprintf("spacing to x[%d] is below machine epsilon", j),
					}
				}
				invProduct *= diff
			}
			if i%2 == 0 {
				b.w[k] += 1 / invProduct
			} else {
				b.w[k] -= 1 / invProduct
			}
		}
	}
	return nil
}

// Eval returns the interpolated value at x. At a node it returns the
// tabulated value exactly.
func (b *Barycentric) Eval(x float64) float64 {
	var numerator, denominator float64
	for i, xi := range b.x {
		if x == xi {
			return b.y[i]
		}
		t := b.w[i] / (x - xi)
		numerator += t * b.y[i]
		denominator += t
	}
	return numerator / denominator
}

// Prime returns the first derivative of the interpolant at x.
func (b *Barycentric) Prime(x float64) float64 {
	for i, xi := range b.x {
		if x != xi {
			continue
		}
		var sum float64
		for j, xj := range b.x {
			if j == i {
				continue
			}
			sum += b.w[j] * (b.y[i] - b.y[j]) / (xi - xj)
		}
		return -sum / b.w[i]
	}

	rx := b.Eval(x)
	var numerator, denominator float64
	for i, xi := range b.x {
		t := b.w[i] / (x - xi)
		diff := (rx - b.y[i]) / (x - xi)
		numerator += t * diff
		denominator += t
	}
	return -numerator / denominator
}

// EvalAll evaluates the interpolant at every point of xs.
func (b *Barycentric) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = b.Eval(x)
	}
	return out
}

// Order returns the approximation order
func (b *Barycentric) Order() int {
	return b.order
}

// Weights returns a copy of the barycentric weights
func (b *Barycentric) Weights() []float64 {
	return append([]float64(nil), b.w...)
}

const epsilon = 2.220446049250313e-16

// ValidationError reports interpolation data that violates a precondition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "interpolation error: " + e.Field + " " + e.Reason
}

// ErrInvalidData matches any *ValidationError via errors.Is.
var ErrInvalidData = &ValidationError{}

func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}
