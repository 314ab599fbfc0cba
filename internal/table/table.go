package table

import (
	"fmt"
	"math"
)

// Energy is an energy quantity in joules
type Energy float64

func (e Energy) String() string {
	return fmt.Sprintf("%.6g J", float64(e))
}

// Charge is an electric charge quantity in coulombs
type Charge float64

func (c Charge) String() string {
	return fmt.Sprintf("%.6g C", float64(c))
}

// Sample is one tabulated (energy, charge) measurement
type Sample struct {
	X Energy
	Y Charge
}

// Table is an immutable, strictly increasing sequence of samples.
type Table struct {
	samples []Sample
}

// New validates samples and returns a table holding its own copy of them.
// The samples must contain at least 2 points with strictly increasing,
// finite X values and finite Y values.
func New(samples []Sample) (*Table, error) {
	if len(samples) < 2 {
		return nil, &ValidationError{Field: "Samples", Reason: fmt.Sprintf("need at least 2 points, got %d", len(samples))}
	}
	for i, s := range samples {
		if math.IsNaN(float64(s.X)) || math.IsInf(float64(s.X), 0) {
			return nil, &ValidationError{Field: fmt.Sprintf("Samples[%d].X", i), Reason: "must be finite"}
		}
		if math.IsNaN(float64(s.Y)) || math.IsInf(float64(s.Y), 0) {
			return nil, &ValidationError{Field: fmt.Sprintf("Samples[%d].Y", i), Reason: "must be finite"}
		}
		if i > 0 && s.X <= samples[i-1].X {
			return nil, &ValidationError{
				Field:  fmt.Sprintf("Samples[%d].X", i),
				Reason: fmt.Sprintf("must be strictly increasing (%v after %v)", s.X, samples[i-1].X),
			}
		}
	}
	return &Table{samples: append([]Sample(nil), samples...)}, nil
}

// Len returns the number of samples
func (t *Table) Len() int {
	return len(t.samples)
}

// Samples returns a copy of the samples in ascending X order
func (t *Table) Samples() []Sample {
	return append([]Sample(nil), t.samples...)
}

// Keys returns the X values in ascending order.
func (t *Table) Keys() []float64 {
	keys := make([]float64, len(t.samples))
	for i, s := range t.samples {
		keys[i] = float64(s.X)
	}
	return keys
}

// Values returns the Y values in the same order as Keys.
func (t *Table) Values() []float64 {
	values := make([]float64, len(t.samples))
	for i, s := range t.samples {
		values[i] = float64(s.Y)
	}
	return values
}

// Domain returns the smallest and largest tabulated energy
func (t *Table) Domain() (Energy, Energy) {
	return t.samples[0].X, t.samples[len(t.samples)-1].X
}

// ValidationError reports a rejected sample table.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + " " + e.Reason
}

// ErrInvalidTable matches any *ValidationError via errors.Is.
var ErrInvalidTable = &ValidationError{}

func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}
