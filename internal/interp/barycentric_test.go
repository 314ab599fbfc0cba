package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/baryroot/internal/table"
	"gonum.org/v1/gonum/floats"
)

func lithium(t *testing.T) *Barycentric {
	t.Helper()
	tbl := table.Lithium()
	b, err := New(tbl.Keys(), tbl.Values())
	if err != nil {
		t.Fatalf("Failed to build interpolant: %v", err)
	}
	return b
}

func TestPassesThroughSamples(t *testing.T) {
	b := lithium(t)
	tbl := table.Lithium()

	for _, s := range tbl.Samples() {
		got := b.Eval(float64(s.X))
		if !floats.EqualWithinAbs(got, float64(s.Y), 1e-12) {
			t.Errorf("Eval(%v) = %f, want %f", s.X, got, float64(s.Y))
		}
	}
}

func TestBetweenSamples(t *testing.T) {
	b := lithium(t)

	// The tabulated curve is monotone in this region
	got := b.Eval(0.5)
	if got <= 3.2417 || got >= 3.3797 {
		t.Errorf("Eval(0.5) = %f, expected within (3.2417, 3.3797)", got)
	}
	got = b.Eval(0.64)
	if got <= 2.8342 || got >= 3.0138 {
		t.Errorf("Eval(0.64) = %f, expected within (2.8342, 3.0138)", got)
	}
}

func TestReproducesLowDegreePolynomials(t *testing.T) {
	x := []float64{0, 0.3, 0.5, 1.1, 1.2, 2, 2.7, 3.5}

	tests := []struct {
		name string
		f    func(float64) float64
	}{
		{name: "constant", f: func(x float64) float64 { return 4 }},
		{name: "linear", f: func(x float64) float64 { return 2*x + 1 }},
		{name: "cubic", f: func(x float64) float64 { return x*x*x - 2*x*x + 0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := make([]float64, len(x))
			for i, xi := range x {
				y[i] = tt.f(xi)
			}
			b, err := New(x, y)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for _, q := range []float64{0.1, 0.77, 1.15, 2.2, 3.3} {
				if got, want := b.Eval(q), tt.f(q); !floats.EqualWithinAbsOrRel(got, want, 1e-9, 1e-9) {
					t.Errorf("Eval(%f) = %.12f, want %.12f", q, got, want)
				}
			}
		})
	}
}

func TestPrime(t *testing.T) {
	x := []float64{0, 0.5, 1, 1.5, 2, 2.5}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 3*xi - 1
	}
	b, err := New(x, y)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Both at a node and between nodes
	for _, q := range []float64{0.5, 0.7, 2.5} {
		if got := b.Prime(q); math.Abs(got-3) > 1e-9 {
			t.Errorf("Prime(%f) = %f, want 3", q, got)
		}
	}

	lb := lithium(t)
	const h = 1e-6
	q := 0.62
	fd := (lb.Eval(q+h) - lb.Eval(q-h)) / (2 * h)
	if got := lb.Prime(q); math.Abs(got-fd) > 1e-4 {
		t.Errorf("Prime(%f) = %f, finite difference %f", q, got, fd)
	}
	if lb.Prime(q) >= 0 {
		t.Errorf("Expected decreasing curve at %f, slope %f", q, lb.Prime(q))
	}
}

func TestOrderSelection(t *testing.T) {
	b, err := New([]float64{0, 1}, []float64{1, 0})
	if err != nil {
		t.Fatalf("Two points should be accepted: %v", err)
	}
	if b.Order() != 1 {
		t.Errorf("Expected order clamped to 1, got %d", b.Order())
	}
	if got := b.Eval(0.25); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("Eval(0.25) = %f, want 0.75", got)
	}

	if lithium(t).Order() != DefaultOrder {
		t.Errorf("Expected default order %d", DefaultOrder)
	}
}

func TestEvalAll(t *testing.T) {
	b := lithium(t)
	xs := []float64{0.02, 0.5, 3.72}
	out := b.EvalAll(xs)
	for i, x := range xs {
		if out[i] != b.Eval(x) {
			t.Errorf("EvalAll[%d] = %f, Eval = %f", i, out[i], b.Eval(x))
		}
	}
}

func TestWeights(t *testing.T) {
	b := lithium(t)
	before := b.Eval(0.61)

	w := b.Weights()
	if len(w) != table.Lithium().Len() {
		t.Fatalf("Expected %d weights, got %d", table.Lithium().Len(), len(w))
	}
	// Floater-Hormann weights are non-zero and alternate in sign
	for i := 1; i < len(w); i++ {
		if w[i] == 0 || w[i]*w[i-1] >= 0 {
			t.Errorf("Weights %d and %d do not alternate: %g, %g", i-1, i, w[i-1], w[i])
		}
	}

	for i := range w {
		w[i] = 1
	}
	if got := b.Eval(0.61); got != before {
		t.Errorf("Mutating returned weights changed Eval: %f, want %f", got, before)
	}
}

func TestConstructionFailures(t *testing.T) {
	tests := []struct {
		name  string
		x, y  []float64
		order int
	}{
		{name: "too few points", x: []float64{1}, y: []float64{1}, order: 0},
		{name: "length mismatch", x: []float64{0, 1, 2}, y: []float64{0, 1}, order: 1},
		{name: "non-increasing", x: []float64{0, 2, 1}, y: []float64{0, 1, 2}, order: 1},
		{name: "duplicate", x: []float64{0, 1, 1}, y: []float64{0, 1, 2}, order: 1},
		{name: "nan", x: []float64{0, math.NaN()}, y: []float64{0, 1}, order: 1},
		{name: "order too large", x: []float64{0, 1, 2}, y: []float64{0, 1, 2}, order: 3},
		{name: "negative order", x: []float64{0, 1, 2}, y: []float64{0, 1, 2}, order: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithOrder(tt.x, tt.y, tt.order)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidData) {
				t.Errorf("Expected ErrInvalidData, got %v", err)
			}
		})
	}
}

func TestCopySharesData(t *testing.T) {
	b := lithium(t)
	c := *b
	if c.Eval(0.7) != b.Eval(0.7) {
		t.Error("Copied interpolant disagrees with its source")
	}
}
