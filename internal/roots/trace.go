package roots

import (
	"log/slog"
	"math"
)

// Evaluation is one recorded call of the function being solved
type Evaluation struct {
	X  float64
	FX float64
}

// Trace records every evaluation a solver makes
type Trace struct {
	history []Evaluation
	best    Evaluation // smallest |FX| seen
}

// NewTrace creates an empty trace
func NewTrace() *Trace {
	return &Trace{best: Evaluation{X: math.NaN(), FX: math.Inf(1)}}
}

// Traced wraps f so that every evaluation is appended to t.
func Traced(f Func, t *Trace) Func {
	return func(x float64) float64 {
		fx := f(x)
		t.Record(x, fx)
		return fx
	}
}

// Record appends an evaluation
func (t *Trace) Record(x, fx float64) {
	e := Evaluation{X: x, FX: fx}
	t.history = append(t.history, e)
	if math.Abs(fx) < math.Abs(t.best.FX) {
		t.best = e
		slog.Debug("Residual improved", "x", x, "fx", fx, "evaluations", len(t.history))
	}
}

// Best returns the evaluation with the smallest residual
func (t *Trace) Best() Evaluation {
	return t.best
}

// History returns a copy of all evaluations in call order
func (t *Trace) History() []Evaluation {
	return append([]Evaluation{}, t.history...)
}

// Len returns the number of recorded evaluations
func (t *Trace) Len() int {
	return len(t.history)
}

// Reset clears the trace
func (t *Trace) Reset() {
	t.history = nil
	t.best = Evaluation{X: math.NaN(), FX: math.Inf(1)}
}
