// Package store persists solver traces as JSON lines.
package store

import "time"

// TraceEntry is one function evaluation made by a solver.
// Each entry is serialized as a single JSON line.
type TraceEntry struct {
	// Method names the solver that made the evaluation (bisect, bracket-solve, search)
	Method string `json:"method"`

	// Iteration is the 1-based evaluation number within the method's run
	Iteration int `json:"iteration"`

	// X is the abscissa that was evaluated
	X float64 `json:"x"`

	// FX is the shifted function value f(X) - target
	FX float64 `json:"fx"`

	// Timestamp records when the entry was written
	Timestamp time.Time `json:"timestamp"`
}

// ErrNotFound is returned when a trace file does not exist.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents a missing trace file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	if e.Path != "" {
		return "trace not found: " + e.Path
	}
	return "trace not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}
