package roots

import "fmt"

// BracketError is returned when a solver cannot establish or use a bracket.
type BracketError struct {
	kind   bracketKind
	Lo, Hi float64
	FLo    float64
	FHi    float64
	Reason string
}

type bracketKind int

const (
	notBracketed bracketKind = iota + 1
	noBracket
)

// ErrNotBracketed matches errors caused by an interval without a sign change.
var ErrNotBracketed = &BracketError{kind: notBracketed}

// ErrNoBracket matches errors from a bracket search that gave up.
var ErrNoBracket = &BracketError{kind: noBracket}

func (e *BracketError) Error() string {
	switch e.kind {
	case notBracketed:
		return fmt.Sprintf("root not bracketed: %s (f(%g) = %g, f(%g) = %g)", e.Reason, e.Lo, e.FLo, e.Hi, e.FHi)
	case noBracket:
		return fmt.Sprintf("unable to bracket root: %s (last interval [%g, %g])", e.Reason, e.Lo, e.Hi)
	}
	return "bracket error: " + e.Reason
}

// Is matches BracketErrors of the same kind.
func (e *BracketError) Is(target error) bool {
	t, ok := target.(*BracketError)
	return ok && t.kind == e.kind
}
