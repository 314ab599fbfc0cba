package opt

// Optimizer minimises an objective over a box
type Optimizer interface {
	// Run minimises eval over dim parameters bounded by lower and upper.
	// It returns the best parameters, their cost, and an error if the
	// underlying algorithm could not run.
	Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64, error)
}
