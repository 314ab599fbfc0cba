package opt

import (
	"math"
	"testing"
)

// Shifted parabola with its minimum at x = 0.6
func parabola(x []float64) float64 {
	d := x[0] - 0.6
	return d * d
}

func TestMayflyFindsMinimumIn1D(t *testing.T) {
	optimizer := NewMayfly(100, 20, 42)

	best, cost, err := optimizer.Run(parabola, []float64{0}, []float64{2}, 1)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(best) != 1 {
		t.Fatalf("Expected 1 parameter, got %d", len(best))
	}
	if cost > 1e-3 {
		t.Errorf("Expected cost near 0, got %f", cost)
	}
	if math.Abs(best[0]-0.6) > 0.05 {
		t.Errorf("Expected minimum near 0.6, got %f", best[0])
	}
}

func TestMayflyDeterministic(t *testing.T) {
	_, cost1, err := NewMayfly(50, 20, 123).Run(parabola, []float64{-1}, []float64{1}, 1)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	_, cost2, err := NewMayfly(50, 20, 123).Run(parabola, []float64{-1}, []float64{1}, 1)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if cost1 != cost2 {
		t.Errorf("Non-deterministic: cost1=%g, cost2=%g", cost1, cost2)
	}
}

func TestMayflyRejectsEmptyBox(t *testing.T) {
	if _, _, err := NewMayfly(10, 20, 1).Run(parabola, []float64{1}, []float64{1}, 1); err == nil {
		t.Error("Expected error for empty box")
	}
}

func TestMayflyPopulationFloor(t *testing.T) {
	if m := NewMayfly(10, 5, 1); m.popSize != MinPopulation {
		t.Errorf("Expected population raised to %d, got %d", MinPopulation, m.popSize)
	}
}
