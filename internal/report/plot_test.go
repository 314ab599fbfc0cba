package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/baryroot/internal/interp"
	"github.com/cwbudde/baryroot/internal/table"
)

func TestPlot(t *testing.T) {
	tbl := table.Lithium()
	b, err := interp.New(tbl.Keys(), tbl.Values())
	if err != nil {
		t.Fatalf("Failed to build interpolant: %v", err)
	}

	path := filepath.Join(t.TempDir(), "curve.png")
	if err := Plot(path, tbl, b.Eval, Mark{Label: "root", X: 0.606, Y: 3}); err != nil {
		t.Fatalf("Plot failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Plot file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Plot file is empty")
	}
}

func TestPlotUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.unknown")
	if err := Plot(path, table.Lithium(), func(x float64) float64 { return x }); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}
