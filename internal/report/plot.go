package report

import (
	"fmt"

	"github.com/cwbudde/baryroot/internal/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// curvePoints is the number of points used to draw the interpolant
const curvePoints = 400

// Mark is a highlighted point on the plot, typically a root
type Mark struct {
	Label string
	X, Y  float64
}

// Plot draws the samples of tbl, the curve through them, and marks, then
// saves the figure to path. The image format follows the file extension.
func Plot(path string, tbl *table.Table, curve func(float64) float64, marks ...Mark) error {
	p := plot.New()
	p.Title.Text = "Lithium potential"
	p.X.Label.Text = "Energy (J)"
	p.Y.Label.Text = "Charge (C)"
	p.Add(plotter.NewGrid())

	samples := make(plotter.XYs, 0, tbl.Len())
	for _, s := range tbl.Samples() {
		samples = append(samples, plotter.XY{X: float64(s.X), Y: float64(s.Y)})
	}
	scatter, err := plotter.NewScatter(samples)
	if err != nil {
		return fmt.Errorf("failed to build sample scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = plotutil.Shape(0)
	scatter.GlyphStyle.Color = plotutil.Color(0)

	lo, hi := tbl.Domain()
	pts := make(plotter.XYs, curvePoints)
	for i := range pts {
		x := float64(lo) + (float64(hi)-float64(lo))*float64(i)/float64(curvePoints-1)
		pts[i] = plotter.XY{X: x, Y: curve(x)}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build curve: %w", err)
	}
	line.LineStyle.Color = plotutil.Color(1)

	p.Add(scatter, line)
	p.Legend.Add("samples", scatter)
	p.Legend.Add("interpolant", line)

	for i, m := range marks {
		mark, err := plotter.NewScatter(plotter.XYs{{X: m.X, Y: m.Y}})
		if err != nil {
			return fmt.Errorf("failed to build mark %q: %w", m.Label, err)
		}
		mark.GlyphStyle.Shape = plotutil.Shape(i + 1)
		mark.GlyphStyle.Color = plotutil.Color(i + 2)
		mark.GlyphStyle.Radius = vg.Points(4)
		p.Add(mark)
		p.Legend.Add(m.Label, mark)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
