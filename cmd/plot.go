package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/baryroot/internal/interp"
	"github.com/cwbudde/baryroot/internal/report"
	"github.com/cwbudde/baryroot/internal/table"
	"github.com/spf13/cobra"
)

var plotOut string

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the interpolant and the roots",
	Long: `Solves for the target charge and draws the samples, the interpolated curve and
both roots. The image format follows the extension of --out (png, svg, pdf, ...).`,
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotOut, "out", "curve.png", "Output image path")
	plotCmd.Flags().Float64Var(&solveOpts.target, "target", solveOpts.target, "Target charge in coulombs")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	o := defaultSolveOptions()
	o.target = solveOpts.target
	return plotSolution(cmd.OutOrStdout(), plotOut, o)
}

func plotSolution(w io.Writer, path string, o solveOptions) error {
	sol, err := solve(w, o)
	if err != nil {
		return err
	}

	tbl := table.Lithium()
	curve, err := interp.New(tbl.Keys(), tbl.Values())
	if err != nil {
		return fmt.Errorf("failed to build interpolant: %w", err)
	}

	err = report.Plot(path, tbl, curve.Eval,
		report.Mark{Label: "bisection", X: sol.bisect.Root, Y: o.target},
		report.Mark{Label: "bracket and solve", X: sol.solve.Root, Y: o.target},
	)
	if err != nil {
		return err
	}

	slog.Info("Wrote plot", "path", path)
	return nil
}
