package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/baryroot/internal/interp"
	"github.com/cwbudde/baryroot/internal/table"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the lithium potential table",
	Long:  `Lists every tabulated sample together with the interpolated charge and its slope.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTable(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func printTable(out io.Writer) error {
	tbl := table.Lithium()
	curve, err := interp.New(tbl.Keys(), tbl.Values())
	if err != nil {
		return fmt.Errorf("failed to build interpolant: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ENERGY\tCHARGE\tINTERPOLATED\tSLOPE (C/J)")
	for _, s := range tbl.Samples() {
		x := float64(s.X)
		fmt.Fprintf(w, "%v\t%v\t%.6g\t%.6g\n", s.X, s.Y, curve.Eval(x), curve.Prime(x))
	}
	return w.Flush()
}
