package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/cwbudde/baryroot/internal/interp"
	"github.com/cwbudde/baryroot/internal/opt"
	"github.com/cwbudde/baryroot/internal/report"
	"github.com/cwbudde/baryroot/internal/roots"
	"github.com/cwbudde/baryroot/internal/store"
	"github.com/cwbudde/baryroot/internal/table"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Fixed search set-up for the lithium table.
const (
	bisectLo   = 0.44
	bisectHi   = 1.24
	guess      = 0.6
	stepFactor = 1.2
	// Charge falls as energy rises.
	rising = false
)

type solveOptions struct {
	target      float64
	maxIter     int
	traceOut    string
	crossCheck  bool
	searchIters int
	popSize     int
	seed        int64
}

var solveOpts = defaultSolveOptions()

func defaultSolveOptions() solveOptions {
	return solveOptions{
		target:      3,
		searchIters: 100,
		popSize:     opt.MinPopulation,
		seed:        42,
	}
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the energy that yields the target charge",
	Long: `Builds the interpolant and inverts it at the target charge with bisection
on [0.44 J, 1.24 J], then with bracket-and-solve from 0.6 J.`,
	RunE: runSolve,
}

func init() {
	addSolveFlags(solveCmd.Flags())
	rootCmd.AddCommand(solveCmd)
}

func addSolveFlags(fs *pflag.FlagSet) {
	d := defaultSolveOptions()
	fs.Float64Var(&solveOpts.target, "target", d.target, "Target charge in coulombs")
	fs.IntVar(&solveOpts.maxIter, "max-iter", d.maxIter, "Evaluation budget per method (0 = unbounded)")
	fs.StringVar(&solveOpts.traceOut, "trace-out", d.traceOut, "Write every function evaluation to this JSONL file")
	fs.BoolVar(&solveOpts.crossCheck, "cross-check", d.crossCheck, "Cross-check the root with a mayfly global search")
	fs.IntVar(&solveOpts.searchIters, "search-iters", d.searchIters, "Mayfly iterations for --cross-check")
	fs.IntVar(&solveOpts.popSize, "pop", d.popSize, "Mayfly population size for --cross-check")
	fs.Int64Var(&solveOpts.seed, "seed", d.seed, "Random seed for --cross-check")
}

func runSolve(cmd *cobra.Command, args []string) error {
	_, err := solve(cmd.OutOrStdout(), solveOpts)
	return err
}

// solution holds the roots found by each method
type solution struct {
	bisect roots.Result
	solve  roots.Result
	search *roots.Result
}

func solve(w io.Writer, o solveOptions) (*solution, error) {
	tbl := table.Lithium()
	curve, err := interp.New(tbl.Keys(), tbl.Values())
	if err != nil {
		return nil, fmt.Errorf("failed to build interpolant: %w", err)
	}
	slog.Info("Built interpolant", "samples", tbl.Len(), "order", curve.Order())

	f := func(x float64) float64 { return curve.Eval(x) - o.target }
	maxIter := o.maxIter
	if maxIter <= 0 {
		maxIter = roots.Unbounded
	}
	tol := roots.DefaultTolerance()
	target := table.Charge(o.target)

	var traces []methodTrace
	traced := func(method string) roots.Func {
		t := roots.NewTrace()
		traces = append(traces, methodTrace{method: method, trace: t})
		return roots.Traced(f, t)
	}

	start := time.Now()
	bisect, err := roots.Bisect(traced("bisect"), bisectLo, bisectHi, tol, maxIter)
	if err != nil {
		return nil, fmt.Errorf("bisection failed: %w", err)
	}
	slog.Info("Bisection complete", "root", bisect.Root, "iterations", bisect.Iterations, "elapsed", time.Since(start))
	if err := report.Print(w, target, bisect); err != nil {
		return nil, err
	}

	start = time.Now()
	solved, err := roots.BracketAndSolve(traced("bracket-solve"), guess, stepFactor, rising, tol, maxIter)
	if err != nil {
		return nil, fmt.Errorf("bracket and solve failed: %w", err)
	}
	slog.Info("Bracket and solve complete", "root", solved.Root, "iterations", solved.Iterations, "elapsed", time.Since(start))
	if err := report.Print(w, target, solved); err != nil {
		return nil, err
	}

	sol := &solution{bisect: bisect, solve: solved}

	if o.crossCheck {
		optimizer := opt.NewMayfly(o.searchIters, o.popSize, o.seed)
		search, err := roots.Search(traced("search"), bisectLo, bisectHi, optimizer)
		if err != nil {
			return nil, fmt.Errorf("cross-check failed: %w", err)
		}
		slog.Info("Cross-check complete",
			"root", search.Root,
			"evaluations", search.Iterations,
			"distance", math.Abs(search.Root-solved.Root),
		)
		sol.search = &search
	}

	if o.traceOut != "" {
		if err := writeTraces(o.traceOut, traces); err != nil {
			return nil, err
		}
		slog.Info("Wrote trace", "path", o.traceOut)
	}

	return sol, nil
}

type methodTrace struct {
	method string
	trace  *roots.Trace
}

func writeTraces(path string, traces []methodTrace) error {
	writer, err := store.NewTraceWriter(path, false)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, mt := range traces {
		for i, e := range mt.trace.History() {
			entry := store.TraceEntry{
				Method:    mt.method,
				Iteration: i + 1,
				X:         e.X,
				FX:        e.FX,
				Timestamp: now,
			}
			if err := writer.Write(entry); err != nil {
				writer.Close()
				return err
			}
		}
	}
	return writer.Close()
}
