package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/time/rate"

	"github.com/descent-ml/descent/function"
	"github.com/descent-ml/descent/internal/multistart"
	"github.com/descent-ml/descent/minimize"
	"github.com/descent-ml/descent/problems"
)

type runOptions struct {
	problem   string
	start     []float64
	numerical bool
	restarts  int
	workers   int
	seed      int64
	plotPath  string
	quiet     bool

	cfg minimize.Config
}

func newRunCommand() *cobra.Command {
	opts := runOptions{
		restarts: 1,
		seed:     time.Now().UnixNano(),
		cfg:      minimize.DefaultConfig(),
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Minimize a benchmark problem",
		Long: fmt.Sprintf(`Minimize one of the built-in benchmark problems (%s).

Without --start a random feasible starting point is drawn from the
problem's domain. With --restarts > 1 the runs execute concurrently and
the best solution wins.`, strings.Join(problems.Names(), ", ")),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMinimization(cmd, &opts)
		},
	}

	addRunFlags(cmd.Flags(), &opts)
	return cmd
}

func addRunFlags(flags *pflag.FlagSet, opts *runOptions) {
	flags.StringVarP(&opts.problem, "problem", "p", "rosenbrock", "benchmark problem to minimize")
	flags.Float64SliceVar(&opts.start, "start", nil, "starting point (defaults to a random feasible one)")
	flags.BoolVar(&opts.numerical, "numerical", false, "discard the analytic gradient and use finite differences")
	flags.IntVarP(&opts.restarts, "restarts", "r", 1, "number of independent starts")
	flags.IntVar(&opts.workers, "workers", 0, "concurrent runs for --restarts (0 = NumCPU)")
	flags.Int64Var(&opts.seed, "seed", opts.seed, "random seed for start generation")
	flags.StringVar(&opts.plotPath, "plot", "", "write a convergence-trace plot (PNG) to this path (single run only)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress per-iteration progress")

	flags.IntVar(&opts.cfg.MaxIterations, "max-iterations", opts.cfg.MaxIterations, "iteration budget")
	flags.Float64Var(&opts.cfg.GradientTolerance, "tolerance", opts.cfg.GradientTolerance, "gradient-norm convergence threshold")
	flags.Float64Var(&opts.cfg.InitialStep, "initial-step", opts.cfg.InitialStep, "initial line-search step length")
	flags.Float64Var(&opts.cfg.StepDecay, "step-decay", opts.cfg.StepDecay, "line-search shrink factor")
	flags.Float64Var(&opts.cfg.ArmijoSlope, "armijo-slope", opts.cfg.ArmijoSlope, "sufficient-decrease coefficient")
	flags.Float64Var(&opts.cfg.MinStep, "min-step", opts.cfg.MinStep, "line-search failure threshold")
}

func runMinimization(cmd *cobra.Command, opts *runOptions) error {
	problem, err := problems.ByName(opts.problem)
	if err != nil {
		return err
	}

	var objective function.Differentiable = problem
	if opts.numerical {
		objective = function.Differentiate(problem)
	}

	gd, err := minimize.NewGradientDescent(opts.cfg)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(opts.seed))
	out := cmd.OutOrStdout()

	if opts.restarts > 1 {
		return runMultistart(cmd, opts, gd, problem, objective, rng)
	}

	start := opts.start
	if start == nil {
		start = problem.RandomStart(rng)
	}

	trace := &traceObserver{}
	observer := newProgressObserver(out, trace, opts.quiet)

	solution, err := gd.WithObserver(observer).Minimize(objective, start)
	if err != nil {
		return err
	}

	printSolution(out, solution, start)

	if opts.plotPath != "" {
		if err := writeTracePlot(opts.plotPath, opts.problem, trace.values); err != nil {
			return fmt.Errorf("writing plot: %w", err)
		}
		fmt.Fprintf(out, "Convergence trace written to %s\n", opts.plotPath)
	}
	return nil
}

func runMultistart(cmd *cobra.Command, opts *runOptions, gd *minimize.GradientDescent, problem problems.Problem, objective function.Differentiable, rng *rand.Rand) error {
	starts := make([][]float64, opts.restarts)
	for i := range starts {
		if opts.start != nil {
			starts[i] = opts.start
		} else {
			starts[i] = problem.RandomStart(rng)
		}
	}

	results := multistart.Run(context.Background(), gd, objective, starts, multistart.Config{Workers: opts.workers})

	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "run %s: failed: %v\n", shortID(r.ID), r.Err)
			continue
		}
		if !opts.quiet {
			fmt.Fprintf(out, "run %s: %s after %d iterations, f = %.6g\n",
				shortID(r.ID), r.Solution.Status, r.Solution.Iterations, r.Solution.Value)
		}
	}

	best, ok := multistart.Best(results)
	if !ok {
		return fmt.Errorf("all %d runs failed", len(results))
	}

	fmt.Fprintf(out, "\nBest of %d starts (run %s):\n", len(results), shortID(best.ID))
	printSolution(out, best.Solution, best.Start)
	return nil
}

// newProgressObserver fans progress out to the trace recorder and, unless
// quiet, to a rate-limited console printer. Descent on a cheap objective
// can run millions of iterations per second; printing each one would turn
// the run into an I/O benchmark, so console output is capped at 10 lines
// per second.
func newProgressObserver(out io.Writer, trace *traceObserver, quiet bool) minimize.Observer {
	limiter := rate.NewLimiter(rate.Every(100*time.Millisecond), 1)
	return minimize.ObserverFunc(func(p minimize.Progress) {
		trace.Observe(p)
		if !quiet && limiter.Allow() {
			fmt.Fprintf(out, "iter %6d: f = %-14.6g ‖g‖ = %-12.4g step = %.4g\n",
				p.Iteration, p.Value, p.GradientNorm, p.Step)
		}
	})
}

// traceObserver records the objective value per iteration for plotting.
type traceObserver struct {
	values []float64
}

func (t *traceObserver) Observe(p minimize.Progress) {
	t.values = append(t.values, p.Value)
}

func printSolution(out io.Writer, s *minimize.Solution, start []float64) {
	fmt.Fprintf(out, "Status:     %s\n", s.Status)
	fmt.Fprintf(out, "Iterations: %d\n", s.Iterations)
	fmt.Fprintf(out, "Start:      %v\n", start)
	fmt.Fprintf(out, "Position:   %v\n", s.Position)
	fmt.Fprintf(out, "Value:      %.10g\n", s.Value)
}

func shortID(id uuid.UUID) string {
	return fmt.Sprintf("%x", id[:4])
}
