// Package multistart runs independent minimizations from several starting
// points concurrently.
//
// A single minimization is strictly sequential, but separate runs share
// nothing except the objective function, which is pure and therefore safe
// to evaluate from multiple goroutines without coordination. That makes
// multi-start the one place in this library where parallelism pays off.
package multistart

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/descent-ml/descent/internal/function"
	"github.com/descent-ml/descent/internal/minimize"
)

// Config controls the concurrent fan-out.
type Config struct {
	// Workers is the number of goroutines running minimizations.
	// Zero or negative means runtime.NumCPU().
	Workers int
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU()}
}

// Result is the outcome of one start. Exactly one of Solution and Err is
// set.
type Result struct {
	// ID identifies the run, e.g. for log correlation across workers.
	ID uuid.UUID

	// Start is the initial point this run began from.
	Start []float64

	Solution *minimize.Solution
	Err      error
}

// Run minimizes f from every starting point using m, with at most
// cfg.Workers runs in flight at once. Results are returned in the order
// of the starts, one Result per start, regardless of individual failures.
//
// Cancellation is cooperative and coarse: ctx is checked between runs,
// never inside one (a single Minimize call has no suspension points).
// Starts skipped due to cancellation carry ctx.Err() in their Result.
func Run(ctx context.Context, m minimize.Minimizer, f function.Differentiable, starts [][]float64, cfg Config) []Result {
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(starts) {
		workers = len(starts)
	}

	results := make([]Result, len(starts))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				r := Result{ID: uuid.New(), Start: starts[i]}
				if err := ctx.Err(); err != nil {
					r.Err = err
				} else {
					r.Solution, r.Err = m.Minimize(f, starts[i])
				}
				results[i] = r
			}
		}()
	}

	for i := range starts {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}

// Best returns the successful result with the lowest objective value, or
// false when every run failed.
func Best(results []Result) (Result, bool) {
	best := Result{}
	bestValue := math.Inf(1)
	found := false
	for _, r := range results {
		if r.Err == nil && r.Solution != nil && r.Solution.Value < bestValue {
			best = r
			bestValue = r.Solution.Value
			found = true
		}
	}
	return best, found
}
