package minimize

import (
	"fmt"

	"github.com/descent-ml/descent/internal/function"
)

// Status reports why a minimization run stopped. Every status yields a
// valid Solution; none of them is an error.
type Status int

const (
	// StatusConverged means the gradient norm fell below the configured
	// tolerance: the current point is a local minimum (or a flat saddle,
	// which first-order descent cannot distinguish).
	StatusConverged Status = iota

	// StatusMaxIterations means the iteration budget ran out. The
	// Solution holds the best point found so far.
	StatusMaxIterations

	// StatusLineSearchFailed means no step above the minimum step length
	// satisfied the sufficient-decrease condition: no further progress is
	// possible along the descent direction. Treated as local stagnation.
	StatusLineSearchFailed
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max iterations reached"
	case StatusLineSearchFailed:
		return "line search failed"
	default:
		return fmt.Sprintf("unknown status %d", int(s))
	}
}

// Solution is the result of a minimization run. It is immutable once
// returned: minimizers allocate a fresh Position for every run.
type Solution struct {
	// Position is the final point x.
	Position []float64

	// Value is f(Position).
	Value float64

	// Iterations is the number of descent steps performed.
	Iterations int

	// Status records why the run stopped.
	Status Status
}

// Minimizer is the strategy contract shared by every minimization
// algorithm. Implementations must be safe for concurrent use by multiple
// goroutines as long as the supplied Function honors its purity contract.
//
// Minimize returns an error only for true failures: a dimension mismatch
// between the initial point and the function, or a non-finite value or
// gradient produced during the run. Reaching the iteration budget or
// stalling in the line search still produces a Solution, distinguished by
// its Status.
type Minimizer interface {
	Minimize(f function.Differentiable, initial []float64) (*Solution, error)
}

// Progress is a per-iteration snapshot emitted to an Observer. One event
// is emitted after each completed descent step, plus a terminal snapshot
// when the run stops.
type Progress struct {
	Iteration    int     // Zero-based iteration index.
	Value        float64 // Objective value after the iteration's update.
	GradientNorm float64 // Euclidean gradient norm where the iteration started.
	Step         float64 // Accepted step length (0 in the terminal snapshot).
}

// Observer receives progress events during a run. Implementations must be
// fast or hand off asynchronously; the minimizer calls Observe inline.
// How events are formatted or logged is entirely the observer's concern.
type Observer interface {
	Observe(p Progress)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(p Progress)

func (f ObserverFunc) Observe(p Progress) { f(p) }
