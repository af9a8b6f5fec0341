package minimize

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/descent-ml/descent/internal/function"
	"github.com/descent-ml/descent/internal/linesearch"
)

// GradientDescent is a first-order minimizer: steepest descent with a
// backtracking Armijo line search.
//
// Each iteration computes the gradient g at the current point, stops if
// ‖g‖ is below the configured tolerance or the iteration budget is spent,
// and otherwise searches for a step length α along d = −g satisfying the
// sufficient-decrease condition before moving to x + α·d.
//
// A GradientDescent value holds no per-run state and is safe for
// concurrent use.
type GradientDescent struct {
	cfg      Config
	search   linesearch.Method
	observer Observer
}

// NewGradientDescent creates a gradient-descent minimizer, validating the
// configuration fail-fast.
func NewGradientDescent(cfg Config) (*GradientDescent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &GradientDescent{
		cfg: cfg,
		search: linesearch.Armijo{
			InitialStep: cfg.InitialStep,
			Decay:       cfg.StepDecay,
			Slope:       cfg.ArmijoSlope,
			MinStep:     cfg.MinStep,
		},
	}, nil
}

// WithObserver returns a copy of the minimizer that emits per-iteration
// Progress events to obs. A nil observer silences the minimizer again.
func (gd *GradientDescent) WithObserver(obs Observer) *GradientDescent {
	clone := *gd
	clone.observer = obs
	return &clone
}

// WithLineSearch returns a copy of the minimizer using a custom step
// selection method instead of the Armijo search built from the Config,
// e.g. linesearch.FixedStep for a constant learning rate. The method is
// responsible for its own failure semantics: returning
// linesearch.ErrStepTooSmall stops the run with StatusLineSearchFailed.
func (gd *GradientDescent) WithLineSearch(method linesearch.Method) *GradientDescent {
	clone := *gd
	clone.search = method
	return &clone
}

// Minimize runs gradient descent on f from the initial point.
//
// The initial point's dimension is checked against f before any iteration
// runs; a mismatch is returned as a *function.DimensionError. A non-finite
// value or gradient encountered at any time aborts the run with a
// *function.NonFiniteError. All other outcomes, including an exhausted
// iteration budget and a stalled line search, produce a Solution whose
// Status says why the run stopped.
//
// If the initial point already satisfies the convergence threshold the run
// performs zero iterations and returns it unchanged.
func (gd *GradientDescent) Minimize(f function.Differentiable, initial []float64) (*Solution, error) {
	if err := function.CheckDims(f.Dims(), initial); err != nil {
		return nil, err
	}

	// The caller keeps ownership of initial; iterate on a copy.
	x := make([]float64, len(initial))
	copy(x, initial)

	value, err := evalValue(f, x)
	if err != nil {
		return nil, err
	}

	direction := make([]float64, len(x))

	for iteration := 0; ; iteration++ {
		gradient, err := evalGradient(f, x)
		if err != nil {
			return nil, err
		}
		norm := floats.Norm(gradient, 2)

		if norm <= gd.cfg.GradientTolerance {
			gd.observe(Progress{Iteration: iteration, Value: value, GradientNorm: norm})
			return &Solution{Position: x, Value: value, Iterations: iteration, Status: StatusConverged}, nil
		}
		if iteration >= gd.cfg.MaxIterations {
			gd.observe(Progress{Iteration: iteration, Value: value, GradientNorm: norm})
			return &Solution{Position: x, Value: value, Iterations: iteration, Status: StatusMaxIterations}, nil
		}

		floats.ScaleTo(direction, -1, gradient)

		step, err := gd.search.Search(f, x, direction, value, gradient)
		if errors.Is(err, linesearch.ErrStepTooSmall) {
			gd.observe(Progress{Iteration: iteration, Value: value, GradientNorm: norm})
			return &Solution{Position: x, Value: value, Iterations: iteration, Status: StatusLineSearchFailed}, nil
		}
		if err != nil {
			return nil, err
		}

		floats.AddScaled(x, step, direction)
		value, err = evalValue(f, x)
		if err != nil {
			return nil, err
		}

		gd.observe(Progress{Iteration: iteration, Value: value, GradientNorm: norm, Step: step})
	}
}

func (gd *GradientDescent) observe(p Progress) {
	if gd.observer != nil {
		gd.observer.Observe(p)
	}
}

// evalValue evaluates f(x) and rejects non-finite results.
func evalValue(f function.Function, x []float64) (float64, error) {
	value, err := f.Value(x)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &function.NonFiniteError{Op: "value", At: x}
	}
	return value, nil
}

// evalGradient evaluates ∇f(x) and rejects non-finite components.
func evalGradient(f function.Differentiable, x []float64) ([]float64, error) {
	gradient, err := f.Gradient(x)
	if err != nil {
		return nil, err
	}
	for _, g := range gradient {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return nil, &function.NonFiniteError{Op: "gradient", At: x}
		}
	}
	return gradient, nil
}
