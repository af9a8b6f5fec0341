// Package linesearch selects step lengths along a descent direction.
package linesearch

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/descent-ml/descent/internal/function"
)

// ErrStepTooSmall reports that backtracking shrank the step below the
// configured minimum without satisfying the acceptance condition. The
// caller should treat it as local stagnation, not a fatal failure.
var ErrStepTooSmall = errors.New("linesearch: step below minimum without sufficient decrease")

// Method chooses a step length along a search direction.
//
// Search is given the function, the current position x, the direction d,
// the already-computed value fx = f(x) and gradient g at x. It returns an
// accepted step length α, so the caller moves to x + α·d.
type Method interface {
	Search(f function.Differentiable, x, d []float64, fx float64, g []float64) (float64, error)
}

// Armijo is a backtracking line search evaluating the Armijo
// sufficient-decrease rule at each candidate step:
//
//	f(x + α·d) ≤ f(x) + Slope·α·(g·d)
//
// Candidates start at InitialStep and shrink by Decay until accepted or
// until the step falls below MinStep, in which case ErrStepTooSmall is
// returned. Each Search restarts from InitialStep; no state is carried
// between calls. A NaN or ±Inf trial value aborts with
// *function.NonFiniteError instead of being treated as a rejected step.
type Armijo struct {
	InitialStep float64 // First candidate step, > 0.
	Decay       float64 // Shrink factor per rejection, in (0, 1).
	Slope       float64 // Sufficient-decrease coefficient, in (0, 1).
	MinStep     float64 // Failure threshold, > 0.
}

// Validate checks the parameter ranges.
func (a Armijo) Validate() error {
	switch {
	case !(a.InitialStep > 0) || math.IsInf(a.InitialStep, 0):
		return fmt.Errorf("linesearch: initial step must be positive and finite, got %g", a.InitialStep)
	case !(a.Decay > 0 && a.Decay < 1):
		return fmt.Errorf("linesearch: decay factor must be in (0, 1), got %g", a.Decay)
	case !(a.Slope > 0 && a.Slope < 1):
		return fmt.Errorf("linesearch: slope coefficient must be in (0, 1), got %g", a.Slope)
	case !(a.MinStep > 0):
		return fmt.Errorf("linesearch: minimum step must be positive, got %g", a.MinStep)
	}
	return nil
}

func (a Armijo) Search(f function.Differentiable, x, d []float64, fx float64, g []float64) (float64, error) {
	// Directional derivative g·d. For steepest descent d = −g this is
	// −‖g‖², so the acceptance threshold decreases linearly in α.
	m := floats.Dot(g, d)

	trial := make([]float64, len(x))
	step := a.InitialStep
	for step >= a.MinStep {
		floats.AddScaledTo(trial, x, step, d)

		value, err := f.Value(trial)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, &function.NonFiniteError{Op: "value", At: trial}
		}

		if value <= fx+a.Slope*step*m {
			return step, nil
		}
		step *= a.Decay
	}
	return 0, ErrStepTooSmall
}

// Exact is a brute-force line search, minimizing the objective over the
// geometric grid of candidate steps
//
//	{ γ | γ = Start·Factorⁱ, i ∈ ℕ, γ < Stop }
//
// and returning the candidate with the lowest value. When no candidate
// improves on the current value, ErrStepTooSmall is returned. A NaN trial
// aborts with *function.NonFiniteError; ±Inf trials are expected on a
// wide grid (overshoot far past the minimum) and simply never win.
type Exact struct {
	Start  float64 // First candidate step, > 0.
	Stop   float64 // Exclusive upper bound on candidates, > Start.
	Factor float64 // Geometric growth factor between candidates, > 1.
}

// Validate checks the parameter ranges.
func (e Exact) Validate() error {
	switch {
	case !(e.Start > 0) || math.IsInf(e.Start, 0):
		return fmt.Errorf("linesearch: start step must be positive and finite, got %g", e.Start)
	case !(e.Stop > e.Start) || math.IsInf(e.Stop, 0):
		return fmt.Errorf("linesearch: stop step must be greater than start and finite, got %g", e.Stop)
	case !(e.Factor > 1) || math.IsInf(e.Factor, 0):
		return fmt.Errorf("linesearch: growth factor must be greater than 1 and finite, got %g", e.Factor)
	}
	return nil
}

func (e Exact) Search(f function.Differentiable, x, d []float64, fx float64, _ []float64) (float64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	trial := make([]float64, len(x))
	bestStep := 0.0
	bestValue := fx
	for step := e.Start; step < e.Stop; step *= e.Factor {
		floats.AddScaledTo(trial, x, step, d)

		value, err := f.Value(trial)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(value) {
			return 0, &function.NonFiniteError{Op: "value", At: trial}
		}

		if value < bestValue {
			bestStep, bestValue = step, value
		}
	}
	if bestStep == 0 {
		return 0, ErrStepTooSmall
	}
	return bestStep, nil
}

// FixedStep skips the search entirely and always returns Step, the
// classic fixed learning-rate update.
type FixedStep struct {
	Step float64
}

func (s FixedStep) Search(_ function.Differentiable, _, _ []float64, _ float64, _ []float64) (float64, error) {
	if !(s.Step > 0) || math.IsInf(s.Step, 0) {
		return 0, fmt.Errorf("linesearch: fixed step must be positive and finite, got %g", s.Step)
	}
	return s.Step, nil
}
