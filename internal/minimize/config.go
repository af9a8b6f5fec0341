package minimize

import (
	"fmt"
	"math"
)

// Config holds the tunable parameters of gradient descent. The zero value
// is not usable; start from DefaultConfig and override fields as needed.
type Config struct {
	// MaxIterations caps the number of descent steps. Zero is valid and
	// means an evaluate-only run: the initial point is returned with
	// StatusMaxIterations after a single convergence check. Negative
	// values are rejected.
	MaxIterations int

	// GradientTolerance is the Euclidean gradient-norm threshold below
	// which the run is declared converged. Must be positive.
	GradientTolerance float64

	// InitialStep is the first candidate step length of each line search.
	// Every iteration restarts the search from this value. Must be
	// positive.
	InitialStep float64

	// StepDecay is the multiplicative shrink factor applied to a rejected
	// line-search step. Must be in (0, 1).
	StepDecay float64

	// ArmijoSlope is the sufficient-decrease coefficient c of the Armijo
	// acceptance test f(x+α·d) ≤ f(x) − c·α·‖g‖². Must be in (0, 1);
	// 1e-4 is the customary choice.
	ArmijoSlope float64

	// MinStep is the step length below which the line search gives up and
	// the run stops with StatusLineSearchFailed. Must be positive.
	MinStep float64
}

// DefaultConfig returns the default gradient-descent parameters.
func DefaultConfig() Config {
	return Config{
		MaxIterations:     1000,
		GradientTolerance: 1e-4,
		InitialStep:       1.0,
		StepDecay:         0.5,
		ArmijoSlope:       1e-4,
		MinStep:           1e-10,
	}
}

// ConfigError reports an invalid configuration field. Construction fails
// fast, before any iteration can run.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("minimize: invalid config: %s %s", e.Field, e.Reason)
}

// Validate checks all parameter ranges.
func (c Config) Validate() error {
	switch {
	case c.MaxIterations < 0:
		return &ConfigError{Field: "MaxIterations", Reason: fmt.Sprintf("must be non-negative, got %d", c.MaxIterations)}
	case !(c.GradientTolerance > 0):
		return &ConfigError{Field: "GradientTolerance", Reason: fmt.Sprintf("must be positive, got %g", c.GradientTolerance)}
	case !(c.InitialStep > 0) || math.IsInf(c.InitialStep, 0):
		return &ConfigError{Field: "InitialStep", Reason: fmt.Sprintf("must be positive and finite, got %g", c.InitialStep)}
	case !(c.StepDecay > 0 && c.StepDecay < 1):
		return &ConfigError{Field: "StepDecay", Reason: fmt.Sprintf("must be in (0, 1), got %g", c.StepDecay)}
	case !(c.ArmijoSlope > 0 && c.ArmijoSlope < 1):
		return &ConfigError{Field: "ArmijoSlope", Reason: fmt.Sprintf("must be in (0, 1), got %g", c.ArmijoSlope)}
	case !(c.MinStep > 0):
		return &ConfigError{Field: "MinStep", Reason: fmt.Sprintf("must be positive, got %g", c.MinStep)}
	}
	return nil
}
