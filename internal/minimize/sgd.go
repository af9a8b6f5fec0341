package minimize

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/descent-ml/descent/internal/function"
)

// SGDConfig holds the tunable parameters of stochastic gradient descent.
type SGDConfig struct {
	// Step is the fixed step length (learning rate). Must be positive.
	Step float64

	// MaxIterations caps the number of mini-batch steps. Must be
	// positive: without a line search there is no other reliable
	// stopping criterion for noisy gradients.
	MaxIterations int

	// BatchSize is the number of terms sampled per step (default 1).
	BatchSize int

	// Tolerance stops the run early when the mini-batch gradient norm
	// falls below it. Must be positive.
	Tolerance float64

	// Seed makes the term-sampling order reproducible. Runs with the
	// same seed, function, and start are identical.
	Seed int64
}

// DefaultSGDConfig returns the default stochastic-descent parameters.
func DefaultSGDConfig() SGDConfig {
	return SGDConfig{
		Step:          0.01,
		MaxIterations: 1000,
		BatchSize:     1,
		Tolerance:     1e-4,
	}
}

// SGD is a stochastic gradient-descent minimizer over an objective that
// decomposes as a sum of terms (function.Summation). Each step samples a
// mini-batch of terms, computes the gradient of only those terms, and
// moves by a fixed step length.
//
// Compared with GradientDescent, each step is cheap but noisy: the
// trajectory decreases the full objective only in expectation, so the
// returned Status is almost always StatusMaxIterations.
type SGD struct {
	cfg      SGDConfig
	terms    function.Summation
	observer Observer
}

// NewSGD creates a stochastic minimizer for the given summation.
func NewSGD(terms function.Summation, cfg SGDConfig) (*SGD, error) {
	if terms == nil {
		return nil, &ConfigError{Field: "terms", Reason: "must not be nil"}
	}
	if terms.Terms() < 1 {
		return nil, &ConfigError{Field: "terms", Reason: fmt.Sprintf("must have at least one term, got %d", terms.Terms())}
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 1
	}
	switch {
	case !(cfg.Step > 0) || math.IsInf(cfg.Step, 0):
		return nil, &ConfigError{Field: "Step", Reason: fmt.Sprintf("must be positive and finite, got %g", cfg.Step)}
	case cfg.MaxIterations < 1:
		return nil, &ConfigError{Field: "MaxIterations", Reason: fmt.Sprintf("must be positive, got %d", cfg.MaxIterations)}
	case cfg.BatchSize < 1:
		return nil, &ConfigError{Field: "BatchSize", Reason: fmt.Sprintf("must be positive, got %d", cfg.BatchSize)}
	case !(cfg.Tolerance > 0):
		return nil, &ConfigError{Field: "Tolerance", Reason: fmt.Sprintf("must be positive, got %g", cfg.Tolerance)}
	}
	return &SGD{cfg: cfg, terms: terms}, nil
}

// WithObserver returns a copy of the minimizer that emits per-step
// Progress events to obs. Progress.Value is always zero here: computing
// the full objective every step would cost more than the step itself,
// which is the one thing SGD exists to avoid.
func (s *SGD) WithObserver(obs Observer) *SGD {
	clone := *s
	clone.observer = obs
	return &clone
}

// Minimize runs stochastic descent on f, which must wrap the same
// summation the minimizer was constructed with (use function.Sum). The
// full objective is evaluated only once, for the final Solution;
// iterations touch mini-batches exclusively.
func (s *SGD) Minimize(f function.Differentiable, initial []float64) (*Solution, error) {
	if err := function.CheckDims(f.Dims(), initial); err != nil {
		return nil, err
	}

	x := make([]float64, len(initial))
	copy(x, initial)

	rng := rand.New(rand.NewSource(s.cfg.Seed))

	// Shuffled epochs: every term is visited once per pass, the classic
	// without-replacement sampling scheme.
	order := rng.Perm(s.terms.Terms())
	next := 0

	gradient := make([]float64, len(x))
	status := StatusMaxIterations

	iteration := 0
	for ; iteration < s.cfg.MaxIterations; iteration++ {
		floats.Scale(0, gradient)
		for b := 0; b < s.cfg.BatchSize; b++ {
			if next == len(order) {
				rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
				next = 0
			}
			g, err := s.terms.TermGradient(x, order[next])
			next++
			if err != nil {
				return nil, err
			}
			if len(g) != len(x) {
				return nil, &function.DimensionError{Want: len(x), Got: len(g)}
			}
			floats.Add(gradient, g)
		}

		norm := floats.Norm(gradient, 2)
		for _, g := range gradient {
			if math.IsNaN(g) || math.IsInf(g, 0) {
				return nil, &function.NonFiniteError{Op: "gradient", At: x}
			}
		}
		if norm <= s.cfg.Tolerance {
			status = StatusConverged
			break
		}

		floats.AddScaled(x, -s.cfg.Step, gradient)

		if s.observer != nil {
			s.observer.Observe(Progress{Iteration: iteration, GradientNorm: norm, Step: s.cfg.Step})
		}
	}

	value, err := evalValue(f, x)
	if err != nil {
		return nil, err
	}
	return &Solution{Position: x, Value: value, Iterations: iteration, Status: status}, nil
}
