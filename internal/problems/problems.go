// Package problems implements well-known optimization test functions.
//
// Currently implemented, following the usual benchmark catalogue:
//
//   - Sphere (bowl-shaped): f(x) = Σᵢ xᵢ², convex and unimodal
//   - Rosenbrock (valley-shaped): f(x, y) = (a−x)² + b(y−x²)²
//
// Each problem knows its search domain, its global minimum, and how to
// draw a random feasible starting point, which is what the minimizer
// tests and the CLI need.
package problems

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/descent-ml/descent/internal/function"
)

// Bound is a closed interval constraining one input coordinate's sensible
// search region. Problems are still defined outside it; the bounds only
// steer random starts.
type Bound struct {
	Lower, Upper float64
}

// Problem is a benchmark objective with a known global minimum.
type Problem interface {
	function.Differentiable

	// Domain returns per-coordinate bounds for random starts.
	Domain() []Bound

	// Minimum returns the position and value of the global minimum.
	Minimum() ([]float64, float64)

	// RandomStart draws a feasible starting point from the domain.
	RandomStart(rng *rand.Rand) []float64
}

// checkDims is a local shorthand for the function package's dimension
// validation.
func checkDims(want int, x []float64) error {
	return function.CheckDims(want, x)
}

// randomStart draws uniformly from each bound, shared by all problems.
func randomStart(rng *rand.Rand, domain []Bound) []float64 {
	x := make([]float64, len(domain))
	for i, b := range domain {
		x[i] = b.Lower + rng.Float64()*(b.Upper-b.Lower)
	}
	return x
}

// ByName returns the named benchmark problem with its default parameters.
// Known names: "sphere", "rosenbrock".
func ByName(name string) (Problem, error) {
	switch name {
	case "sphere":
		return NewSphere(2), nil
	case "rosenbrock":
		return NewRosenbrock(1, 100), nil
	}
	return nil, fmt.Errorf("problems: unknown problem %q (known: %v)", name, Names())
}

// Names lists the problems ByName accepts, sorted.
func Names() []string {
	names := []string{"sphere", "rosenbrock"}
	sort.Strings(names)
	return names
}
