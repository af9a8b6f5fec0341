package function

// Function is an objective function f subject to minimization.
//
// Implementations must be pure: Value may be called several times at the
// same point and has to return the same result each time. The minimizer
// relies on this both for its convergence reasoning and for safe read-only
// sharing across concurrent runs.
//
// Non-finite results (NaN, ±Inf) are passed through unchanged; detecting
// and reacting to them is the minimizer's responsibility.
type Function interface {
	// Dims returns the expected input dimension n.
	Dims() int

	// Value computes f(x). It returns a *DimensionError when len(x) != Dims().
	Value(x []float64) (float64, error)
}

// Differentiable is an objective function that can also compute its
// gradient, either analytically or through numerical approximation.
type Differentiable interface {
	Function

	// Gradient computes ∀ᵢ ∂/∂xᵢ f(x). The result has length Dims().
	// It returns a *DimensionError when len(x) != Dims().
	Gradient(x []float64) ([]float64, error)
}

// valueFunc wraps a raw scalar callable as a value-only Function.
type valueFunc struct {
	dims int
	f    func([]float64) float64
}

// New wraps a raw scalar callable f of the given input dimension as a
// value-only Function. Gradient capability can be added with the numdiff
// package. It panics if dims < 1 or f is nil; both are programmer errors.
func New(dims int, f func([]float64) float64) Function {
	if dims < 1 {
		panic("function: dims must be at least 1")
	}
	if f == nil {
		panic("function: nil value callable")
	}
	return &valueFunc{dims: dims, f: f}
}

func (v *valueFunc) Dims() int { return v.dims }

func (v *valueFunc) Value(x []float64) (float64, error) {
	if err := CheckDims(v.dims, x); err != nil {
		return 0, err
	}
	return v.f(x), nil
}

// gradFunc wraps a pair of raw callables as a Differentiable function
// with an analytic gradient.
type gradFunc struct {
	valueFunc
	grad func([]float64) []float64
}

// NewDifferentiable wraps a raw scalar callable f and its analytic gradient
// callable grad as a Differentiable function. It panics if dims < 1 or
// either callable is nil.
func NewDifferentiable(dims int, f func([]float64) float64, grad func([]float64) []float64) Differentiable {
	if dims < 1 {
		panic("function: dims must be at least 1")
	}
	if f == nil || grad == nil {
		panic("function: nil callable")
	}
	return &gradFunc{valueFunc: valueFunc{dims: dims, f: f}, grad: grad}
}

func (g *gradFunc) Gradient(x []float64) ([]float64, error) {
	if err := CheckDims(g.dims, x); err != nil {
		return nil, err
	}
	return g.grad(x), nil
}

// CheckDims validates that x has the expected dimension, returning a
// *DimensionError on mismatch.
func CheckDims(want int, x []float64) error {
	if len(x) != want {
		return &DimensionError{Want: want, Got: len(x)}
	}
	return nil
}
