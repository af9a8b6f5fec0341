package function

import "gonum.org/v1/gonum/floats"

// Summation is an objective function expressed as a sum of individual
// terms, f(x) = Σᵢ fᵢ(x). The same decomposition applies to the gradient.
//
// Stochastic optimizers exploit this structure by evaluating only a
// sampled subset of terms per step; see minimize.SGD.
type Summation interface {
	// Terms returns the number of terms being summed.
	Terms() int

	// TermValue computes fᵢ(x) for term i.
	TermValue(x []float64, i int) (float64, error)

	// TermGradient computes the gradient of term i at x.
	TermGradient(x []float64, i int) ([]float64, error)
}

// summed adapts a Summation to the Differentiable contract by summing
// every term.
type summed struct {
	dims  int
	terms Summation
}

// Sum adapts a Summation of the given input dimension to a Differentiable
// function whose value and gradient sum over all terms. It panics if
// dims < 1 or terms is nil.
func Sum(dims int, terms Summation) Differentiable {
	if dims < 1 {
		panic("function: dims must be at least 1")
	}
	if terms == nil {
		panic("function: nil summation")
	}
	return &summed{dims: dims, terms: terms}
}

func (s *summed) Dims() int { return s.dims }

func (s *summed) Value(x []float64) (float64, error) {
	if err := CheckDims(s.dims, x); err != nil {
		return 0, err
	}
	var value float64
	for i := 0; i < s.terms.Terms(); i++ {
		v, err := s.terms.TermValue(x, i)
		if err != nil {
			return 0, err
		}
		value += v
	}
	return value, nil
}

func (s *summed) Gradient(x []float64) ([]float64, error) {
	if err := CheckDims(s.dims, x); err != nil {
		return nil, err
	}
	gradient := make([]float64, s.dims)
	for i := 0; i < s.terms.Terms(); i++ {
		g, err := s.terms.TermGradient(x, i)
		if err != nil {
			return nil, err
		}
		if len(g) != s.dims {
			return nil, &DimensionError{Want: s.dims, Got: len(g)}
		}
		floats.Add(gradient, g)
	}
	return gradient, nil
}
