package problems

import "math/rand"

// Rosenbrock is the two-dimensional Rosenbrock function
//
//	f(x, y) = (a − x)² + b·(y − x²)²
//
// A non-convex function whose global minimum f(a, a²) = 0 sits inside a
// long, narrow, banana-shaped valley. Reaching the valley is easy;
// traversing it is slow for plain gradient descent, which makes
// Rosenbrock the standard hard case for first-order methods.
type Rosenbrock struct {
	a, b float64
}

// NewRosenbrock creates a Rosenbrock function. The common definition, and
// what ByName uses, is a = 1, b = 100.
func NewRosenbrock(a, b float64) *Rosenbrock {
	return &Rosenbrock{a: a, b: b}
}

func (r *Rosenbrock) Dims() int { return 2 }

func (r *Rosenbrock) Value(x []float64) (float64, error) {
	if err := checkDims(2, x); err != nil {
		return 0, err
	}
	u := r.a - x[0]
	v := x[1] - x[0]*x[0]
	return u*u + r.b*v*v, nil
}

func (r *Rosenbrock) Gradient(x []float64) ([]float64, error) {
	if err := checkDims(2, x); err != nil {
		return nil, err
	}
	v := x[1] - x[0]*x[0]
	return []float64{
		-2*(r.a-x[0]) - 4*r.b*x[0]*v,
		2 * r.b * v,
	}, nil
}

func (r *Rosenbrock) Domain() []Bound {
	return []Bound{
		{Lower: -2.048, Upper: 2.048},
		{Lower: -2.048, Upper: 2.048},
	}
}

func (r *Rosenbrock) Minimum() ([]float64, float64) {
	return []float64{r.a, r.a * r.a}, 0
}

func (r *Rosenbrock) RandomStart(rng *rand.Rand) []float64 {
	return randomStart(rng, r.Domain())
}
