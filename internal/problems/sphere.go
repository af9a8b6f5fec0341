package problems

import "math/rand"

// Sphere is the n-dimensional sphere function
//
//	f(x) = Σᵢ xᵢ²
//
// It is continuous, convex and unimodal with its global minimum
// f(0,...,0) = 0, which makes it the canonical smoke test: any working
// descent method must solve it.
type Sphere struct {
	dims int
}

// NewSphere creates a sphere function of the given dimension. It panics
// if dims < 1.
func NewSphere(dims int) *Sphere {
	if dims < 1 {
		panic("problems: dims must be at least 1")
	}
	return &Sphere{dims: dims}
}

func (s *Sphere) Dims() int { return s.dims }

func (s *Sphere) Value(x []float64) (float64, error) {
	if err := checkDims(s.dims, x); err != nil {
		return 0, err
	}
	var sum float64
	for _, xi := range x {
		sum += xi * xi
	}
	return sum, nil
}

func (s *Sphere) Gradient(x []float64) ([]float64, error) {
	if err := checkDims(s.dims, x); err != nil {
		return nil, err
	}
	g := make([]float64, len(x))
	for i, xi := range x {
		g[i] = 2 * xi
	}
	return g, nil
}

func (s *Sphere) Domain() []Bound {
	domain := make([]Bound, s.dims)
	for i := range domain {
		domain[i] = Bound{Lower: -5.12, Upper: 5.12}
	}
	return domain
}

func (s *Sphere) Minimum() ([]float64, float64) {
	return make([]float64, s.dims), 0
}

func (s *Sphere) RandomStart(rng *rand.Rand) []float64 {
	return randomStart(rng, s.Domain())
}
