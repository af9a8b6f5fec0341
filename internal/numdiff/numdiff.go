// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numdiff adds a numerical gradient to a value-only objective
// function using central finite differences.
//
// For each coordinate i the gradient component is estimated as
//
//	g[i] = (f(x + h·eᵢ) − f(x − h·eᵢ)) / (2h)
//
// with a per-coordinate step h = ε·max(1, |xᵢ|). Magnitude scaling keeps
// the step conditioned for coordinates far from the origin; the policy is
// fixed for the lifetime of the wrapper. Truncation error is O(ε²), so the
// approximation is adequate for descent directions but callers needing
// exact gradients should supply an analytic one via
// function.NewDifferentiable instead.
//
// Each Gradient call costs 2n evaluations of the wrapped function, which
// dominates the run time for expensive objectives. No caching is performed
// across calls.
package numdiff

import (
	"math"

	"github.com/descent-ml/descent/internal/function"
)

// DefaultStep is the base finite-difference step ε used by New.
const DefaultStep = 1e-6

// numerical decorates a value-only function with a finite-difference
// gradient, satisfying function.Differentiable.
type numerical struct {
	fn  function.Function
	eps float64
}

// New wraps fn with a central finite-difference gradient using DefaultStep.
func New(fn function.Function) function.Differentiable {
	return WithStep(fn, DefaultStep)
}

// WithStep is New with an explicit base step ε. It panics if fn is nil or
// eps is not a positive finite number.
func WithStep(fn function.Function, eps float64) function.Differentiable {
	if fn == nil {
		panic("numdiff: nil function")
	}
	if eps <= 0 || math.IsInf(eps, 0) || math.IsNaN(eps) {
		panic("numdiff: step must be positive and finite")
	}
	return &numerical{fn: fn, eps: eps}
}

func (n *numerical) Dims() int { return n.fn.Dims() }

func (n *numerical) Value(x []float64) (float64, error) {
	return n.fn.Value(x)
}

func (n *numerical) Gradient(x []float64) ([]float64, error) {
	if err := function.CheckDims(n.fn.Dims(), x); err != nil {
		return nil, err
	}

	// Perturb a single working copy in place, one coordinate at a time.
	shifted := make([]float64, len(x))
	copy(shifted, x)

	gradient := make([]float64, len(x))
	for i, xi := range x {
		h := n.eps * math.Max(1, math.Abs(xi))

		shifted[i] = xi + h
		forward, err := n.fn.Value(shifted)
		if err != nil {
			return nil, err
		}

		shifted[i] = xi - h
		backward, err := n.fn.Value(shifted)
		if err != nil {
			return nil, err
		}

		shifted[i] = xi
		gradient[i] = (forward - backward) / (2 * h)
	}
	return gradient, nil
}
