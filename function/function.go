// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package function provides the public API for objective-function
// contracts.
//
// The package defines the capability split every minimizer consumes:
//   - Function: value-only evaluation
//   - Differentiable: value plus gradient evaluation
//   - Summation: a sum-of-terms decomposition for stochastic methods
//
// Example:
//
//	sphere := function.NewDifferentiable(2,
//	    func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] },
//	    func(x []float64) []float64 { return []float64{2 * x[0], 2 * x[1]} },
//	)
//
// A value-only Function gains a numerical gradient through Differentiate,
// which wraps it with central finite differences.
package function

import (
	"github.com/descent-ml/descent/internal/function"
	"github.com/descent-ml/descent/internal/numdiff"
)

// Function is an objective function subject to minimization. Evaluation
// must be pure; see the contract on the interface methods.
type Function = function.Function

// Differentiable is an objective function that can also compute its
// gradient.
type Differentiable = function.Differentiable

// Summation is an objective function expressed as a sum of terms,
// f(x) = Σᵢ fᵢ(x).
type Summation = function.Summation

// DimensionError reports an evaluation at a point whose dimension does
// not match the function's expected input size.
type DimensionError = function.DimensionError

// NonFiniteError reports that an evaluation produced NaN or ±Inf.
type NonFiniteError = function.NonFiniteError

// New wraps a raw scalar callable as a value-only Function.
func New(dims int, f func([]float64) float64) Function {
	return function.New(dims, f)
}

// NewDifferentiable wraps a raw scalar callable and its analytic gradient
// callable as a Differentiable function.
func NewDifferentiable(dims int, f func([]float64) float64, grad func([]float64) []float64) Differentiable {
	return function.NewDifferentiable(dims, f, grad)
}

// Sum adapts a Summation to a Differentiable function whose value and
// gradient sum over all terms.
func Sum(dims int, terms Summation) Differentiable {
	return function.Sum(dims, terms)
}

// Differentiate adds a central finite-difference gradient to a value-only
// function. The approximation uses a per-coordinate step
// h = ε·max(1, |xᵢ|) with ε = 1e-6; see DifferentiateStep to tune ε.
func Differentiate(fn Function) Differentiable {
	return numdiff.New(fn)
}

// DifferentiateStep is Differentiate with an explicit base step ε.
func DifferentiateStep(fn Function, eps float64) Differentiable {
	return numdiff.WithStep(fn, eps)
}
