// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package problems provides the public API for the benchmark objective
// functions used in tests, examples, and the CLI.
//
// Example:
//
//	p, err := problems.ByName("rosenbrock")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	start := p.RandomStart(rand.New(rand.NewSource(1)))
package problems

import (
	"github.com/descent-ml/descent/internal/problems"
)

// Bound is a closed interval constraining one input coordinate's search
// region.
type Bound = problems.Bound

// Problem is a benchmark objective with a known global minimum.
type Problem = problems.Problem

// Sphere is the n-dimensional sphere function f(x) = Σᵢ xᵢ².
type Sphere = problems.Sphere

// Rosenbrock is the two-dimensional Rosenbrock function
// f(x, y) = (a − x)² + b·(y − x²)².
type Rosenbrock = problems.Rosenbrock

// NewSphere creates a sphere function of the given dimension.
func NewSphere(dims int) *Sphere {
	return problems.NewSphere(dims)
}

// NewRosenbrock creates a Rosenbrock function; the common parameters are
// a = 1, b = 100.
func NewRosenbrock(a, b float64) *Rosenbrock {
	return problems.NewRosenbrock(a, b)
}

// ByName returns the named benchmark problem with its default parameters.
func ByName(name string) (Problem, error) {
	return problems.ByName(name)
}

// Names lists the problems ByName accepts.
func Names() []string {
	return problems.Names()
}
