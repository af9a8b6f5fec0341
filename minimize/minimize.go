// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package minimize provides the public API for the first-order
// minimizers.
//
// Example:
//
//	gd, err := minimize.NewGradientDescent(minimize.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	solution, err := gd.Minimize(f, []float64{-3, -4})
//
// See the Solution Status for why a run stopped; errors are reserved for
// usage mistakes and non-finite values.
package minimize

import (
	"github.com/descent-ml/descent/internal/function"
	"github.com/descent-ml/descent/internal/minimize"
)

// Status reports why a minimization run stopped.
type Status = minimize.Status

// Stop reasons. All of them yield a valid Solution.
const (
	StatusConverged        Status = minimize.StatusConverged
	StatusMaxIterations    Status = minimize.StatusMaxIterations
	StatusLineSearchFailed Status = minimize.StatusLineSearchFailed
)

// Solution is the result of a minimization run.
type Solution = minimize.Solution

// Minimizer is the strategy contract shared by every minimization
// algorithm.
type Minimizer = minimize.Minimizer

// Config holds the tunable parameters of gradient descent.
type Config = minimize.Config

// ConfigError reports an invalid configuration field.
type ConfigError = minimize.ConfigError

// Progress is a per-iteration snapshot emitted to an Observer.
type Progress = minimize.Progress

// Observer receives progress events during a run.
type Observer = minimize.Observer

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc = minimize.ObserverFunc

// GradientDescent is steepest descent with a backtracking Armijo line
// search.
type GradientDescent = minimize.GradientDescent

// SGD is fixed-step stochastic gradient descent over a summation
// objective.
type SGD = minimize.SGD

// SGDConfig holds the tunable parameters of stochastic gradient descent.
type SGDConfig = minimize.SGDConfig

// DefaultConfig returns the default gradient-descent parameters.
func DefaultConfig() Config {
	return minimize.DefaultConfig()
}

// DefaultSGDConfig returns the default stochastic-descent parameters.
func DefaultSGDConfig() SGDConfig {
	return minimize.DefaultSGDConfig()
}

// NewGradientDescent creates a gradient-descent minimizer, validating the
// configuration fail-fast.
func NewGradientDescent(cfg Config) (*GradientDescent, error) {
	return minimize.NewGradientDescent(cfg)
}

// NewSGD creates a stochastic minimizer for the given summation.
func NewSGD(terms function.Summation, cfg SGDConfig) (*SGD, error) {
	return minimize.NewSGD(terms, cfg)
}
