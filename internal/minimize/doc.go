// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package minimize implements first-order minimization of scalar objective
// functions.
//
// This package provides:
//   - Minimizer interface: the strategy contract every algorithm implements
//   - GradientDescent: steepest descent with backtracking Armijo line search
//   - SGD: fixed-step stochastic descent over summation objectives
//   - Solution and Status: the shared result type and stop reason
//
// A run is synchronous and strictly sequential: each iteration depends on
// the previous point, so a single Minimize call offers no internal
// parallelism. Independent runs are embarrassingly parallel; the
// multistart package drives them concurrently.
//
// Example usage:
//
//	f := function.NewDifferentiable(2,
//	    func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] },
//	    func(x []float64) []float64 { return []float64{2 * x[0], 2 * x[1]} },
//	)
//
//	gd, err := minimize.NewGradientDescent(minimize.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	solution, err := gd.Minimize(f, []float64{3, -4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(solution.Status, solution.Position, solution.Value)
//
// Stopping reasons are data, not errors: a run that hits its iteration
// budget or stalls in the line search still returns a best-effort
// Solution. Errors are reserved for usage mistakes (dimension mismatch,
// invalid configuration) and numerical anomalies (NaN or ±Inf escaping
// the objective).
package minimize
