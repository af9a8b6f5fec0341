// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package function defines the objective-function contracts used by every
// minimizer in the library.
//
// The capability split mirrors what a minimizer can ask for:
//   - Function: value-only evaluation, f(x) = y
//   - Differentiable: value plus gradient evaluation
//   - Summation: a function decomposed as a sum of terms, f(x) = Σᵢ fᵢ(x)
//
// Raw callables are wrapped at construction time:
//
//	square := function.New(1, func(x []float64) float64 {
//	    return x[0] * x[0]
//	})
//
//	sphere := function.NewDifferentiable(2,
//	    func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] },
//	    func(x []float64) []float64 { return []float64{2 * x[0], 2 * x[1]} },
//	)
//
// A value-only Function gains gradient capability through the numdiff
// package, which synthesizes a central finite-difference gradient.
//
// Evaluation must be pure. The minimizers may evaluate the same point more
// than once and expect consistent results, and concurrent multi-start runs
// share a single Function across goroutines without locking.
package function
