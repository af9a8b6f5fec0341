// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linesearch provides the public API for step-length selection
// methods, pluggable into minimize.GradientDescent via WithLineSearch.
package linesearch

import (
	"github.com/descent-ml/descent/internal/linesearch"
)

// Method chooses a step length along a search direction.
type Method = linesearch.Method

// Armijo is a backtracking line search evaluating the Armijo
// sufficient-decrease rule at each candidate step.
type Armijo = linesearch.Armijo

// Exact is a brute-force line search minimizing the objective over a
// geometric grid of candidate steps.
type Exact = linesearch.Exact

// FixedStep skips the search entirely and always returns its fixed step,
// the classic constant learning-rate update.
type FixedStep = linesearch.FixedStep

// ErrStepTooSmall reports that backtracking shrank the step below the
// configured minimum without satisfying the acceptance condition.
var ErrStepTooSmall = linesearch.ErrStepTooSmall
