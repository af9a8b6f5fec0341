package linesearch_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/function"
	"github.com/descent-ml/descent/internal/linesearch"
)

var sphere = function.NewDifferentiable(1,
	func(x []float64) float64 { return x[0] * x[0] },
	func(x []float64) []float64 { return []float64{2 * x[0]} },
)

func defaultArmijo() linesearch.Armijo {
	return linesearch.Armijo{
		InitialStep: 1.0,
		Decay:       0.5,
		Slope:       1e-4,
		MinStep:     1e-10,
	}
}

func TestArmijo_AcceptsDecreasingStep(t *testing.T) {
	x := []float64{3}
	g := []float64{6}
	d := []float64{-6}

	step, err := defaultArmijo().Search(sphere, x, d, 9, g)
	require.NoError(t, err)

	// α = 1 maps 3 to −3 (no decrease), α = 0.5 maps 3 to 0.
	assert.Equal(t, 0.5, step)
}

func TestArmijo_FailsBelowMinStep(t *testing.T) {
	// Claimed descent direction along which the function actually
	// increases: no step can satisfy sufficient decrease.
	increasing := function.NewDifferentiable(1,
		func(x []float64) float64 { return x[0] },
		func(x []float64) []float64 { return []float64{-1} },
	)

	x := []float64{0}
	g := []float64{-1}
	d := []float64{1}

	_, err := defaultArmijo().Search(increasing, x, d, 0, g)
	require.True(t, errors.Is(err, linesearch.ErrStepTooSmall))
}

func TestArmijo_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*linesearch.Armijo)
	}{
		{"zero initial step", func(a *linesearch.Armijo) { a.InitialStep = 0 }},
		{"decay of one", func(a *linesearch.Armijo) { a.Decay = 1 }},
		{"negative decay", func(a *linesearch.Armijo) { a.Decay = -0.5 }},
		{"slope of one", func(a *linesearch.Armijo) { a.Slope = 1 }},
		{"zero min step", func(a *linesearch.Armijo) { a.MinStep = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := defaultArmijo()
			tt.mutate(&a)
			assert.Error(t, a.Validate())
		})
	}

	assert.NoError(t, defaultArmijo().Validate())
}

func TestArmijo_InfiniteTrialAborts(t *testing.T) {
	// Overflows to +Inf as soon as the search leaves the positive
	// half-axis. The first trial (α = 1 maps 3 to −3) must abort the
	// run rather than count as a rejected step.
	overflowing := function.NewDifferentiable(1,
		func(x []float64) float64 {
			if x[0] < 0 {
				return math.Inf(1)
			}
			return x[0] * x[0]
		},
		func(x []float64) []float64 { return []float64{2 * x[0]} },
	)

	_, err := defaultArmijo().Search(overflowing, []float64{3}, []float64{-6}, 9, []float64{6})

	var nfErr *function.NonFiniteError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "value", nfErr.Op)
}

func TestExact_PicksBestGridStep(t *testing.T) {
	// f(3 − 6γ)² over the grid {0.0625, 0.125, 0.25, 0.5}: γ = 0.5
	// lands exactly on the minimum.
	search := linesearch.Exact{Start: 0.0625, Stop: 1, Factor: 2}

	step, err := search.Search(sphere, []float64{3}, []float64{-6}, 9, []float64{6})
	require.NoError(t, err)
	assert.Equal(t, 0.5, step)
}

func TestExact_NoImprovement(t *testing.T) {
	increasing := function.NewDifferentiable(1,
		func(x []float64) float64 { return x[0] },
		func(x []float64) []float64 { return []float64{-1} },
	)

	_, err := linesearch.Exact{Start: 0.1, Stop: 10, Factor: 2}.
		Search(increasing, []float64{0}, []float64{1}, 0, []float64{-1})
	require.True(t, errors.Is(err, linesearch.ErrStepTooSmall))
}

func TestExact_Validate(t *testing.T) {
	assert.NoError(t, linesearch.Exact{Start: 0.1, Stop: 10, Factor: 2}.Validate())

	assert.Error(t, linesearch.Exact{Start: 0, Stop: 10, Factor: 2}.Validate())
	assert.Error(t, linesearch.Exact{Start: 1, Stop: 1, Factor: 2}.Validate())
	assert.Error(t, linesearch.Exact{Start: 0.1, Stop: 10, Factor: 1}.Validate())
}

func TestFixedStep_ReturnsWidth(t *testing.T) {
	step, err := linesearch.FixedStep{Step: 0.01}.Search(sphere, []float64{1}, []float64{-2}, 1, []float64{2})
	require.NoError(t, err)
	assert.Equal(t, 0.01, step)

	_, err = linesearch.FixedStep{Step: 0}.Search(sphere, []float64{1}, []float64{-2}, 1, []float64{2})
	assert.Error(t, err)
}
