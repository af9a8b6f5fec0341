package minimize_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/function"
	"github.com/descent-ml/descent/internal/minimize"
)

// meanTerms is a Summation with terms fᵢ(x) = ½(x₀ − cᵢ)², whose sum is
// minimized at the mean of the centers.
type meanTerms struct {
	centers []float64
}

func (m *meanTerms) Terms() int { return len(m.centers) }

func (m *meanTerms) TermValue(x []float64, i int) (float64, error) {
	d := x[0] - m.centers[i]
	return 0.5 * d * d, nil
}

func (m *meanTerms) TermGradient(x []float64, i int) ([]float64, error) {
	return []float64{x[0] - m.centers[i]}, nil
}

func newSGD(t *testing.T, terms function.Summation, cfg minimize.SGDConfig) *minimize.SGD {
	t.Helper()
	sgd, err := minimize.NewSGD(terms, cfg)
	require.NoError(t, err)
	return sgd
}

func TestSGD_FullBatchConvergesToMean(t *testing.T) {
	terms := &meanTerms{centers: []float64{-1, 1, 3, 5}} // mean = 2

	cfg := minimize.SGDConfig{
		Step:          0.1,
		MaxIterations: 2000,
		BatchSize:     4,
		Tolerance:     1e-8,
		Seed:          3,
	}
	sgd := newSGD(t, terms, cfg)

	solution, err := sgd.Minimize(function.Sum(1, terms), []float64{10})
	require.NoError(t, err)

	assert.Equal(t, minimize.StatusConverged, solution.Status)
	assert.InDelta(t, 2.0, solution.Position[0], 1e-6)
}

func TestSGD_ReducesObjective(t *testing.T) {
	terms := &meanTerms{centers: []float64{0, 0.5, 1, 1.5, 2, 2.5}}
	full := function.Sum(1, terms)

	start := []float64{25}
	before, err := full.Value(start)
	require.NoError(t, err)

	cfg := minimize.SGDConfig{
		Step:          0.05,
		MaxIterations: 500,
		BatchSize:     1,
		Tolerance:     1e-10,
		Seed:          11,
	}
	solution, err := newSGD(t, terms, cfg).Minimize(full, start)
	require.NoError(t, err)

	assert.Less(t, solution.Value, before)
}

func TestSGD_DeterministicForFixedSeed(t *testing.T) {
	terms := &meanTerms{centers: []float64{1, 2, 3}}
	full := function.Sum(1, terms)

	cfg := minimize.SGDConfig{
		Step:          0.02,
		MaxIterations: 100,
		BatchSize:     1,
		Tolerance:     1e-12,
		Seed:          99,
	}

	first, err := newSGD(t, terms, cfg).Minimize(full, []float64{7})
	require.NoError(t, err)
	second, err := newSGD(t, terms, cfg).Minimize(full, []float64{7})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSGD_DimensionMismatch(t *testing.T) {
	terms := &meanTerms{centers: []float64{1}}
	sgd := newSGD(t, terms, minimize.DefaultSGDConfig())

	_, err := sgd.Minimize(function.Sum(1, terms), []float64{1, 2})

	var dimErr *function.DimensionError
	require.True(t, errors.As(err, &dimErr))
}

func TestNewSGD_RejectsEmptySummation(t *testing.T) {
	// A summation with no terms is constructible (it evaluates to the
	// zero function) but there is nothing to sample from, so the
	// constructor must refuse it instead of the run blowing up.
	empty := &meanTerms{}

	_, err := minimize.NewSGD(empty, minimize.DefaultSGDConfig())

	var cfgErr *minimize.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "terms", cfgErr.Field)
}

func TestNewSGD_Validation(t *testing.T) {
	terms := &meanTerms{centers: []float64{1}}

	_, err := minimize.NewSGD(nil, minimize.DefaultSGDConfig())
	assert.Error(t, err)

	bad := minimize.DefaultSGDConfig()
	bad.Step = 0
	_, err = minimize.NewSGD(terms, bad)
	assert.Error(t, err)

	bad = minimize.DefaultSGDConfig()
	bad.MaxIterations = 0
	_, err = minimize.NewSGD(terms, bad)
	assert.Error(t, err)

	bad = minimize.DefaultSGDConfig()
	bad.BatchSize = -1
	_, err = minimize.NewSGD(terms, bad)
	assert.Error(t, err)
}
