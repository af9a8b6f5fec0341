package numdiff_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/function"
	"github.com/descent-ml/descent/internal/numdiff"
	"github.com/descent-ml/descent/internal/problems"
)

func TestGradient_SphereMatchesAnalytic(t *testing.T) {
	sphere := problems.NewSphere(3)
	numerical := numdiff.New(sphere)

	x := []float64{1.5, -2, 0.25}

	want, err := sphere.Gradient(x)
	require.NoError(t, err)

	got, err := numerical.Gradient(x)
	require.NoError(t, err)

	// Central differences are exact on quadratics up to rounding.
	assert.InDeltaSlice(t, want, got, 1e-5)
}

func TestGradient_RosenbrockMatchesAnalytic(t *testing.T) {
	rosenbrock := problems.NewRosenbrock(1, 100)
	numerical := numdiff.New(rosenbrock)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		x := rosenbrock.RandomStart(rng)

		want, err := rosenbrock.Gradient(x)
		require.NoError(t, err)

		got, err := numerical.Gradient(x)
		require.NoError(t, err)

		for j := range want {
			assert.InDelta(t, want[j], got[j], 1e-3+1e-4*abs(want[j]),
				"component %d at %v", j, x)
		}
	}
}

func TestGradient_SignsNearOrigin(t *testing.T) {
	square := numdiff.New(function.New(1, func(x []float64) float64 {
		return x[0] * x[0]
	}))

	g, err := square.Gradient([]float64{0})
	require.NoError(t, err)
	assert.InDelta(t, 0, g[0], 1e-3)

	g, err = square.Gradient([]float64{1})
	require.NoError(t, err)
	assert.Greater(t, g[0], 1.0)

	g, err = square.Gradient([]float64{-1})
	require.NoError(t, err)
	assert.Less(t, g[0], -1.0)
}

func TestGradient_DimensionMismatch(t *testing.T) {
	numerical := numdiff.New(problems.NewSphere(2))

	_, err := numerical.Gradient([]float64{1})
	var dimErr *function.DimensionError
	require.True(t, errors.As(err, &dimErr))
}

func TestValue_Delegates(t *testing.T) {
	numerical := numdiff.New(problems.NewSphere(2))

	v, err := numerical.Value([]float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 25.0, v)
}

func TestWithStep_RejectsBadStep(t *testing.T) {
	sphere := problems.NewSphere(1)

	assert.Panics(t, func() { numdiff.WithStep(sphere, 0) })
	assert.Panics(t, func() { numdiff.WithStep(sphere, -1e-6) })
	assert.Panics(t, func() { numdiff.WithStep(nil, 1e-6) })
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
