package problems_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/problems"
)

func TestSphere_MinimumAtOrigin(t *testing.T) {
	sphere := problems.NewSphere(3)

	at, value := sphere.Minimum()
	assert.Equal(t, []float64{0, 0, 0}, at)
	assert.Equal(t, 0.0, value)

	got, err := sphere.Value(at)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestSphere_ValueAndGradient(t *testing.T) {
	sphere := problems.NewSphere(2)

	v, err := sphere.Value([]float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 25.0, v)

	g, err := sphere.Gradient([]float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8}, g)
}

func TestRosenbrock_MinimumValue(t *testing.T) {
	rosenbrock := problems.NewRosenbrock(1, 100)

	at, value := rosenbrock.Minimum()
	assert.Equal(t, []float64{1, 1}, at)
	assert.Equal(t, 0.0, value)

	got, err := rosenbrock.Value(at)
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-15)

	g, err := rosenbrock.Gradient(at)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0}, g, 1e-15)
}

func TestRosenbrock_KnownValue(t *testing.T) {
	rosenbrock := problems.NewRosenbrock(1, 100)

	// f(-3, -4) = (1+3)² + 100·(−4−9)² = 16 + 16900.
	v, err := rosenbrock.Value([]float64{-3, -4})
	require.NoError(t, err)
	assert.Equal(t, 16916.0, v)
}

func TestRandomStart_WithinDomain(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for _, p := range []problems.Problem{
		problems.NewSphere(4),
		problems.NewRosenbrock(1, 100),
	} {
		domain := p.Domain()
		for i := 0; i < 100; i++ {
			start := p.RandomStart(rng)
			require.Len(t, start, p.Dims())
			for j, b := range domain {
				assert.GreaterOrEqual(t, start[j], b.Lower)
				assert.LessOrEqual(t, start[j], b.Upper)
			}
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range problems.Names() {
		p, err := problems.ByName(name)
		require.NoError(t, err)
		require.NotNil(t, p)
	}

	_, err := problems.ByName("himmelblau")
	assert.Error(t, err)
}
