package sites

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baseload-study/internal/geo"
)

func TestPool_NegativeSeedKeepsCuratedOrder(t *testing.T) {
	pool := Pool(-1)
	require.Equal(t, PoolSize(), len(pool))
	assert.Equal(t, "Anchorage, USA", pool[0].Name)
	assert.Equal(t, "Christchurch, New Zealand", pool[len(pool)-1].Name)
}

func TestPool_ShuffleIsDeterministic(t *testing.T) {
	a := Pool(42)
	b := Pool(42)
	assert.Equal(t, a, b)

	c := Pool(43)
	assert.NotEqual(t, a, c)
}

func TestPool_ReturnsCopy(t *testing.T) {
	a := Pool(-1)
	a[0].Name = "mutated"
	b := Pool(-1)
	assert.Equal(t, "Anchorage, USA", b[0].Name)
}

func TestSelectSpread_CountAndDistinctness(t *testing.T) {
	pool := Pool(42)
	for _, k := range []int{1, 5, 10, PoolSize()} {
		selected, err := SelectSpread(pool, k)
		require.NoError(t, err)
		require.Equal(t, k, len(selected))

		seen := make(map[[2]float64]bool)
		for _, s := range selected {
			key := [2]float64{s.Latitude, s.Longitude}
			assert.False(t, seen[key], "duplicate site %s", s.Name)
			seen[key] = true
			assert.True(t, poolContains(pool, s), "site %s not drawn from pool", s.Name)
		}
	}
}

func TestSelectSpread_InvalidCount(t *testing.T) {
	pool := Pool(-1)

	_, err := SelectSpread(pool, 0)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = SelectSpread(pool, -3)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = SelectSpread(pool, len(pool)+1)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestSelectSpread_Deterministic(t *testing.T) {
	a, err := Generate(10, 42)
	require.NoError(t, err)
	b, err := Generate(10, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSelectSpread_StartsAtPoolHead(t *testing.T) {
	pool := Pool(-1)
	selected, err := SelectSpread(pool, 3)
	require.NoError(t, err)
	assert.Equal(t, pool[0].Latitude, selected[0].Latitude)
	assert.Equal(t, pool[0].Longitude, selected[0].Longitude)
}

// The max-min property: each newly added site's minimum distance to the
// already-selected set must be at least that of every other remaining
// candidate at the time it was picked.
func TestSelectSpread_FarthestPointProperty(t *testing.T) {
	pool := Pool(42)
	selected, err := SelectSpread(pool, 8)
	require.NoError(t, err)

	chosen := make(map[[2]float64]bool)
	chosen[[2]float64{selected[0].Latitude, selected[0].Longitude}] = true

	for step := 1; step < len(selected); step++ {
		pickDist := minDistToChosen(selected[step], selected[:step])
		for _, candidate := range pool {
			key := [2]float64{candidate.Latitude, candidate.Longitude}
			if chosen[key] {
				continue
			}
			d := minDistToChosen(candidate, selected[:step])
			assert.LessOrEqual(t, d, pickDist+1e-9,
				"step %d: candidate %s (%.3f km) beats pick %s (%.3f km)",
				step, candidate.Name, d, selected[step].Name, pickDist)
		}
		chosen[[2]float64{selected[step].Latitude, selected[step].Longitude}] = true
	}
}

func TestSelectSpread_RenamesInSelectionOrder(t *testing.T) {
	selected, err := Generate(3, -1)
	require.NoError(t, err)
	assert.Equal(t, "site_1_Anchorage_USA", selected[0].Name)
	assert.Regexp(t, `^site_2_`, selected[1].Name)
	assert.Regexp(t, `^site_3_`, selected[2].Name)
}

func minDistToChosen(candidate Site, chosen []Site) float64 {
	best := math.Inf(1)
	for _, s := range chosen {
		if d := geo.Distance(candidate.Point(), s.Point()); d < best {
			best = d
		}
	}
	return best
}

func poolContains(pool []Site, s Site) bool {
	for _, p := range pool {
		if p.Latitude == s.Latitude && p.Longitude == s.Longitude {
			return true
		}
	}
	return false
}
