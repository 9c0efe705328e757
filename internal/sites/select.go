package sites

import (
	"errors"
	"fmt"
	"strings"

	"baseload-study/internal/geo"
)

// ErrInvalidCount is returned when the requested site count cannot be served
// by the candidate pool.
var ErrInvalidCount = errors.New("invalid site count")

// SelectSpread picks k sites from pool using greedy farthest-point (max-min)
// sampling: the selection starts with pool[0], then each step adds the
// candidate whose minimum distance to the already-selected set is largest.
// Ties break to the lowest pool index, so the result is deterministic for a
// given pool ordering.
//
// Selected sites are renamed site_<n>_<Name> with spaces and commas stripped,
// in selection order.
func SelectSpread(pool []Site, k int) ([]Site, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: requested %d, need at least 1", ErrInvalidCount, k)
	}
	if k > len(pool) {
		return nil, fmt.Errorf("%w: requested %d from a pool of %d", ErrInvalidCount, k, len(pool))
	}

	selected := make([]Site, 0, k)
	selected = append(selected, pool[0])
	used := make([]bool, len(pool))
	used[0] = true

	// minDist[i] tracks candidate i's distance to the nearest selected site.
	// Updating it incrementally keeps the loop at O(k*N) distance calls.
	minDist := make([]float64, len(pool))
	for i := range pool {
		if !used[i] {
			minDist[i] = geo.Distance(pool[i].Point(), pool[0].Point())
		}
	}

	for len(selected) < k {
		best := -1
		bestDist := -1.0
		for i := range pool {
			if used[i] {
				continue
			}
			if minDist[i] > bestDist {
				bestDist = minDist[i]
				best = i
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		selected = append(selected, pool[best])
		for i := range pool {
			if used[i] {
				continue
			}
			if d := geo.Distance(pool[i].Point(), pool[best].Point()); d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	out := make([]Site, len(selected))
	for i, s := range selected {
		out[i] = Site{
			Name:      fmt.Sprintf("site_%d_%s", i+1, safeName(s.Name)),
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		}
	}
	return out, nil
}

// Generate shuffles the curated pool with seed and selects k spread-out sites.
func Generate(k int, seed int64) ([]Site, error) {
	return SelectSpread(Pool(seed), k)
}

func safeName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, ",", "")
}
