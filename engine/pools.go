package engine

import (
	"fmt"
	"sort"

	"github.com/piotronm/tourney-backend-sub000/models"
)

const minTeamsPerPool = 2

// AssignToPools partitions teams into pools using the given strategy.
func AssignToPools(teams []models.Team, maxPools int, strategy models.PoolStrategy) ([]models.Pool, error) {
	if len(teams) == 0 {
		return nil, ErrEmptyTeamList
	}

	switch strategy {
	case models.PoolStrategyRespectInput:
		return assignRespectInput(teams, maxPools), nil
	case models.PoolStrategyBalanced:
		return assignBalanced(teams, maxPools), nil
	default:
		return nil, fmt.Errorf("unsupported pool strategy %q", strategy)
	}
}

// assignRespectInput groups teams by their explicit pool hints, sorted
// ascending. Teams without a hint join the lowest-sorted group. Groups past
// maxPools are dropped from the output together with their teams; callers
// that care about the loss compare team counts and report it.
func assignRespectInput(teams []models.Team, maxPools int) []models.Pool {
	groups := make(map[int][]int)
	var keys []int
	for _, t := range teams {
		if t.PoolID == nil {
			continue
		}
		if _, seen := groups[*t.PoolID]; !seen {
			keys = append(keys, *t.PoolID)
		}
		groups[*t.PoolID] = append(groups[*t.PoolID], t.ID)
	}

	if len(keys) == 0 {
		ids := make([]int, len(teams))
		for i, t := range teams {
			ids[i] = t.ID
		}
		return []models.Pool{{ID: 1, Name: PoolName(1), TeamIDs: ids}}
	}

	sort.Ints(keys)

	lowest := keys[0]
	for _, t := range teams {
		if t.PoolID == nil {
			groups[lowest] = append(groups[lowest], t.ID)
		}
	}

	if maxPools > 0 && len(keys) > maxPools {
		keys = keys[:maxPools]
	}

	pools := make([]models.Pool, len(keys))
	for i, k := range keys {
		pools[i] = models.Pool{ID: i + 1, Name: PoolName(i + 1), TeamIDs: groups[k]}
	}
	return pools
}

// assignBalanced slices teams into contiguous runs in their current order.
// Pool count is min(maxPools, teamCount/2) with a floor of one pool, so
// every pool keeps at least two teams; the remainder goes one extra team
// each to the earliest pools.
func assignBalanced(teams []models.Team, maxPools int) []models.Pool {
	n := len(teams)
	numPools := maxPools
	if half := n / minTeamsPerPool; numPools > half {
		numPools = half
	}
	if numPools < 1 {
		numPools = 1
	}

	base := n / numPools
	extra := n % numPools

	pools := make([]models.Pool, 0, numPools)
	idx := 0
	for p := 1; p <= numPools; p++ {
		size := base
		if p <= extra {
			size++
		}
		ids := make([]int, 0, size)
		for _, t := range teams[idx : idx+size] {
			ids = append(ids, t.ID)
		}
		idx += size
		pools = append(pools, models.Pool{ID: p, Name: PoolName(p), TeamIDs: ids})
	}
	return pools
}

// PoolName labels pools "Pool A" through "Pool Z", then falls back to the
// number itself ("Pool 27"). The letter range is unguarded below 1, so
// PoolName(0) yields "Pool @"; downstream fixtures depend on that.
func PoolName(n int) string {
	if n <= 26 {
		return "Pool " + string(rune('A'+n-1))
	}
	return fmt.Sprintf("Pool %d", n)
}
