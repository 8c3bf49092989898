package models

// PoolStrategy selects how teams are partitioned into pools.
type PoolStrategy string

const (
	// PoolStrategyRespectInput groups teams by the pool hints they arrived
	// with; teams without a hint join the lowest-numbered group.
	PoolStrategyRespectInput PoolStrategy = "respect-input"
	// PoolStrategyBalanced ignores hints and slices teams into evenly sized
	// pools in their current order.
	PoolStrategyBalanced PoolStrategy = "balanced"
)

func (s PoolStrategy) Valid() bool {
	switch s {
	case PoolStrategyRespectInput, PoolStrategyBalanced:
		return true
	}
	return false
}

// Pool is a disjoint subgroup of teams that plays its own self-contained
// round robin. TeamIDs partitions the team set handed to pool assignment.
type Pool struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	TeamIDs []int  `json:"team_ids"`
}
