package models

type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
	MatchStatusCanceled   MatchStatus = "canceled"
)

// Match is one pairing inside a pool's round robin. TeamBID is nil when the
// opponent is a bye; scores stay nil until a result is reported. Round is
// pool-local and 1-based, MatchNumber is a single counter across all pools.
type Match struct {
	ID          int         `json:"id"`
	PoolID      int         `json:"pool_id"`
	Round       int         `json:"round"`
	MatchNumber int         `json:"match_number"`
	TeamAID     int         `json:"team_a_id"`
	TeamBID     *int        `json:"team_b_id,omitempty"`
	ScoreA      *int        `json:"score_a,omitempty"`
	ScoreB      *int        `json:"score_b,omitempty"`
	Status      MatchStatus `json:"status"`
	SlotIndex   *int        `json:"slot_index,omitempty"`
}
