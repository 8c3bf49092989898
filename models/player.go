package models

// Player is an individually rated entrant. TeamID is set once the team
// generator has placed the player.
type Player struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	DuprRating float64 `json:"dupr_rating"`
	TeamID     *int    `json:"team_id,omitempty"`
}

// TeamGenStrategy selects how rated players are grouped into teams.
type TeamGenStrategy string

const (
	// TeamGenBalanced pairs strongest with weakest (or stripes for larger
	// teams) to minimize the spread of team averages.
	TeamGenBalanced TeamGenStrategy = "balanced"
	// TeamGenSnakeDraft deals players to teams in serpentine order.
	TeamGenSnakeDraft TeamGenStrategy = "snake-draft"
	// TeamGenRandomPairs shuffles players and slices contiguous groups.
	TeamGenRandomPairs TeamGenStrategy = "random-pairs"
)

func (s TeamGenStrategy) Valid() bool {
	switch s {
	case TeamGenBalanced, TeamGenSnakeDraft, TeamGenRandomPairs:
		return true
	}
	return false
}

// TeamComposition records which players landed on a team and the team's
// average rating, for balance introspection.
type TeamComposition struct {
	TeamID        int     `json:"team_id"`
	PlayerIDs     []int   `json:"player_ids"`
	AverageRating float64 `json:"average_rating"`
}
