package models

// RankRow is one derived standings line for a pool. Rows are recomputed on
// demand from completed matches and never persisted by the engine.
type RankRow struct {
	TeamID        int `json:"team_id"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	PointsFor     int `json:"points_for"`
	PointsAgainst int `json:"points_against"`
	PointDiff     int `json:"point_diff"`
}
