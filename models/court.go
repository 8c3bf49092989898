package models

// CourtAssignment pins a match to a court and a time slot. TimeSlot is
// 1-based and global across rounds; all matches in a slot run concurrently
// on different courts.
type CourtAssignment struct {
	MatchID               int `json:"match_id"`
	CourtNumber           int `json:"court_number"`
	TimeSlot              int `json:"time_slot"`
	EstimatedStartMinutes int `json:"estimated_start_minutes"`
}
