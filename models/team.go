package models

// Team is a competitor entry. PoolID on a team is only an input hint for the
// respect-input pool strategy; actual membership is recorded on the Pool.
type Team struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	PoolID *int   `json:"pool_id,omitempty"`
}
