package engine

import "errors"

// Sentinel errors raised by the engine before any output is produced. The
// calling layer maps each one to a user-facing status and message.
var (
	ErrEmptyTeamList           = errors.New("at least one team is required")
	ErrInvalidCourtCount       = errors.New("number of courts must be at least 1")
	ErrInsufficientPlayers     = errors.New("At least 2 players required")
	ErrPlayerCountNotDivisible = errors.New("player count must be divisible by team size")
	ErrInvalidDuprRating       = errors.New("Invalid DUPR rating")
)
