package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/piotronm/tourney-backend-sub000/engine"
	"github.com/piotronm/tourney-backend-sub000/models"
)

// TournamentInput is one complete snapshot for a build pass. Either Teams
// or Players must be set; players are first grouped into teams with the
// DUPR generator and the result feeds pool assignment.
type TournamentInput struct {
	Teams   []models.Team
	Players []models.Player

	Seed *int64
	// Shuffle applies to team-based input only. Generated teams keep the
	// generator's order and IDs.
	Shuffle bool

	MaxPools        int
	PoolStrategy    models.PoolStrategy
	AvoidBackToBack bool

	// TeamGen applies only to player-based inputs; nil means balanced
	// doubles.
	TeamGen *engine.TeamGenOptions
	// Schedule is optional; nil skips court assignment.
	Schedule *engine.ScheduleOptions
}

// TournamentResult carries every artifact of one pass. No partial results:
// a failing step returns an error and nothing else.
type TournamentResult struct {
	Teams        []models.Team
	Players      []models.Player
	Compositions []models.TeamComposition
	Pools        []models.Pool
	Matches      []models.Match
	Assignments  []models.CourtAssignment
}

// TournamentService drives the engine pipeline. The engine stays pure; the
// service owns logging and step sequencing.
type TournamentService struct {
	logger *slog.Logger
}

func NewTournamentService(logger *slog.Logger) *TournamentService {
	return &TournamentService{logger: logger}
}

// BuildTournament runs the full pipeline: team-based input is preprocessed,
// player-based input goes through the DUPR generator instead, then pools ->
// round robin -> optional court schedule.
func (s *TournamentService) BuildTournament(in TournamentInput) (*TournamentResult, error) {
	var seed int64
	if in.Seed != nil {
		seed = *in.Seed
	}
	rng := engine.NewRand(seed)

	res := &TournamentResult{}

	if len(in.Players) > 0 {
		opts := engine.TeamGenOptions{Strategy: models.TeamGenBalanced, TeamSize: 2}
		if in.TeamGen != nil {
			opts = *in.TeamGen
		}
		gen, err := engine.GenerateTeamsFromPlayers(in.Players, rng, opts)
		if err != nil {
			return nil, fmt.Errorf("generate teams from players: %w", err)
		}
		// Generated teams go straight to pool assignment. The preprocessor
		// would re-issue IDs and orphan the player and composition
		// references, which must keep pointing at res.Teams.
		res.Teams = gen.Teams
		res.Players = gen.Players
		res.Compositions = gen.Compositions
		s.logger.Info("teams generated from players",
			slog.Int("players", len(gen.Players)),
			slog.Int("teams", len(gen.Teams)),
			slog.String("strategy", string(opts.Strategy)),
			slog.Float64("rating_variance", engine.TeamRatingVariance(gen.Compositions)))
	} else {
		processed, err := engine.PreprocessTeams(in.Teams, rng, in.Shuffle, in.Seed)
		if err != nil {
			return nil, fmt.Errorf("preprocess teams: %w", err)
		}
		res.Teams = processed
	}

	pools, err := engine.AssignToPools(res.Teams, in.MaxPools, in.PoolStrategy)
	if err != nil {
		return nil, fmt.Errorf("assign pools: %w", err)
	}
	res.Pools = pools

	if dropped := len(res.Teams) - pooledTeamCount(pools); dropped > 0 {
		s.logger.Warn("teams dropped by pool cap",
			slog.Int("dropped", dropped),
			slog.Int("max_pools", in.MaxPools))
	}

	matches, err := engine.GenerateRoundRobinMatches(pools, engine.RoundRobinOptions{
		AvoidBackToBack: in.AvoidBackToBack,
	})
	if err != nil {
		return nil, fmt.Errorf("generate round robin: %w", err)
	}
	res.Matches = matches
	s.logger.Info("round robin generated",
		slog.Int("pools", len(pools)),
		slog.Int("matches", len(matches)))

	if in.Schedule != nil {
		assignments, err := engine.ScheduleMatchesToCourts(matches, *in.Schedule)
		if err != nil {
			return nil, fmt.Errorf("schedule courts: %w", err)
		}
		if v := engine.ValidateSchedule(assignments, matches); !v.Valid {
			return nil, fmt.Errorf("schedule failed validation: %s", strings.Join(v.Errors, "; "))
		}
		res.Assignments = assignments
		s.logger.Info("courts scheduled",
			slog.Int("assignments", len(assignments)),
			slog.Int("courts", in.Schedule.NumberOfCourts))
	}

	return res, nil
}

// PoolStandings ranks one pool from the given matches.
func (s *TournamentService) PoolStandings(poolID int, matches []models.Match) []models.RankRow {
	return engine.ComputePoolStandings(poolID, matches)
}

func pooledTeamCount(pools []models.Pool) int {
	n := 0
	for _, p := range pools {
		n += len(p.TeamIDs)
	}
	return n
}
