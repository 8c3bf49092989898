package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piotronm/tourney-backend-sub000/engine"
	"github.com/piotronm/tourney-backend-sub000/models"
)

func testService() *TournamentService {
	return NewTournamentService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func int64Ptr(v int64) *int64 { return &v }

func TestBuildTournamentFromTeams(t *testing.T) {
	in := TournamentInput{
		Teams: []models.Team{
			{Name: "Aces"}, {Name: "Bandits"}, {Name: "Cobras"}, {Name: "Drifters"},
		},
		Seed:         int64Ptr(12345),
		MaxPools:     1,
		PoolStrategy: models.PoolStrategyRespectInput,
	}

	result, err := testService().BuildTournament(in)
	require.NoError(t, err)

	require.Len(t, result.Pools, 1)
	assert.Equal(t, "Pool A", result.Pools[0].Name)
	assert.Len(t, result.Teams, 4)
	assert.Len(t, result.Matches, 6)
	assert.Empty(t, result.Assignments, "no schedule requested")

	for i, m := range result.Matches {
		assert.Equal(t, i+1, m.MatchNumber)
		assert.Equal(t, models.MatchStatusScheduled, m.Status)
	}
}

func TestBuildTournamentDeterministic(t *testing.T) {
	in := TournamentInput{
		Teams: []models.Team{
			{Name: "Aces"}, {Name: "Bandits"}, {Name: "Cobras"},
			{Name: "Drifters"}, {Name: "Eagles"}, {Name: "Foxes"},
		},
		Seed:            int64Ptr(99),
		Shuffle:         true,
		MaxPools:        2,
		PoolStrategy:    models.PoolStrategyBalanced,
		AvoidBackToBack: true,
	}

	first, err := testService().BuildTournament(in)
	require.NoError(t, err)
	second, err := testService().BuildTournament(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildTournamentFromPlayers(t *testing.T) {
	in := TournamentInput{
		Players: []models.Player{
			{Name: "Ana Cruz", DuprRating: 5.5},
			{Name: "Bo Kim", DuprRating: 3.0},
			{Name: "Cal Reyes", DuprRating: 5.0},
			{Name: "Dia Patel", DuprRating: 3.5},
		},
		Seed:         int64Ptr(1),
		MaxPools:     1,
		PoolStrategy: models.PoolStrategyRespectInput,
	}

	result, err := testService().BuildTournament(in)
	require.NoError(t, err)

	require.Len(t, result.Teams, 2)
	assert.Len(t, result.Players, 4)
	require.Len(t, result.Compositions, 2)
	assert.Len(t, result.Matches, 1)

	// Balanced doubles: both teams carry the same average rating.
	assert.InDelta(t, result.Compositions[0].AverageRating, result.Compositions[1].AverageRating, 1e-9)
}

// Player and composition team references must resolve against the result's
// team set; the generator's IDs are authoritative for player-based input.
func TestBuildTournamentPlayerTeamReferences(t *testing.T) {
	result, err := testService().BuildTournament(TournamentInput{
		Players: []models.Player{
			{Name: "Ana Cruz", DuprRating: 5.5},
			{Name: "Bo Kim", DuprRating: 3.0},
			{Name: "Cal Reyes", DuprRating: 5.0},
			{Name: "Dia Patel", DuprRating: 3.5},
		},
		Seed:         int64Ptr(12345),
		MaxPools:     1,
		PoolStrategy: models.PoolStrategyRespectInput,
	})
	require.NoError(t, err)

	ids := make(map[int]bool, len(result.Teams))
	for _, team := range result.Teams {
		ids[team.ID] = true
	}
	for _, comp := range result.Compositions {
		assert.True(t, ids[comp.TeamID],
			"composition references team %d absent from result teams", comp.TeamID)
	}
	for _, p := range result.Players {
		require.NotNil(t, p.TeamID)
		assert.True(t, ids[*p.TeamID],
			"player %d assigned to team %d absent from result teams", p.ID, *p.TeamID)
	}
	for _, pool := range result.Pools {
		for _, id := range pool.TeamIDs {
			assert.True(t, ids[id], "pool lists team %d absent from result teams", id)
		}
	}
}

func TestBuildTournamentWithSchedule(t *testing.T) {
	in := TournamentInput{
		Teams: []models.Team{
			{Name: "Aces"}, {Name: "Bandits"}, {Name: "Cobras"}, {Name: "Drifters"},
		},
		MaxPools:     1,
		PoolStrategy: models.PoolStrategyRespectInput,
		Schedule: &engine.ScheduleOptions{
			NumberOfCourts:       2,
			MatchDurationMinutes: 25,
			BreakMinutes:         5,
		},
	}

	result, err := testService().BuildTournament(in)
	require.NoError(t, err)
	require.Len(t, result.Assignments, 6)

	v := engine.ValidateSchedule(result.Assignments, result.Matches)
	assert.True(t, v.Valid, "errors: %v", v.Errors)
}

func TestBuildTournamentErrors(t *testing.T) {
	_, err := testService().BuildTournament(TournamentInput{
		MaxPools:     2,
		PoolStrategy: models.PoolStrategyBalanced,
	})
	assert.ErrorIs(t, err, engine.ErrEmptyTeamList)

	_, err = testService().BuildTournament(TournamentInput{
		Players: []models.Player{
			{Name: "Solo", DuprRating: 4.0},
			{Name: "Duo", DuprRating: 4.0},
			{Name: "Trio", DuprRating: 4.0},
		},
		MaxPools:     1,
		PoolStrategy: models.PoolStrategyRespectInput,
	})
	assert.ErrorIs(t, err, engine.ErrPlayerCountNotDivisible)

	_, err = testService().BuildTournament(TournamentInput{
		Teams:        []models.Team{{Name: "A"}, {Name: "B"}},
		MaxPools:     1,
		PoolStrategy: models.PoolStrategyRespectInput,
		Schedule:     &engine.ScheduleOptions{NumberOfCourts: 0},
	})
	assert.ErrorIs(t, err, engine.ErrInvalidCourtCount)
}

func TestPoolStandingsPassthrough(t *testing.T) {
	scoreA, scoreB := 11, 7
	teamB := 2
	matches := []models.Match{{
		PoolID:  1,
		TeamAID: 1,
		TeamBID: &teamB,
		ScoreA:  &scoreA,
		ScoreB:  &scoreB,
		Status:  models.MatchStatusCompleted,
	}}

	rows := testService().PoolStandings(1, matches)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].TeamID)
	assert.Equal(t, 1, rows[0].Wins)
}
