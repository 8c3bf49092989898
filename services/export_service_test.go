package services

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piotronm/tourney-backend-sub000/engine"
	"github.com/piotronm/tourney-backend-sub000/models"
)

func TestWriteMatchesRendering(t *testing.T) {
	teams := []models.Team{{ID: 1, Name: "Smith, Jr/Lee"}}
	matches := []models.Match{{
		MatchNumber: 1,
		PoolID:      9, // no pool record, label falls back
		Round:       1,
		TeamAID:     1,
		TeamBID:     nil, // bye
		Status:      models.MatchStatusScheduled,
	}}

	var buf bytes.Buffer
	err := NewExportService().WriteMatches(&buf, matches, teams, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "match_number,pool,round,team_a,team_b,score_a,score_b,status", lines[0])
	assert.Equal(t, `1,Pool 9,1,"Smith, Jr/Lee",BYE,,,scheduled`, lines[1])
}

func TestWriteMatchesScores(t *testing.T) {
	teamB, scoreA, scoreB := 2, 11, 9
	teams := []models.Team{{ID: 1, Name: "Aces"}, {ID: 2, Name: "Bandits"}}
	pools := []models.Pool{{ID: 1, Name: "Pool A", TeamIDs: []int{1, 2}}}
	matches := []models.Match{{
		MatchNumber: 1,
		PoolID:      1,
		Round:       1,
		TeamAID:     1,
		TeamBID:     &teamB,
		ScoreA:      &scoreA,
		ScoreB:      &scoreB,
		Status:      models.MatchStatusCompleted,
	}}

	var buf bytes.Buffer
	err := NewExportService().WriteMatches(&buf, matches, teams, pools)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1,Pool A,1,Aces,Bandits,11,9,completed")
}

func TestWriteTeams(t *testing.T) {
	teams := []models.Team{{ID: 1, Name: "Aces"}, {ID: 2, Name: "Bandits"}, {ID: 3, Name: "Dropped"}}
	pools := []models.Pool{{ID: 1, Name: "Pool A", TeamIDs: []int{1, 2}}}

	var buf bytes.Buffer
	err := NewExportService().WriteTeams(&buf, teams, pools)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,name,pool", lines[0])
	assert.Equal(t, "1,Aces,Pool A", lines[1])
	assert.Equal(t, "3,Dropped,", lines[3], "unpooled teams keep an empty pool field")
}

func TestWriteStandings(t *testing.T) {
	teamB, scoreA, scoreB := 2, 11, 7
	teams := []models.Team{{ID: 1, Name: "Aces"}, {ID: 2, Name: "Bandits"}}
	pools := []models.Pool{{ID: 1, Name: "Pool A", TeamIDs: []int{1, 2}}}
	matches := []models.Match{{
		ID: 1, MatchNumber: 1, PoolID: 1, Round: 1,
		TeamAID: 1, TeamBID: &teamB, ScoreA: &scoreA, ScoreB: &scoreB,
		Status: models.MatchStatusCompleted,
	}}

	var buf bytes.Buffer
	err := NewExportService().WriteStandings(&buf, pools, matches, teams)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "pool,rank,team,wins,losses,points_for,points_against,point_diff", lines[0])
	assert.Equal(t, "Pool A,1,Aces,1,0,11,7,4", lines[1])
	assert.Equal(t, "Pool A,2,Bandits,0,1,7,11,-4", lines[2])
}

func TestWriteScheduleTSV(t *testing.T) {
	teamB := 2
	teams := []models.Team{{ID: 1, Name: "Aces"}, {ID: 2, Name: "Bandits"}}
	matches := []models.Match{{ID: 7, TeamAID: 1, TeamBID: &teamB}}
	assignments := []models.CourtAssignment{{MatchID: 7, CourtNumber: 1, TimeSlot: 1, EstimatedStartMinutes: 0}}

	var buf bytes.Buffer
	err := NewTSVExportService().WriteSchedule(&buf, assignments, matches, teams)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "match_id\tcourt\ttime_slot\tstart_minutes\tteam_a\tteam_b", lines[0])
	assert.Equal(t, "7\t1\t1\t0\tAces\tBandits", lines[1])
}

func TestExportAll(t *testing.T) {
	svc := NewTournamentService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	result, err := svc.BuildTournament(TournamentInput{
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
	})
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, NewExportService().ExportAll(dir, result))

	for _, name := range []string{"matches.csv", "teams.csv", "standings.csv", "schedule.csv"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestExportAllSkipsScheduleWithoutAssignments(t *testing.T) {
	result := &TournamentResult{
		Teams: []models.Team{{ID: 1, Name: "Aces"}, {ID: 2, Name: "Bandits"}},
		Pools: []models.Pool{{ID: 1, Name: "Pool A", TeamIDs: []int{1, 2}}},
	}

	dir := t.TempDir()
	require.NoError(t, NewExportService().ExportAll(dir, result))

	_, err := os.Stat(filepath.Join(dir, "schedule.csv"))
	assert.True(t, os.IsNotExist(err))
}
