package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/piotronm/tourney-backend-sub000/models"
)

// readTeamsCSV parses "name[,pool]" rows. A first row starting with "name"
// is treated as a header.
func readTeamsCSV(path string) ([]models.Team, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, err
	}

	teams := make([]models.Team, 0, len(records))
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name") {
			continue
		}
		t := models.Team{Name: rec[0]}
		if len(rec) > 1 && strings.TrimSpace(rec[1]) != "" {
			pool, err := strconv.Atoi(strings.TrimSpace(rec[1]))
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid pool %q", i+1, rec[1])
			}
			t.PoolID = &pool
		}
		teams = append(teams, t)
	}
	return teams, nil
}

// readPlayersCSV parses "name,rating" rows, header optional.
func readPlayersCSV(path string) ([]models.Player, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, err
	}

	players := make([]models.Player, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name") {
			continue
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid rating %q", i+1, rec[1])
		}
		players = append(players, models.Player{Name: rec[0], DuprRating: rating})
	}
	return players, nil
}

// readMatchesCSV parses "pool_id,round,team_a_id,team_b_id,score_a,score_b,
// status" rows, header optional. An empty team_b_id means a bye; empty
// scores stay unreported.
func readMatchesCSV(path string) ([]models.Match, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, err
	}

	matches := make([]models.Match, 0, len(records))
	for i, rec := range records {
		if len(rec) < 7 {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "pool_id") {
			continue
		}

		poolID, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid pool_id %q", i+1, rec[0])
		}
		round, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid round %q", i+1, rec[1])
		}
		teamA, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid team_a_id %q", i+1, rec[2])
		}

		m := models.Match{
			ID:          i + 1,
			PoolID:      poolID,
			Round:       round,
			MatchNumber: i + 1,
			TeamAID:     teamA,
			Status:      models.MatchStatus(strings.TrimSpace(rec[6])),
		}
		if m.TeamBID, err = optionalInt(rec[3], i+1, "team_b_id"); err != nil {
			return nil, err
		}
		if m.ScoreA, err = optionalInt(rec[4], i+1, "score_a"); err != nil {
			return nil, err
		}
		if m.ScoreB, err = optionalInt(rec[5], i+1, "score_b"); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func optionalInt(raw string, line int, field string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid %s %q", line, field, raw)
	}
	return &v, nil
}

func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}
