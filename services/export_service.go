package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/piotronm/tourney-backend-sub000/engine"
	"github.com/piotronm/tourney-backend-sub000/models"
)

// ExportService renders engine output as CSV or TSV. Rendering rules: a
// missing pool lookup falls back to "Pool {id}", a bye opponent is the
// literal "BYE", unreported scores are empty fields, and fields containing
// the delimiter, quotes or newlines are wrapped with quotes doubled.
type ExportService struct {
	// Delimiter is ',' for CSV and '\t' for TSV; zero means CSV.
	Delimiter rune
}

func NewExportService() *ExportService {
	return &ExportService{Delimiter: ','}
}

func NewTSVExportService() *ExportService {
	return &ExportService{Delimiter: '\t'}
}

// ExportAll writes matches, teams, standings and, when present, the court
// schedule into dir. The files are independent, so they are written
// concurrently.
func (e *ExportService) ExportAll(dir string, result *TournamentResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		return e.writeFile(filepath.Join(dir, "matches"+e.ext()), func(w io.Writer) error {
			return e.WriteMatches(w, result.Matches, result.Teams, result.Pools)
		})
	})
	g.Go(func() error {
		return e.writeFile(filepath.Join(dir, "teams"+e.ext()), func(w io.Writer) error {
			return e.WriteTeams(w, result.Teams, result.Pools)
		})
	})
	g.Go(func() error {
		return e.writeFile(filepath.Join(dir, "standings"+e.ext()), func(w io.Writer) error {
			return e.WriteStandings(w, result.Pools, result.Matches, result.Teams)
		})
	})
	if len(result.Assignments) > 0 {
		g.Go(func() error {
			return e.writeFile(filepath.Join(dir, "schedule"+e.ext()), func(w io.Writer) error {
				return e.WriteSchedule(w, result.Assignments, result.Matches, result.Teams)
			})
		})
	}
	return g.Wait()
}

// WriteMatches renders one row per match in match-number order.
func (e *ExportService) WriteMatches(w io.Writer, matches []models.Match, teams []models.Team, pools []models.Pool) error {
	teamNames := teamNameIndex(teams)
	poolNames := poolNameIndex(pools)

	cw := e.newWriter(w)
	if err := cw.Write([]string{"match_number", "pool", "round", "team_a", "team_b", "score_a", "score_b", "status"}); err != nil {
		return err
	}
	for _, m := range matches {
		record := []string{
			strconv.Itoa(m.MatchNumber),
			poolLabel(poolNames, m.PoolID),
			strconv.Itoa(m.Round),
			teamLabel(teamNames, m.TeamAID),
			opponentLabel(teamNames, m.TeamBID),
			scoreField(m.ScoreA),
			scoreField(m.ScoreB),
			string(m.Status),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTeams renders one row per team with its pool label.
func (e *ExportService) WriteTeams(w io.Writer, teams []models.Team, pools []models.Pool) error {
	poolNames := poolNameIndex(pools)
	poolOf := make(map[int]int)
	for _, p := range pools {
		for _, id := range p.TeamIDs {
			poolOf[id] = p.ID
		}
	}

	cw := e.newWriter(w)
	if err := cw.Write([]string{"id", "name", "pool"}); err != nil {
		return err
	}
	for _, t := range teams {
		pool := ""
		if pid, ok := poolOf[t.ID]; ok {
			pool = poolLabel(poolNames, pid)
		}
		if err := cw.Write([]string{strconv.Itoa(t.ID), t.Name, pool}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStandings computes and renders standings for every pool.
func (e *ExportService) WriteStandings(w io.Writer, pools []models.Pool, matches []models.Match, teams []models.Team) error {
	teamNames := teamNameIndex(teams)
	poolNames := poolNameIndex(pools)

	cw := e.newWriter(w)
	if err := cw.Write([]string{"pool", "rank", "team", "wins", "losses", "points_for", "points_against", "point_diff"}); err != nil {
		return err
	}
	for _, p := range pools {
		for rank, row := range engine.ComputePoolStandings(p.ID, matches) {
			record := []string{
				poolLabel(poolNames, p.ID),
				strconv.Itoa(rank + 1),
				teamLabel(teamNames, row.TeamID),
				strconv.Itoa(row.Wins),
				strconv.Itoa(row.Losses),
				strconv.Itoa(row.PointsFor),
				strconv.Itoa(row.PointsAgainst),
				strconv.Itoa(row.PointDiff),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSchedule renders court assignments in placement order.
func (e *ExportService) WriteSchedule(w io.Writer, assignments []models.CourtAssignment, matches []models.Match, teams []models.Team) error {
	teamNames := teamNameIndex(teams)
	byID := make(map[int]models.Match, len(matches))
	for _, m := range matches {
		byID[m.ID] = m
	}

	cw := e.newWriter(w)
	if err := cw.Write([]string{"match_id", "court", "time_slot", "start_minutes", "team_a", "team_b"}); err != nil {
		return err
	}
	for _, a := range assignments {
		teamA, teamB := "", ""
		if m, ok := byID[a.MatchID]; ok {
			teamA = teamLabel(teamNames, m.TeamAID)
			teamB = opponentLabel(teamNames, m.TeamBID)
		}
		record := []string{
			strconv.Itoa(a.MatchID),
			strconv.Itoa(a.CourtNumber),
			strconv.Itoa(a.TimeSlot),
			strconv.Itoa(a.EstimatedStartMinutes),
			teamA,
			teamB,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (e *ExportService) newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	if e.Delimiter != 0 {
		cw.Comma = e.Delimiter
	}
	return cw
}

func (e *ExportService) ext() string {
	if e.Delimiter == '\t' {
		return ".tsv"
	}
	return ".csv"
}

func (e *ExportService) writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func teamNameIndex(teams []models.Team) map[int]string {
	index := make(map[int]string, len(teams))
	for _, t := range teams {
		index[t.ID] = t.Name
	}
	return index
}

func poolNameIndex(pools []models.Pool) map[int]string {
	index := make(map[int]string, len(pools))
	for _, p := range pools {
		index[p.ID] = p.Name
	}
	return index
}

func poolLabel(names map[int]string, id int) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("Pool %d", id)
}

func teamLabel(names map[int]string, id int) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("Team %d", id)
}

// opponentLabel renders a bye opponent as the literal BYE.
func opponentLabel(names map[int]string, id *int) string {
	if id == nil {
		return "BYE"
	}
	return teamLabel(names, *id)
}

func scoreField(score *int) string {
	if score == nil {
		return ""
	}
	return strconv.Itoa(*score)
}
