package engine

import (
	"sort"

	"github.com/piotronm/tourney-backend-sub000/models"
)

// HeadToHead summarizes the completed meetings between two teams.
type HeadToHead struct {
	TeamAWins   int `json:"team_a_wins"`
	TeamBWins   int `json:"team_b_wins"`
	GamesPlayed int `json:"games_played"`
}

// ComputePoolStandings ranks a pool's teams from its completed matches.
// Byes and unscored matches are skipped; a drawn score counts as neither a
// win nor a loss. The primary order is (wins desc, point diff desc, points
// for desc, team id asc); contiguous runs tied on (wins, point diff) are
// re-ranked recursively using only the matches played among the tied teams.
func ComputePoolStandings(poolID int, matches []models.Match) []models.RankRow {
	pool := completedPoolMatches(poolID, matches)
	return rankRows(accumulate(pool), pool)
}

// HeadToHeadRecord reports the completed meetings between two teams across
// the given matches. Draws count toward GamesPlayed only.
func HeadToHeadRecord(teamA, teamB int, matches []models.Match) HeadToHead {
	var rec HeadToHead
	for _, m := range matches {
		if !isScored(m) {
			continue
		}
		var scoreA, scoreB int
		switch {
		case m.TeamAID == teamA && *m.TeamBID == teamB:
			scoreA, scoreB = *m.ScoreA, *m.ScoreB
		case m.TeamAID == teamB && *m.TeamBID == teamA:
			scoreA, scoreB = *m.ScoreB, *m.ScoreA
		default:
			continue
		}
		rec.GamesPlayed++
		if scoreA > scoreB {
			rec.TeamAWins++
		} else if scoreB > scoreA {
			rec.TeamBWins++
		}
	}
	return rec
}

func isScored(m models.Match) bool {
	return m.Status == models.MatchStatusCompleted &&
		m.TeamBID != nil && m.ScoreA != nil && m.ScoreB != nil
}

func completedPoolMatches(poolID int, matches []models.Match) []models.Match {
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.PoolID == poolID && isScored(m) {
			out = append(out, m)
		}
	}
	return out
}

// accumulate builds one RankRow per team appearing in the matches, in
// first-seen order.
func accumulate(matches []models.Match) []models.RankRow {
	index := make(map[int]*models.RankRow)
	order := make([]int, 0)
	row := func(teamID int) *models.RankRow {
		if r, ok := index[teamID]; ok {
			return r
		}
		r := &models.RankRow{TeamID: teamID}
		index[teamID] = r
		order = append(order, teamID)
		return r
	}

	for _, m := range matches {
		b := *m.TeamBID
		ra, rb := row(m.TeamAID), row(b)
		sa, sb := *m.ScoreA, *m.ScoreB
		ra.PointsFor += sa
		ra.PointsAgainst += sb
		rb.PointsFor += sb
		rb.PointsAgainst += sa
		switch {
		case sa > sb:
			ra.Wins++
			rb.Losses++
		case sb > sa:
			rb.Wins++
			ra.Losses++
		}
	}

	rows := make([]models.RankRow, 0, len(order))
	for _, id := range order {
		r := index[id]
		r.PointDiff = r.PointsFor - r.PointsAgainst
		rows = append(rows, *r)
	}
	return rows
}

func sortRows(rows []models.RankRow) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.PointDiff != b.PointDiff {
			return a.PointDiff > b.PointDiff
		}
		if a.PointsFor != b.PointsFor {
			return a.PointsFor > b.PointsFor
		}
		return a.TeamID < b.TeamID
	})
}

// rankRows applies the primary key, then reorders every maximal run of
// teams tied on (wins, point diff) by their record against each other.
// Resolution is a pure split/resolve/concatenate recursion; runs never
// share state.
func rankRows(rows []models.RankRow, matches []models.Match) []models.RankRow {
	sortRows(rows)

	out := make([]models.RankRow, 0, len(rows))
	for start := 0; start < len(rows); {
		end := start + 1
		for end < len(rows) &&
			rows[end].Wins == rows[start].Wins &&
			rows[end].PointDiff == rows[start].PointDiff {
			end++
		}
		if end-start >= 2 {
			out = append(out, headToHeadOrder(rows[start:end], matches)...)
		} else {
			out = append(out, rows[start])
		}
		start = end
	}
	return out
}

// headToHeadOrder reorders one tied run by standings computed over only the
// matches played among its members. Rows keep their pool-wide stats; only
// the order changes. With no internal matches, or a run that stays fully
// tied head-to-head, the original order (lower team id first) stands.
func headToHeadOrder(run []models.RankRow, matches []models.Match) []models.RankRow {
	members := make(map[int]bool, len(run))
	for _, r := range run {
		members[r.TeamID] = true
	}

	sub := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if members[m.TeamAID] && members[*m.TeamBID] {
			sub = append(sub, m)
		}
	}
	if len(sub) == 0 {
		return run
	}

	internal := accumulate(sub)
	sortRows(internal)

	// Recurse only into sub-runs strictly smaller than this one; a run that
	// is still one undivided block head-to-head has nothing left to split
	// on, and the sorted internal order (points for, then team id) is final.
	ranked := make([]models.RankRow, 0, len(internal))
	for start := 0; start < len(internal); {
		end := start + 1
		for end < len(internal) &&
			internal[end].Wins == internal[start].Wins &&
			internal[end].PointDiff == internal[start].PointDiff {
			end++
		}
		if end-start >= 2 && end-start < len(run) {
			ranked = append(ranked, headToHeadOrder(internal[start:end], sub)...)
		} else {
			ranked = append(ranked, internal[start:end]...)
		}
		start = end
	}

	pos := make(map[int]int, len(ranked))
	for idx, r := range ranked {
		pos[r.TeamID] = idx
	}

	out := make([]models.RankRow, len(run))
	copy(out, run)
	sort.SliceStable(out, func(a, b int) bool {
		pa, oka := pos[out[a].TeamID]
		pb, okb := pos[out[b].TeamID]
		if oka && okb {
			return pa < pb
		}
		// Members with no internal games sink below those with a record.
		return oka && !okb
	})
	return out
}
