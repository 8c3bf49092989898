package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/piotronm/tourney-backend-sub000/models"
)

// DUPR ratings live on a fixed scale.
const (
	MinDuprRating = 1.0
	MaxDuprRating = 8.0
)

// TeamGenOptions configures team building from rated players.
type TeamGenOptions struct {
	Strategy models.TeamGenStrategy
	TeamSize int
}

// TeamGenResult is the complete output of one generation pass: the teams,
// every player with a team assignment, and the per-team compositions.
type TeamGenResult struct {
	Teams        []models.Team            `json:"teams"`
	Players      []models.Player          `json:"players"`
	Compositions []models.TeamComposition `json:"team_compositions"`
}

// GenerateTeamsFromPlayers builds teams of TeamSize from rated players.
// Validation happens up front: at least two players, a count divisible by
// the team size, every rating within the DUPR scale. Blank player names
// auto-fill to "Player {n}" from the 1-based input position.
func GenerateTeamsFromPlayers(players []models.Player, rng *Rand, opts TeamGenOptions) (*TeamGenResult, error) {
	if len(players) < 2 {
		return nil, ErrInsufficientPlayers
	}

	teamSize := opts.TeamSize
	if teamSize < 1 {
		teamSize = 2
	}
	if len(players)%teamSize != 0 {
		return nil, fmt.Errorf("%w: %d players cannot form teams of %d",
			ErrPlayerCountNotDivisible, len(players), teamSize)
	}

	normalized := make([]models.Player, len(players))
	for i, p := range players {
		if p.DuprRating < MinDuprRating || p.DuprRating > MaxDuprRating {
			return nil, fmt.Errorf("%w: %.2f for player %d", ErrInvalidDuprRating, p.DuprRating, i+1)
		}
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		id := p.ID
		if id == 0 {
			id = i + 1
		}
		normalized[i] = models.Player{ID: id, Name: name, DuprRating: p.DuprRating}
	}

	numTeams := len(normalized) / teamSize

	var grouped [][]models.Player
	switch opts.Strategy {
	case models.TeamGenBalanced:
		grouped = groupBalanced(normalized, teamSize, numTeams)
	case models.TeamGenSnakeDraft:
		grouped = groupSnakeDraft(normalized, teamSize, numTeams)
	case models.TeamGenRandomPairs:
		grouped = groupRandom(normalized, teamSize, numTeams, rng)
	default:
		return nil, fmt.Errorf("unsupported team generation strategy %q", opts.Strategy)
	}

	result := &TeamGenResult{
		Teams:        make([]models.Team, 0, numTeams),
		Players:      make([]models.Player, 0, len(normalized)),
		Compositions: make([]models.TeamComposition, 0, numTeams),
	}
	for t, group := range grouped {
		teamID := t + 1
		ratings := make([]float64, len(group))
		for i, p := range group {
			ratings[i] = p.DuprRating
		}
		avg := AverageRating(ratings)

		result.Teams = append(result.Teams, models.Team{ID: teamID, Name: teamName(teamID, group, avg)})

		comp := models.TeamComposition{TeamID: teamID, AverageRating: avg}
		for _, p := range group {
			id := teamID
			p.TeamID = &id
			comp.PlayerIDs = append(comp.PlayerIDs, p.ID)
			result.Players = append(result.Players, p)
		}
		result.Compositions = append(result.Compositions, comp)
	}
	return result, nil
}

// sortByRatingDesc returns a copy ordered strongest first. The sort is
// stable so equal ratings keep their input order, which keeps every
// strategy deterministic.
func sortByRatingDesc(players []models.Player) []models.Player {
	out := make([]models.Player, len(players))
	copy(out, players)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DuprRating > out[j].DuprRating
	})
	return out
}

// groupBalanced pairs rank i with rank N-1-i for doubles, which minimizes
// the variance of team rating sums. Larger teams are striped: team t takes
// the sorted players at t, t+numTeams, t+2*numTeams, ...
func groupBalanced(players []models.Player, teamSize, numTeams int) [][]models.Player {
	sorted := sortByRatingDesc(players)
	groups := make([][]models.Player, numTeams)

	if teamSize == 2 {
		for t := 0; t < numTeams; t++ {
			groups[t] = []models.Player{sorted[t], sorted[len(sorted)-1-t]}
		}
		return groups
	}

	for t := 0; t < numTeams; t++ {
		group := make([]models.Player, 0, teamSize)
		for k := 0; k < teamSize; k++ {
			group = append(group, sorted[t+k*numTeams])
		}
		groups[t] = group
	}
	return groups
}

// groupSnakeDraft deals strongest-first in serpentine order: forward over
// teams 1..T, then backward T..1, reversing at each boundary.
func groupSnakeDraft(players []models.Player, teamSize, numTeams int) [][]models.Player {
	sorted := sortByRatingDesc(players)
	groups := make([][]models.Player, numTeams)

	team, dir := 0, 1
	for _, p := range sorted {
		groups[team] = append(groups[team], p)
		next := team + dir
		if next < 0 || next >= numTeams {
			dir = -dir
		} else {
			team = next
		}
	}
	return groups
}

// groupRandom shuffles via the seeded stream and slices contiguous chunks,
// so a fixed seed always yields the same teams.
func groupRandom(players []models.Player, teamSize, numTeams int, rng *Rand) [][]models.Player {
	shuffled := make([]models.Player, len(players))
	copy(shuffled, players)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	groups := make([][]models.Player, numTeams)
	for t := 0; t < numTeams; t++ {
		groups[t] = shuffled[t*teamSize : (t+1)*teamSize]
	}
	return groups
}

// teamName is "{LastToken}/{LastToken}" for doubles and
// "Team {id} ({avg})" otherwise.
func teamName(id int, group []models.Player, avg float64) string {
	if len(group) == 2 {
		return lastNameToken(group[0].Name) + "/" + lastNameToken(group[1].Name)
	}
	return fmt.Sprintf("Team %d (%.1f)", id, avg)
}

// lastNameToken is the final whitespace-delimited token of a name, or the
// whole name when it has a single token.
func lastNameToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[len(fields)-1]
}

// AverageRating is the mean of the given ratings, zero for an empty slice.
func AverageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range ratings {
		sum += r
	}
	return sum / float64(len(ratings))
}

// TeamRatingVariance is the population variance of per-team average
// ratings, the balance metric the balanced strategy tries to keep low.
func TeamRatingVariance(teams []models.TeamComposition) float64 {
	if len(teams) == 0 {
		return 0
	}
	mean := 0.0
	for _, t := range teams {
		mean += t.AverageRating
	}
	mean /= float64(len(teams))

	variance := 0.0
	for _, t := range teams {
		d := t.AverageRating - mean
		variance += d * d
	}
	return variance / float64(len(teams))
}
