package engine

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/piotronm/tourney-backend-sub000/models"
)

// PreprocessTeams normalizes names, optionally shuffles, and assigns IDs.
// The input is never mutated.
//
// Names are trimmed; an empty result becomes "Team {n}" from the 1-based
// pre-shuffle position. Without a seed, IDs run 1..N in final order, so a
// shuffle reassigns them positionally. With a seed, each ID is a stable hash
// of (seed, trimmed name, original index) and survives any reordering.
func PreprocessTeams(in []models.Team, rng *Rand, shuffle bool, seed *int64) ([]models.Team, error) {
	if len(in) == 0 {
		return nil, ErrEmptyTeamList
	}

	teams := make([]models.Team, len(in))
	for i, t := range in {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			name = fmt.Sprintf("Team %d", i+1)
		}
		teams[i] = models.Team{Name: name, PoolID: t.PoolID}
		if seed != nil {
			teams[i].ID = stableTeamID(*seed, name, i)
		}
	}

	if shuffle && rng != nil {
		rng.Shuffle(len(teams), func(i, j int) { teams[i], teams[j] = teams[j], teams[i] })
	}

	if seed == nil {
		for i := range teams {
			teams[i].ID = i + 1
		}
	}

	return teams, nil
}

// stableTeamID hashes (seed, name, original index) with 32-bit FNV-1a and
// reduces mod 2^31-1. The constants are fixed by the cross-implementation
// parity contract; hash/fnv implements exactly this function.
func stableTeamID(seed int64, name string, index int) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d:%s:%d", seed, name, index)
	return int(h.Sum32() % 2147483647)
}
